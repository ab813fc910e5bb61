package i18n

import "golang.org/x/text/language"

// maxAcceptLanguageLength prevents DoS through oversized Accept-Language
// headers.
const maxAcceptLanguageLength = 4096

// MatchAcceptLanguage returns the best match from available for an HTTP
// Accept-Language header, honoring quality values and base-language
// matching ("en" matches "en-US"). Falls back to the first available
// locale when nothing matches or the header is empty/garbage.
func MatchAcceptLanguage(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if header == "" {
		return available[0]
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	tags := make([]language.Tag, 0, len(available))
	for _, locale := range available {
		tag, err := language.Parse(locale)
		if err != nil {
			tag = language.Und
		}
		tags = append(tags, tag)
	}

	matcher := language.NewMatcher(tags)
	_, index := language.MatchStrings(matcher, header)
	if index < 0 || index >= len(available) {
		return available[0]
	}
	return available[index]
}
