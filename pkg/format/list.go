package format

import "strings"

// listFormatter joins items in conjunction style ("a, b and c").
type listFormatter struct {
	conjunction string
}

// Conjunction words for the locales with built-in support. Locales
// without an entry degrade to plain comma joining.
var conjunctions = map[string]string{
	"en": "and",
	"de": "und",
	"fr": "et",
	"es": "y",
	"it": "e",
	"pt": "e",
	"nl": "en",
	"pl": "i",
	"ru": "и",
	"uk": "і",
}

func (f listFormatter) format(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}

	if f.conjunction == "" {
		return strings.Join(items, ", ")
	}

	head := strings.Join(items[:len(items)-1], ", ")
	return head + " " + f.conjunction + " " + items[len(items)-1]
}

// FormatList joins items in the locale's conjunction style. Unknown
// locales fall back to comma joining the raw items.
func (c *Cache) FormatList(locale string, items []string) string {
	f := c.lists.GetOrSet(Key(locale, nil), func() listFormatter {
		norm := strings.ToLower(strings.ReplaceAll(locale, "_", "-"))
		if conj, ok := conjunctions[norm]; ok {
			return listFormatter{conjunction: conj}
		}
		if base, _, found := strings.Cut(norm, "-"); found {
			if conj, ok := conjunctions[base]; ok {
				return listFormatter{conjunction: conj}
			}
		}
		return listFormatter{}
	})

	return f.format(items)
}
