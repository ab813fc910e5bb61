package slots

import (
	"log/slog"
	"net/url"
	"regexp"
	"strings"
)

// eventHandlerRe matches DOM event handler attribute names (onclick,
// onmouseover, ...). These are always dropped.
var eventHandlerRe = regexp.MustCompile(`(?i)^on[a-z]+$`)

// urlAttrs are attribute names whose values can trigger navigation or
// resource loading and therefore go through the protocol whitelist.
var urlAttrs = map[string]struct{}{
	"href":       {},
	"src":        {},
	"action":     {},
	"formaction": {},
	"xlink:href": {},
	"poster":     {},
}

// safeProtocols is a whitelist, not a blacklist: encoding and
// control-character tricks make blacklists bypassable, so unknown
// protocols fail closed.
var safeProtocols = map[string]struct{}{
	"http":   {},
	"https":  {},
	"mailto": {},
	"tel":    {},
}

// parseAttributes tokenizes an attribute string into a sanitized map.
// Supported forms: name="value", name='value', name=value (unquoted,
// terminated by whitespace per HTML5 rules), and boolean name.
// Event handler names and unsafe URL values are dropped with a warning;
// parsing always continues.
func (p *Parser) parseAttributes(s string) map[string]string {
	attrs := make(map[string]string)
	i := 0

	for i < len(s) {
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		if i >= len(s) {
			break
		}

		nameStart := i
		for i < len(s) && !isSpace(s[i]) && s[i] != '=' {
			i++
		}
		name := s[nameStart:i]
		if name == "" {
			i++
			continue
		}

		for i < len(s) && isSpace(s[i]) {
			i++
		}

		value := ""
		if i < len(s) && s[i] == '=' {
			i++
			for i < len(s) && isSpace(s[i]) {
				i++
			}
			if i < len(s) && (s[i] == '"' || s[i] == '\'') {
				quote := s[i]
				i++
				end := strings.IndexByte(s[i:], quote)
				if end < 0 {
					value = s[i:]
					i = len(s)
				} else {
					value = s[i : i+end]
					i += end + 1
				}
			} else {
				valStart := i
				for i < len(s) && !isSpace(s[i]) {
					i++
				}
				value = s[valStart:i]
			}
		}

		lname := strings.ToLower(name)

		if eventHandlerRe.MatchString(lname) {
			p.log.Warn("dropping event handler attribute",
				slog.String("attribute", lname))
			continue
		}

		if _, isURL := urlAttrs[lname]; isURL && !safeURL(value) {
			p.log.Warn("dropping attribute with unsafe URL",
				slog.String("attribute", lname),
				slog.String("value", value))
			continue
		}

		attrs[lname] = value
	}

	return attrs
}

// safeURL reports whether a URL attribute value is safe to keep:
// relative paths, fragment/dot references, values with no protocol at
// all, and absolute URLs with a whitelisted protocol.
func safeURL(raw string) bool {
	// Control characters are stripped before any checks; they are a
	// classic vector for smuggling "java\tscript:" past filters.
	cleaned := strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, raw)
	cleaned = strings.TrimSpace(cleaned)

	if cleaned == "" {
		return true
	}

	switch cleaned[0] {
	case '/', '#', '.':
		return true
	}

	if !strings.Contains(cleaned, ":") {
		return true
	}

	// Resolve against a dummy base so scheme detection matches what a
	// browser would do with the value in context.
	u, err := url.Parse(cleaned)
	if err != nil {
		return false
	}
	base := &url.URL{Scheme: "https", Host: "dummy.invalid"}
	resolved := base.ResolveReference(u)

	_, ok := safeProtocols[strings.ToLower(resolved.Scheme)]
	return ok
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
