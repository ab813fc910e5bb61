package i18n

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/i18nkit/pkg/format"
)

// placeholderRe matches {{ name }}, {{ name, format }}, and
// {{ name, format, arg }}. Names allow dots (nested param lookup) and
// hyphens; whitespace around tokens is tolerated.
var placeholderRe = regexp.MustCompile(`\{\{\s*([\w.-]+)\s*(?:,\s*([\w-]+)\s*(?:,\s*([\w.-]+)\s*)?)?\}\}`)

// interpolate replaces placeholders in template with values from params,
// applying formatting directives under locale. key is the translation key
// being resolved, carried only for diagnostics.
//
// Missing params fail visible, not silent: with nil params the template
// is returned unmodified after a warning listing every placeholder; with
// params present, each individually missing placeholder stays literal in
// the output. No escaping happens here; that is the consuming renderer's
// job (see pkg/slots).
func (r *Resolver) interpolate(template string, params M, locale, key string) string {
	if !strings.Contains(template, "{{") {
		return template
	}

	if params == nil {
		names := placeholderNames(template)
		if len(names) > 0 {
			r.log.Warn("placeholders present but no params given",
				slog.String("key", key),
				slog.String("placeholders", strings.Join(names, ", ")))
		}
		return template
	}

	return placeholderRe.ReplaceAllStringFunc(template, func(match string) string {
		sub := placeholderRe.FindStringSubmatch(match)
		name, directive, arg := sub[1], sub[2], sub[3]

		value, ok := NestedValue(params, name)
		if !ok || value == nil {
			r.log.Warn("missing interpolation param",
				slog.String("key", key),
				slog.String("param", name))
			return match
		}

		if directive != "" {
			return r.applyDirective(value, directive, arg, locale)
		}

		// Bare dates still format per locale; the default Go rendering
		// leaks timezone noise into user-facing text.
		if t, ok := value.(time.Time); ok {
			return r.formatters.FormatDate(locale, t, nil)
		}

		return stringify(value)
	})
}

// applyDirective routes a placeholder value through the formatter cache.
// Unknown directives stringify the raw value unchanged.
func (r *Resolver) applyDirective(value any, directive, arg, locale string) string {
	switch directive {
	case "number":
		n, ok := numericValue(value)
		if !ok {
			return stringify(value)
		}
		var opts format.Options
		if digits, err := strconv.Atoi(arg); err == nil {
			opts = format.Options{
				"minimumFractionDigits": digits,
				"maximumFractionDigits": digits,
			}
		}
		return r.formatters.FormatNumber(locale, n, opts)

	case "currency":
		n, ok := numericValue(value)
		if !ok {
			return stringify(value)
		}
		return r.formatters.FormatCurrency(locale, n, arg)

	case "date":
		var opts format.Options
		if arg != "" {
			opts = format.Options{"style": arg}
		}
		return r.formatters.FormatDate(locale, value, opts)

	default:
		return stringify(value)
	}
}

// placeholderNames lists the distinct placeholder names in template, in
// order of first appearance.
func placeholderNames(template string) []string {
	var names []string
	seen := make(map[string]struct{})
	for _, sub := range placeholderRe.FindAllStringSubmatch(template, -1) {
		if _, ok := seen[sub[1]]; ok {
			continue
		}
		seen[sub[1]] = struct{}{}
		names = append(names, sub[1])
	}
	return names
}

func stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}

// numericValue converts the numeric types a params map can reasonably
// carry. Anything else reports false.
func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
