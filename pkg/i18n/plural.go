package i18n

import "github.com/dmitrymomot/i18nkit/pkg/format"

// PluralSuffix returns the CLDR plural category for count under locale:
// one of zero, one, two, few, many, other. Malformed locales degrade to
// the formatter cache's fallback rules, so the result is always usable
// as a plural-group key.
func (r *Resolver) PluralSuffix(locale string, count float64) string {
	return r.formatters.PluralForm(locale, count)
}

// resolvePluralKey resolves key as a plural group using the precomputed
// category suffix. Resolution order: the exact category, then "other",
// then the key itself as a plain string leaf. The last step supports keys
// that are pluralized in some locales and plain strings in others.
func resolvePluralKey(tree Tree, key, suffix string) (string, bool) {
	node, ok := NestedValue(tree, key)
	if !ok {
		return "", false
	}

	if group, ok := asTree(node); ok {
		if s, ok := group[suffix].(string); ok {
			return s, true
		}
		if s, ok := group[format.PluralOther].(string); ok {
			return s, true
		}
		return "", false
	}

	s, ok := node.(string)
	return s, ok
}
