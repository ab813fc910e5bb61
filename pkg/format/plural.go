package format

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/feature/plural"
)

// CLDR plural category names.
const (
	PluralZero  = "zero"
	PluralOne   = "one"
	PluralTwo   = "two"
	PluralFew   = "few"
	PluralMany  = "many"
	PluralOther = "other"
)

// PluralForm returns the CLDR cardinal plural category for n under the
// given locale. Malformed locales resolve through the fallback tag (with
// a logged warning on first use) so the result is always a valid
// category, never an error.
func (c *Cache) PluralForm(locale string, n float64) string {
	tag := c.tag(locale)

	// CLDR operands are defined over the absolute value.
	abs := math.Abs(n)
	i := int(abs)

	var v, f int
	s := strconv.FormatFloat(abs, 'f', -1, 64)
	if _, frac, ok := strings.Cut(s, "."); ok {
		v = len(frac)
		f, _ = strconv.Atoi(frac)
	}

	// FormatFloat with precision -1 emits no trailing zeros, so the
	// trimmed operands w and t equal v and f.
	switch plural.Cardinal.MatchPlural(tag, i, v, v, f, f) {
	case plural.Zero:
		return PluralZero
	case plural.One:
		return PluralOne
	case plural.Two:
		return PluralTwo
	case plural.Few:
		return PluralFew
	case plural.Many:
		return PluralMany
	default:
		return PluralOther
	}
}
