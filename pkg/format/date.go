package format

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// dateFormatter holds the Go time layouts for one locale.
//
// x/text carries no date pattern data, so layouts come from a built-in
// per-locale table covering the locales the module ships plural and
// number support for. Unknown locales use ISO 8601 layouts.
type dateFormatter struct {
	date     string
	timeOnly string
	datetime string
}

var dateLayouts = map[string]dateFormatter{
	"en":    {date: "01/02/2006", timeOnly: "3:04 PM", datetime: "01/02/2006 3:04 PM"},
	"en-gb": {date: "02/01/2006", timeOnly: "15:04", datetime: "02/01/2006 15:04"},
	"de":    {date: "02.01.2006", timeOnly: "15:04", datetime: "02.01.2006 15:04"},
	"fr":    {date: "02/01/2006", timeOnly: "15:04", datetime: "02/01/2006 15:04"},
	"es":    {date: "02/01/2006", timeOnly: "15:04", datetime: "02/01/2006 15:04"},
	"it":    {date: "02/01/2006", timeOnly: "15:04", datetime: "02/01/2006 15:04"},
	"pt":    {date: "02/01/2006", timeOnly: "15:04", datetime: "02/01/2006 15:04"},
	"nl":    {date: "02-01-2006", timeOnly: "15:04", datetime: "02-01-2006 15:04"},
	"pl":    {date: "02.01.2006", timeOnly: "15:04", datetime: "02.01.2006 15:04"},
	"ru":    {date: "02.01.2006", timeOnly: "15:04", datetime: "02.01.2006 15:04"},
	"uk":    {date: "02.01.2006", timeOnly: "15:04", datetime: "02.01.2006 15:04"},
	"ja":    {date: "2006/01/02", timeOnly: "15:04", datetime: "2006/01/02 15:04"},
	"zh":    {date: "2006-01-02", timeOnly: "15:04", datetime: "2006-01-02 15:04"},
	"ko":    {date: "2006.01.02", timeOnly: "15:04", datetime: "2006.01.02 15:04"},
	"ar":    {date: "02/01/2006", timeOnly: "3:04 PM", datetime: "02/01/2006 3:04 PM"},
}

var isoLayouts = dateFormatter{
	date:     "2006-01-02",
	timeOnly: "15:04",
	datetime: "2006-01-02 15:04",
}

// FormatDate formats v using the locale's date conventions.
// Recognized options: "style" with values "date" (default), "time",
// "datetime". Non-time values and zero times are stringified as-is
// instead of producing a bogus formatted date.
func (c *Cache) FormatDate(locale string, v any, opts Options) string {
	t, ok := v.(time.Time)
	if !ok || t.IsZero() {
		c.log.Warn("invalid date value, returning raw input",
			slog.String("locale", locale),
			slog.String("value", fmt.Sprint(v)))
		return fmt.Sprint(v)
	}

	f := c.dates.GetOrSet(Key(locale, opts), func() dateFormatter {
		return lookupDateLayouts(locale)
	})

	style, _ := optString(opts, "style")
	switch style {
	case "time":
		return t.Format(f.timeOnly)
	case "datetime":
		return t.Format(f.datetime)
	default:
		return t.Format(f.date)
	}
}

// lookupDateLayouts resolves layouts by exact lowercased tag first, then
// by base language.
func lookupDateLayouts(locale string) dateFormatter {
	norm := strings.ToLower(strings.ReplaceAll(locale, "_", "-"))
	if f, ok := dateLayouts[norm]; ok {
		return f
	}
	if base, _, found := strings.Cut(norm, "-"); found {
		if f, ok := dateLayouts[base]; ok {
			return f
		}
	}
	return isoLayouts
}
