// Package format provides memoized locale-aware formatters for numbers,
// currency amounts, dates, lists, and CLDR plural categories.
//
// Formatters are cached per (locale, options) pair with bounded FIFO
// eviction (50 entries per kind by default). Cache keys serialize option
// keys in sorted order, so map insertion order never causes a miss.
// Malformed locale strings never fail: the formatter is built with the
// fallback locale ("en" unless configured) and cached under the original
// failing key so repeated calls do not retry parsing.
//
// Number, currency, and plural support delegate to golang.org/x/text,
// which carries the CLDR data. Date layouts and list conjunctions come
// from small built-in per-locale tables, since x/text publishes no date
// or list pattern API.
//
//	fc := format.New(format.WithLogger(log))
//	fc.FormatNumber("de", 1234.5, nil)        // "1.234,5"
//	fc.FormatCurrency("de", 9.5, "EUR")       // euro amount, German conventions
//	fc.PluralForm("ar", 2)                    // "two"
//	fc.PluralForm("en", 2)                    // "other"
//
// The Cache is an explicit, injectable object: share one instance across
// a process, or scope one per tenant. All methods are safe for
// concurrent use.
package format
