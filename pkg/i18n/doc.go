// Package i18n resolves translation keys to localized strings with
// locale fallback, CLDR pluralization, and placeholder interpolation.
//
// Translations live in nested trees keyed by dot paths. A key resolves
// against the requested locale first, then the fallback locale, and
// finally echoes the key itself: resolution never fails and never
// panics. Every miss produces a diagnostic log line (or a missing-key
// handler call) instead of an error.
//
// # Basic Usage
//
//	resolver, err := i18n.New(
//		i18n.WithFallbackLocale("en"),
//		i18n.WithTranslations("en", i18n.Tree{
//			"greeting": "Hello, {{name}}!",
//			"errors": i18n.Tree{
//				"not_found": "Resource not found",
//			},
//		}),
//	)
//
//	resolver.Resolve("en", "greeting", i18n.M{"name": "World"})
//	// Output: "Hello, World!"
//	resolver.Resolve("en", "errors.not_found")
//	// Output: "Resource not found"
//
// # Pluralization
//
// A subtree whose keys are CLDR plural categories acts as a plural
// group, selected by the numeric "count" param using the locale's own
// plural rules (via golang.org/x/text CLDR data):
//
//	i18n.WithTranslations("en", i18n.Tree{
//		"items": i18n.Tree{"one": "{{count}} item", "other": "{{count}} items"},
//	})
//
//	resolver.Resolve("en", "items", i18n.M{"count": 3}) // "3 items"
//	resolver.Tn("en", "items", 3)                       // same
//
// When a key falls back to another locale, the fallback locale's plural
// rules pick the category; a Polish request served by an English tree
// uses English's one/other split, not Polish's one/few/many.
//
// # Interpolation Directives
//
// Placeholders follow {{ name }}, {{ name, format }}, and
// {{ name, format, arg }}, with names matching [\w.-]+:
//
//	"Price: {{amount, currency, EUR}}"  // locale-aware currency
//	"Total: {{total, number}}"          // locale-aware number
//	"Due: {{due, date, datetime}}"      // locale-aware date/time
//
// Missing params fail visible: the placeholder stays literal in the
// output and a warning is logged, so gaps are obvious in rendered text
// rather than silently swallowed.
//
// # File-Based Translations
//
// Load trees from JSON, YAML, or TOML files using fs.FS with the
// {locale}/{namespace}.ext convention; the namespace becomes a top-level
// subtree:
//
//	//go:embed translations
//	var translationsFS embed.FS
//
//	subFS, _ := fs.Sub(translationsFS, "translations")
//	resolver, err := i18n.New(
//		i18n.WithJSONDir(subFS),
//	)
//
// # Lazy Loading
//
// Source wraps a Resolver with a Loader that fetches a locale's tree on
// first use, deduplicated with singleflight. Merged trees replace the
// dictionary copy-on-write, so in-flight resolutions keep a consistent
// snapshot:
//
//	src, _ := i18n.NewSource(resolver, i18n.LoaderFunc(fetchLocale))
//	src.Resolve(ctx, "pl", "greeting")
//
// # HTTP Locale Detection
//
// Middleware resolves the request locale from a cookie, a query
// parameter, and the Accept-Language header (in that order), stores it
// in the request context, and tags diagnostic log lines with it:
//
//	mux.Handle("/", resolver.Middleware()(handler))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		locale := i18n.LocaleFromContext(r.Context())
//		...
//	}
//
// # Rich Content
//
// Resolved strings may embed pseudo-tags such as
// "Accept <link href='/terms'>terms</link>"; pass them to pkg/slots for
// safe rich-content rendering. This package performs no escaping itself.
package i18n
