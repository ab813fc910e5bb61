// Package i18nkit is a modular internationalization toolkit for Go web
// applications.
//
// The module is organized as independent packages under pkg/; import
// what you need:
//
//   - pkg/i18n — translation resolution: nested keys, locale fallback,
//     CLDR pluralization, placeholder interpolation, file loaders,
//     lazy locale sources, Accept-Language matching, HTTP middleware.
//   - pkg/format — locale-aware number, currency, date, and list
//     formatting with bounded memoization of formatter instances.
//   - pkg/slots — safe rich-content translations: pseudo-tag parsing
//     with attribute sanitization and HTML/templ rendering.
//   - pkg/cache — the bounded FIFO cache the other packages share.
//   - pkg/diag — slog-based diagnostics with locale-aware decoration
//     and optional Sentry forwarding.
//
// A minimal setup:
//
//	resolver, err := i18n.New(
//		i18n.WithFallbackLocale("en"),
//		i18n.WithJSONDir(translationsFS),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	greeting := resolver.Resolve("de", "common.greeting", i18n.M{"name": "World"})
//
// Every package follows the same conventions: functional options on
// construction, immutable configuration afterwards, sentinel errors for
// programmer mistakes, and graceful degradation on the hot path — a
// missing translation renders its key, never a panic or an error page.
package i18nkit
