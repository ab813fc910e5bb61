// Package diag provides the structured logging side channel used by the
// i18n runtime.
//
// Every failure mode in the resolution path (missing key, missing
// placeholder param, invalid formatter locale, unsafe slot attribute)
// degrades to a safe default plus a diagnostic log line instead of an
// error or panic. This package supplies the loggers those lines go to:
//
//   - New: JSON logs to stdout.
//   - NewNoop: discard everything (the library default).
//   - NewWithSentry: stdout plus Sentry, so missing-translation warnings
//     surface as searchable telemetry in production.
//
// Context extractors enrich each record with request-scoped values; the
// built-in LocaleExtractor attaches the active locale set via WithLocale:
//
//	log := diag.New(diag.LocaleExtractor)
//	ctx := diag.WithLocale(r.Context(), "pl")
//	log.WarnContext(ctx, "missing translation key", slog.String("key", key))
package diag
