package diag

import (
	"io"
	"log/slog"
	"os"
)

// New creates a JSON-formatted diagnostics logger with optional context
// extractors. Intended for hosts that want i18n warnings (missing keys,
// missing params, dropped attributes) in their structured log stream.
func New(extractors ...ContextExtractor) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(NewHandlerDecorator(h, extractors...))
}

// NewNoop creates a logger that discards all output.
// Used as the default in pkg/i18n, pkg/format, and pkg/slots when no
// logger is configured, so the never-throw diagnostic paths stay silent
// rather than panicking on a nil logger.
func NewNoop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
