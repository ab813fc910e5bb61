package i18n_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18nkit/pkg/i18n"
)

func TestMatchAcceptLanguage(t *testing.T) {
	t.Parallel()

	available := []string{"pl", "en", "de"}

	t.Run("picks the highest quality match", func(t *testing.T) {
		t.Parallel()
		got := i18n.MatchAcceptLanguage("de;q=0.9,en;q=0.8", available)
		require.Equal(t, "de", got)
	})

	t.Run("matches regional variants to base languages", func(t *testing.T) {
		t.Parallel()
		got := i18n.MatchAcceptLanguage("en-US,en;q=0.9", available)
		require.Equal(t, "en", got)

		got = i18n.MatchAcceptLanguage("de-AT", available)
		require.Equal(t, "de", got)
	})

	t.Run("empty header falls back to first available", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "pl", i18n.MatchAcceptLanguage("", available))
	})

	t.Run("garbage header falls back to first available", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "pl", i18n.MatchAcceptLanguage(";;;,,,", available))
	})

	t.Run("no available locales yields empty string", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "", i18n.MatchAcceptLanguage("en", nil))
	})

	t.Run("oversized header is truncated, not rejected", func(t *testing.T) {
		t.Parallel()
		// Truncation may cut mid-token; the guarantee is bounded work and
		// a usable locale, not a particular match.
		header := "en;q=0.9," + strings.Repeat("x", 8192)
		require.Contains(t, available, i18n.MatchAcceptLanguage(header, available))
	})
}
