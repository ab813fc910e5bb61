package i18n_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18nkit/pkg/i18n"
)

func TestInterpolate(t *testing.T) {
	t.Parallel()

	r := newResolver(t)

	t.Run("substitutes named placeholders", func(t *testing.T) {
		t.Parallel()
		got := r.Interpolate("Hello, {{name}}!", i18n.M{"name": "World"}, "en")
		require.Equal(t, "Hello, World!", got)
	})

	t.Run("tolerates whitespace inside braces", func(t *testing.T) {
		t.Parallel()
		got := r.Interpolate("Hi {{ name }} and {{  other  }}", i18n.M{"name": "A", "other": "B"}, "en")
		require.Equal(t, "Hi A and B", got)
	})

	t.Run("resolves dotted names against nested params", func(t *testing.T) {
		t.Parallel()
		got := r.Interpolate("By {{user.profile.name}}", i18n.M{
			"user": map[string]any{"profile": map[string]any{"name": "Ada"}},
		}, "en")
		require.Equal(t, "By Ada", got)
	})

	t.Run("allows hyphens in names", func(t *testing.T) {
		t.Parallel()
		got := r.Interpolate("{{first-name}}", i18n.M{"first-name": "Ada"}, "en")
		require.Equal(t, "Ada", got)
	})

	t.Run("template without placeholders passes through", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "static", r.Interpolate("static", i18n.M{"x": 1}, "en"))
	})

	t.Run("missing param stays literal", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logged, err := i18n.New(i18n.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
		require.NoError(t, err)

		got := logged.Interpolate("Hello, {{name}}!", i18n.M{"unrelated": 1}, "en")
		require.Equal(t, "Hello, {{name}}!", got)
		require.Contains(t, buf.String(), "missing interpolation param")
		require.Contains(t, buf.String(), "name")
	})

	t.Run("nil params returns template unchanged with warning", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logged, err := i18n.New(i18n.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
		require.NoError(t, err)

		got := logged.Interpolate("{{a}} and {{b}}", nil, "en")
		require.Equal(t, "{{a}} and {{b}}", got)
		require.Contains(t, buf.String(), "no params given")
	})

	t.Run("interpolation is idempotent", func(t *testing.T) {
		t.Parallel()
		template := "Hi {{known}}, missing: {{unknown}}"
		params := i18n.M{"known": "Ada"}

		once := r.Interpolate(template, params, "en")
		twice := r.Interpolate(once, params, "en")
		require.Equal(t, once, twice)
		require.Equal(t, "Hi Ada, missing: {{unknown}}", once)
	})

	t.Run("numeric values stringify without exponent noise", func(t *testing.T) {
		t.Parallel()
		got := r.Interpolate("{{a}} {{b}} {{c}}", i18n.M{"a": 42, "b": 3.25, "c": int64(7)}, "en")
		require.Equal(t, "42 3.25 7", got)
	})
}

func TestInterpolateDirectives(t *testing.T) {
	t.Parallel()

	r := newResolver(t)

	t.Run("number uses locale-aware grouping", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "1,234.5", r.Interpolate("{{n, number}}", i18n.M{"n": 1234.5}, "en"))
		require.Equal(t, "1.234,5", r.Interpolate("{{n, number}}", i18n.M{"n": 1234.5}, "de"))
	})

	t.Run("number accepts a fraction digit argument", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "9.50", r.Interpolate("{{n, number, 2}}", i18n.M{"n": 9.5}, "en"))
	})

	t.Run("currency formats with symbol and locale conventions", func(t *testing.T) {
		t.Parallel()
		got := r.Interpolate("Price: {{amount, currency, EUR}}", i18n.M{"amount": 9.5}, "de")
		require.Contains(t, got, "€")
		require.Contains(t, got, "50")
		require.True(t, strings.HasPrefix(got, "Price: "))
	})

	t.Run("date formats per locale", func(t *testing.T) {
		t.Parallel()
		when := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
		require.Equal(t, "03/14/2026", r.Interpolate("{{when, date}}", i18n.M{"when": when}, "en"))
		require.Equal(t, "14.03.2026", r.Interpolate("{{when, date}}", i18n.M{"when": when}, "de"))
	})

	t.Run("bare time values format as dates", func(t *testing.T) {
		t.Parallel()
		when := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
		require.Equal(t, "03/14/2026", r.Interpolate("{{when}}", i18n.M{"when": when}, "en"))
	})

	t.Run("unknown directive stringifies the raw value", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "42", r.Interpolate("{{n, sparkle}}", i18n.M{"n": 42}, "en"))
	})

	t.Run("non-numeric value under number directive stringifies", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "abc", r.Interpolate("{{n, number}}", i18n.M{"n": "abc"}, "en"))
	})
}

func TestResolveWithPluralAndInterpolation(t *testing.T) {
	t.Parallel()

	r := newResolver(t,
		i18n.WithTranslations("en", i18n.Tree{
			"inbox": map[string]any{
				"one":   "You have {{count}} new message",
				"other": "You have {{count}} new messages",
			},
		}),
	)

	require.Equal(t, "You have 1 new message", r.Resolve("en", "inbox", i18n.M{"count": 1}))
	require.Equal(t, "You have 5 new messages", r.Resolve("en", "inbox", i18n.M{"count": 5}))
	require.Equal(t, "You have 0 new messages", r.Resolve("en", "inbox", i18n.M{"count": 0}))
}
