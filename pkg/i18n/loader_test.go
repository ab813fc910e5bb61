package i18n_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18nkit/pkg/i18n"
)

func TestWithJSONDir(t *testing.T) {
	t.Parallel()

	t.Run("loads locale directories with namespaces", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en/common.json": {Data: []byte(`{"hello": "Hello", "nav": {"home": "Home"}}`)},
			"en/errors.json": {Data: []byte(`{"not_found": "Not found"}`)},
			"de/common.json": {Data: []byte(`{"hello": "Hallo"}`)},
			"en/notes.txt":   {Data: []byte(`ignored`)},
		}

		r := newResolver(t, i18n.WithJSONDir(fsys))

		require.Equal(t, "Hello", r.Resolve("en", "common.hello"))
		require.Equal(t, "Home", r.Resolve("en", "common.nav.home"))
		require.Equal(t, "Not found", r.Resolve("en", "errors.not_found"))
		require.Equal(t, "Hallo", r.Resolve("de", "common.hello"))
		require.Equal(t, []string{"de", "en"}, r.Locales())
	})

	t.Run("rejects files outside a locale directory", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"stray.json": {Data: []byte(`{}`)},
		}
		_, err := i18n.New(i18n.WithJSONDir(fsys))
		require.ErrorIs(t, err, i18n.ErrInvalidFile)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en/bad.json": {Data: []byte(`{"unterminated`)},
		}
		_, err := i18n.New(i18n.WithJSONDir(fsys))
		require.ErrorIs(t, err, i18n.ErrInvalidFile)
	})
}

func TestWithYAMLDir(t *testing.T) {
	t.Parallel()

	t.Run("loads yaml and yml files", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en/common.yaml": {Data: []byte("hello: Hello\nnav:\n  home: Home\n")},
			"en/extra.yml":   {Data: []byte("bye: Bye\n")},
		}

		r := newResolver(t, i18n.WithYAMLDir(fsys))

		require.Equal(t, "Hello", r.Resolve("en", "common.hello"))
		require.Equal(t, "Home", r.Resolve("en", "common.nav.home"))
		require.Equal(t, "Bye", r.Resolve("en", "extra.bye"))
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en/bad.yaml": {Data: []byte("hello: [unclosed\n")},
		}
		_, err := i18n.New(i18n.WithYAMLDir(fsys))
		require.ErrorIs(t, err, i18n.ErrInvalidFile)
	})
}

func TestWithTOMLDir(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"fr/common.toml": {Data: []byte("hello = \"Bonjour\"\n\n[nav]\nhome = \"Accueil\"\n")},
	}

	r := newResolver(t, i18n.WithTOMLDir(fsys))

	require.Equal(t, "Bonjour", r.Resolve("fr", "common.hello"))
	require.Equal(t, "Accueil", r.Resolve("fr", "common.nav.home"))
}

func TestLoadersCombine(t *testing.T) {
	t.Parallel()

	jsonFS := fstest.MapFS{
		"en/common.json": {Data: []byte(`{"hello": "Hello"}`)},
	}
	yamlFS := fstest.MapFS{
		"en/common.yaml": {Data: []byte("bye: Bye\n")},
	}

	r := newResolver(t,
		i18n.WithJSONDir(jsonFS),
		i18n.WithYAMLDir(yamlFS),
	)

	require.Equal(t, "Hello", r.Resolve("en", "common.hello"))
	require.Equal(t, "Bye", r.Resolve("en", "common.bye"))
}
