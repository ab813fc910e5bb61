package i18n

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/singleflight"
)

// Loader fetches the translation tree for a locale from an external
// source (files, network, database). It is the only asynchronous
// collaborator of the core: the Resolver itself never initiates loads.
type Loader interface {
	Load(ctx context.Context, locale string) (Tree, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, locale string) (Tree, error)

func (f LoaderFunc) Load(ctx context.Context, locale string) (Tree, error) {
	return f(ctx, locale)
}

// Source lazily populates a Resolver's dictionary on first access to a
// locale. Concurrent Ensure calls for the same locale are deduplicated
// with singleflight so the loader runs once per locale.
type Source struct {
	resolver *Resolver
	loader   Loader
	sf       singleflight.Group
}

// NewSource wraps a resolver with a lazy locale loader.
func NewSource(resolver *Resolver, loader Loader) (*Source, error) {
	if resolver == nil {
		return nil, ErrNilResolver
	}
	if loader == nil {
		return nil, ErrNilLoader
	}
	return &Source{resolver: resolver, loader: loader}, nil
}

// Ensure makes the locale's translations available, loading them on first
// use. Subsequent calls for a loaded locale return immediately.
func (s *Source) Ensure(ctx context.Context, locale string) error {
	if locale == "" {
		return ErrEmptyLocale
	}
	if s.resolver.HasLocale(locale) {
		return nil
	}

	_, err, _ := s.sf.Do(normalizeLocale(locale), func() (any, error) {
		// Re-check under the flight: a concurrent Ensure may have
		// completed between the fast path and here.
		if s.resolver.HasLocale(locale) {
			return nil, nil
		}

		tree, err := s.loader.Load(ctx, locale)
		if err != nil {
			return nil, errors.Join(ErrLoadFailed, err)
		}

		s.resolver.Merge(locale, tree)
		return nil, nil
	})
	return err
}

// Resolve ensures the locale is loaded, then resolves the key. Load
// failures degrade to fallback-tier resolution; the error policy of the
// core (never throw on the render path) is preserved by logging inside
// Ensure's caller and continuing.
func (s *Source) Resolve(ctx context.Context, locale, key string, params ...M) string {
	if err := s.Ensure(ctx, locale); err != nil {
		s.resolver.log.Warn("lazy locale load failed, using fallback tier",
			slog.String("locale", locale),
			slog.String("error", err.Error()))
	}
	return s.resolver.Resolve(locale, key, params...)
}

// Resolver returns the wrapped resolver.
func (s *Source) Resolver() *Resolver {
	return s.resolver
}
