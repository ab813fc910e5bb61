package i18n

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/i18nkit/pkg/diag"
)

type localeCtxKey struct{}

// DetectorSource extracts a locale candidate from a request. Returning
// false means the source has no opinion and the next source is consulted.
type DetectorSource func(r *http.Request) (string, bool)

// FromCookie reads the locale from a cookie.
func FromCookie(name string) DetectorSource {
	return func(r *http.Request) (string, bool) {
		c, err := r.Cookie(name)
		if err != nil || c.Value == "" {
			return "", false
		}
		return c.Value, true
	}
}

// FromQuery reads the locale from a query parameter.
func FromQuery(name string) DetectorSource {
	return func(r *http.Request) (string, bool) {
		v := r.URL.Query().Get(name)
		return v, v != ""
	}
}

// FromHeader matches the Accept-Language header against available
// locales.
func FromHeader(available []string) DetectorSource {
	return func(r *http.Request) (string, bool) {
		header := r.Header.Get("Accept-Language")
		if header == "" {
			return "", false
		}
		return MatchAcceptLanguage(header, available), true
	}
}

// Middleware resolves the request locale and stores it in the request
// context for LocaleFromContext and the diag logging decorator. Sources
// are tried in order; the first with an opinion wins, constrained to
// locales the resolver actually has. Without sources the default chain
// is cookie "locale", query "locale", then Accept-Language.
func (r *Resolver) Middleware(sources ...DetectorSource) func(http.Handler) http.Handler {
	if len(sources) == 0 {
		sources = []DetectorSource{
			FromCookie("locale"),
			FromQuery("locale"),
			FromHeader(r.Locales()),
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			locale := r.fallback
			for _, source := range sources {
				candidate, ok := source(req)
				if !ok || candidate == "" {
					continue
				}
				if r.HasLocale(candidate) {
					locale = candidate
					break
				}
			}

			ctx := context.WithValue(req.Context(), localeCtxKey{}, locale)
			ctx = diag.WithLocale(ctx, locale)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}

// LocaleFromContext returns the locale stored by Middleware. Falls back
// to the empty string when the middleware is not in the chain.
func LocaleFromContext(ctx context.Context) string {
	locale, _ := ctx.Value(localeCtxKey{}).(string)
	return locale
}
