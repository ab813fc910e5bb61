package format

import (
	"encoding/json"
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/i18nkit/pkg/cache"
	"github.com/dmitrymomot/i18nkit/pkg/diag"
)

// DefaultFallbackLocale is used when a locale string cannot be parsed.
const DefaultFallbackLocale = "en"

// DefaultMaxEntries is the per-kind formatter cache bound.
const DefaultMaxEntries = 50

// Kind identifies a formatter cache bucket.
type Kind string

const (
	KindNumber   Kind = "number"
	KindCurrency Kind = "currency"
	KindDate     Kind = "date"
	KindList     Kind = "list"
	KindPlural   Kind = "plural"
)

// Options carries formatter construction options. Keys follow the
// translation-file conventions: "minimumFractionDigits",
// "maximumFractionDigits", "style".
type Options map[string]any

// Cache memoizes locale-aware formatters per kind with bounded FIFO
// eviction. It is an explicit, injectable object rather than a hidden
// package global so multi-tenant hosts can scope one per request or
// share a single instance; all methods are safe for concurrent use.
type Cache struct {
	numbers    *cache.FIFO[numberFormatter]
	currencies *cache.FIFO[currencyFormatter]
	dates      *cache.FIFO[dateFormatter]
	lists      *cache.FIFO[listFormatter]
	plurals    *cache.FIFO[language.Tag]
	log        *slog.Logger
	fallback   language.Tag
	maxEntries int
}

// Option configures a Cache during construction.
type Option func(*Cache)

// WithLogger sets the diagnostics logger. Defaults to a no-op logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Cache) {
		if log != nil {
			c.log = log
		}
	}
}

// WithMaxEntries sets the per-kind cache bound. Defaults to 50.
func WithMaxEntries(n int) Option {
	return func(c *Cache) {
		if n > 0 {
			c.maxEntries = n
		}
	}
}

// WithFallbackLocale sets the locale used when construction fails for an
// invalid locale string. The fallback itself must be well-formed;
// malformed values are ignored.
func WithFallbackLocale(locale string) Option {
	return func(c *Cache) {
		if tag, err := language.Parse(locale); err == nil {
			c.fallback = tag
		}
	}
}

// New creates a formatter cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		log:        diag.NewNoop(),
		fallback:   language.MustParse(DefaultFallbackLocale),
		maxEntries: DefaultMaxEntries,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.numbers = cache.NewFIFO[numberFormatter](c.maxEntries)
	c.currencies = cache.NewFIFO[currencyFormatter](c.maxEntries)
	c.dates = cache.NewFIFO[dateFormatter](c.maxEntries)
	c.lists = cache.NewFIFO[listFormatter](c.maxEntries)
	c.plurals = cache.NewFIFO[language.Tag](c.maxEntries)

	return c
}

// Size returns the number of cached formatters for a kind.
func (c *Cache) Size(kind Kind) int {
	if f := c.bucketLen(kind); f != nil {
		return f()
	}
	return 0
}

// Contains reports whether a formatter for the given locale and options
// is currently cached. Exposed so hosts can observe eviction behavior.
func (c *Cache) Contains(kind Kind, locale string, opts Options) bool {
	key := Key(locale, opts)
	switch kind {
	case KindNumber:
		return c.numbers.Has(key)
	case KindCurrency:
		return c.currencies.Has(key)
	case KindDate:
		return c.dates.Has(key)
	case KindList:
		return c.lists.Has(key)
	case KindPlural:
		return c.plurals.Has(key)
	}
	return false
}

func (c *Cache) bucketLen(kind Kind) func() int {
	switch kind {
	case KindNumber:
		return c.numbers.Len
	case KindCurrency:
		return c.currencies.Len
	case KindDate:
		return c.dates.Len
	case KindList:
		return c.lists.Len
	case KindPlural:
		return c.plurals.Len
	}
	return nil
}

// Key builds the cache key for a locale and options pair. Option keys are
// sorted before serialization so insertion order of the map never causes
// a cache miss.
func Key(locale string, opts Options) string {
	if len(opts) == 0 {
		return locale
	}

	keys := make([]string, 0, len(opts))
	for k := range opts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(locale)
	b.WriteString("|{")
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		kb, _ := json.Marshal(k)
		b.Write(kb)
		b.WriteByte(':')
		vb, err := json.Marshal(opts[k])
		if err != nil {
			vb = []byte(`null`)
		}
		b.Write(vb)
	}
	b.WriteByte('}')
	return b.String()
}

// tag parses a locale string, memoizing the result in the plural-rules
// bucket. Malformed locales log a warning and resolve to the fallback
// tag, cached under the original failing key so repeated calls do not
// re-parse and re-warn.
func (c *Cache) tag(locale string) language.Tag {
	if t, ok := c.plurals.Get(locale); ok {
		return t
	}

	t, err := language.Parse(locale)
	if err != nil {
		c.log.Warn("invalid locale, using fallback",
			slog.String("locale", locale),
			slog.String("fallback", c.fallback.String()),
			slog.String("error", err.Error()))
		t = c.fallback
	}
	c.plurals.Set(locale, t)
	return t
}

func optString(opts Options, key string) (string, bool) {
	v, ok := opts[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func optInt(opts Options, key string) (int, bool) {
	v, ok := opts[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
