package i18n

import (
	"fmt"
	"log/slog"
	"maps"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/i18nkit/pkg/diag"
	"github.com/dmitrymomot/i18nkit/pkg/format"
)

// DefaultFallbackLocale is used when no fallback locale is configured.
const DefaultFallbackLocale = "en"

// M holds interpolation parameters for a translation. Values are strings,
// numbers, or time.Time; the reserved key "count" selects the plural
// category when present and numeric.
type M map[string]any

// Tree is a nested translation tree. Values are string leaves, nested
// Tree/map[string]any branches, or plural groups: maps whose keys are
// CLDR categories (zero/one/two/few/many/other). A plural group should
// contain "other"; its absence degrades to a lookup miss, never a panic.
type Tree = map[string]any

// Dictionary maps locale identifiers to translation trees. Locale
// comparison is case-insensitive; the original casing is preserved in
// Locales().
type Dictionary = map[string]Tree

// Resolver resolves translation keys to localized strings, combining
// nested-key lookup, locale fallback, CLDR pluralization, and placeholder
// interpolation. Configuration is immutable after New; the dictionary
// itself may be extended at runtime via Merge (copy-on-write), which is
// how lazy locale loading is layered on top (see Source).
type Resolver struct {
	dict       atomic.Pointer[Dictionary] // normalized locale -> tree
	mu         sync.Mutex                 // serializes Merge
	locales    []string                   // original casing, sorted
	aliases    map[string]string          // normalized variant -> canonical
	fallback   string
	missingKey func(key, locale string)
	formatters *format.Cache
	log        *slog.Logger
}

// Option configures a Resolver during construction.
type Option func(*Resolver) error

// New creates a Resolver with the given options.
func New(opts ...Option) (*Resolver, error) {
	r := &Resolver{
		aliases:  make(map[string]string),
		fallback: DefaultFallbackLocale,
		log:      diag.NewNoop(),
	}
	empty := Dictionary{}
	r.dict.Store(&empty)

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if r.fallback == "" {
		return nil, ErrEmptyLocale
	}
	if r.formatters == nil {
		r.formatters = format.New(format.WithLogger(r.log))
	}

	sort.Strings(r.locales)

	return r, nil
}

// WithFallbackLocale sets the locale tried when a key is missing in the
// requested locale. Defaults to "en".
func WithFallbackLocale(locale string) Option {
	return func(r *Resolver) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		r.fallback = locale
		return nil
	}
}

// WithTranslations registers a translation tree for a locale. Repeated
// use for the same locale deep-merges trees without mutating previously
// registered ones.
func WithTranslations(locale string, tree Tree) Option {
	return func(r *Resolver) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		r.merge(locale, tree)
		return nil
	}
}

// WithDictionary registers translation trees for multiple locales.
func WithDictionary(dict Dictionary) Option {
	return func(r *Resolver) error {
		for locale, tree := range dict {
			if locale == "" {
				return ErrEmptyLocale
			}
			r.merge(locale, tree)
		}
		return nil
	}
}

// WithLocaleAliases registers casing/spelling variants that canonicalize
// to another locale, e.g. {"en_US": "en-US"}. Both sides are compared
// case-insensitively.
func WithLocaleAliases(aliases map[string]string) Option {
	return func(r *Resolver) error {
		for variant, canonical := range aliases {
			if variant == "" || canonical == "" {
				return ErrEmptyLocale
			}
			r.aliases[normalizeLocale(variant)] = normalizeLocale(canonical)
		}
		return nil
	}
}

// WithMissingKeyHandler sets a handler invoked when a key is absent in the
// requested locale and the fallback tier is entered. Useful for telemetry
// on untranslated keys. Without a handler a warning is logged instead.
func WithMissingKeyHandler(handler func(key, locale string)) Option {
	return func(r *Resolver) error {
		r.missingKey = handler
		return nil
	}
}

// WithLogger sets the diagnostics logger. Defaults to a no-op logger.
func WithLogger(log *slog.Logger) Option {
	return func(r *Resolver) error {
		if log != nil {
			r.log = log
		}
		return nil
	}
}

// WithFormatters sets the formatter cache used for interpolation
// directives and plural rules. Defaults to a private instance; inject a
// shared one to reuse formatter memoization across resolvers.
func WithFormatters(fc *format.Cache) Option {
	return func(r *Resolver) error {
		if fc != nil {
			r.formatters = fc
		}
		return nil
	}
}

// Resolve returns the localized string for key under locale, falling back
// to the configured fallback locale and finally to the key itself. When
// params carry a numeric "count", plural-group keys are resolved using
// the CLDR rules of the locale whose tree matched; formatting directives
// always use the requested locale. Resolve never fails: every miss
// degrades to visible output plus a diagnostic.
func (r *Resolver) Resolve(locale, key string, params ...M) string {
	p := mergeParams(params...)

	count, hasCount := numericValue(p["count"])

	raw, ok := r.lookup(locale, key, count, hasCount)
	if !ok && !sameLocale(locale, r.fallback) {
		r.notifyMissing(key, locale)
		// The fallback tree is matched with the fallback locale's own
		// plural rules: its category set may differ from the requested
		// locale's.
		raw, ok = r.lookup(r.fallback, key, count, hasCount)
	}
	if !ok {
		return key
	}

	return r.interpolate(raw, p, locale, key)
}

// T is shorthand for Resolve.
func (r *Resolver) T(locale, key string, params ...M) string {
	return r.Resolve(locale, key, params...)
}

// Tn resolves a pluralized key, injecting n as the "count" param.
func (r *Resolver) Tn(locale, key string, n int, params ...M) string {
	merged := M{"count": n}
	for _, p := range params {
		maps.Copy(merged, p)
	}
	return r.Resolve(locale, key, merged)
}

// Interpolate substitutes placeholders in template using the given locale
// for formatting directives. Exposed for callers that resolve raw
// translation strings themselves.
func (r *Resolver) Interpolate(template string, params M, locale string) string {
	return r.interpolate(template, params, locale, "")
}

// FallbackLocale returns the configured fallback locale.
func (r *Resolver) FallbackLocale() string {
	return r.fallback
}

// Locales returns the locales with registered translations, in their
// original casing, sorted.
func (r *Resolver) Locales() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.locales...)
}

// HasLocale reports whether translations are registered for locale.
func (r *Resolver) HasLocale(locale string) bool {
	_, ok := (*r.dict.Load())[r.canonical(locale)]
	return ok
}

// Merge registers or extends the translation tree for a locale at
// runtime. The dictionary is replaced copy-on-write: in-flight Resolve
// calls keep the tree they started with.
func (r *Resolver) Merge(locale string, tree Tree) {
	r.merge(locale, tree)
}

// lookup resolves key against one locale tier. With a count the key is
// treated as a plural group first, then as a plain string leaf.
func (r *Resolver) lookup(locale, key string, count float64, hasCount bool) (string, bool) {
	tree, ok := (*r.dict.Load())[r.canonical(locale)]
	if !ok {
		return "", false
	}

	if hasCount {
		suffix := r.PluralSuffix(locale, count)
		return resolvePluralKey(tree, key, suffix)
	}

	v, ok := NestedValue(tree, key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func (r *Resolver) notifyMissing(key, locale string) {
	if r.missingKey != nil {
		r.missingKey(key, locale)
		return
	}
	r.log.Warn("missing translation key",
		slog.String("key", key),
		slog.String("locale", locale))
}

func (r *Resolver) merge(locale string, tree Tree) {
	r.mu.Lock()
	defer r.mu.Unlock()

	norm := normalizeLocale(locale)
	if canonical, ok := r.aliases[norm]; ok {
		norm = canonical
	}

	old := *r.dict.Load()
	next := make(Dictionary, len(old)+1)
	maps.Copy(next, old)

	if existing, ok := next[norm]; ok {
		next[norm] = mergeTrees(existing, tree)
	} else {
		next[norm] = mergeTrees(nil, tree)
		r.locales = append(r.locales, locale)
		sort.Strings(r.locales)
	}

	r.dict.Store(&next)
}

// canonical maps a locale to its normalized, alias-resolved form.
func (r *Resolver) canonical(locale string) string {
	norm := normalizeLocale(locale)
	if canonical, ok := r.aliases[norm]; ok {
		return canonical
	}
	return norm
}

func normalizeLocale(locale string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
}

func sameLocale(a, b string) bool {
	return normalizeLocale(a) == normalizeLocale(b)
}

// mergeTrees deep-merges src over dst into a fresh tree; neither input is
// mutated, preserving consistent snapshots for concurrent readers.
func mergeTrees(dst, src Tree) Tree {
	out := make(Tree, len(dst)+len(src))
	maps.Copy(out, dst)

	for k, v := range src {
		srcSub, srcIsMap := asTree(v)
		dstSub, dstIsMap := asTree(out[k])
		if srcIsMap && dstIsMap {
			out[k] = mergeTrees(dstSub, srcSub)
			continue
		}
		if srcIsMap {
			out[k] = mergeTrees(nil, srcSub)
			continue
		}
		out[k] = v
	}

	return out
}

func asTree(v any) (Tree, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case M:
		return map[string]any(m), true
	case map[string]string:
		out := make(Tree, len(m))
		for k, s := range m {
			out[k] = s
		}
		return out, true
	}
	return nil, false
}

func mergeParams(params ...M) M {
	if len(params) == 0 {
		return nil
	}
	merged := make(M)
	for _, p := range params {
		maps.Copy(merged, p)
	}
	return merged
}
