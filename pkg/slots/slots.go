package slots

import (
	"log/slog"
	"strings"

	"github.com/dmitrymomot/i18nkit/pkg/cache"
	"github.com/dmitrymomot/i18nkit/pkg/diag"
)

// DefaultMaxCacheEntries bounds the parse result cache.
const DefaultMaxCacheEntries = 100

// DefaultMaxTemplateLength is the size guard: longer templates skip slot
// parsing entirely and come back as one opaque text node.
const DefaultMaxTemplateLength = 10000

// NodeKind discriminates parsed template nodes.
type NodeKind int

const (
	// KindText is a literal text run.
	KindText NodeKind = iota
	// KindSlot is a pseudo-tag with inner content and sanitized attributes.
	KindSlot
)

// Node is one element of a parsed template: either a text run or a slot.
// Slots carry the lowercased tag name, the inner text, and an attribute
// map containing only attributes that passed sanitization. Concatenating
// Text and Content fields in order reconstructs the visible text of the
// template.
type Node struct {
	Kind    NodeKind
	Text    string
	Name    string
	Content string
	Attrs   map[string]string
}

// Parser parses translation strings containing pseudo-tags
// ("Accept <link href='/terms'>terms</link>") into node sequences for
// safe rich-content rendering. Results are memoized per template string
// in a bounded FIFO cache, since the same translation is re-rendered
// repeatedly (lists, re-renders on locale change).
//
// Returned node slices are shared with the cache and must be treated as
// read-only.
type Parser struct {
	cache  *cache.FIFO[[]Node]
	log    *slog.Logger
	maxLen int
}

// ParserOption configures a Parser during construction.
type ParserOption func(*Parser)

// WithLogger sets the diagnostics logger. Defaults to a no-op logger.
func WithLogger(log *slog.Logger) ParserOption {
	return func(p *Parser) {
		if log != nil {
			p.log = log
		}
	}
}

// WithCacheEntries sets the parse cache bound. Defaults to 100.
func WithCacheEntries(n int) ParserOption {
	return func(p *Parser) {
		if n > 0 {
			p.cache = cache.NewFIFO[[]Node](n)
		}
	}
}

// WithMaxTemplateLength sets the size guard. Defaults to 10000.
func WithMaxTemplateLength(n int) ParserOption {
	return func(p *Parser) {
		if n > 0 {
			p.maxLen = n
		}
	}
}

// NewParser creates a slot template parser.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{
		cache:  cache.NewFIFO[[]Node](DefaultMaxCacheEntries),
		log:    diag.NewNoop(),
		maxLen: DefaultMaxTemplateLength,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// defaultParser serves the package-level Parse and HasSlots for
// single-tenant hosts; multi-tenant hosts construct their own.
var defaultParser = NewParser()

// Parse parses template using a shared default parser.
func Parse(template string) []Node {
	return defaultParser.Parse(template)
}

// HasSlots reports whether template contains at least one well-formed
// slot, using a shared default parser.
func HasSlots(template string) bool {
	return defaultParser.HasSlots(template)
}

// Parse splits template into text and slot nodes. Malformed markup never
// fails: stray closing tags, comments, unmatched opening tags, and bare
// angle brackets all stay literal text. A non-empty template always
// yields at least one node.
//
// Nesting the same tag name is not supported: the nearest same-named
// closing tag terminates a slot, so <x>a <x>b</x></x> pairs the first
// opener with the first closer. Use distinct tag names for nesting.
func (p *Parser) Parse(template string) []Node {
	if template == "" {
		return nil
	}

	if len(template) > p.maxLen {
		p.log.Warn("template exceeds slot parsing size guard, treating as text",
			slog.Int("length", len(template)),
			slog.Int("limit", p.maxLen))
		return []Node{{Kind: KindText, Text: template}}
	}

	if nodes, ok := p.cache.Get(template); ok {
		return nodes
	}

	nodes := p.scan(template)
	p.cache.Set(template, nodes)
	return nodes
}

// scan is a single left-to-right pass. No backtracking beyond re-reading
// the region after an abandoned "<", so pathological input stays linear
// in practice and regex-free by design.
func (p *Parser) scan(s string) []Node {
	lower := strings.ToLower(s)

	var nodes []Node
	textStart := 0
	i := 0

	for i < len(s) {
		lt := strings.IndexByte(s[i:], '<')
		if lt < 0 {
			break
		}
		lt += i

		if lt+1 >= len(s) {
			break
		}

		next := s[lt+1]

		// Stray closing tag or comment fragment: skip one character and
		// keep accumulating text.
		if next == '/' || next == '!' {
			i = lt + 1
			continue
		}

		// Literal '<' not followed by a tag name.
		if !isAlpha(next) {
			i = lt + 1
			continue
		}

		nameEnd := lt + 1
		for nameEnd < len(s) && isNameChar(s[nameEnd]) {
			nameEnd++
		}
		name := s[lt+1 : nameEnd]

		gt := strings.IndexByte(s[nameEnd:], '>')
		if gt < 0 {
			i = lt + 1
			continue
		}
		gt += nameEnd
		attrText := s[nameEnd:gt]

		// Nearest case-insensitive matching closer; no depth tracking.
		closing := "</" + strings.ToLower(name) + ">"
		closeAt := strings.Index(lower[gt+1:], closing)
		if closeAt < 0 {
			// Unmatched opening tag is abandoned and stays literal.
			i = lt + 1
			continue
		}
		closeAt += gt + 1

		if lt > textStart {
			nodes = append(nodes, Node{Kind: KindText, Text: s[textStart:lt]})
		}

		nodes = append(nodes, Node{
			Kind:    KindSlot,
			Name:    strings.ToLower(name),
			Content: s[gt+1 : closeAt],
			Attrs:   p.parseAttributes(attrText),
		})

		i = closeAt + len(closing)
		textStart = i
	}

	if textStart < len(s) {
		nodes = append(nodes, Node{Kind: KindText, Text: s[textStart:]})
	}

	if len(nodes) == 0 {
		nodes = []Node{{Kind: KindText, Text: s}}
	}

	return nodes
}

// HasSlots reports whether template contains at least one tag with a
// matching closer. It shares Parse's scanning rules but stops at the
// first match without building nodes or touching the cache.
func (p *Parser) HasSlots(template string) bool {
	if template == "" || len(template) > p.maxLen {
		return false
	}

	s := template
	lower := strings.ToLower(s)
	i := 0

	for i < len(s) {
		lt := strings.IndexByte(s[i:], '<')
		if lt < 0 {
			return false
		}
		lt += i
		if lt+1 >= len(s) {
			return false
		}

		next := s[lt+1]
		if next == '/' || next == '!' || !isAlpha(next) {
			i = lt + 1
			continue
		}

		nameEnd := lt + 1
		for nameEnd < len(s) && isNameChar(s[nameEnd]) {
			nameEnd++
		}
		name := s[lt+1 : nameEnd]

		gt := strings.IndexByte(s[nameEnd:], '>')
		if gt < 0 {
			i = lt + 1
			continue
		}
		gt += nameEnd

		if strings.Contains(lower[gt+1:], "</"+strings.ToLower(name)+">") {
			return true
		}
		i = lt + 1
	}

	return false
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameChar(c byte) bool {
	return isAlpha(c) || (c >= '0' && c <= '9') || c == '-'
}
