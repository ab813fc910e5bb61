// Package slots parses translation strings containing pseudo-tags into
// node sequences for safe rich-content rendering.
//
// A translation like
//
//	"Accept <link href='/terms'>the terms</link> and <b>read</b> them"
//
// parses into interleaved text and slot nodes. The renderer maps each
// slot name to real UI content: a caller-supplied renderer for custom
// slots, or automatic rendering for a small whitelist of inline HTML
// tags (b, strong, i, em, u, s, mark, small, sub, sup, span) with only
// the class, title, lang, and dir attributes.
//
// # Security
//
// Attribute parsing is where injection is stopped, and it fails closed:
//
//   - event handler attributes (onclick, onmouseover, ...) are dropped;
//   - URL-bearing attributes (href, src, action, formaction,
//     xlink:href, poster) must be relative or carry an http, https,
//     mailto, or tel protocol — javascript:, data:, and obfuscated
//     variants are rejected after control-character stripping;
//   - RenderHTML output additionally passes through a bluemonday policy.
//
// # Parsing model
//
// Scanning is a single left-to-right pass with no regex matching, so
// malformed input cannot trigger catastrophic backtracking; anything
// that does not form a complete tag pair stays literal text. Templates
// over 10,000 characters skip parsing entirely and come back as one
// text node. Same-name tag nesting is not supported — the nearest
// matching closer wins — which is a documented limitation; use distinct
// tag names when nesting.
//
// Parse results are memoized per template in a bounded FIFO cache
// (100 entries by default) because the same resolved translation is
// typically rendered many times.
package slots
