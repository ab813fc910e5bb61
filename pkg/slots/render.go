package slots

import (
	"html"
	"sort"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// autoTags is the fixed whitelist of inline tags rendered without a
// caller-supplied renderer.
var autoTags = map[string]struct{}{
	"b": {}, "strong": {}, "i": {}, "em": {}, "u": {}, "s": {},
	"mark": {}, "small": {}, "sub": {}, "sup": {}, "span": {},
}

// autoAttrs are the only attributes emitted for auto-rendered tags.
// "style" is deliberately excluded: CSS exfiltration and UI redressing.
var autoAttrs = map[string]struct{}{
	"class": {}, "title": {}, "lang": {}, "dir": {},
}

// RendererFunc renders one slot node to an HTML fragment. The function
// is responsible for escaping the node's Content; use AutoRender for the
// common escaped case.
type RendererFunc func(Node) string

var (
	renderPolicy *bluemonday.Policy
	policyOnce   sync.Once
)

func htmlPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.NewPolicy()
		p.AllowStandardURLs()
		p.AllowElements("a", "b", "strong", "i", "em", "u", "s", "mark", "small", "sub", "sup", "span")
		p.AllowAttrs("href").OnElements("a")
		p.AllowAttrs("class", "title", "lang", "dir").Globally()
		p.RequireNoFollowOnLinks(true)
		renderPolicy = p
	})
	return renderPolicy
}

// RenderHTML renders parsed nodes to an HTML string. Slots are rendered
// by name via renderers; slots without a renderer are auto-rendered when
// the tag is in the inline whitelist, otherwise only their escaped
// content is emitted. The whole result passes through a bluemonday
// policy as a final guard, so a misbehaving caller renderer cannot
// smuggle scripts or unexpected markup into the output.
func RenderHTML(nodes []Node, renderers map[string]RendererFunc) string {
	var b strings.Builder

	for _, node := range nodes {
		switch node.Kind {
		case KindText:
			b.WriteString(html.EscapeString(node.Text))
		case KindSlot:
			if r, ok := renderers[node.Name]; ok {
				b.WriteString(r(node))
				continue
			}
			b.WriteString(AutoRender(node))
		}
	}

	return htmlPolicy().Sanitize(b.String())
}

// AutoRender renders a slot node as an inline HTML tag with escaped
// content, keeping only the safe attribute subset. Tags outside the
// whitelist render as escaped content without markup.
func AutoRender(node Node) string {
	if _, ok := autoTags[node.Name]; !ok {
		return html.EscapeString(node.Content)
	}

	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(node.Name)

	// Sorted for deterministic output.
	names := make([]string, 0, len(node.Attrs))
	for name := range node.Attrs {
		if _, ok := autoAttrs[name]; ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		b.WriteByte(' ')
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(node.Attrs[name]))
		b.WriteByte('"')
	}

	b.WriteByte('>')
	b.WriteString(html.EscapeString(node.Content))
	b.WriteString("</")
	b.WriteString(node.Name)
	b.WriteByte('>')

	return b.String()
}
