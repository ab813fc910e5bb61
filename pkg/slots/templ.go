package slots

import (
	"context"
	"html"
	"io"

	"github.com/a-h/templ"
)

// ComponentRenderer renders one slot node as a templ component.
type ComponentRenderer func(Node) templ.Component

// Component adapts parsed nodes to a templ.Component for embedding in
// templ views. Text nodes and auto-rendered slots are escaped; slots
// with a ComponentRenderer delegate to it:
//
//	nodes := slots.Parse(resolver.Resolve(locale, "legal.accept"))
//	c := slots.Component(nodes, map[string]slots.ComponentRenderer{
//		"link": func(n slots.Node) templ.Component {
//			return termsLink(n.Attrs["href"], n.Content)
//		},
//	})
func Component(nodes []Node, renderers map[string]ComponentRenderer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, node := range nodes {
			switch node.Kind {
			case KindText:
				if _, err := io.WriteString(w, html.EscapeString(node.Text)); err != nil {
					return err
				}
			case KindSlot:
				if r, ok := renderers[node.Name]; ok {
					if err := r(node).Render(ctx, w); err != nil {
						return err
					}
					continue
				}
				if _, err := io.WriteString(w, AutoRender(node)); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
