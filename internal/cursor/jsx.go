package cursor

import (
	"bennypowers.dev/abbrls/internal/parser"
	"bennypowers.dev/abbrls/internal/parser/js"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// resolveJSX walks JSX elements as markup. A cursor inside a css`...` tagged
// template resolves to a stylesheet context hosted by the surrounding elements.
func resolveJSX(tree *parser.Tree, pos int) Context {
	src := tree.Source()

	var (
		stack    []AncestorNode
		template *sitter.Node
	)

	for n := tree.Resolve(pos, -1); n != nil; n = n.Parent() {
		kind := n.Kind()
		switch {
		case js.IsElement(kind):
			if pos >= int(n.EndByte()) { //nolint:gosec // G115
				continue
			}
			if name := js.ElementName(n, src); name != "" {
				stack = append(stack, AncestorNode{Name: name, Range: nodeRange(n)})
			}

		case kind == js.NodeTemplateString && template == nil:
			r := nodeRange(n)
			if r.Start < pos && pos < r.End && js.TemplateTag(n, src) == "css" {
				template = n
			}
		}
	}

	ctx := &HTMLContext{Ancestors: reversed(stack)}
	if template != nil {
		r := nodeRange(template)
		return embeddedCSS(src, r.Start+1, r.End-1, pos, ctx)
	}
	return ctx
}
