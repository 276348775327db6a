package cursor

import (
	"strings"

	"bennypowers.dev/abbrls/internal/parser"
	"bennypowers.dev/abbrls/internal/parser/html"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

func resolveHTML(tree *parser.Tree, pos int) Context {
	src := tree.Source()

	var (
		stack     []AncestorNode
		styleElem *sitter.Node
		styleAttr *sitter.Node
		from      *sitter.Node
	)

	for n := tree.Resolve(pos, -1); n != nil; from, n = n, n.Parent() {
		// tags left open by a half-written document end up in ERROR nodes
		if n.IsError() {
			stack = append(stack, unclosedTags(n, from, src, pos, int(n.EndByte()))...) //nolint:gosec // G115
		} else if prev := precedingChild(n, from, pos); prev != nil && prev.IsError() {
			stack = append(stack, unclosedTags(prev, nil, src, pos, int(n.EndByte()))...) //nolint:gosec // G115
		}

		kind := n.Kind()
		switch {
		case html.IsElement(kind):
			if closedBefore(n, pos) || voidContent(n, src, pos) {
				continue
			}
			if name := html.TagName(n, src); name != "" {
				stack = append(stack, AncestorNode{Name: name, Range: nodeRange(n)})
			}
			if kind == html.NodeStyleElement && styleElem == nil {
				if start, end, ok := html.ContentRange(n); ok && within(pos, start, end) {
					styleElem = n
				}
			}

		case kind == html.NodeAttribute && styleAttr == nil:
			if !strings.EqualFold(html.AttributeName(n, src), "style") {
				continue
			}
			if start, end, ok := html.AttributeValueRange(n); ok && within(pos, start, end) {
				styleAttr = n
			}
		}
	}

	ctx := &HTMLContext{Ancestors: reversed(stack)}

	switch {
	case styleElem != nil:
		start, end, _ := html.ContentRange(styleElem)
		return embeddedCSS(src, int(start), int(end), pos, ctx) //nolint:gosec // G115
	case styleAttr != nil:
		start, end, _ := html.AttributeValueRange(styleAttr)
		ctx.CSS = inlineCSS(src[start:end], int(start), pos) //nolint:gosec // G115
	}
	return ctx
}

// closedBefore reports whether an element was closed at or before pos.
// Unclosed elements still enclose a cursor sitting at their very end.
func closedBefore(n *sitter.Node, pos int) bool {
	if pos < int(n.EndByte()) { //nolint:gosec // G115
		return false
	}
	return childOfKind(n, html.NodeEndTag) != nil || childOfKind(n, html.NodeSelfClosingTag) != nil
}

// voidContent reports whether n is a void element and pos lies past its
// tag. The grammar lets a void element absorb the text that follows it, but
// nothing can be inside one.
func voidContent(n *sitter.Node, src []byte, pos int) bool {
	if !html.IsVoid(html.TagName(n, src)) {
		return false
	}
	tag := childOfKind(n, html.NodeStartTag)
	if tag == nil {
		tag = childOfKind(n, html.NodeSelfClosingTag)
	}
	return tag == nil || pos >= int(tag.EndByte()) //nolint:gosec // G115
}

type openTag struct {
	name  string
	start int
}

// unclosedTags returns the tags opened before pos among the children of the
// error node n and not closed again, innermost first. Each one is taken to
// extend to end. Tags inside skip were already collected by the ascent.
func unclosedTags(n, skip *sitter.Node, src []byte, pos, end int) []AncestorNode {
	open := scanTags(n, skip, src, pos, nil)
	if end < pos {
		end = pos
	}

	out := make([]AncestorNode, 0, len(open))
	for i := len(open) - 1; i >= 0; i-- {
		out = append(out, AncestorNode{Name: open[i].name, Range: Range{Start: open[i].start, End: end}})
	}
	return out
}

func scanTags(n, skip *sitter.Node, src []byte, pos int, open []openTag) []openTag {
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		if int(child.StartByte()) >= pos { //nolint:gosec // G115
			break
		}

		switch kind := child.Kind(); {
		case kind == html.NodeStartTag:
			if name := html.TagNodeName(child, src); name != "" && !html.IsVoid(name) {
				open = append(open, openTag{name: name, start: int(child.StartByte())}) //nolint:gosec // G115
			}
		case html.IsCloseTag(kind):
			name := html.TagNodeName(child, src)
			for j := len(open) - 1; j >= 0; j-- {
				if strings.EqualFold(open[j].name, name) {
					open = open[:j]
					break
				}
			}
		case child.IsError() && (skip == nil || !sameNode(child, skip)):
			open = scanTags(child, nil, src, pos, open)
		}
	}
	return open
}

func within(pos int, start, end uint) bool {
	return int(start) <= pos && pos <= int(end) //nolint:gosec // G115
}
