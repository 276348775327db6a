package cursor

import (
	"bennypowers.dev/abbrls/internal/log"
	"bennypowers.dev/abbrls/internal/parser"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Resolve returns the context at offset in tree, or nil when the tree is nil or
// was parsed with a grammar the resolver does not walk. Offsets outside the
// document are clamped. Nothing is retained between calls.
func Resolve(tree *parser.Tree, offset int) Context {
	if tree == nil {
		return nil
	}

	pos := parser.Clamp(offset, len(tree.Source()))
	switch tree.Grammar() {
	case parser.GrammarCSS:
		return resolveCSS(tree.Root(), tree.Source(), pos)
	case parser.GrammarHTML:
		return resolveHTML(tree, pos)
	case parser.GrammarJS:
		return resolveJSX(tree, pos)
	}
	return nil
}

// embeddedCSS resolves pos inside a stylesheet occupying src[start:end] of a
// host document, with ranges reported in host coordinates.
func embeddedCSS(src []byte, start, end, pos int, host *HTMLContext) *CSSContext {
	content := src[start:end]
	tree, err := parser.ParseGrammar(parser.GrammarCSS, content)
	if err != nil {
		log.Warn("failed to parse embedded stylesheet: %v", err)
		return &CSSContext{Embedded: host}
	}
	defer tree.Close()

	ctx := resolveCSS(tree.Root(), content, pos-start)
	ctx.shift(start)
	ctx.Embedded = host
	return ctx
}

// inlineWrapper turns a declaration list into a parseable rule
const inlineWrapper = "x{"

// inlineCSS resolves pos inside a style attribute value starting at valueStart
func inlineCSS(value []byte, valueStart, pos int) *CSSContext {
	wrapped := make([]byte, 0, len(value)+len(inlineWrapper)+1)
	wrapped = append(wrapped, inlineWrapper...)
	wrapped = append(wrapped, value...)
	wrapped = append(wrapped, '}')

	tree, err := parser.ParseGrammar(parser.GrammarCSS, wrapped)
	if err != nil {
		log.Warn("failed to parse inline style: %v", err)
		return &CSSContext{Inline: true}
	}
	defer tree.Close()

	ctx := resolveCSS(tree.Root(), wrapped, pos-valueStart+len(inlineWrapper))

	// the wrapper's selector is not part of the document
	if len(ctx.Ancestors) > 0 && ctx.Ancestors[0].Range.Start == 0 {
		ctx.Ancestors = ctx.Ancestors[1:]
	}
	if ctx.Current != nil && ctx.Current.Kind == Selector && ctx.Current.Range.Start == 0 {
		ctx.Current = nil
	}

	ctx.shift(valueStart - len(inlineWrapper))
	ctx.Inline = true
	return ctx
}

func (c *CSSContext) shift(delta int) {
	for i := range c.Ancestors {
		c.Ancestors[i].Range = c.Ancestors[i].Range.Shift(delta)
	}
	if c.Current != nil {
		c.Current.Range = c.Current.Range.Shift(delta)
	}
}

func nodeRange(n *sitter.Node) Range {
	return Range{Start: int(n.StartByte()), End: int(n.EndByte())} //nolint:gosec // G115: byte offsets are bounded by source length
}

func childOfKind(n *sitter.Node, kind string) *sitter.Node {
	for i := uint(0); i < n.ChildCount(); i++ {
		if child := n.Child(i); child.Kind() == kind {
			return child
		}
	}
	return nil
}

// reversed converts an innermost-first stack into an outermost-first chain
func reversed(stack []AncestorNode) []AncestorNode {
	out := make([]AncestorNode, len(stack))
	for i, a := range stack {
		out[len(stack)-1-i] = a
	}
	return out
}

// precedingChild returns the last child of n that ends at or before pos and
// comes before from, the child the ascent arrived through. With a nil from
// every child ending at or before pos is considered.
func precedingChild(n, from *sitter.Node, pos int) *sitter.Node {
	var prev *sitter.Node
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		if from != nil && sameNode(child, from) {
			break
		}
		if int(child.EndByte()) > pos { //nolint:gosec // G115
			break
		}
		prev = child
	}
	return prev
}

func sameNode(a, b *sitter.Node) bool {
	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Kind() == b.Kind()
}

// walkLeaves visits the non-empty leaves of n in source order, up to and
// including the leaf that spans pos, passing over the subtree skip.
// visit returns false to stop.
func walkLeaves(n, skip *sitter.Node, pos int, visit func(leaf *sitter.Node) bool) bool {
	if int(n.StartByte()) >= pos { //nolint:gosec // G115
		return false
	}
	if skip != nil && sameNode(n, skip) {
		return true
	}
	if n.ChildCount() == 0 {
		if n.StartByte() == n.EndByte() {
			return true
		}
		return visit(n)
	}
	for i := uint(0); i < n.ChildCount(); i++ {
		if !walkLeaves(n.Child(i), skip, pos, visit) {
			return false
		}
	}
	return true
}
