package cursor

import (
	"bytes"
	"strings"

	"bennypowers.dev/abbrls/internal/parser"
	"bennypowers.dev/abbrls/internal/parser/css"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// resolveCSS builds the stylesheet context for pos in the tree rooted at root.
// Ranges are relative to src.
func resolveCSS(root *sitter.Node, src []byte, pos int) *CSSContext {
	ctx := &CSSContext{}
	node := parser.ResolveIn(root, len(src), pos, -1)

	// Right after a closing brace the cursor has left that block and its owner
	if node != nil && node.Kind() == css.TokenBlockClose && pos >= int(node.EndByte()) { //nolint:gosec // G115
		ctx.Current = &Token{Kind: BlockEnd, Name: css.TokenBlockClose, Range: nodeRange(node)}
		for range 3 {
			if node == nil {
				break
			}
			node = node.Parent()
		}
	}

	// innermost first
	var (
		stack []Token
		from  *sitter.Node
	)
	for n := node; n != nil; from, n = n, n.Parent() {
		if n.IsError() {
			var nested *sitter.Node
			if from != nil && from.IsError() {
				nested = from
			}
			stack = append(stack, unclosedRules(n, nested, src, pos, len(stack) == 0)...)
		} else if prev := precedingChild(n, from, pos); prev != nil {
			// from is nil when the cursor sits in whitespace directly in n
			switch {
			case prev.IsError():
				stack = append(stack, unclosedRules(prev, nil, src, pos, from == nil && len(stack) == 0)...)
			case from == nil && prev.Kind() == css.NodeDeclaration:
				stack = appendDeclaration(stack, prev, src, pos)
			}
		}

		kind := n.Kind()
		switch {
		case kind == css.NodeRuleSet:
			if sel := childOfKind(n, css.NodeSelectors); sel != nil {
				stack = append(stack, Token{Kind: Selector, Name: sel.Utf8Text(src), Range: nodeRange(sel)})
			}
		case css.IsAtRule(kind):
			if tok, ok := atRulePrelude(n, src); ok {
				stack = append(stack, tok)
			}
		case kind == css.NodeDeclaration:
			stack = appendDeclaration(stack, n, src, pos)
		}
	}

	if ctx.Current == nil && len(stack) > 0 {
		tip := stack[0]
		rng := tip.Range
		if tip.Kind == Selector {
			// the opening brace belongs to the selector
			rng.End++
		}
		if rng.Contains(pos) {
			tip.Range = rng
			ctx.Current = &tip
			stack = stack[1:]
		}
	}

	ancestors := make([]AncestorNode, len(stack))
	for i, tok := range stack {
		ancestors[i] = AncestorNode{Name: tok.Name, Range: tok.Range}
	}
	ctx.Ancestors = reversed(ancestors)
	return ctx
}

// appendDeclaration pushes the value (when it holds the cursor) and the
// property name of a declaration. A declaration already terminated before
// the cursor contributes nothing.
func appendDeclaration(stack []Token, decl *sitter.Node, src []byte, pos int) []Token {
	var (
		name       *sitter.Node
		value      Range
		hasValue   bool
		afterColon bool
		colonEnd   int
	)

	for i := uint(0); i < decl.ChildCount(); i++ {
		child := decl.Child(i)
		kind := child.Kind()
		switch {
		case kind == css.TokenSemicolon:
			if pos >= int(child.EndByte()) { //nolint:gosec // G115
				return stack
			}
		case !afterColon && kind == css.NodePropertyName:
			name = child
		case !afterColon && kind == css.TokenColon:
			afterColon = true
			colonEnd = int(child.EndByte()) //nolint:gosec // G115
		case child.StartByte() == child.EndByte():
			// missing nodes inserted by error recovery
		case afterColon:
			r := nodeRange(child)
			if !hasValue {
				value.Start = r.Start
				hasValue = true
			}
			value.End = r.End
		}
	}

	// a value not typed yet is empty at the cursor
	if afterColon && !hasValue && pos >= colonEnd {
		value = Range{Start: pos, End: pos}
		hasValue = true
	}

	if hasValue && value.Contains(pos) {
		stack = append(stack, Token{
			Kind:  PropertyValue,
			Name:  string(src[value.Start:value.End]),
			Range: value,
		})
	}
	if name != nil {
		stack = append(stack, Token{Kind: PropertyName, Name: name.Utf8Text(src), Range: nodeRange(name)})
	}
	return stack
}

// unclosedRules recovers the rules opened before pos inside the error node n
// and not closed again, innermost first, as selector tokens. With
// withDeclaration set, a trailing "name: value" being typed inside a block is
// returned ahead of them as a property value and name. Leaves inside skip
// were already collected by the ascent.
func unclosedRules(n, skip *sitter.Node, src []byte, pos int, withDeclaration bool) []Token {
	var (
		open     []Token
		segStart = int(n.StartByte()) //nolint:gosec // G115
		colon    = -1
		spanning *sitter.Node
	)

	walkLeaves(n, skip, pos, func(leaf *sitter.Node) bool {
		start, end := int(leaf.StartByte()), int(leaf.EndByte()) //nolint:gosec // G115
		if end > pos {
			spanning = leaf
			return false
		}
		switch leaf.Kind() {
		case css.TokenBlockOpen:
			// an empty prelude still pairs with its closing brace
			open = append(open, trimmedToken(Selector, src, segStart, start))
			segStart, colon = end, -1
		case css.TokenBlockClose:
			if len(open) > 0 {
				open = open[:len(open)-1]
			}
			segStart, colon = end, -1
		case css.TokenSemicolon:
			segStart, colon = end, -1
		case css.TokenColon:
			if colon < 0 {
				colon = start
			}
		}
		return true
	})

	var out []Token
	if withDeclaration && colon >= 0 && (len(open) > 0 || insideBlock(n)) {
		name := trimmedToken(PropertyName, src, segStart, colon)
		if name.Name != "" && !strings.ContainsAny(name.Name, " \t\r\n") {
			valueEnd := pos
			if spanning != nil && int(spanning.StartByte()) > colon { //nolint:gosec // G115
				valueEnd = int(spanning.EndByte()) //nolint:gosec // G115
			}
			value := trimmedToken(PropertyValue, src, colon+1, valueEnd)
			if value.Name == "" {
				value.Range = Range{Start: pos, End: pos}
			}
			out = append(out, value, name)
		}
	}
	for i := len(open) - 1; i >= 0; i-- {
		if open[i].Name != "" {
			out = append(out, open[i])
		}
	}
	return out
}

// trimmedToken returns src[start:end] without surrounding whitespace as a
// token of kind
func trimmedToken(kind TokenKind, src []byte, start, end int) Token {
	text := src[start:end]
	lead := len(text) - len(bytes.TrimLeft(text, " \t\r\n"))
	text = bytes.TrimSpace(text)
	return Token{
		Kind:  kind,
		Name:  string(text),
		Range: Range{Start: start + lead, End: start + lead + len(text)},
	}
}

func insideBlock(n *sitter.Node) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.Kind() == css.NodeBlock {
			return true
		}
	}
	return false
}

// atRulePrelude returns the text between an at-rule's start and its body as
// a selector-like token, e.g. "@media (min-width: 40em)".
func atRulePrelude(n *sitter.Node, src []byte) (Token, bool) {
	start, end := int(n.StartByte()), int(n.EndByte()) //nolint:gosec // G115
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		if k := child.Kind(); k == css.NodeBlock || k == css.NodeKeyframeBlockList {
			end = int(child.StartByte()) //nolint:gosec // G115
			break
		}
	}

	text := bytes.TrimRight(src[start:end], " \t\r\n;")
	if len(text) == 0 {
		return Token{}, false
	}
	return Token{
		Kind:  Selector,
		Name:  string(text),
		Range: Range{Start: start, End: start + len(text)},
	}, true
}
