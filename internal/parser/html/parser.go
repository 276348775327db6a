package html

import (
	"fmt"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_html "github.com/tree-sitter/tree-sitter-html/bindings/go"
)

// Parser wraps a tree-sitter parser configured for the HTML grammar
type Parser struct {
	parser *sitter.Parser
}

var htmlLang = sitter.NewLanguage(tree_sitter_html.Language())

// parserPool is a pool of reusable HTML parsers
var parserPool = sync.Pool{
	New: func() any {
		parser := sitter.NewParser()
		if err := parser.SetLanguage(htmlLang); err != nil {
			panic(fmt.Sprintf("failed to set HTML language: %v", err))
		}
		return &Parser{parser: parser}
	},
}

// AcquireParser gets a parser from the pool
func AcquireParser() *Parser {
	p := parserPool.Get().(*Parser)
	p.parser.Reset()
	return p
}

// ReleaseParser returns a parser to the pool
func ReleaseParser(p *Parser) {
	if p != nil {
		parserPool.Put(p)
	}
}

// Close closes the parser and releases its resources
func (p *Parser) Close() {
	if p.parser != nil {
		p.parser.Close()
	}
}

// ClosePool closes all parsers in the pool
func ClosePool() {
	for range 100 {
		if p, ok := parserPool.Get().(*Parser); ok && p != nil {
			p.Close()
		}
	}
}

// Parse builds a syntax tree for a markup document. The caller owns the tree and must Close it.
func (p *Parser) Parse(source []byte) (*sitter.Tree, error) {
	tree := p.parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse HTML")
	}
	return tree, nil
}

// TagName returns the tag name of an element node (element, style_element,
// script_element), or "" when the element has no named opening tag.
func TagName(node *sitter.Node, source []byte) string {
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		switch child.Kind() {
		case NodeStartTag, NodeSelfClosingTag:
			return TagNodeName(child, source)
		}
	}
	return ""
}

// TagNodeName returns the name written in a start, end or self-closing tag node
func TagNodeName(tag *sitter.Node, source []byte) string {
	for i := uint(0); i < tag.ChildCount(); i++ {
		switch name := tag.Child(i); name.Kind() {
		case NodeTagName, NodeErroneousEndTagName:
			return name.Utf8Text(source)
		}
	}
	return ""
}

// AttributeName returns the name of an attribute node
func AttributeName(node *sitter.Node, source []byte) string {
	for i := uint(0); i < node.ChildCount(); i++ {
		if child := node.Child(i); child.Kind() == NodeAttributeName {
			return child.Utf8Text(source)
		}
	}
	return ""
}

// AttributeValueRange returns the byte range of an attribute's value, excluding quotes.
// ok is false for valueless attributes.
func AttributeValueRange(node *sitter.Node) (start, end uint, ok bool) {
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		switch child.Kind() {
		case NodeAttributeValue:
			return child.StartByte(), child.EndByte(), true
		case NodeQuotedAttributeValue:
			start, end = child.StartByte()+1, child.EndByte()
			// an unterminated value has no closing quote
			if n := child.ChildCount(); n >= 2 {
				if q := child.Child(n - 1).Kind(); q == `"` || q == `'` {
					end--
				}
			}
			if end < start {
				end = start
			}
			return start, end, true
		}
	}
	return 0, 0, false
}

// ContentRange returns the byte range between an element's start and end tags.
// Elements without an end tag extend to the end of the element node.
func ContentRange(node *sitter.Node) (start, end uint, ok bool) {
	start, end = node.StartByte(), node.EndByte()
	found := false
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		switch child.Kind() {
		case NodeStartTag:
			start = child.EndByte()
			found = true
		case NodeEndTag:
			end = child.StartByte()
		}
	}
	return start, end, found
}
