package js

import (
	"fmt"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
)

// Parser wraps a tree-sitter parser configured for the JavaScript grammar,
// which includes JSX.
type Parser struct {
	parser *sitter.Parser
}

var jsLang = sitter.NewLanguage(tree_sitter_javascript.Language())

// parserPool is a pool of reusable JS parsers
var parserPool = sync.Pool{
	New: func() any {
		parser := sitter.NewParser()
		if err := parser.SetLanguage(jsLang); err != nil {
			panic(fmt.Sprintf("failed to set JS language: %v", err))
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

// Parse builds a syntax tree for a script. The caller owns the tree and must Close it.
func (p *Parser) Parse(source []byte) (*sitter.Tree, error) {
	tree := p.parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse JavaScript")
	}
	return tree, nil
}

// ElementName returns the tag name of a jsx_element or jsx_self_closing_element.
// Fragments have no name and yield "".
func ElementName(node *sitter.Node, source []byte) string {
	open := node
	if node.Kind() == NodeJSXElement {
		open = node.ChildByFieldName("open_tag")
		if open == nil {
			return ""
		}
	}
	name := open.ChildByFieldName("name")
	if name == nil {
		return ""
	}
	return name.Utf8Text(source)
}

// TemplateTag returns the identifier a template string is tagged with
// (css`...` yields "css"), or "" for untagged templates.
func TemplateTag(template *sitter.Node, source []byte) string {
	call := template.Parent()
	if call == nil || call.Kind() != NodeCallExpression {
		return ""
	}
	fn := call.ChildByFieldName("function")
	if fn == nil || fn.Kind() != NodeIdentifier {
		return ""
	}
	return fn.Utf8Text(source)
}

// Attributes returns the attributes of a JSX opening or self-closing element.
// String values lose their quotes; expression values keep their braces;
// valueless attributes map to "".
func Attributes(open *sitter.Node, source []byte) map[string]string {
	attrs := make(map[string]string)
	for i := uint(0); i < open.NamedChildCount(); i++ {
		attr := open.NamedChild(i)
		if attr.Kind() != NodeJSXAttribute || attr.NamedChildCount() == 0 {
			continue
		}
		name := attr.NamedChild(0).Utf8Text(source)
		value := ""
		if attr.NamedChildCount() > 1 {
			v := attr.NamedChild(1)
			value = v.Utf8Text(source)
			if v.Kind() == NodeString && len(value) >= 2 {
				value = value[1 : len(value)-1]
			}
		}
		attrs[name] = value
	}
	return attrs
}
