package parser

import (
	"fmt"

	"bennypowers.dev/abbrls/internal/parser/css"
	"bennypowers.dev/abbrls/internal/parser/html"
	"bennypowers.dev/abbrls/internal/parser/js"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Grammar identifies the tree-sitter grammar a document is parsed with
type Grammar int

const (
	// GrammarNone means no syntax tree is available for the language
	GrammarNone Grammar = iota
	// GrammarCSS parses stylesheets
	GrammarCSS
	// GrammarHTML parses markup
	GrammarHTML
	// GrammarJS parses scripts, including JSX
	GrammarJS
)

func (g Grammar) String() string {
	switch g {
	case GrammarCSS:
		return "css"
	case GrammarHTML:
		return "html"
	case GrammarJS:
		return "js"
	}
	return "none"
}

// grammars maps language IDs to the grammar used to parse them.
// SCSS and LESS are close enough to CSS for the constructs the resolver walks.
var grammars = map[string]Grammar{
	"css":             GrammarCSS,
	"scss":            GrammarCSS,
	"less":            GrammarCSS,
	"postcss":         GrammarCSS,
	"html":            GrammarHTML,
	"htmlmixed":       GrammarHTML,
	"vue":             GrammarHTML,
	"xml":             GrammarHTML,
	"xsl":             GrammarHTML,
	"jsx":             GrammarJS,
	"tsx":             GrammarJS,
	"javascript":      GrammarJS,
	"javascriptreact": GrammarJS,
	"typescriptreact": GrammarJS,
}

// LanguageFor returns the grammar for a language ID
func LanguageFor(languageID string) Grammar {
	return grammars[languageID]
}

// Tree is a parsed document: the tree-sitter tree plus the source it was built from.
// Node offsets are byte offsets into Source.
type Tree struct {
	tree    *sitter.Tree
	source  []byte
	grammar Grammar
}

// Parse parses source with the grammar registered for languageID.
// Languages without a grammar yield a nil tree and no error.
func Parse(languageID string, source []byte) (*Tree, error) {
	g := LanguageFor(languageID)
	if g == GrammarNone {
		return nil, nil
	}
	return ParseGrammar(g, source)
}

// ParseGrammar parses source with a specific grammar
func ParseGrammar(g Grammar, source []byte) (*Tree, error) {
	var (
		tree *sitter.Tree
		err  error
	)

	switch g {
	case GrammarCSS:
		p := css.AcquireParser()
		defer css.ReleaseParser(p)
		tree, err = p.Parse(source)

	case GrammarHTML:
		p := html.AcquireParser()
		defer html.ReleaseParser(p)
		tree, err = p.Parse(source)

	case GrammarJS:
		p := js.AcquireParser()
		defer js.ReleaseParser(p)
		tree, err = p.Parse(source)

	default:
		return nil, fmt.Errorf("no grammar for %s", g)
	}

	if err != nil {
		return nil, err
	}
	return &Tree{tree: tree, source: source, grammar: g}, nil
}

// Close releases the underlying tree-sitter tree. Nil trees are ignored.
func (t *Tree) Close() {
	if t != nil && t.tree != nil {
		t.tree.Close()
	}
}

// Grammar returns the grammar the tree was parsed with
func (t *Tree) Grammar() Grammar {
	return t.grammar
}

// Source returns the parsed source text
func (t *Tree) Source() []byte {
	return t.source
}

// Root returns the root node
func (t *Tree) Root() *sitter.Node {
	return t.tree.RootNode()
}

// Text returns the source text covered by node
func (t *Tree) Text(node *sitter.Node) string {
	return node.Utf8Text(t.source)
}

// Resolve returns the innermost node at offset. With side < 0 the node
// ending at offset wins over the one starting there; otherwise the node
// starting at offset wins. Offsets outside the source are clamped.
func (t *Tree) Resolve(offset, side int) *sitter.Node {
	return ResolveIn(t.Root(), len(t.source), offset, side)
}

// ResolveIn is Resolve for an arbitrary subtree root over a source of length size
func ResolveIn(root *sitter.Node, size, offset, side int) *sitter.Node {
	offset = Clamp(offset, size)
	start, end := uint(offset), uint(offset) //nolint:gosec // G115: clamped to source length
	if side < 0 && offset > 0 {
		start--
	}
	return root.DescendantForByteRange(start, end)
}

// Clamp limits offset to [0, size]
func Clamp(offset, size int) int {
	if offset < 0 {
		return 0
	}
	if offset > size {
		return size
	}
	return offset
}

// ClosePools releases the pooled parsers of every grammar
func ClosePools() {
	css.ClosePool()
	html.ClosePool()
	js.ClosePool()
}
