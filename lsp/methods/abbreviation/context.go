package abbreviation

import (
	"bennypowers.dev/abbrls/internal/cursor"
	"bennypowers.dev/abbrls/internal/log"
	"bennypowers.dev/abbrls/internal/parser"
	"bennypowers.dev/abbrls/internal/syntax"
	"bennypowers.dev/abbrls/lsp/types"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Custom request methods
const (
	MethodContext     = "abbreviation/context"
	MethodIsSupported = "abbreviation/isSupported"
)

// ContextParams are the params of abbreviation/context
type ContextParams struct {
	TextDocument protocol.TextDocumentIdentifier `json:"textDocument"`
	Position     protocol.Position               `json:"position"`
}

// ContextResult describes the abbreviation context at a position
type ContextResult struct {
	syntax.Info

	// Dialect is the syntax an expansion engine should expand with
	Dialect syntax.Name `json:"dialect"`

	// AbbreviationContext is the scope of the abbreviation: the enclosing
	// element for markup, a scope marker or property for stylesheets
	AbbreviationContext *syntax.AbbreviationContext `json:"abbreviationContext,omitempty"`

	// Features reports which configured features are enabled here
	Features map[string]bool `json:"features"`
}

// Context handles abbreviation/context. It returns nil when the document is
// not open or its dialect is not supported.
func Context(req *types.RequestContext, params *ContextParams) (*ContextResult, error) {
	uri := params.TextDocument.URI
	doc := req.Server.Document(uri)
	if doc == nil {
		log.Debug("abbreviation/context: document not open: %s", uri)
		return nil, nil
	}

	tree, err := doc.Parse()
	if err != nil {
		req.AddWarning(err)
	}
	if tree != nil {
		defer tree.Close()
	}

	ctx := cursor.Resolve(tree, doc.Offset(params.Position))
	info := syntax.GetInfo(doc, ctx)
	dialect := syntax.Dialect(doc, info)
	if !syntax.IsSupported(dialect) {
		log.Debug("abbreviation/context: unsupported dialect %q for %s", dialect, uri)
		return nil, nil
	}

	return &ContextResult{
		Info:                info,
		Dialect:             dialect,
		AbbreviationContext: abbreviationContext(tree, info),
		Features:            req.Server.GetConfig().Features(info),
	}, nil
}

func abbreviationContext(tree *parser.Tree, info syntax.Info) *syntax.AbbreviationContext {
	switch info.Type {
	case syntax.Stylesheet:
		css, _ := info.Context.(*cursor.CSSContext)
		scope := syntax.StylesheetAbbreviationContext(css)
		return &scope
	case syntax.Markup:
		if html, ok := info.Context.(*cursor.HTMLContext); ok {
			return syntax.MarkupAbbreviationContext(tree, html)
		}
	}
	return nil
}
