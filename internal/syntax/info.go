package syntax

import (
	"bennypowers.dev/abbrls/internal/cursor"
	"bennypowers.dev/abbrls/internal/log"
	"bennypowers.dev/abbrls/internal/parser"
)

// Document is the view of an open document the classifier needs
type Document interface {
	LanguageID() string
	Content() string
}

// Info is the classified answer for a cursor position
type Info struct {
	Type    Type           `json:"type"`
	Syntax  Name           `json:"syntax,omitempty"`
	Inline  bool           `json:"inline,omitempty"`
	Context cursor.Context `json:"context,omitempty"`
}

// DocSyntax returns the coarse syntax of the whole document: css for
// stylesheets, html for markup, "" for anything else. Scripts are not markup
// documents even when they may contain JSX.
func DocSyntax(doc Document) Name {
	switch parser.LanguageFor(doc.LanguageID()) {
	case parser.GrammarCSS:
		return CSS
	case parser.GrammarHTML:
		return HTML
	case parser.GrammarJS:
		return ""
	}

	lang := FromLanguageID(doc.LanguageID())
	switch {
	case stylesheetSyntaxes.Has(lang):
		return CSS
	case markupSyntaxes.Has(lang):
		return HTML
	}
	return ""
}

// GetInfo classifies an already resolved context. A cursor in an inline
// style attribute is an inline stylesheet position; any stylesheet context
// is css regardless of the document language.
func GetInfo(doc Document, ctx cursor.Context) Info {
	info := Info{Syntax: DocSyntax(doc), Context: ctx}

	switch c := ctx.(type) {
	case *cursor.HTMLContext:
		if c.CSS != nil {
			info.Inline = true
			info.Syntax = CSS
			info.Context = c.CSS
		}
	case *cursor.CSSContext:
		info.Syntax = CSS
	}

	info.Type = GetSyntaxType(info.Syntax)
	return info
}

// Resolve parses doc, resolves the context at offset and classifies it
func Resolve(doc Document, offset int) Info {
	var ctx cursor.Context
	tree, err := parser.Parse(doc.LanguageID(), []byte(doc.Content()))
	if err != nil {
		log.Warn("failed to parse %s document: %v", doc.LanguageID(), err)
	} else if tree != nil {
		defer tree.Close()
		ctx = cursor.Resolve(tree, offset)
	}
	return GetInfo(doc, ctx)
}
