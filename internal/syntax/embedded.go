package syntax

import (
	"strings"

	"bennypowers.dev/abbrls/internal/cursor"
	"bennypowers.dev/abbrls/internal/parser"
	"bennypowers.dev/abbrls/internal/parser/html"
)

// EmbeddedStyleSyntax returns the raw type attribute of the <style> element
// directly enclosing ctx, e.g. "text/scss". ok is false when the innermost
// ancestor is not a style element or declares no type.
func EmbeddedStyleSyntax(text string, ctx *cursor.HTMLContext) (string, bool) {
	if ctx == nil {
		return "", false
	}
	parent, ok := ctx.Parent()
	if !ok || parent.Name != "style" {
		return "", false
	}

	start := parser.Clamp(parent.Range.Start, len(text))
	end := parser.Clamp(parent.Range.End, len(text))
	if end < start {
		return "", false
	}

	for _, attr := range html.Attributes(text[start:end], parent.Name) {
		if strings.EqualFold(attr.Name, "type") {
			return attr.Value, true
		}
	}
	return "", false
}

// StripMIME drops a MIME type prefix: "text/scss" becomes "scss"
func StripMIME(mime string) string {
	if i := strings.LastIndexByte(mime, '/'); i >= 0 {
		return mime[i+1:]
	}
	return mime
}

// Dialect picks the syntax an expansion engine should use at the position
// described by info. It refines info.Syntax with what the document declares:
// a <style type> attribute, the language of a stylesheet document, or the
// markup dialect of the document language.
func Dialect(doc Document, info Info) Name {
	if css, ok := info.Context.(*cursor.CSSContext); ok && css.Embedded != nil && !info.Inline {
		if mime, ok := EmbeddedStyleSyntax(doc.Content(), css.Embedded); ok {
			if name := Name(strings.ToLower(StripMIME(mime))); stylesheetSyntaxes.Has(name) {
				return name
			}
		}
	}

	lang := FromLanguageID(doc.LanguageID())
	switch info.Type {
	case Stylesheet:
		if info.Inline || !stylesheetSyntaxes.Has(lang) {
			return info.Syntax
		}
		if css, ok := info.Context.(*cursor.CSSContext); ok && css.Embedded != nil {
			return info.Syntax
		}
		return lang
	case Markup:
		if markupSyntaxes.Has(lang) {
			return lang
		}
		if parser.LanguageFor(doc.LanguageID()) == parser.GrammarJS {
			return "jsx"
		}
	}
	return info.Syntax
}
