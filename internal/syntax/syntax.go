// Package syntax classifies cursor positions into abbreviation syntaxes:
// markup or stylesheet, which dialect, and the scope an abbreviation
// expands in.
package syntax

import (
	"bennypowers.dev/abbrls/internal/collections"
)

// Name identifies an abbreviation dialect, e.g. "html", "jsx" or "scss".
// The empty name means unknown or plain text.
type Name string

const (
	CSS  Name = "css"
	HTML Name = "html"
)

var (
	xmlSyntaxes  = collections.NewSet[Name]("xml", "xsl", "jsx")
	htmlSyntaxes = collections.NewSet[Name]("html", "htmlmixed", "vue")
	cssSyntaxes  = collections.NewSet[Name]("css", "scss", "less")
	jsxSyntaxes  = collections.NewSet[Name]("jsx", "tsx")

	markupSyntaxes = collections.Union(
		collections.NewSet[Name]("haml", "jade", "pug", "slim"),
		htmlSyntaxes,
		xmlSyntaxes,
		jsxSyntaxes,
	)

	stylesheetSyntaxes = collections.Union(
		collections.NewSet[Name]("sass", "sss", "stylus", "postcss"),
		cssSyntaxes,
	)
)

// Type is the kind of abbreviation expected at a position
type Type string

const (
	Markup     Type = "markup"
	Stylesheet Type = "stylesheet"
)

// GetSyntaxType returns Stylesheet for stylesheet dialects and Markup for
// everything else, including unknown and empty names.
func GetSyntaxType(syntax Name) Type {
	if stylesheetSyntaxes.Has(syntax) {
		return Stylesheet
	}
	return Markup
}

// IsXML reports whether syntax is an XML dialect
func IsXML(syntax Name) bool {
	return xmlSyntaxes.Has(syntax)
}

// IsHTML reports whether syntax is an HTML dialect. XML dialects count as
// HTML so tag matching works the same for both.
func IsHTML(syntax Name) bool {
	return htmlSyntaxes.Has(syntax) || IsXML(syntax)
}

// IsCSS reports whether syntax is CSS or a CSS superset with braces
func IsCSS(syntax Name) bool {
	return cssSyntaxes.Has(syntax)
}

// IsJSX reports whether syntax is JSX or TSX
func IsJSX(syntax Name) bool {
	return jsxSyntaxes.Has(syntax)
}

// IsSupported reports whether abbreviations can be expanded in syntax at all
func IsSupported(syntax Name) bool {
	return markupSyntaxes.Has(syntax) || stylesheetSyntaxes.Has(syntax)
}

// Supported returns every supported syntax name in sorted order
func Supported() []Name {
	return collections.Sorted(collections.Union(markupSyntaxes, stylesheetSyntaxes))
}

// languageAliases maps editor language identifiers that differ from the
// abbreviation syntax they use
var languageAliases = map[string]Name{
	"javascriptreact": "jsx",
	"typescriptreact": "tsx",
	"sugarss":         "sss",
}

// FromLanguageID returns the syntax for an editor language identifier.
// Identifiers that are not supported syntaxes yield "".
func FromLanguageID(languageID string) Name {
	if alias, ok := languageAliases[languageID]; ok {
		return alias
	}
	if name := Name(languageID); IsSupported(name) {
		return name
	}
	return ""
}
