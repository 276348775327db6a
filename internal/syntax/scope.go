package syntax

import (
	"encoding/json"

	"bennypowers.dev/abbrls/internal/cursor"
	"bennypowers.dev/abbrls/internal/parser"
	"bennypowers.dev/abbrls/internal/parser/html"
	"bennypowers.dev/abbrls/internal/parser/js"
)

// ScopeMarker is a reserved scope that is not a tag or selector name
type ScopeMarker string

const (
	ScopeGlobal   ScopeMarker = "@@global"
	ScopeSection  ScopeMarker = "@@section"
	ScopeProperty ScopeMarker = "@@property"
	ScopeValue    ScopeMarker = "@@value"
)

// AbbreviationContext is the scope an abbreviation expands in. Exactly one
// of Marker and Name is set: Marker for reserved scopes, Name for a real
// enclosing tag or selector.
type AbbreviationContext struct {
	Marker ScopeMarker
	Name   string
	// Attributes of the enclosing tag, markup only
	Attributes map[string]string
}

// Marked returns a context for a reserved scope
func Marked(m ScopeMarker) AbbreviationContext {
	return AbbreviationContext{Marker: m}
}

// Named returns a context scoped to a tag or selector
func Named(name string) AbbreviationContext {
	return AbbreviationContext{Name: name}
}

// IsMarker reports whether the scope is reserved
func (a AbbreviationContext) IsMarker() bool {
	return a.Marker != ""
}

// Scope returns the name the expansion engine sees
func (a AbbreviationContext) Scope() string {
	if a.Marker != "" {
		return string(a.Marker)
	}
	return a.Name
}

// MarshalJSON encodes {"name": ..., "attributes": ...}
func (a AbbreviationContext) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name       string            `json:"name"`
		Attributes map[string]string `json:"attributes,omitempty"`
	}{a.Scope(), a.Attributes})
}

// MarkupAbbreviationContext scopes a markup position to its innermost
// element. It returns nil at the document root. Attributes are read from the
// element's opening tag; when none can be found the map is empty.
func MarkupAbbreviationContext(tree *parser.Tree, ctx *cursor.HTMLContext) *AbbreviationContext {
	if ctx == nil {
		return nil
	}
	parent, ok := ctx.Parent()
	if !ok {
		return nil
	}

	abbr := &AbbreviationContext{Name: parent.Name, Attributes: map[string]string{}}
	if tree == nil {
		return abbr
	}

	isOpenTag := html.IsOpenTag
	if tree.Grammar() == parser.GrammarJS {
		isOpenTag = js.IsOpenTag
	}

	node := tree.Resolve(parent.Range.Start, 1)
	for node != nil && !isOpenTag(node.Kind()) {
		node = node.Parent()
	}
	if node == nil {
		return abbr
	}

	if tree.Grammar() == parser.GrammarJS {
		abbr.Attributes = js.Attributes(node, tree.Source())
	} else {
		abbr.Attributes = html.AttributeMap(tree.Text(node), parent.Name)
	}
	return abbr
}

// StylesheetAbbreviationContext scopes a stylesheet position. Inline styles
// are always property scope. A value expands relative to its property; a
// top-level selector or property name is section scope; the rest is global.
func StylesheetAbbreviationContext(ctx *cursor.CSSContext) AbbreviationContext {
	if ctx == nil {
		return Marked(ScopeGlobal)
	}
	if ctx.Inline {
		return Marked(ScopeProperty)
	}

	parent, hasParent := ctx.Parent()
	if ctx.Current != nil {
		switch ctx.Current.Kind {
		case cursor.PropertyValue:
			if hasParent {
				return Named(parent.Name)
			}
		case cursor.Selector, cursor.PropertyName:
			if !hasParent {
				return Marked(ScopeSection)
			}
		}
	}
	return Marked(ScopeGlobal)
}
