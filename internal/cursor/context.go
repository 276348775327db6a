// Package cursor resolves what surrounds a cursor offset in a parsed document:
// the enclosing tags or selectors, and whether the offset sits in a stylesheet
// embedded in markup.
package cursor

import (
	"encoding/json"
	"fmt"
)

// Range is a byte range [Start, End] in a document
type Range struct {
	Start int
	End   int
}

// Contains reports whether pos lies within the range, both ends inclusive
func (r Range) Contains(pos int) bool {
	return r.Start <= pos && pos <= r.End
}

// Shift moves the range by delta bytes
func (r Range) Shift(delta int) Range {
	return Range{Start: r.Start + delta, End: r.End + delta}
}

// MarshalJSON encodes the range as a [start, end] pair
func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{r.Start, r.End})
}

// UnmarshalJSON decodes a [start, end] pair
func (r *Range) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	r.Start, r.End = pair[0], pair[1]
	return nil
}

// AncestorNode is one enclosing tag or selector
type AncestorNode struct {
	Name  string `json:"name"`
	Range Range  `json:"range"`
}

// TokenKind classifies the stylesheet construct at the cursor
type TokenKind int

const (
	Selector TokenKind = iota
	PropertyName
	PropertyValue
	BlockEnd
)

var tokenKindNames = [...]string{
	Selector:      "selector",
	PropertyName:  "propertyName",
	PropertyValue: "propertyValue",
	BlockEnd:      "blockEnd",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// MarshalText encodes the kind by name
func (k TokenKind) MarshalText() ([]byte, error) {
	if int(k) >= len(tokenKindNames) || k < 0 {
		return nil, fmt.Errorf("invalid token kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name
func (k *TokenKind) UnmarshalText(text []byte) error {
	for i, name := range tokenKindNames {
		if name == string(text) {
			*k = TokenKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown token kind %q", text)
}

// Token is the stylesheet construct directly at the cursor
type Token struct {
	Kind  TokenKind `json:"type"`
	Name  string    `json:"name,omitempty"`
	Range Range     `json:"range"`
}

// Context describes a cursor position. It is either *HTMLContext or *CSSContext.
type Context interface {
	isContext()
}

// HTMLContext is a cursor position in markup
type HTMLContext struct {
	// Ancestors are the enclosing elements, outermost first
	Ancestors []AncestorNode
	// CSS is set when the cursor is inside an inline style attribute value
	CSS *CSSContext
}

// CSSContext is a cursor position in a stylesheet
type CSSContext struct {
	// Ancestors are the enclosing selectors and property names, outermost first
	Ancestors []AncestorNode
	// Inline is set for contexts synthesized from a style attribute
	Inline bool
	// Current is the construct at the cursor, if any
	Current *Token
	// Embedded holds the host markup chain when the stylesheet lives in a
	// <style> element or a css tagged template
	Embedded *HTMLContext
}

func (*HTMLContext) isContext() {}
func (*CSSContext) isContext()  {}

// Parent returns the innermost ancestor
func (c *HTMLContext) Parent() (AncestorNode, bool) {
	return last(c.Ancestors)
}

// Parent returns the innermost ancestor
func (c *CSSContext) Parent() (AncestorNode, bool) {
	return last(c.Ancestors)
}

func last(ancestors []AncestorNode) (AncestorNode, bool) {
	if len(ancestors) == 0 {
		return AncestorNode{}, false
	}
	return ancestors[len(ancestors)-1], true
}

// MarshalJSON adds the "type": "html" discriminator
func (c *HTMLContext) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type      string         `json:"type"`
		Ancestors []AncestorNode `json:"ancestors"`
		CSS       *CSSContext    `json:"css,omitempty"`
	}{"html", nonNil(c.Ancestors), c.CSS})
}

// MarshalJSON adds the "type": "css" discriminator
func (c *CSSContext) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type      string         `json:"type"`
		Ancestors []AncestorNode `json:"ancestors"`
		Inline    bool           `json:"inline,omitempty"`
		Current   *Token         `json:"current,omitempty"`
		Embedded  *HTMLContext   `json:"embedded,omitempty"`
	}{"css", nonNil(c.Ancestors), c.Inline, c.Current, c.Embedded})
}

func nonNil(a []AncestorNode) []AncestorNode {
	if a == nil {
		return []AncestorNode{}
	}
	return a
}
