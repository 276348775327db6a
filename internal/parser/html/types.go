package html

import (
	"strings"

	"bennypowers.dev/abbrls/internal/collections"
)

// Node kinds produced by tree-sitter-html
const (
	NodeDocument             = "document"
	NodeElement              = "element"
	NodeStyleElement         = "style_element"
	NodeScriptElement        = "script_element"
	NodeStartTag             = "start_tag"
	NodeEndTag               = "end_tag"
	NodeErroneousEndTag      = "erroneous_end_tag"
	NodeSelfClosingTag       = "self_closing_tag"
	NodeTagName              = "tag_name"
	NodeErroneousEndTagName  = "erroneous_end_tag_name"
	NodeAttribute            = "attribute"
	NodeAttributeName        = "attribute_name"
	NodeAttributeValue       = "attribute_value"
	NodeQuotedAttributeValue = "quoted_attribute_value"
	NodeRawText              = "raw_text"
)

// IsElement reports whether kind is any element node that carries a tag name
func IsElement(kind string) bool {
	switch kind {
	case NodeElement, NodeStyleElement, NodeScriptElement:
		return true
	}
	return false
}

// voidElements never have content or an end tag
var voidElements = collections.NewSet(
	"area", "base", "br", "col", "embed", "hr", "img", "input",
	"link", "meta", "param", "source", "track", "wbr",
)

// IsVoid reports whether name is a void element
func IsVoid(name string) bool {
	return voidElements.Has(strings.ToLower(name))
}

// IsCloseTag reports whether kind is a closing tag node, matched or not
func IsCloseTag(kind string) bool {
	return kind == NodeEndTag || kind == NodeErroneousEndTag
}

// IsOpenTag reports whether kind is an opening tag node
func IsOpenTag(kind string) bool {
	return kind == NodeStartTag || kind == NodeSelfClosingTag
}

// Attribute is a single name/value pair scanned from raw tag source.
// Valueless attributes have an empty Value.
type Attribute struct {
	Name  string
	Value string
}
