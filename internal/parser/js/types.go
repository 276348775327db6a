package js

// Node kinds produced by tree-sitter-javascript
const (
	NodeProgram               = "program"
	NodeJSXElement            = "jsx_element"
	NodeJSXSelfClosingElement = "jsx_self_closing_element"
	NodeJSXOpeningElement     = "jsx_opening_element"
	NodeJSXAttribute          = "jsx_attribute"
	NodeJSXExpression         = "jsx_expression"
	NodeString                = "string"
	NodeTemplateString        = "template_string"
	NodeCallExpression        = "call_expression"
	NodeIdentifier            = "identifier"
	NodePropertyIdentifier    = "property_identifier"
	NodeJSXNamespaceName      = "jsx_namespace_name"
)

// IsElement reports whether kind is a JSX element carrying a tag name
func IsElement(kind string) bool {
	return kind == NodeJSXElement || kind == NodeJSXSelfClosingElement
}

// IsOpenTag reports whether kind is a JSX node holding a tag's attributes
func IsOpenTag(kind string) bool {
	return kind == NodeJSXOpeningElement || kind == NodeJSXSelfClosingElement
}
