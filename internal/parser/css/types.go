package css

// Node kinds produced by tree-sitter-css that the context resolver inspects.
const (
	NodeStylesheet   = "stylesheet"
	NodeRuleSet      = "rule_set"
	NodeSelectors    = "selectors"
	NodeBlock        = "block"
	NodeDeclaration  = "declaration"
	NodePropertyName = "property_name"
	NodeKeyframe     = "keyframe_block"

	NodeKeyframeBlockList = "keyframe_block_list"

	NodeMediaStatement     = "media_statement"
	NodeSupportsStatement  = "supports_statement"
	NodeKeyframesStatement = "keyframes_statement"
	NodeAtRule             = "at_rule"

	TokenColon      = ":"
	TokenSemicolon  = ";"
	TokenBlockOpen  = "{"
	TokenBlockClose = "}"
)

// IsAtRule reports whether kind is an at-rule whose prelude acts as a selector
func IsAtRule(kind string) bool {
	switch kind {
	case NodeMediaStatement, NodeSupportsStatement, NodeKeyframesStatement, NodeAtRule, NodeKeyframe:
		return true
	}
	return false
}
