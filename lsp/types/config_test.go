package types

import (
	"testing"

	"bennypowers.dev/abbrls/internal/syntax"
	"github.com/stretchr/testify/assert"
	"go.uber.org/multierr"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.True(t, config.Mark.All)
	assert.True(t, config.Preview.All)
	assert.True(t, config.AutoRenameTags.All)
	assert.True(t, config.MarkTagPairs)
	assert.False(t, config.PreviewOpenTag)
	assert.Equal(t, "double", config.AttributeQuotes)
	assert.Empty(t, config.Syntaxes)
	assert.NoError(t, config.Validate())
}

func TestServerConfig_Validate(t *testing.T) {
	config := DefaultConfig()
	config.AttributeQuotes = "backtick"
	config.Syntaxes = map[string]string{"*.njk": "", "[": "html"}

	err := config.Validate()
	assert.Len(t, multierr.Errors(err), 3)
	assert.ErrorContains(t, err, "attributeQuotes")
	assert.ErrorContains(t, err, "*.njk")
	assert.ErrorContains(t, err, "invalid glob")
}

func TestServerConfig_Clone(t *testing.T) {
	config := DefaultConfig()
	config.Syntaxes["*.njk"] = "html"

	clone := config.Clone()
	clone.Syntaxes["*.pcss"] = "postcss"

	assert.Equal(t, map[string]string{"*.njk": "html"}, config.Syntaxes)
	assert.Len(t, clone.Syntaxes, 2)
	assert.NotNil(t, ServerConfig{}.Clone().Syntaxes)
}

func TestServerConfig_Features(t *testing.T) {
	config := DefaultConfig()
	config.Preview = syntax.Only("css-inline", "markup")

	inline := syntax.Info{Type: syntax.Stylesheet, Syntax: "css", Inline: true}
	assert.Equal(t, map[string]bool{
		FeatureMark:           true,
		FeaturePreview:        true,
		FeatureAutoRenameTags: false,
		FeatureMarkTagPairs:   false,
	}, config.Features(inline))

	stylesheet := syntax.Info{Type: syntax.Stylesheet, Syntax: "css"}
	assert.False(t, config.Features(stylesheet)[FeaturePreview])

	markup := syntax.Info{Type: syntax.Markup, Syntax: "html"}
	assert.Equal(t, map[string]bool{
		FeatureMark:           true,
		FeaturePreview:        true,
		FeatureAutoRenameTags: true,
		FeatureMarkTagPairs:   true,
	}, config.Features(markup))
}
