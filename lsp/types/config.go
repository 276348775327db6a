package types

import (
	"fmt"
	"maps"

	"bennypowers.dev/abbrls/internal/syntax"
	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/multierr"
)

// ServerConfig represents the server configuration
type ServerConfig struct {
	// Mark enables marking typed abbreviations in the editor
	Mark syntax.Option `json:"mark" yaml:"mark" mapstructure:"mark"`

	// Preview enables the expansion preview of a marked abbreviation
	Preview syntax.Option `json:"preview" yaml:"preview" mapstructure:"preview"`

	// AutoRenameTags keeps open and close tag names in sync
	AutoRenameTags syntax.Option `json:"autoRenameTags" yaml:"autoRenameTags" mapstructure:"autoRenameTags"`

	// MarkTagPairs highlights the matching tag of the tag under the cursor
	MarkTagPairs bool `json:"markTagPairs" yaml:"markTagPairs" mapstructure:"markTagPairs"`

	// PreviewOpenTag shows the open tag when the cursor is on a close tag
	PreviewOpenTag bool `json:"previewOpenTag" yaml:"previewOpenTag" mapstructure:"previewOpenTag"`

	// AttributeQuotes is "double" or "single"
	AttributeQuotes string `json:"attributeQuotes" yaml:"attributeQuotes" mapstructure:"attributeQuotes"`

	// Syntaxes maps glob patterns to language IDs, overriding the language
	// the client reports for matching documents.
	// Example: {"**/*.pcss": "postcss", "*.njk": "html"}
	Syntaxes map[string]string `json:"syntaxes" yaml:"syntaxes" mapstructure:"syntaxes"`
}

// Feature names reported per position
const (
	FeatureMark           = "mark"
	FeaturePreview        = "preview"
	FeatureAutoRenameTags = "autoRenameTags"
	FeatureMarkTagPairs   = "markTagPairs"
)

// DefaultConfig returns the default server configuration
func DefaultConfig() ServerConfig {
	return ServerConfig{
		Mark:            syntax.Always(),
		Preview:         syntax.Always(),
		AutoRenameTags:  syntax.Always(),
		MarkTagPairs:    true,
		PreviewOpenTag:  false,
		AttributeQuotes: "double",
		Syntaxes:        map[string]string{},
	}
}

// Validate reports every invalid field
func (c ServerConfig) Validate() error {
	var err error
	switch c.AttributeQuotes {
	case "double", "single":
	default:
		err = multierr.Append(err, fmt.Errorf("attributeQuotes must be \"double\" or \"single\", got %q", c.AttributeQuotes))
	}
	for pattern, lang := range c.Syntaxes {
		if !doublestar.ValidatePattern(pattern) {
			err = multierr.Append(err, fmt.Errorf("syntaxes: invalid glob pattern %q", pattern))
		}
		if lang == "" {
			err = multierr.Append(err, fmt.Errorf("syntaxes[%q] has no language", pattern))
		}
	}
	return err
}

// Clone returns a copy that shares no maps with c. Options are replaced
// wholesale when decoded, never mutated, so they are not copied.
func (c ServerConfig) Clone() ServerConfig {
	c.Syntaxes = maps.Clone(c.Syntaxes)
	if c.Syntaxes == nil {
		c.Syntaxes = map[string]string{}
	}
	return c
}

// Features reports which configured features are enabled at a position
func (c ServerConfig) Features(info syntax.Info) map[string]bool {
	return map[string]bool{
		FeatureMark:           syntax.EnabledForSyntax(c.Mark, info),
		FeaturePreview:        syntax.EnabledForSyntax(c.Preview, info),
		FeatureAutoRenameTags: info.Type == syntax.Markup && syntax.EnabledForSyntax(c.AutoRenameTags, info),
		FeatureMarkTagPairs:   info.Type == syntax.Markup && c.MarkTagPairs,
	}
}
