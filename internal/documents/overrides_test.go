package documents_test

import (
	"testing"

	"bennypowers.dev/abbrls/internal/documents"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguageOverrides(t *testing.T) {
	overrides, err := documents.NewLanguageOverrides("/work", map[string]string{
		"*.css":           "css",
		"**/*.module.css": "scss",
		"views/*.tpl":     "html",
	})
	require.NoError(t, err)

	tests := []struct {
		uri  string
		want string
		ok   bool
	}{
		{"file:///work/a.css", "css", true},
		{"file:///work/components/button.module.css", "scss", true},
		{"file:///work/views/home.tpl", "html", true},
		{"file:///work/views/nested/home.tpl", "", false},
		{"file:///elsewhere/x.css", "css", true},
		{"file:///work/readme.md", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			lang, ok := overrides.Match(tt.uri)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, lang)
		})
	}
}

func TestLanguageOverridesZeroValue(t *testing.T) {
	_, ok := documents.LanguageOverrides{}.Match("file:///a.css")
	assert.False(t, ok)
}

func TestNewLanguageOverridesErrors(t *testing.T) {
	_, err := documents.NewLanguageOverrides("", map[string]string{"[": "css"})
	assert.ErrorContains(t, err, "invalid glob")

	_, err = documents.NewLanguageOverrides("", map[string]string{"*.css": ""})
	assert.ErrorContains(t, err, "no language")
}
