package syntax_test

import (
	"testing"

	"bennypowers.dev/abbrls/internal/cursor"
	"bennypowers.dev/abbrls/internal/syntax"
	"github.com/stretchr/testify/assert"
)

func TestEmbeddedStyleSyntax(t *testing.T) {
	text := `<style type="text/scss">.a { b: c; }</style>`
	styleAt := func(name string) *cursor.HTMLContext {
		return &cursor.HTMLContext{Ancestors: []cursor.AncestorNode{
			{Name: "body", Range: cursor.Range{Start: 0, End: len(text)}},
			{Name: name, Range: cursor.Range{Start: 0, End: len(text)}},
		}}
	}

	t.Run("style with type", func(t *testing.T) {
		got, ok := syntax.EmbeddedStyleSyntax(text, styleAt("style"))
		assert.True(t, ok)
		assert.Equal(t, "text/scss", got)
		assert.Equal(t, "scss", syntax.StripMIME(got))
	})

	t.Run("parent is not style", func(t *testing.T) {
		_, ok := syntax.EmbeddedStyleSyntax(text, styleAt("div"))
		assert.False(t, ok)
	})

	t.Run("style without type", func(t *testing.T) {
		_, ok := syntax.EmbeddedStyleSyntax("<style>.a {}</style>", styleAt("style"))
		assert.False(t, ok)
	})

	t.Run("no ancestors", func(t *testing.T) {
		_, ok := syntax.EmbeddedStyleSyntax(text, &cursor.HTMLContext{})
		assert.False(t, ok)
		_, ok = syntax.EmbeddedStyleSyntax(text, nil)
		assert.False(t, ok)
	})

	t.Run("range past end of text", func(t *testing.T) {
		ctx := &cursor.HTMLContext{Ancestors: []cursor.AncestorNode{
			{Name: "style", Range: cursor.Range{Start: 0, End: 1000}},
		}}
		got, ok := syntax.EmbeddedStyleSyntax(text, ctx)
		assert.True(t, ok)
		assert.Equal(t, "text/scss", got)
	})
}

func TestStripMIME(t *testing.T) {
	assert.Equal(t, "scss", syntax.StripMIME("text/scss"))
	assert.Equal(t, "less", syntax.StripMIME("less"))
	assert.Equal(t, "", syntax.StripMIME("text/"))
}

func TestDialect(t *testing.T) {
	tests := []struct {
		name string
		doc  doc
		pos  int
		want syntax.Name
	}{
		{
			name: "style element with type",
			doc:  doc{lang: "html", content: `<style type="text/scss">.a { b: c; }</style>`},
			pos:  30,
			want: "scss",
		},
		{
			name: "style element with unknown type",
			doc:  doc{lang: "html", content: `<style type="text/x-unknown">.a { b: c; }</style>`},
			pos:  34,
			want: "css",
		},
		{
			name: "plain style element in vue",
			doc:  doc{lang: "vue", content: `<style>.a { b: c; }</style>`},
			pos:  13,
			want: "css",
		},
		{
			name: "less document",
			doc:  doc{lang: "less", content: ".a { b: c; }"},
			pos:  6,
			want: "less",
		},
		{
			name: "inline style in markup",
			doc:  doc{lang: "vue", content: `<p style="b: c"></p>`},
			pos:  12,
			want: "css",
		},
		{
			name: "vue markup",
			doc:  doc{lang: "vue", content: "<div></div>"},
			pos:  5,
			want: "vue",
		},
		{
			name: "react markup",
			doc:  doc{lang: "typescriptreact", content: "const a = <div></div>;"},
			pos:  15,
			want: "tsx",
		},
		{
			name: "javascript markup",
			doc:  doc{lang: "javascript", content: "const a = <div></div>;"},
			pos:  15,
			want: "jsx",
		},
		{
			name: "unsupported document",
			doc:  doc{lang: "markdown", content: "# hi"},
			pos:  2,
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := syntax.Resolve(tt.doc, tt.pos)
			assert.Equal(t, tt.want, syntax.Dialect(tt.doc, info))
		})
	}
}
