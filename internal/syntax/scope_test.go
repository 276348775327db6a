package syntax_test

import (
	"encoding/json"
	"strings"
	"testing"

	"bennypowers.dev/abbrls/internal/cursor"
	"bennypowers.dev/abbrls/internal/parser"
	"bennypowers.dev/abbrls/internal/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStylesheetAbbreviationContext(t *testing.T) {
	foo := []cursor.AncestorNode{{Name: ".foo", Range: cursor.Range{Start: 0, End: 10}}}
	token := func(kind cursor.TokenKind) *cursor.Token {
		return &cursor.Token{Kind: kind}
	}

	tests := []struct {
		name string
		ctx  *cursor.CSSContext
		want string
	}{
		{"nil context", nil, "@@global"},
		{"top-level selector", &cursor.CSSContext{Current: token(cursor.Selector)}, "@@section"},
		{"top-level property name", &cursor.CSSContext{Current: token(cursor.PropertyName)}, "@@section"},
		{"value inside rule", &cursor.CSSContext{Ancestors: foo, Current: token(cursor.PropertyValue)}, ".foo"},
		{"value without ancestor", &cursor.CSSContext{Current: token(cursor.PropertyValue)}, "@@global"},
		{"nested selector", &cursor.CSSContext{Ancestors: foo, Current: token(cursor.Selector)}, "@@global"},
		{"block end", &cursor.CSSContext{Current: token(cursor.BlockEnd)}, "@@global"},
		{"inside block", &cursor.CSSContext{Ancestors: foo}, "@@global"},
		{"inline", &cursor.CSSContext{Inline: true}, "@@property"},
		{"inline with value", &cursor.CSSContext{Inline: true, Ancestors: foo, Current: token(cursor.PropertyValue)}, "@@property"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, syntax.StylesheetAbbreviationContext(tt.ctx).Scope())
		})
	}
}

func TestScopeMarkersAreDistinctFromNames(t *testing.T) {
	marker := syntax.Marked(syntax.ScopeGlobal)
	name := syntax.Named("@@global")

	assert.True(t, marker.IsMarker())
	assert.False(t, name.IsMarker())
	assert.Equal(t, marker.Scope(), name.Scope())
	assert.NotEqual(t, marker, name)
}

func TestAbbreviationContextJSON(t *testing.T) {
	data, err := json.Marshal(syntax.Marked(syntax.ScopeSection))
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "@@section"}`, string(data))

	data, err = json.Marshal(syntax.AbbreviationContext{Name: "a", Attributes: map[string]string{"href": "#"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "a", "attributes": {"href": "#"}}`, string(data))
}

func parseMarked(t *testing.T, languageID, marked string) (*parser.Tree, int) {
	t.Helper()
	pos := strings.Index(marked, "|")
	require.GreaterOrEqual(t, pos, 0)
	tree, err := parser.Parse(languageID, []byte(marked[:pos]+marked[pos+1:]))
	require.NoError(t, err)
	t.Cleanup(tree.Close)
	return tree, pos
}

func TestMarkupAbbreviationContext(t *testing.T) {
	t.Run("document root", func(t *testing.T) {
		tree, pos := parseMarked(t, "html", "<p></p>|")
		ctx := cursor.Resolve(tree, pos).(*cursor.HTMLContext)
		assert.Nil(t, syntax.MarkupAbbreviationContext(tree, ctx))
	})

	t.Run("element attributes", func(t *testing.T) {
		tree, pos := parseMarked(t, "html", `<ul><li class="item" data-x='1' hidden>|</li></ul>`)
		ctx := cursor.Resolve(tree, pos).(*cursor.HTMLContext)

		abbr := syntax.MarkupAbbreviationContext(tree, ctx)
		require.NotNil(t, abbr)
		assert.Equal(t, "li", abbr.Scope())
		assert.False(t, abbr.IsMarker())
		assert.Equal(t, map[string]string{"class": "item", "data-x": "1", "hidden": ""}, abbr.Attributes)
	})

	t.Run("element without attributes", func(t *testing.T) {
		tree, pos := parseMarked(t, "html", "<section>|</section>")
		ctx := cursor.Resolve(tree, pos).(*cursor.HTMLContext)

		abbr := syntax.MarkupAbbreviationContext(tree, ctx)
		require.NotNil(t, abbr)
		assert.Equal(t, "section", abbr.Name)
		assert.Empty(t, abbr.Attributes)
	})

	t.Run("jsx element", func(t *testing.T) {
		tree, pos := parseMarked(t, "javascriptreact", `const a = <div className="box" id={x}>|</div>;`)
		ctx := cursor.Resolve(tree, pos).(*cursor.HTMLContext)

		abbr := syntax.MarkupAbbreviationContext(tree, ctx)
		require.NotNil(t, abbr)
		assert.Equal(t, "div", abbr.Name)
		assert.Equal(t, map[string]string{"className": "box", "id": "{x}"}, abbr.Attributes)
	})

	t.Run("without a tree", func(t *testing.T) {
		ctx := &cursor.HTMLContext{Ancestors: []cursor.AncestorNode{{Name: "div"}}}
		abbr := syntax.MarkupAbbreviationContext(nil, ctx)
		require.NotNil(t, abbr)
		assert.Equal(t, "div", abbr.Name)
		assert.Empty(t, abbr.Attributes)
	})
}
