package documents_test

import (
	"testing"

	"bennypowers.dev/abbrls/internal/documents"
	"bennypowers.dev/abbrls/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestNewDocument(t *testing.T) {
	doc := documents.NewDocument("file:///test.vue", "vue", 1, "<template></template>")

	assert.Equal(t, "file:///test.vue", doc.URI())
	assert.Equal(t, "vue", doc.LanguageID())
	assert.Equal(t, "vue", doc.ClientLanguageID())
	assert.Equal(t, 1, doc.Version())
	assert.Equal(t, "<template></template>", doc.Content())
}

func TestDocument_SetContent(t *testing.T) {
	t.Run("accepts newer version", func(t *testing.T) {
		doc := documents.NewDocument("file:///a.css", "css", 1, "original")
		require.NoError(t, doc.SetContent("updated", 2))
		assert.Equal(t, "updated", doc.Content())
		assert.Equal(t, 2, doc.Version())
	})

	t.Run("accepts same version", func(t *testing.T) {
		doc := documents.NewDocument("file:///a.css", "css", 1, "original")
		require.NoError(t, doc.SetContent("updated", 1))
		assert.Equal(t, "updated", doc.Content())
	})

	t.Run("rejects stale update", func(t *testing.T) {
		doc := documents.NewDocument("file:///a.css", "css", 5, "original")
		err := doc.SetContent("updated", 4)
		assert.ErrorContains(t, err, "stale")
		assert.Equal(t, "original", doc.Content())
		assert.Equal(t, 5, doc.Version())
	})
}

func TestDocument_Offset(t *testing.T) {
	doc := documents.NewDocument("file:///a.html", "html", 1, "<ul>\n  <li>颜色</li>\n</ul>")

	assert.Equal(t, 0, doc.Offset(protocol.Position{Line: 0, Character: 0}))
	assert.Equal(t, 4, doc.Offset(protocol.Position{Line: 0, Character: 4}))
	assert.Equal(t, 17, doc.Offset(protocol.Position{Line: 1, Character: 8}))
	assert.Equal(t, 4, doc.Offset(protocol.Position{Line: 0, Character: 99}), "clamps to line end")
	assert.Equal(t, len(doc.Content()), doc.Offset(protocol.Position{Line: 9, Character: 0}), "clamps to document end")
}

func TestDocument_Parse(t *testing.T) {
	t.Run("markup", func(t *testing.T) {
		doc := documents.NewDocument("file:///a.html", "html", 1, "<p></p>")
		tree, err := doc.Parse()
		require.NoError(t, err)
		require.NotNil(t, tree)
		defer tree.Close()
		assert.Equal(t, parser.GrammarHTML, tree.Grammar())
	})

	t.Run("no grammar", func(t *testing.T) {
		doc := documents.NewDocument("file:///a.md", "markdown", 1, "# hi")
		tree, err := doc.Parse()
		require.NoError(t, err)
		assert.Nil(t, tree)
	})
}
