package textDocument

import (
	"testing"

	"bennypowers.dev/abbrls/lsp/testutil"
	"bennypowers.dev/abbrls/lsp/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestDocumentLifecycle(t *testing.T) {
	server := testutil.NewMockServerContext()
	req := types.NewRequestContext(server, &glsp.Context{})
	uri := "file:///page.html"

	err := DidOpen(req, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:        uri,
			LanguageID: "html",
			Version:    1,
			Text:       "<ul></ul>",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, server.Document(uri))
	assert.Equal(t, "html", server.Document(uri).LanguageID())

	t.Run("incremental and whole changes", func(t *testing.T) {
		err := DidChange(req, &protocol.DidChangeTextDocumentParams{
			TextDocument: protocol.VersionedTextDocumentIdentifier{
				TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
				Version:                2,
			},
			ContentChanges: []any{
				protocol.TextDocumentContentChangeEvent{
					Range: &protocol.Range{
						Start: protocol.Position{Line: 0, Character: 4},
						End:   protocol.Position{Line: 0, Character: 4},
					},
					Text: "<li></li>",
				},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "<ul><li></li></ul>", server.Document(uri).Content())

		err = DidChange(req, &protocol.DidChangeTextDocumentParams{
			TextDocument: protocol.VersionedTextDocumentIdentifier{
				TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
				Version:                3,
			},
			ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "<ol></ol>"}},
		})
		require.NoError(t, err)
		assert.Equal(t, "<ol></ol>", server.Document(uri).Content())
		assert.Equal(t, 3, server.Document(uri).Version())
	})

	t.Run("close", func(t *testing.T) {
		require.NoError(t, DidClose(req, &protocol.DidCloseTextDocumentParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
		}))
		assert.Nil(t, server.Document(uri))

		assert.Error(t, DidClose(req, &protocol.DidCloseTextDocumentParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
		}))
	})
}
