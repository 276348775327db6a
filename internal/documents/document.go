package documents

import (
	"fmt"

	"bennypowers.dev/abbrls/internal/parser"
	"bennypowers.dev/abbrls/internal/position"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Document is an open text document. LanguageID is the effective language,
// which a configured override may change from the one the client reported.
type Document struct {
	uri              string
	languageID       string
	clientLanguageID string
	content          string
	version          int
}

// NewDocument creates a new document
func NewDocument(uri, languageID string, version int, content string) *Document {
	return &Document{
		uri:              uri,
		languageID:       languageID,
		clientLanguageID: languageID,
		version:          version,
		content:          content,
	}
}

// URI returns the document's URI
func (d *Document) URI() string {
	return d.uri
}

// LanguageID returns the language the document is classified as
func (d *Document) LanguageID() string {
	return d.languageID
}

// ClientLanguageID returns the language the client opened the document with
func (d *Document) ClientLanguageID() string {
	return d.clientLanguageID
}

// Version returns the document's version
func (d *Document) Version() int {
	return d.version
}

// Content returns the document's current content
func (d *Document) Content() string {
	return d.content
}

// SetContent updates the document's content and version.
// Updates older than the current version are rejected.
func (d *Document) SetContent(content string, version int) error {
	if version < d.version {
		return fmt.Errorf("rejected stale update: document version is %d but update version is %d", d.version, version)
	}
	d.content = content
	d.version = version
	return nil
}

// Offset converts an LSP position to a byte offset, clamping to the document
func (d *Document) Offset(pos protocol.Position) int {
	return position.OffsetAt(d.content, int(pos.Line), int(pos.Character))
}

// Parse builds a fresh syntax tree for the current content. Languages
// without a grammar yield a nil tree. The caller must Close the tree.
func (d *Document) Parse() (*parser.Tree, error) {
	tree, err := parser.Parse(d.languageID, []byte(d.content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", d.uri, err)
	}
	return tree, nil
}
