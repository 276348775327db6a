package documents

import (
	"fmt"
	"strings"
	"sync"

	"bennypowers.dev/abbrls/internal/log"
	"bennypowers.dev/abbrls/internal/position"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Manager manages text documents for the language server
type Manager struct {
	documents map[string]*Document
	overrides LanguageOverrides
	mu        sync.RWMutex
}

// NewManager creates a new document manager
func NewManager() *Manager {
	return &Manager{
		documents: make(map[string]*Document),
	}
}

// Get retrieves a document by URI
func (m *Manager) Get(uri string) *Document {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.documents[uri]
}

// GetAll returns all managed documents
func (m *Manager) GetAll() []*Document {
	m.mu.RLock()
	defer m.mu.RUnlock()

	docs := make([]*Document, 0, len(m.documents))
	for _, doc := range m.documents {
		docs = append(docs, doc)
	}
	return docs
}

// SetLanguageOverrides replaces the language overrides and reclassifies
// every open document
func (m *Manager) SetLanguageOverrides(overrides LanguageOverrides) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.overrides = overrides
	for _, doc := range m.documents {
		doc.languageID = m.languageFor(doc.uri, doc.clientLanguageID)
	}
}

// languageFor must be called with the lock held
func (m *Manager) languageFor(uri, clientLanguageID string) string {
	if lang, ok := m.overrides.Match(uri); ok {
		if lang != clientLanguageID {
			log.Debug("treating %s as %s instead of %s", uri, lang, clientLanguageID)
		}
		return lang
	}
	return clientLanguageID
}

// DidOpen handles the textDocument/didOpen notification
func (m *Manager) DidOpen(uri, languageID string, version int, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc := NewDocument(uri, languageID, version, content)
	doc.languageID = m.languageFor(uri, languageID)
	m.documents[uri] = doc
	return nil
}

// DidClose handles the textDocument/didClose notification
func (m *Manager) DidClose(uri string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.documents[uri]; !exists {
		return fmt.Errorf("document not found: %s", uri)
	}

	delete(m.documents, uri)
	return nil
}

// DidChange handles the textDocument/didChange notification.
// Changes apply in order, each to the result of the previous one.
func (m *Manager) DidChange(uri string, version int, changes []protocol.TextDocumentContentChangeEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, exists := m.documents[uri]
	if !exists {
		return fmt.Errorf("document not found: %s", uri)
	}

	content := doc.Content()
	for i, change := range changes {
		if change.Range == nil {
			content = change.Text
			continue
		}
		next, err := applyIncrementalChange(content, *change.Range, change.Text)
		if err != nil {
			return fmt.Errorf("failed to apply change %d: %w", i, err)
		}
		content = next
	}

	if err := doc.SetContent(content, version); err != nil {
		return fmt.Errorf("failed to set document content: %w", err)
	}
	return nil
}

// applyIncrementalChange replaces the text in rng with text
func applyIncrementalChange(content string, rng protocol.Range, text string) (string, error) {
	start, err := byteOffset(content, rng.Start)
	if err != nil {
		return "", fmt.Errorf("start: %w", err)
	}
	end, err := byteOffset(content, rng.End)
	if err != nil {
		return "", fmt.Errorf("end: %w", err)
	}
	if end < start {
		return "", fmt.Errorf("range end %d:%d precedes start %d:%d",
			rng.End.Line, rng.End.Character, rng.Start.Line, rng.Start.Character)
	}
	return content[:start] + text + content[end:], nil
}

// byteOffset converts an LSP position to a byte offset, rejecting positions
// outside the document. The position just past the last line (line count, 0)
// addresses the end of the document.
func byteOffset(content string, pos protocol.Position) (int, error) {
	line := int(pos.Line)
	lineStart := 0
	for i := range line {
		nl := strings.IndexByte(content[lineStart:], '\n')
		if nl < 0 {
			if i == line-1 && pos.Character == 0 {
				return len(content), nil
			}
			return 0, fmt.Errorf("line %d out of bounds (total lines: %d)", line, i+1)
		}
		lineStart += nl + 1
	}

	lineText := content[lineStart:]
	if nl := strings.IndexByte(lineText, '\n'); nl >= 0 {
		lineText = lineText[:nl]
	}
	if n := position.StringLengthUTF16(lineText); int(pos.Character) > n {
		return 0, fmt.Errorf("character %d out of bounds for line %d (length: %d)", pos.Character, line, n)
	}
	return lineStart + position.UTF16ToByteOffset(lineText, int(pos.Character)), nil
}
