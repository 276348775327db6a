package testutil

import (
	"path/filepath"

	"bennypowers.dev/abbrls/internal/documents"
	"bennypowers.dev/abbrls/lsp/types"
	"github.com/tliron/glsp"
)

// MockServerContext implements types.ServerContext for testing.
// Behavior can be customized via the callback fields.
type MockServerContext struct {
	docs        *documents.Manager
	rootURI     string
	rootPath    string
	config      types.ServerConfig
	glspContext *glsp.Context

	// Optional callbacks for custom behavior in tests
	LoadWorkspaceConfigFunc func() error
	ApplySettingsFunc       func(any) error
	RegisterWatchersFunc    func(*glsp.Context) error
	IsConfigFileFunc        func(string) bool

	// Tracking for tests that need to verify methods were called
	LoadWorkspaceConfigCalled bool
	RegisterWatchersCalled    bool
	ReloadsScheduled          int
	AppliedSettings           []any
}

// NewMockServerContext creates a new mock server context with default behavior
func NewMockServerContext() *MockServerContext {
	return &MockServerContext{
		docs:   documents.NewManager(),
		config: types.DefaultConfig(),
	}
}

// Document returns the document with the given URI
func (m *MockServerContext) Document(uri string) *documents.Document {
	return m.docs.Get(uri)
}

// DocumentManager returns the document manager
func (m *MockServerContext) DocumentManager() *documents.Manager {
	return m.docs
}

// AllDocuments returns all tracked documents
func (m *MockServerContext) AllDocuments() []*documents.Document {
	return m.docs.GetAll()
}

// RootURI returns the workspace root URI
func (m *MockServerContext) RootURI() string {
	return m.rootURI
}

// RootPath returns the workspace root path
func (m *MockServerContext) RootPath() string {
	return m.rootPath
}

// SetRootURI sets the workspace root URI
func (m *MockServerContext) SetRootURI(uri string) {
	m.rootURI = uri
}

// SetRootPath sets the workspace root path
func (m *MockServerContext) SetRootPath(path string) {
	m.rootPath = path
}

// GetConfig returns the server configuration
func (m *MockServerContext) GetConfig() types.ServerConfig {
	return m.config
}

// SetConfig sets the server configuration
func (m *MockServerContext) SetConfig(config types.ServerConfig) {
	m.config = config
}

// LoadWorkspaceConfig records the call and runs LoadWorkspaceConfigFunc
func (m *MockServerContext) LoadWorkspaceConfig() error {
	m.LoadWorkspaceConfigCalled = true
	if m.LoadWorkspaceConfigFunc != nil {
		return m.LoadWorkspaceConfigFunc()
	}
	return nil
}

// ScheduleWorkspaceConfigReload counts scheduled reloads
func (m *MockServerContext) ScheduleWorkspaceConfigReload() {
	m.ReloadsScheduled++
}

// ApplyClientSettings records settings and runs ApplySettingsFunc
func (m *MockServerContext) ApplyClientSettings(settings any) error {
	m.AppliedSettings = append(m.AppliedSettings, settings)
	if m.ApplySettingsFunc != nil {
		return m.ApplySettingsFunc(settings)
	}
	return nil
}

// IsConfigFile matches .abbrlsrc and package.json files by name
func (m *MockServerContext) IsConfigFile(path string) bool {
	if m.IsConfigFileFunc != nil {
		return m.IsConfigFileFunc(path)
	}
	switch filepath.Base(path) {
	case ".abbrlsrc.yaml", ".abbrlsrc.yml", ".abbrlsrc.json", "package.json":
		return true
	}
	return false
}

// RegisterFileWatchers registers file watchers with the client
func (m *MockServerContext) RegisterFileWatchers(ctx *glsp.Context) error {
	m.RegisterWatchersCalled = true
	if m.RegisterWatchersFunc != nil {
		return m.RegisterWatchersFunc(ctx)
	}
	return nil
}

// GLSPContext returns the GLSP context
func (m *MockServerContext) GLSPContext() *glsp.Context {
	return m.glspContext
}

// SetGLSPContext sets the GLSP context
func (m *MockServerContext) SetGLSPContext(ctx *glsp.Context) {
	m.glspContext = ctx
}
