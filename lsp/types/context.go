package types

import (
	"bennypowers.dev/abbrls/internal/documents"
	"github.com/tliron/glsp"
)

// ServerContext provides all dependencies needed for LSP handlers.
// Handlers depend on this interface so tests can substitute a mock.
type ServerContext interface {
	// Document operations
	Document(uri string) *documents.Document
	DocumentManager() *documents.Manager
	AllDocuments() []*documents.Document

	// Workspace operations
	RootURI() string
	RootPath() string
	SetRootURI(uri string)
	SetRootPath(path string)

	// Configuration
	GetConfig() ServerConfig
	SetConfig(config ServerConfig)
	LoadWorkspaceConfig() error
	ScheduleWorkspaceConfigReload()
	ApplyClientSettings(settings any) error
	IsConfigFile(path string) bool
	RegisterFileWatchers(ctx *glsp.Context) error

	// LSP context
	GLSPContext() *glsp.Context
	SetGLSPContext(ctx *glsp.Context)
}
