package lsp

import (
	"path/filepath"
	"sync"
	"time"

	"bennypowers.dev/abbrls/internal/documents"
	"bennypowers.dev/abbrls/internal/log"
	"bennypowers.dev/abbrls/internal/parser"
	"bennypowers.dev/abbrls/lsp/methods/abbreviation"
	"bennypowers.dev/abbrls/lsp/methods/lifecycle"
	"bennypowers.dev/abbrls/lsp/methods/textDocument"
	"bennypowers.dev/abbrls/lsp/methods/workspace"
	"bennypowers.dev/abbrls/lsp/types"
	"github.com/bep/debounce"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

// configReloadDelay is how long watched-file events must settle before the
// workspace configuration is reloaded
const configReloadDelay = 200 * time.Millisecond

// Verify that Server implements ServerContext interface
var _ types.ServerContext = (*Server)(nil)

// Server represents the Abbreviation Language Server
type Server struct {
	documents       *documents.Manager
	glspServer      *server.Server
	handler         *CustomHandler
	context         *glsp.Context
	rootURI         string             // Workspace root URI
	rootPath        string             // Workspace root path (file system)
	config          types.ServerConfig // Effective configuration
	workspaceConfig types.ServerConfig // Defaults plus workspace files, before client settings
	clientSettings  map[string]any     // Last settings section sent by the client
	configMu        sync.RWMutex       // Protects the fields above
	reload          func(func())
}

// NewServer creates a new Abbreviation LSP server
func NewServer() (*Server, error) {
	s := &Server{
		documents:       documents.NewManager(),
		config:          types.DefaultConfig(),
		workspaceConfig: types.DefaultConfig(),
		reload:          debounce.New(configReloadDelay),
	}

	protocolHandler := protocol.Handler{
		Initialize:                      method(s, "initialize", lifecycle.Initialize),
		Initialized:                     notify(s, "initialized", lifecycle.Initialized),
		Shutdown:                        noParam(s, "shutdown", lifecycle.Shutdown),
		SetTrace:                        notify(s, "$/setTrace", lifecycle.SetTrace),
		WorkspaceDidChangeConfiguration: notify(s, "workspace/didChangeConfiguration", workspace.DidChangeConfiguration),
		WorkspaceDidChangeWatchedFiles:  notify(s, "workspace/didChangeWatchedFiles", workspace.DidChangeWatchedFiles),
		TextDocumentDidOpen:             notify(s, "textDocument/didOpen", textDocument.DidOpen),
		TextDocumentDidChange:           notify(s, "textDocument/didChange", textDocument.DidChange),
		TextDocumentDidClose:            notify(s, "textDocument/didClose", textDocument.DidClose),
	}

	// protocol.Handler only dispatches standard methods, so the
	// abbreviation/* requests are intercepted before it sees them.
	s.handler = &CustomHandler{
		Handler: &protocolHandler,
		server:  s,
		methods: map[string]customMethod{
			abbreviation.MethodContext:     customRequest(s, abbreviation.MethodContext, abbreviation.Context),
			abbreviation.MethodIsSupported: customRequest(s, abbreviation.MethodIsSupported, abbreviation.IsSupported),
		},
	}

	s.glspServer = server.NewServer(s.handler, lifecycle.ServerName, false)

	return s, nil
}

// RunStdio starts the LSP server using stdio transport
func (s *Server) RunStdio() error {
	return s.glspServer.RunStdio()
}

// RunWebSocket serves LSP clients over websocket connections on address
func (s *Server) RunWebSocket(address string) error {
	return s.glspServer.RunWebSocket(address)
}

// RunTCP serves LSP clients over TCP connections on address
func (s *Server) RunTCP(address string) error {
	return s.glspServer.RunTCP(address)
}

// Close releases the pooled parsers.
// It is safe to call Close multiple times.
func (s *Server) Close() error {
	parser.ClosePools()
	return nil
}

// Document returns the document with the given URI
func (s *Server) Document(uri string) *documents.Document {
	return s.documents.Get(uri)
}

// DocumentManager returns the document manager
func (s *Server) DocumentManager() *documents.Manager {
	return s.documents
}

// AllDocuments returns all tracked documents
func (s *Server) AllDocuments() []*documents.Document {
	return s.documents.GetAll()
}

// RootURI returns the workspace root URI
func (s *Server) RootURI() string {
	s.configMu.RLock()
	defer s.configMu.RUnlock()
	return s.rootURI
}

// RootPath returns the workspace root path
func (s *Server) RootPath() string {
	s.configMu.RLock()
	defer s.configMu.RUnlock()
	return s.rootPath
}

// SetRootURI sets the workspace root URI
func (s *Server) SetRootURI(uri string) {
	s.configMu.Lock()
	defer s.configMu.Unlock()
	s.rootURI = uri
}

// SetRootPath sets the workspace root path
func (s *Server) SetRootPath(path string) {
	s.configMu.Lock()
	defer s.configMu.Unlock()
	s.rootPath = path
}

// GLSPContext returns the GLSP context
func (s *Server) GLSPContext() *glsp.Context {
	s.configMu.RLock()
	defer s.configMu.RUnlock()
	return s.context
}

// SetGLSPContext sets the GLSP context
func (s *Server) SetGLSPContext(ctx *glsp.Context) {
	s.configMu.Lock()
	defer s.configMu.Unlock()
	s.context = ctx
}

// RegisterFileWatchers asks the client to watch the workspace configuration files
func (s *Server) RegisterFileWatchers(context *glsp.Context) error {
	// An empty context (created with &glsp.Context{}) has no Call
	if context == nil || context.Call == nil {
		log.Info("Skipping file watcher registration (no client context)")
		return nil
	}

	root := s.RootPath()
	var watchers []protocol.FileSystemWatcher
	for _, name := range ConfigFiles() {
		pattern := "**/" + name
		if root != "" {
			pattern = filepath.ToSlash(filepath.Join(root, name))
		}
		watchers = append(watchers, protocol.FileSystemWatcher{GlobPattern: pattern})
	}

	params := protocol.RegistrationParams{
		Registrations: []protocol.Registration{
			{
				ID:     "abbreviation-config-watcher",
				Method: "workspace/didChangeWatchedFiles",
				RegisterOptions: protocol.DidChangeWatchedFilesRegistrationOptions{
					Watchers: watchers,
				},
			},
		},
	}

	// client/registerCapability is a request. Calling it on the handler
	// goroutine would block reading the client's response.
	go func(ctx *glsp.Context) {
		var result any
		ctx.Call("client/registerCapability", params, &result)
		log.Info("File watcher registration completed")
	}(context)

	log.Info("Sent file watcher registration request (%d watchers)", len(watchers))
	return nil
}
