package workspace

import (
	"bennypowers.dev/abbrls/internal/log"
	"bennypowers.dev/abbrls/internal/uriutil"
	"bennypowers.dev/abbrls/lsp/types"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// DidChangeWatchedFiles handles the workspace/didChangeWatchedFiles notification
func DidChangeWatchedFiles(req *types.RequestContext, params *protocol.DidChangeWatchedFilesParams) error {
	log.Debug("Watched files changed: %d files", len(params.Changes))

	needsReload := false
	for _, change := range params.Changes {
		path := uriutil.URIToPath(change.URI)
		if req.Server.IsConfigFile(path) {
			log.Info("Config file changed: %s (type: %d)", path, change.Type)
			needsReload = true
		}
	}

	if needsReload {
		req.Server.ScheduleWorkspaceConfigReload()
	}
	return nil
}
