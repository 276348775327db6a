package lifecycle

import (
	"bennypowers.dev/abbrls/internal/log"
	"bennypowers.dev/abbrls/lsp/types"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Initialized handles the LSP initialized notification
func Initialized(req *types.RequestContext, params *protocol.InitializedParams) error {
	log.Info("Server initialized")

	// Kept for notifications sent outside a request, like config reloads
	req.Server.SetGLSPContext(req.GLSP)

	if err := req.Server.RegisterFileWatchers(req.GLSP); err != nil {
		req.AddWarning(err)
	}

	return nil
}
