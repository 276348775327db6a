package workspace

import (
	"bennypowers.dev/abbrls/internal/log"
	"bennypowers.dev/abbrls/lsp/types"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// DidChangeConfiguration handles the workspace/didChangeConfiguration notification.
// Invalid settings are reported to the client and otherwise ignored.
func DidChangeConfiguration(req *types.RequestContext, params *protocol.DidChangeConfigurationParams) error {
	log.Info("Configuration changed")

	if err := req.Server.ApplyClientSettings(params.Settings); err != nil {
		req.AddWarning(err)
	}
	return nil
}
