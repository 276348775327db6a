package lifecycle

import (
	"bennypowers.dev/abbrls/internal/log"
	"bennypowers.dev/abbrls/internal/parser"
	"bennypowers.dev/abbrls/lsp/types"
)

// Shutdown handles the LSP shutdown request
func Shutdown(req *types.RequestContext) error {
	log.Info("Server shutting down")
	parser.ClosePools()
	return nil
}
