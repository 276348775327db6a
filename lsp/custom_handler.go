package lsp

import (
	"encoding/json"
	"errors"

	"bennypowers.dev/abbrls/lsp/types"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// customMethod handles one request protocol.Handler does not know about
type customMethod func(ctx *glsp.Context) (result any, validParams bool, err error)

// CustomHandler wraps protocol.Handler to add the abbreviation/* requests.
// glsp's protocol.Handler answers unknown methods with "method not found",
// so these are dispatched before it is consulted.
type CustomHandler struct {
	*protocol.Handler // Pointer to avoid copying embedded mutex
	server            *Server
	methods           map[string]customMethod
}

// Handle implements glsp.Handler interface
func (h *CustomHandler) Handle(context *glsp.Context) (r any, validMethod bool, validParams bool, err error) {
	if m, ok := h.methods[context.Method]; ok {
		if !h.IsInitialized() {
			return nil, true, true, errors.New("server not initialized")
		}
		r, validParams, err = m(context)
		return r, true, validParams, err
	}
	return h.Handler.Handle(context)
}

// customRequest decodes the raw params of a custom request and runs handler
// behind the same middleware as the standard methods
func customRequest[P, R any](
	s types.ServerContext,
	methodName string,
	handler func(*types.RequestContext, *P) (R, error),
) customMethod {
	wrapped := method(s, methodName, handler)
	return func(ctx *glsp.Context) (any, bool, error) {
		var params P
		if err := json.Unmarshal(ctx.Params, &params); err != nil {
			return nil, false, err
		}
		result, err := wrapped(ctx, &params)
		return result, true, err
	}
}
