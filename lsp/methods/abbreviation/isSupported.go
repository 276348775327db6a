package abbreviation

import (
	"bennypowers.dev/abbrls/internal/syntax"
	"bennypowers.dev/abbrls/lsp/types"
)

// IsSupportedParams are the params of abbreviation/isSupported. Syntax may be
// a syntax name or an editor language ID.
type IsSupportedParams struct {
	Syntax string `json:"syntax"`
}

// IsSupported handles abbreviation/isSupported
func IsSupported(req *types.RequestContext, params *IsSupportedParams) (bool, error) {
	return syntax.IsSupported(syntax.FromLanguageID(params.Syntax)), nil
}
