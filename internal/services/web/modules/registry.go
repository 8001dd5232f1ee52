package modules

import (
	"github.com/louisbranch/utility.tools/internal/services/web/modules/api"
	"github.com/louisbranch/utility.tools/internal/services/web/modules/catalog"
	"github.com/louisbranch/utility.tools/internal/services/web/modules/reversecomplement"
)

// DefaultModules returns the production module set in mount order.
func DefaultModules(deps Dependencies) []Module {
	var apiOpts []api.Option
	if deps.Logf != nil {
		apiOpts = append(apiOpts, api.WithLogf(deps.Logf))
	}
	return []Module{
		catalog.New(deps.CatalogStore),
		reversecomplement.New(deps.Transformer),
		api.New(deps.CatalogStore, deps.Transformer, apiOpts...),
	}
}
