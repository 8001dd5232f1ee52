// Package modules defines web module registry helpers.
package modules

import (
	"github.com/louisbranch/utility.tools/internal/services/catalog/storage"
	module "github.com/louisbranch/utility.tools/internal/services/web/module"
	"github.com/louisbranch/utility.tools/internal/services/web/modules/reversecomplement"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries the backends required to compose the web module
// registry. Each module receives only the narrow interface it declares.
type Dependencies struct {
	// CatalogStore backs the catalog page and the JSON catalog endpoints.
	CatalogStore storage.Store

	// Transformer computes reverse complements, locally or over gRPC.
	Transformer reversecomplement.Transformer

	// Logf receives server-side failure logs. Nil uses log.Printf.
	Logf func(string, ...any)
}
