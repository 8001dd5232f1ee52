// Package catalog serves the home page listing every tool by category.
package catalog

import (
	"net/http"

	module "github.com/louisbranch/utility.tools/internal/services/web/module"
	"github.com/louisbranch/utility.tools/internal/services/web/platform/publichandler"
	"github.com/louisbranch/utility.tools/internal/services/web/routepath"
)

// Module provides the catalog page and the site-wide not-found fallback.
type Module struct {
	store ToolLister
}

// New returns a catalog module reading tools from store.
func New(store ToolLister) Module {
	return Module{store: store}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "catalog" }

// Healthy reports whether the module has a backing store.
func (m Module) Healthy() bool { return m.store != nil }

// Mount wires catalog routes under the root prefix.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.store), publichandler.NewBase()))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
