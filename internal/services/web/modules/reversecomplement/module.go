// Package reversecomplement serves the DNA reverse-complement tool page.
package reversecomplement

import (
	"net/http"

	module "github.com/louisbranch/utility.tools/internal/services/web/module"
	"github.com/louisbranch/utility.tools/internal/services/web/platform/publichandler"
	"github.com/louisbranch/utility.tools/internal/services/web/routepath"
)

// Module provides the reverse-complement tool routes.
type Module struct {
	transformer Transformer
}

// New returns a tool module computing results through transformer.
func New(transformer Transformer) Module {
	return Module{transformer: transformer}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "reverse-complement" }

// Healthy reports whether a transformer is wired.
func (m Module) Healthy() bool { return m.transformer != nil }

// Mount wires the tool page under its route prefix.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.transformer), publichandler.NewBase()))
	return module.Mount{Prefix: routepath.ReverseComplementPrefix, Handler: mux}, nil
}
