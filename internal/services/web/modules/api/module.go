// Package api serves the JSON catalog and tool endpoints.
package api

import (
	"net/http"

	module "github.com/louisbranch/utility.tools/internal/services/web/module"
	"github.com/louisbranch/utility.tools/internal/services/web/routepath"
)

// Module provides the /api routes.
type Module struct {
	store       ToolStore
	transformer Transformer
	logf        func(string, ...any)
}

// Option configures a Module.
type Option func(*Module)

// WithLogf overrides the server-error logger.
func WithLogf(logf func(string, ...any)) Option {
	return func(m *Module) { m.logf = logf }
}

// New returns an API module over store and transformer.
func New(store ToolStore, transformer Transformer, opts ...Option) Module {
	m := Module{store: store, transformer: transformer}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "api" }

// Healthy reports whether both backing dependencies are wired.
func (m Module) Healthy() bool { return m.store != nil && m.transformer != nil }

// Mount wires JSON routes under /api/.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.store, m.transformer), m.logf))
	return module.Mount{Prefix: routepath.APIPrefix, Handler: mux}, nil
}
