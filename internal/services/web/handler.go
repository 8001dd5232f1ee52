package web

import (
	"fmt"
	"log"
	"net/http"

	"github.com/louisbranch/utility.tools/internal/services/web/app"
	"github.com/louisbranch/utility.tools/internal/services/web/modules"
	"github.com/louisbranch/utility.tools/internal/services/web/platform/httpx"
	"github.com/louisbranch/utility.tools/internal/services/web/platform/observability"
	"github.com/louisbranch/utility.tools/internal/services/web/routepath"
	"github.com/louisbranch/utility.tools/internal/services/web/static"
)

type healthResponse struct {
	Status string `json:"status"`
}

// NewHandler assembles the root HTTP handler: static assets, the health
// route and every feature module, wrapped in the shared middleware chain.
func NewHandler(deps modules.Dependencies) (http.Handler, error) {
	return newHandler(deps, log.Default())
}

func newHandler(deps modules.Dependencies, logger *log.Logger) (http.Handler, error) {
	features := modules.DefaultModules(deps)
	mux, err := app.Compose(app.ComposeInput{Modules: features})
	if err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}

	mux.Handle(http.MethodGet+" "+routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(static.FS))))
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, func(w http.ResponseWriter, _ *http.Request) {
		if !app.Healthy(features) {
			_ = httpx.WriteJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
			return
		}
		_ = httpx.WriteJSON(w, http.StatusOK, healthResponse{Status: "ok"})
	})
	mux.Handle(routepath.Health, httpx.MethodNotAllowed("GET, HEAD"))

	return httpx.Chain(
		mux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.RequestLogger(logger),
	), nil
}
