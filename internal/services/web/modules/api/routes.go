package api

import (
	"net/http"

	"github.com/louisbranch/utility.tools/internal/services/web/platform/httpx"
	"github.com/louisbranch/utility.tools/internal/services/web/routepath"
)

// registerRoutes wires the API. GET on a tool path, including the
// reverse-complement path, describes the tool; POST runs it.
func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.APITools, h.handleListTools)
	mux.Handle(routepath.APITools, httpx.MethodNotAllowed("GET, HEAD"))
	mux.HandleFunc(http.MethodPost+" "+routepath.APIReverseComplement, h.handleReverseComplement)
	mux.HandleFunc(http.MethodGet+" "+routepath.APIToolPattern, h.handleGetTool)
	mux.HandleFunc(routepath.APIPrefix, h.handleNotFound)
}
