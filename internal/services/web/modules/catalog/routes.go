package catalog

import (
	"net/http"

	"github.com/louisbranch/utility.tools/internal/services/web/platform/httpx"
	"github.com/louisbranch/utility.tools/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleIndex)
	mux.Handle(routepath.Root+"{$}", httpx.MethodNotAllowed("GET, HEAD"))
	mux.HandleFunc(routepath.Root, h.handleNotFound)
}
