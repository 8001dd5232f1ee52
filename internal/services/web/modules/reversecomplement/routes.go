package reversecomplement

import (
	"net/http"

	"github.com/louisbranch/utility.tools/internal/services/web/platform/httpx"
	"github.com/louisbranch/utility.tools/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.ReverseComplement, h.handlePage)
	mux.HandleFunc(http.MethodPost+" "+routepath.ReverseComplement, h.handleSubmit)
	mux.Handle(routepath.ReverseComplement, httpx.MethodNotAllowed("GET, HEAD, POST"))
	mux.HandleFunc(routepath.ReverseComplementPrefix, h.handleNotFound)
}
