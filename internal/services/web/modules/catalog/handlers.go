package catalog

import (
	"net/http"

	"github.com/louisbranch/utility.tools/internal/services/web/platform/httpx"
	"github.com/louisbranch/utility.tools/internal/services/web/platform/publichandler"
	webtemplates "github.com/louisbranch/utility.tools/internal/services/web/templates"
)

type handlers struct {
	publichandler.Base
	svc service
}

func newHandlers(svc service, base publichandler.Base) handlers {
	return handlers{Base: base, svc: svc}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	page := h.Page(w, r)
	view, err := h.svc.catalogView(httpx.RequestContext(r), page.Loc)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.WritePublicPage(
		w,
		r,
		page.AppName(),
		webtemplates.T(page.Loc, "core.tagline"),
		page,
		http.StatusOK,
		webtemplates.CatalogFragment(view, page.Loc),
	)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.WriteNotFound(w, r)
}
