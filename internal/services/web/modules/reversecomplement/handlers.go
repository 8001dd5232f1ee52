package reversecomplement

import (
	"net/http"

	"github.com/louisbranch/utility.tools/internal/services/web/platform/httpx"
	"github.com/louisbranch/utility.tools/internal/services/web/platform/pagerender"
	"github.com/louisbranch/utility.tools/internal/services/web/platform/publichandler"
	"github.com/louisbranch/utility.tools/internal/services/web/platform/weberror"
	"github.com/louisbranch/utility.tools/internal/services/web/platform/webctx"
	webtemplates "github.com/louisbranch/utility.tools/internal/services/web/templates"
)

const sequenceField = "sequence"

type handlers struct {
	publichandler.Base
	svc service
}

func newHandlers(svc service, base publichandler.Base) handlers {
	return handlers{Base: base, svc: svc}
}

func (h handlers) handlePage(w http.ResponseWriter, r *http.Request) {
	page := h.Page(w, r)
	h.writePage(w, r, page, http.StatusOK, webtemplates.ReverseComplementView{})
}

func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	page := h.Page(w, r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	computed, err := h.svc.reverseComplement(webctx.WithLocale(r, page.Lang), r.PostFormValue(sequenceField))
	view := webtemplates.ReverseComplementView{
		Sequence: computed.Sequence,
		Length:   computed.Length,
		Result:   computed.Output,
	}
	statusCode := http.StatusOK
	if err != nil {
		statusCode = weberror.Status(err)
		if weberror.ShouldRenderAppError(statusCode) {
			h.WriteError(w, r, err)
			return
		}
		view.Error = weberror.PublicMessage(page.Loc, page.Lang, err)
	}

	if httpx.IsHTMXRequest(r) {
		if renderErr := pagerender.WriteFragment(w, r, statusCode, webtemplates.ReverseComplementResult(view, page.Loc)); renderErr != nil {
			h.WriteError(w, r, renderErr)
		}
		return
	}
	h.writePage(w, r, page, statusCode, view)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.WriteNotFound(w, r)
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, page webtemplates.PageContext, statusCode int, view webtemplates.ReverseComplementView) {
	h.WritePublicPage(
		w,
		r,
		webtemplates.T(page.Loc, "tools.reverse-complement.name"),
		webtemplates.T(page.Loc, "tools.reverse-complement.description"),
		page,
		statusCode,
		webtemplates.ReverseComplementFragment(view, page),
	)
}
