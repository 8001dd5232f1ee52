package api

import (
	"log"
	"net/http"

	platformerrors "github.com/louisbranch/utility.tools/internal/platform/errors"
	"github.com/louisbranch/utility.tools/internal/platform/requestctx"
	"github.com/louisbranch/utility.tools/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/utility.tools/internal/services/web/platform/i18n"
	"github.com/louisbranch/utility.tools/internal/services/web/platform/toolcopy"
	"github.com/louisbranch/utility.tools/internal/services/web/platform/weberror"
	"github.com/louisbranch/utility.tools/internal/services/web/platform/webctx"
)

type toolsResponse struct {
	Tools []toolcopy.Tool `json:"tools"`
}

type toolResponse struct {
	Tool toolcopy.Tool `json:"tool"`
}

type reverseComplementRequest struct {
	Sequence string `json:"sequence"`
}

type reverseComplementResponse struct {
	Result string `json:"result"`
	Length int    `json:"length"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type handlers struct {
	svc  service
	logf func(string, ...any)
}

func newHandlers(svc service, logf func(string, ...any)) handlers {
	if logf == nil {
		logf = log.Printf
	}
	return handlers{svc: svc, logf: logf}
}

func (h handlers) handleListTools(w http.ResponseWriter, r *http.Request) {
	loc, lang := webi18n.ResolveLocalizer(w, r)
	tools, err := h.svc.listTools(httpx.RequestContext(r))
	if err != nil {
		h.writeError(w, r, lang, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, toolsResponse{Tools: toolcopy.LocalizeAll(loc, tools)})
}

func (h handlers) handleGetTool(w http.ResponseWriter, r *http.Request) {
	loc, lang := webi18n.ResolveLocalizer(w, r)
	tool, err := h.svc.getTool(httpx.RequestContext(r), r.PathValue("toolID"))
	if err != nil {
		h.writeError(w, r, lang, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, toolResponse{Tool: toolcopy.Localize(loc, tool)})
}

func (h handlers) handleReverseComplement(w http.ResponseWriter, r *http.Request) {
	_, lang := webi18n.ResolveLocalizer(w, r)
	var req reverseComplementRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		_ = httpx.WriteJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	computed, err := h.svc.reverseComplement(webctx.WithLocale(r, lang), req.Sequence)
	if err != nil {
		h.writeError(w, r, lang, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, reverseComplementResponse{Result: computed.Result, Length: computed.Length})
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	_, lang := webi18n.ResolveLocalizer(w, r)
	h.writeError(w, r, lang, platformerrors.New(platformerrors.CodeNotFound, "route not found"))
}

// writeError renders err as a JSON body whose message is localized and safe to
// show. Domain errors also report their machine-readable code.
func (h handlers) writeError(w http.ResponseWriter, r *http.Request, lang string, err error) {
	statusCode := weberror.Status(err)
	if statusCode >= http.StatusInternalServerError {
		requestID := requestctx.RequestIDFromContext(httpx.RequestContext(r))
		if requestID == "" {
			requestID = "-"
		}
		h.logf("api request failed path=%s request_id=%s err=%v", r.URL.Path, requestID, err)
	}
	resp := errorResponse{Error: weberror.PublicMessage(nil, lang, err)}
	if code := platformerrors.GetCode(err); code != platformerrors.CodeUnknown {
		resp.Code = string(code)
	}
	_ = httpx.WriteJSON(w, statusCode, resp)
}
