package templates

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/utility.tools/internal/services/web/routepath"
)

const (
	appErrorTitleNotFoundKey   = "error.not_found.title"
	appErrorTitleServerErrKey  = "error.server.title"
	appErrorMessageNotFoundKey = "error.not_found.message"
	appErrorMessageServerKey   = "error.server.message"
)

// AppErrorPageTitle returns the browser page title for app error pages.
func AppErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorTitleNotFoundKey)
	}
	return T(loc, appErrorTitleServerErrKey)
}

func appErrorMessage(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorMessageNotFoundKey)
	}
	return T(loc, appErrorMessageServerKey)
}

func normalizeAppErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// AppErrorState renders the error page body with a link back home.
func AppErrorState(statusCode int, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<section id="app-error-state" class="error-state"`)
		h.attr("data-status", strconv.Itoa(normalizeAppErrorStatus(statusCode)))
		h.raw("><h1>")
		h.text(AppErrorPageTitle(statusCode, loc))
		h.raw("</h1><p>")
		h.text(appErrorMessage(statusCode, loc))
		h.raw("</p><a")
		h.href(routepath.Root)
		h.raw(">")
		h.text(T(loc, "layout.back_home"))
		h.raw("</a></section>")
		return h.err
	})
}
