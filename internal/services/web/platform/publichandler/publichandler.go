// Package publichandler provides a shared base for web module handlers.
// It centralizes error handling, localization, and page rendering that would
// otherwise be duplicated across modules.
package publichandler

import (
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/utility.tools/internal/platform/requestctx"
	webi18n "github.com/louisbranch/utility.tools/internal/services/web/platform/i18n"
	"github.com/louisbranch/utility.tools/internal/services/web/platform/pagerender"
	"github.com/louisbranch/utility.tools/internal/services/web/platform/weberror"
	webtemplates "github.com/louisbranch/utility.tools/internal/services/web/templates"
)

// Base provides shared error handling and page rendering. Embed it in
// handler structs to get Page, WritePublicPage, WriteNotFound and WriteError.
type Base struct {
	logf func(string, ...any)
}

// Option configures a Base.
type Option func(*Base)

// WithLogf overrides the error logger (defaults to log.Printf).
func WithLogf(logf func(string, ...any)) Option {
	return func(b *Base) { b.logf = logf }
}

// NewBase builds a handler base with the given options.
func NewBase(opts ...Option) Base {
	b := Base{logf: log.Printf}
	for _, o := range opts {
		o(&b)
	}
	return b
}

// Page resolves the request language and returns the page context for r.
func (Base) Page(w http.ResponseWriter, r *http.Request) webtemplates.PageContext {
	loc, lang := webi18n.ResolveLocalizer(w, r)
	return webtemplates.NewPageContext(r, loc, lang)
}

// WritePublicPage renders a full page using the shared layout.
func (Base) WritePublicPage(w http.ResponseWriter, r *http.Request, title string, metaDesc string, page webtemplates.PageContext, statusCode int, body templ.Component) {
	pagerender.WritePublicPage(w, r, title, metaDesc, page, statusCode, body)
}

// WriteNotFound renders a localized 404 error page.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	b.writeAppError(w, r, b.Page(w, r), http.StatusNotFound)
}

// WriteError renders a user-safe error response: app error pages for not-found
// and server errors, plain-text localized messages for everything else.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil {
		return
	}
	page := b.Page(w, r)
	statusCode := weberror.Status(err)
	if statusCode >= http.StatusInternalServerError {
		b.log("web request failed path=%s request_id=%s err=%v", requestPath(r), requestID(r), err)
	}
	if weberror.ShouldRenderAppError(statusCode) {
		b.writeAppError(w, r, page, statusCode)
		return
	}
	http.Error(w, weberror.PublicMessage(page.Loc, page.Lang, err), statusCode)
}

func (Base) writeAppError(w http.ResponseWriter, r *http.Request, page webtemplates.PageContext, statusCode int) {
	pagerender.WritePublicPage(
		w,
		r,
		webtemplates.AppErrorPageTitle(statusCode, page.Loc),
		webtemplates.T(page.Loc, "core.tagline"),
		page,
		statusCode,
		webtemplates.AppErrorState(statusCode, page.Loc),
	)
}

func (b Base) log(format string, args ...any) {
	if b.logf == nil {
		return
	}
	b.logf(format, args...)
}

func requestPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return "-"
	}
	return r.URL.Path
}

func requestID(r *http.Request) string {
	if r == nil {
		return "-"
	}
	if id := requestctx.RequestIDFromContext(r.Context()); id != "" {
		return id
	}
	return "-"
}
