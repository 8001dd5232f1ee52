// Package webctx provides shared web request context helpers.
package webctx

import (
	"context"
	"net/http"
	"strings"

	"github.com/louisbranch/utility.tools/internal/platform/requestctx"
)

// WithLocale returns request context enriched with the resolved locale so
// downstream calls (including outgoing gRPC metadata) see the page language.
func WithLocale(r *http.Request, locale string) context.Context {
	if r == nil {
		return context.Background()
	}
	ctx := r.Context()
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return ctx
	}
	return requestctx.WithLocale(ctx, locale)
}
