package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/utility.tools/internal/services/web/routepath"
)

// Layout renders the public page shell around the children in ctx.
func Layout(title string, metaDescription string, page PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw("<!DOCTYPE html><html")
		h.attr("lang", page.Lang)
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(ComposePageTitle(title, page.AppName()))
		h.raw("</title>")
		if metaDescription != "" {
			h.raw(`<meta name="description"`)
			h.attr("content", metaDescription)
			h.raw(">")
		}
		h.raw(`<link rel="stylesheet"`)
		h.href(routepath.StaticStylesheet)
		h.raw("></head><body>")

		h.raw(`<header class="site-header"><a class="brand"`)
		h.href(routepath.Root)
		h.raw(">")
		h.text(page.AppName())
		h.raw(`</a><nav class="lang-switcher"`)
		h.attr("aria-label", T(page.Loc, "layout.language"))
		h.raw(">")
		for _, option := range LanguageOptions(page) {
			h.raw("<a")
			h.href(LanguageURL(page, option.Tag))
			h.attr("hreflang", option.Tag)
			if option.Active {
				h.raw(` class="active" aria-current="true"`)
			}
			h.raw(">")
			h.text(option.Label)
			h.raw("</a>")
		}
		h.raw("</nav></header>")

		h.raw(`<main class="container">`)
		h.render(ctx, templ.GetChildren(ctx))
		h.raw("</main>")

		h.raw(`<footer class="site-footer"><p>`)
		h.text(T(page.Loc, "layout.footer"))
		h.raw("</p></footer><script")
		h.attr("src", routepath.StaticScript)
		h.raw(" defer></script></body></html>")
		return h.err
	})
}
