package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// CatalogView is the catalog page model, grouped by category.
type CatalogView struct {
	Categories []CatalogCategoryView
}

// CatalogCategoryView is one localized category section.
type CatalogCategoryView struct {
	ID    string
	Label string
	Tools []CatalogToolView
}

// CatalogToolView is one tool card.
type CatalogToolView struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Href        string
}

// CatalogFragment renders the tool catalog: a hero heading followed by one
// card grid per category.
func CatalogFragment(view CatalogView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<section id="catalog-root" class="catalog"><header class="hero"><h1>`)
		h.text(T(loc, "catalog.heading"))
		h.raw("</h1><p>")
		h.text(T(loc, "core.tagline"))
		h.raw("</p></header>")
		if len(view.Categories) == 0 {
			h.raw(`<p class="empty">`)
			h.text(T(loc, "catalog.empty"))
			h.raw("</p>")
		}
		for _, category := range view.Categories {
			h.raw(`<section class="category"`)
			h.attr("data-category", category.ID)
			h.raw("><h2>")
			h.text(category.Label)
			h.raw(`</h2><div class="tool-grid">`)
			for _, tool := range category.Tools {
				h.raw(`<a class="tool-card"`)
				h.href(tool.Href)
				h.attr("data-tool-id", tool.ID)
				h.raw(`><span class="tool-icon" aria-hidden="true">`)
				h.text(tool.Icon)
				h.raw("</span><h3>")
				h.text(tool.Name)
				h.raw("</h3><p>")
				h.text(tool.Description)
				h.raw(`</p><span class="tool-action">`)
				h.text(T(loc, "catalog.use_tool"))
				h.raw(" &rarr;</span></a>")
			}
			h.raw("</div></section>")
		}
		h.raw("</section>")
		return h.err
	})
}
