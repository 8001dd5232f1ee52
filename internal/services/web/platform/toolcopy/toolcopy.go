// Package toolcopy localizes catalog entries for presentation. Tools without
// catalog messages (for example rows added to a SQLite catalog) keep their
// stored English copy.
package toolcopy

import (
	"github.com/louisbranch/utility.tools/internal/services/catalog"
	webtemplates "github.com/louisbranch/utility.tools/internal/services/web/templates"
)

// Tool is a catalog entry with localized display copy.
type Tool struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	CategoryLabel string `json:"category_label"`
	Icon          string `json:"icon"`
	Href          string `json:"href"`
}

// Localize returns tool with its copy resolved through loc.
func Localize(loc webtemplates.Localizer, tool catalog.Tool) Tool {
	return Tool{
		ID:            tool.ID,
		Name:          webtemplates.TOr(loc, tool.NameKey(), tool.Name),
		Description:   webtemplates.TOr(loc, tool.DescriptionKey(), tool.Description),
		Category:      tool.Category,
		CategoryLabel: CategoryLabel(loc, tool.Category),
		Icon:          tool.Icon,
		Href:          tool.Href,
	}
}

// LocalizeAll localizes tools in order.
func LocalizeAll(loc webtemplates.Localizer, tools []catalog.Tool) []Tool {
	out := make([]Tool, 0, len(tools))
	for _, tool := range tools {
		out = append(out, Localize(loc, tool))
	}
	return out
}

// CategoryLabel returns the localized category label, or the raw id.
func CategoryLabel(loc webtemplates.Localizer, category string) string {
	return webtemplates.TOr(loc, catalog.CategoryKey(category), category)
}

// CatalogView groups tools by category into the catalog page model.
func CatalogView(loc webtemplates.Localizer, tools []catalog.Tool) webtemplates.CatalogView {
	groups := catalog.GroupByCategory(tools)
	view := webtemplates.CatalogView{Categories: make([]webtemplates.CatalogCategoryView, 0, len(groups))}
	for _, group := range groups {
		category := webtemplates.CatalogCategoryView{
			ID:    group.ID,
			Label: CategoryLabel(loc, group.ID),
			Tools: make([]webtemplates.CatalogToolView, 0, len(group.Tools)),
		}
		for _, tool := range group.Tools {
			localized := Localize(loc, tool)
			category.Tools = append(category.Tools, webtemplates.CatalogToolView{
				ID:          localized.ID,
				Name:        localized.Name,
				Description: localized.Description,
				Icon:        localized.Icon,
				Href:        localized.Href,
			})
		}
		view.Categories = append(view.Categories, category)
	}
	return view
}
