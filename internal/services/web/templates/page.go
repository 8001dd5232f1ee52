package templates

import (
	"net/http"
	"strings"

	platformi18n "github.com/louisbranch/utility.tools/internal/platform/i18n"
)

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang         string
	Loc          Localizer
	CurrentPath  string
	CurrentQuery string
}

// NewPageContext builds a page context for r in the resolved language.
func NewPageContext(r *http.Request, loc Localizer, lang string) PageContext {
	page := PageContext{Lang: lang, Loc: loc}
	if strings.TrimSpace(page.Lang) == "" {
		page.Lang = platformi18n.DefaultLocale()
	}
	if r != nil && r.URL != nil {
		page.CurrentPath = r.URL.Path
		page.CurrentQuery = r.URL.RawQuery
	}
	return page
}

// AppName returns the localized product name.
func (p PageContext) AppName() string {
	return TOr(p.Loc, "core.app_name", "Utility Tools")
}

// ComposePageTitle appends the product name to title unless it already ends
// with it.
func ComposePageTitle(title string, appName string) string {
	title = strings.TrimSpace(title)
	appName = strings.TrimSpace(appName)
	if appName == "" {
		return title
	}
	if title == "" || title == appName {
		return appName
	}
	for _, separator := range []string{" | ", " - "} {
		if base, ok := strings.CutSuffix(title, separator+appName); ok {
			title = strings.TrimSpace(base)
			break
		}
	}
	return title + " | " + appName
}
