package catalog

import (
	"context"
	"fmt"

	toolcatalog "github.com/louisbranch/utility.tools/internal/services/catalog"
	"github.com/louisbranch/utility.tools/internal/services/web/platform/toolcopy"
	webtemplates "github.com/louisbranch/utility.tools/internal/services/web/templates"
)

// ToolLister lists catalog entries in display order.
type ToolLister interface {
	ListTools(ctx context.Context) ([]toolcatalog.Tool, error)
}

type service struct {
	store ToolLister
}

func newService(store ToolLister) service {
	return service{store: store}
}

func (s service) catalogView(ctx context.Context, loc webtemplates.Localizer) (webtemplates.CatalogView, error) {
	if s.store == nil {
		return webtemplates.CatalogView{}, fmt.Errorf("catalog store is not configured")
	}
	tools, err := s.store.ListTools(ctx)
	if err != nil {
		return webtemplates.CatalogView{}, fmt.Errorf("list tools: %w", err)
	}
	return toolcopy.CatalogView(loc, tools), nil
}
