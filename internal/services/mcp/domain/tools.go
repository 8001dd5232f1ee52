package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	platformerrors "github.com/louisbranch/utility.tools/internal/platform/errors"
	errori18n "github.com/louisbranch/utility.tools/internal/platform/errors/i18n"
	platformi18n "github.com/louisbranch/utility.tools/internal/platform/i18n"
	i18ncatalog "github.com/louisbranch/utility.tools/internal/platform/i18n/catalog"
	"github.com/louisbranch/utility.tools/internal/platform/requestctx"
	toolcatalog "github.com/louisbranch/utility.tools/internal/services/catalog"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// ReverseComplementToolName is the MCP name of the reverse-complement tool.
	ReverseComplementToolName = "reverse_complement"
	// ListToolsToolName is the MCP name of the catalog listing tool.
	ListToolsToolName = "list_tools"
)

// Transformer computes the reverse complement of a DNA sequence.
type Transformer interface {
	ReverseComplement(ctx context.Context, input string) (string, error)
}

// ToolLister lists catalog entries in display order.
type ToolLister interface {
	ListTools(ctx context.Context) ([]toolcatalog.Tool, error)
}

// ReverseComplementInput is the reverse_complement tool input.
type ReverseComplementInput struct {
	Sequence string `json:"sequence" jsonschema:"DNA sequence using only A, T, G and C in either case"`
	Locale   string `json:"locale,omitempty" jsonschema:"optional locale for error messages (en-US or zh-CN)"`
}

// ReverseComplementResult is the reverse_complement tool output.
type ReverseComplementResult struct {
	Result string `json:"result" jsonschema:"reverse complement with the input case preserved per base"`
	Length int    `json:"length" jsonschema:"length of the trimmed input in bases"`
}

// ListToolsInput is the list_tools tool input.
type ListToolsInput struct {
	Locale string `json:"locale,omitempty" jsonschema:"optional locale for names and descriptions (en-US or zh-CN)"`
}

// ToolEntry is one catalog entry in the list_tools output.
type ToolEntry struct {
	ID            string `json:"id" jsonschema:"stable tool identifier"`
	Name          string `json:"name" jsonschema:"localized tool name"`
	Description   string `json:"description" jsonschema:"localized tool description"`
	Category      string `json:"category" jsonschema:"category identifier"`
	CategoryLabel string `json:"category_label" jsonschema:"localized category label"`
	Href          string `json:"href" jsonschema:"web path of the tool page"`
}

// ListToolsResult is the list_tools tool output.
type ListToolsResult struct {
	Tools []ToolEntry `json:"tools" jsonschema:"catalog entries in display order"`
}

// ReverseComplementTool defines the MCP tool schema for reverse complements.
func ReverseComplementTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        ReverseComplementToolName,
		Description: "Computes the reverse complement of a DNA sequence",
	}
}

// ListToolsTool defines the MCP tool schema for the catalog listing.
func ListToolsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        ListToolsToolName,
		Description: "Lists the utility tools available in the catalog",
	}
}

// ReverseComplementHandler validates and transforms a sequence. Validation
// failures become tool errors carrying the localized message.
func ReverseComplementHandler(transformer Transformer) mcp.ToolHandlerFor[ReverseComplementInput, ReverseComplementResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ReverseComplementInput) (*mcp.CallToolResult, ReverseComplementResult, error) {
		if transformer == nil {
			return nil, ReverseComplementResult{}, errors.New("sequence transformer is not configured")
		}
		locale := platformi18n.NormalizeLocale(input.Locale)
		result, err := transformer.ReverseComplement(requestctx.WithLocale(ctx, locale), input.Sequence)
		if err != nil {
			return nil, ReverseComplementResult{}, localizeError(locale, err)
		}
		return nil, ReverseComplementResult{
			Result: result,
			Length: utf8.RuneCountInString(strings.TrimSpace(input.Sequence)),
		}, nil
	}
}

// ListToolsHandler returns the localized catalog.
func ListToolsHandler(store ToolLister) mcp.ToolHandlerFor[ListToolsInput, ListToolsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListToolsInput) (*mcp.CallToolResult, ListToolsResult, error) {
		if store == nil {
			return nil, ListToolsResult{}, errors.New("catalog store is not configured")
		}
		tools, err := store.ListTools(ctx)
		if err != nil {
			return nil, ListToolsResult{}, fmt.Errorf("list tools: %w", err)
		}
		locale := platformi18n.NormalizeLocale(input.Locale)
		out := ListToolsResult{Tools: make([]ToolEntry, 0, len(tools))}
		for _, tool := range tools {
			out.Tools = append(out.Tools, ToolEntry{
				ID:            tool.ID,
				Name:          message(locale, tool.NameKey(), tool.Name),
				Description:   message(locale, tool.DescriptionKey(), tool.Description),
				Category:      tool.Category,
				CategoryLabel: message(locale, toolcatalog.CategoryKey(tool.Category), tool.Category),
				Href:          tool.Href,
			})
		}
		return nil, out, nil
	}
}

// localizeError renders domain errors through the error catalog. Other
// failures keep their wrapped text so transport problems stay diagnosable.
func localizeError(locale string, err error) error {
	var domainErr *platformerrors.Error
	if !errors.As(err, &domainErr) {
		return fmt.Errorf("reverse complement: %w", err)
	}
	return errors.New(errori18n.GetCatalog(locale).Format(string(domainErr.Code), domainErr.Metadata))
}

func message(locale string, key string, fallback string) string {
	if value, ok := i18ncatalog.Default().Message(locale, key); ok && strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}
