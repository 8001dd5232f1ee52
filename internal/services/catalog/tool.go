// Package catalog describes the utility tools the product lists.
package catalog

import (
	"fmt"
	"strings"
)

const (
	// ToolReverseComplement identifies the DNA reverse-complement tool.
	ToolReverseComplement = "reverse-complement"
	// CategoryBiology groups molecular biology helpers.
	CategoryBiology = "biology"
)

// Tool is one catalog entry. Name and Description hold English defaults;
// presentation layers localize them through NameKey and DescriptionKey.
type Tool struct {
	ID          string
	Name        string
	Description string
	Category    string
	Icon        string
	Href        string
	Position    int
}

// NameKey returns the message key of the tool's display name.
func (t Tool) NameKey() string {
	return "tools." + t.ID + ".name"
}

// DescriptionKey returns the message key of the tool's summary.
func (t Tool) DescriptionKey() string {
	return "tools." + t.ID + ".description"
}

// CategoryKey returns the message key of a category label.
func CategoryKey(category string) string {
	return "tools.category." + category
}

// Validate checks the fields every stored tool needs.
func (t Tool) Validate() error {
	switch {
	case strings.TrimSpace(t.ID) == "":
		return fmt.Errorf("tool id is required")
	case strings.TrimSpace(t.Name) == "":
		return fmt.Errorf("tool %s: name is required", t.ID)
	case strings.TrimSpace(t.Category) == "":
		return fmt.Errorf("tool %s: category is required", t.ID)
	case !strings.HasPrefix(t.Href, "/"):
		return fmt.Errorf("tool %s: href must be an absolute path", t.ID)
	}
	return nil
}

// Builtin returns the tools shipped with the binary in display order.
func Builtin() []Tool {
	return []Tool{
		{
			ID:          ToolReverseComplement,
			Name:        "DNA Reverse Complement",
			Description: "Compute the reverse complement of a DNA sequence.",
			Category:    CategoryBiology,
			Icon:        "🧬",
			Href:        "/tools/reverse-complement",
			Position:    1,
		},
	}
}

// Category is a named group of tools.
type Category struct {
	ID    string
	Tools []Tool
}

// GroupByCategory groups tools by category. Categories keep the order of
// their first appearance and tools keep their input order.
func GroupByCategory(tools []Tool) []Category {
	var groups []Category
	index := map[string]int{}
	for _, tool := range tools {
		i, ok := index[tool.Category]
		if !ok {
			i = len(groups)
			index[tool.Category] = i
			groups = append(groups, Category{ID: tool.Category})
		}
		groups[i].Tools = append(groups[i].Tools, tool)
	}
	return groups
}
