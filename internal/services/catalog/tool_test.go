package catalog

import "testing"

func TestBuiltinToolsAreValid(t *testing.T) {
	t.Parallel()

	tools := Builtin()
	if len(tools) != 1 {
		t.Fatalf("len(Builtin()) = %d, want 1", len(tools))
	}
	for _, tool := range tools {
		if err := tool.Validate(); err != nil {
			t.Fatalf("Validate(%s) error = %v", tool.ID, err)
		}
	}
	rc := tools[0]
	if rc.ID != ToolReverseComplement || rc.Category != CategoryBiology || rc.Href != "/tools/reverse-complement" {
		t.Fatalf("reverse complement entry = %+v", rc)
	}
}

func TestMessageKeys(t *testing.T) {
	t.Parallel()

	tool := Tool{ID: "reverse-complement"}
	if got := tool.NameKey(); got != "tools.reverse-complement.name" {
		t.Fatalf("NameKey() = %q", got)
	}
	if got := tool.DescriptionKey(); got != "tools.reverse-complement.description" {
		t.Fatalf("DescriptionKey() = %q", got)
	}
	if got := CategoryKey("biology"); got != "tools.category.biology" {
		t.Fatalf("CategoryKey() = %q", got)
	}
}

func TestValidateRejectsIncompleteTools(t *testing.T) {
	t.Parallel()

	base := Builtin()[0]
	tests := map[string]func(*Tool){
		"missing id":       func(tool *Tool) { tool.ID = " " },
		"missing name":     func(tool *Tool) { tool.Name = "" },
		"missing category": func(tool *Tool) { tool.Category = "" },
		"relative href":    func(tool *Tool) { tool.Href = "tools/x" },
	}
	for name, mutate := range tests {
		tool := base
		mutate(&tool)
		if err := tool.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestGroupByCategoryKeepsFirstAppearanceOrder(t *testing.T) {
	t.Parallel()

	tools := []Tool{
		{ID: "a", Category: "biology"},
		{ID: "b", Category: "text"},
		{ID: "c", Category: "biology"},
		{ID: "d", Category: "math"},
		{ID: "e", Category: "text"},
	}
	groups := GroupByCategory(tools)
	if len(groups) != 3 {
		t.Fatalf("len(groups) = %d, want 3", len(groups))
	}
	wantOrder := []string{"biology", "text", "math"}
	wantTools := [][]string{{"a", "c"}, {"b", "e"}, {"d"}}
	for i, group := range groups {
		if group.ID != wantOrder[i] {
			t.Fatalf("groups[%d].ID = %q, want %q", i, group.ID, wantOrder[i])
		}
		if len(group.Tools) != len(wantTools[i]) {
			t.Fatalf("groups[%d] tools = %d, want %d", i, len(group.Tools), len(wantTools[i]))
		}
		for j, tool := range group.Tools {
			if tool.ID != wantTools[i][j] {
				t.Fatalf("groups[%d].Tools[%d] = %q, want %q", i, j, tool.ID, wantTools[i][j])
			}
		}
	}
}

func TestGroupByCategoryEmpty(t *testing.T) {
	t.Parallel()

	if groups := GroupByCategory(nil); len(groups) != 0 {
		t.Fatalf("GroupByCategory(nil) = %v, want empty", groups)
	}
}
