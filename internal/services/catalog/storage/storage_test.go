package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/louisbranch/utility.tools/internal/services/catalog"
)

func TestStaticListAndGet(t *testing.T) {
	t.Parallel()

	store := NewBuiltin()
	tools, err := store.ListTools(context.Background())
	if err != nil {
		t.Fatalf("list tools: %v", err)
	}
	if len(tools) != len(catalog.Builtin()) {
		t.Fatalf("len(tools) = %d, want %d", len(tools), len(catalog.Builtin()))
	}

	tool, err := store.GetTool(context.Background(), " reverse-complement ")
	if err != nil {
		t.Fatalf("get tool: %v", err)
	}
	if tool.Href != "/tools/reverse-complement" {
		t.Fatalf("href = %q", tool.Href)
	}

	if _, err := store.GetTool(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestStaticIsolatedFromCallerMutation(t *testing.T) {
	t.Parallel()

	source := []catalog.Tool{{ID: "a", Name: "A"}}
	store := NewStatic(source)
	source[0].Name = "changed"

	tools, _ := store.ListTools(context.Background())
	tools[0].Name = "changed again"

	got, err := store.GetTool(context.Background(), "a")
	if err != nil {
		t.Fatalf("get tool: %v", err)
	}
	if got.Name != "A" {
		t.Fatalf("name = %q, want A", got.Name)
	}
}

func TestStaticHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewBuiltin().ListTools(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
