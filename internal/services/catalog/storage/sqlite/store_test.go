package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/louisbranch/utility.tools/internal/services/catalog"
	"github.com/louisbranch/utility.tools/internal/services/catalog/storage"
)

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(""); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestSeedBuiltinThenListAndGet(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if err := store.SeedBuiltin(context.Background()); err != nil {
		t.Fatalf("seed builtin: %v", err)
	}
	// Seeding twice keeps a single row per tool.
	if err := store.SeedBuiltin(context.Background()); err != nil {
		t.Fatalf("reseed builtin: %v", err)
	}

	tools, err := store.ListTools(context.Background())
	if err != nil {
		t.Fatalf("list tools: %v", err)
	}
	if len(tools) != len(catalog.Builtin()) {
		t.Fatalf("len(tools) = %d, want %d", len(tools), len(catalog.Builtin()))
	}
	if tools[0] != catalog.Builtin()[0] {
		t.Fatalf("tools[0] = %+v, want %+v", tools[0], catalog.Builtin()[0])
	}

	got, err := store.GetTool(context.Background(), catalog.ToolReverseComplement)
	if err != nil {
		t.Fatalf("get tool: %v", err)
	}
	if got.Icon != "🧬" {
		t.Fatalf("icon = %q, want 🧬", got.Icon)
	}
}

func TestListToolsOrdersByPosition(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	for _, tool := range []catalog.Tool{
		{ID: "gc-content", Name: "GC", Category: "biology", Href: "/tools/gc-content", Position: 3},
		{ID: "word-count", Name: "Words", Category: "text", Href: "/tools/word-count", Position: 1},
		{ID: "b-tool", Name: "B", Category: "text", Href: "/tools/b", Position: 2},
		{ID: "a-tool", Name: "A", Category: "text", Href: "/tools/a", Position: 2},
	} {
		if err := store.PutTool(context.Background(), tool); err != nil {
			t.Fatalf("put tool %s: %v", tool.ID, err)
		}
	}

	tools, err := store.ListTools(context.Background())
	if err != nil {
		t.Fatalf("list tools: %v", err)
	}
	want := []string{"word-count", "a-tool", "b-tool", "gc-content"}
	if len(tools) != len(want) {
		t.Fatalf("len(tools) = %d, want %d", len(tools), len(want))
	}
	for i, id := range want {
		if tools[i].ID != id {
			t.Fatalf("tools[%d] = %q, want %q", i, tools[i].ID, id)
		}
	}
}

func TestPutToolReplacesExisting(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	tool := catalog.Tool{ID: "x", Name: "First", Category: "text", Href: "/tools/x"}
	if err := store.PutTool(context.Background(), tool); err != nil {
		t.Fatalf("put tool: %v", err)
	}
	tool.Name = "Second"
	if err := store.PutTool(context.Background(), tool); err != nil {
		t.Fatalf("replace tool: %v", err)
	}
	got, err := store.GetTool(context.Background(), "x")
	if err != nil {
		t.Fatalf("get tool: %v", err)
	}
	if got.Name != "Second" {
		t.Fatalf("name = %q, want Second", got.Name)
	}
}

func TestCreateToolReturnsAlreadyExistsOnDuplicate(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	tool := catalog.Tool{ID: "x", Name: "X", Category: "text", Href: "/tools/x"}
	if err := store.CreateTool(context.Background(), tool); err != nil {
		t.Fatalf("create tool: %v", err)
	}
	if err := store.CreateTool(context.Background(), tool); !errors.Is(err, storage.ErrAlreadyExists) {
		t.Fatalf("err = %v, want ErrAlreadyExists", err)
	}
}

func TestCreateToolValidates(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if err := store.CreateTool(context.Background(), catalog.Tool{ID: "x"}); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestGetToolNotFound(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if _, err := store.GetTool(context.Background(), "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if _, err := store.GetTool(context.Background(), " "); err == nil {
		t.Fatal("expected blank id error")
	}
}

func TestStoreRejectsCancelledContextAndNilStore(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	store := openTempStore(t)
	if _, err := store.ListTools(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}

	var nilStore *Store
	if _, err := nilStore.ListTools(context.Background()); err == nil {
		t.Fatal("expected error for nil store")
	}
	if err := nilStore.Close(); err != nil {
		t.Fatalf("close nil store: %v", err)
	}
}

func TestReopenKeepsData(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := store.SeedBuiltin(context.Background()); err != nil {
		t.Fatalf("seed builtin: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	t.Cleanup(func() { _ = reopened.Close() })
	if _, err := reopened.GetTool(context.Background(), catalog.ToolReverseComplement); err != nil {
		t.Fatalf("get tool after reopen: %v", err)
	}
}

func openTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}
