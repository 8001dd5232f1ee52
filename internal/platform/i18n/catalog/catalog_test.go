package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestLoadEmbeddedHasExpectedLocales(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	for _, locale := range []string{BaseLocale, "zh-CN"} {
		if !bundle.HasLocale(locale) {
			t.Fatalf("expected locale %s", locale)
		}
	}
	if got := len(bundle.NamespaceMessages(BaseLocale, "core")); got == 0 {
		t.Fatal("expected en-US core namespace messages")
	}
	if got := len(bundle.NamespaceMessages("zh-CN", "errors")); got == 0 {
		t.Fatal("expected zh-CN errors namespace messages")
	}
}

func TestEmbeddedLocalesTranslateEveryBaseKey(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	for _, locale := range bundle.Locales() {
		if missing := bundle.MissingKeys(locale); len(missing) > 0 {
			t.Fatalf("locale %s missing keys: %s", locale, strings.Join(missing, ", "))
		}
	}
}

func TestLoadFromFSRejectsCoreKeyOutsideCoreNamespace(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/web.yaml"), `locale: "en-US"
namespace: "web"
messages:
  "core.bad": "nope"
`)
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/core.yaml"), `locale: "en-US"
namespace: "core"
messages:
  "core.good": "ok"
`)

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadFromFSRejectsDuplicateKeysAcrossNamespaces(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en-US/core.yaml": &fstest.MapFile{Data: []byte("locale: \"en-US\"\nnamespace: \"core\"\nmessages:\n  \"a.key\": \"a\"\n")},
		"locales/en-US/web.yaml":  &fstest.MapFile{Data: []byte("locale: \"en-US\"\nnamespace: \"web\"\nmessages:\n  \"a.key\": \"b\"\n")},
	}

	if _, err := LoadFromFS(fsys); err == nil {
		t.Fatal("expected duplicate key error")
	}
}

func TestLoadFromFSRejectsLocaleMismatch(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en-US/core.yaml": &fstest.MapFile{Data: []byte("locale: \"zh-CN\"\nnamespace: \"core\"\nmessages:\n  \"core.a\": \"a\"\n")},
	}

	if _, err := LoadFromFS(fsys); err == nil {
		t.Fatal("expected locale mismatch error")
	}
}

func TestLoadFromFSRequiresBaseLocale(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/zh-CN/core.yaml": &fstest.MapFile{Data: []byte("locale: \"zh-CN\"\nnamespace: \"core\"\nmessages:\n  \"core.a\": \"a\"\n")},
	}

	if _, err := LoadFromFS(fsys); err == nil {
		t.Fatal("expected missing base locale error")
	}
}

func TestNamespaceMessagesWithFallback(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	resolved, messages := bundle.NamespaceMessagesWithFallback("fr-FR", "errors")
	if resolved != BaseLocale {
		t.Fatalf("resolved locale = %q, want %q", resolved, BaseLocale)
	}
	if len(messages) == 0 {
		t.Fatal("expected fallback errors namespace messages")
	}
}

func TestMessageFallsBackToBaseLocale(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	got, ok := bundle.Message("fr-FR", "EMPTY_INPUT")
	if !ok {
		t.Fatal("expected fallback message")
	}
	if got != "Please enter a DNA sequence." {
		t.Fatalf("Message() = %q", got)
	}
	if _, ok := bundle.Message(BaseLocale, "missing.key"); ok {
		t.Fatal("expected missing key lookup to fail")
	}
}

func TestDefaultRegistersPrinterMessages(t *testing.T) {
	_ = Default()

	zh := message.NewPrinter(language.MustParse("zh-CN"))
	if got := zh.Sprintf("EMPTY_INPUT"); got != "请输入DNA序列" {
		t.Fatalf("zh-CN EMPTY_INPUT = %q", got)
	}
	en := message.NewPrinter(language.MustParse("en-US"))
	if got := en.Sprintf("revcomp.input.length", 8); got != "Sequence length: 8 bp" {
		t.Fatalf("en-US length = %q", got)
	}
}

func TestParseCatalogFileUnescapesValues(t *testing.T) {
	parsed, err := parseCatalogFile([]byte("locale: \"en-US\"\nnamespace: \"web\"\nmessages:\n  \"a\": \"line one\\nline \\\"two\\\"\"\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := parsed.Messages["a"]; got != "line one\nline \"two\"" {
		t.Fatalf("value = %q", got)
	}
}

func mustWriteFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
