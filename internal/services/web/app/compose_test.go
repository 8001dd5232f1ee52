package app

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/louisbranch/utility.tools/internal/services/web/module"
)

type stubModule struct {
	id        string
	mount     module.Mount
	mountErr  error
	unhealthy bool
}

func (m stubModule) ID() string { return m.id }

func (m stubModule) Mount() (module.Mount, error) { return m.mount, m.mountErr }

func (m stubModule) Healthy() bool { return !m.unhealthy }

func markerHandler(marker string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(marker))
	})
}

func TestComposeRejectsDuplicateModulePrefix(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{Modules: []module.Module{
		stubModule{id: "one", mount: module.Mount{Prefix: "/one/", Handler: markerHandler("one")}},
		stubModule{id: "two", mount: module.Mount{Prefix: "/one/", Handler: markerHandler("two")}},
	}})
	if err == nil {
		t.Fatalf("expected duplicate prefix error")
	}
	if got := err.Error(); !strings.Contains(got, `"two"`) || !strings.Contains(got, `"one"`) {
		t.Fatalf("unexpected error = %q", got)
	}
}

func TestComposeRejectsInvalidModulePrefixes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
	}{
		{name: "empty", prefix: ""},
		{name: "missing leading slash", prefix: "tools/x/"},
		{name: "missing trailing slash", prefix: "/tools/x"},
		{name: "contains surrounding whitespace", prefix: "/tools/x/ "},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Compose(ComposeInput{Modules: []module.Module{
				stubModule{id: "bad", mount: module.Mount{Prefix: tc.prefix, Handler: markerHandler("bad")}},
			}})
			if err == nil {
				t.Fatalf("expected invalid prefix error")
			}
			if got := err.Error(); !strings.Contains(got, "invalid prefix") || !strings.Contains(got, "bad") {
				t.Fatalf("unexpected error = %q", got)
			}
		})
	}
}

func TestComposeRejectsNilModuleMountErrorAndNilHandler(t *testing.T) {
	t.Parallel()

	if _, err := Compose(ComposeInput{Modules: []module.Module{nil}}); err == nil {
		t.Fatal("expected nil module error")
	}
	if _, err := Compose(ComposeInput{Modules: []module.Module{stubModule{id: "broken", mountErr: errors.New("boom")}}}); err == nil {
		t.Fatal("expected mount error")
	}
	if _, err := Compose(ComposeInput{Modules: []module.Module{stubModule{id: "empty", mount: module.Mount{Prefix: "/x/"}}}}); err == nil {
		t.Fatal("expected missing handler error")
	}
}

func TestComposeMountsSlashlessAliasForNonRootPrefixes(t *testing.T) {
	t.Parallel()

	mux, err := Compose(ComposeInput{Modules: []module.Module{
		stubModule{id: "root", mount: module.Mount{Prefix: "/", Handler: markerHandler("root")}},
		stubModule{id: "tool", mount: module.Mount{Prefix: "/tools/reverse-complement/", Handler: markerHandler("tool")}},
	}})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	tests := map[string]string{
		"/":                            "root",
		"/unknown":                     "root",
		"/tools/reverse-complement":    "tool",
		"/tools/reverse-complement/x":  "tool",
		"/tools/reverse-complementary": "root",
	}
	for path, want := range tests {
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d, want %d", path, rr.Code, http.StatusOK)
		}
		if got := rr.Body.String(); got != want {
			t.Fatalf("GET %s body = %q, want %q", path, got, want)
		}
	}
}


func TestHealthyChecksReporters(t *testing.T) {
	t.Parallel()

	healthy := []module.Module{stubModule{id: "a"}, stubModule{id: "b"}}
	if !Healthy(healthy) {
		t.Fatal("expected healthy modules")
	}
	if Healthy(append(healthy, stubModule{id: "c", unhealthy: true})) {
		t.Fatal("expected unhealthy modules")
	}
	if !Healthy(nil) {
		t.Fatal("expected empty module list to be healthy")
	}
}
