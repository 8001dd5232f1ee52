package discovery

import "testing"

func TestDefaultGRPCAddr(t *testing.T) {
	if got := DefaultGRPCAddr(ServiceSequence); got != "sequence:8082" {
		t.Fatalf("DefaultGRPCAddr(%q) = %q, want %q", ServiceSequence, got, "sequence:8082")
	}
	if got := DefaultGRPCAddr(ServiceWeb); got != "" {
		t.Fatalf("DefaultGRPCAddr(%q) = %q, want empty", ServiceWeb, got)
	}
}

func TestDefaultListenAddr(t *testing.T) {
	cases := map[string]string{
		ServiceWeb:      ":8080",
		ServiceMCP:      ":8085",
		ServiceSequence: ":8082",
		"unknown":       "",
	}
	for service, want := range cases {
		if got := DefaultListenAddr(service); got != want {
			t.Fatalf("DefaultListenAddr(%q) = %q, want %q", service, got, want)
		}
	}
}
