package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Port int    `env:"UTILITY_TOOLS_TEST_PORT" envDefault:"123"`
	Name string `env:"UTILITY_TOOLS_TEST_NAME" envDefault:"tools"`
}

type prefixedTestConfig struct {
	Addr string `env:"ADDR" envDefault:"localhost:0"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("Port = %d, want 123", cfg.Port)
	}
	if cfg.Name != "tools" {
		t.Fatalf("Name = %q, want %q", cfg.Name, "tools")
	}
}

func TestParseEnvOverride(t *testing.T) {
	t.Setenv("UTILITY_TOOLS_TEST_PORT", "9000")

	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 9000 {
		t.Fatalf("Port = %d, want 9000", cfg.Port)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("UTILITY_TOOLS_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvWithPrefix(t *testing.T) {
	t.Setenv("UTILITY_TOOLS_PREFIXED_ADDR", "127.0.0.1:9999")

	var cfg prefixedTestConfig
	if err := ParseEnvWithPrefix(&cfg, "UTILITY_TOOLS_PREFIXED_"); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != "127.0.0.1:9999" {
		t.Fatalf("Addr = %q, want %q", cfg.Addr, "127.0.0.1:9999")
	}
}
