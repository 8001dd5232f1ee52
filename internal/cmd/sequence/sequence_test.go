package sequence

import (
	"context"
	"flag"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	t.Setenv("UTILITY_TOOLS_SEQUENCE_ADDR", "")
	t.Setenv("PORT", "")

	cfg, err := ParseConfig(flag.NewFlagSet("sequence", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Addr != ":8082" {
		t.Fatalf("Addr = %q, want %q", cfg.Addr, ":8082")
	}
}

func TestParseConfigUsesPortWhenAddrUnset(t *testing.T) {
	t.Setenv("UTILITY_TOOLS_SEQUENCE_ADDR", "")
	t.Setenv("PORT", "9100")

	cfg, err := ParseConfig(flag.NewFlagSet("sequence", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Addr != ":9100" {
		t.Fatalf("Addr = %q, want %q", cfg.Addr, ":9100")
	}
}

func TestParseConfigPrecedence(t *testing.T) {
	t.Setenv("UTILITY_TOOLS_SEQUENCE_ADDR", "env-host:9000")
	t.Setenv("PORT", "9100")

	cfg, err := ParseConfig(flag.NewFlagSet("sequence", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Addr != "env-host:9000" {
		t.Fatalf("Addr = %q, want %q", cfg.Addr, "env-host:9000")
	}

	cfg, err = ParseConfig(flag.NewFlagSet("sequence", flag.ContinueOnError), []string{"-addr", "flag-host:9001"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Addr != "flag-host:9001" {
		t.Fatalf("Addr = %q, want %q", cfg.Addr, "flag-host:9001")
	}
}

func TestParseConfigRejectsInvalidPort(t *testing.T) {
	t.Setenv("UTILITY_TOOLS_SEQUENCE_ADDR", "")
	t.Setenv("PORT", "eighty")

	if _, err := ParseConfig(flag.NewFlagSet("sequence", flag.ContinueOnError), nil); err == nil {
		t.Fatal("expected env parse error")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	t.Setenv("UTILITY_TOOLS_OTEL_ENDPOINT", "")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, Config{Addr: "127.0.0.1:0"})
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for Run to stop")
	}
}

func TestRunReportsListenError(t *testing.T) {
	t.Setenv("UTILITY_TOOLS_OTEL_ENDPOINT", "")

	if err := Run(context.Background(), Config{Addr: "bad::addr::"}); err == nil {
		t.Fatal("expected listen error")
	}
}
