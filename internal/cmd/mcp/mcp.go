// Package mcp parses MCP command flags and runs the MCP server.
package mcp

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	platformcmd "github.com/louisbranch/utility.tools/internal/platform/cmd"
	"github.com/louisbranch/utility.tools/internal/platform/discovery"
	"github.com/louisbranch/utility.tools/internal/platform/timeouts"
	mcpservice "github.com/louisbranch/utility.tools/internal/services/mcp/service"
)

// Config holds MCP command configuration.
type Config struct {
	SequenceAddr    string        `env:"UTILITY_TOOLS_MCP_SEQUENCE_ADDR"`
	Transport       string        `env:"UTILITY_TOOLS_MCP_TRANSPORT" envDefault:"stdio"`
	HTTPAddr        string        `env:"UTILITY_TOOLS_MCP_HTTP_ADDR" envDefault:"localhost:8085"`
	AllowedHosts    []string      `env:"UTILITY_TOOLS_MCP_ALLOWED_HOSTS" envSeparator:","`
	GRPCDialTimeout time.Duration `env:"UTILITY_TOOLS_MCP_GRPC_DIAL_TIMEOUT"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.GRPCDialTimeout <= 0 {
		cfg.GRPCDialTimeout = timeouts.GRPCDial
	}

	fs.StringVar(&cfg.SequenceAddr, "sequence-addr", cfg.SequenceAddr, fmt.Sprintf("Sequence service gRPC address, e.g. %s (empty computes in process)", discovery.DefaultGRPCAddr(discovery.ServiceSequence)))
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	cfg.Transport = strings.ToLower(strings.TrimSpace(cfg.Transport))
	switch mcpservice.TransportKind(cfg.Transport) {
	case mcpservice.TransportStdio, mcpservice.TransportHTTP:
	default:
		return Config{}, fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
	return cfg, nil
}

// Run starts the MCP server with the configured transport.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceMCP, func(ctx context.Context) error {
		return mcpservice.Run(ctx, mcpservice.Config{
			SequenceAddr:    cfg.SequenceAddr,
			GRPCDialTimeout: cfg.GRPCDialTimeout,
			Transport:       mcpservice.TransportKind(cfg.Transport),
			HTTPAddr:        cfg.HTTPAddr,
			AllowedHosts:    cfg.AllowedHosts,
		})
	})
}
