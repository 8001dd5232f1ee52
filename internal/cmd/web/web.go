// Package web parses web command flags and runs the public front-end.
package web

import (
	"context"
	"flag"
	"fmt"
	"time"

	platformcmd "github.com/louisbranch/utility.tools/internal/platform/cmd"
	"github.com/louisbranch/utility.tools/internal/platform/discovery"
	"github.com/louisbranch/utility.tools/internal/platform/timeouts"
	"github.com/louisbranch/utility.tools/internal/services/web"
)

var sequenceAddrUsage = fmt.Sprintf("Sequence service gRPC address, e.g. %s (empty computes in process)", discovery.DefaultGRPCAddr(discovery.ServiceSequence))

// Config holds the web command configuration.
type Config struct {
	HTTPAddr        string        `env:"UTILITY_TOOLS_WEB_HTTP_ADDR"`
	MaxConnections  int           `env:"UTILITY_TOOLS_WEB_MAX_CONNECTIONS" envDefault:"0"`
	CatalogDBPath   string        `env:"UTILITY_TOOLS_WEB_CATALOG_DB_PATH"`
	SequenceAddr    string        `env:"UTILITY_TOOLS_WEB_SEQUENCE_ADDR"`
	GRPCDialTimeout time.Duration `env:"UTILITY_TOOLS_WEB_GRPC_DIAL_TIMEOUT"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = discovery.DefaultListenAddr(discovery.ServiceWeb)
	}
	if cfg.GRPCDialTimeout <= 0 {
		cfg.GRPCDialTimeout = timeouts.GRPCDial
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.IntVar(&cfg.MaxConnections, "max-connections", cfg.MaxConnections, "Maximum concurrent connections (0 for unlimited)")
	fs.StringVar(&cfg.CatalogDBPath, "catalog-db", cfg.CatalogDBPath, "SQLite catalog path (empty serves the builtin catalog)")
	fs.StringVar(&cfg.SequenceAddr, "sequence-addr", cfg.SequenceAddr, sequenceAddrUsage)
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server and blocks until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServerWithContext(ctx, web.Config{
			HTTPAddr:        cfg.HTTPAddr,
			MaxConnections:  cfg.MaxConnections,
			CatalogDBPath:   cfg.CatalogDBPath,
			SequenceAddr:    cfg.SequenceAddr,
			GRPCDialTimeout: cfg.GRPCDialTimeout,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
