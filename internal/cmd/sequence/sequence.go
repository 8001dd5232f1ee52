// Package sequence parses sequence command flags and runs the gRPC service.
package sequence

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	platformcmd "github.com/louisbranch/utility.tools/internal/platform/cmd"
	"github.com/louisbranch/utility.tools/internal/platform/discovery"
	server "github.com/louisbranch/utility.tools/internal/services/sequence/app"
)

// Config holds the sequence command configuration.
type Config struct {
	Addr string `env:"UTILITY_TOOLS_SEQUENCE_ADDR"`
	// Port is honored when Addr is unset, matching hosts that inject PORT.
	Port int `env:"PORT"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		if cfg.Port > 0 {
			cfg.Addr = ":" + strconv.Itoa(cfg.Port)
		} else {
			cfg.Addr = discovery.DefaultListenAddr(discovery.ServiceSequence)
		}
	}

	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "gRPC listen address")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the sequence gRPC server and blocks until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceSequence, func(ctx context.Context) error {
		if err := server.Run(ctx, cfg.Addr); err != nil {
			return fmt.Errorf("serve sequence: %w", err)
		}
		return nil
	})
}
