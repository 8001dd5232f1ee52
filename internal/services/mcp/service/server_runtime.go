package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Run is the service entrypoint for MCP and blocks until context cancellation
// or, for stdio, until the client disconnects.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}
	if cfg.Transport != TransportStdio && cfg.Transport != TransportHTTP {
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}

	server, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	defer server.Close()

	switch cfg.Transport {
	case TransportHTTP:
		return NewHTTPTransport(cfg.HTTPAddr, server.mcpServer, cfg.AllowedHosts).Start(ctx)
	default:
		return server.runWithTransport(ctx, &mcp.StdioTransport{})
	}
}

func (s *Server) runWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return errors.New("mcp server is nil")
	}
	log.Printf("mcp server running transport=%T", transport)
	if err := s.mcpServer.Run(ctx, transport); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("run mcp server: %w", err)
	}
	return nil
}
