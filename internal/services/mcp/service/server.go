package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	platformgrpc "github.com/louisbranch/utility.tools/internal/platform/grpc"
	"github.com/louisbranch/utility.tools/internal/platform/timeouts"
	"github.com/louisbranch/utility.tools/internal/services/catalog/storage"
	"github.com/louisbranch/utility.tools/internal/services/mcp/domain"
	sequenceservice "github.com/louisbranch/utility.tools/internal/services/sequence/api/grpc/sequence"
	"github.com/louisbranch/utility.tools/internal/services/sequence/dna"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/grpc"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "utility-tools"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// TransportKind identifies the MCP transport implementation.
type TransportKind string

const (
	// TransportStdio uses standard input/output for MCP.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP serves MCP over streamable HTTP.
	TransportHTTP TransportKind = "http"
)

// Config defines the inputs for the MCP server.
type Config struct {
	// SequenceAddr is the optional sequence gRPC address. Empty computes in process.
	SequenceAddr    string
	GRPCDialTimeout time.Duration
	Transport       TransportKind
	// HTTPAddr is the listen address for TransportHTTP. Defaults to localhost:8085.
	HTTPAddr string
	// AllowedHosts extends the loopback-only Host/Origin allowlist.
	AllowedHosts []string
}

// Server hosts the MCP server.
type Server struct {
	mcpServer *mcp.Server
	conn      *grpc.ClientConn
}

type backends struct {
	transformer domain.Transformer
	store       domain.ToolLister
}

// New creates a configured MCP server. When cfg.SequenceAddr is set, reverse
// complements run on the sequence service; the dial must succeed.
func New(ctx context.Context, cfg Config) (*Server, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	deps := backends{
		transformer: dna.NewTransformer(nil),
		store:       storage.NewBuiltin(),
	}

	var conn *grpc.ClientConn
	if addr := strings.TrimSpace(cfg.SequenceAddr); addr != "" {
		dialTimeout := cfg.GRPCDialTimeout
		if dialTimeout <= 0 {
			dialTimeout = timeouts.GRPCDial
		}
		var err error
		conn, err = platformgrpc.DialWithHealth(ctx, addr, sequenceservice.ServiceName, dialTimeout, log.Printf)
		if err != nil {
			return nil, fmt.Errorf("dial sequence grpc: %w", err)
		}
		deps.transformer = sequenceservice.NewRemoteTransformer(sequenceservice.NewClient(conn), timeouts.GRPCRequest)
	}

	mcpServer, err := newMCPServer(deps)
	if err != nil {
		if conn != nil {
			_ = conn.Close()
		}
		return nil, err
	}
	return &Server{mcpServer: mcpServer, conn: conn}, nil
}

func newMCPServer(deps backends) (*mcp.Server, error) {
	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	if err := registerTools(server, deps); err != nil {
		return nil, err
	}
	return server, nil
}

func registerTools(server *mcp.Server, deps backends) error {
	if server == nil {
		return errors.New("mcp server is required")
	}
	if deps.transformer == nil {
		return fmt.Errorf("register %s: transformer is required", domain.ReverseComplementToolName)
	}
	if deps.store == nil {
		return fmt.Errorf("register %s: catalog store is required", domain.ListToolsToolName)
	}
	mcp.AddTool(server, domain.ReverseComplementTool(), domain.ReverseComplementHandler(deps.transformer))
	mcp.AddTool(server, domain.ListToolsTool(), domain.ListToolsHandler(deps.store))
	return nil
}

// Close releases the sequence connection, if any.
func (s *Server) Close() {
	if s == nil || s.conn == nil {
		return
	}
	if err := s.conn.Close(); err != nil {
		log.Printf("close sequence gRPC connection: %v", err)
	}
}
