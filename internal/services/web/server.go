// Package web hosts the utility tools HTTP front-end.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	platformgrpc "github.com/louisbranch/utility.tools/internal/platform/grpc"
	"github.com/louisbranch/utility.tools/internal/platform/timeouts"
	"github.com/louisbranch/utility.tools/internal/services/catalog/storage"
	catalogsqlite "github.com/louisbranch/utility.tools/internal/services/catalog/storage/sqlite"
	sequenceservice "github.com/louisbranch/utility.tools/internal/services/sequence/api/grpc/sequence"
	"github.com/louisbranch/utility.tools/internal/services/sequence/dna"
	"github.com/louisbranch/utility.tools/internal/services/web/modules"
	"golang.org/x/net/netutil"
	"google.golang.org/grpc"
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	// MaxConnections caps concurrent connections. Zero leaves them unbounded.
	MaxConnections int
	// CatalogDBPath selects the SQLite catalog. Empty serves the builtin catalog.
	CatalogDBPath string
	// SequenceAddr is the optional sequence gRPC address. Empty computes in process.
	SequenceAddr    string
	GRPCDialTimeout time.Duration
}

// Server hosts the web HTTP server.
type Server struct {
	httpAddr       string
	maxConnections int
	httpServer     *http.Server
	catalogStore   *catalogsqlite.Store
	sequenceConn   *grpc.ClientConn
}

// NewServer builds a configured web server.
func NewServer(config Config) (*Server, error) {
	return NewServerWithContext(context.Background(), config)
}

// NewServerWithContext builds a configured web server. ctx bounds backend
// setup such as the sequence service health check.
func NewServerWithContext(ctx context.Context, config Config) (*Server, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if config.MaxConnections < 0 {
		return nil, errors.New("max connections must not be negative")
	}
	if config.GRPCDialTimeout <= 0 {
		config.GRPCDialTimeout = timeouts.GRPCDial
	}

	var catalogStore storage.Store = storage.NewBuiltin()
	var sqliteStore *catalogsqlite.Store
	if path := strings.TrimSpace(config.CatalogDBPath); path != "" {
		store, err := openCatalogStore(ctx, path)
		if err != nil {
			return nil, err
		}
		sqliteStore = store
		catalogStore = store
	}

	deps := modules.Dependencies{
		CatalogStore: catalogStore,
		Transformer:  dna.NewTransformer(nil),
	}
	var sequenceConn *grpc.ClientConn
	if addr := strings.TrimSpace(config.SequenceAddr); addr != "" {
		conn, err := platformgrpc.DialWithHealth(ctx, addr, sequenceservice.ServiceName, config.GRPCDialTimeout, log.Printf)
		if err != nil {
			log.Printf("sequence gRPC dial failed, computing reverse complements in process: %v", err)
		} else {
			sequenceConn = conn
			deps.Transformer = sequenceservice.NewRemoteTransformer(sequenceservice.NewClient(conn), timeouts.GRPCRequest)
		}
	}

	handler, err := NewHandler(deps)
	if err != nil {
		closeBackends(sqliteStore, sequenceConn)
		return nil, fmt.Errorf("build handler: %w", err)
	}
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	return &Server{
		httpAddr:       httpAddr,
		maxConnections: config.MaxConnections,
		httpServer:     httpServer,
		catalogStore:   sqliteStore,
		sequenceConn:   sequenceConn,
	}, nil
}

func openCatalogStore(ctx context.Context, path string) (*catalogsqlite.Store, error) {
	store, err := catalogsqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog store: %w", err)
	}
	if err := store.SeedBuiltin(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("seed catalog store: %w", err)
	}
	return store, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	listener, err := net.Listen("tcp", s.httpAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpAddr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve accepts connections on listener until the context ends.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	if listener == nil {
		return errors.New("listener is required")
	}
	if s.maxConnections > 0 {
		listener = netutil.LimitListener(listener, s.maxConnections)
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening addr=%s max_connections=%d", listener.Addr(), s.maxConnections)
	go func() {
		serveErr <- s.httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the catalog store and sequence connection.
func (s *Server) Close() {
	if s == nil {
		return
	}
	closeBackends(s.catalogStore, s.sequenceConn)
}

func closeBackends(store *catalogsqlite.Store, conn *grpc.ClientConn) {
	if store != nil {
		if err := store.Close(); err != nil {
			log.Printf("close catalog store: %v", err)
		}
	}
	if conn != nil {
		if err := conn.Close(); err != nil {
			log.Printf("close sequence gRPC connection: %v", err)
		}
	}
}
