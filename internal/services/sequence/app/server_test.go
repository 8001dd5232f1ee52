package server

import (
	"context"
	"testing"
	"time"

	platformgrpc "github.com/louisbranch/utility.tools/internal/platform/grpc"
	sequenceservice "github.com/louisbranch/utility.tools/internal/services/sequence/api/grpc/sequence"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func startServer(t *testing.T) *Server {
	t.Helper()

	srv, err := NewWithAddr("127.0.0.1:0")
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	runCtx, runCancel := context.WithCancel(context.Background())
	serveDone := make(chan error, 1)
	go func() {
		serveDone <- srv.Serve(runCtx)
	}()
	t.Cleanup(func() {
		runCancel()
		select {
		case serveErr := <-serveDone:
			if serveErr != nil {
				t.Fatalf("serve: %v", serveErr)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("timeout waiting for server shutdown")
		}
	})
	return srv
}

func TestServer_ReverseComplementRoundTrip(t *testing.T) {
	srv := startServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := platformgrpc.DialWithHealth(ctx, srv.Addr(), sequenceservice.ServiceName, 2*time.Second, t.Logf)
	if err != nil {
		t.Fatalf("dial sequence server: %v", err)
	}
	t.Cleanup(func() {
		if closeErr := conn.Close(); closeErr != nil {
			t.Fatalf("close gRPC connection: %v", closeErr)
		}
	})

	client := sequenceservice.NewClient(conn)
	got, err := client.ReverseComplement(ctx, "ATCGATCG")
	if err != nil {
		t.Fatalf("reverse complement: %v", err)
	}
	if got != "CGATCGAT" {
		t.Fatalf("result = %q, want CGATCGAT", got)
	}

	_, err = client.ReverseComplement(ctx, "ATXG")
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("status code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}
}

func TestServer_ServeReturnsWhenContextCancelled(t *testing.T) {
	srv, err := NewWithAddr("127.0.0.1:0")
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := srv.Serve(ctx); err != nil {
		t.Fatalf("serve: %v", err)
	}
}

func TestServer_NilReceiver(t *testing.T) {
	var srv *Server
	if err := srv.Serve(context.Background()); err == nil {
		t.Fatal("expected error for nil server")
	}
	if srv.Addr() != "" {
		t.Fatal("expected empty addr for nil server")
	}
	srv.Close()
}

func TestNewWithAddrRejectsBadAddress(t *testing.T) {
	if _, err := NewWithAddr("not-an-address"); err == nil {
		t.Fatal("expected listen error")
	}
}
