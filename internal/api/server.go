// Package api hosts the gateway's gRPC endpoint: listener setup for tcp
// and unix targets, registration of the service, and the drain sequence
// that logs the broker session out before the process exits.
package api

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"tradegate/internal/gateway"
	"tradegate/internal/wire"
)

// drainTimeout bounds the logout call during shutdown so a hung broker
// cannot keep the process alive.
const drainTimeout = 10 * time.Second

// Server owns the gRPC listener and the drain sequence.
type Server struct {
	log  *slog.Logger
	addr string
	svc  *gateway.Service
	grpc *grpc.Server
}

// NewServer returns a Server that will bind addr. addr is either a
// host:port pair or a unix socket target of the form unix:///path or
// unix:/path.
func NewServer(log *slog.Logger, addr string, svc *gateway.Service) *Server {
	return &Server{
		log:  log,
		addr: addr,
		svc:  svc,
		grpc: grpc.NewServer(),
	}
}

// listen opens the listener for s.addr. A stale socket file from a
// previous run is removed before binding.
func (s *Server) listen() (net.Listener, error) {
	path, ok := strings.CutPrefix(s.addr, "unix://")
	if !ok {
		path, ok = strings.CutPrefix(s.addr, "unix:")
	}
	if !ok {
		return net.Listen("tcp", s.addr)
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("remove stale socket %s: %w", path, err)
	}
	return net.Listen("unix", path)
}

// ListenAndServe binds the listener, registers the gateway service, and
// blocks until ctx is cancelled or the server fails. On cancellation it
// logs the broker session out, then drains in-flight RPCs.
func (s *Server) ListenAndServe(ctx context.Context) error {
	lis, err := s.listen()
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	wire.RegisterGatewayServer(s.grpc, s.svc)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("serving", "addr", lis.Addr().String())
		return s.grpc.Serve(lis)
	})
	g.Go(func() error {
		<-ctx.Done()
		s.shutdown()
		return nil
	})
	if err := g.Wait(); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

// shutdown runs the drain sequence: logout first so the broker session
// is never left dangling, then stop accepting and finish in-flight
// RPCs.
func (s *Server) shutdown() {
	s.log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	if err := s.svc.Shutdown(ctx); err != nil {
		s.log.Warn("session logout failed", "error", err)
	}
	s.grpc.GracefulStop()
}
