package api

import (
	"context"
	"io"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tradegate/internal/broker"
	"tradegate/internal/gateway"
	"tradegate/internal/wire"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// startServer runs srv until cancel is called and returns a channel
// carrying the final error.
func startServer(srv *Server) (cancel context.CancelFunc, done chan error) {
	ctx, cancel := context.WithCancel(context.Background())
	done = make(chan error, 1)
	go func() { done <- srv.ListenAndServe(ctx) }()
	return cancel, done
}

func waitForSocket(t *testing.T, path string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if conn, err := net.Dial("unix", path); err == nil {
			conn.Close()
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("socket %s never became reachable", path)
}

func TestUnixSocketServeAndDrain(t *testing.T) {
	sim := broker.NewSimulator()
	svc := gateway.NewService(testLogger(), sim, gateway.CAConfig{})
	if _, err := svc.Login(context.Background(), &wire.LoginRequest{APIKey: "k", SecretKey: "s"}); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	sock := filepath.Join(t.TempDir(), "gw.sock")
	// A stale socket file from a crashed run must not block startup.
	if err := os.WriteFile(sock, nil, 0o600); err != nil {
		t.Fatalf("create stale socket file: %v", err)
	}

	srv := NewServer(testLogger(), "unix://"+sock, svc)
	cancel, done := startServer(srv)
	waitForSocket(t, sock)

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("ListenAndServe() = %v, want nil after drain", err)
	}
	if sim.StockAccount() != nil {
		t.Errorf("session still logged in after drain, want logout")
	}
}

func TestDrainWithoutLogin(t *testing.T) {
	sim := broker.NewSimulator()
	svc := gateway.NewService(testLogger(), sim, gateway.CAConfig{})
	sock := filepath.Join(t.TempDir(), "gw.sock")

	srv := NewServer(testLogger(), "unix://"+sock, svc)
	cancel, done := startServer(srv)
	waitForSocket(t, sock)

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("ListenAndServe() = %v, want nil", err)
	}
}

func TestUnixSingleColonTarget(t *testing.T) {
	sim := broker.NewSimulator()
	svc := gateway.NewService(testLogger(), sim, gateway.CAConfig{})
	sock := filepath.Join(t.TempDir(), "gw.sock")

	srv := NewServer(testLogger(), "unix:"+sock, svc)
	cancel, done := startServer(srv)
	waitForSocket(t, sock)

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("ListenAndServe() = %v, want nil", err)
	}
}

func TestListenFailureSurfaces(t *testing.T) {
	svc := gateway.NewService(testLogger(), broker.NewSimulator(), gateway.CAConfig{})
	srv := NewServer(testLogger(), "256.0.0.1:bad", svc)
	if err := srv.ListenAndServe(context.Background()); err == nil {
		t.Errorf("ListenAndServe() with bad addr = nil error, want failure")
	}
}

func TestEndToEndOverWire(t *testing.T) {
	sim := broker.NewSimulator()
	svc := gateway.NewService(testLogger(), sim, gateway.CAConfig{})
	sock := filepath.Join(t.TempDir(), "gw.sock")

	srv := NewServer(testLogger(), "unix://"+sock, svc)
	cancel, done := startServer(srv)
	defer func() {
		cancel()
		<-done
	}()
	waitForSocket(t, sock)

	conn, err := wire.NewConn("unix://" + sock)
	if err != nil {
		t.Fatalf("NewConn() error = %v", err)
	}
	defer conn.Close()
	client := wire.NewGatewayClient(conn)
	ctx, cancelCtx := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelCtx()

	// Gated before login.
	if _, err := client.ListTrades(ctx, &wire.Empty{}); err == nil {
		t.Fatalf("ListTrades before login = nil error, want Unauthenticated")
	}

	login, err := client.Login(ctx, &wire.LoginRequest{APIKey: "k", SecretKey: "s"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if len(login.Accounts) != 2 {
		t.Fatalf("len(Accounts) = %d, want 2", len(login.Accounts))
	}

	snaps, err := client.GetSnapshots(ctx, &wire.GetSnapshotsRequest{ContractCodes: []string{"2330", "TXFI5"}})
	if err != nil {
		t.Fatalf("GetSnapshots() error = %v", err)
	}
	if len(snaps.Snapshots) != 2 {
		t.Errorf("len(Snapshots) = %d, want 2", len(snaps.Snapshots))
	}

	placed, err := client.PlaceOrder(ctx, &wire.PlaceOrderRequest{
		Contract: &wire.Contract{Code: "2330", SecurityType: wire.SecurityTypeStock},
		Order:    &wire.Order{Action: wire.ActionBuy, Price: 980, Quantity: 1, OrderType: wire.OrderTypeROD},
	})
	if err != nil {
		t.Fatalf("PlaceOrder() error = %v", err)
	}
	if placed.Order == nil || placed.Order.Seqno == "" {
		t.Fatalf("placed trade carries no seqno: %+v", placed)
	}

	updated, err := client.UpdateOrder(ctx, &wire.UpdateOrderRequest{
		Trade:    &wire.Trade{Order: &wire.Order{Seqno: placed.Order.Seqno}},
		Quantity: 3,
	})
	if err != nil {
		t.Fatalf("UpdateOrder() error = %v", err)
	}
	if updated.Order.Quantity != 3 || updated.Order.Price != 980 {
		t.Errorf("updated order = qty %d price %v, want qty 3 price 980",
			updated.Order.Quantity, updated.Order.Price)
	}

	if _, err := client.Logout(ctx, &wire.Empty{}); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if _, err := client.ListTrades(ctx, &wire.Empty{}); err == nil {
		t.Errorf("ListTrades after logout = nil error, want Unauthenticated")
	}
}
