package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tradegate/internal/broker"
	"tradegate/internal/domain"
	"tradegate/internal/wire"
)

// fakeSession stubs the session methods the tests exercise. The
// embedded nil interface makes any unstubbed call panic, which is
// exactly what the login-gate tests rely on: a gated RPC must return
// before touching the session at all.
type fakeSession struct {
	broker.Session

	accounts []domain.Account
	loginErr error
	caOK     bool
	caErr    error
	caCalls  int
	logouts  int

	book       *domain.ContractBook
	tradeLists [][]*domain.Trade
	tradeCalls int

	lastUpdate  domain.OrderUpdate
	updated     *domain.Trade
	marginAcct  domain.Account
	reserveReq  struct {
		contract *domain.Contract
		share    int
	}
}

func (f *fakeSession) Login(ctx context.Context, apiKey, secretKey string) ([]domain.Account, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.accounts, nil
}

func (f *fakeSession) ActivateCA(ctx context.Context, caPath, personID, caPassword string) (bool, error) {
	f.caCalls++
	return f.caOK, f.caErr
}

func (f *fakeSession) Logout(ctx context.Context) (bool, error) {
	f.logouts++
	return true, nil
}

func (f *fakeSession) StockAccount() *domain.Account {
	for i := range f.accounts {
		if f.accounts[i].AccountType == "S" {
			return &f.accounts[i]
		}
	}
	return nil
}

func (f *fakeSession) FutOptAccount() *domain.Account {
	for i := range f.accounts {
		if f.accounts[i].AccountType == "F" {
			return &f.accounts[i]
		}
	}
	return nil
}

func (f *fakeSession) Contracts() *domain.ContractBook {
	if f.book == nil {
		f.book = domain.NewContractBook()
	}
	return f.book
}

func (f *fakeSession) ListTrades(ctx context.Context) ([]*domain.Trade, error) {
	if len(f.tradeLists) == 0 {
		return nil, nil
	}
	i := f.tradeCalls
	if i >= len(f.tradeLists) {
		i = len(f.tradeLists) - 1
	}
	f.tradeCalls++
	return f.tradeLists[i], nil
}

func (f *fakeSession) UpdateOrder(ctx context.Context, trade *domain.Trade, upd domain.OrderUpdate) (*domain.Trade, error) {
	f.lastUpdate = upd
	f.updated = trade
	return trade, nil
}

func (f *fakeSession) Margin(ctx context.Context, account domain.Account) (*domain.Margin, error) {
	f.marginAcct = account
	return &domain.Margin{Equity: 1}, nil
}

func (f *fakeSession) ReserveStock(ctx context.Context, account domain.Account, contract *domain.Contract, share int) (*domain.ReserveStockResult, error) {
	f.reserveReq.contract = contract
	f.reserveReq.share = share
	return &domain.ReserveStockResult{Code: contract.Code, Share: share, Accepted: true}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func twoAccounts() []domain.Account {
	return []domain.Account{
		{AccountType: "S", BrokerID: "9A95", AccountID: "0501234", Signed: true},
		{AccountType: "F", BrokerID: "F002000", AccountID: "9100001", Signed: true},
	}
}

func loggedInService(t *testing.T, f *fakeSession) *Service {
	t.Helper()
	svc := NewService(testLogger(), f, CAConfig{})
	if _, err := svc.Login(context.Background(), &wire.LoginRequest{APIKey: "k", SecretKey: "s"}); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	return svc
}

func wantCode(t *testing.T, err error, want codes.Code) {
	t.Helper()
	if status.Code(err) != want {
		t.Errorf("status code = %v (err %v), want %v", status.Code(err), err, want)
	}
}

func TestOperationsRejectedBeforeLogin(t *testing.T) {
	// The fake's unstubbed methods panic, so any call that slips past
	// the gate fails loudly.
	svc := NewService(testLogger(), &fakeSession{}, CAConfig{})
	ctx := context.Background()

	calls := map[string]func() error{
		"Logout":        func() error { _, err := svc.Logout(ctx, &wire.Empty{}); return err },
		"GetUsage":      func() error { _, err := svc.GetUsage(ctx, &wire.Empty{}); return err },
		"ListTrades":    func() error { _, err := svc.ListTrades(ctx, &wire.Empty{}); return err },
		"PlaceOrder":    func() error { _, err := svc.PlaceOrder(ctx, &wire.PlaceOrderRequest{}); return err },
		"GetSnapshots":  func() error { _, err := svc.GetSnapshots(ctx, &wire.GetSnapshotsRequest{}); return err },
		"GetMargin":     func() error { _, err := svc.GetMargin(ctx, &wire.GetMarginRequest{}); return err },
		"ListPositions": func() error { _, err := svc.ListPositions(ctx, &wire.ListPositionsRequest{}); return err },
	}
	for name, call := range calls {
		if err := call(); status.Code(err) != codes.Unauthenticated {
			t.Errorf("%s before login: status = %v, want Unauthenticated", name, status.Code(err))
		}
	}
}

func TestLoginReturnsAccountsInOrder(t *testing.T) {
	f := &fakeSession{accounts: twoAccounts()}
	svc := NewService(testLogger(), f, CAConfig{})
	resp, err := svc.Login(context.Background(), &wire.LoginRequest{APIKey: "k", SecretKey: "s"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if len(resp.Accounts) != 2 {
		t.Fatalf("len(Accounts) = %d, want 2", len(resp.Accounts))
	}
	if resp.Accounts[0].AccountID != "0501234" || resp.Accounts[1].AccountID != "9100001" {
		t.Errorf("account order = %q, %q; want stock then futures", resp.Accounts[0].AccountID, resp.Accounts[1].AccountID)
	}
	// The gate opens only after a successful login.
	if _, err := svc.ListTrades(context.Background(), &wire.Empty{}); err != nil {
		t.Errorf("ListTrades() after login error = %v", err)
	}
}

func TestLoginFailure(t *testing.T) {
	f := &fakeSession{loginErr: errors.New("bad key")}
	svc := NewService(testLogger(), f, CAConfig{})
	_, err := svc.Login(context.Background(), &wire.LoginRequest{APIKey: "k", SecretKey: "s"})
	// Broker rejections surface as Internal with the message untouched.
	wantCode(t, err, codes.Internal)
	if st, _ := status.FromError(err); st.Message() != "bad key" {
		t.Errorf("login error message = %q, want broker message verbatim", st.Message())
	}
	// Still gated.
	_, err = svc.GetUsage(context.Background(), &wire.Empty{})
	wantCode(t, err, codes.Unauthenticated)
}

func TestLoginActivatesCA(t *testing.T) {
	f := &fakeSession{accounts: twoAccounts(), caOK: true}
	svc := NewService(testLogger(), f, CAConfig{Path: "/tmp/ca.pfx", PersonID: "A123456789", Password: "pw"})
	if _, err := svc.Login(context.Background(), &wire.LoginRequest{APIKey: "k", SecretKey: "s"}); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if f.caCalls != 1 {
		t.Errorf("ActivateCA calls = %d, want 1", f.caCalls)
	}
}

func TestLoginCARejection(t *testing.T) {
	f := &fakeSession{accounts: twoAccounts(), caOK: false}
	svc := NewService(testLogger(), f, CAConfig{Path: "/tmp/ca.pfx"})
	_, err := svc.Login(context.Background(), &wire.LoginRequest{APIKey: "k", SecretKey: "s"})
	wantCode(t, err, codes.Unauthenticated)
}

func TestLogoutClosesGate(t *testing.T) {
	f := &fakeSession{accounts: twoAccounts()}
	svc := loggedInService(t, f)
	if _, err := svc.Logout(context.Background(), &wire.Empty{}); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if f.logouts != 1 {
		t.Errorf("session logouts = %d, want 1", f.logouts)
	}
	_, err := svc.ListTrades(context.Background(), &wire.Empty{})
	wantCode(t, err, codes.Unauthenticated)
}

func TestShutdownLogsOutExactlyOnce(t *testing.T) {
	f := &fakeSession{accounts: twoAccounts()}
	svc := loggedInService(t, f)
	if err := svc.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if err := svc.Shutdown(context.Background()); err != nil {
		t.Fatalf("second Shutdown() error = %v", err)
	}
	if f.logouts != 1 {
		t.Errorf("session logouts = %d, want 1", f.logouts)
	}
}

func TestShutdownWithoutLogin(t *testing.T) {
	f := &fakeSession{}
	svc := NewService(testLogger(), f, CAConfig{})
	if err := svc.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if f.logouts != 0 {
		t.Errorf("session logouts = %d, want 0", f.logouts)
	}
}

func TestUpdateOrderForwardsOnlyOverrides(t *testing.T) {
	trade := &domain.Trade{
		Contract: &domain.Contract{Code: "2330"},
		Order:    &domain.Order{Seqno: "000001", ID: "abc", Price: 980, Quantity: 2},
		Status:   &domain.OrderStatus{Status: domain.StatusSubmitted},
	}
	f := &fakeSession{accounts: twoAccounts(), tradeLists: [][]*domain.Trade{{trade}}}
	svc := loggedInService(t, f)

	_, err := svc.UpdateOrder(context.Background(), &wire.UpdateOrderRequest{
		Trade:    &wire.Trade{Order: &wire.Order{Seqno: "000001"}},
		Quantity: 3,
	})
	if err != nil {
		t.Fatalf("UpdateOrder() error = %v", err)
	}
	if f.lastUpdate.Price != 0 {
		t.Errorf("forwarded price override = %v, want 0 (unchanged)", f.lastUpdate.Price)
	}
	if f.lastUpdate.Quantity != 3 {
		t.Errorf("forwarded quantity override = %d, want 3", f.lastUpdate.Quantity)
	}
	if f.updated != trade {
		t.Errorf("session received a trade other than the resolved one")
	}
}

func TestUpdateOrderUnknownTrade(t *testing.T) {
	f := &fakeSession{accounts: twoAccounts(), tradeLists: [][]*domain.Trade{{}}}
	svc := loggedInService(t, f)
	_, err := svc.UpdateOrder(context.Background(), &wire.UpdateOrderRequest{
		Trade: &wire.Trade{Order: &wire.Order{Seqno: "999999"}},
	})
	wantCode(t, err, codes.NotFound)
	if !strings.Contains(err.Error(), "999999") {
		t.Errorf("error %q does not name the missing seqno", err)
	}
}

func TestGetMarginUsesFuturesAccount(t *testing.T) {
	f := &fakeSession{accounts: twoAccounts()}
	svc := loggedInService(t, f)
	if _, err := svc.GetMargin(context.Background(), &wire.GetMarginRequest{}); err != nil {
		t.Fatalf("GetMargin() error = %v", err)
	}
	if f.marginAcct.AccountType != "F" {
		t.Errorf("margin queried on account type %q, want %q", f.marginAcct.AccountType, "F")
	}
}

func TestGetMarginWithoutFuturesAccount(t *testing.T) {
	f := &fakeSession{accounts: []domain.Account{{AccountType: "S", AccountID: "0501234"}}}
	svc := loggedInService(t, f)
	_, err := svc.GetMargin(context.Background(), &wire.GetMarginRequest{})
	wantCode(t, err, codes.Internal)
}

func TestGetDailyQuotesBadDate(t *testing.T) {
	f := &fakeSession{accounts: twoAccounts()}
	svc := loggedInService(t, f)
	_, err := svc.GetDailyQuotes(context.Background(), &wire.GetDailyQuotesRequest{Date: "2025/08/28"})
	wantCode(t, err, codes.InvalidArgument)
}

func TestGetTicksBadDate(t *testing.T) {
	f := &fakeSession{accounts: twoAccounts()}
	svc := loggedInService(t, f)
	_, err := svc.GetTicks(context.Background(), &wire.GetTicksRequest{ContractCode: "2330", Date: "today"})
	wantCode(t, err, codes.InvalidArgument)
}

func TestGetSnapshotsUnknownCode(t *testing.T) {
	f := &fakeSession{accounts: twoAccounts()}
	f.Contracts().Stocks["2330"] = &domain.Contract{Code: "2330", SecurityType: domain.SecurityTypeStock}
	svc := loggedInService(t, f)
	_, err := svc.GetSnapshots(context.Background(), &wire.GetSnapshotsRequest{ContractCodes: []string{"2330", "9999"}})
	wantCode(t, err, codes.NotFound)
	if !strings.Contains(err.Error(), "9999") {
		t.Errorf("error %q does not name the missing code", err)
	}
}

func TestReserveStockMarshalsResult(t *testing.T) {
	f := &fakeSession{accounts: twoAccounts()}
	f.Contracts().Stocks["2330"] = &domain.Contract{Code: "2330", SecurityType: domain.SecurityTypeStock}
	svc := loggedInService(t, f)
	resp, err := svc.ReserveStock(context.Background(), &wire.ReserveStockRequest{
		Contract: &wire.Contract{Code: "2330", SecurityType: wire.SecurityTypeStock},
		Share:    1000,
	})
	if err != nil {
		t.Fatalf("ReserveStock() error = %v", err)
	}
	var result domain.ReserveStockResult
	if err := json.Unmarshal([]byte(resp.ResponseJSON), &result); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if result.Code != "2330" || result.Share != 1000 || !result.Accepted {
		t.Errorf("result = %+v, want accepted 2330/1000", result)
	}
	if f.reserveReq.share != 1000 {
		t.Errorf("session received share %d, want 1000", f.reserveReq.share)
	}
}

func TestReserveStockRejectsNonStock(t *testing.T) {
	f := &fakeSession{accounts: twoAccounts()}
	f.Contracts().Futures["TXFI5"] = &domain.Contract{Code: "TXFI5", SecurityType: domain.SecurityTypeFuture}
	svc := loggedInService(t, f)
	_, err := svc.ReserveStock(context.Background(), &wire.ReserveStockRequest{
		Contract: &wire.Contract{Code: "TXFI5"},
		Share:    1,
	})
	wantCode(t, err, codes.NotFound)
}
