package broker

import (
	"context"
	"testing"

	"tradegate/internal/domain"
)

func loggedInSimulator(t *testing.T) *Simulator {
	t.Helper()
	sim := NewSimulator()
	accounts, err := sim.Login(context.Background(), "key", "secret")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("len(accounts) = %d, want 2", len(accounts))
	}
	return sim
}

func TestLoginExposesDefaultAccounts(t *testing.T) {
	sim := loggedInSimulator(t)
	if a := sim.StockAccount(); a == nil || a.AccountType != "S" {
		t.Errorf("StockAccount() = %+v, want type S", a)
	}
	if a := sim.FutOptAccount(); a == nil || a.AccountType != "F" {
		t.Errorf("FutOptAccount() = %+v, want type F", a)
	}
}

func TestLoginRejectsEmptyCredentials(t *testing.T) {
	sim := NewSimulator()
	if _, err := sim.Login(context.Background(), "", "secret"); err == nil {
		t.Errorf("Login with empty key = nil error, want failure")
	}
}

func TestLogoutClearsAccounts(t *testing.T) {
	sim := loggedInSimulator(t)
	if ok, err := sim.Logout(context.Background()); err != nil || !ok {
		t.Fatalf("Logout() = %v, %v; want true, nil", ok, err)
	}
	if sim.StockAccount() != nil {
		t.Errorf("StockAccount() after logout = non-nil, want nil")
	}
}

func TestActivateCASignsAccounts(t *testing.T) {
	sim := loggedInSimulator(t)
	ok, err := sim.ActivateCA(context.Background(), "/tmp/ca.pfx", "A123456789", "pw")
	if err != nil || !ok {
		t.Fatalf("ActivateCA() = %v, %v; want true, nil", ok, err)
	}
	if !sim.StockAccount().Signed {
		t.Errorf("stock account not signed after CA activation")
	}
}

func TestContractBookCoversAllCategories(t *testing.T) {
	book := NewSimulator().Contracts()
	if len(book.Stocks) == 0 || len(book.Futures) == 0 || len(book.Options) == 0 || len(book.Indexes) == 0 {
		t.Errorf("seeded book has empty categories: stocks=%d futures=%d options=%d indexes=%d",
			len(book.Stocks), len(book.Futures), len(book.Options), len(book.Indexes))
	}
}

func TestPlaceOrderAssignsIdentifiers(t *testing.T) {
	sim := loggedInSimulator(t)
	ctx := context.Background()
	contract := sim.Contracts().Stocks["2330"]

	first, err := sim.PlaceOrder(ctx, contract, &domain.Order{Action: domain.ActionBuy, Price: 980, Quantity: 1})
	if err != nil {
		t.Fatalf("PlaceOrder() error = %v", err)
	}
	second, err := sim.PlaceOrder(ctx, contract, &domain.Order{Action: domain.ActionSell, Price: 985, Quantity: 2})
	if err != nil {
		t.Fatalf("PlaceOrder() error = %v", err)
	}
	if first.Order.Seqno == second.Order.Seqno {
		t.Errorf("seqnos not unique: %q", first.Order.Seqno)
	}
	if first.Order.ID == second.Order.ID || first.Order.ID == "" {
		t.Errorf("order ids = %q, %q; want distinct non-empty", first.Order.ID, second.Order.ID)
	}

	trades, err := sim.ListTrades(ctx)
	if err != nil {
		t.Fatalf("ListTrades() error = %v", err)
	}
	if len(trades) != 2 {
		t.Errorf("len(trades) = %d, want 2", len(trades))
	}
}

func TestPlaceOrderRejectsNonPositiveQuantity(t *testing.T) {
	sim := loggedInSimulator(t)
	contract := sim.Contracts().Stocks["2330"]
	if _, err := sim.PlaceOrder(context.Background(), contract, &domain.Order{Action: domain.ActionBuy, Price: 980}); err == nil {
		t.Errorf("PlaceOrder with zero quantity = nil error, want failure")
	}
}

func TestUpdateOrderLeavesZeroFieldsUnchanged(t *testing.T) {
	sim := loggedInSimulator(t)
	ctx := context.Background()
	contract := sim.Contracts().Stocks["2330"]
	trade, err := sim.PlaceOrder(ctx, contract, &domain.Order{Action: domain.ActionBuy, Price: 980, Quantity: 2})
	if err != nil {
		t.Fatalf("PlaceOrder() error = %v", err)
	}

	updated, err := sim.UpdateOrder(ctx, trade, domain.OrderUpdate{Quantity: 5})
	if err != nil {
		t.Fatalf("UpdateOrder() error = %v", err)
	}
	if updated.Order.Price != 980 {
		t.Errorf("price changed to %v on quantity-only update, want 980", updated.Order.Price)
	}
	if updated.Order.Quantity != 5 {
		t.Errorf("quantity = %d, want 5", updated.Order.Quantity)
	}
}

func TestCancelOrderMarksCancelled(t *testing.T) {
	sim := loggedInSimulator(t)
	ctx := context.Background()
	contract := sim.Contracts().Stocks["2330"]
	trade, err := sim.PlaceOrder(ctx, contract, &domain.Order{Action: domain.ActionBuy, Price: 980, Quantity: 2})
	if err != nil {
		t.Fatalf("PlaceOrder() error = %v", err)
	}
	cancelled, err := sim.CancelOrder(ctx, trade)
	if err != nil {
		t.Fatalf("CancelOrder() error = %v", err)
	}
	if cancelled.Status.Status != domain.StatusCancelled {
		t.Errorf("status = %q, want %q", cancelled.Status.Status, domain.StatusCancelled)
	}
}

func TestTicksRejectsBadDate(t *testing.T) {
	sim := loggedInSimulator(t)
	contract := sim.Contracts().Stocks["2330"]
	if _, err := sim.Ticks(context.Background(), contract, "28-08-2025"); err == nil {
		t.Errorf("Ticks with bad date = nil error, want failure")
	}
}

func TestSnapshotsPerContract(t *testing.T) {
	sim := loggedInSimulator(t)
	book := sim.Contracts()
	snaps, err := sim.Snapshots(context.Background(), []*domain.Contract{book.Stocks["2330"], book.Futures["TXFI5"]})
	if err != nil {
		t.Fatalf("Snapshots() error = %v", err)
	}
	if len(snaps) != 2 {
		t.Fatalf("len(snapshots) = %d, want 2", len(snaps))
	}
	if snaps[0].Code != "2330" || snaps[1].Code != "TXFI5" {
		t.Errorf("snapshot codes = %q, %q; want request order", snaps[0].Code, snaps[1].Code)
	}
}
