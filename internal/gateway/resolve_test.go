package gateway

import (
	"context"
	"errors"
	"testing"

	"tradegate/internal/domain"
	"tradegate/internal/wire"
)

func bookSession() *fakeSession {
	f := &fakeSession{}
	book := f.Contracts()
	book.Stocks["2330"] = &domain.Contract{Code: "2330", SecurityType: domain.SecurityTypeStock}
	book.Futures["TXFI5"] = &domain.Contract{Code: "TXFI5", SecurityType: domain.SecurityTypeFuture}
	book.Options["TXO24000I5"] = &domain.Contract{Code: "TXO24000I5", SecurityType: domain.SecurityTypeOption}
	book.Indexes["001"] = &domain.Contract{Code: "001", SecurityType: domain.SecurityTypeIndex}
	return f
}

func TestContractProbesAllCategories(t *testing.T) {
	r := NewResolver(bookSession())
	tests := []struct {
		code string
		want domain.SecurityType
	}{
		{"2330", domain.SecurityTypeStock},
		{"TXFI5", domain.SecurityTypeFuture},
		{"TXO24000I5", domain.SecurityTypeOption},
		{"001", domain.SecurityTypeIndex},
	}
	for _, tt := range tests {
		c, err := r.Contract(tt.code)
		if err != nil {
			t.Errorf("Contract(%q) error = %v", tt.code, err)
			continue
		}
		if c.SecurityType != tt.want {
			t.Errorf("Contract(%q).SecurityType = %q, want %q", tt.code, c.SecurityType, tt.want)
		}
	}
}

func TestContractStockShadowsFuture(t *testing.T) {
	f := bookSession()
	f.Contracts().Stocks["DUP"] = &domain.Contract{Code: "DUP", SecurityType: domain.SecurityTypeStock}
	f.Contracts().Futures["DUP"] = &domain.Contract{Code: "DUP", SecurityType: domain.SecurityTypeFuture}
	c, err := NewResolver(f).Contract("DUP")
	if err != nil {
		t.Fatalf("Contract(DUP) error = %v", err)
	}
	if c.SecurityType != domain.SecurityTypeStock {
		t.Errorf("Contract(DUP).SecurityType = %q, want stock (probe order)", c.SecurityType)
	}
}

func TestContractNotFound(t *testing.T) {
	_, err := NewResolver(bookSession()).Contract("9999")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Contract(9999) error = %v, want NotFoundError", err)
	}
	if nf.ID != "9999" {
		t.Errorf("NotFoundError.ID = %q, want %q", nf.ID, "9999")
	}
}

func TestOrderContractDirectedBySecurityType(t *testing.T) {
	r := NewResolver(bookSession())

	c, err := r.OrderContract(&wire.Contract{Code: "TXFI5", SecurityType: wire.SecurityTypeFuture})
	if err != nil {
		t.Fatalf("OrderContract(future) error = %v", err)
	}
	if c.SecurityType != domain.SecurityTypeFuture {
		t.Errorf("OrderContract(future).SecurityType = %q, want future", c.SecurityType)
	}

	// No declared type falls back to the stock book.
	if _, err := r.OrderContract(&wire.Contract{Code: "TXFI5"}); err == nil {
		t.Errorf("OrderContract(untyped future code) = nil error, want not found in stocks")
	}
	if _, err := r.OrderContract(&wire.Contract{Code: "2330"}); err != nil {
		t.Errorf("OrderContract(untyped stock code) error = %v", err)
	}
}

func TestStockContractIgnoresOtherCategories(t *testing.T) {
	r := NewResolver(bookSession())
	if _, err := r.StockContract("TXFI5"); err == nil {
		t.Errorf("StockContract(future code) = nil error, want not found")
	}
	if _, err := r.StockContract("2330"); err != nil {
		t.Errorf("StockContract(2330) error = %v", err)
	}
}

func TestTradePrefersSeqnoOverID(t *testing.T) {
	first := &domain.Trade{Order: &domain.Order{Seqno: "000001", ID: "dup"}}
	second := &domain.Trade{Order: &domain.Order{Seqno: "000002", ID: "dup"}}
	f := &fakeSession{tradeLists: [][]*domain.Trade{{first, second}}}
	r := NewResolver(f)

	got, err := r.Trade(context.Background(), &wire.Trade{Order: &wire.Order{Seqno: "000002", ID: "dup"}})
	if err != nil {
		t.Fatalf("Trade() error = %v", err)
	}
	if got != second {
		t.Errorf("Trade() matched seqno %q, want 000002", got.Order.Seqno)
	}

	// Without a seqno the id decides, first match wins.
	got, err = r.Trade(context.Background(), &wire.Trade{Order: &wire.Order{ID: "dup"}})
	if err != nil {
		t.Fatalf("Trade() by id error = %v", err)
	}
	if got != first {
		t.Errorf("Trade() by id matched seqno %q, want 000001", got.Order.Seqno)
	}
}

func TestTradeFetchesFreshList(t *testing.T) {
	trade := &domain.Trade{Order: &domain.Order{Seqno: "000001"}}
	f := &fakeSession{tradeLists: [][]*domain.Trade{{}, {trade}}}
	r := NewResolver(f)

	ref := &wire.Trade{Order: &wire.Order{Seqno: "000001"}}
	if _, err := r.Trade(context.Background(), ref); err == nil {
		t.Fatalf("Trade() before placement = nil error, want not found")
	}
	got, err := r.Trade(context.Background(), ref)
	if err != nil {
		t.Fatalf("Trade() after placement error = %v", err)
	}
	if got != trade {
		t.Errorf("Trade() = %+v, want the freshly listed trade", got)
	}
	if f.tradeCalls != 2 {
		t.Errorf("ListTrades calls = %d, want 2 (one per resolution)", f.tradeCalls)
	}
}
