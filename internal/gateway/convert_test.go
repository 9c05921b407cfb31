package gateway

import (
	"testing"
	"time"

	"tradegate/internal/domain"
)

func TestContractConversionRoundTrip(t *testing.T) {
	in := &domain.Contract{
		SecurityType:  domain.SecurityTypeOption,
		Exchange:      domain.ExchangeTAIFEX,
		Code:          "TXO24000I5",
		Symbol:        "TXO202509C24000",
		Name:          "TAIEX Options",
		Currency:      domain.CurrencyTWD,
		DeliveryMonth: "202509",
		StrikePrice:   24000,
		OptionRight:   domain.OptionRightCall,
		Multiplier:    50,
		LimitUp:       500,
		LimitDown:     100,
		Reference:     310,
		DayTrade:      domain.DayTradeNo,
	}
	got := contractToDomain(contractToWire(in))
	if *got != *in {
		t.Errorf("round trip changed contract:\n got %+v\nwant %+v", got, in)
	}
}

func TestOrderConversionRoundTrip(t *testing.T) {
	in := &domain.Order{
		Action:    domain.ActionSell,
		Price:     178.5,
		Quantity:  4,
		ID:        "abc",
		Seqno:     "000123",
		Ordno:     "W0123",
		PriceType: "LMT",
		OrderType: domain.OrderTypeIOC,
		Account:   &domain.Account{AccountType: "S", AccountID: "0501234"},
	}
	got := orderToDomain(orderToWire(in))
	if got.Account == nil || *got.Account != *in.Account {
		t.Errorf("round trip changed account: got %+v, want %+v", got.Account, in.Account)
	}
	got.Account, in.Account = nil, nil
	if *got != *in {
		t.Errorf("round trip changed order:\n got %+v\nwant %+v", got, in)
	}
}

func TestStatusTimeFormatting(t *testing.T) {
	placed := time.Date(2025, 8, 28, 9, 15, 30, 0, time.UTC)
	out := statusToWire(&domain.OrderStatus{
		Status:        domain.StatusSubmitted,
		OrderDatetime: placed,
	})
	if out.OrderDatetime != "2025-08-28 09:15:30" {
		t.Errorf("OrderDatetime = %q, want %q", out.OrderDatetime, "2025-08-28 09:15:30")
	}
	if out.ModifiedTime != "" {
		t.Errorf("ModifiedTime for zero time = %q, want empty", out.ModifiedTime)
	}
}

func TestPositionOneOf(t *testing.T) {
	stock := positionToWire(&domain.Position{Stock: &domain.StockPosition{Code: "2330", Quantity: 3}})
	if stock.StockPosition == nil || stock.FuturePosition != nil {
		t.Errorf("stock position arms = (%v, %v), want (set, nil)", stock.StockPosition, stock.FuturePosition)
	}
	future := positionToWire(&domain.Position{Future: &domain.FuturePosition{Code: "TXFI5", Quantity: 1}})
	if future.FuturePosition == nil || future.StockPosition != nil {
		t.Errorf("future position arms = (%v, %v), want (nil, set)", future.StockPosition, future.FuturePosition)
	}
}

func TestComboContractRoundTrip(t *testing.T) {
	leg := domain.Contract{
		SecurityType: domain.SecurityTypeOption,
		Exchange:     domain.ExchangeTAIFEX,
		Currency:     domain.CurrencyTWD,
		OptionRight:  domain.OptionRightCall,
		DayTrade:     domain.DayTradeNo,
	}
	call, put := leg, leg
	call.Code = "TXO24000I5"
	put.Code = "TXO24000U5"
	put.OptionRight = domain.OptionRightPut
	in := &domain.ComboContract{Legs: []domain.ComboLeg{
		{Contract: call, Action: domain.ActionBuy},
		{Contract: put, Action: domain.ActionSell},
	}}
	got := comboContractToDomain(comboContractToWire(in))
	if len(got.Legs) != 2 {
		t.Fatalf("len(Legs) = %d, want 2", len(got.Legs))
	}
	for i := range got.Legs {
		if got.Legs[i] != in.Legs[i] {
			t.Errorf("leg %d changed:\n got %+v\nwant %+v", i, got.Legs[i], in.Legs[i])
		}
	}
}
