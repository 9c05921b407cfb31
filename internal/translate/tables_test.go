package translate

import (
	"testing"

	"tradegate/internal/domain"
	"tradegate/internal/wire"
)

func checkRoundTrip[D comparable, C ~int32](t *testing.T, name string, tbl Table[D, C]) {
	t.Helper()
	for _, d := range tbl.Domain() {
		code := tbl.ToWire(d)
		if code == 0 {
			t.Errorf("%s: ToWire(%v) = 0, want a mapped code", name, d)
		}
		if got := tbl.ToDomain(code); got != d {
			t.Errorf("%s: ToDomain(ToWire(%v)) = %v, want %v", name, d, got, d)
		}
	}
}

func TestTablesRoundTrip(t *testing.T) {
	checkRoundTrip(t, "SecurityTypes", SecurityTypes)
	checkRoundTrip(t, "Exchanges", Exchanges)
	checkRoundTrip(t, "Currencies", Currencies)
	checkRoundTrip(t, "OptionRights", OptionRights)
	checkRoundTrip(t, "DayTrades", DayTrades)
	checkRoundTrip(t, "Actions", Actions)
	checkRoundTrip(t, "OrderTypes", OrderTypes)
	checkRoundTrip(t, "Statuses", Statuses)
	checkRoundTrip(t, "TickTypes", TickTypes)
	checkRoundTrip(t, "ChangeTypes", ChangeTypes)
	checkRoundTrip(t, "StockOrderConds", StockOrderConds)
	checkRoundTrip(t, "TradeTypes", TradeTypes)
	checkRoundTrip(t, "FuturesOCTypes", FuturesOCTypes)
	checkRoundTrip(t, "ScannerTypes", ScannerTypes)
}

func TestToWireUnknownDomain(t *testing.T) {
	if got := Actions.ToWire(domain.Action("Hold")); got != wire.ActionUnspecified {
		t.Errorf("ToWire(unknown action) = %v, want %v", got, wire.ActionUnspecified)
	}
	if got := Actions.ToWire(""); got != wire.ActionUnspecified {
		t.Errorf("ToWire(empty action) = %v, want %v", got, wire.ActionUnspecified)
	}
}

func TestToDomainFallbacks(t *testing.T) {
	tests := []struct {
		name string
		got  any
		want any
	}{
		{"action unspecified", Actions.ToDomain(wire.ActionUnspecified), domain.ActionBuy},
		{"action unmapped", Actions.ToDomain(wire.Action(99)), domain.ActionBuy},
		{"order type unspecified", OrderTypes.ToDomain(wire.OrderTypeUnspecified), domain.OrderTypeROD},
		{"status unmapped", Statuses.ToDomain(wire.Status(42)), domain.StatusPendingSubmit},
		{"octype unspecified", FuturesOCTypes.ToDomain(wire.FuturesOCTypeUnspecified), domain.FuturesOCTypeAuto},
		{"scanner unspecified", ScannerTypes.ToDomain(wire.ScannerTypeUnspecified), domain.ScannerTypeAmountRank},
		{"security type unmapped", SecurityTypes.ToDomain(wire.SecurityType(9)), domain.SecurityTypeStock},
		{"exchange unspecified", Exchanges.ToDomain(wire.ExchangeUnspecified), domain.ExchangeTSE},
		{"currency unspecified", Currencies.ToDomain(wire.CurrencyUnspecified), domain.CurrencyTWD},
		{"day trade unspecified", DayTrades.ToDomain(wire.DayTradeUnspecified), domain.DayTradeNo},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}
