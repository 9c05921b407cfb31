// Package translate holds the bidirectional mappings between wire enum
// codes and broker-domain constants, one table per semantic category.
//
// Translation is total in both directions and never returns an error.
// The fallbacks are deliberately asymmetric: an unknown domain value
// maps to the wire's "unspecified" code so responses never claim a
// default that was not there, while an unknown or unspecified wire code
// maps to a specific usable domain value so every inbound request still
// yields a constructible broker call.
package translate

import (
	"tradegate/internal/domain"
	"tradegate/internal/wire"
)

// Table is a bidirectional enum mapping for one category. D is the
// domain constant type, C the wire code type.
type Table[D comparable, C ~int32] struct {
	toWire   map[D]C
	toDomain map[C]D
	fallback D
}

// NewTable builds a table from the domain→wire mapping. fallback is the
// domain value returned for unmapped or unspecified wire codes.
func NewTable[D comparable, C ~int32](codes map[D]C, fallback D) Table[D, C] {
	inverse := make(map[C]D, len(codes))
	for d, c := range codes {
		inverse[c] = d
	}
	return Table[D, C]{toWire: codes, toDomain: inverse, fallback: fallback}
}

// ToWire returns the wire code for v, or 0 when v is not in the table.
func (t Table[D, C]) ToWire(v D) C {
	return t.toWire[v]
}

// ToDomain returns the domain value for code, or the table's fallback
// when code is 0 or not in the table.
func (t Table[D, C]) ToDomain(code C) D {
	if d, ok := t.toDomain[code]; ok && code != 0 {
		return d
	}
	return t.fallback
}

// Domain returns every domain value the table maps.
func (t Table[D, C]) Domain() []D {
	out := make([]D, 0, len(t.toWire))
	for d := range t.toWire {
		out = append(out, d)
	}
	return out
}

var SecurityTypes = NewTable(map[domain.SecurityType]wire.SecurityType{
	domain.SecurityTypeIndex:  wire.SecurityTypeIndex,
	domain.SecurityTypeStock:  wire.SecurityTypeStock,
	domain.SecurityTypeFuture: wire.SecurityTypeFuture,
	domain.SecurityTypeOption: wire.SecurityTypeOption,
}, domain.SecurityTypeStock)

var Exchanges = NewTable(map[domain.Exchange]wire.Exchange{
	domain.ExchangeTSE:    wire.ExchangeTSE,
	domain.ExchangeOTC:    wire.ExchangeOTC,
	domain.ExchangeOES:    wire.ExchangeOES,
	domain.ExchangeTAIFEX: wire.ExchangeTAIFEX,
}, domain.ExchangeTSE)

var Currencies = NewTable(map[domain.Currency]wire.Currency{
	domain.CurrencyTWD: wire.CurrencyTWD,
	domain.CurrencyUSD: wire.CurrencyUSD,
	domain.CurrencyHKD: wire.CurrencyHKD,
	domain.CurrencyGBP: wire.CurrencyGBP,
	domain.CurrencyAUD: wire.CurrencyAUD,
	domain.CurrencyCAD: wire.CurrencyCAD,
	domain.CurrencySGD: wire.CurrencySGD,
	domain.CurrencyCHF: wire.CurrencyCHF,
	domain.CurrencyJPY: wire.CurrencyJPY,
	domain.CurrencyZAR: wire.CurrencyZAR,
	domain.CurrencySEK: wire.CurrencySEK,
	domain.CurrencyNZD: wire.CurrencyNZD,
	domain.CurrencyTHB: wire.CurrencyTHB,
	domain.CurrencyPHP: wire.CurrencyPHP,
	domain.CurrencyIDR: wire.CurrencyIDR,
	domain.CurrencyEUR: wire.CurrencyEUR,
	domain.CurrencyKRW: wire.CurrencyKRW,
	domain.CurrencyVND: wire.CurrencyVND,
	domain.CurrencyMYR: wire.CurrencyMYR,
	domain.CurrencyCNY: wire.CurrencyCNY,
}, domain.CurrencyTWD)

var OptionRights = NewTable(map[domain.OptionRight]wire.OptionRight{
	domain.OptionRightCall: wire.OptionRightCall,
	domain.OptionRightPut:  wire.OptionRightPut,
}, domain.OptionRightCall)

var DayTrades = NewTable(map[domain.DayTrade]wire.DayTrade{
	domain.DayTradeYes:     wire.DayTradeYes,
	domain.DayTradeOnlyBuy: wire.DayTradeOnlyBuy,
	domain.DayTradeNo:      wire.DayTradeNo,
}, domain.DayTradeNo)

var Actions = NewTable(map[domain.Action]wire.Action{
	domain.ActionBuy:  wire.ActionBuy,
	domain.ActionSell: wire.ActionSell,
}, domain.ActionBuy)

var OrderTypes = NewTable(map[domain.OrderType]wire.OrderType{
	domain.OrderTypeROD: wire.OrderTypeROD,
	domain.OrderTypeIOC: wire.OrderTypeIOC,
	domain.OrderTypeFOK: wire.OrderTypeFOK,
}, domain.OrderTypeROD)

var Statuses = NewTable(map[domain.Status]wire.Status{
	domain.StatusCancelled:     wire.StatusCancelled,
	domain.StatusFilled:        wire.StatusFilled,
	domain.StatusPartFilled:    wire.StatusPartFilled,
	domain.StatusInactive:      wire.StatusInactive,
	domain.StatusFailed:        wire.StatusFailed,
	domain.StatusPendingSubmit: wire.StatusPendingSubmit,
	domain.StatusPreSubmitted:  wire.StatusPreSubmitted,
	domain.StatusSubmitted:     wire.StatusSubmitted,
}, domain.StatusPendingSubmit)

var TickTypes = NewTable(map[domain.TickType]wire.TickType{
	domain.TickTypeNo:   wire.TickTypeNo,
	domain.TickTypeBuy:  wire.TickTypeBuy,
	domain.TickTypeSell: wire.TickTypeSell,
}, domain.TickTypeNo)

var ChangeTypes = NewTable(map[domain.ChangeType]wire.ChangeType{
	domain.ChangeTypeLimitUp:   wire.ChangeTypeLimitUp,
	domain.ChangeTypeUp:        wire.ChangeTypeUp,
	domain.ChangeTypeUnchanged: wire.ChangeTypeUnchanged,
	domain.ChangeTypeDown:      wire.ChangeTypeDown,
	domain.ChangeTypeLimitDown: wire.ChangeTypeLimitDown,
}, domain.ChangeTypeUnchanged)

var StockOrderConds = NewTable(map[domain.StockOrderCond]wire.StockOrderCond{
	domain.StockOrderCondCash:          wire.StockOrderCondCash,
	domain.StockOrderCondMarginTrading: wire.StockOrderCondMarginTrading,
	domain.StockOrderCondShortSelling:  wire.StockOrderCondShortSelling,
}, domain.StockOrderCondCash)

var TradeTypes = NewTable(map[domain.TradeType]wire.TradeType{
	domain.TradeTypeCommon:   wire.TradeTypeCommon,
	domain.TradeTypeDayTrade: wire.TradeTypeDayTrade,
}, domain.TradeTypeCommon)

var FuturesOCTypes = NewTable(map[domain.FuturesOCType]wire.FuturesOCType{
	domain.FuturesOCTypeAuto:     wire.FuturesOCTypeAuto,
	domain.FuturesOCTypeNew:      wire.FuturesOCTypeNew,
	domain.FuturesOCTypeCover:    wire.FuturesOCTypeCover,
	domain.FuturesOCTypeDayTrade: wire.FuturesOCTypeDayTrade,
}, domain.FuturesOCTypeAuto)

var ScannerTypes = NewTable(map[domain.ScannerType]wire.ScannerType{
	domain.ScannerTypeChangePercentRank: wire.ScannerTypeChangePercentRank,
	domain.ScannerTypeChangePriceRank:   wire.ScannerTypeChangePriceRank,
	domain.ScannerTypeDayRangeRank:      wire.ScannerTypeDayRangeRank,
	domain.ScannerTypeVolumeRank:        wire.ScannerTypeVolumeRank,
	domain.ScannerTypeAmountRank:        wire.ScannerTypeAmountRank,
	domain.ScannerTypeTickCountRank:     wire.ScannerTypeTickCountRank,
}, domain.ScannerTypeAmountRank)
