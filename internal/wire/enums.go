// Package wire defines the gateway's RPC surface: the request/response
// messages exchanged with clients, the integer enum codes used on the
// wire, the JSON codec, and the hand-rolled gRPC service descriptor.
//
// Every enum reserves 0 for "unspecified"; translation to and from the
// broker vocabulary lives in internal/translate.
package wire

// SecurityType wire codes.
type SecurityType int32

const (
	SecurityTypeUnspecified SecurityType = 0
	SecurityTypeIndex       SecurityType = 1
	SecurityTypeStock       SecurityType = 2
	SecurityTypeFuture      SecurityType = 3
	SecurityTypeOption      SecurityType = 4
)

// Exchange wire codes.
type Exchange int32

const (
	ExchangeUnspecified Exchange = 0
	ExchangeTSE         Exchange = 1
	ExchangeOTC         Exchange = 2
	ExchangeOES         Exchange = 3
	ExchangeTAIFEX      Exchange = 4
)

// Currency wire codes.
type Currency int32

const (
	CurrencyUnspecified Currency = 0
	CurrencyTWD         Currency = 1
	CurrencyUSD         Currency = 2
	CurrencyHKD         Currency = 3
	CurrencyGBP         Currency = 4
	CurrencyAUD         Currency = 5
	CurrencyCAD         Currency = 6
	CurrencySGD         Currency = 7
	CurrencyCHF         Currency = 8
	CurrencyJPY         Currency = 9
	CurrencyZAR         Currency = 10
	CurrencySEK         Currency = 11
	CurrencyNZD         Currency = 12
	CurrencyTHB         Currency = 13
	CurrencyPHP         Currency = 14
	CurrencyIDR         Currency = 15
	CurrencyEUR         Currency = 16
	CurrencyKRW         Currency = 17
	CurrencyVND         Currency = 18
	CurrencyMYR         Currency = 19
	CurrencyCNY         Currency = 20
)

// OptionRight wire codes.
type OptionRight int32

const (
	OptionRightUnspecified OptionRight = 0
	OptionRightCall        OptionRight = 1
	OptionRightPut         OptionRight = 2
)

// DayTrade wire codes.
type DayTrade int32

const (
	DayTradeUnspecified DayTrade = 0
	DayTradeYes         DayTrade = 1
	DayTradeOnlyBuy     DayTrade = 2
	DayTradeNo          DayTrade = 3
)

// Action wire codes.
type Action int32

const (
	ActionUnspecified Action = 0
	ActionBuy         Action = 1
	ActionSell        Action = 2
)

// OrderType wire codes.
type OrderType int32

const (
	OrderTypeUnspecified OrderType = 0
	OrderTypeROD         OrderType = 1
	OrderTypeIOC         OrderType = 2
	OrderTypeFOK         OrderType = 3
)

// Status wire codes.
type Status int32

const (
	StatusUnspecified   Status = 0
	StatusCancelled     Status = 1
	StatusFilled        Status = 2
	StatusPartFilled    Status = 3
	StatusInactive      Status = 4
	StatusFailed        Status = 5
	StatusPendingSubmit Status = 6
	StatusPreSubmitted  Status = 7
	StatusSubmitted     Status = 8
)

// TickType wire codes.
type TickType int32

const (
	TickTypeUnspecified TickType = 0
	TickTypeNo          TickType = 1
	TickTypeBuy         TickType = 2
	TickTypeSell        TickType = 3
)

// ChangeType wire codes.
type ChangeType int32

const (
	ChangeTypeUnspecified ChangeType = 0
	ChangeTypeLimitUp     ChangeType = 1
	ChangeTypeUp          ChangeType = 2
	ChangeTypeUnchanged   ChangeType = 3
	ChangeTypeDown        ChangeType = 4
	ChangeTypeLimitDown   ChangeType = 5
)

// StockOrderCond wire codes.
type StockOrderCond int32

const (
	StockOrderCondUnspecified   StockOrderCond = 0
	StockOrderCondCash          StockOrderCond = 1
	StockOrderCondMarginTrading StockOrderCond = 2
	StockOrderCondShortSelling  StockOrderCond = 3
)

// TradeType wire codes.
type TradeType int32

const (
	TradeTypeUnspecified TradeType = 0
	TradeTypeCommon      TradeType = 1
	TradeTypeDayTrade    TradeType = 2
)

// FuturesOCType wire codes.
type FuturesOCType int32

const (
	FuturesOCTypeUnspecified FuturesOCType = 0
	FuturesOCTypeAuto        FuturesOCType = 1
	FuturesOCTypeNew         FuturesOCType = 2
	FuturesOCTypeCover       FuturesOCType = 3
	FuturesOCTypeDayTrade    FuturesOCType = 4
)

// ScannerType wire codes.
type ScannerType int32

const (
	ScannerTypeUnspecified       ScannerType = 0
	ScannerTypeChangePercentRank ScannerType = 1
	ScannerTypeChangePriceRank   ScannerType = 2
	ScannerTypeDayRangeRank      ScannerType = 3
	ScannerTypeVolumeRank        ScannerType = 4
	ScannerTypeAmountRank        ScannerType = 5
	ScannerTypeTickCountRank     ScannerType = 6
)
