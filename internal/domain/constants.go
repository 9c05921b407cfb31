// Package domain defines the broker-side vocabulary of the gateway: the
// string enum constants and entity types the broker session speaks. The
// wire layer never uses these directly; everything crossing the RPC
// boundary goes through the translation tables and converters.
package domain

// SecurityType classifies a contract.
type SecurityType string

const (
	SecurityTypeIndex  SecurityType = "IND"
	SecurityTypeStock  SecurityType = "STK"
	SecurityTypeFuture SecurityType = "FUT"
	SecurityTypeOption SecurityType = "OPT"
)

// Exchange identifies the venue a contract trades on.
type Exchange string

const (
	ExchangeTSE    Exchange = "TSE"
	ExchangeOTC    Exchange = "OTC"
	ExchangeOES    Exchange = "OES"
	ExchangeTAIFEX Exchange = "TAIFEX"
)

// Currency is the settlement currency of a contract or account figure.
type Currency string

const (
	CurrencyTWD Currency = "TWD"
	CurrencyUSD Currency = "USD"
	CurrencyHKD Currency = "HKD"
	CurrencyGBP Currency = "GBP"
	CurrencyAUD Currency = "AUD"
	CurrencyCAD Currency = "CAD"
	CurrencySGD Currency = "SGD"
	CurrencyCHF Currency = "CHF"
	CurrencyJPY Currency = "JPY"
	CurrencyZAR Currency = "ZAR"
	CurrencySEK Currency = "SEK"
	CurrencyNZD Currency = "NZD"
	CurrencyTHB Currency = "THB"
	CurrencyPHP Currency = "PHP"
	CurrencyIDR Currency = "IDR"
	CurrencyEUR Currency = "EUR"
	CurrencyKRW Currency = "KRW"
	CurrencyVND Currency = "VND"
	CurrencyMYR Currency = "MYR"
	CurrencyCNY Currency = "CNY"
)

// OptionRight distinguishes calls from puts.
type OptionRight string

const (
	OptionRightCall OptionRight = "C"
	OptionRightPut  OptionRight = "P"
)

// DayTrade reports whether a contract is eligible for day trading.
type DayTrade string

const (
	DayTradeYes     DayTrade = "Yes"
	DayTradeOnlyBuy DayTrade = "OnlyBuy"
	DayTradeNo      DayTrade = "No"
)

// Action is the side of an order or position.
type Action string

const (
	ActionBuy  Action = "Buy"
	ActionSell Action = "Sell"
)

// OrderType is the time-in-force of an order.
type OrderType string

const (
	OrderTypeROD OrderType = "ROD"
	OrderTypeIOC OrderType = "IOC"
	OrderTypeFOK OrderType = "FOK"
)

// Status is the broker-reported state of an order.
type Status string

const (
	StatusCancelled     Status = "Cancelled"
	StatusFilled        Status = "Filled"
	StatusPartFilled    Status = "PartFilled"
	StatusInactive      Status = "Inactive"
	StatusFailed        Status = "Failed"
	StatusPendingSubmit Status = "PendingSubmit"
	StatusPreSubmitted  Status = "PreSubmitted"
	StatusSubmitted     Status = "Submitted"
)

// TickType marks the aggressor side of a tick.
type TickType string

const (
	TickTypeNo   TickType = "None"
	TickTypeBuy  TickType = "Buy"
	TickTypeSell TickType = "Sell"
)

// ChangeType describes the direction of a price change.
type ChangeType string

const (
	ChangeTypeLimitUp   ChangeType = "LimitUp"
	ChangeTypeUp        ChangeType = "Up"
	ChangeTypeUnchanged ChangeType = "Unchanged"
	ChangeTypeDown      ChangeType = "Down"
	ChangeTypeLimitDown ChangeType = "LimitDown"
)

// StockOrderCond is the financing condition of a stock order or position.
type StockOrderCond string

const (
	StockOrderCondCash          StockOrderCond = "Cash"
	StockOrderCondMarginTrading StockOrderCond = "MarginTrading"
	StockOrderCondShortSelling  StockOrderCond = "ShortSelling"
)

// TradeType separates common trades from day trades in PnL detail.
type TradeType string

const (
	TradeTypeCommon   TradeType = "Common"
	TradeTypeDayTrade TradeType = "DayTrade"
)

// FuturesOCType is the open/close intent of a futures or combo order.
type FuturesOCType string

const (
	FuturesOCTypeAuto     FuturesOCType = "Auto"
	FuturesOCTypeNew      FuturesOCType = "New"
	FuturesOCTypeCover    FuturesOCType = "Cover"
	FuturesOCTypeDayTrade FuturesOCType = "DayTrade"
)

// ScannerType selects a market scanner ranking.
type ScannerType string

const (
	ScannerTypeChangePercentRank ScannerType = "ChangePercentRank"
	ScannerTypeChangePriceRank   ScannerType = "ChangePriceRank"
	ScannerTypeDayRangeRank      ScannerType = "DayRangeRank"
	ScannerTypeVolumeRank        ScannerType = "VolumeRank"
	ScannerTypeAmountRank        ScannerType = "AmountRank"
	ScannerTypeTickCountRank     ScannerType = "TickCountRank"
)
