package domain

import "time"

// Account is one trading account attached to the broker session. The
// session exposes at most one stock account and one futures/options
// account as defaults.
type Account struct {
	AccountType string
	PersonID    string
	BrokerID    string
	AccountID   string
	Username    string
	Signed      bool
}

// Usage reports the broker session's API quota consumption.
type Usage struct {
	Connections    int
	Bytes          int64
	LimitBytes     int64
	RemainingBytes int64
}

// AccountBalance is the bank balance attached to the stock account.
type AccountBalance struct {
	Balance float64
	Date    time.Time
	ErrMsg  string
}

// Contract describes a tradable instrument. The same struct covers all
// four categories; category-specific fields are zero for the others.
type Contract struct {
	SecurityType SecurityType
	Exchange     Exchange
	Code         string
	Symbol       string
	Name         string
	Currency     Currency

	Category      string
	DeliveryMonth string
	DeliveryDate  string
	StrikePrice   float64
	OptionRight   OptionRight

	UnderlyingKind string
	UnderlyingCode string
	Unit           float64
	Multiplier     int

	LimitUp    float64
	LimitDown  float64
	Reference  float64
	UpdateDate string

	MarginTradingBalance int
	ShortSellingBalance  int
	DayTrade             DayTrade
	TargetCode           string
}

// ComboLeg is one leg of a combination contract: a contract plus the
// side taken on that leg.
type ComboLeg struct {
	Contract
	Action Action
}

// ComboContract is an ordered set of legs traded as one instrument.
type ComboContract struct {
	Legs []ComboLeg
}

// Order is a single-leg order as the broker session understands it.
type Order struct {
	Action    Action
	Price     float64
	Quantity  int
	ID        string
	Seqno     string
	Ordno     string
	Account   *Account
	PriceType string
	OrderType OrderType
}

// ComboOrder is an order against a combination contract.
type ComboOrder struct {
	Order
	OCType FuturesOCType
}

// OrderUpdate carries amendments for an open order. Zero values mean
// "leave unchanged": a zero price or zero quantity is never forwarded
// to the broker as an override.
type OrderUpdate struct {
	Price    float64
	Quantity int
}

// Deal is a single fill against an order.
type Deal struct {
	Seq      string
	Price    float64
	Quantity int
	TS       int64
}

// OrderStatus is the broker-reported lifecycle state of an order.
type OrderStatus struct {
	ID             string
	Status         Status
	StatusCode     string
	OrderDatetime  time.Time
	DealQuantity   int
	CancelQuantity int
	WebID          string
	Msg            string
	ModifiedTime   time.Time
	ModifiedPrice  float64
	OrderQuantity  int
	Deals          []Deal
}

// Trade pairs an order with its contract and current status.
type Trade struct {
	Contract *Contract
	Order    *Order
	Status   *OrderStatus
}

// ComboTrade is the combination-order counterpart of Trade.
type ComboTrade struct {
	Contract *ComboContract
	Order    *ComboOrder
	Status   *OrderStatus
}

// OrderDealRecord is one row of the account's fill history.
type OrderDealRecord struct {
	Code     string
	Action   Action
	Price    float64
	Quantity int
	TS       time.Time
}

// StockPosition is an open stock position.
type StockPosition struct {
	ID                   int
	Code                 string
	Direction            Action
	Quantity             int
	Price                float64
	LastPrice            float64
	Pnl                  float64
	YdQuantity           int
	Cond                 StockOrderCond
	MarginPurchaseAmount int
	Collateral           int
	ShortSaleMargin      int
	Interest             int
}

// FuturePosition is an open futures or options position.
type FuturePosition struct {
	ID        int
	Code      string
	Direction Action
	Quantity  int
	Price     float64
	LastPrice float64
	Pnl       float64
}

// Position is a tagged union over the two position kinds. Exactly one
// arm is non-nil, fixed at construction.
type Position struct {
	Stock  *StockPosition
	Future *FuturePosition
}

// StockPositionDetail is one lot of a stock position.
type StockPositionDetail struct {
	Date             string
	Code             string
	Quantity         int
	Price            float64
	LastPrice        float64
	Pnl              float64
	Dseq             string
	Direction        Action
	Currency         Currency
	Fee              float64
	Cond             StockOrderCond
	ExDividends      float64
	Interest         float64
	MargintradingAmt int
	Collateral       int
}

// FuturePositionDetail is one lot of a futures position.
type FuturePositionDetail struct {
	Date          string
	Code          string
	Quantity      int
	Price         float64
	LastPrice     float64
	Pnl           float64
	Dseq          string
	Direction     Action
	Currency      Currency
	Fee           float64
	EntryQuantity int
}

// PositionDetail is a tagged union over the two detail kinds.
type PositionDetail struct {
	Stock  *StockPositionDetail
	Future *FuturePositionDetail
}

// StockProfitLoss is one realized stock PnL entry.
type StockProfitLoss struct {
	ID       int
	Dseq     string
	Code     string
	Quantity int
	Price    float64
	Pnl      float64
	PrRatio  float64
	Cond     StockOrderCond
	Date     string
	Seqno    string
}

// FutureProfitLoss is one realized futures PnL entry.
type FutureProfitLoss struct {
	ID         int
	Date       string
	Code       string
	Quantity   int
	EntryPrice float64
	CoverPrice float64
	Direction  Action
	Pnl        float64
	Tax        float64
	Fee        float64
}

// ProfitLoss is a tagged union over the two realized-PnL kinds.
type ProfitLoss struct {
	Stock  *StockProfitLoss
	Future *FutureProfitLoss
}

// StockProfitDetail is the per-fill breakdown of a stock PnL entry.
type StockProfitDetail struct {
	Date                string
	Code                string
	Quantity            int
	Dseq                string
	Price               float64
	Cost                float64
	Interest            float64
	Fee                 float64
	Tax                 float64
	Currency            Currency
	RepMargintradingAmt float64
	RepCollateral       float64
	RepMargin           float64
	ShortsellingFee     float64
	ExDividendAmt       float64
	TradeType           TradeType
	Cond                StockOrderCond
}

// FutureProfitDetail is the per-fill breakdown of a futures PnL entry.
type FutureProfitDetail struct {
	Date       string
	Code       string
	Quantity   int
	Dseq       string
	Direction  Action
	EntryDate  string
	EntryPrice float64
	CoverPrice float64
	Pnl        float64
	Fee        float64
	Tax        float64
	Currency   Currency
}

// ProfitDetail is a tagged union over the two PnL-detail kinds.
type ProfitDetail struct {
	Stock  *StockProfitDetail
	Future *FutureProfitDetail
}

// StockProfitLossSummary aggregates realized stock PnL per code.
type StockProfitLossSummary struct {
	Code       string
	Quantity   int
	EntryPrice float64
	CoverPrice float64
	EntryCost  float64
	CoverCost  float64
	BuyCost    float64
	SellCost   float64
	Pnl        float64
	PrRatio    float64
	Currency   Currency
	Cond       StockOrderCond
}

// FutureProfitLossSummary aggregates realized futures PnL per code.
type FutureProfitLossSummary struct {
	Code       string
	Quantity   int
	EntryPrice float64
	CoverPrice float64
	Direction  Action
	Pnl        float64
	Tax        float64
	Fee        float64
	Currency   Currency
}

// ProfitLossSummary is a tagged union over the two summary kinds.
type ProfitLossSummary struct {
	Stock  *StockProfitLossSummary
	Future *FutureProfitLossSummary
}

// Settlement is one settlement ladder row (T, T+1, T+2).
type Settlement struct {
	Date    time.Time
	Amount  float64
	TMoney  float64
	TDay    time.Time
	T1Money float64
	T1Day   time.Time
	T2Money float64
	T2Day   time.Time
}

// Margin is the futures/options account margin report.
type Margin struct {
	Equity                    float64
	EquityAmount              float64
	AvailableMargin           float64
	InitialMargin             float64
	MaintenanceMargin         float64
	YesterdayBalance          float64
	TodayBalance              float64
	DepositWithdrawal         float64
	Fee                       float64
	Tax                       float64
	MarginCall                float64
	RiskIndicator             float64
	RoyaltyRevenueExpenditure float64

	OptionOpenbuyMarketValue  float64
	OptionOpensellMarketValue float64
	OptionOpenPosition        int
	OptionSettleProfitloss    float64
	FutureOpenPosition        int
	TodayFutureOpenPosition   int
	FutureSettleProfitloss    float64
}

// TradingLimits reports the stock account's order-value headroom.
type TradingLimits struct {
	TradingLimit     float64
	TradingUsed      float64
	TradingAvailable float64
	MarginLimit      float64
	MarginUsed       float64
	MarginAvailable  float64
	ShortLimit       float64
	ShortUsed        float64
	ShortAvailable   float64
}

// ReserveStocksSummary lists reserved-stock totals per code.
type ReserveStocksSummary struct {
	Status string
	Stocks []ReserveStockSummary
}

// ReserveStockSummary is one code's reserved-stock totals.
type ReserveStockSummary struct {
	Code      string
	Reserved  int
	Available int
}

// ReserveStocksDetail lists individual reserve applications.
type ReserveStocksDetail struct {
	Status  string
	Details []ReserveStockDetail
}

// ReserveStockDetail is one reserve application row.
type ReserveStockDetail struct {
	Code  string
	Share int
	Date  string
}

// ReserveStockResult is the broker's answer to a reserve application.
type ReserveStockResult struct {
	Code     string
	Share    int
	Accepted bool
	Msg      string
}

// EarmarkingDetail lists earmarking applications.
type EarmarkingDetail struct {
	Status  string
	Details []EarmarkDetail
}

// EarmarkDetail is one earmarking application row.
type EarmarkDetail struct {
	Code  string
	Share int
	Price float64
	Date  string
}

// ReserveEarmarkingResult is the broker's answer to an earmarking
// application.
type ReserveEarmarkingResult struct {
	Code     string
	Share    int
	Price    float64
	Accepted bool
	Msg      string
}

// Snapshot is the current quote of one contract.
type Snapshot struct {
	TS              int64
	Code            string
	Exchange        Exchange
	Open            float64
	High            float64
	Low             float64
	Close           float64
	ChangePrice     float64
	ChangeRate      float64
	AveragePrice    float64
	Volume          int
	TotalVolume     int
	Amount          int64
	TotalAmount     int64
	BuyPrice        float64
	BuyVolume       float64
	SellPrice       float64
	SellVolume      int
	TickType        TickType
	ChangeType      ChangeType
	YesterdayVolume float64
	VolumeRatio     float64
}

// Ticks is a column-oriented series of intraday ticks. All slices have
// the same length.
type Ticks struct {
	TS        []int64
	Close     []float64
	Volume    []int64
	BidPrice  []float64
	BidVolume []int64
	AskPrice  []float64
	AskVolume []int64
	TickType  []int
}

// Kbars is a column-oriented series of one-minute candles.
type Kbars struct {
	TS     []int64
	Open   []float64
	High   []float64
	Low    []float64
	Close  []float64
	Volume []int64
	Amount []float64
}

// DailyQuotes is the column-oriented end-of-day quote table for one
// trading day.
type DailyQuotes struct {
	Code        []string
	Open        []float64
	High        []float64
	Low         []float64
	Close       []float64
	Volume      []int64
	Date        []time.Time
	Transaction []int64
	Amount      []float64
}

// CreditEnquire reports margin/short availability for one stock.
type CreditEnquire struct {
	StockID    string
	MarginUnit int
	ShortUnit  int
	UpdateTime string
	System     string
}

// ShortStockSource reports borrowable shares for one stock.
type ShortStockSource struct {
	Code             string
	ShortStockSource float64
	TS               int64
}

// ScannerQuery selects and orders a market scanner run.
type ScannerQuery struct {
	Type      ScannerType
	Ascending bool
	Date      string
	Count     int
}

// ScannerItem is one ranked row of a scanner result.
type ScannerItem struct {
	Code            string
	Name            string
	Date            string
	TS              int64
	Open            float64
	High            float64
	Low             float64
	Close           float64
	PriceRange      float64
	TickType        TickType
	ChangePrice     float64
	ChangeType      ChangeType
	AveragePrice    float64
	Volume          int
	TotalVolume     int
	Amount          int64
	TotalAmount     int64
	YesterdayVolume int
	VolumeRatio     float64
	BuyPrice        float64
	BuyVolume       int
	SellPrice       float64
	SellVolume      int
	BidOrders       int
	BidVolumes      int
	AskOrders       int
	AskVolumes      int
	RankValue       float64
}

// Punish is the column-oriented disposition-stock announcement table.
type Punish struct {
	Code          []string
	StartDate     []time.Time
	EndDate       []time.Time
	Interval      []int
	UpdatedAt     []time.Time
	UnitLimit     []float64
	TotalLimit    []float64
	Description   []string
	AnnouncedDate []time.Time
}

// Notice is the column-oriented attention-stock announcement table.
type Notice struct {
	Code          []string
	Reason        []string
	UpdatedAt     []time.Time
	Close         []float64
	AnnouncedDate []time.Time
}

// ContractBook holds the downloaded contract universe, keyed by code
// within each category.
type ContractBook struct {
	Stocks  map[string]*Contract
	Futures map[string]*Contract
	Options map[string]*Contract
	Indexes map[string]*Contract
}

// NewContractBook returns an empty book with all four category maps
// allocated.
func NewContractBook() *ContractBook {
	return &ContractBook{
		Stocks:  make(map[string]*Contract),
		Futures: make(map[string]*Contract),
		Options: make(map[string]*Contract),
		Indexes: make(map[string]*Contract),
	}
}
