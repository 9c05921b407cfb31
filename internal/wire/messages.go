package wire

// Empty is the request/response for operations that carry no payload.
type Empty struct{}

// Account is one trading account as exposed to clients.
type Account struct {
	AccountType string `json:"account_type"`
	PersonID    string `json:"person_id"`
	BrokerID    string `json:"broker_id"`
	AccountID   string `json:"account_id"`
	Username    string `json:"username"`
	Signed      bool   `json:"signed"`
}

// Contract is the wire form of an instrument.
type Contract struct {
	SecurityType SecurityType `json:"security_type"`
	Exchange     Exchange     `json:"exchange"`
	Code         string       `json:"code"`
	Symbol       string       `json:"symbol"`
	Name         string       `json:"name"`
	Currency     Currency     `json:"currency"`

	Category      string      `json:"category"`
	DeliveryMonth string      `json:"delivery_month"`
	DeliveryDate  string      `json:"delivery_date"`
	StrikePrice   float64     `json:"strike_price"`
	OptionRight   OptionRight `json:"option_right"`

	UnderlyingKind string  `json:"underlying_kind"`
	UnderlyingCode string  `json:"underlying_code"`
	Unit           float64 `json:"unit"`
	Multiplier     int32   `json:"multiplier"`

	LimitUp    float64 `json:"limit_up"`
	LimitDown  float64 `json:"limit_down"`
	Reference  float64 `json:"reference"`
	UpdateDate string  `json:"update_date"`

	MarginTradingBalance int32    `json:"margin_trading_balance"`
	ShortSellingBalance  int32    `json:"short_selling_balance"`
	DayTrade             DayTrade `json:"day_trade"`
	TargetCode           string   `json:"target_code"`
}

// ComboBase is one leg of a combination contract: contract fields plus
// the leg's side.
type ComboBase struct {
	Contract
	Action Action `json:"action"`
}

// ComboContract is an ordered list of legs.
type ComboContract struct {
	Legs []*ComboBase `json:"legs"`
}

// Order is the wire form of a single-leg order.
type Order struct {
	Action    Action    `json:"action"`
	Price     float64   `json:"price"`
	Quantity  int32     `json:"quantity"`
	ID        string    `json:"id"`
	Seqno     string    `json:"seqno"`
	Ordno     string    `json:"ordno"`
	Account   *Account  `json:"account,omitempty"`
	PriceType string    `json:"price_type"`
	OrderType OrderType `json:"order_type"`
}

// ComboOrder is the wire form of a combination order.
type ComboOrder struct {
	Order
	Octype FuturesOCType `json:"octype"`
}

// Deal is one fill.
type Deal struct {
	Seq      string  `json:"seq"`
	Price    float64 `json:"price"`
	Quantity int32   `json:"quantity"`
	TS       int64   `json:"ts"`
}

// OrderStatus is the wire form of an order's lifecycle state.
type OrderStatus struct {
	ID             string  `json:"id"`
	Status         Status  `json:"status"`
	StatusCode     string  `json:"status_code"`
	OrderDatetime  string  `json:"order_datetime"`
	DealQuantity   int32   `json:"deal_quantity"`
	CancelQuantity int32   `json:"cancel_quantity"`
	WebID          string  `json:"web_id"`
	Msg            string  `json:"msg"`
	ModifiedTime   string  `json:"modified_time"`
	ModifiedPrice  float64 `json:"modified_price"`
	OrderQuantity  int32   `json:"order_quantity"`
	Deals          []*Deal `json:"deals"`
}

// Trade bundles a contract, its order, and the order's status.
type Trade struct {
	Contract *Contract    `json:"contract,omitempty"`
	Order    *Order       `json:"order,omitempty"`
	Status   *OrderStatus `json:"status,omitempty"`
}

// ComboTrade is the combination counterpart of Trade.
type ComboTrade struct {
	Contract *ComboContract `json:"contract,omitempty"`
	Order    *ComboOrder    `json:"order,omitempty"`
	Status   *OrderStatus   `json:"status,omitempty"`
}

// OrderDealRecord is one row of fill history.
type OrderDealRecord struct {
	Code     string  `json:"code"`
	Action   Action  `json:"action"`
	Price    float64 `json:"price"`
	Quantity int32   `json:"quantity"`
	TS       string  `json:"ts"`
}

// LoginRequest carries API credentials.
type LoginRequest struct {
	APIKey    string `json:"api_key"`
	SecretKey string `json:"secret_key"`
}

// LoginResponse lists the accounts attached to the new session.
type LoginResponse struct {
	Accounts []*Account `json:"accounts"`
}

// LogoutResponse reports whether the broker accepted the logout.
type LogoutResponse struct {
	Success bool `json:"success"`
}

// UsageStatus reports API quota consumption.
type UsageStatus struct {
	Connections    int32 `json:"connections"`
	Bytes          int64 `json:"bytes"`
	LimitBytes     int64 `json:"limit_bytes"`
	RemainingBytes int64 `json:"remaining_bytes"`
}

// ListAccountsResponse lists all session accounts.
type ListAccountsResponse struct {
	Accounts []*Account `json:"accounts"`
}

// AccountBalance is the stock account's bank balance.
type AccountBalance struct {
	AccBalance float64 `json:"acc_balance"`
	Date       string  `json:"date"`
	ErrMsg     string  `json:"errmsg"`
}

// PlaceOrderRequest submits a single-leg order.
type PlaceOrderRequest struct {
	Contract *Contract `json:"contract"`
	Order    *Order    `json:"order"`
}

// PlaceComboOrderRequest submits a combination order.
type PlaceComboOrderRequest struct {
	ComboContract *ComboContract `json:"combo_contract"`
	Order         *ComboOrder    `json:"order"`
}

// UpdateOrderRequest amends an open order. Zero price or quantity means
// "leave unchanged".
type UpdateOrderRequest struct {
	Trade    *Trade  `json:"trade"`
	Price    float64 `json:"price"`
	Quantity int32   `json:"quantity"`
}

// CancelOrderRequest cancels an open order.
type CancelOrderRequest struct {
	Trade *Trade `json:"trade"`
}

// CancelComboOrderRequest cancels an open combination order.
type CancelComboOrderRequest struct {
	ComboTrade *ComboTrade `json:"combotrade"`
}

// UpdateStatusRequest asks the broker to refresh order statuses.
type UpdateStatusRequest struct{}

// ListTradesResponse lists live single-leg trades.
type ListTradesResponse struct {
	Trades []*Trade `json:"trades"`
}

// ListComboTradesResponse lists live combination trades.
type ListComboTradesResponse struct {
	ComboTrades []*ComboTrade `json:"combo_trades"`
}

// GetOrderDealRecordsRequest fetches the stock account's fill history.
type GetOrderDealRecordsRequest struct{}

// GetOrderDealRecordsResponse lists fill-history rows.
type GetOrderDealRecordsResponse struct {
	Records []*OrderDealRecord `json:"records"`
}

// StockPosition is the wire form of an open stock position.
type StockPosition struct {
	ID                   int32          `json:"id"`
	Code                 string         `json:"code"`
	Direction            Action         `json:"direction"`
	Quantity             int32          `json:"quantity"`
	Price                float64        `json:"price"`
	LastPrice            float64        `json:"last_price"`
	Pnl                  float64        `json:"pnl"`
	YdQuantity           int32          `json:"yd_quantity"`
	Cond                 StockOrderCond `json:"cond"`
	MarginPurchaseAmount int32          `json:"margin_purchase_amount"`
	Collateral           int32          `json:"collateral"`
	ShortSaleMargin      int32          `json:"short_sale_margin"`
	Interest             int32          `json:"interest"`
}

// FuturePosition is the wire form of an open futures position.
type FuturePosition struct {
	ID        int32   `json:"id"`
	Code      string  `json:"code"`
	Direction Action  `json:"direction"`
	Quantity  int32   `json:"quantity"`
	Price     float64 `json:"price"`
	LastPrice float64 `json:"last_price"`
	Pnl       float64 `json:"pnl"`
}

// Position is a one-of: exactly one of the two arms is set.
type Position struct {
	StockPosition  *StockPosition  `json:"stock_position,omitempty"`
	FuturePosition *FuturePosition `json:"future_position,omitempty"`
}

// ListPositionsRequest lists open positions for the stock account.
type ListPositionsRequest struct{}

// ListPositionsResponse lists open positions.
type ListPositionsResponse struct {
	Positions []*Position `json:"positions"`
}

// StockPositionDetail is the wire form of one stock lot.
type StockPositionDetail struct {
	Date             string         `json:"date"`
	Code             string         `json:"code"`
	Quantity         int32          `json:"quantity"`
	Price            float64        `json:"price"`
	LastPrice        float64        `json:"last_price"`
	Pnl              float64        `json:"pnl"`
	Dseq             string         `json:"dseq"`
	Direction        Action         `json:"direction"`
	Currency         Currency       `json:"currency"`
	Fee              float64        `json:"fee"`
	Cond             StockOrderCond `json:"cond"`
	ExDividends      float64        `json:"ex_dividends"`
	Interest         float64        `json:"interest"`
	MargintradingAmt int32          `json:"margintrading_amt"`
	Collateral       int32          `json:"collateral"`
}

// FuturePositionDetail is the wire form of one futures lot.
type FuturePositionDetail struct {
	Date          string   `json:"date"`
	Code          string   `json:"code"`
	Quantity      int32    `json:"quantity"`
	Price         float64  `json:"price"`
	LastPrice     float64  `json:"last_price"`
	Pnl           float64  `json:"pnl"`
	Dseq          string   `json:"dseq"`
	Direction     Action   `json:"direction"`
	Currency      Currency `json:"currency"`
	Fee           float64  `json:"fee"`
	EntryQuantity int32    `json:"entry_quantity"`
}

// PositionDetail is a one-of over the two lot kinds.
type PositionDetail struct {
	StockDetail  *StockPositionDetail  `json:"stock_detail,omitempty"`
	FutureDetail *FuturePositionDetail `json:"future_detail,omitempty"`
}

// ListPositionDetailRequest selects the position to expand.
type ListPositionDetailRequest struct {
	DetailID int32 `json:"detail_id"`
}

// ListPositionDetailResponse lists the lots of one position.
type ListPositionDetailResponse struct {
	Details []*PositionDetail `json:"details"`
}

// StockProfitLoss is the wire form of a realized stock PnL entry.
type StockProfitLoss struct {
	ID       int32          `json:"id"`
	Dseq     string         `json:"dseq"`
	Code     string         `json:"code"`
	Quantity int32          `json:"quantity"`
	Price    float64        `json:"price"`
	Pnl      float64        `json:"pnl"`
	PrRatio  float64        `json:"pr_ratio"`
	Cond     StockOrderCond `json:"cond"`
	Date     string         `json:"date"`
	Seqno    string         `json:"seqno"`
}

// FutureProfitLoss is the wire form of a realized futures PnL entry.
type FutureProfitLoss struct {
	ID         int32   `json:"id"`
	Date       string  `json:"date"`
	Code       string  `json:"code"`
	Quantity   int32   `json:"quantity"`
	EntryPrice float64 `json:"entry_price"`
	CoverPrice float64 `json:"cover_price"`
	Direction  Action  `json:"direction"`
	Pnl        float64 `json:"pnl"`
	Tax        float64 `json:"tax"`
	Fee        float64 `json:"fee"`
}

// ProfitLoss is a one-of over the two realized-PnL kinds.
type ProfitLoss struct {
	StockPnl  *StockProfitLoss  `json:"stock_pnl,omitempty"`
	FuturePnl *FutureProfitLoss `json:"future_pnl,omitempty"`
}

// ListProfitLossRequest lists realized PnL for the stock account.
type ListProfitLossRequest struct{}

// ListProfitLossResponse lists realized PnL entries.
type ListProfitLossResponse struct {
	ProfitLosses []*ProfitLoss `json:"profit_losses"`
}

// StockProfitDetail is the wire form of a stock PnL breakdown row.
type StockProfitDetail struct {
	Date                string         `json:"date"`
	Code                string         `json:"code"`
	Quantity            int32          `json:"quantity"`
	Dseq                string         `json:"dseq"`
	Price               float64        `json:"price"`
	Cost                float64        `json:"cost"`
	Interest            float64        `json:"interest"`
	Fee                 float64        `json:"fee"`
	Tax                 float64        `json:"tax"`
	Currency            Currency       `json:"currency"`
	RepMargintradingAmt float64        `json:"rep_margintrading_amt"`
	RepCollateral       float64        `json:"rep_collateral"`
	RepMargin           float64        `json:"rep_margin"`
	ShortsellingFee     float64        `json:"shortselling_fee"`
	ExDividendAmt       float64        `json:"ex_dividend_amt"`
	TradeType           TradeType      `json:"trade_type"`
	Cond                StockOrderCond `json:"cond"`
}

// FutureProfitDetail is the wire form of a futures PnL breakdown row.
type FutureProfitDetail struct {
	Date       string   `json:"date"`
	Code       string   `json:"code"`
	Quantity   int32    `json:"quantity"`
	Dseq       string   `json:"dseq"`
	Direction  Action   `json:"direction"`
	EntryDate  string   `json:"entry_date"`
	EntryPrice float64  `json:"entry_price"`
	CoverPrice float64  `json:"cover_price"`
	Pnl        float64  `json:"pnl"`
	Fee        float64  `json:"fee"`
	Tax        float64  `json:"tax"`
	Currency   Currency `json:"currency"`
}

// ProfitDetail is a one-of over the two PnL-detail kinds.
type ProfitDetail struct {
	StockDetail  *StockProfitDetail  `json:"stock_detail,omitempty"`
	FutureDetail *FutureProfitDetail `json:"future_detail,omitempty"`
}

// ListProfitLossDetailRequest selects the PnL entry to expand.
type ListProfitLossDetailRequest struct {
	DetailID int32 `json:"detail_id"`
}

// ListProfitLossDetailResponse lists PnL breakdown rows.
type ListProfitLossDetailResponse struct {
	Details []*ProfitDetail `json:"details"`
}

// StockProfitLossSummary is the wire form of a per-code stock summary.
type StockProfitLossSummary struct {
	Code       string         `json:"code"`
	Quantity   int32          `json:"quantity"`
	EntryPrice float64        `json:"entry_price"`
	CoverPrice float64        `json:"cover_price"`
	EntryCost  float64        `json:"entry_cost"`
	CoverCost  float64        `json:"cover_cost"`
	BuyCost    float64        `json:"buy_cost"`
	SellCost   float64        `json:"sell_cost"`
	Pnl        float64        `json:"pnl"`
	PrRatio    float64        `json:"pr_ratio"`
	Currency   Currency       `json:"currency"`
	Cond       StockOrderCond `json:"cond"`
}

// FutureProfitLossSummary is the wire form of a per-code futures summary.
type FutureProfitLossSummary struct {
	Code       string   `json:"code"`
	Quantity   int32    `json:"quantity"`
	EntryPrice float64  `json:"entry_price"`
	CoverPrice float64  `json:"cover_price"`
	Direction  Action   `json:"direction"`
	Pnl        float64  `json:"pnl"`
	Tax        float64  `json:"tax"`
	Fee        float64  `json:"fee"`
	Currency   Currency `json:"currency"`
}

// ProfitLossSummary is a one-of over the two summary kinds.
type ProfitLossSummary struct {
	StockSummary  *StockProfitLossSummary  `json:"stock_summary,omitempty"`
	FutureSummary *FutureProfitLossSummary `json:"future_summary,omitempty"`
}

// ListProfitLossSummaryRequest lists per-code PnL summaries.
type ListProfitLossSummaryRequest struct{}

// ListProfitLossSummaryResponse lists per-code PnL summaries.
type ListProfitLossSummaryResponse struct {
	Summaries []*ProfitLossSummary `json:"summaries"`
}

// Settlement is one settlement ladder row.
type Settlement struct {
	Date    string  `json:"date"`
	Amount  float64 `json:"amount"`
	TMoney  float64 `json:"t_money"`
	TDay    string  `json:"t_day"`
	T1Money float64 `json:"t1_money"`
	T1Day   string  `json:"t1_day"`
	T2Money float64 `json:"t2_money"`
	T2Day   string  `json:"t2_day"`
}

// GetSettlementsRequest fetches the settlement ladder.
type GetSettlementsRequest struct{}

// GetSettlementsResponse lists settlement rows.
type GetSettlementsResponse struct {
	Settlements []*Settlement `json:"settlements"`
}

// GetMarginRequest fetches the futures/options margin report.
type GetMarginRequest struct{}

// Margin is the wire form of the margin report.
type Margin struct {
	Equity                    float64 `json:"equity"`
	EquityAmount              float64 `json:"equity_amount"`
	AvailableMargin           float64 `json:"available_margin"`
	InitialMargin             float64 `json:"initial_margin"`
	MaintenanceMargin         float64 `json:"maintenance_margin"`
	YesterdayBalance          float64 `json:"yesterday_balance"`
	TodayBalance              float64 `json:"today_balance"`
	DepositWithdrawal         float64 `json:"deposit_withdrawal"`
	Fee                       float64 `json:"fee"`
	Tax                       float64 `json:"tax"`
	MarginCall                float64 `json:"margin_call"`
	RiskIndicator             float64 `json:"risk_indicator"`
	RoyaltyRevenueExpenditure float64 `json:"royalty_revenue_expenditure"`
	OptionOpenbuyMarketValue  float64 `json:"option_openbuy_market_value"`
	OptionOpensellMarketValue float64 `json:"option_opensell_market_value"`
	OptionOpenPosition        int32   `json:"option_open_position"`
	OptionSettleProfitloss    float64 `json:"option_settle_profitloss"`
	FutureOpenPosition        int32   `json:"future_open_position"`
	TodayFutureOpenPosition   int32   `json:"today_future_open_position"`
	FutureSettleProfitloss    float64 `json:"future_settle_profitloss"`
}

// GetTradingLimitsRequest fetches the stock account's limits.
type GetTradingLimitsRequest struct{}

// TradingLimits is the wire form of the order-value limits.
type TradingLimits struct {
	TradingLimit     float64 `json:"trading_limit"`
	TradingUsed      float64 `json:"trading_used"`
	TradingAvailable float64 `json:"trading_available"`
	MarginLimit      float64 `json:"margin_limit"`
	MarginUsed       float64 `json:"margin_used"`
	MarginAvailable  float64 `json:"margin_available"`
	ShortLimit       float64 `json:"short_limit"`
	ShortUsed        float64 `json:"short_used"`
	ShortAvailable   float64 `json:"short_available"`
}

// GetStockReserveSummaryRequest fetches reserved-stock totals.
type GetStockReserveSummaryRequest struct{}

// ReserveStocksSummaryResponse carries the broker result as JSON text.
type ReserveStocksSummaryResponse struct {
	ResponseJSON string `json:"response_json"`
}

// GetStockReserveDetailRequest fetches reserve application rows.
type GetStockReserveDetailRequest struct{}

// ReserveStocksDetailResponse carries the broker result as JSON text.
type ReserveStocksDetailResponse struct {
	ResponseJSON string `json:"response_json"`
}

// ReserveStockRequest applies to reserve shares of a stock.
type ReserveStockRequest struct {
	Contract *Contract `json:"contract"`
	Share    int32     `json:"share"`
}

// ReserveStockResponse carries the broker result as JSON text.
type ReserveStockResponse struct {
	ResponseJSON string `json:"response_json"`
}

// GetEarmarkingDetailRequest fetches earmarking application rows.
type GetEarmarkingDetailRequest struct{}

// EarmarkStocksDetailResponse carries the broker result as JSON text.
type EarmarkStocksDetailResponse struct {
	ResponseJSON string `json:"response_json"`
}

// ReserveEarmarkingRequest applies for earmarking.
type ReserveEarmarkingRequest struct {
	Contract *Contract `json:"contract"`
	Share    int32     `json:"share"`
	Price    float64   `json:"price"`
}

// ReserveEarmarkingResponse carries the broker result as JSON text.
type ReserveEarmarkingResponse struct {
	ResponseJSON string `json:"response_json"`
}

// GetSnapshotsRequest fetches quotes for a list of contract codes.
type GetSnapshotsRequest struct {
	ContractCodes []string `json:"contract_codes"`
}

// Snapshot is the wire form of one quote.
type Snapshot struct {
	TS              int64      `json:"ts"`
	Code            string     `json:"code"`
	Exchange        Exchange   `json:"exchange"`
	Open            float64    `json:"open"`
	High            float64    `json:"high"`
	Low             float64    `json:"low"`
	Close           float64    `json:"close"`
	ChangePrice     float64    `json:"change_price"`
	ChangeRate      float64    `json:"change_rate"`
	AveragePrice    float64    `json:"average_price"`
	Volume          int32      `json:"volume"`
	TotalVolume     int32      `json:"total_volume"`
	Amount          int64      `json:"amount"`
	TotalAmount     int64      `json:"total_amount"`
	BuyPrice        float64    `json:"buy_price"`
	BuyVolume       float64    `json:"buy_volume"`
	SellPrice       float64    `json:"sell_price"`
	SellVolume      int32      `json:"sell_volume"`
	TickType        TickType   `json:"tick_type"`
	ChangeType      ChangeType `json:"change_type"`
	YesterdayVolume float64    `json:"yesterday_volume"`
	VolumeRatio     float64    `json:"volume_ratio"`
}

// GetSnapshotsResponse lists quotes in request order.
type GetSnapshotsResponse struct {
	Snapshots []*Snapshot `json:"snapshots"`
}

// GetTicksRequest fetches one contract's ticks for a date.
type GetTicksRequest struct {
	ContractCode string `json:"contract_code"`
	Date         string `json:"date"`
}

// Ticks is the column-oriented tick series.
type Ticks struct {
	TS        []int64   `json:"ts"`
	Close     []float64 `json:"close"`
	Volume    []int64   `json:"volume"`
	BidPrice  []float64 `json:"bid_price"`
	BidVolume []int64   `json:"bid_volume"`
	AskPrice  []float64 `json:"ask_price"`
	AskVolume []int64   `json:"ask_volume"`
	TickType  []int32   `json:"tick_type"`
}

// GetKbarsRequest fetches one contract's candles for a date range.
type GetKbarsRequest struct {
	ContractCode string `json:"contract_code"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
}

// Kbars is the column-oriented candle series.
type Kbars struct {
	TS     []int64   `json:"ts"`
	Open   []float64 `json:"open"`
	High   []float64 `json:"high"`
	Low    []float64 `json:"low"`
	Close  []float64 `json:"close"`
	Volume []int64   `json:"volume"`
	Amount []float64 `json:"amount"`
}

// GetDailyQuotesRequest fetches end-of-day quotes for a trading day
// (YYYY-MM-DD).
type GetDailyQuotesRequest struct {
	Date string `json:"date"`
}

// DailyQuotes is the column-oriented end-of-day quote table.
type DailyQuotes struct {
	Code        []string  `json:"code"`
	Open        []float64 `json:"open"`
	High        []float64 `json:"high"`
	Low         []float64 `json:"low"`
	Close       []float64 `json:"close"`
	Volume      []int64   `json:"volume"`
	Date        []string  `json:"date"`
	Transaction []int64   `json:"transaction"`
	Amount      []float64 `json:"amount"`
}

// CreditEnquiresRequest fetches credit availability for stock codes.
type CreditEnquiresRequest struct {
	ContractCodes []string `json:"contract_codes"`
}

// CreditEnquire is one stock's credit availability.
type CreditEnquire struct {
	StockID    string `json:"stock_id"`
	MarginUnit int32  `json:"margin_unit"`
	ShortUnit  int32  `json:"short_unit"`
	UpdateTime string `json:"update_time"`
	System     string `json:"system"`
}

// CreditEnquiresResponse lists credit availability rows.
type CreditEnquiresResponse struct {
	CreditEnquires []*CreditEnquire `json:"credit_enquires"`
}

// GetShortStockSourcesRequest fetches borrowable shares for stock codes.
type GetShortStockSourcesRequest struct {
	ContractCodes []string `json:"contract_codes"`
}

// ShortStockSource is one stock's borrowable-share figure.
type ShortStockSource struct {
	Code             string  `json:"code"`
	ShortStockSource float64 `json:"short_stock_source"`
	TS               int64   `json:"ts"`
}

// GetShortStockSourcesResponse lists borrowable-share rows.
type GetShortStockSourcesResponse struct {
	Sources []*ShortStockSource `json:"sources"`
}

// GetScannersRequest runs a market scanner.
type GetScannersRequest struct {
	ScannerType ScannerType `json:"scanner_type"`
	Ascending   bool        `json:"ascending"`
	Date        string      `json:"date"`
	Count       int32       `json:"count"`
}

// ScannerItem is one ranked scanner row.
type ScannerItem struct {
	Code            string     `json:"code"`
	Name            string     `json:"name"`
	Date            string     `json:"date"`
	TS              int64      `json:"ts"`
	Open            float64    `json:"open"`
	High            float64    `json:"high"`
	Low             float64    `json:"low"`
	Close           float64    `json:"close"`
	PriceRange      float64    `json:"price_range"`
	TickType        TickType   `json:"tick_type"`
	ChangePrice     float64    `json:"change_price"`
	ChangeType      ChangeType `json:"change_type"`
	AveragePrice    float64    `json:"average_price"`
	Volume          int32      `json:"volume"`
	TotalVolume     int32      `json:"total_volume"`
	Amount          int64      `json:"amount"`
	TotalAmount     int64      `json:"total_amount"`
	YesterdayVolume int32      `json:"yesterday_volume"`
	VolumeRatio     float64    `json:"volume_ratio"`
	BuyPrice        float64    `json:"buy_price"`
	BuyVolume       int32      `json:"buy_volume"`
	SellPrice       float64    `json:"sell_price"`
	SellVolume      int32      `json:"sell_volume"`
	BidOrders       int32      `json:"bid_orders"`
	BidVolumes      int32      `json:"bid_volumes"`
	AskOrders       int32      `json:"ask_orders"`
	AskVolumes      int32      `json:"ask_volumes"`
	RankValue       float64    `json:"rank_value"`
}

// GetScannersResponse lists ranked scanner rows.
type GetScannersResponse struct {
	Scanners []*ScannerItem `json:"scanners"`
}

// Punish is the disposition-stock announcement table.
type Punish struct {
	Code          []string  `json:"code"`
	StartDate     []string  `json:"start_date"`
	EndDate       []string  `json:"end_date"`
	Interval      []int32   `json:"interval"`
	UpdatedAt     []string  `json:"updated_at"`
	UnitLimit     []float64 `json:"unit_limit"`
	TotalLimit    []float64 `json:"total_limit"`
	Description   []string  `json:"description"`
	AnnouncedDate []string  `json:"announced_date"`
}

// Notice is the attention-stock announcement table.
type Notice struct {
	Code          []string  `json:"code"`
	Reason        []string  `json:"reason"`
	UpdatedAt     []string  `json:"updated_at"`
	Close         []float64 `json:"close"`
	AnnouncedDate []string  `json:"announced_date"`
}

// FetchContractsRequest triggers a contract universe download.
type FetchContractsRequest struct {
	ContractDownload bool `json:"contract_download"`
}

// GetCAExpireTimeRequest asks when the signing certificate expires.
type GetCAExpireTimeRequest struct {
	PersonID string `json:"person_id"`
}

// GetCAExpireTimeResponse carries the certificate expiry timestamp.
type GetCAExpireTimeResponse struct {
	ExpireTime string `json:"expire_time"`
}

// SubscribeTradeRequest enables order-event delivery.
type SubscribeTradeRequest struct{}

// SubscribeTradeResponse reports whether the subscription was accepted.
type SubscribeTradeResponse struct {
	Success bool `json:"success"`
}

// UnsubscribeTradeRequest disables order-event delivery.
type UnsubscribeTradeRequest struct{}

// UnsubscribeTradeResponse reports whether the unsubscription was
// accepted.
type UnsubscribeTradeResponse struct {
	Success bool `json:"success"`
}
