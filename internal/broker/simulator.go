package broker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"tradegate/internal/domain"
)

// Compile-time interface check.
var _ Session = (*Simulator)(nil)

// Simulator is an in-memory Session for paper trading and tests. Orders
// fill immediately at their limit price; market data is synthesized
// from each contract's reference price. State never leaves the process.
type Simulator struct {
	mu          sync.Mutex
	loggedIn    bool
	signed      bool
	stockAcct   *domain.Account
	futoptAcct  *domain.Account
	book        *domain.ContractBook
	trades      []*domain.Trade
	comboTrades []*domain.ComboTrade
	seqno       int
	subscribed  map[string]bool
	clock       func() time.Time
}

// NewSimulator returns a simulator with a small seeded contract
// universe covering all four categories.
func NewSimulator() *Simulator {
	return &Simulator{
		book:       seedContracts(),
		subscribed: make(map[string]bool),
		clock:      time.Now,
	}
}

func seedContracts() *domain.ContractBook {
	book := domain.NewContractBook()
	stocks := []*domain.Contract{
		{SecurityType: domain.SecurityTypeStock, Exchange: domain.ExchangeTSE, Code: "2330", Symbol: "TSE2330", Name: "TSMC", Currency: domain.CurrencyTWD, Category: "24", Unit: 1000, Reference: 980, LimitUp: 1078, LimitDown: 882, DayTrade: domain.DayTradeYes, MarginTradingBalance: 4000, ShortSellingBalance: 1200},
		{SecurityType: domain.SecurityTypeStock, Exchange: domain.ExchangeTSE, Code: "2317", Symbol: "TSE2317", Name: "Hon Hai", Currency: domain.CurrencyTWD, Category: "31", Unit: 1000, Reference: 178.5, LimitUp: 196, LimitDown: 160.5, DayTrade: domain.DayTradeYes, MarginTradingBalance: 2500, ShortSellingBalance: 800},
		{SecurityType: domain.SecurityTypeStock, Exchange: domain.ExchangeOTC, Code: "6510", Symbol: "OTC6510", Name: "WinWay", Currency: domain.CurrencyTWD, Category: "26", Unit: 1000, Reference: 1420, LimitUp: 1562, LimitDown: 1278, DayTrade: domain.DayTradeOnlyBuy},
	}
	for _, c := range stocks {
		book.Stocks[c.Code] = c
	}
	futures := []*domain.Contract{
		{SecurityType: domain.SecurityTypeFuture, Exchange: domain.ExchangeTAIFEX, Code: "TXFI5", Symbol: "TXF202509", Name: "TAIEX Futures", Currency: domain.CurrencyTWD, DeliveryMonth: "202509", DeliveryDate: "2025/09/17", UnderlyingKind: "I", UnderlyingCode: "001", Unit: 1, Multiplier: 200, Reference: 24100, LimitUp: 26510, LimitDown: 21690},
		{SecurityType: domain.SecurityTypeFuture, Exchange: domain.ExchangeTAIFEX, Code: "MXFI5", Symbol: "MXF202509", Name: "Mini TAIEX Futures", Currency: domain.CurrencyTWD, DeliveryMonth: "202509", DeliveryDate: "2025/09/17", UnderlyingKind: "I", UnderlyingCode: "001", Unit: 1, Multiplier: 50, Reference: 24100, LimitUp: 26510, LimitDown: 21690},
	}
	for _, c := range futures {
		book.Futures[c.Code] = c
	}
	options := []*domain.Contract{
		{SecurityType: domain.SecurityTypeOption, Exchange: domain.ExchangeTAIFEX, Code: "TXO24000I5", Symbol: "TXO202509C24000", Name: "TAIEX Options", Currency: domain.CurrencyTWD, DeliveryMonth: "202509", DeliveryDate: "2025/09/17", StrikePrice: 24000, OptionRight: domain.OptionRightCall, UnderlyingKind: "I", UnderlyingCode: "001", Multiplier: 50, Reference: 310},
		{SecurityType: domain.SecurityTypeOption, Exchange: domain.ExchangeTAIFEX, Code: "TXO24000U5", Symbol: "TXO202509P24000", Name: "TAIEX Options", Currency: domain.CurrencyTWD, DeliveryMonth: "202509", DeliveryDate: "2025/09/17", StrikePrice: 24000, OptionRight: domain.OptionRightPut, UnderlyingKind: "I", UnderlyingCode: "001", Multiplier: 50, Reference: 295},
	}
	for _, c := range options {
		book.Options[c.Code] = c
	}
	book.Indexes["001"] = &domain.Contract{SecurityType: domain.SecurityTypeIndex, Exchange: domain.ExchangeTSE, Code: "001", Symbol: "TSE001", Name: "TAIEX", Currency: domain.CurrencyTWD, Reference: 24050}
	return book
}

// ---- session lifecycle ----

func (s *Simulator) Login(ctx context.Context, apiKey, secretKey string) ([]domain.Account, error) {
	if apiKey == "" || secretKey == "" {
		return nil, fmt.Errorf("login failed: missing credentials")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedIn = true
	s.stockAcct = &domain.Account{AccountType: "S", PersonID: "A123456789", BrokerID: "9A95", AccountID: "0501234", Username: "SIM", Signed: s.signed}
	s.futoptAcct = &domain.Account{AccountType: "F", PersonID: "A123456789", BrokerID: "F002000", AccountID: "9100001", Username: "SIM", Signed: s.signed}
	return []domain.Account{*s.stockAcct, *s.futoptAcct}, nil
}

func (s *Simulator) ActivateCA(ctx context.Context, caPath, personID, caPassword string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loggedIn {
		return false, fmt.Errorf("activate ca: not logged in")
	}
	s.signed = true
	s.stockAcct.Signed = true
	s.futoptAcct.Signed = true
	return true, nil
}

func (s *Simulator) Logout(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedIn = false
	s.stockAcct = nil
	s.futoptAcct = nil
	return true, nil
}

func (s *Simulator) StockAccount() *domain.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stockAcct
}

func (s *Simulator) FutOptAccount() *domain.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.futoptAcct
}

func (s *Simulator) Contracts() *domain.ContractBook {
	return s.book
}

func (s *Simulator) FetchContracts(ctx context.Context, contractDownload bool) error {
	return nil
}

func (s *Simulator) Usage(ctx context.Context) (*domain.Usage, error) {
	return &domain.Usage{Connections: 1, Bytes: 1 << 20, LimitBytes: 2 << 30, RemainingBytes: 2<<30 - 1<<20}, nil
}

func (s *Simulator) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Account
	if s.stockAcct != nil {
		out = append(out, *s.stockAcct)
	}
	if s.futoptAcct != nil {
		out = append(out, *s.futoptAcct)
	}
	return out, nil
}

func (s *Simulator) AccountBalance(ctx context.Context) (*domain.AccountBalance, error) {
	return &domain.AccountBalance{Balance: 1_000_000, Date: s.clock()}, nil
}

func (s *Simulator) CAExpireTime(ctx context.Context, personID string) (time.Time, error) {
	return s.clock().AddDate(1, 0, 0), nil
}

// ---- orders ----

func (s *Simulator) nextSeqno() string {
	s.seqno++
	return fmt.Sprintf("%06d", s.seqno)
}

func (s *Simulator) newStatus(order *domain.Order, quantity int) *domain.OrderStatus {
	now := s.clock()
	return &domain.OrderStatus{
		ID:            order.ID,
		Status:        domain.StatusFilled,
		OrderDatetime: now,
		DealQuantity:  quantity,
		OrderQuantity: quantity,
		Deals: []domain.Deal{{
			Seq:      order.Seqno,
			Price:    order.Price,
			Quantity: quantity,
			TS:       now.Unix(),
		}},
	}
}

func (s *Simulator) PlaceOrder(ctx context.Context, contract *domain.Contract, order *domain.Order) (*domain.Trade, error) {
	if order.Quantity <= 0 {
		return nil, fmt.Errorf("place order: quantity must be positive")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o := *order
	o.ID = uuid.NewString()
	o.Seqno = s.nextSeqno()
	o.Ordno = "W" + o.Seqno[2:]
	if o.Account == nil {
		o.Account = s.stockAcct
	}
	trade := &domain.Trade{Contract: contract, Order: &o, Status: s.newStatus(&o, o.Quantity)}
	s.trades = append(s.trades, trade)
	return trade, nil
}

func (s *Simulator) PlaceComboOrder(ctx context.Context, contract *domain.ComboContract, order *domain.ComboOrder) (*domain.ComboTrade, error) {
	if len(contract.Legs) == 0 {
		return nil, fmt.Errorf("place combo order: no legs")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o := *order
	o.ID = uuid.NewString()
	o.Seqno = s.nextSeqno()
	o.Ordno = "W" + o.Seqno[2:]
	if o.Account == nil {
		o.Account = s.futoptAcct
	}
	trade := &domain.ComboTrade{Contract: contract, Order: &o, Status: s.newStatus(&o.Order, o.Quantity)}
	s.comboTrades = append(s.comboTrades, trade)
	return trade, nil
}

func (s *Simulator) UpdateOrder(ctx context.Context, trade *domain.Trade, upd domain.OrderUpdate) (*domain.Trade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.trades {
		if t.Order.Seqno != trade.Order.Seqno {
			continue
		}
		if upd.Price != 0 {
			t.Order.Price = upd.Price
			t.Status.ModifiedPrice = upd.Price
		}
		if upd.Quantity != 0 {
			t.Order.Quantity = upd.Quantity
			t.Status.OrderQuantity = upd.Quantity
		}
		t.Status.ModifiedTime = s.clock()
		return t, nil
	}
	return nil, fmt.Errorf("update order: unknown seqno %s", trade.Order.Seqno)
}

func (s *Simulator) CancelOrder(ctx context.Context, trade *domain.Trade) (*domain.Trade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.trades {
		if t.Order.Seqno == trade.Order.Seqno {
			t.Status.Status = domain.StatusCancelled
			t.Status.CancelQuantity = t.Order.Quantity
			return t, nil
		}
	}
	return nil, fmt.Errorf("cancel order: unknown seqno %s", trade.Order.Seqno)
}

func (s *Simulator) CancelComboOrder(ctx context.Context, trade *domain.ComboTrade) (*domain.ComboTrade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.comboTrades {
		if t.Order.Seqno == trade.Order.Seqno {
			t.Status.Status = domain.StatusCancelled
			t.Status.CancelQuantity = t.Order.Quantity
			return t, nil
		}
	}
	return nil, fmt.Errorf("cancel combo order: unknown seqno %s", trade.Order.Seqno)
}

func (s *Simulator) UpdateStatus(ctx context.Context, account domain.Account) error {
	return nil
}

func (s *Simulator) UpdateComboStatus(ctx context.Context, account domain.Account) error {
	return nil
}

func (s *Simulator) ListTrades(ctx context.Context) ([]*domain.Trade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Trade, len(s.trades))
	copy(out, s.trades)
	return out, nil
}

func (s *Simulator) ListComboTrades(ctx context.Context) ([]*domain.ComboTrade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.ComboTrade, len(s.comboTrades))
	copy(out, s.comboTrades)
	return out, nil
}

func (s *Simulator) OrderDealRecords(ctx context.Context, account domain.Account) ([]domain.OrderDealRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.OrderDealRecord
	for _, t := range s.trades {
		for _, d := range t.Status.Deals {
			out = append(out, domain.OrderDealRecord{
				Code:     t.Contract.Code,
				Action:   t.Order.Action,
				Price:    d.Price,
				Quantity: d.Quantity,
				TS:       time.Unix(d.TS, 0),
			})
		}
	}
	return out, nil
}

// ---- account queries ----

func (s *Simulator) ListPositions(ctx context.Context, account domain.Account) ([]domain.Position, error) {
	if account.AccountType == "F" {
		return []domain.Position{
			{Future: &domain.FuturePosition{ID: 1, Code: "TXFI5", Direction: domain.ActionBuy, Quantity: 2, Price: 24000, LastPrice: 24100, Pnl: 40000}},
		}, nil
	}
	return []domain.Position{
		{Stock: &domain.StockPosition{ID: 1, Code: "2330", Direction: domain.ActionBuy, Quantity: 3, Price: 950, LastPrice: 980, Pnl: 90000, YdQuantity: 3, Cond: domain.StockOrderCondCash}},
		{Stock: &domain.StockPosition{ID: 2, Code: "2317", Direction: domain.ActionBuy, Quantity: 5, Price: 175, LastPrice: 178.5, Pnl: 17500, YdQuantity: 5, Cond: domain.StockOrderCondCash}},
	}, nil
}

func (s *Simulator) ListPositionDetail(ctx context.Context, account domain.Account, detailID int) ([]domain.PositionDetail, error) {
	day := s.clock().Format("2006-01-02")
	if account.AccountType == "F" {
		return []domain.PositionDetail{
			{Future: &domain.FuturePositionDetail{Date: day, Code: "TXFI5", Quantity: 2, Price: 24000, LastPrice: 24100, Pnl: 40000, Dseq: fmt.Sprintf("%06d", detailID), Direction: domain.ActionBuy, Currency: domain.CurrencyTWD, Fee: 60, EntryQuantity: 2}},
		}, nil
	}
	return []domain.PositionDetail{
		{Stock: &domain.StockPositionDetail{Date: day, Code: "2330", Quantity: 3, Price: 950, LastPrice: 980, Pnl: 90000, Dseq: fmt.Sprintf("%06d", detailID), Direction: domain.ActionBuy, Currency: domain.CurrencyTWD, Fee: 1353, Cond: domain.StockOrderCondCash}},
	}, nil
}

func (s *Simulator) ListProfitLoss(ctx context.Context, account domain.Account) ([]domain.ProfitLoss, error) {
	if account.AccountType == "F" {
		return []domain.ProfitLoss{
			{Future: &domain.FutureProfitLoss{ID: 1, Date: "2025-08-20", Code: "MXFI5", Quantity: 1, EntryPrice: 23800, CoverPrice: 24050, Direction: domain.ActionBuy, Pnl: 12500, Tax: 24, Fee: 40}},
		}, nil
	}
	return []domain.ProfitLoss{
		{Stock: &domain.StockProfitLoss{ID: 1, Dseq: "000101", Code: "2330", Quantity: 1, Price: 980, Pnl: 28000, PrRatio: 2.94, Cond: domain.StockOrderCondCash, Date: "2025-08-20", Seqno: "000101"}},
	}, nil
}

func (s *Simulator) ListProfitLossDetail(ctx context.Context, account domain.Account, detailID int) ([]domain.ProfitDetail, error) {
	if account.AccountType == "F" {
		return []domain.ProfitDetail{
			{Future: &domain.FutureProfitDetail{Date: "2025-08-20", Code: "MXFI5", Quantity: 1, Dseq: fmt.Sprintf("%06d", detailID), Direction: domain.ActionBuy, EntryDate: "2025-08-18", EntryPrice: 23800, CoverPrice: 24050, Pnl: 12500, Fee: 40, Tax: 24, Currency: domain.CurrencyTWD}},
		}, nil
	}
	return []domain.ProfitDetail{
		{Stock: &domain.StockProfitDetail{Date: "2025-08-20", Code: "2330", Quantity: 1, Dseq: fmt.Sprintf("%06d", detailID), Price: 980, Cost: 952000, Fee: 1396, Tax: 2940, Currency: domain.CurrencyTWD, TradeType: domain.TradeTypeCommon, Cond: domain.StockOrderCondCash}},
	}, nil
}

func (s *Simulator) ListProfitLossSummary(ctx context.Context, account domain.Account) ([]domain.ProfitLossSummary, error) {
	if account.AccountType == "F" {
		return []domain.ProfitLossSummary{
			{Future: &domain.FutureProfitLossSummary{Code: "MXFI5", Quantity: 1, EntryPrice: 23800, CoverPrice: 24050, Direction: domain.ActionBuy, Pnl: 12500, Tax: 24, Fee: 40, Currency: domain.CurrencyTWD}},
		}, nil
	}
	return []domain.ProfitLossSummary{
		{Stock: &domain.StockProfitLossSummary{Code: "2330", Quantity: 1, EntryPrice: 952, CoverPrice: 980, EntryCost: 952000, CoverCost: 980000, BuyCost: 952000, SellCost: 980000, Pnl: 28000, PrRatio: 2.94, Currency: domain.CurrencyTWD, Cond: domain.StockOrderCondCash}},
	}, nil
}

func (s *Simulator) Settlements(ctx context.Context, account domain.Account) ([]domain.Settlement, error) {
	now := s.clock()
	return []domain.Settlement{{
		Date:    now,
		Amount:  -952000,
		TMoney:  -952000,
		TDay:    now,
		T1Money: 0,
		T1Day:   now.AddDate(0, 0, 1),
		T2Money: 0,
		T2Day:   now.AddDate(0, 0, 2),
	}}, nil
}

func (s *Simulator) Margin(ctx context.Context, account domain.Account) (*domain.Margin, error) {
	return &domain.Margin{
		Equity:             500000,
		EquityAmount:       540000,
		AvailableMargin:    320000,
		InitialMargin:      184000,
		MaintenanceMargin:  141000,
		YesterdayBalance:   495000,
		TodayBalance:       500000,
		RiskIndicator:      293,
		FutureOpenPosition: 2,
	}, nil
}

func (s *Simulator) TradingLimits(ctx context.Context, account domain.Account) (*domain.TradingLimits, error) {
	return &domain.TradingLimits{
		TradingLimit:     5_000_000,
		TradingUsed:      952_000,
		TradingAvailable: 4_048_000,
		MarginLimit:      2_000_000,
		MarginAvailable:  2_000_000,
		ShortLimit:       2_000_000,
		ShortAvailable:   2_000_000,
	}, nil
}

// ---- reserve / earmark ----

func (s *Simulator) StockReserveSummary(ctx context.Context, account domain.Account) (*domain.ReserveStocksSummary, error) {
	return &domain.ReserveStocksSummary{Status: "success", Stocks: []domain.ReserveStockSummary{
		{Code: "2330", Reserved: 1000, Available: 2000},
	}}, nil
}

func (s *Simulator) StockReserveDetail(ctx context.Context, account domain.Account) (*domain.ReserveStocksDetail, error) {
	return &domain.ReserveStocksDetail{Status: "success", Details: []domain.ReserveStockDetail{
		{Code: "2330", Share: 1000, Date: s.clock().Format("2006-01-02")},
	}}, nil
}

func (s *Simulator) ReserveStock(ctx context.Context, account domain.Account, contract *domain.Contract, share int) (*domain.ReserveStockResult, error) {
	if share <= 0 {
		return &domain.ReserveStockResult{Code: contract.Code, Share: share, Accepted: false, Msg: "share must be positive"}, nil
	}
	return &domain.ReserveStockResult{Code: contract.Code, Share: share, Accepted: true}, nil
}

func (s *Simulator) EarmarkingDetail(ctx context.Context, account domain.Account) (*domain.EarmarkingDetail, error) {
	return &domain.EarmarkingDetail{Status: "success", Details: []domain.EarmarkDetail{
		{Code: "2330", Share: 1000, Price: 980, Date: s.clock().Format("2006-01-02")},
	}}, nil
}

func (s *Simulator) ReserveEarmarking(ctx context.Context, account domain.Account, contract *domain.Contract, share int, price float64) (*domain.ReserveEarmarkingResult, error) {
	if share <= 0 || price <= 0 {
		return &domain.ReserveEarmarkingResult{Code: contract.Code, Share: share, Price: price, Accepted: false, Msg: "share and price must be positive"}, nil
	}
	return &domain.ReserveEarmarkingResult{Code: contract.Code, Share: share, Price: price, Accepted: true}, nil
}

// ---- market data ----

func (s *Simulator) Snapshots(ctx context.Context, contracts []*domain.Contract) ([]domain.Snapshot, error) {
	now := s.clock()
	out := make([]domain.Snapshot, 0, len(contracts))
	for _, c := range contracts {
		ref := c.Reference
		out = append(out, domain.Snapshot{
			TS:           now.UnixNano(),
			Code:         c.Code,
			Exchange:     c.Exchange,
			Open:         ref,
			High:         ref * 1.01,
			Low:          ref * 0.99,
			Close:        ref * 1.005,
			ChangePrice:  ref * 0.005,
			ChangeRate:   0.5,
			AveragePrice: ref,
			Volume:       10,
			TotalVolume:  12345,
			Amount:       int64(ref * 10),
			TotalAmount:  int64(ref * 12345),
			BuyPrice:     ref * 1.004,
			BuyVolume:    50,
			SellPrice:    ref * 1.006,
			SellVolume:   40,
			TickType:     domain.TickTypeBuy,
			ChangeType:   domain.ChangeTypeUp,
			VolumeRatio:  1.2,
		})
	}
	return out, nil
}

func (s *Simulator) Ticks(ctx context.Context, contract *domain.Contract, date string) (*domain.Ticks, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("ticks: bad date %q: %w", date, err)
	}
	base := day.Add(9 * time.Hour)
	ref := contract.Reference
	out := &domain.Ticks{}
	for i := 0; i < 10; i++ {
		out.TS = append(out.TS, base.Add(time.Duration(i)*time.Second).UnixNano())
		out.Close = append(out.Close, ref+float64(i%3))
		out.Volume = append(out.Volume, int64(1+i%4))
		out.BidPrice = append(out.BidPrice, ref-1)
		out.BidVolume = append(out.BidVolume, 30)
		out.AskPrice = append(out.AskPrice, ref+1)
		out.AskVolume = append(out.AskVolume, 25)
		out.TickType = append(out.TickType, i%3)
	}
	return out, nil
}

func (s *Simulator) Kbars(ctx context.Context, contract *domain.Contract, start, end string) (*domain.Kbars, error) {
	from, err := time.Parse("2006-01-02", start)
	if err != nil {
		return nil, fmt.Errorf("kbars: bad start %q: %w", start, err)
	}
	if _, err := time.Parse("2006-01-02", end); err != nil {
		return nil, fmt.Errorf("kbars: bad end %q: %w", end, err)
	}
	base := from.Add(9 * time.Hour)
	ref := contract.Reference
	out := &domain.Kbars{}
	for i := 0; i < 10; i++ {
		out.TS = append(out.TS, base.Add(time.Duration(i)*time.Minute).UnixNano())
		out.Open = append(out.Open, ref)
		out.High = append(out.High, ref*1.002)
		out.Low = append(out.Low, ref*0.998)
		out.Close = append(out.Close, ref*1.001)
		out.Volume = append(out.Volume, int64(100+i))
		out.Amount = append(out.Amount, ref*float64(100+i))
	}
	return out, nil
}

func (s *Simulator) DailyQuotes(ctx context.Context, day time.Time) (*domain.DailyQuotes, error) {
	out := &domain.DailyQuotes{}
	for _, c := range s.book.Stocks {
		out.Code = append(out.Code, c.Code)
		out.Open = append(out.Open, c.Reference)
		out.High = append(out.High, c.Reference*1.01)
		out.Low = append(out.Low, c.Reference*0.99)
		out.Close = append(out.Close, c.Reference*1.005)
		out.Volume = append(out.Volume, 12345)
		out.Date = append(out.Date, day)
		out.Transaction = append(out.Transaction, 4567)
		out.Amount = append(out.Amount, c.Reference*12345)
	}
	return out, nil
}

func (s *Simulator) CreditEnquires(ctx context.Context, contracts []*domain.Contract) ([]domain.CreditEnquire, error) {
	now := s.clock().Format("2006-01-02 15:04:05")
	out := make([]domain.CreditEnquire, 0, len(contracts))
	for _, c := range contracts {
		out = append(out, domain.CreditEnquire{
			StockID:    c.Code,
			MarginUnit: c.MarginTradingBalance,
			ShortUnit:  c.ShortSellingBalance,
			UpdateTime: now,
			System:     "sim",
		})
	}
	return out, nil
}

func (s *Simulator) ShortStockSources(ctx context.Context, contracts []*domain.Contract) ([]domain.ShortStockSource, error) {
	now := s.clock().UnixNano()
	out := make([]domain.ShortStockSource, 0, len(contracts))
	for _, c := range contracts {
		out = append(out, domain.ShortStockSource{
			Code:             c.Code,
			ShortStockSource: float64(c.ShortSellingBalance),
			TS:               now,
		})
	}
	return out, nil
}

func (s *Simulator) Scanners(ctx context.Context, query domain.ScannerQuery) ([]domain.ScannerItem, error) {
	count := query.Count
	if count <= 0 || count > len(s.book.Stocks) {
		count = len(s.book.Stocks)
	}
	now := s.clock()
	var out []domain.ScannerItem
	for _, c := range s.book.Stocks {
		if len(out) == count {
			break
		}
		out = append(out, domain.ScannerItem{
			Code:        c.Code,
			Name:        c.Name,
			Date:        query.Date,
			TS:          now.UnixNano(),
			Open:        c.Reference,
			High:        c.Reference * 1.01,
			Low:         c.Reference * 0.99,
			Close:       c.Reference * 1.005,
			PriceRange:  c.Reference * 0.02,
			TickType:    domain.TickTypeBuy,
			ChangePrice: c.Reference * 0.005,
			ChangeType:  domain.ChangeTypeUp,
			TotalVolume: 12345,
			TotalAmount: int64(c.Reference * 12345),
			RankValue:   c.Reference * 12345,
		})
	}
	return out, nil
}

func (s *Simulator) Punish(ctx context.Context) (*domain.Punish, error) {
	now := s.clock()
	return &domain.Punish{
		Code:          []string{"6510"},
		StartDate:     []time.Time{now.AddDate(0, 0, -3)},
		EndDate:       []time.Time{now.AddDate(0, 0, 7)},
		Interval:      []int{5},
		UpdatedAt:     []time.Time{now},
		UnitLimit:     []float64{10},
		TotalLimit:    []float64{30},
		Description:   []string{"matched every 5 minutes"},
		AnnouncedDate: []time.Time{now.AddDate(0, 0, -3)},
	}, nil
}

func (s *Simulator) Notice(ctx context.Context) (*domain.Notice, error) {
	now := s.clock()
	return &domain.Notice{
		Code:          []string{"6510"},
		Reason:        []string{"price volatility"},
		UpdatedAt:     []time.Time{now},
		Close:         []float64{1420},
		AnnouncedDate: []time.Time{now},
	}, nil
}

// ---- order event subscription ----

func (s *Simulator) SubscribeTrade(ctx context.Context, account domain.Account) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribed[account.AccountID] = true
	return true, nil
}

func (s *Simulator) UnsubscribeTrade(ctx context.Context, account domain.Account) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subscribed, account.AccountID)
	return true, nil
}
