// Package gateway implements the trading service on top of a broker
// session: it enforces the login gate, translates between wire messages
// and broker-domain values, and resolves contract and trade references.
package gateway

import (
	"time"

	"tradegate/internal/domain"
	"tradegate/internal/translate"
	"tradegate/internal/wire"
)

const (
	dateLayout     = "2006-01-02"
	datetimeLayout = "2006-01-02 15:04:05"
)

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(datetimeLayout)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// ---- accounts ----

func accountToWire(a *domain.Account) *wire.Account {
	if a == nil {
		return nil
	}
	return &wire.Account{
		AccountType: a.AccountType,
		PersonID:    a.PersonID,
		BrokerID:    a.BrokerID,
		AccountID:   a.AccountID,
		Username:    a.Username,
		Signed:      a.Signed,
	}
}

func accountsToWire(accounts []domain.Account) []*wire.Account {
	out := make([]*wire.Account, len(accounts))
	for i := range accounts {
		out[i] = accountToWire(&accounts[i])
	}
	return out
}

func accountToDomain(a *wire.Account) *domain.Account {
	if a == nil {
		return nil
	}
	return &domain.Account{
		AccountType: a.AccountType,
		PersonID:    a.PersonID,
		BrokerID:    a.BrokerID,
		AccountID:   a.AccountID,
		Username:    a.Username,
		Signed:      a.Signed,
	}
}

// ---- contracts ----

func contractToWire(c *domain.Contract) *wire.Contract {
	if c == nil {
		return nil
	}
	return &wire.Contract{
		SecurityType:         translate.SecurityTypes.ToWire(c.SecurityType),
		Exchange:             translate.Exchanges.ToWire(c.Exchange),
		Code:                 c.Code,
		Symbol:               c.Symbol,
		Name:                 c.Name,
		Currency:             translate.Currencies.ToWire(c.Currency),
		Category:             c.Category,
		DeliveryMonth:        c.DeliveryMonth,
		DeliveryDate:         c.DeliveryDate,
		StrikePrice:          c.StrikePrice,
		OptionRight:          translate.OptionRights.ToWire(c.OptionRight),
		UnderlyingKind:       c.UnderlyingKind,
		UnderlyingCode:       c.UnderlyingCode,
		Unit:                 c.Unit,
		Multiplier:           int32(c.Multiplier),
		LimitUp:              c.LimitUp,
		LimitDown:            c.LimitDown,
		Reference:            c.Reference,
		UpdateDate:           c.UpdateDate,
		MarginTradingBalance: int32(c.MarginTradingBalance),
		ShortSellingBalance:  int32(c.ShortSellingBalance),
		DayTrade:             translate.DayTrades.ToWire(c.DayTrade),
		TargetCode:           c.TargetCode,
	}
}

func contractToDomain(c *wire.Contract) *domain.Contract {
	if c == nil {
		return nil
	}
	return &domain.Contract{
		SecurityType:         translate.SecurityTypes.ToDomain(c.SecurityType),
		Exchange:             translate.Exchanges.ToDomain(c.Exchange),
		Code:                 c.Code,
		Symbol:               c.Symbol,
		Name:                 c.Name,
		Currency:             translate.Currencies.ToDomain(c.Currency),
		Category:             c.Category,
		DeliveryMonth:        c.DeliveryMonth,
		DeliveryDate:         c.DeliveryDate,
		StrikePrice:          c.StrikePrice,
		OptionRight:          translate.OptionRights.ToDomain(c.OptionRight),
		UnderlyingKind:       c.UnderlyingKind,
		UnderlyingCode:       c.UnderlyingCode,
		Unit:                 c.Unit,
		Multiplier:           int(c.Multiplier),
		LimitUp:              c.LimitUp,
		LimitDown:            c.LimitDown,
		Reference:            c.Reference,
		UpdateDate:           c.UpdateDate,
		MarginTradingBalance: int(c.MarginTradingBalance),
		ShortSellingBalance:  int(c.ShortSellingBalance),
		DayTrade:             translate.DayTrades.ToDomain(c.DayTrade),
		TargetCode:           c.TargetCode,
	}
}

func comboContractToWire(c *domain.ComboContract) *wire.ComboContract {
	if c == nil {
		return nil
	}
	legs := make([]*wire.ComboBase, len(c.Legs))
	for i := range c.Legs {
		legs[i] = &wire.ComboBase{
			Contract: *contractToWire(&c.Legs[i].Contract),
			Action:   translate.Actions.ToWire(c.Legs[i].Action),
		}
	}
	return &wire.ComboContract{Legs: legs}
}

func comboContractToDomain(c *wire.ComboContract) *domain.ComboContract {
	if c == nil {
		return nil
	}
	out := &domain.ComboContract{Legs: make([]domain.ComboLeg, 0, len(c.Legs))}
	for _, leg := range c.Legs {
		if leg == nil {
			continue
		}
		out.Legs = append(out.Legs, domain.ComboLeg{
			Contract: *contractToDomain(&leg.Contract),
			Action:   translate.Actions.ToDomain(leg.Action),
		})
	}
	return out
}

// ---- orders and trades ----

func orderToWire(o *domain.Order) *wire.Order {
	if o == nil {
		return nil
	}
	return &wire.Order{
		Action:    translate.Actions.ToWire(o.Action),
		Price:     o.Price,
		Quantity:  int32(o.Quantity),
		ID:        o.ID,
		Seqno:     o.Seqno,
		Ordno:     o.Ordno,
		Account:   accountToWire(o.Account),
		PriceType: o.PriceType,
		OrderType: translate.OrderTypes.ToWire(o.OrderType),
	}
}

func orderToDomain(o *wire.Order) *domain.Order {
	if o == nil {
		return nil
	}
	return &domain.Order{
		Action:    translate.Actions.ToDomain(o.Action),
		Price:     o.Price,
		Quantity:  int(o.Quantity),
		ID:        o.ID,
		Seqno:     o.Seqno,
		Ordno:     o.Ordno,
		Account:   accountToDomain(o.Account),
		PriceType: o.PriceType,
		OrderType: translate.OrderTypes.ToDomain(o.OrderType),
	}
}

func comboOrderToWire(o *domain.ComboOrder) *wire.ComboOrder {
	if o == nil {
		return nil
	}
	return &wire.ComboOrder{
		Order:  *orderToWire(&o.Order),
		Octype: translate.FuturesOCTypes.ToWire(o.OCType),
	}
}

func comboOrderToDomain(o *wire.ComboOrder) *domain.ComboOrder {
	if o == nil {
		return nil
	}
	return &domain.ComboOrder{
		Order:  *orderToDomain(&o.Order),
		OCType: translate.FuturesOCTypes.ToDomain(o.Octype),
	}
}

func statusToWire(s *domain.OrderStatus) *wire.OrderStatus {
	if s == nil {
		return nil
	}
	deals := make([]*wire.Deal, len(s.Deals))
	for i, d := range s.Deals {
		deals[i] = &wire.Deal{Seq: d.Seq, Price: d.Price, Quantity: int32(d.Quantity), TS: d.TS}
	}
	return &wire.OrderStatus{
		ID:             s.ID,
		Status:         translate.Statuses.ToWire(s.Status),
		StatusCode:     s.StatusCode,
		OrderDatetime:  formatTime(s.OrderDatetime),
		DealQuantity:   int32(s.DealQuantity),
		CancelQuantity: int32(s.CancelQuantity),
		WebID:          s.WebID,
		Msg:            s.Msg,
		ModifiedTime:   formatTime(s.ModifiedTime),
		ModifiedPrice:  s.ModifiedPrice,
		OrderQuantity:  int32(s.OrderQuantity),
		Deals:          deals,
	}
}

func tradeToWire(t *domain.Trade) *wire.Trade {
	if t == nil {
		return nil
	}
	return &wire.Trade{
		Contract: contractToWire(t.Contract),
		Order:    orderToWire(t.Order),
		Status:   statusToWire(t.Status),
	}
}

func comboTradeToWire(t *domain.ComboTrade) *wire.ComboTrade {
	if t == nil {
		return nil
	}
	return &wire.ComboTrade{
		Contract: comboContractToWire(t.Contract),
		Order:    comboOrderToWire(t.Order),
		Status:   statusToWire(t.Status),
	}
}

func dealRecordToWire(r *domain.OrderDealRecord) *wire.OrderDealRecord {
	return &wire.OrderDealRecord{
		Code:     r.Code,
		Action:   translate.Actions.ToWire(r.Action),
		Price:    r.Price,
		Quantity: int32(r.Quantity),
		TS:       formatTime(r.TS),
	}
}

// ---- positions and PnL ----

func positionToWire(p *domain.Position) *wire.Position {
	out := &wire.Position{}
	switch {
	case p.Stock != nil:
		s := p.Stock
		out.StockPosition = &wire.StockPosition{
			ID:                   int32(s.ID),
			Code:                 s.Code,
			Direction:            translate.Actions.ToWire(s.Direction),
			Quantity:             int32(s.Quantity),
			Price:                s.Price,
			LastPrice:            s.LastPrice,
			Pnl:                  s.Pnl,
			YdQuantity:           int32(s.YdQuantity),
			Cond:                 translate.StockOrderConds.ToWire(s.Cond),
			MarginPurchaseAmount: int32(s.MarginPurchaseAmount),
			Collateral:           int32(s.Collateral),
			ShortSaleMargin:      int32(s.ShortSaleMargin),
			Interest:             int32(s.Interest),
		}
	case p.Future != nil:
		f := p.Future
		out.FuturePosition = &wire.FuturePosition{
			ID:        int32(f.ID),
			Code:      f.Code,
			Direction: translate.Actions.ToWire(f.Direction),
			Quantity:  int32(f.Quantity),
			Price:     f.Price,
			LastPrice: f.LastPrice,
			Pnl:       f.Pnl,
		}
	}
	return out
}

func positionDetailToWire(p *domain.PositionDetail) *wire.PositionDetail {
	out := &wire.PositionDetail{}
	switch {
	case p.Stock != nil:
		s := p.Stock
		out.StockDetail = &wire.StockPositionDetail{
			Date:             s.Date,
			Code:             s.Code,
			Quantity:         int32(s.Quantity),
			Price:            s.Price,
			LastPrice:        s.LastPrice,
			Pnl:              s.Pnl,
			Dseq:             s.Dseq,
			Direction:        translate.Actions.ToWire(s.Direction),
			Currency:         translate.Currencies.ToWire(s.Currency),
			Fee:              s.Fee,
			Cond:             translate.StockOrderConds.ToWire(s.Cond),
			ExDividends:      s.ExDividends,
			Interest:         s.Interest,
			MargintradingAmt: int32(s.MargintradingAmt),
			Collateral:       int32(s.Collateral),
		}
	case p.Future != nil:
		f := p.Future
		out.FutureDetail = &wire.FuturePositionDetail{
			Date:          f.Date,
			Code:          f.Code,
			Quantity:      int32(f.Quantity),
			Price:         f.Price,
			LastPrice:     f.LastPrice,
			Pnl:           f.Pnl,
			Dseq:          f.Dseq,
			Direction:     translate.Actions.ToWire(f.Direction),
			Currency:      translate.Currencies.ToWire(f.Currency),
			Fee:           f.Fee,
			EntryQuantity: int32(f.EntryQuantity),
		}
	}
	return out
}

func profitLossToWire(p *domain.ProfitLoss) *wire.ProfitLoss {
	out := &wire.ProfitLoss{}
	switch {
	case p.Stock != nil:
		s := p.Stock
		out.StockPnl = &wire.StockProfitLoss{
			ID:       int32(s.ID),
			Dseq:     s.Dseq,
			Code:     s.Code,
			Quantity: int32(s.Quantity),
			Price:    s.Price,
			Pnl:      s.Pnl,
			PrRatio:  s.PrRatio,
			Cond:     translate.StockOrderConds.ToWire(s.Cond),
			Date:     s.Date,
			Seqno:    s.Seqno,
		}
	case p.Future != nil:
		f := p.Future
		out.FuturePnl = &wire.FutureProfitLoss{
			ID:         int32(f.ID),
			Date:       f.Date,
			Code:       f.Code,
			Quantity:   int32(f.Quantity),
			EntryPrice: f.EntryPrice,
			CoverPrice: f.CoverPrice,
			Direction:  translate.Actions.ToWire(f.Direction),
			Pnl:        f.Pnl,
			Tax:        f.Tax,
			Fee:        f.Fee,
		}
	}
	return out
}

func profitDetailToWire(p *domain.ProfitDetail) *wire.ProfitDetail {
	out := &wire.ProfitDetail{}
	switch {
	case p.Stock != nil:
		s := p.Stock
		out.StockDetail = &wire.StockProfitDetail{
			Date:                s.Date,
			Code:                s.Code,
			Quantity:            int32(s.Quantity),
			Dseq:                s.Dseq,
			Price:               s.Price,
			Cost:                s.Cost,
			Interest:            s.Interest,
			Fee:                 s.Fee,
			Tax:                 s.Tax,
			Currency:            translate.Currencies.ToWire(s.Currency),
			RepMargintradingAmt: s.RepMargintradingAmt,
			RepCollateral:       s.RepCollateral,
			RepMargin:           s.RepMargin,
			ShortsellingFee:     s.ShortsellingFee,
			ExDividendAmt:       s.ExDividendAmt,
			TradeType:           translate.TradeTypes.ToWire(s.TradeType),
			Cond:                translate.StockOrderConds.ToWire(s.Cond),
		}
	case p.Future != nil:
		f := p.Future
		out.FutureDetail = &wire.FutureProfitDetail{
			Date:       f.Date,
			Code:       f.Code,
			Quantity:   int32(f.Quantity),
			Dseq:       f.Dseq,
			Direction:  translate.Actions.ToWire(f.Direction),
			EntryDate:  f.EntryDate,
			EntryPrice: f.EntryPrice,
			CoverPrice: f.CoverPrice,
			Pnl:        f.Pnl,
			Fee:        f.Fee,
			Tax:        f.Tax,
			Currency:   translate.Currencies.ToWire(f.Currency),
		}
	}
	return out
}

func profitSummaryToWire(p *domain.ProfitLossSummary) *wire.ProfitLossSummary {
	out := &wire.ProfitLossSummary{}
	switch {
	case p.Stock != nil:
		s := p.Stock
		out.StockSummary = &wire.StockProfitLossSummary{
			Code:       s.Code,
			Quantity:   int32(s.Quantity),
			EntryPrice: s.EntryPrice,
			CoverPrice: s.CoverPrice,
			EntryCost:  s.EntryCost,
			CoverCost:  s.CoverCost,
			BuyCost:    s.BuyCost,
			SellCost:   s.SellCost,
			Pnl:        s.Pnl,
			PrRatio:    s.PrRatio,
			Currency:   translate.Currencies.ToWire(s.Currency),
			Cond:       translate.StockOrderConds.ToWire(s.Cond),
		}
	case p.Future != nil:
		f := p.Future
		out.FutureSummary = &wire.FutureProfitLossSummary{
			Code:       f.Code,
			Quantity:   int32(f.Quantity),
			EntryPrice: f.EntryPrice,
			CoverPrice: f.CoverPrice,
			Direction:  translate.Actions.ToWire(f.Direction),
			Pnl:        f.Pnl,
			Tax:        f.Tax,
			Fee:        f.Fee,
			Currency:   translate.Currencies.ToWire(f.Currency),
		}
	}
	return out
}

func settlementToWire(s *domain.Settlement) *wire.Settlement {
	return &wire.Settlement{
		Date:    formatDate(s.Date),
		Amount:  s.Amount,
		TMoney:  s.TMoney,
		TDay:    formatDate(s.TDay),
		T1Money: s.T1Money,
		T1Day:   formatDate(s.T1Day),
		T2Money: s.T2Money,
		T2Day:   formatDate(s.T2Day),
	}
}

func marginToWire(m *domain.Margin) *wire.Margin {
	return &wire.Margin{
		Equity:                    m.Equity,
		EquityAmount:              m.EquityAmount,
		AvailableMargin:           m.AvailableMargin,
		InitialMargin:             m.InitialMargin,
		MaintenanceMargin:         m.MaintenanceMargin,
		YesterdayBalance:          m.YesterdayBalance,
		TodayBalance:              m.TodayBalance,
		DepositWithdrawal:         m.DepositWithdrawal,
		Fee:                       m.Fee,
		Tax:                       m.Tax,
		MarginCall:                m.MarginCall,
		RiskIndicator:             m.RiskIndicator,
		RoyaltyRevenueExpenditure: m.RoyaltyRevenueExpenditure,
		OptionOpenbuyMarketValue:  m.OptionOpenbuyMarketValue,
		OptionOpensellMarketValue: m.OptionOpensellMarketValue,
		OptionOpenPosition:        int32(m.OptionOpenPosition),
		OptionSettleProfitloss:    m.OptionSettleProfitloss,
		FutureOpenPosition:        int32(m.FutureOpenPosition),
		TodayFutureOpenPosition:   int32(m.TodayFutureOpenPosition),
		FutureSettleProfitloss:    m.FutureSettleProfitloss,
	}
}

func tradingLimitsToWire(l *domain.TradingLimits) *wire.TradingLimits {
	return &wire.TradingLimits{
		TradingLimit:     l.TradingLimit,
		TradingUsed:      l.TradingUsed,
		TradingAvailable: l.TradingAvailable,
		MarginLimit:      l.MarginLimit,
		MarginUsed:       l.MarginUsed,
		MarginAvailable:  l.MarginAvailable,
		ShortLimit:       l.ShortLimit,
		ShortUsed:        l.ShortUsed,
		ShortAvailable:   l.ShortAvailable,
	}
}

// ---- market data ----

func snapshotToWire(s *domain.Snapshot) *wire.Snapshot {
	return &wire.Snapshot{
		TS:              s.TS,
		Code:            s.Code,
		Exchange:        translate.Exchanges.ToWire(s.Exchange),
		Open:            s.Open,
		High:            s.High,
		Low:             s.Low,
		Close:           s.Close,
		ChangePrice:     s.ChangePrice,
		ChangeRate:      s.ChangeRate,
		AveragePrice:    s.AveragePrice,
		Volume:          int32(s.Volume),
		TotalVolume:     int32(s.TotalVolume),
		Amount:          s.Amount,
		TotalAmount:     s.TotalAmount,
		BuyPrice:        s.BuyPrice,
		BuyVolume:       s.BuyVolume,
		SellPrice:       s.SellPrice,
		SellVolume:      int32(s.SellVolume),
		TickType:        translate.TickTypes.ToWire(s.TickType),
		ChangeType:      translate.ChangeTypes.ToWire(s.ChangeType),
		YesterdayVolume: s.YesterdayVolume,
		VolumeRatio:     s.VolumeRatio,
	}
}

func ticksToWire(t *domain.Ticks) *wire.Ticks {
	tickTypes := make([]int32, len(t.TickType))
	for i, v := range t.TickType {
		tickTypes[i] = int32(v)
	}
	return &wire.Ticks{
		TS:        t.TS,
		Close:     t.Close,
		Volume:    t.Volume,
		BidPrice:  t.BidPrice,
		BidVolume: t.BidVolume,
		AskPrice:  t.AskPrice,
		AskVolume: t.AskVolume,
		TickType:  tickTypes,
	}
}

func kbarsToWire(k *domain.Kbars) *wire.Kbars {
	return &wire.Kbars{
		TS:     k.TS,
		Open:   k.Open,
		High:   k.High,
		Low:    k.Low,
		Close:  k.Close,
		Volume: k.Volume,
		Amount: k.Amount,
	}
}

func dailyQuotesToWire(q *domain.DailyQuotes) *wire.DailyQuotes {
	dates := make([]string, len(q.Date))
	for i, d := range q.Date {
		dates[i] = formatDate(d)
	}
	return &wire.DailyQuotes{
		Code:        q.Code,
		Open:        q.Open,
		High:        q.High,
		Low:         q.Low,
		Close:       q.Close,
		Volume:      q.Volume,
		Date:        dates,
		Transaction: q.Transaction,
		Amount:      q.Amount,
	}
}

func creditEnquireToWire(c *domain.CreditEnquire) *wire.CreditEnquire {
	return &wire.CreditEnquire{
		StockID:    c.StockID,
		MarginUnit: int32(c.MarginUnit),
		ShortUnit:  int32(c.ShortUnit),
		UpdateTime: c.UpdateTime,
		System:     c.System,
	}
}

func shortStockSourceToWire(s *domain.ShortStockSource) *wire.ShortStockSource {
	return &wire.ShortStockSource{
		Code:             s.Code,
		ShortStockSource: s.ShortStockSource,
		TS:               s.TS,
	}
}

func scannerItemToWire(s *domain.ScannerItem) *wire.ScannerItem {
	return &wire.ScannerItem{
		Code:            s.Code,
		Name:            s.Name,
		Date:            s.Date,
		TS:              s.TS,
		Open:            s.Open,
		High:            s.High,
		Low:             s.Low,
		Close:           s.Close,
		PriceRange:      s.PriceRange,
		TickType:        translate.TickTypes.ToWire(s.TickType),
		ChangePrice:     s.ChangePrice,
		ChangeType:      translate.ChangeTypes.ToWire(s.ChangeType),
		AveragePrice:    s.AveragePrice,
		Volume:          int32(s.Volume),
		TotalVolume:     int32(s.TotalVolume),
		Amount:          s.Amount,
		TotalAmount:     s.TotalAmount,
		YesterdayVolume: int32(s.YesterdayVolume),
		VolumeRatio:     s.VolumeRatio,
		BuyPrice:        s.BuyPrice,
		BuyVolume:       int32(s.BuyVolume),
		SellPrice:       s.SellPrice,
		SellVolume:      int32(s.SellVolume),
		BidOrders:       int32(s.BidOrders),
		BidVolumes:      int32(s.BidVolumes),
		AskOrders:       int32(s.AskOrders),
		AskVolumes:      int32(s.AskVolumes),
		RankValue:       s.RankValue,
	}
}

func punishToWire(p *domain.Punish) *wire.Punish {
	return &wire.Punish{
		Code:          p.Code,
		StartDate:     formatDates(p.StartDate),
		EndDate:       formatDates(p.EndDate),
		Interval:      toInt32s(p.Interval),
		UpdatedAt:     formatTimes(p.UpdatedAt),
		UnitLimit:     p.UnitLimit,
		TotalLimit:    p.TotalLimit,
		Description:   p.Description,
		AnnouncedDate: formatDates(p.AnnouncedDate),
	}
}

func noticeToWire(n *domain.Notice) *wire.Notice {
	return &wire.Notice{
		Code:          n.Code,
		Reason:        n.Reason,
		UpdatedAt:     formatTimes(n.UpdatedAt),
		Close:         n.Close,
		AnnouncedDate: formatDates(n.AnnouncedDate),
	}
}

func formatDates(ts []time.Time) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = formatDate(t)
	}
	return out
}

func formatTimes(ts []time.Time) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = formatTime(t)
	}
	return out
}

func toInt32s(vs []int) []int32 {
	out := make([]int32, len(vs))
	for i, v := range vs {
		out[i] = int32(v)
	}
	return out
}
