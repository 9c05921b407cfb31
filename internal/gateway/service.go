package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tradegate/internal/broker"
	"tradegate/internal/domain"
	"tradegate/internal/translate"
	"tradegate/internal/wire"
)

// CAConfig holds the signing-certificate parameters activated right
// after login. An empty Path disables activation.
type CAConfig struct {
	Path     string
	PersonID string
	Password string
}

// Service implements the gateway RPC surface over one broker session.
// Every operation except Login is rejected until a login has succeeded;
// the gate is re-checked per call so a logout takes effect immediately.
type Service struct {
	log      *slog.Logger
	session  broker.Session
	resolver *Resolver
	ca       CAConfig

	mu       sync.RWMutex
	loggedIn bool
}

// Compile-time interface check.
var _ wire.GatewayServer = (*Service)(nil)

// NewService returns a Service over session. ca may be zero when no
// certificate is configured.
func NewService(log *slog.Logger, session broker.Session, ca CAConfig) *Service {
	return &Service{
		log:      log,
		session:  session,
		resolver: NewResolver(session),
		ca:       ca,
	}
}

var errNotLoggedIn = status.Error(codes.Unauthenticated, "not logged in")

func (s *Service) requireLogin() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loggedIn {
		return errNotLoggedIn
	}
	return nil
}

// rpcErr maps internal errors onto gRPC status codes. Broker errors
// pass through verbatim as INTERNAL; the gateway never retries on the
// caller's behalf.
func rpcErr(err error) error {
	if err == nil {
		return nil
	}
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return status.Error(codes.NotFound, nf.Error())
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(codes.Internal, err.Error())
}

// ---- session ----

func (s *Service) Login(ctx context.Context, req *wire.LoginRequest) (*wire.LoginResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	accounts, err := s.session.Login(ctx, req.APIKey, req.SecretKey)
	if err != nil {
		s.log.Warn("login rejected", "error", err)
		return nil, rpcErr(err)
	}
	if s.ca.Path != "" {
		ok, err := s.session.ActivateCA(ctx, s.ca.Path, s.ca.PersonID, s.ca.Password)
		if err != nil || !ok {
			s.log.Warn("ca activation failed", "error", err)
			return nil, status.Error(codes.Unauthenticated, "certificate activation failed")
		}
	}
	s.loggedIn = true
	s.log.Info("logged in", "accounts", len(accounts))
	return &wire.LoginResponse{Accounts: accountsToWire(accounts)}, nil
}

func (s *Service) Logout(ctx context.Context, req *wire.Empty) (*wire.LogoutResponse, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ok, err := s.session.Logout(ctx)
	s.loggedIn = false
	if err != nil {
		return nil, rpcErr(err)
	}
	s.log.Info("logged out")
	return &wire.LogoutResponse{Success: ok}, nil
}

// Shutdown logs the session out if a login is still active. Safe to
// call more than once; only the first call reaches the broker.
func (s *Service) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loggedIn {
		return nil
	}
	s.loggedIn = false
	_, err := s.session.Logout(ctx)
	if err != nil {
		s.log.Warn("logout on shutdown failed", "error", err)
		return err
	}
	s.log.Info("logged out on shutdown")
	return nil
}

func (s *Service) stockAccount() (domain.Account, error) {
	if a := s.session.StockAccount(); a != nil {
		return *a, nil
	}
	return domain.Account{}, status.Error(codes.Internal, "no stock account available")
}

func (s *Service) futoptAccount() (domain.Account, error) {
	if a := s.session.FutOptAccount(); a != nil {
		return *a, nil
	}
	return domain.Account{}, status.Error(codes.Internal, "no futures account available")
}

func (s *Service) GetUsage(ctx context.Context, req *wire.Empty) (*wire.UsageStatus, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	u, err := s.session.Usage(ctx)
	if err != nil {
		return nil, rpcErr(err)
	}
	return &wire.UsageStatus{
		Connections:    int32(u.Connections),
		Bytes:          u.Bytes,
		LimitBytes:     u.LimitBytes,
		RemainingBytes: u.RemainingBytes,
	}, nil
}

func (s *Service) ListAccounts(ctx context.Context, req *wire.Empty) (*wire.ListAccountsResponse, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	accounts, err := s.session.ListAccounts(ctx)
	if err != nil {
		return nil, rpcErr(err)
	}
	return &wire.ListAccountsResponse{Accounts: accountsToWire(accounts)}, nil
}

func (s *Service) GetAccountBalance(ctx context.Context, req *wire.Empty) (*wire.AccountBalance, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	b, err := s.session.AccountBalance(ctx)
	if err != nil {
		return nil, rpcErr(err)
	}
	return &wire.AccountBalance{
		AccBalance: b.Balance,
		Date:       formatTime(b.Date),
		ErrMsg:     b.ErrMsg,
	}, nil
}

// ---- orders ----

func (s *Service) PlaceOrder(ctx context.Context, req *wire.PlaceOrderRequest) (*wire.Trade, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	contract, err := s.resolver.OrderContract(req.Contract)
	if err != nil {
		return nil, rpcErr(err)
	}
	order := orderToDomain(req.Order)
	if order == nil {
		return nil, status.Error(codes.InvalidArgument, "order is required")
	}
	trade, err := s.session.PlaceOrder(ctx, contract, order)
	if err != nil {
		return nil, rpcErr(err)
	}
	s.log.Info("order placed", "code", contract.Code, "action", order.Action, "seqno", trade.Order.Seqno)
	return tradeToWire(trade), nil
}

func (s *Service) PlaceComboOrder(ctx context.Context, req *wire.PlaceComboOrderRequest) (*wire.ComboTrade, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	contract := comboContractToDomain(req.ComboContract)
	order := comboOrderToDomain(req.Order)
	if contract == nil || order == nil {
		return nil, status.Error(codes.InvalidArgument, "combo contract and order are required")
	}
	trade, err := s.session.PlaceComboOrder(ctx, contract, order)
	if err != nil {
		return nil, rpcErr(err)
	}
	s.log.Info("combo order placed", "legs", len(contract.Legs), "seqno", trade.Order.Seqno)
	return comboTradeToWire(trade), nil
}

func (s *Service) UpdateOrder(ctx context.Context, req *wire.UpdateOrderRequest) (*wire.Trade, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	trade, err := s.resolver.Trade(ctx, req.Trade)
	if err != nil {
		return nil, rpcErr(err)
	}
	upd := domain.OrderUpdate{Price: req.Price, Quantity: int(req.Quantity)}
	updated, err := s.session.UpdateOrder(ctx, trade, upd)
	if err != nil {
		return nil, rpcErr(err)
	}
	s.log.Info("order updated", "seqno", updated.Order.Seqno, "price", req.Price, "quantity", req.Quantity)
	return tradeToWire(updated), nil
}

func (s *Service) CancelOrder(ctx context.Context, req *wire.CancelOrderRequest) (*wire.Trade, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	trade, err := s.resolver.Trade(ctx, req.Trade)
	if err != nil {
		return nil, rpcErr(err)
	}
	cancelled, err := s.session.CancelOrder(ctx, trade)
	if err != nil {
		return nil, rpcErr(err)
	}
	s.log.Info("order cancelled", "seqno", cancelled.Order.Seqno)
	return tradeToWire(cancelled), nil
}

func (s *Service) CancelComboOrder(ctx context.Context, req *wire.CancelComboOrderRequest) (*wire.ComboTrade, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	trade, err := s.resolver.ComboTrade(ctx, req.ComboTrade)
	if err != nil {
		return nil, rpcErr(err)
	}
	cancelled, err := s.session.CancelComboOrder(ctx, trade)
	if err != nil {
		return nil, rpcErr(err)
	}
	s.log.Info("combo order cancelled", "seqno", cancelled.Order.Seqno)
	return comboTradeToWire(cancelled), nil
}

func (s *Service) UpdateStatus(ctx context.Context, req *wire.UpdateStatusRequest) (*wire.Empty, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	account, err := s.stockAccount()
	if err != nil {
		return nil, err
	}
	if err := s.session.UpdateStatus(ctx, account); err != nil {
		return nil, rpcErr(err)
	}
	return &wire.Empty{}, nil
}

func (s *Service) UpdateComboStatus(ctx context.Context, req *wire.UpdateStatusRequest) (*wire.Empty, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	account, err := s.futoptAccount()
	if err != nil {
		return nil, err
	}
	if err := s.session.UpdateComboStatus(ctx, account); err != nil {
		return nil, rpcErr(err)
	}
	return &wire.Empty{}, nil
}

func (s *Service) ListTrades(ctx context.Context, req *wire.Empty) (*wire.ListTradesResponse, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	trades, err := s.session.ListTrades(ctx)
	if err != nil {
		return nil, rpcErr(err)
	}
	out := make([]*wire.Trade, len(trades))
	for i, t := range trades {
		out[i] = tradeToWire(t)
	}
	return &wire.ListTradesResponse{Trades: out}, nil
}

func (s *Service) ListComboTrades(ctx context.Context, req *wire.Empty) (*wire.ListComboTradesResponse, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	trades, err := s.session.ListComboTrades(ctx)
	if err != nil {
		return nil, rpcErr(err)
	}
	out := make([]*wire.ComboTrade, len(trades))
	for i, t := range trades {
		out[i] = comboTradeToWire(t)
	}
	return &wire.ListComboTradesResponse{ComboTrades: out}, nil
}

func (s *Service) GetOrderDealRecords(ctx context.Context, req *wire.GetOrderDealRecordsRequest) (*wire.GetOrderDealRecordsResponse, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	account, err := s.stockAccount()
	if err != nil {
		return nil, err
	}
	records, err := s.session.OrderDealRecords(ctx, account)
	if err != nil {
		return nil, rpcErr(err)
	}
	out := make([]*wire.OrderDealRecord, len(records))
	for i := range records {
		out[i] = dealRecordToWire(&records[i])
	}
	return &wire.GetOrderDealRecordsResponse{Records: out}, nil
}

// ---- account queries ----

func (s *Service) ListPositions(ctx context.Context, req *wire.ListPositionsRequest) (*wire.ListPositionsResponse, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	account, err := s.stockAccount()
	if err != nil {
		return nil, err
	}
	positions, err := s.session.ListPositions(ctx, account)
	if err != nil {
		return nil, rpcErr(err)
	}
	out := make([]*wire.Position, len(positions))
	for i := range positions {
		out[i] = positionToWire(&positions[i])
	}
	return &wire.ListPositionsResponse{Positions: out}, nil
}

func (s *Service) ListPositionDetail(ctx context.Context, req *wire.ListPositionDetailRequest) (*wire.ListPositionDetailResponse, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	account, err := s.stockAccount()
	if err != nil {
		return nil, err
	}
	details, err := s.session.ListPositionDetail(ctx, account, int(req.DetailID))
	if err != nil {
		return nil, rpcErr(err)
	}
	out := make([]*wire.PositionDetail, len(details))
	for i := range details {
		out[i] = positionDetailToWire(&details[i])
	}
	return &wire.ListPositionDetailResponse{Details: out}, nil
}

func (s *Service) ListProfitLoss(ctx context.Context, req *wire.ListProfitLossRequest) (*wire.ListProfitLossResponse, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	account, err := s.stockAccount()
	if err != nil {
		return nil, err
	}
	entries, err := s.session.ListProfitLoss(ctx, account)
	if err != nil {
		return nil, rpcErr(err)
	}
	out := make([]*wire.ProfitLoss, len(entries))
	for i := range entries {
		out[i] = profitLossToWire(&entries[i])
	}
	return &wire.ListProfitLossResponse{ProfitLosses: out}, nil
}

func (s *Service) ListProfitLossDetail(ctx context.Context, req *wire.ListProfitLossDetailRequest) (*wire.ListProfitLossDetailResponse, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	account, err := s.stockAccount()
	if err != nil {
		return nil, err
	}
	details, err := s.session.ListProfitLossDetail(ctx, account, int(req.DetailID))
	if err != nil {
		return nil, rpcErr(err)
	}
	out := make([]*wire.ProfitDetail, len(details))
	for i := range details {
		out[i] = profitDetailToWire(&details[i])
	}
	return &wire.ListProfitLossDetailResponse{Details: out}, nil
}

func (s *Service) ListProfitLossSummary(ctx context.Context, req *wire.ListProfitLossSummaryRequest) (*wire.ListProfitLossSummaryResponse, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	account, err := s.stockAccount()
	if err != nil {
		return nil, err
	}
	summaries, err := s.session.ListProfitLossSummary(ctx, account)
	if err != nil {
		return nil, rpcErr(err)
	}
	out := make([]*wire.ProfitLossSummary, len(summaries))
	for i := range summaries {
		out[i] = profitSummaryToWire(&summaries[i])
	}
	return &wire.ListProfitLossSummaryResponse{Summaries: out}, nil
}

func (s *Service) GetSettlements(ctx context.Context, req *wire.GetSettlementsRequest) (*wire.GetSettlementsResponse, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	account, err := s.stockAccount()
	if err != nil {
		return nil, err
	}
	settlements, err := s.session.Settlements(ctx, account)
	if err != nil {
		return nil, rpcErr(err)
	}
	out := make([]*wire.Settlement, len(settlements))
	for i := range settlements {
		out[i] = settlementToWire(&settlements[i])
	}
	return &wire.GetSettlementsResponse{Settlements: out}, nil
}

// ListSettlements is an alias kept for callers of the older name.
func (s *Service) ListSettlements(ctx context.Context, req *wire.GetSettlementsRequest) (*wire.GetSettlementsResponse, error) {
	return s.GetSettlements(ctx, req)
}

func (s *Service) GetMargin(ctx context.Context, req *wire.GetMarginRequest) (*wire.Margin, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	account, err := s.futoptAccount()
	if err != nil {
		return nil, err
	}
	margin, err := s.session.Margin(ctx, account)
	if err != nil {
		return nil, rpcErr(err)
	}
	return marginToWire(margin), nil
}

func (s *Service) GetTradingLimits(ctx context.Context, req *wire.GetTradingLimitsRequest) (*wire.TradingLimits, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	account, err := s.stockAccount()
	if err != nil {
		return nil, err
	}
	limits, err := s.session.TradingLimits(ctx, account)
	if err != nil {
		return nil, rpcErr(err)
	}
	return tradingLimitsToWire(limits), nil
}

// ---- reserve and earmark ----

func responseJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (s *Service) GetStockReserveSummary(ctx context.Context, req *wire.GetStockReserveSummaryRequest) (*wire.ReserveStocksSummaryResponse, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	account, err := s.stockAccount()
	if err != nil {
		return nil, err
	}
	summary, err := s.session.StockReserveSummary(ctx, account)
	if err != nil {
		return nil, rpcErr(err)
	}
	body, err := responseJSON(summary)
	if err != nil {
		return nil, rpcErr(err)
	}
	return &wire.ReserveStocksSummaryResponse{ResponseJSON: body}, nil
}

func (s *Service) GetStockReserveDetail(ctx context.Context, req *wire.GetStockReserveDetailRequest) (*wire.ReserveStocksDetailResponse, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	account, err := s.stockAccount()
	if err != nil {
		return nil, err
	}
	detail, err := s.session.StockReserveDetail(ctx, account)
	if err != nil {
		return nil, rpcErr(err)
	}
	body, err := responseJSON(detail)
	if err != nil {
		return nil, rpcErr(err)
	}
	return &wire.ReserveStocksDetailResponse{ResponseJSON: body}, nil
}

func (s *Service) ReserveStock(ctx context.Context, req *wire.ReserveStockRequest) (*wire.ReserveStockResponse, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	if req.Contract == nil {
		return nil, status.Error(codes.InvalidArgument, "contract is required")
	}
	account, err := s.stockAccount()
	if err != nil {
		return nil, err
	}
	contract, err := s.resolver.StockContract(req.Contract.Code)
	if err != nil {
		return nil, rpcErr(err)
	}
	result, err := s.session.ReserveStock(ctx, account, contract, int(req.Share))
	if err != nil {
		return nil, rpcErr(err)
	}
	body, err := responseJSON(result)
	if err != nil {
		return nil, rpcErr(err)
	}
	return &wire.ReserveStockResponse{ResponseJSON: body}, nil
}

func (s *Service) GetEarmarkingDetail(ctx context.Context, req *wire.GetEarmarkingDetailRequest) (*wire.EarmarkStocksDetailResponse, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	account, err := s.stockAccount()
	if err != nil {
		return nil, err
	}
	detail, err := s.session.EarmarkingDetail(ctx, account)
	if err != nil {
		return nil, rpcErr(err)
	}
	body, err := responseJSON(detail)
	if err != nil {
		return nil, rpcErr(err)
	}
	return &wire.EarmarkStocksDetailResponse{ResponseJSON: body}, nil
}

func (s *Service) ReserveEarmarking(ctx context.Context, req *wire.ReserveEarmarkingRequest) (*wire.ReserveEarmarkingResponse, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	if req.Contract == nil {
		return nil, status.Error(codes.InvalidArgument, "contract is required")
	}
	account, err := s.stockAccount()
	if err != nil {
		return nil, err
	}
	contract, err := s.resolver.StockContract(req.Contract.Code)
	if err != nil {
		return nil, rpcErr(err)
	}
	result, err := s.session.ReserveEarmarking(ctx, account, contract, int(req.Share), req.Price)
	if err != nil {
		return nil, rpcErr(err)
	}
	body, err := responseJSON(result)
	if err != nil {
		return nil, rpcErr(err)
	}
	return &wire.ReserveEarmarkingResponse{ResponseJSON: body}, nil
}

// ---- market data ----

func (s *Service) GetSnapshots(ctx context.Context, req *wire.GetSnapshotsRequest) (*wire.GetSnapshotsResponse, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	contracts, err := s.resolver.Contracts(req.ContractCodes)
	if err != nil {
		return nil, rpcErr(err)
	}
	snapshots, err := s.session.Snapshots(ctx, contracts)
	if err != nil {
		return nil, rpcErr(err)
	}
	out := make([]*wire.Snapshot, len(snapshots))
	for i := range snapshots {
		out[i] = snapshotToWire(&snapshots[i])
	}
	return &wire.GetSnapshotsResponse{Snapshots: out}, nil
}

func (s *Service) GetTicks(ctx context.Context, req *wire.GetTicksRequest) (*wire.Ticks, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid date %q", req.Date)
	}
	contract, err := s.resolver.Contract(req.ContractCode)
	if err != nil {
		return nil, rpcErr(err)
	}
	ticks, err := s.session.Ticks(ctx, contract, req.Date)
	if err != nil {
		return nil, rpcErr(err)
	}
	return ticksToWire(ticks), nil
}

func (s *Service) GetKbars(ctx context.Context, req *wire.GetKbarsRequest) (*wire.Kbars, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	if _, err := time.Parse(dateLayout, req.StartDate); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid start date %q", req.StartDate)
	}
	if _, err := time.Parse(dateLayout, req.EndDate); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid end date %q", req.EndDate)
	}
	contract, err := s.resolver.Contract(req.ContractCode)
	if err != nil {
		return nil, rpcErr(err)
	}
	kbars, err := s.session.Kbars(ctx, contract, req.StartDate, req.EndDate)
	if err != nil {
		return nil, rpcErr(err)
	}
	return kbarsToWire(kbars), nil
}

func (s *Service) GetDailyQuotes(ctx context.Context, req *wire.GetDailyQuotesRequest) (*wire.DailyQuotes, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	day, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid date %q", req.Date)
	}
	quotes, err := s.session.DailyQuotes(ctx, day)
	if err != nil {
		return nil, rpcErr(err)
	}
	return dailyQuotesToWire(quotes), nil
}

func (s *Service) CreditEnquires(ctx context.Context, req *wire.CreditEnquiresRequest) (*wire.CreditEnquiresResponse, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	contracts, err := s.resolver.StockContracts(req.ContractCodes)
	if err != nil {
		return nil, rpcErr(err)
	}
	enquires, err := s.session.CreditEnquires(ctx, contracts)
	if err != nil {
		return nil, rpcErr(err)
	}
	out := make([]*wire.CreditEnquire, len(enquires))
	for i := range enquires {
		out[i] = creditEnquireToWire(&enquires[i])
	}
	return &wire.CreditEnquiresResponse{CreditEnquires: out}, nil
}

func (s *Service) GetShortStockSources(ctx context.Context, req *wire.GetShortStockSourcesRequest) (*wire.GetShortStockSourcesResponse, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	contracts, err := s.resolver.StockContracts(req.ContractCodes)
	if err != nil {
		return nil, rpcErr(err)
	}
	sources, err := s.session.ShortStockSources(ctx, contracts)
	if err != nil {
		return nil, rpcErr(err)
	}
	out := make([]*wire.ShortStockSource, len(sources))
	for i := range sources {
		out[i] = shortStockSourceToWire(&sources[i])
	}
	return &wire.GetShortStockSourcesResponse{Sources: out}, nil
}

func (s *Service) GetScanners(ctx context.Context, req *wire.GetScannersRequest) (*wire.GetScannersResponse, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	query := domain.ScannerQuery{
		Type:      translate.ScannerTypes.ToDomain(req.ScannerType),
		Ascending: req.Ascending,
		Date:      req.Date,
		Count:     int(req.Count),
	}
	items, err := s.session.Scanners(ctx, query)
	if err != nil {
		return nil, rpcErr(err)
	}
	out := make([]*wire.ScannerItem, len(items))
	for i := range items {
		out[i] = scannerItemToWire(&items[i])
	}
	return &wire.GetScannersResponse{Scanners: out}, nil
}

func (s *Service) GetPunish(ctx context.Context, req *wire.Empty) (*wire.Punish, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	punish, err := s.session.Punish(ctx)
	if err != nil {
		return nil, rpcErr(err)
	}
	return punishToWire(punish), nil
}

func (s *Service) GetNotice(ctx context.Context, req *wire.Empty) (*wire.Notice, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	notice, err := s.session.Notice(ctx)
	if err != nil {
		return nil, rpcErr(err)
	}
	return noticeToWire(notice), nil
}

// ---- maintenance ----

func (s *Service) FetchContracts(ctx context.Context, req *wire.FetchContractsRequest) (*wire.Empty, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	if err := s.session.FetchContracts(ctx, req.ContractDownload); err != nil {
		return nil, rpcErr(err)
	}
	return &wire.Empty{}, nil
}

func (s *Service) GetCAExpireTime(ctx context.Context, req *wire.GetCAExpireTimeRequest) (*wire.GetCAExpireTimeResponse, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	expiry, err := s.session.CAExpireTime(ctx, req.PersonID)
	if err != nil {
		return nil, rpcErr(err)
	}
	return &wire.GetCAExpireTimeResponse{ExpireTime: formatTime(expiry)}, nil
}

func (s *Service) SubscribeTrade(ctx context.Context, req *wire.SubscribeTradeRequest) (*wire.SubscribeTradeResponse, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	account, err := s.stockAccount()
	if err != nil {
		return nil, err
	}
	ok, err := s.session.SubscribeTrade(ctx, account)
	if err != nil {
		return nil, rpcErr(err)
	}
	return &wire.SubscribeTradeResponse{Success: ok}, nil
}

func (s *Service) UnsubscribeTrade(ctx context.Context, req *wire.UnsubscribeTradeRequest) (*wire.UnsubscribeTradeResponse, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}
	account, err := s.stockAccount()
	if err != nil {
		return nil, err
	}
	ok, err := s.session.UnsubscribeTrade(ctx, account)
	if err != nil {
		return nil, rpcErr(err)
	}
	return &wire.UnsubscribeTradeResponse{Success: ok}, nil
}
