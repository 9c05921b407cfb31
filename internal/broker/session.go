// Package broker defines the Session interface the gateway drives and
// provides an in-memory simulator implementation for paper trading and
// tests. The real brokerage SDK lives behind this interface; nothing
// above it may depend on broker-specific error or result types.
package broker

import (
	"context"
	"time"

	"tradegate/internal/domain"
)

// Session is a single authenticated connection to the brokerage. One
// instance is shared by all concurrent RPCs; implementations must be
// safe for concurrent use. Mutating calls may interleave — ordering
// between two concurrent orders is the brokerage's concern, not the
// caller's.
type Session interface {
	// Login authenticates and returns the accounts attached to the
	// session.
	Login(ctx context.Context, apiKey, secretKey string) ([]domain.Account, error)

	// ActivateCA attaches the signing certificate required for order
	// placement. It reports false when the certificate is rejected.
	ActivateCA(ctx context.Context, caPath, personID, caPassword string) (bool, error)

	// Logout terminates the session at the brokerage.
	Logout(ctx context.Context) (bool, error)

	// StockAccount returns the default stock account, or nil before
	// login or when the session carries none.
	StockAccount() *domain.Account

	// FutOptAccount returns the default futures/options account, or nil.
	FutOptAccount() *domain.Account

	// Contracts returns the downloaded contract universe. The book is
	// read-only to callers.
	Contracts() *domain.ContractBook

	FetchContracts(ctx context.Context, contractDownload bool) error
	Usage(ctx context.Context) (*domain.Usage, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	AccountBalance(ctx context.Context) (*domain.AccountBalance, error)
	CAExpireTime(ctx context.Context, personID string) (time.Time, error)

	PlaceOrder(ctx context.Context, contract *domain.Contract, order *domain.Order) (*domain.Trade, error)
	PlaceComboOrder(ctx context.Context, contract *domain.ComboContract, order *domain.ComboOrder) (*domain.ComboTrade, error)

	// UpdateOrder amends an open order. Zero fields in upd are left
	// unchanged.
	UpdateOrder(ctx context.Context, trade *domain.Trade, upd domain.OrderUpdate) (*domain.Trade, error)

	CancelOrder(ctx context.Context, trade *domain.Trade) (*domain.Trade, error)
	CancelComboOrder(ctx context.Context, trade *domain.ComboTrade) (*domain.ComboTrade, error)
	UpdateStatus(ctx context.Context, account domain.Account) error
	UpdateComboStatus(ctx context.Context, account domain.Account) error

	// ListTrades returns the current live single-leg trades. Callers
	// resolve trade references against a fresh call, never a cache.
	ListTrades(ctx context.Context) ([]*domain.Trade, error)

	// ListComboTrades returns the current live combination trades.
	ListComboTrades(ctx context.Context) ([]*domain.ComboTrade, error)

	OrderDealRecords(ctx context.Context, account domain.Account) ([]domain.OrderDealRecord, error)

	ListPositions(ctx context.Context, account domain.Account) ([]domain.Position, error)
	ListPositionDetail(ctx context.Context, account domain.Account, detailID int) ([]domain.PositionDetail, error)
	ListProfitLoss(ctx context.Context, account domain.Account) ([]domain.ProfitLoss, error)
	ListProfitLossDetail(ctx context.Context, account domain.Account, detailID int) ([]domain.ProfitDetail, error)
	ListProfitLossSummary(ctx context.Context, account domain.Account) ([]domain.ProfitLossSummary, error)
	Settlements(ctx context.Context, account domain.Account) ([]domain.Settlement, error)
	Margin(ctx context.Context, account domain.Account) (*domain.Margin, error)
	TradingLimits(ctx context.Context, account domain.Account) (*domain.TradingLimits, error)

	StockReserveSummary(ctx context.Context, account domain.Account) (*domain.ReserveStocksSummary, error)
	StockReserveDetail(ctx context.Context, account domain.Account) (*domain.ReserveStocksDetail, error)
	ReserveStock(ctx context.Context, account domain.Account, contract *domain.Contract, share int) (*domain.ReserveStockResult, error)
	EarmarkingDetail(ctx context.Context, account domain.Account) (*domain.EarmarkingDetail, error)
	ReserveEarmarking(ctx context.Context, account domain.Account, contract *domain.Contract, share int, price float64) (*domain.ReserveEarmarkingResult, error)

	Snapshots(ctx context.Context, contracts []*domain.Contract) ([]domain.Snapshot, error)
	Ticks(ctx context.Context, contract *domain.Contract, date string) (*domain.Ticks, error)
	Kbars(ctx context.Context, contract *domain.Contract, start, end string) (*domain.Kbars, error)
	DailyQuotes(ctx context.Context, day time.Time) (*domain.DailyQuotes, error)
	CreditEnquires(ctx context.Context, contracts []*domain.Contract) ([]domain.CreditEnquire, error)
	ShortStockSources(ctx context.Context, contracts []*domain.Contract) ([]domain.ShortStockSource, error)
	Scanners(ctx context.Context, query domain.ScannerQuery) ([]domain.ScannerItem, error)
	Punish(ctx context.Context) (*domain.Punish, error)
	Notice(ctx context.Context) (*domain.Notice, error)

	SubscribeTrade(ctx context.Context, account domain.Account) (bool, error)
	UnsubscribeTrade(ctx context.Context, account domain.Account) (bool, error)
}
