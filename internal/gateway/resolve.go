package gateway

import (
	"context"
	"fmt"

	"tradegate/internal/broker"
	"tradegate/internal/domain"
	"tradegate/internal/wire"
)

// NotFoundError reports that a referenced contract or trade does not
// exist. The gateway maps it to the NOT_FOUND status code.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// Resolver turns wire references (contract codes, trade seqnos) into
// live broker objects. Trade lookups always go through a fresh fetch of
// the session's trade list; a stale pointer must never reach the broker.
type Resolver struct {
	session broker.Session
}

// NewResolver returns a Resolver over session.
func NewResolver(session broker.Session) *Resolver {
	return &Resolver{session: session}
}

// Contract finds code in the contract book, probing stocks, futures,
// options, and indexes in that order.
func (r *Resolver) Contract(code string) (*domain.Contract, error) {
	book := r.session.Contracts()
	for _, m := range []map[string]*domain.Contract{book.Stocks, book.Futures, book.Options, book.Indexes} {
		if c, ok := m[code]; ok {
			return c, nil
		}
	}
	return nil, &NotFoundError{Kind: "contract", ID: code}
}

// Contracts resolves every code in order, failing on the first miss.
func (r *Resolver) Contracts(codes []string) ([]*domain.Contract, error) {
	out := make([]*domain.Contract, 0, len(codes))
	for _, code := range codes {
		c, err := r.Contract(code)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// StockContract finds code among stocks only. Credit and short-source
// queries are defined for stocks alone.
func (r *Resolver) StockContract(code string) (*domain.Contract, error) {
	if c, ok := r.session.Contracts().Stocks[code]; ok {
		return c, nil
	}
	return nil, &NotFoundError{Kind: "stock contract", ID: code}
}

// StockContracts resolves every code among stocks, failing on the
// first miss.
func (r *Resolver) StockContracts(codes []string) ([]*domain.Contract, error) {
	out := make([]*domain.Contract, 0, len(codes))
	for _, code := range codes {
		c, err := r.StockContract(code)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// OrderContract resolves the contract of an order request. The request's
// declared security type directs the lookup to one category; requests
// without a recognized type fall back to the stock book.
func (r *Resolver) OrderContract(c *wire.Contract) (*domain.Contract, error) {
	if c == nil {
		return nil, &NotFoundError{Kind: "contract", ID: ""}
	}
	book := r.session.Contracts()
	var m map[string]*domain.Contract
	switch c.SecurityType {
	case wire.SecurityTypeFuture:
		m = book.Futures
	case wire.SecurityTypeOption:
		m = book.Options
	case wire.SecurityTypeIndex:
		m = book.Indexes
	default:
		m = book.Stocks
	}
	if found, ok := m[c.Code]; ok {
		return found, nil
	}
	return nil, &NotFoundError{Kind: "contract", ID: c.Code}
}

// Trade finds the live trade matching ref, preferring the seqno and
// falling back to the order id. The trade list is fetched fresh on
// every call.
func (r *Resolver) Trade(ctx context.Context, ref *wire.Trade) (*domain.Trade, error) {
	seqno, id := tradeKeys(ref)
	trades, err := r.session.ListTrades(ctx)
	if err != nil {
		return nil, err
	}
	if seqno != "" {
		for _, t := range trades {
			if t.Order != nil && t.Order.Seqno == seqno {
				return t, nil
			}
		}
	}
	if id != "" {
		for _, t := range trades {
			if t.Order != nil && t.Order.ID == id {
				return t, nil
			}
		}
	}
	return nil, &NotFoundError{Kind: "trade", ID: tradeLabel(seqno, id)}
}

// ComboTrade is the combination counterpart of Trade.
func (r *Resolver) ComboTrade(ctx context.Context, ref *wire.ComboTrade) (*domain.ComboTrade, error) {
	var seqno, id string
	if ref != nil && ref.Order != nil {
		seqno, id = ref.Order.Seqno, ref.Order.ID
	}
	trades, err := r.session.ListComboTrades(ctx)
	if err != nil {
		return nil, err
	}
	if seqno != "" {
		for _, t := range trades {
			if t.Order != nil && t.Order.Seqno == seqno {
				return t, nil
			}
		}
	}
	if id != "" {
		for _, t := range trades {
			if t.Order != nil && t.Order.ID == id {
				return t, nil
			}
		}
	}
	return nil, &NotFoundError{Kind: "combo trade", ID: tradeLabel(seqno, id)}
}

func tradeKeys(ref *wire.Trade) (seqno, id string) {
	if ref == nil || ref.Order == nil {
		return "", ""
	}
	return ref.Order.Seqno, ref.Order.ID
}

func tradeLabel(seqno, id string) string {
	if seqno != "" {
		return seqno
	}
	return id
}
