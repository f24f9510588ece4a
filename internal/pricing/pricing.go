// Package pricing resolves best-effort live quotes for holdings.
//
// Every backend treats unknown symbols, missing credentials, timeouts,
// non-2xx responses, and malformed payloads the same way: the symbol has no
// data. ErrNoData is the only failure a caller is expected to branch on;
// valuation falls back to break-even and carries on.
package pricing

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/kingao12/investment-platform/internal/model"
)

// ErrNoData indicates that no price could be resolved for a symbol.
// It is a local, recoverable condition, never a fatal error.
var ErrNoData = errors.New("no price data available")

// maxConcurrentLookups bounds the fan-out of a batch resolve.
const maxConcurrentLookups = 8

// Quote is one resolved price in the reporting currency.
type Quote struct {
	Symbol    string  `json:"symbol"`
	Price     float64 `json:"price"`
	Change24h float64 `json:"change24h"`
	Currency  string  `json:"currency"`
}

// Source resolves the current price for one symbol.
// Implementations must honor the context deadline and return an error
// wrapping ErrNoData for every recoverable lookup failure.
type Source interface {
	Quote(ctx context.Context, symbol string) (Quote, error)
}

// Request identifies one symbol to resolve and the asset class that selects
// its backend.
type Request struct {
	Symbol     string
	AssetClass string
}

// Result pairs a request with its outcome. Exactly one of Quote or Err is
// meaningful; Err wrapping ErrNoData means the symbol resolved to nothing.
type Result struct {
	Request
	Quote Quote
	Err   error
}

// Router dispatches lookups to the backend matching each asset class.
// Crypto serves CRYPTO; Equity serves STOCK and ETF. Other asset classes
// have no live feed and always resolve to no data.
type Router struct {
	Crypto Source
	Equity Source
}

// SourceFor returns the backend for an asset class, or nil when the class
// has no live price feed.
func (r *Router) SourceFor(assetClass string) Source {
	switch assetClass {
	case model.AssetCrypto:
		return r.Crypto
	case model.AssetStock, model.AssetETF:
		return r.Equity
	default:
		return nil
	}
}

// Resolve fans out one lookup per request with bounded parallelism and waits
// for all of them. Each slot in the returned slice corresponds to the request
// at the same index, so one unresolvable symbol never disturbs the others and
// the caller always sees a complete pass.
func (r *Router) Resolve(ctx context.Context, requests []Request) []Result {
	results := make([]Result, len(requests))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)

	for i, req := range requests {
		i, req := i, req
		g.Go(func() error {
			results[i] = r.resolveOne(ctx, req)
			// Failures are recorded per slot, never returned: returning an
			// error here would cancel the sibling lookups.
			return nil
		})
	}

	// Workers never return errors, so this cannot fail.
	_ = g.Wait()

	return results
}

func (r *Router) resolveOne(ctx context.Context, req Request) Result {
	result := Result{Request: req}

	source := r.SourceFor(req.AssetClass)
	if source == nil {
		result.Err = ErrNoData
		return result
	}

	result.Quote, result.Err = source.Quote(ctx, req.Symbol)
	return result
}
