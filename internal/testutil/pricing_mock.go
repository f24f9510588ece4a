package testutil

import (
	"context"
	"sync"

	"github.com/kingao12/investment-platform/internal/pricing"
)

// StubPriceSource is a pricing.Source backed by a fixed symbol->quote map.
// Unknown symbols resolve to ErrNoData, like a real backend. Lookups are
// counted so tests can assert on fan-out behavior.
//
// Example usage:
//
//	source := testutil.NewStubPriceSource(map[string]float64{"BTC": 50000})
//	router := &pricing.Router{Crypto: source, Equity: source}
type StubPriceSource struct {
	mu      sync.Mutex
	quotes  map[string]pricing.Quote
	err     error
	lookups int
}

// NewStubPriceSource creates a stub source serving the given prices in the
// test reporting currency with zero 24h change.
func NewStubPriceSource(prices map[string]float64) *StubPriceSource {
	quotes := make(map[string]pricing.Quote, len(prices))
	for symbol, price := range prices {
		quotes[symbol] = pricing.Quote{
			Symbol:   symbol,
			Price:    price,
			Currency: TestVsCurrency,
		}
	}
	return &StubPriceSource{quotes: quotes}
}

// WithError configures the stub to fail every lookup with err.
func (s *StubPriceSource) WithError(err error) *StubPriceSource {
	s.err = err
	return s
}

// SetQuote adds or replaces a quote.
func (s *StubPriceSource) SetQuote(q pricing.Quote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotes[q.Symbol] = q
}

// Quote implements pricing.Source.
func (s *StubPriceSource) Quote(_ context.Context, symbol string) (pricing.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lookups++
	if s.err != nil {
		return pricing.Quote{}, s.err
	}

	q, ok := s.quotes[symbol]
	if !ok {
		return pricing.Quote{}, pricing.ErrNoData
	}
	return q, nil
}

// Lookups returns how many times Quote was called.
func (s *StubPriceSource) Lookups() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookups
}
