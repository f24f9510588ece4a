package pricing_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/kingao12/investment-platform/internal/model"
	"github.com/kingao12/investment-platform/internal/pricing"
)

// mapSource is a minimal pricing.Source for router tests.
type mapSource struct {
	mu     sync.Mutex
	prices map[string]float64
	calls  int
}

func (s *mapSource) Quote(_ context.Context, symbol string) (pricing.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	price, ok := s.prices[symbol]
	if !ok {
		return pricing.Quote{}, pricing.ErrNoData
	}
	return pricing.Quote{Symbol: symbol, Price: price, Currency: "krw"}, nil
}

// TestRouter_SourceFor tests backend selection by asset class.
//
// WHY: CRYPTO routes to the crypto source, STOCK and ETF to the equity
// source, and everything else has no live feed at all.
func TestRouter_SourceFor(t *testing.T) {
	crypto := &mapSource{}
	equity := &mapSource{}
	router := &pricing.Router{Crypto: crypto, Equity: equity}

	tests := []struct {
		assetClass string
		want       pricing.Source
	}{
		{model.AssetCrypto, crypto},
		{model.AssetStock, equity},
		{model.AssetETF, equity},
		{model.AssetBond, nil},
		{model.AssetCash, nil},
		{model.AssetRealEstate, nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.assetClass, func(t *testing.T) {
			if got := router.SourceFor(tt.assetClass); got != tt.want {
				t.Errorf("SourceFor(%q) = %v, want %v", tt.assetClass, got, tt.want)
			}
		})
	}
}

// TestRouter_Resolve tests the collect-all fan-out.
//
// WHY: A batch of N lookups with M failures must return N results with
// exactly M errors, in request order. Failures are per-slot; nothing may
// cancel or reorder sibling lookups.
func TestRouter_Resolve(t *testing.T) {
	t.Run("failures stay in their own slots", func(t *testing.T) {
		source := &mapSource{prices: map[string]float64{"AAA": 10, "CCC": 30}}
		router := &pricing.Router{Equity: source}

		requests := []pricing.Request{
			{Symbol: "AAA", AssetClass: model.AssetStock},
			{Symbol: "BBB", AssetClass: model.AssetStock},
			{Symbol: "CCC", AssetClass: model.AssetStock},
		}

		results := router.Resolve(context.Background(), requests)

		if len(results) != 3 {
			t.Fatalf("Expected 3 results, got %d", len(results))
		}

		if results[0].Err != nil || results[0].Quote.Price != 10 {
			t.Errorf("AAA = %+v, want price 10 and no error", results[0])
		}
		if !errors.Is(results[1].Err, pricing.ErrNoData) {
			t.Errorf("BBB err = %v, want ErrNoData", results[1].Err)
		}
		if results[2].Err != nil || results[2].Quote.Price != 30 {
			t.Errorf("CCC = %+v, want price 30 and no error", results[2])
		}
	})

	t.Run("results keep request order", func(t *testing.T) {
		source := &mapSource{prices: map[string]float64{"A": 1, "B": 2, "C": 3, "D": 4}}
		router := &pricing.Router{Equity: source}

		requests := make([]pricing.Request, 0, 4)
		for _, s := range []string{"D", "B", "A", "C"} {
			requests = append(requests, pricing.Request{Symbol: s, AssetClass: model.AssetStock})
		}

		results := router.Resolve(context.Background(), requests)
		for i, r := range results {
			if r.Symbol != requests[i].Symbol {
				t.Errorf("results[%d].Symbol = %q, want %q", i, r.Symbol, requests[i].Symbol)
			}
		}
	})

	t.Run("unrouted asset class resolves to no data without a lookup", func(t *testing.T) {
		source := &mapSource{prices: map[string]float64{"GOLD": 2000}}
		router := &pricing.Router{Equity: source}

		results := router.Resolve(context.Background(), []pricing.Request{
			{Symbol: "GOLD", AssetClass: model.AssetCommodity},
		})

		if !errors.Is(results[0].Err, pricing.ErrNoData) {
			t.Errorf("err = %v, want ErrNoData", results[0].Err)
		}
		if source.calls != 0 {
			t.Errorf("Expected 0 lookups for COMMODITY, got %d", source.calls)
		}
	})

	t.Run("empty batch returns empty results", func(t *testing.T) {
		router := &pricing.Router{}

		results := router.Resolve(context.Background(), nil)
		if len(results) != 0 {
			t.Errorf("Expected no results, got %d", len(results))
		}
	})
}
