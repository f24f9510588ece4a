package service_test

import (
	"context"
	"testing"

	"github.com/kingao12/investment-platform/internal/model"
	"github.com/kingao12/investment-platform/internal/pricing"
	"github.com/kingao12/investment-platform/internal/service"
	"github.com/kingao12/investment-platform/internal/testutil"
)

// TestValuationService_ValueHoldings tests the full valuation pass over a
// set of holdings.
//
// WHY: A batch of N holdings with M failing lookups must still produce N
// valuations, with exactly the failing ones at break-even. One bad symbol
// must never disturb its neighbors.
func TestValuationService_ValueHoldings(t *testing.T) {
	t.Run("empty holdings give empty valuations", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		source := testutil.NewStubPriceSource(nil)
		svc := testutil.NewTestValuationService(t, db, &pricing.Router{Crypto: source, Equity: source})

		valuations, err := svc.ValueHoldings(context.Background(), nil)
		if err != nil {
			t.Fatalf("ValueHoldings() returned unexpected error: %v", err)
		}
		if len(valuations) != 0 {
			t.Errorf("Expected no valuations, got %d", len(valuations))
		}
	})

	t.Run("mixed batch resolves independently", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		portfolio := testutil.CreatePortfolio(t, db, "Mixed")

		priced := testutil.CreateHolding(t, db, portfolio.ID, "AAA", model.AssetStock)
		unpriced := testutil.CreateHolding(t, db, portfolio.ID, "ZZZ", model.AssetStock)
		testutil.CreateBuy(t, db, priced.ID, 10, 100)
		testutil.CreateBuy(t, db, unpriced.ID, 2, 500)

		// Only AAA has a quote; ZZZ resolves to no data.
		source := testutil.NewStubPriceSource(map[string]float64{"AAA": 110})
		svc := testutil.NewTestValuationService(t, db, &pricing.Router{Equity: source})

		valuations, err := svc.ValueHoldings(context.Background(), []model.Holding{priced, unpriced})
		if err != nil {
			t.Fatalf("ValueHoldings() returned unexpected error: %v", err)
		}

		if len(valuations) != 2 {
			t.Fatalf("Expected 2 valuations, got %d", len(valuations))
		}

		if !valuations[0].Priced {
			t.Error("Expected AAA to be priced")
		}
		if !almostEqual(valuations[0].CurrentValue, 1100) {
			t.Errorf("AAA CurrentValue = %v, want 1100", valuations[0].CurrentValue)
		}

		if valuations[1].Priced {
			t.Error("Expected ZZZ to be unpriced")
		}
		if !almostEqual(valuations[1].CurrentValue, 1000) {
			t.Errorf("ZZZ CurrentValue = %v, want break-even 1000", valuations[1].CurrentValue)
		}
		if !almostEqual(valuations[1].ROIPercent, 0) {
			t.Errorf("ZZZ ROIPercent = %v, want 0", valuations[1].ROIPercent)
		}
	})

	t.Run("repeat pass with same inputs is identical", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		portfolio := testutil.CreatePortfolio(t, db, "Stable")
		holding := testutil.CreateHolding(t, db, portfolio.ID, "AAA", model.AssetStock)
		testutil.CreateBuy(t, db, holding.ID, 10, 100)

		source := testutil.NewStubPriceSource(map[string]float64{"AAA": 120})
		svc := testutil.NewTestValuationService(t, db, &pricing.Router{Equity: source})

		first, err := svc.ValueHoldings(context.Background(), []model.Holding{holding})
		if err != nil {
			t.Fatalf("first pass returned unexpected error: %v", err)
		}
		second, err := svc.ValueHoldings(context.Background(), []model.Holding{holding})
		if err != nil {
			t.Fatalf("second pass returned unexpected error: %v", err)
		}

		if first[0] != second[0] {
			t.Errorf("Valuation changed between passes:\nfirst:  %+v\nsecond: %+v", first[0], second[0])
		}
	})

	t.Run("failed lookup falls back to stored snapshot", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		portfolio := testutil.CreatePortfolio(t, db, "Snapshot")
		holding := testutil.CreateHolding(t, db, portfolio.ID, "BTC", model.AssetCrypto)
		testutil.CreateBuy(t, db, holding.ID, 2, 40000)

		// First pass succeeds and persists a snapshot.
		live := testutil.NewStubPriceSource(map[string]float64{"BTC": 50000})
		svc := testutil.NewTestValuationService(t, db, &pricing.Router{Crypto: live})
		if _, err := svc.ValueHoldings(context.Background(), []model.Holding{holding}); err != nil {
			t.Fatalf("seeding pass returned unexpected error: %v", err)
		}

		// Second pass against a dead source must reuse the snapshot.
		dead := testutil.NewStubPriceSource(nil).WithError(pricing.ErrNoData)
		svc = testutil.NewTestValuationService(t, db, &pricing.Router{Crypto: dead})

		valuations, err := svc.ValueHoldings(context.Background(), []model.Holding{holding})
		if err != nil {
			t.Fatalf("ValueHoldings() returned unexpected error: %v", err)
		}

		if !valuations[0].Priced {
			t.Fatal("Expected holding priced from snapshot")
		}
		if !almostEqual(valuations[0].CurrentPrice, 50000) {
			t.Errorf("CurrentPrice = %v, want snapshot price 50000", valuations[0].CurrentPrice)
		}
	})

	t.Run("asset class without a feed values at break-even", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		portfolio := testutil.CreatePortfolio(t, db, "Cash")
		holding := testutil.CreateHolding(t, db, portfolio.ID, "KRW", model.AssetCash)
		testutil.CreateBuy(t, db, holding.ID, 1, 1000000)

		source := testutil.NewStubPriceSource(map[string]float64{"KRW": 2})
		svc := testutil.NewTestValuationService(t, db, &pricing.Router{Crypto: source, Equity: source})

		valuations, err := svc.ValueHoldings(context.Background(), []model.Holding{holding})
		if err != nil {
			t.Fatalf("ValueHoldings() returned unexpected error: %v", err)
		}

		if valuations[0].Priced {
			t.Error("Expected CASH holding to be unpriced")
		}
		if source.Lookups() != 0 {
			t.Errorf("Expected no lookups for CASH, got %d", source.Lookups())
		}
	})
}

// TestSummarizePortfolio tests the portfolio-level rollup.
//
// WHY: Portfolio totals must be sums of holdings with gain and ROI derived
// from the sums, and they must not depend on the order holdings arrive in.
func TestSummarizePortfolio(t *testing.T) {
	portfolio := model.Portfolio{ID: "p1", Name: "Main"}

	a := model.HoldingValuation{NetInvested: 1000, CurrentValue: 1100, RealizedGain: 50}
	b := model.HoldingValuation{NetInvested: 500, CurrentValue: 450, RealizedGain: 0}
	c := model.HoldingValuation{NetInvested: 200, CurrentValue: 200, RealizedGain: 10}

	t.Run("totals sum and derive", func(t *testing.T) {
		summary := service.SummarizePortfolio(portfolio, []model.HoldingValuation{a, b, c})

		if !almostEqual(summary.TotalInvested, 1700) {
			t.Errorf("TotalInvested = %v, want 1700", summary.TotalInvested)
		}
		if !almostEqual(summary.TotalValue, 1750) {
			t.Errorf("TotalValue = %v, want 1750", summary.TotalValue)
		}
		if !almostEqual(summary.TotalGain, 50) {
			t.Errorf("TotalGain = %v, want 50", summary.TotalGain)
		}
		if !almostEqual(summary.RealizedGain, 60) {
			t.Errorf("RealizedGain = %v, want 60", summary.RealizedGain)
		}
		// 50 / 1700 * 100 rounded to 2dp
		if !almostEqual(summary.ROIPercent, 2.94) {
			t.Errorf("ROIPercent = %v, want 2.94", summary.ROIPercent)
		}
	})

	t.Run("totals are order independent", func(t *testing.T) {
		forward := service.SummarizePortfolio(portfolio, []model.HoldingValuation{a, b, c})
		reversed := service.SummarizePortfolio(portfolio, []model.HoldingValuation{c, b, a})

		if forward.TotalInvested != reversed.TotalInvested ||
			forward.TotalValue != reversed.TotalValue ||
			forward.TotalGain != reversed.TotalGain ||
			forward.ROIPercent != reversed.ROIPercent {
			t.Errorf("Summary depends on holding order:\nforward:  %+v\nreversed: %+v", forward, reversed)
		}
	})

	t.Run("zero invested gives zero roi", func(t *testing.T) {
		summary := service.SummarizePortfolio(portfolio, nil)

		if !almostEqual(summary.ROIPercent, 0) {
			t.Errorf("ROIPercent = %v, want 0 for empty portfolio", summary.ROIPercent)
		}
	})
}

// TestValuationService_RefreshPrices tests the snapshot refresh pass.
//
// WHY: The refresh endpoint and cron job report resolved/failed counts and
// must deduplicate symbols so one symbol held in two portfolios costs one
// lookup.
func TestValuationService_RefreshPrices(t *testing.T) {
	t.Run("counts resolved and failed lookups", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		portfolio := testutil.CreatePortfolio(t, db, "Refresh")

		good := testutil.CreateHolding(t, db, portfolio.ID, "AAA", model.AssetStock)
		bad := testutil.CreateHolding(t, db, portfolio.ID, "ZZZ", model.AssetStock)

		source := testutil.NewStubPriceSource(map[string]float64{"AAA": 10})
		svc := testutil.NewTestValuationService(t, db, &pricing.Router{Equity: source})

		resolved, failed := svc.RefreshPrices(context.Background(), []model.Holding{good, bad})

		if resolved != 1 {
			t.Errorf("resolved = %d, want 1", resolved)
		}
		if failed != 1 {
			t.Errorf("failed = %d, want 1", failed)
		}
	})

	t.Run("duplicate symbols are looked up once", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		p1 := testutil.CreatePortfolio(t, db, "One")
		p2 := testutil.CreatePortfolio(t, db, "Two")

		h1 := testutil.CreateHolding(t, db, p1.ID, "AAA", model.AssetStock)
		h2 := testutil.CreateHolding(t, db, p2.ID, "AAA", model.AssetStock)

		source := testutil.NewStubPriceSource(map[string]float64{"AAA": 10})
		svc := testutil.NewTestValuationService(t, db, &pricing.Router{Equity: source})

		resolved, failed := svc.RefreshPrices(context.Background(), []model.Holding{h1, h2})

		if resolved != 1 || failed != 0 {
			t.Errorf("resolved, failed = %d, %d, want 1, 0", resolved, failed)
		}
		if source.Lookups() != 1 {
			t.Errorf("Lookups = %d, want 1 for deduplicated symbol", source.Lookups())
		}
	})
}
