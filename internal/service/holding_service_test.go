package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/kingao12/investment-platform/internal/api/request"
	"github.com/kingao12/investment-platform/internal/apperrors"
	"github.com/kingao12/investment-platform/internal/model"
	"github.com/kingao12/investment-platform/internal/testutil"
)

// TestHoldingService tests the holding lifecycle.
//
// WHY: The service guards what the database cannot: symbols normalize to
// uppercase so price lookups and snapshot keys agree, and the asset class
// must stay within the supported set because it selects the price backend.
func TestHoldingService(t *testing.T) {
	t.Run("create normalizes the symbol", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		portfolio := testutil.CreatePortfolio(t, db, "Main")
		svc := testutil.NewTestHoldingService(t, db)

		holding, err := svc.CreateHolding(context.Background(), request.CreateHoldingRequest{
			PortfolioID: portfolio.ID,
			Symbol:      " btc ",
			DisplayName: "Bitcoin",
			AssetClass:  model.AssetCrypto,
		})
		if err != nil {
			t.Fatalf("CreateHolding() returned unexpected error: %v", err)
		}

		if holding.Symbol != "BTC" {
			t.Errorf("Symbol = %q, want BTC", holding.Symbol)
		}
	})

	t.Run("create rejects an unknown asset class", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		portfolio := testutil.CreatePortfolio(t, db, "Main")
		svc := testutil.NewTestHoldingService(t, db)

		_, err := svc.CreateHolding(context.Background(), request.CreateHoldingRequest{
			PortfolioID: portfolio.ID,
			Symbol:      "AAA",
			DisplayName: "Alpha",
			AssetClass:  "NFT",
		})

		if !errors.Is(err, apperrors.ErrInvalidAssetClass) {
			t.Errorf("Expected ErrInvalidAssetClass, got %v", err)
		}
	})

	t.Run("create rejects an unknown portfolio", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHoldingService(t, db)

		_, err := svc.CreateHolding(context.Background(), request.CreateHoldingRequest{
			PortfolioID: testutil.MakeID(),
			Symbol:      "AAA",
			DisplayName: "Alpha",
			AssetClass:  model.AssetStock,
		})

		if !errors.Is(err, apperrors.ErrPortfolioNotFound) {
			t.Errorf("Expected ErrPortfolioNotFound, got %v", err)
		}
	})

	t.Run("update rejects an unknown asset class", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		portfolio := testutil.CreatePortfolio(t, db, "Main")
		holding := testutil.CreateHolding(t, db, portfolio.ID, "AAA", model.AssetStock)
		svc := testutil.NewTestHoldingService(t, db)

		badClass := "NFT"
		_, err := svc.UpdateHolding(context.Background(), holding.ID, request.UpdateHoldingRequest{
			AssetClass: &badClass,
		})

		if !errors.Is(err, apperrors.ErrInvalidAssetClass) {
			t.Errorf("Expected ErrInvalidAssetClass, got %v", err)
		}
	})

	t.Run("update applies provided fields only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		portfolio := testutil.CreatePortfolio(t, db, "Main")
		holding := testutil.CreateHolding(t, db, portfolio.ID, "AAA", model.AssetStock)
		svc := testutil.NewTestHoldingService(t, db)

		newName := "Renamed"
		updated, err := svc.UpdateHolding(context.Background(), holding.ID, request.UpdateHoldingRequest{
			DisplayName: &newName,
		})
		if err != nil {
			t.Fatalf("UpdateHolding() returned unexpected error: %v", err)
		}

		if updated.DisplayName != "Renamed" {
			t.Errorf("DisplayName = %q, want Renamed", updated.DisplayName)
		}
		if updated.Symbol != holding.Symbol {
			t.Errorf("Symbol changed to %q, want untouched %q", updated.Symbol, holding.Symbol)
		}
	})
}
