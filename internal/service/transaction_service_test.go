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

// TestTransactionService_CreateTransaction tests transaction creation.
//
// WHY: totalAmount is derived server-side as quantity * unitPrice with the
// fee kept separate, and a SELL may never take the position negative. Both
// rules live here, not in the calculator, so they need their own coverage.
func TestTransactionService_CreateTransaction(t *testing.T) {
	t.Run("computes total amount from quantity and unit price", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		portfolio := testutil.CreatePortfolio(t, db, "Main")
		holding := testutil.CreateHolding(t, db, portfolio.ID, "AAA", model.AssetStock)
		svc := testutil.NewTestTransactionService(t, db)

		tx, err := svc.CreateTransaction(context.Background(), request.CreateTransactionRequest{
			HoldingID: holding.ID,
			Date:      "2026-02-01",
			Kind:      model.TransactionBuy,
			Quantity:  10,
			UnitPrice: 100,
			Fee:       5,
		})
		if err != nil {
			t.Fatalf("CreateTransaction() returned unexpected error: %v", err)
		}

		if !almostEqual(tx.TotalAmount, 1000) {
			t.Errorf("TotalAmount = %v, want 1000 (fee kept separate)", tx.TotalAmount)
		}
		if !almostEqual(tx.Fee, 5) {
			t.Errorf("Fee = %v, want 5", tx.Fee)
		}
	})

	t.Run("rejects sell exceeding net shares", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		portfolio := testutil.CreatePortfolio(t, db, "Main")
		holding := testutil.CreateHolding(t, db, portfolio.ID, "AAA", model.AssetStock)
		testutil.CreateBuy(t, db, holding.ID, 10, 100)
		svc := testutil.NewTestTransactionService(t, db)

		_, err := svc.CreateTransaction(context.Background(), request.CreateTransactionRequest{
			HoldingID: holding.ID,
			Date:      "2026-02-01",
			Kind:      model.TransactionSell,
			Quantity:  11,
			UnitPrice: 100,
		})

		if !errors.Is(err, apperrors.ErrInsufficientShares) {
			t.Errorf("Expected ErrInsufficientShares, got %v", err)
		}
	})

	t.Run("allows sell of exactly the net position", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		portfolio := testutil.CreatePortfolio(t, db, "Main")
		holding := testutil.CreateHolding(t, db, portfolio.ID, "AAA", model.AssetStock)
		testutil.CreateBuy(t, db, holding.ID, 10, 100)
		svc := testutil.NewTestTransactionService(t, db)

		_, err := svc.CreateTransaction(context.Background(), request.CreateTransactionRequest{
			HoldingID: holding.ID,
			Date:      "2026-02-01",
			Kind:      model.TransactionSell,
			Quantity:  10,
			UnitPrice: 120,
		})
		if err != nil {
			t.Fatalf("CreateTransaction() returned unexpected error: %v", err)
		}
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		portfolio := testutil.CreatePortfolio(t, db, "Main")
		holding := testutil.CreateHolding(t, db, portfolio.ID, "AAA", model.AssetStock)
		svc := testutil.NewTestTransactionService(t, db)

		_, err := svc.CreateTransaction(context.Background(), request.CreateTransactionRequest{
			HoldingID: holding.ID,
			Date:      "2026-02-01",
			Kind:      "SHORT",
			Quantity:  1,
			UnitPrice: 1,
		})

		if !errors.Is(err, apperrors.ErrInvalidTransactionKind) {
			t.Errorf("Expected ErrInvalidTransactionKind, got %v", err)
		}
	})

	t.Run("rejects negative unit price or fee", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		portfolio := testutil.CreatePortfolio(t, db, "Main")
		holding := testutil.CreateHolding(t, db, portfolio.ID, "AAA", model.AssetStock)
		svc := testutil.NewTestTransactionService(t, db)

		_, err := svc.CreateTransaction(context.Background(), request.CreateTransactionRequest{
			HoldingID: holding.ID,
			Date:      "2026-02-01",
			Kind:      model.TransactionBuy,
			Quantity:  1,
			UnitPrice: 100,
			Fee:       -1,
		})

		if !errors.Is(err, apperrors.ErrNegativeAmount) {
			t.Errorf("Expected ErrNegativeAmount, got %v", err)
		}
	})

	t.Run("rejects unknown holding", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)

		_, err := svc.CreateTransaction(context.Background(), request.CreateTransactionRequest{
			HoldingID: testutil.MakeID(),
			Date:      "2026-02-01",
			Kind:      model.TransactionBuy,
			Quantity:  1,
			UnitPrice: 1,
		})

		if !errors.Is(err, apperrors.ErrHoldingNotFound) {
			t.Errorf("Expected ErrHoldingNotFound, got %v", err)
		}
	})
}

// TestTransactionService_UpdateTransaction tests transaction updates.
//
// WHY: Updates recompute totalAmount and re-run the over-sell check against
// the ledger without the old version of the row, so editing an existing SELL
// must not double-count itself.
func TestTransactionService_UpdateTransaction(t *testing.T) {
	t.Run("recomputes total amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		portfolio := testutil.CreatePortfolio(t, db, "Main")
		holding := testutil.CreateHolding(t, db, portfolio.ID, "AAA", model.AssetStock)
		tx := testutil.CreateBuy(t, db, holding.ID, 10, 100)
		svc := testutil.NewTestTransactionService(t, db)

		newPrice := 150.0
		updated, err := svc.UpdateTransaction(context.Background(), tx.ID, request.UpdateTransactionRequest{
			UnitPrice: &newPrice,
		})
		if err != nil {
			t.Fatalf("UpdateTransaction() returned unexpected error: %v", err)
		}

		if !almostEqual(updated.TotalAmount, 1500) {
			t.Errorf("TotalAmount = %v, want recomputed 1500", updated.TotalAmount)
		}
	})

	t.Run("editing a sell excludes its old version from the check", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		portfolio := testutil.CreatePortfolio(t, db, "Main")
		holding := testutil.CreateHolding(t, db, portfolio.ID, "AAA", model.AssetStock)
		testutil.CreateBuy(t, db, holding.ID, 10, 100)
		sellTx := testutil.CreateSell(t, db, holding.ID, 6, 120)
		svc := testutil.NewTestTransactionService(t, db)

		// Raising the sell from 6 to 10 is fine: the buy covers it once the
		// old sell is excluded.
		newQuantity := 10.0
		if _, err := svc.UpdateTransaction(context.Background(), sellTx.ID, request.UpdateTransactionRequest{
			Quantity: &newQuantity,
		}); err != nil {
			t.Fatalf("UpdateTransaction() returned unexpected error: %v", err)
		}

		// Raising it beyond the buy is not.
		tooMany := 10.5
		_, err := svc.UpdateTransaction(context.Background(), sellTx.ID, request.UpdateTransactionRequest{
			Quantity: &tooMany,
		})
		if !errors.Is(err, apperrors.ErrInsufficientShares) {
			t.Errorf("Expected ErrInsufficientShares, got %v", err)
		}
	})

	t.Run("rejects changing the kind to an unknown value", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		portfolio := testutil.CreatePortfolio(t, db, "Main")
		holding := testutil.CreateHolding(t, db, portfolio.ID, "AAA", model.AssetStock)
		tx := testutil.CreateBuy(t, db, holding.ID, 10, 100)
		svc := testutil.NewTestTransactionService(t, db)

		badKind := "SHORT"
		_, err := svc.UpdateTransaction(context.Background(), tx.ID, request.UpdateTransactionRequest{
			Kind: &badKind,
		})

		if !errors.Is(err, apperrors.ErrInvalidTransactionKind) {
			t.Errorf("Expected ErrInvalidTransactionKind, got %v", err)
		}
	})

	t.Run("returns not found for missing transaction", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTransactionService(t, db)

		note := "x"
		_, err := svc.UpdateTransaction(context.Background(), testutil.MakeID(), request.UpdateTransactionRequest{
			Note: &note,
		})

		if !errors.Is(err, apperrors.ErrTransactionNotFound) {
			t.Errorf("Expected ErrTransactionNotFound, got %v", err)
		}
	})
}

// TestTransactionService_GetTransactionsPerHolding tests ledger retrieval.
//
// WHY: The ledger view decorates each row with the holding's symbol and
// display name; the rows themselves must come back in chronological order.
func TestTransactionService_GetTransactionsPerHolding(t *testing.T) {
	db := testutil.SetupTestDB(t)
	portfolio := testutil.CreatePortfolio(t, db, "Main")
	holding := testutil.CreateHolding(t, db, portfolio.ID, "AAA", model.AssetStock)
	testutil.CreateBuy(t, db, holding.ID, 10, 100)
	testutil.CreateSell(t, db, holding.ID, 4, 120)
	svc := testutil.NewTestTransactionService(t, db)

	transactions, err := svc.GetTransactionsPerHolding(holding.ID)
	if err != nil {
		t.Fatalf("GetTransactionsPerHolding() returned unexpected error: %v", err)
	}

	if len(transactions) != 2 {
		t.Fatalf("Expected 2 transactions, got %d", len(transactions))
	}
	for _, tx := range transactions {
		if tx.Symbol != holding.Symbol {
			t.Errorf("Symbol = %q, want %q", tx.Symbol, holding.Symbol)
		}
		if tx.HoldingName != holding.DisplayName {
			t.Errorf("HoldingName = %q, want %q", tx.HoldingName, holding.DisplayName)
		}
	}
}
