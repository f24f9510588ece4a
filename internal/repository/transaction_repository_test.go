package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kingao12/investment-platform/internal/apperrors"
	"github.com/kingao12/investment-platform/internal/model"
	"github.com/kingao12/investment-platform/internal/repository"
	"github.com/kingao12/investment-platform/internal/testutil"
)

func day(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}

// TestTransactionRepository_GetLedger tests ledger retrieval and ordering.
//
// WHY: The cost-basis reduction is only correct on a chronologically ordered
// ledger, and this query is the single place that ordering is enforced.
func TestTransactionRepository_GetLedger(t *testing.T) {
	t.Run("orders by date regardless of insert order", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		portfolio := testutil.CreatePortfolio(t, db, "Main")
		holding := testutil.CreateHolding(t, db, portfolio.ID, "AAA", model.AssetStock)
		repo := repository.NewTransactionRepository(db)

		// Insert newest first.
		third := testutil.NewTransaction(holding.ID).WithDate(day(20)).Build(t, db)
		first := testutil.NewTransaction(holding.ID).WithDate(day(1)).Build(t, db)
		second := testutil.NewTransaction(holding.ID).WithDate(day(10)).Build(t, db)

		ledger, err := repo.GetLedger(holding.ID)
		if err != nil {
			t.Fatalf("GetLedger() returned unexpected error: %v", err)
		}

		if len(ledger) != 3 {
			t.Fatalf("Expected 3 transactions, got %d", len(ledger))
		}

		wantOrder := []string{first.ID, second.ID, third.ID}
		for i, want := range wantOrder {
			if ledger[i].ID != want {
				t.Errorf("ledger[%d].ID = %s, want %s", i, ledger[i].ID, want)
			}
		}
	})

	t.Run("empty ledger returns empty slice", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		portfolio := testutil.CreatePortfolio(t, db, "Main")
		holding := testutil.CreateHolding(t, db, portfolio.ID, "AAA", model.AssetStock)
		repo := repository.NewTransactionRepository(db)

		ledger, err := repo.GetLedger(holding.ID)
		if err != nil {
			t.Fatalf("GetLedger() returned unexpected error: %v", err)
		}
		if len(ledger) != 0 {
			t.Errorf("Expected empty ledger, got %d rows", len(ledger))
		}
	})
}

// TestTransactionRepository_GetLedgers tests the grouped multi-holding fetch.
//
// WHY: Portfolio valuation loads every ledger in one query; rows must group
// under the right holding and keep their per-holding ordering.
func TestTransactionRepository_GetLedgers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	portfolio := testutil.CreatePortfolio(t, db, "Main")
	h1 := testutil.CreateHolding(t, db, portfolio.ID, "AAA", model.AssetStock)
	h2 := testutil.CreateHolding(t, db, portfolio.ID, "BBB", model.AssetStock)
	repo := repository.NewTransactionRepository(db)

	testutil.NewTransaction(h1.ID).WithDate(day(2)).Build(t, db)
	testutil.NewTransaction(h1.ID).WithDate(day(1)).Build(t, db)
	testutil.NewTransaction(h2.ID).WithDate(day(5)).Build(t, db)

	ledgers, err := repo.GetLedgers([]string{h1.ID, h2.ID})
	if err != nil {
		t.Fatalf("GetLedgers() returned unexpected error: %v", err)
	}

	if len(ledgers[h1.ID]) != 2 {
		t.Errorf("Expected 2 transactions for h1, got %d", len(ledgers[h1.ID]))
	}
	if len(ledgers[h2.ID]) != 1 {
		t.Errorf("Expected 1 transaction for h2, got %d", len(ledgers[h2.ID]))
	}
	if len(ledgers[h1.ID]) == 2 && ledgers[h1.ID][0].Date.After(ledgers[h1.ID][1].Date) {
		t.Error("h1 ledger is not in chronological order")
	}

	empty, err := repo.GetLedgers(nil)
	if err != nil {
		t.Fatalf("GetLedgers(nil) returned unexpected error: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("Expected empty map for no holdings, got %d entries", len(empty))
	}
}

// TestTransactionRepository_Mutations tests insert, update, and delete.
//
// WHY: Missing rows must surface as the ErrTransactionNotFound sentinel so
// the HTTP layer can map them to 404, and deleting a holding must cascade to
// its transactions.
func TestTransactionRepository_Mutations(t *testing.T) {
	t.Run("update of missing row returns not found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewTransactionRepository(db)

		err := repo.UpdateTransaction(context.Background(), &model.Transaction{
			ID:   testutil.MakeID(),
			Kind: model.TransactionBuy,
			Date: day(1),
		})
		if !errors.Is(err, apperrors.ErrTransactionNotFound) {
			t.Errorf("Expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("delete of missing row returns not found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewTransactionRepository(db)

		err := repo.DeleteTransaction(context.Background(), testutil.MakeID())
		if !errors.Is(err, apperrors.ErrTransactionNotFound) {
			t.Errorf("Expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("deleting a holding cascades to its transactions", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		portfolio := testutil.CreatePortfolio(t, db, "Main")
		holding := testutil.CreateHolding(t, db, portfolio.ID, "AAA", model.AssetStock)
		tx := testutil.CreateBuy(t, db, holding.ID, 10, 100)

		holdingRepo := repository.NewHoldingRepository(db)
		transactionRepo := repository.NewTransactionRepository(db)

		if err := holdingRepo.DeleteHolding(context.Background(), holding.ID); err != nil {
			t.Fatalf("DeleteHolding() returned unexpected error: %v", err)
		}

		_, err := transactionRepo.GetTransaction(tx.ID)
		if !errors.Is(err, apperrors.ErrTransactionNotFound) {
			t.Errorf("Expected cascaded delete, got %v", err)
		}
	})

	t.Run("insert then get round-trips", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		portfolio := testutil.CreatePortfolio(t, db, "Main")
		holding := testutil.CreateHolding(t, db, portfolio.ID, "AAA", model.AssetStock)
		repo := repository.NewTransactionRepository(db)

		want := model.Transaction{
			ID:          testutil.MakeID(),
			HoldingID:   holding.ID,
			Kind:        model.TransactionSell,
			Quantity:    4,
			UnitPrice:   120,
			Fee:         1.5,
			TotalAmount: 480,
			Date:        day(7),
			Note:        "trim position",
		}
		if err := repo.InsertTransaction(context.Background(), &want); err != nil {
			t.Fatalf("InsertTransaction() returned unexpected error: %v", err)
		}

		got, err := repo.GetTransaction(want.ID)
		if err != nil {
			t.Fatalf("GetTransaction() returned unexpected error: %v", err)
		}

		if got.Kind != want.Kind || got.Quantity != want.Quantity ||
			got.UnitPrice != want.UnitPrice || got.Fee != want.Fee ||
			got.TotalAmount != want.TotalAmount || got.Note != want.Note {
			t.Errorf("GetTransaction() = %+v, want fields of %+v", got, want)
		}
		if !got.Date.Equal(want.Date) {
			t.Errorf("Date = %v, want %v", got.Date, want.Date)
		}
	})
}
