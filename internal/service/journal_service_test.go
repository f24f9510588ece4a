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

// TestJournalService tests the trade-journal lifecycle.
//
// WHY: Journal entries are the one record kept purely for the user; symbols
// normalize to uppercase on write so journal rows line up with holdings, and
// retrieval is newest first.
func TestJournalService(t *testing.T) {
	t.Run("create normalizes the symbol", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestJournalService(t, db)

		entry, err := svc.CreateEntry(context.Background(), request.CreateJournalEntryRequest{
			Date:     "2026-04-01",
			Symbol:   " btc ",
			Side:     model.TransactionBuy,
			Quantity: 0.5,
			Price:    50000000,
			Reason:   "breakout",
			Result:   model.JournalOpen,
		})
		if err != nil {
			t.Fatalf("CreateEntry() returned unexpected error: %v", err)
		}

		if entry.Symbol != "BTC" {
			t.Errorf("Symbol = %q, want BTC", entry.Symbol)
		}
	})

	t.Run("entries come back newest first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestJournalService(t, db)

		for _, date := range []string{"2026-04-01", "2026-04-03", "2026-04-02"} {
			if _, err := svc.CreateEntry(context.Background(), request.CreateJournalEntryRequest{
				Date:     date,
				Symbol:   "AAA",
				Side:     model.TransactionBuy,
				Quantity: 1,
				Price:    10,
				Result:   model.JournalWin,
			}); err != nil {
				t.Fatalf("CreateEntry() returned unexpected error: %v", err)
			}
		}

		entries, err := svc.GetEntries()
		if err != nil {
			t.Fatalf("GetEntries() returned unexpected error: %v", err)
		}

		if len(entries) != 3 {
			t.Fatalf("Expected 3 entries, got %d", len(entries))
		}
		for i := 1; i < len(entries); i++ {
			if entries[i].Date.After(entries[i-1].Date) {
				t.Errorf("entries[%d] is newer than entries[%d]", i, i-1)
			}
		}
	})

	t.Run("update applies provided fields only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestJournalService(t, db)

		entry, err := svc.CreateEntry(context.Background(), request.CreateJournalEntryRequest{
			Date:     "2026-04-01",
			Symbol:   "BTC",
			Side:     model.TransactionBuy,
			Quantity: 0.5,
			Price:    50000000,
			Reason:   "breakout",
			Result:   model.JournalOpen,
		})
		if err != nil {
			t.Fatalf("CreateEntry() returned unexpected error: %v", err)
		}

		newResult := model.JournalWin
		newReason := "took profit at target"
		updated, err := svc.UpdateEntry(context.Background(), entry.ID, request.UpdateJournalEntryRequest{
			Result: &newResult,
			Reason: &newReason,
		})
		if err != nil {
			t.Fatalf("UpdateEntry() returned unexpected error: %v", err)
		}

		if updated.Result != model.JournalWin {
			t.Errorf("Result = %q, want WIN", updated.Result)
		}
		if updated.Reason != newReason {
			t.Errorf("Reason = %q, want %q", updated.Reason, newReason)
		}
		if updated.Symbol != "BTC" || updated.Quantity != 0.5 {
			t.Errorf("Untouched fields changed: symbol %q quantity %v", updated.Symbol, updated.Quantity)
		}
	})

	t.Run("update normalizes the symbol", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestJournalService(t, db)

		entry, err := svc.CreateEntry(context.Background(), request.CreateJournalEntryRequest{
			Date:     "2026-04-01",
			Symbol:   "BTC",
			Side:     model.TransactionBuy,
			Quantity: 1,
			Price:    10,
			Result:   model.JournalOpen,
		})
		if err != nil {
			t.Fatalf("CreateEntry() returned unexpected error: %v", err)
		}

		newSymbol := " eth "
		updated, err := svc.UpdateEntry(context.Background(), entry.ID, request.UpdateJournalEntryRequest{
			Symbol: &newSymbol,
		})
		if err != nil {
			t.Fatalf("UpdateEntry() returned unexpected error: %v", err)
		}

		if updated.Symbol != "ETH" {
			t.Errorf("Symbol = %q, want ETH", updated.Symbol)
		}
	})

	t.Run("update of missing entry returns not found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestJournalService(t, db)

		newReason := "x"
		_, err := svc.UpdateEntry(context.Background(), testutil.MakeID(), request.UpdateJournalEntryRequest{
			Reason: &newReason,
		})
		if !errors.Is(err, apperrors.ErrJournalEntryNotFound) {
			t.Errorf("Expected ErrJournalEntryNotFound, got %v", err)
		}
	})

	t.Run("delete of missing entry returns not found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestJournalService(t, db)

		err := svc.DeleteEntry(context.Background(), testutil.MakeID())
		if !errors.Is(err, apperrors.ErrJournalEntryNotFound) {
			t.Errorf("Expected ErrJournalEntryNotFound, got %v", err)
		}
	})
}
