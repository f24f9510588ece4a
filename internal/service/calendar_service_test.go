package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kingao12/investment-platform/internal/api/request"
	"github.com/kingao12/investment-platform/internal/apperrors"
	"github.com/kingao12/investment-platform/internal/model"
	"github.com/kingao12/investment-platform/internal/service"
	"github.com/kingao12/investment-platform/internal/testutil"
)

// TestCalendarService tests the economic-calendar lifecycle.
//
// WHY: The calendar query is range-based; events outside the window must not
// leak in, and an inverted range is rejected with the sentinel so the handler
// can answer 400.
func TestCalendarService(t *testing.T) {
	createEvent := func(t *testing.T, svc *service.CalendarService, date, title string) {
		t.Helper()
		if _, err := svc.CreateEvent(context.Background(), request.CreateCalendarEventRequest{
			Date:       date,
			Title:      title,
			Importance: model.ImportanceHigh,
		}); err != nil {
			t.Fatalf("CreateEvent() returned unexpected error: %v", err)
		}
	}

	t.Run("range query filters by date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestCalendarService(t, db)

		createEvent(t, svc, "2026-05-01", "FOMC")
		createEvent(t, svc, "2026-05-15", "CPI")
		createEvent(t, svc, "2026-06-01", "NFP")

		events, err := svc.GetEvents(
			time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC),
		)
		if err != nil {
			t.Fatalf("GetEvents() returned unexpected error: %v", err)
		}

		if len(events) != 2 {
			t.Fatalf("Expected 2 events in May, got %d", len(events))
		}
		for _, e := range events {
			if e.Date.Month() != time.May {
				t.Errorf("Event %q dated %v leaked into the May window", e.Title, e.Date)
			}
		}
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestCalendarService(t, db)

		_, err := svc.GetEvents(
			time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		)
		if !errors.Is(err, apperrors.ErrInvalidDateRange) {
			t.Errorf("Expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("update applies provided fields only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestCalendarService(t, db)

		event, err := svc.CreateEvent(context.Background(), request.CreateCalendarEventRequest{
			Date:       "2026-05-01",
			Title:      "FOMC",
			Importance: model.ImportanceHigh,
		})
		if err != nil {
			t.Fatalf("CreateEvent() returned unexpected error: %v", err)
		}

		newDate := "2026-05-02"
		newImportance := model.ImportanceMedium
		updated, err := svc.UpdateEvent(context.Background(), event.ID, request.UpdateCalendarEventRequest{
			Date:       &newDate,
			Importance: &newImportance,
		})
		if err != nil {
			t.Fatalf("UpdateEvent() returned unexpected error: %v", err)
		}

		if updated.Date.Format("2006-01-02") != "2026-05-02" {
			t.Errorf("Date = %v, want 2026-05-02", updated.Date)
		}
		if updated.Importance != model.ImportanceMedium {
			t.Errorf("Importance = %q, want medium", updated.Importance)
		}
		if updated.Title != "FOMC" {
			t.Errorf("Title changed to %q, want untouched FOMC", updated.Title)
		}
	})

	t.Run("update of missing event returns not found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestCalendarService(t, db)

		newTitle := "CPI"
		_, err := svc.UpdateEvent(context.Background(), testutil.MakeID(), request.UpdateCalendarEventRequest{
			Title: &newTitle,
		})
		if !errors.Is(err, apperrors.ErrCalendarEventNotFound) {
			t.Errorf("Expected ErrCalendarEventNotFound, got %v", err)
		}
	})

	t.Run("delete of missing event returns not found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestCalendarService(t, db)

		err := svc.DeleteEvent(context.Background(), testutil.MakeID())
		if !errors.Is(err, apperrors.ErrCalendarEventNotFound) {
			t.Errorf("Expected ErrCalendarEventNotFound, got %v", err)
		}
	})
}
