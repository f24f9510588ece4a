package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/kingao12/investment-platform/internal/apperrors"
	"github.com/kingao12/investment-platform/internal/model"
)

// CalendarRepository provides data access methods for the calendar_event table.
type CalendarRepository struct {
	db *sql.DB
}

// NewCalendarRepository creates a new CalendarRepository with the provided database connection.
func NewCalendarRepository(db *sql.DB) *CalendarRepository {
	return &CalendarRepository{db: db}
}

// GetEvents retrieves all calendar events within the date range, ascending by date.
func (r *CalendarRepository) GetEvents(startDate, endDate time.Time) ([]model.CalendarEvent, error) {
	rows, err := r.db.Query(`
		SELECT id, date, title, country, category, importance
		FROM calendar_event
		WHERE date >= ? AND date <= ?
		ORDER BY date ASC
	`, startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to query calendar_event table: %w", err)
	}
	defer rows.Close()

	events := []model.CalendarEvent{}
	for rows.Next() {
		var e model.CalendarEvent
		var dateStr string
		var country, category sql.NullString

		err := rows.Scan(&e.ID, &dateStr, &e.Title, &country, &category, &e.Importance)
		if err != nil {
			return nil, fmt.Errorf("failed to scan calendar_event table results: %w", err)
		}
		e.Date, err = ParseTime(dateStr)
		if err != nil || e.Date.IsZero() {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}
		e.Country = country.String
		e.Category = category.String
		events = append(events, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating calendar_event table: %w", err)
	}

	return events, nil
}

// GetEvent retrieves a single calendar event by its ID.
// Returns apperrors.ErrCalendarEventNotFound if no row exists.
func (r *CalendarRepository) GetEvent(eventID string) (model.CalendarEvent, error) {
	var e model.CalendarEvent
	var dateStr string
	var country, category sql.NullString

	err := r.db.QueryRow(`
		SELECT id, date, title, country, category, importance
		FROM calendar_event
		WHERE id = ?
	`, eventID).Scan(&e.ID, &dateStr, &e.Title, &country, &category, &e.Importance)
	if errors.Is(err, sql.ErrNoRows) {
		return model.CalendarEvent{}, apperrors.ErrCalendarEventNotFound
	}
	if err != nil {
		return model.CalendarEvent{}, fmt.Errorf("failed to query calendar_event table: %w", err)
	}

	e.Date, err = ParseTime(dateStr)
	if err != nil || e.Date.IsZero() {
		return model.CalendarEvent{}, fmt.Errorf("failed to parse date: %w", err)
	}
	e.Country = country.String
	e.Category = category.String
	return e, nil
}

// InsertEvent stores a new calendar event.
func (r *CalendarRepository) InsertEvent(ctx context.Context, e *model.CalendarEvent) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO calendar_event (id, date, title, country, category, importance)
		VALUES (?, ?, ?, ?, ?, ?)
	`, e.ID, e.Date.Format("2006-01-02"), e.Title, e.Country, e.Category, e.Importance)
	if err != nil {
		return fmt.Errorf("failed to insert calendar event: %w", err)
	}
	return nil
}

// UpdateEvent replaces the stored fields of an existing calendar event.
// Returns apperrors.ErrCalendarEventNotFound if no row was affected.
func (r *CalendarRepository) UpdateEvent(ctx context.Context, e *model.CalendarEvent) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE calendar_event
		SET date = ?, title = ?, country = ?, category = ?, importance = ?
		WHERE id = ?
	`, e.Date.Format("2006-01-02"), e.Title, e.Country, e.Category, e.Importance, e.ID)
	if err != nil {
		return fmt.Errorf("failed to update calendar event: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrCalendarEventNotFound
	}
	return nil
}

// DeleteEvent removes a calendar event.
// Returns apperrors.ErrCalendarEventNotFound if no row was affected.
func (r *CalendarRepository) DeleteEvent(ctx context.Context, eventID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM calendar_event WHERE id = ?`, eventID)
	if err != nil {
		return fmt.Errorf("failed to delete calendar event: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrCalendarEventNotFound
	}
	return nil
}
