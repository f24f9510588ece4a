package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kingao12/investment-platform/internal/apperrors"
	"github.com/kingao12/investment-platform/internal/model"
)

// JournalRepository provides data access methods for the journal_entry table.
type JournalRepository struct {
	db *sql.DB
}

// NewJournalRepository creates a new JournalRepository with the provided database connection.
func NewJournalRepository(db *sql.DB) *JournalRepository {
	return &JournalRepository{db: db}
}

// GetEntries retrieves all journal entries, newest first.
func (r *JournalRepository) GetEntries() ([]model.JournalEntry, error) {
	rows, err := r.db.Query(`
		SELECT id, date, symbol, side, quantity, price, reason, result
		FROM journal_entry
		ORDER BY date DESC, created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal_entry table: %w", err)
	}
	defer rows.Close()

	entries := []model.JournalEntry{}
	for rows.Next() {
		var e model.JournalEntry
		var dateStr string
		var reason sql.NullString

		err := rows.Scan(&e.ID, &dateStr, &e.Symbol, &e.Side, &e.Quantity, &e.Price, &reason, &e.Result)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal_entry table results: %w", err)
		}
		e.Date, err = ParseTime(dateStr)
		if err != nil || e.Date.IsZero() {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}
		e.Reason = reason.String
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal_entry table: %w", err)
	}

	return entries, nil
}

// GetEntry retrieves a single journal entry by its ID.
// Returns apperrors.ErrJournalEntryNotFound if no row exists.
func (r *JournalRepository) GetEntry(entryID string) (model.JournalEntry, error) {
	var e model.JournalEntry
	var dateStr string
	var reason sql.NullString

	err := r.db.QueryRow(`
		SELECT id, date, symbol, side, quantity, price, reason, result
		FROM journal_entry
		WHERE id = ?
	`, entryID).Scan(&e.ID, &dateStr, &e.Symbol, &e.Side, &e.Quantity, &e.Price, &reason, &e.Result)
	if errors.Is(err, sql.ErrNoRows) {
		return model.JournalEntry{}, apperrors.ErrJournalEntryNotFound
	}
	if err != nil {
		return model.JournalEntry{}, fmt.Errorf("failed to query journal_entry table: %w", err)
	}

	e.Date, err = ParseTime(dateStr)
	if err != nil || e.Date.IsZero() {
		return model.JournalEntry{}, fmt.Errorf("failed to parse date: %w", err)
	}
	e.Reason = reason.String
	return e, nil
}

// InsertEntry stores a new journal entry.
func (r *JournalRepository) InsertEntry(ctx context.Context, e *model.JournalEntry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO journal_entry (id, date, symbol, side, quantity, price, reason, result)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.Date.Format("2006-01-02"), e.Symbol, e.Side, e.Quantity, e.Price, e.Reason, e.Result)
	if err != nil {
		return fmt.Errorf("failed to insert journal entry: %w", err)
	}
	return nil
}

// UpdateEntry replaces the stored fields of an existing journal entry.
// Returns apperrors.ErrJournalEntryNotFound if no row was affected.
func (r *JournalRepository) UpdateEntry(ctx context.Context, e *model.JournalEntry) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE journal_entry
		SET date = ?, symbol = ?, side = ?, quantity = ?, price = ?, reason = ?, result = ?
		WHERE id = ?
	`, e.Date.Format("2006-01-02"), e.Symbol, e.Side, e.Quantity, e.Price, e.Reason, e.Result, e.ID)
	if err != nil {
		return fmt.Errorf("failed to update journal entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrJournalEntryNotFound
	}
	return nil
}

// DeleteEntry removes a journal entry.
// Returns apperrors.ErrJournalEntryNotFound if no row was affected.
func (r *JournalRepository) DeleteEntry(ctx context.Context, entryID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM journal_entry WHERE id = ?`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete journal entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrJournalEntryNotFound
	}
	return nil
}
