package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/kingao12/investment-platform/internal/apperrors"
	"github.com/kingao12/investment-platform/internal/model"
)

// TransactionRepository provides data access methods for the transaction table.
// It handles retrieving and mutating the append-only ledgers of holdings.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// GetLedger retrieves all transactions for a single holding, ordered by date
// then creation time. This ordering is what makes the cost-basis calculation
// chronologically correct; every caller of the calculator goes through here.
func (r *TransactionRepository) GetLedger(holdingID string) ([]model.Transaction, error) {
	rows, err := r.db.Query(`
		SELECT id, holding_id, kind, quantity, unit_price, fee, total_amount, date, note, created_at
		FROM "transaction"
		WHERE holding_id = ?
		ORDER BY date ASC, created_at ASC
	`, holdingID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction table: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// GetLedgers retrieves transactions for the given holding IDs, grouped by
// holding. Each ledger is ordered by date then creation time. If holdingIDs
// is empty, returns an empty map.
func (r *TransactionRepository) GetLedgers(holdingIDs []string) (map[string][]model.Transaction, error) {
	if len(holdingIDs) == 0 {
		return make(map[string][]model.Transaction), nil
	}

	placeholders := make([]string, len(holdingIDs))
	for i := range placeholders {
		placeholders[i] = "?"
	}

	query := `
		SELECT id, holding_id, kind, quantity, unit_price, fee, total_amount, date, note, created_at
		FROM "transaction"
		WHERE holding_id IN (` + strings.Join(placeholders, ",") + `)
		ORDER BY date ASC, created_at ASC
	`

	args := make([]any, len(holdingIDs))
	for i, id := range holdingIDs {
		args[i] = id
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction table: %w", err)
	}
	defer rows.Close()

	transactions, err := scanTransactions(rows)
	if err != nil {
		return nil, err
	}

	ledgers := make(map[string][]model.Transaction)
	for _, t := range transactions {
		ledgers[t.HoldingID] = append(ledgers[t.HoldingID], t)
	}

	return ledgers, nil
}

// GetTransaction retrieves a single transaction by its ID.
// Returns apperrors.ErrTransactionNotFound if no row exists.
func (r *TransactionRepository) GetTransaction(transactionID string) (model.Transaction, error) {
	row := r.db.QueryRow(`
		SELECT id, holding_id, kind, quantity, unit_price, fee, total_amount, date, note, created_at
		FROM "transaction"
		WHERE id = ?
	`, transactionID)

	t, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Transaction{}, apperrors.ErrTransactionNotFound
	}
	if err != nil {
		return model.Transaction{}, err
	}
	return t, nil
}

// InsertTransaction stores a new transaction record.
func (r *TransactionRepository) InsertTransaction(ctx context.Context, t *model.Transaction) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO "transaction" (id, holding_id, kind, quantity, unit_price, fee, total_amount, date, note)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, t.ID, t.HoldingID, t.Kind, t.Quantity, t.UnitPrice, t.Fee, t.TotalAmount, t.Date.Format("2006-01-02"), t.Note)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// UpdateTransaction replaces the stored fields of an existing transaction.
// TotalAmount is expected to have been recomputed by the service layer.
// Returns apperrors.ErrTransactionNotFound if no row was affected.
func (r *TransactionRepository) UpdateTransaction(ctx context.Context, t *model.Transaction) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE "transaction"
		SET kind = ?, quantity = ?, unit_price = ?, fee = ?, total_amount = ?, date = ?, note = ?
		WHERE id = ?
	`, t.Kind, t.Quantity, t.UnitPrice, t.Fee, t.TotalAmount, t.Date.Format("2006-01-02"), t.Note, t.ID)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

// DeleteTransaction removes a transaction.
// Returns apperrors.ErrTransactionNotFound if no row was affected.
func (r *TransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM "transaction" WHERE id = ?`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

// scanner abstracts sql.Row and sql.Rows for the shared scan helpers.
type scanner interface {
	Scan(dest ...any) error
}

func scanTransaction(s scanner) (model.Transaction, error) {
	var t model.Transaction
	var dateStr, createdAtStr string
	var note sql.NullString

	err := s.Scan(
		&t.ID,
		&t.HoldingID,
		&t.Kind,
		&t.Quantity,
		&t.UnitPrice,
		&t.Fee,
		&t.TotalAmount,
		&dateStr,
		&note,
		&createdAtStr,
	)
	if err != nil {
		return model.Transaction{}, err
	}

	t.Date, err = ParseTime(dateStr)
	if err != nil || t.Date.IsZero() {
		return model.Transaction{}, fmt.Errorf("failed to parse date: %w", err)
	}

	t.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		// created_at comes back as "2006-01-02 15:04:05" from sqlite
		t.CreatedAt, err = parseDateTime(createdAtStr)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("failed to parse created_at: %w", err)
		}
	}

	t.Note = note.String
	return t, nil
}

func scanTransactions(rows *sql.Rows) ([]model.Transaction, error) {
	transactions := []model.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction table results: %w", err)
		}
		transactions = append(transactions, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction table: %w", err)
	}

	return transactions, nil
}
