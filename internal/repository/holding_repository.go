package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kingao12/investment-platform/internal/apperrors"
	"github.com/kingao12/investment-platform/internal/model"
)

// HoldingRepository provides data access methods for the holding table.
type HoldingRepository struct {
	db *sql.DB
}

// NewHoldingRepository creates a new HoldingRepository with the provided database connection.
func NewHoldingRepository(db *sql.DB) *HoldingRepository {
	return &HoldingRepository{db: db}
}

// GetHoldingsOnPortfolioID retrieves all holdings belonging to a portfolio,
// ordered by symbol.
func (r *HoldingRepository) GetHoldingsOnPortfolioID(portfolioID string) ([]model.Holding, error) {
	rows, err := r.db.Query(`
		SELECT id, portfolio_id, symbol, display_name, asset_class
		FROM holding
		WHERE portfolio_id = ?
		ORDER BY symbol ASC
	`, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("failed to query holding table: %w", err)
	}
	defer rows.Close()

	holdings := []model.Holding{}
	for rows.Next() {
		var h model.Holding
		if err := rows.Scan(&h.ID, &h.PortfolioID, &h.Symbol, &h.DisplayName, &h.AssetClass); err != nil {
			return nil, fmt.Errorf("failed to scan holding table results: %w", err)
		}
		holdings = append(holdings, h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holding table: %w", err)
	}

	return holdings, nil
}

// GetHoldings retrieves every holding across all portfolios, ordered by
// symbol. Used by the price refresh job.
func (r *HoldingRepository) GetHoldings() ([]model.Holding, error) {
	rows, err := r.db.Query(`
		SELECT id, portfolio_id, symbol, display_name, asset_class
		FROM holding
		ORDER BY symbol ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query holding table: %w", err)
	}
	defer rows.Close()

	holdings := []model.Holding{}
	for rows.Next() {
		var h model.Holding
		if err := rows.Scan(&h.ID, &h.PortfolioID, &h.Symbol, &h.DisplayName, &h.AssetClass); err != nil {
			return nil, fmt.Errorf("failed to scan holding table results: %w", err)
		}
		holdings = append(holdings, h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holding table: %w", err)
	}

	return holdings, nil
}

// GetHoldingOnID retrieves a single holding by its ID.
// Returns apperrors.ErrHoldingNotFound if no row exists.
func (r *HoldingRepository) GetHoldingOnID(holdingID string) (model.Holding, error) {
	var h model.Holding

	err := r.db.QueryRow(`
		SELECT id, portfolio_id, symbol, display_name, asset_class
		FROM holding
		WHERE id = ?
	`, holdingID).Scan(&h.ID, &h.PortfolioID, &h.Symbol, &h.DisplayName, &h.AssetClass)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Holding{}, apperrors.ErrHoldingNotFound
	}
	if err != nil {
		return model.Holding{}, fmt.Errorf("failed to scan holding table results: %w", err)
	}

	return h, nil
}

// InsertHolding stores a new holding record.
func (r *HoldingRepository) InsertHolding(ctx context.Context, h *model.Holding) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO holding (id, portfolio_id, symbol, display_name, asset_class)
		VALUES (?, ?, ?, ?, ?)
	`, h.ID, h.PortfolioID, h.Symbol, h.DisplayName, h.AssetClass)
	if err != nil {
		return fmt.Errorf("failed to insert holding: %w", err)
	}
	return nil
}

// UpdateHolding updates the mutable fields of an existing holding.
// Returns apperrors.ErrHoldingNotFound if no row was affected.
func (r *HoldingRepository) UpdateHolding(ctx context.Context, h *model.Holding) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE holding
		SET symbol = ?, display_name = ?, asset_class = ?
		WHERE id = ?
	`, h.Symbol, h.DisplayName, h.AssetClass, h.ID)
	if err != nil {
		return fmt.Errorf("failed to update holding: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrHoldingNotFound
	}
	return nil
}

// DeleteHolding removes a holding. Its transactions are removed through
// ON DELETE CASCADE.
// Returns apperrors.ErrHoldingNotFound if no row was affected.
func (r *HoldingRepository) DeleteHolding(ctx context.Context, holdingID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM holding WHERE id = ?`, holdingID)
	if err != nil {
		return fmt.Errorf("failed to delete holding: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrHoldingNotFound
	}
	return nil
}
