package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kingao12/investment-platform/internal/apperrors"
	"github.com/kingao12/investment-platform/internal/model"
)

// PortfolioRepository provides data access methods for the portfolio table.
type PortfolioRepository struct {
	db *sql.DB
}

// NewPortfolioRepository creates a new PortfolioRepository with the provided database connection.
func NewPortfolioRepository(db *sql.DB) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

// GetPortfolios retrieves all portfolios ordered by name.
func (r *PortfolioRepository) GetPortfolios() ([]model.Portfolio, error) {
	rows, err := r.db.Query(`
		SELECT id, name, description
		FROM portfolio
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolio table: %w", err)
	}
	defer rows.Close()

	portfolios := []model.Portfolio{}
	for rows.Next() {
		var p model.Portfolio
		var description sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &description); err != nil {
			return nil, fmt.Errorf("failed to scan portfolio table results: %w", err)
		}
		p.Description = description.String
		portfolios = append(portfolios, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating portfolio table: %w", err)
	}

	return portfolios, nil
}

// GetPortfolioOnID retrieves a single portfolio by its ID.
// Returns apperrors.ErrPortfolioNotFound if no row exists.
func (r *PortfolioRepository) GetPortfolioOnID(portfolioID string) (model.Portfolio, error) {
	var p model.Portfolio
	var description sql.NullString

	err := r.db.QueryRow(`
		SELECT id, name, description
		FROM portfolio
		WHERE id = ?
	`, portfolioID).Scan(&p.ID, &p.Name, &description)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Portfolio{}, apperrors.ErrPortfolioNotFound
	}
	if err != nil {
		return model.Portfolio{}, fmt.Errorf("failed to scan portfolio table results: %w", err)
	}

	p.Description = description.String
	return p, nil
}

// InsertPortfolio stores a new portfolio record.
func (r *PortfolioRepository) InsertPortfolio(ctx context.Context, p *model.Portfolio) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO portfolio (id, name, description)
		VALUES (?, ?, ?)
	`, p.ID, p.Name, p.Description)
	if err != nil {
		return fmt.Errorf("failed to insert portfolio: %w", err)
	}
	return nil
}

// UpdatePortfolio updates the name and description of an existing portfolio.
// Returns apperrors.ErrPortfolioNotFound if no row was affected.
func (r *PortfolioRepository) UpdatePortfolio(ctx context.Context, p *model.Portfolio) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE portfolio
		SET name = ?, description = ?
		WHERE id = ?
	`, p.Name, p.Description, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update portfolio: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrPortfolioNotFound
	}
	return nil
}

// DeletePortfolio removes a portfolio. Holdings and their transactions are
// removed through ON DELETE CASCADE.
// Returns apperrors.ErrPortfolioNotFound if no row was affected.
func (r *PortfolioRepository) DeletePortfolio(ctx context.Context, portfolioID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM portfolio WHERE id = ?`, portfolioID)
	if err != nil {
		return fmt.Errorf("failed to delete portfolio: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrPortfolioNotFound
	}
	return nil
}
