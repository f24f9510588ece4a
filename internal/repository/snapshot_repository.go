package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/kingao12/investment-platform/internal/model"
)

// SnapshotRepository provides data access methods for the price_snapshot table,
// the persisted cache of last-known quotes.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new SnapshotRepository with the provided database connection.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// GetSnapshots retrieves the stored snapshots for the given symbols, keyed by
// symbol. Symbols with no stored snapshot are simply absent from the result.
func (r *SnapshotRepository) GetSnapshots(symbols []string) (map[string]model.PriceSnapshot, error) {
	if len(symbols) == 0 {
		return make(map[string]model.PriceSnapshot), nil
	}

	placeholders := make([]string, len(symbols))
	for i := range placeholders {
		placeholders[i] = "?"
	}

	query := `
		SELECT symbol, asset_class, price, change_24h, fetched_at, source_currency
		FROM price_snapshot
		WHERE symbol IN (` + strings.Join(placeholders, ",") + `)
	`

	args := make([]any, len(symbols))
	for i, s := range symbols {
		args[i] = s
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query price_snapshot table: %w", err)
	}
	defer rows.Close()

	snapshots := make(map[string]model.PriceSnapshot)
	for rows.Next() {
		var s model.PriceSnapshot
		err := rows.Scan(&s.Symbol, &s.AssetClass, &s.Price, &s.Change24h, &s.FetchedAtUnix, &s.SourceCurrency)
		if err != nil {
			return nil, fmt.Errorf("failed to scan price_snapshot table results: %w", err)
		}
		snapshots[s.Symbol] = s
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating price_snapshot table: %w", err)
	}

	return snapshots, nil
}

// UpsertSnapshot stores or replaces the snapshot for a symbol.
func (r *SnapshotRepository) UpsertSnapshot(ctx context.Context, s model.PriceSnapshot) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO price_snapshot (symbol, asset_class, price, change_24h, fetched_at, source_currency)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(symbol) DO UPDATE SET
			asset_class = excluded.asset_class,
			price = excluded.price,
			change_24h = excluded.change_24h,
			fetched_at = excluded.fetched_at,
			source_currency = excluded.source_currency
	`, s.Symbol, s.AssetClass, s.Price, s.Change24h, s.FetchedAtUnix, s.SourceCurrency)
	if err != nil {
		return fmt.Errorf("failed to upsert price snapshot: %w", err)
	}
	return nil
}
