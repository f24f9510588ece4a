package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kingao12/investment-platform/internal/apperrors"
)

// SettingsRepository provides data access methods for the setting table.
// Values flagged as encrypted hold fernet tokens; decryption happens in the
// settings service, never here.
type SettingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SettingsRepository with the provided database connection.
func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetSetting retrieves the raw stored value and its encryption flag for a key.
// Returns apperrors.ErrSettingNotFound if the key has no stored value.
func (r *SettingsRepository) GetSetting(key string) (string, bool, error) {
	var value string
	var encrypted bool

	err := r.db.QueryRow(`
		SELECT value, encrypted
		FROM setting
		WHERE key = ?
	`, key).Scan(&value, &encrypted)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, apperrors.ErrSettingNotFound
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to scan setting table results: %w", err)
	}

	return value, encrypted, nil
}

// UpsertSetting stores or replaces the value for a key.
func (r *SettingsRepository) UpsertSetting(ctx context.Context, key, value string, encrypted bool) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO setting (key, value, encrypted, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			encrypted = excluded.encrypted,
			updated_at = CURRENT_TIMESTAMP
	`, key, value, encrypted)
	if err != nil {
		return fmt.Errorf("failed to upsert setting: %w", err)
	}
	return nil
}
