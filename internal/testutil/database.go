package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA timezone = 'UTC'",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the embedded goose migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Portfolio table
		CREATE TABLE IF NOT EXISTS portfolio (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			description TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		-- Holding table
		CREATE TABLE IF NOT EXISTS holding (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			portfolio_id VARCHAR(36) NOT NULL,
			symbol VARCHAR(20) NOT NULL,
			display_name VARCHAR(100) NOT NULL,
			asset_class VARCHAR(12) NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(portfolio_id) REFERENCES portfolio(id) ON DELETE CASCADE
		);

		-- Transaction table (quoted because transaction is a reserved keyword)
		CREATE TABLE IF NOT EXISTS "transaction" (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			holding_id VARCHAR(36) NOT NULL,
			kind VARCHAR(4) NOT NULL,
			quantity FLOAT NOT NULL,
			unit_price FLOAT NOT NULL,
			fee FLOAT NOT NULL DEFAULT 0,
			total_amount FLOAT NOT NULL,
			date DATE NOT NULL,
			note TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(holding_id) REFERENCES holding(id) ON DELETE CASCADE
		);

		CREATE INDEX IF NOT EXISTS idx_transaction_holding_date
			ON "transaction"(holding_id, date);

		-- Journal entry table
		CREATE TABLE IF NOT EXISTS journal_entry (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			date DATE NOT NULL,
			symbol VARCHAR(20) NOT NULL,
			side VARCHAR(4) NOT NULL,
			quantity FLOAT NOT NULL,
			price FLOAT NOT NULL,
			reason TEXT,
			result VARCHAR(4) NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		-- Calendar event table
		CREATE TABLE IF NOT EXISTS calendar_event (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			date DATE NOT NULL,
			title VARCHAR(200) NOT NULL,
			country VARCHAR(10),
			category VARCHAR(20),
			importance VARCHAR(6) NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_calendar_event_date ON calendar_event(date);

		-- Last-known quote per symbol
		CREATE TABLE IF NOT EXISTS price_snapshot (
			symbol VARCHAR(20) NOT NULL PRIMARY KEY,
			asset_class VARCHAR(12) NOT NULL,
			price FLOAT NOT NULL,
			change_24h FLOAT NOT NULL DEFAULT 0,
			fetched_at INTEGER NOT NULL,
			source_currency VARCHAR(5) NOT NULL
		);

		-- Key/value settings; values may be fernet-encrypted
		CREATE TABLE IF NOT EXISTS setting (
			key VARCHAR(50) NOT NULL PRIMARY KEY,
			value TEXT NOT NULL,
			encrypted BOOLEAN NOT NULL DEFAULT FALSE,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := db.Exec(schema)
	return err
}
