package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/kingao12/investment-platform/internal/pricing"
	"github.com/kingao12/investment-platform/internal/repository"
	"github.com/kingao12/investment-platform/internal/service"
)

// TestVsCurrency is the reporting currency used by test services.
const TestVsCurrency = "krw"

func NewTestValuationService(t *testing.T, db *sql.DB, router *pricing.Router) *service.ValuationService {
	t.Helper()

	return service.NewValuationService(
		repository.NewHoldingRepository(db),
		repository.NewTransactionRepository(db),
		repository.NewSnapshotRepository(db),
		router,
		TestVsCurrency,
	)
}

func NewTestPortfolioService(t *testing.T, db *sql.DB, router *pricing.Router) *service.PortfolioService {
	t.Helper()

	return service.NewPortfolioService(
		repository.NewPortfolioRepository(db),
		repository.NewHoldingRepository(db),
		NewTestValuationService(t, db, router),
	)
}

func NewTestHoldingService(t *testing.T, db *sql.DB) *service.HoldingService {
	t.Helper()

	return service.NewHoldingService(
		repository.NewHoldingRepository(db),
		repository.NewPortfolioRepository(db),
	)
}

func NewTestTransactionService(t *testing.T, db *sql.DB) *service.TransactionService {
	t.Helper()

	return service.NewTransactionService(
		repository.NewTransactionRepository(db),
		repository.NewHoldingRepository(db),
	)
}

func NewTestJournalService(t *testing.T, db *sql.DB) *service.JournalService {
	t.Helper()

	return service.NewJournalService(repository.NewJournalRepository(db))
}

func NewTestCalendarService(t *testing.T, db *sql.DB) *service.CalendarService {
	t.Helper()

	return service.NewCalendarService(repository.NewCalendarRepository(db))
}

func NewTestSettingsService(t *testing.T, db *sql.DB, fernetKey, fallbackAPIKey string) *service.SettingsService {
	t.Helper()

	svc, err := service.NewSettingsService(repository.NewSettingsRepository(db), fernetKey, fallbackAPIKey)
	if err != nil {
		t.Fatalf("Failed to create settings service: %v", err)
	}
	return svc
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeSymbol generates a ticker symbol for testing.
//
// Example usage:
//
//	symbol := testutil.MakeSymbol("TST")
//	// Returns: "TST1A2B"
func MakeSymbol(base string) string {
	if base == "" {
		base = "TEST"
	}
	return base + randomAlphanumeric(4)
}

// MakePortfolioName generates a unique portfolio name for testing.
//
// Example usage:
//
//	name := testutil.MakePortfolioName("MyPortfolio")
//	// Returns: "MyPortfolio ABC123"
func MakePortfolioName(base string) string {
	if base == "" {
		base = "Portfolio"
	}
	return base + " " + randomAlphanumeric(6)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
