package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrPortfolioNotFound indicates that a portfolio with the given ID does not exist.
	ErrPortfolioNotFound = errors.New("portfolio not found")

	// ErrHoldingNotFound indicates that a holding with the given ID does not exist.
	ErrHoldingNotFound = errors.New("holding not found")

	// ErrTransactionNotFound indicates that a transaction with the given ID does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrJournalEntryNotFound indicates that a journal entry with the given ID does not exist.
	ErrJournalEntryNotFound = errors.New("journal entry not found")

	// ErrCalendarEventNotFound indicates that a calendar event with the given ID does not exist.
	ErrCalendarEventNotFound = errors.New("calendar event not found")

	// ErrSettingNotFound indicates that a settings key has no stored value.
	ErrSettingNotFound = errors.New("setting not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInsufficientShares indicates that a sell transaction cannot be completed
	// because the holding does not carry enough net shares.
	ErrInsufficientShares = errors.New("insufficient shares for sale")

	// ErrInvalidDateRange indicates that the provided date range is invalid
	// (e.g., start date is after end date).
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrNegativeAmount indicates that an amount field has an invalid negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidAssetClass indicates an asset class outside the supported set.
	ErrInvalidAssetClass = errors.New("invalid asset class")

	// ErrInvalidTransactionKind indicates a transaction kind other than BUY or SELL.
	ErrInvalidTransactionKind = errors.New("invalid transaction kind")
)

// Operation failure errors represent system-level failures when retrieving or processing data.
// These errors indicate that an operation failed, but not due to missing entities or validation issues.
var (
	// Portfolio operation errors
	ErrFailedToRetrievePortfolios  = errors.New("failed to retrieve portfolios")
	ErrFailedToGetPortfolioSummary = errors.New("failed to get portfolio summary")

	// Holding operation errors
	ErrFailedToRetrieveHoldings = errors.New("failed to retrieve holdings")

	// Transaction operation errors
	ErrFailedToRetrieveTransactions = errors.New("failed to retrieve transactions")
	ErrFailedToRetrieveTransaction  = errors.New("failed to retrieve transaction")

	// Pricing operation errors
	ErrFailedToRefreshPrices = errors.New("failed to refresh prices")

	// Journal and calendar operation errors
	ErrFailedToRetrieveJournal  = errors.New("failed to retrieve journal entries")
	ErrFailedToRetrieveCalendar = errors.New("failed to retrieve calendar events")

	// System operation errors
	ErrFailedToGetVersionInfo = errors.New("failed to get version information")
)
