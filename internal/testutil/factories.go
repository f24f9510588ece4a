package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/kingao12/investment-platform/internal/model"
)

// PortfolioBuilder provides a fluent interface for creating test portfolios.
//
// Example usage:
//
//	// Simple creation with defaults
//	portfolio := testutil.NewPortfolio().Build(t, db)
//
//	// Customized portfolio
//	portfolio := testutil.NewPortfolio().
//	    WithName("Long Term").
//	    WithDescription("Retirement savings").
//	    Build(t, db)
type PortfolioBuilder struct {
	ID          string
	Name        string
	Description string
}

// NewPortfolio creates a PortfolioBuilder with sensible defaults.
func NewPortfolio() *PortfolioBuilder {
	return &PortfolioBuilder{
		ID:          MakeID(),
		Name:        MakePortfolioName("Test Portfolio"),
		Description: "Test description",
	}
}

// WithID sets a custom ID.
func (b *PortfolioBuilder) WithID(id string) *PortfolioBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *PortfolioBuilder) WithName(name string) *PortfolioBuilder {
	b.Name = name
	return b
}

// WithDescription sets a custom description.
func (b *PortfolioBuilder) WithDescription(desc string) *PortfolioBuilder {
	b.Description = desc
	return b
}

// Build creates the portfolio in the database and returns it.
func (b *PortfolioBuilder) Build(t *testing.T, db *sql.DB) model.Portfolio {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO portfolio (id, name, description)
		VALUES (?, ?, ?)
	`, b.ID, b.Name, b.Description)
	if err != nil {
		t.Fatalf("Failed to create test portfolio: %v", err)
	}

	return model.Portfolio{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
	}
}

// HoldingBuilder provides a fluent interface for creating test holdings.
//
// Example usage:
//
//	holding := testutil.NewHolding(portfolio.ID).
//	    WithSymbol("BTC").
//	    WithAssetClass(model.AssetCrypto).
//	    Build(t, db)
type HoldingBuilder struct {
	ID          string
	PortfolioID string
	Symbol      string
	DisplayName string
	AssetClass  string
}

// NewHolding creates a HoldingBuilder with sensible defaults for the given portfolio.
func NewHolding(portfolioID string) *HoldingBuilder {
	return &HoldingBuilder{
		ID:          MakeID(),
		PortfolioID: portfolioID,
		Symbol:      MakeSymbol("TST"),
		DisplayName: "Test Holding",
		AssetClass:  model.AssetStock,
	}
}

// WithID sets a custom ID.
func (b *HoldingBuilder) WithID(id string) *HoldingBuilder {
	b.ID = id
	return b
}

// WithSymbol sets a custom symbol.
func (b *HoldingBuilder) WithSymbol(symbol string) *HoldingBuilder {
	b.Symbol = symbol
	return b
}

// WithDisplayName sets a custom display name.
func (b *HoldingBuilder) WithDisplayName(name string) *HoldingBuilder {
	b.DisplayName = name
	return b
}

// WithAssetClass sets a custom asset class.
func (b *HoldingBuilder) WithAssetClass(assetClass string) *HoldingBuilder {
	b.AssetClass = assetClass
	return b
}

// Build creates the holding in the database and returns it.
func (b *HoldingBuilder) Build(t *testing.T, db *sql.DB) model.Holding {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO holding (id, portfolio_id, symbol, display_name, asset_class)
		VALUES (?, ?, ?, ?, ?)
	`, b.ID, b.PortfolioID, b.Symbol, b.DisplayName, b.AssetClass)
	if err != nil {
		t.Fatalf("Failed to create test holding: %v", err)
	}

	return model.Holding{
		ID:          b.ID,
		PortfolioID: b.PortfolioID,
		Symbol:      b.Symbol,
		DisplayName: b.DisplayName,
		AssetClass:  b.AssetClass,
	}
}

// TransactionBuilder provides a fluent interface for creating test transactions.
// TotalAmount defaults to quantity * unitPrice, mirroring the service layer.
//
// Example usage:
//
//	tx := testutil.NewTransaction(holding.ID).
//	    Sell().
//	    WithQuantity(4).
//	    WithUnitPrice(120).
//	    Build(t, db)
type TransactionBuilder struct {
	ID          string
	HoldingID   string
	Kind        string
	Quantity    float64
	UnitPrice   float64
	Fee         float64
	TotalAmount *float64
	Date        time.Time
	Note        string
}

// NewTransaction creates a TransactionBuilder with sensible defaults for the given holding.
func NewTransaction(holdingID string) *TransactionBuilder {
	return &TransactionBuilder{
		ID:        MakeID(),
		HoldingID: holdingID,
		Kind:      model.TransactionBuy,
		Quantity:  10,
		UnitPrice: 100,
		Fee:       0,
		Date:      time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

// Buy marks the transaction as a BUY.
func (b *TransactionBuilder) Buy() *TransactionBuilder {
	b.Kind = model.TransactionBuy
	return b
}

// Sell marks the transaction as a SELL.
func (b *TransactionBuilder) Sell() *TransactionBuilder {
	b.Kind = model.TransactionSell
	return b
}

// WithQuantity sets a custom quantity.
func (b *TransactionBuilder) WithQuantity(quantity float64) *TransactionBuilder {
	b.Quantity = quantity
	return b
}

// WithUnitPrice sets a custom unit price.
func (b *TransactionBuilder) WithUnitPrice(unitPrice float64) *TransactionBuilder {
	b.UnitPrice = unitPrice
	return b
}

// WithFee sets a custom fee.
func (b *TransactionBuilder) WithFee(fee float64) *TransactionBuilder {
	b.Fee = fee
	return b
}

// WithTotalAmount overrides the derived totalAmount.
func (b *TransactionBuilder) WithTotalAmount(total float64) *TransactionBuilder {
	b.TotalAmount = &total
	return b
}

// WithDate sets a custom date.
func (b *TransactionBuilder) WithDate(date time.Time) *TransactionBuilder {
	b.Date = date
	return b
}

// WithNote sets a custom note.
func (b *TransactionBuilder) WithNote(note string) *TransactionBuilder {
	b.Note = note
	return b
}

// Build creates the transaction in the database and returns it.
func (b *TransactionBuilder) Build(t *testing.T, db *sql.DB) model.Transaction {
	t.Helper()

	totalAmount := b.Quantity * b.UnitPrice
	if b.TotalAmount != nil {
		totalAmount = *b.TotalAmount
	}

	_, err := db.Exec(`
		INSERT INTO "transaction" (id, holding_id, kind, quantity, unit_price, fee, total_amount, date, note)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, b.ID, b.HoldingID, b.Kind, b.Quantity, b.UnitPrice, b.Fee, totalAmount, b.Date.Format("2006-01-02"), b.Note)
	if err != nil {
		t.Fatalf("Failed to create test transaction: %v", err)
	}

	return model.Transaction{
		ID:          b.ID,
		HoldingID:   b.HoldingID,
		Kind:        b.Kind,
		Quantity:    b.Quantity,
		UnitPrice:   b.UnitPrice,
		Fee:         b.Fee,
		TotalAmount: totalAmount,
		Date:        b.Date,
		Note:        b.Note,
	}
}

// Convenience functions

// CreatePortfolio creates a portfolio with the given name and default values.
func CreatePortfolio(t *testing.T, db *sql.DB, name string) model.Portfolio {
	t.Helper()
	return NewPortfolio().WithName(name).Build(t, db)
}

// CreateHolding creates a holding with the given symbol and asset class.
func CreateHolding(t *testing.T, db *sql.DB, portfolioID, symbol, assetClass string) model.Holding {
	t.Helper()
	return NewHolding(portfolioID).WithSymbol(symbol).WithAssetClass(assetClass).Build(t, db)
}

// CreateBuy records a BUY of quantity shares at unitPrice against the holding.
func CreateBuy(t *testing.T, db *sql.DB, holdingID string, quantity, unitPrice float64) model.Transaction {
	t.Helper()
	return NewTransaction(holdingID).Buy().WithQuantity(quantity).WithUnitPrice(unitPrice).Build(t, db)
}

// CreateSell records a SELL of quantity shares at unitPrice against the holding.
func CreateSell(t *testing.T, db *sql.DB, holdingID string, quantity, unitPrice float64) model.Transaction {
	t.Helper()
	return NewTransaction(holdingID).Sell().WithQuantity(quantity).WithUnitPrice(unitPrice).Build(t, db)
}
