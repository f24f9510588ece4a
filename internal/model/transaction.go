package model

import "time"

// Transaction kinds. The ledger is append-only; every record is either a
// purchase or a disposal of units of one holding.
const (
	TransactionBuy  = "BUY"
	TransactionSell = "SELL"
)

// ValidTransactionKinds contains the allowed transaction kind values.
var ValidTransactionKinds = map[string]bool{
	TransactionBuy: true, TransactionSell: true,
}

// Transaction represents a single buy or sell event for a holding.
// TotalAmount is always quantity * unitPrice; the fee is tracked separately
// and only folded into invested capital for BUY records during cost-basis
// calculation.
type Transaction struct {
	ID          string    `json:"id"`
	HoldingID   string    `json:"holdingId"`
	Kind        string    `json:"kind"`
	Quantity    float64   `json:"quantity"`
	UnitPrice   float64   `json:"unitPrice"`
	Fee         float64   `json:"fee"`
	TotalAmount float64   `json:"totalAmount"`
	Date        time.Time `json:"date"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// TransactionResponse represents a transaction with enriched data for API
// responses. Includes the holding's symbol and display name.
type TransactionResponse struct {
	ID          string    `json:"id"`
	HoldingID   string    `json:"holdingId"`
	Symbol      string    `json:"symbol"`
	HoldingName string    `json:"holdingName"`
	Kind        string    `json:"kind"`
	Quantity    float64   `json:"quantity"`
	UnitPrice   float64   `json:"unitPrice"`
	Fee         float64   `json:"fee"`
	TotalAmount float64   `json:"totalAmount"`
	Date        time.Time `json:"date"`
	Note        string    `json:"note,omitempty"`
}
