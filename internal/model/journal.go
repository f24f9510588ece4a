package model

import "time"

// Journal entry result tags.
const (
	JournalWin  = "WIN"
	JournalLoss = "LOSS"
	JournalOpen = "OPEN"
)

// ValidJournalResults contains the allowed journal result values.
var ValidJournalResults = map[string]bool{
	JournalWin: true, JournalLoss: true, JournalOpen: true,
}

// JournalEntry represents one trading-journal record: what was traded,
// why, and how it turned out. Free-form alongside the ledger, never used
// in valuation.
type JournalEntry struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Symbol    string    `json:"symbol"`
	Side      string    `json:"side"`
	Quantity  float64   `json:"quantity"`
	Price     float64   `json:"price"`
	Reason    string    `json:"reason"`
	Result    string    `json:"result"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}
