package model

import "time"

// Calendar event importance levels.
const (
	ImportanceHigh   = "high"
	ImportanceMedium = "medium"
	ImportanceLow    = "low"
)

// ValidImportanceLevels contains the allowed importance values.
var ValidImportanceLevels = map[string]bool{
	ImportanceHigh: true, ImportanceMedium: true, ImportanceLow: true,
}

// CalendarEvent represents one market-calendar entry (earnings release,
// macro announcement, central bank meeting).
type CalendarEvent struct {
	ID         string    `json:"id"`
	Date       time.Time `json:"date"`
	Title      string    `json:"title"`
	Country    string    `json:"country"`
	Category   string    `json:"category"`
	Importance string    `json:"importance"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
}
