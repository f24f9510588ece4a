package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/kingao12/investment-platform/internal/api/request"
	"github.com/kingao12/investment-platform/internal/model"
)

// ValidateCreateJournalEntry validates a journal entry creation request.
func ValidateCreateJournalEntry(req request.CreateJournalEntryRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Date) == "" {
		errors["date"] = "date is required"
	} else if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		errors["date"] = err.Error()
	}

	if strings.TrimSpace(req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	}

	if req.Quantity <= 0.0 {
		errors["quantity"] = "quantity must be positive"
	}

	if req.Price < 0.0 {
		errors["price"] = "price must be non-negative"
	}

	if strings.TrimSpace(req.Result) == "" {
		errors["result"] = "result is required"
	} else if !model.ValidJournalResults[req.Result] {
		errors["result"] = fmt.Sprintf("invalid result: %s", req.Result)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateJournalEntry validates a journal entry update request.
// All fields are optional, but if provided, they must meet the same constraints as create.
func ValidateUpdateJournalEntry(req request.UpdateJournalEntryRequest) error {
	errors := make(map[string]string)

	if req.Date != nil {
		if strings.TrimSpace(*req.Date) == "" {
			errors["date"] = "date is required"
		} else if _, err := time.Parse("2006-01-02", *req.Date); err != nil {
			errors["date"] = err.Error()
		}
	}
	if req.Symbol != nil && strings.TrimSpace(*req.Symbol) == "" {
		errors["symbol"] = "symbol cannot be empty"
	}
	if req.Quantity != nil && *req.Quantity <= 0.0 {
		errors["quantity"] = "quantity must be positive"
	}
	if req.Price != nil && *req.Price < 0.0 {
		errors["price"] = "price must be non-negative"
	}
	if req.Result != nil {
		if strings.TrimSpace(*req.Result) == "" {
			errors["result"] = "result cannot be empty"
		} else if !model.ValidJournalResults[*req.Result] {
			errors["result"] = fmt.Sprintf("invalid result: %s", *req.Result)
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
