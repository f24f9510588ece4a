package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/kingao12/investment-platform/internal/api/request"
	"github.com/kingao12/investment-platform/internal/model"
)

// ValidateCreateTransaction validates a transaction creation request.
// Checks all required fields and validates their formats and constraints.
//
// Required fields:
//   - holdingId: Must be a valid UUID
//   - date: Must be in YYYY-MM-DD format
//   - kind: Must be one of: BUY, SELL
//   - quantity: Must be positive
//   - unitPrice: Must be non-negative
//   - fee: Must be non-negative if provided
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateTransaction(req request.CreateTransactionRequest) error {
	errors := make(map[string]string)

	holdingErr := ValidateUUID(req.HoldingID)
	if holdingErr != nil {
		return holdingErr
	}

	if strings.TrimSpace(req.Date) == "" {
		errors["date"] = "date is required"
	}
	_, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		errors["date"] = err.Error()
	}

	if strings.TrimSpace(req.Kind) == "" {
		errors["kind"] = "kind is required"
	} else if !model.ValidTransactionKinds[req.Kind] {
		errors["kind"] = fmt.Sprintf("invalid kind: %s", req.Kind)
	}

	if req.Quantity <= 0.0 {
		errors["quantity"] = "quantity must be positive"
	}

	if req.UnitPrice < 0.0 {
		errors["unitPrice"] = "unitPrice must be non-negative"
	}

	if req.Fee < 0.0 {
		errors["fee"] = "fee must be non-negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateTransaction validates a transaction update request.
// All fields are optional, but if provided, they must meet the same constraints as create.
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateUpdateTransaction(req request.UpdateTransactionRequest) error {
	errors := make(map[string]string)

	if req.Date != nil {
		if strings.TrimSpace(*req.Date) == "" {
			errors["date"] = "date is required"
		}
		_, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			errors["date"] = err.Error()
		}
	}
	if req.Kind != nil {
		if strings.TrimSpace(*req.Kind) == "" {
			errors["kind"] = "kind is required"
		} else if !model.ValidTransactionKinds[*req.Kind] {
			errors["kind"] = fmt.Sprintf("invalid kind: %s", *req.Kind)
		}
	}
	if req.Quantity != nil {
		if *req.Quantity <= 0.0 {
			errors["quantity"] = "quantity must be positive"
		}
	}
	if req.UnitPrice != nil {
		if *req.UnitPrice < 0.0 {
			errors["unitPrice"] = "unitPrice must be non-negative"
		}
	}
	if req.Fee != nil {
		if *req.Fee < 0.0 {
			errors["fee"] = "fee must be non-negative"
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
