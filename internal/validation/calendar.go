package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/kingao12/investment-platform/internal/api/request"
	"github.com/kingao12/investment-platform/internal/model"
)

// ValidateCreateCalendarEvent validates a calendar event creation request.
func ValidateCreateCalendarEvent(req request.CreateCalendarEventRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Date) == "" {
		errors["date"] = "date is required"
	} else if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		errors["date"] = err.Error()
	}

	if strings.TrimSpace(req.Title) == "" {
		errors["title"] = "title is required"
	}

	if strings.TrimSpace(req.Importance) == "" {
		errors["importance"] = "importance is required"
	} else if !model.ValidImportanceLevels[req.Importance] {
		errors["importance"] = fmt.Sprintf("invalid importance: %s", req.Importance)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateCalendarEvent validates a calendar event update request.
// All fields are optional, but if provided, they must meet the same constraints as create.
func ValidateUpdateCalendarEvent(req request.UpdateCalendarEventRequest) error {
	errors := make(map[string]string)

	if req.Date != nil {
		if strings.TrimSpace(*req.Date) == "" {
			errors["date"] = "date is required"
		} else if _, err := time.Parse("2006-01-02", *req.Date); err != nil {
			errors["date"] = err.Error()
		}
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		errors["title"] = "title cannot be empty"
	}
	if req.Importance != nil {
		if strings.TrimSpace(*req.Importance) == "" {
			errors["importance"] = "importance cannot be empty"
		} else if !model.ValidImportanceLevels[*req.Importance] {
			errors["importance"] = fmt.Sprintf("invalid importance: %s", *req.Importance)
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
