package validation

import (
	"strings"

	"github.com/kingao12/investment-platform/internal/api/request"
)

// ValidateCreatePortfolio validates a portfolio creation request.
// Name is required; description is optional.
func ValidateCreatePortfolio(req request.CreatePortfolioRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdatePortfolio validates a portfolio update request.
// Fields are optional but must be non-empty if provided.
func ValidateUpdatePortfolio(req request.UpdatePortfolioRequest) error {
	errors := make(map[string]string)

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errors["name"] = "name cannot be empty"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
