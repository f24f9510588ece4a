package validation

import (
	"fmt"
	"strings"

	"github.com/kingao12/investment-platform/internal/api/request"
	"github.com/kingao12/investment-platform/internal/model"
)

// ValidateCreateHolding validates a holding creation request.
//
// Required fields:
//   - portfolioId: Must be a valid UUID
//   - symbol: Required, uppercased by the service
//   - displayName: Required
//   - assetClass: Must be one of the supported asset classes
func ValidateCreateHolding(req request.CreateHoldingRequest) error {
	errors := make(map[string]string)

	portfolioErr := ValidateUUID(req.PortfolioID)
	if portfolioErr != nil {
		return portfolioErr
	}

	if strings.TrimSpace(req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	}

	if strings.TrimSpace(req.DisplayName) == "" {
		errors["displayName"] = "displayName is required"
	}

	if strings.TrimSpace(req.AssetClass) == "" {
		errors["assetClass"] = "assetClass is required"
	} else if !model.ValidAssetClasses[req.AssetClass] {
		errors["assetClass"] = fmt.Sprintf("invalid assetClass: %s", req.AssetClass)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateHolding validates a holding update request.
// All fields are optional, but if provided, they must meet the same constraints as create.
func ValidateUpdateHolding(req request.UpdateHoldingRequest) error {
	errors := make(map[string]string)

	if req.Symbol != nil && strings.TrimSpace(*req.Symbol) == "" {
		errors["symbol"] = "symbol cannot be empty"
	}
	if req.DisplayName != nil && strings.TrimSpace(*req.DisplayName) == "" {
		errors["displayName"] = "displayName cannot be empty"
	}
	if req.AssetClass != nil {
		if strings.TrimSpace(*req.AssetClass) == "" {
			errors["assetClass"] = "assetClass cannot be empty"
		} else if !model.ValidAssetClasses[*req.AssetClass] {
			errors["assetClass"] = fmt.Sprintf("invalid assetClass: %s", *req.AssetClass)
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
