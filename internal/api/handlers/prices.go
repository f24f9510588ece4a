package handlers

import (
	"net/http"

	"github.com/kingao12/investment-platform/internal/api/response"
	"github.com/kingao12/investment-platform/internal/apperrors"
	"github.com/kingao12/investment-platform/internal/service"
)

// PriceHandler handles HTTP requests for price refresh endpoints.
type PriceHandler struct {
	valuationService *service.ValuationService
}

// NewPriceHandler creates a new PriceHandler with the provided service dependency.
func NewPriceHandler(valuationService *service.ValuationService) *PriceHandler {
	return &PriceHandler{
		valuationService: valuationService,
	}
}

// RefreshResponse reports the outcome of a price refresh pass.
type RefreshResponse struct {
	Resolved int `json:"resolved"`
	Failed   int `json:"failed"`
}

// RefreshPrices handles POST requests to refresh the stored price snapshots
// for every holding. Individual lookup failures are counted, not fatal; the
// endpoint only errors when the holdings cannot be loaded at all.
//
// Endpoint: POST /api/prices/refresh
// Response: 200 OK with RefreshResponse
// Error: 500 Internal Server Error if holdings cannot be loaded
func (h *PriceHandler) RefreshPrices(w http.ResponseWriter, r *http.Request) {
	resolved, failed, err := h.valuationService.RefreshAllPrices(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRefreshPrices.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, RefreshResponse{
		Resolved: resolved,
		Failed:   failed,
	})
}
