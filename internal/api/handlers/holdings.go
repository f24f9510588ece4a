package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kingao12/investment-platform/internal/api/request"
	"github.com/kingao12/investment-platform/internal/api/response"
	"github.com/kingao12/investment-platform/internal/apperrors"
	"github.com/kingao12/investment-platform/internal/service"
	"github.com/kingao12/investment-platform/internal/validation"
)

// HoldingHandler handles HTTP requests for holding endpoints.
type HoldingHandler struct {
	holdingService *service.HoldingService
}

// NewHoldingHandler creates a new HoldingHandler with the provided service dependency.
func NewHoldingHandler(holdingService *service.HoldingService) *HoldingHandler {
	return &HoldingHandler{
		holdingService: holdingService,
	}
}

// HoldingsPerPortfolio handles GET requests to retrieve all holdings of a portfolio.
//
// Endpoint: GET /api/portfolios/{uuid}/holdings
// Response: 200 OK with array of Holding
// Error: 500 Internal Server Error if retrieval fails
func (h *HoldingHandler) HoldingsPerPortfolio(w http.ResponseWriter, r *http.Request) {
	portfolioID := chi.URLParam(r, "uuid")

	holdings, err := h.holdingService.GetHoldingsPerPortfolio(portfolioID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveHoldings.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, holdings)
}

// GetHolding handles GET requests to retrieve a single holding by ID.
//
// Endpoint: GET /api/holdings/{uuid}
// Response: 200 OK with Holding
// Error: 404 Not Found if holding not found
// Error: 500 Internal Server Error if retrieval fails
func (h *HoldingHandler) GetHolding(w http.ResponseWriter, r *http.Request) {
	holdingID := chi.URLParam(r, "uuid")

	holding, err := h.holdingService.GetHolding(holdingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrHoldingNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrHoldingNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveHoldings.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, holding)
}

// CreateHolding handles POST requests to create a new holding in a portfolio.
//
// Endpoint: POST /api/holdings
// Request Body: CreateHoldingRequest (portfolioId, symbol, displayName, assetClass)
// Response: 201 Created with Holding
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the target portfolio does not exist
// Error: 500 Internal Server Error if creation fails
func (h *HoldingHandler) CreateHolding(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateHoldingRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateHolding(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	holding, err := h.holdingService.CreateHolding(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrPortfolioNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPortfolioNotFound.Error(), err.Error())
		case errors.Is(err, apperrors.ErrInvalidAssetClass):
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidAssetClass.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to create holding", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusCreated, holding)
}

// UpdateHolding handles PUT requests to update an existing holding.
//
// Endpoint: PUT /api/holdings/{uuid}
// Request Body: UpdateHoldingRequest (all fields optional)
// Response: 200 OK with updated Holding
// Error: 400 Bad Request if validation fails
// Error: 404 Not Found if holding not found
// Error: 500 Internal Server Error if update fails
func (h *HoldingHandler) UpdateHolding(w http.ResponseWriter, r *http.Request) {
	holdingID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateHoldingRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateHolding(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	holding, err := h.holdingService.UpdateHolding(r.Context(), holdingID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrHoldingNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrHoldingNotFound.Error(), err.Error())
		case errors.Is(err, apperrors.ErrInvalidAssetClass):
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidAssetClass.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to update holding", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, holding)
}

// DeleteHolding handles DELETE requests to remove a holding and, through
// cascading deletes, its transactions.
//
// Endpoint: DELETE /api/holdings/{uuid}
// Response: 204 No Content on successful deletion
// Error: 404 Not Found if holding not found
// Error: 500 Internal Server Error if deletion fails
func (h *HoldingHandler) DeleteHolding(w http.ResponseWriter, r *http.Request) {
	holdingID := chi.URLParam(r, "uuid")

	if err := h.holdingService.DeleteHolding(r.Context(), holdingID); err != nil {
		if errors.Is(err, apperrors.ErrHoldingNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrHoldingNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete holding", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
