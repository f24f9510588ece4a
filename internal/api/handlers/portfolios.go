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

// PortfolioHandler handles HTTP requests for portfolio endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the portfolioService.
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler with the provided service dependency.
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// Portfolios handles GET requests to retrieve all portfolios.
//
// Endpoint: GET /api/portfolios
// Response: 200 OK with array of Portfolio
// Error: 500 Internal Server Error if retrieval fails
func (h *PortfolioHandler) Portfolios(w http.ResponseWriter, _ *http.Request) {
	portfolios, err := h.portfolioService.GetAllPortfolios()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePortfolios.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, portfolios)
}

// GetPortfolio handles GET requests to retrieve a single portfolio by ID.
//
// Endpoint: GET /api/portfolios/{uuid}
// Response: 200 OK with Portfolio
// Error: 404 Not Found if portfolio not found
// Error: 500 Internal Server Error if retrieval fails
func (h *PortfolioHandler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	portfolioID := chi.URLParam(r, "uuid")

	portfolio, err := h.portfolioService.GetPortfolio(portfolioID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPortfolioNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPortfolioNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePortfolios.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, portfolio)
}

// PortfolioSummary handles GET requests to retrieve the full valuation of a
// portfolio: per-holding cost basis, live or snapshot prices, and rolled-up
// totals. Holdings whose price lookup failed are valued at break-even and
// flagged with priced=false.
//
// Endpoint: GET /api/portfolios/{uuid}/summary
// Response: 200 OK with PortfolioSummary
// Error: 404 Not Found if portfolio not found
// Error: 500 Internal Server Error if valuation fails
func (h *PortfolioHandler) PortfolioSummary(w http.ResponseWriter, r *http.Request) {
	portfolioID := chi.URLParam(r, "uuid")

	summary, err := h.portfolioService.GetPortfolioSummary(r.Context(), portfolioID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPortfolioNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPortfolioNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetPortfolioSummary.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}

// CreatePortfolio handles POST requests to create a new portfolio.
//
// Endpoint: POST /api/portfolios
// Request Body: CreatePortfolioRequest (name, description)
// Response: 201 Created with Portfolio
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *PortfolioHandler) CreatePortfolio(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreatePortfolioRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreatePortfolio(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	portfolio, err := h.portfolioService.CreatePortfolio(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create portfolio", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, portfolio)
}

// UpdatePortfolio handles PUT requests to update an existing portfolio.
//
// Endpoint: PUT /api/portfolios/{uuid}
// Request Body: UpdatePortfolioRequest (all fields optional)
// Response: 200 OK with updated Portfolio
// Error: 400 Bad Request if validation fails
// Error: 404 Not Found if portfolio not found
// Error: 500 Internal Server Error if update fails
func (h *PortfolioHandler) UpdatePortfolio(w http.ResponseWriter, r *http.Request) {
	portfolioID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdatePortfolioRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdatePortfolio(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	portfolio, err := h.portfolioService.UpdatePortfolio(r.Context(), portfolioID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrPortfolioNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPortfolioNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update portfolio", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, portfolio)
}

// DeletePortfolio handles DELETE requests to remove a portfolio and,
// through cascading deletes, its holdings and their transactions.
//
// Endpoint: DELETE /api/portfolios/{uuid}
// Response: 204 No Content on successful deletion
// Error: 404 Not Found if portfolio not found
// Error: 500 Internal Server Error if deletion fails
func (h *PortfolioHandler) DeletePortfolio(w http.ResponseWriter, r *http.Request) {
	portfolioID := chi.URLParam(r, "uuid")

	if err := h.portfolioService.DeletePortfolio(r.Context(), portfolioID); err != nil {
		if errors.Is(err, apperrors.ErrPortfolioNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPortfolioNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete portfolio", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
