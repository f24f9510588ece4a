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

// TransactionHandler handles HTTP requests for transaction endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the transactionService.
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler with the provided service dependency.
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// TransactionsPerHolding handles GET requests to retrieve a holding's ledger
// in chronological order.
//
// Endpoint: GET /api/holdings/{uuid}/transactions
// Response: 200 OK with array of TransactionResponse
// Error: 404 Not Found if holding not found
// Error: 500 Internal Server Error if retrieval fails
func (h *TransactionHandler) TransactionsPerHolding(w http.ResponseWriter, r *http.Request) {
	holdingID := chi.URLParam(r, "uuid")

	transactions, err := h.transactionService.GetTransactionsPerHolding(holdingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrHoldingNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrHoldingNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTransactions.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, transactions)
}

// GetTransaction handles GET requests to retrieve a single transaction by ID.
//
// Endpoint: GET /api/transactions/{uuid}
// Response: 200 OK with Transaction
// Error: 404 Not Found if transaction not found
// Error: 500 Internal Server Error if retrieval fails
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "uuid")

	transaction, err := h.transactionService.GetTransaction(transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTransactionNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTransaction.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, transaction)
}

// CreateTransaction handles POST requests to record a BUY or SELL against a
// holding's ledger. The stored totalAmount is computed server-side as
// quantity * unitPrice; a SELL exceeding the net position is rejected.
//
// Endpoint: POST /api/transactions
// Request Body: CreateTransactionRequest (holdingId, date, kind, quantity, unitPrice, fee, note)
// Response: 201 Created with Transaction
// Error: 400 Bad Request if validation fails, the body is invalid, or the SELL is uncovered
// Error: 404 Not Found if the target holding does not exist
// Error: 500 Internal Server Error if creation fails
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateTransactionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateTransaction(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	transaction, err := h.transactionService.CreateTransaction(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrHoldingNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrHoldingNotFound.Error(), err.Error())
		case errors.Is(err, apperrors.ErrInsufficientShares):
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInsufficientShares.Error(), err.Error())
		case errors.Is(err, apperrors.ErrInvalidTransactionKind),
			errors.Is(err, apperrors.ErrNegativeAmount):
			response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to create transaction", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusCreated, transaction)
}

// UpdateTransaction handles PUT requests to update an existing transaction.
// totalAmount is recomputed from the resulting quantity and unit price.
//
// Endpoint: PUT /api/transactions/{uuid}
// Request Body: UpdateTransactionRequest (all fields optional)
// Response: 200 OK with updated Transaction
// Error: 400 Bad Request if validation fails or the resulting SELL is uncovered
// Error: 404 Not Found if transaction not found
// Error: 500 Internal Server Error if update fails
func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateTransactionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateTransaction(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	transaction, err := h.transactionService.UpdateTransaction(r.Context(), transactionID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTransactionNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTransactionNotFound.Error(), err.Error())
		case errors.Is(err, apperrors.ErrInsufficientShares):
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInsufficientShares.Error(), err.Error())
		case errors.Is(err, apperrors.ErrInvalidTransactionKind),
			errors.Is(err, apperrors.ErrNegativeAmount):
			response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to update transaction", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, transaction)
}

// DeleteTransaction handles DELETE requests to remove a transaction.
//
// Endpoint: DELETE /api/transactions/{uuid}
// Response: 204 No Content on successful deletion
// Error: 404 Not Found if transaction not found
// Error: 500 Internal Server Error if deletion fails
func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "uuid")

	if err := h.transactionService.DeleteTransaction(r.Context(), transactionID); err != nil {
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTransactionNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete transaction", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
