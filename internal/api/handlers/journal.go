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

// JournalHandler handles HTTP requests for trade-journal endpoints.
type JournalHandler struct {
	journalService *service.JournalService
}

// NewJournalHandler creates a new JournalHandler with the provided service dependency.
func NewJournalHandler(journalService *service.JournalService) *JournalHandler {
	return &JournalHandler{
		journalService: journalService,
	}
}

// Entries handles GET requests to retrieve all journal entries, newest first.
//
// Endpoint: GET /api/journal
// Response: 200 OK with array of JournalEntry
// Error: 500 Internal Server Error if retrieval fails
func (h *JournalHandler) Entries(w http.ResponseWriter, _ *http.Request) {
	entries, err := h.journalService.GetEntries()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveJournal.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, entries)
}

// CreateEntry handles POST requests to record a new journal entry.
//
// Endpoint: POST /api/journal
// Request Body: CreateJournalEntryRequest (date, symbol, side, quantity, price, reason, result)
// Response: 201 Created with JournalEntry
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *JournalHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateJournalEntryRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateJournalEntry(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	entry, err := h.journalService.CreateEntry(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create journal entry", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, entry)
}

// UpdateEntry handles PUT requests to update an existing journal entry.
//
// Endpoint: PUT /api/journal/{uuid}
// Request Body: UpdateJournalEntryRequest (all fields optional)
// Response: 200 OK with updated JournalEntry
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if entry not found
// Error: 500 Internal Server Error if update fails
func (h *JournalHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateJournalEntryRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateJournalEntry(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	entry, err := h.journalService.UpdateEntry(r.Context(), entryID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrJournalEntryNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrJournalEntryNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update journal entry", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, entry)
}

// DeleteEntry handles DELETE requests to remove a journal entry.
//
// Endpoint: DELETE /api/journal/{uuid}
// Response: 204 No Content on successful deletion
// Error: 404 Not Found if entry not found
// Error: 500 Internal Server Error if deletion fails
func (h *JournalHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "uuid")

	if err := h.journalService.DeleteEntry(r.Context(), entryID); err != nil {
		if errors.Is(err, apperrors.ErrJournalEntryNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrJournalEntryNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete journal entry", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
