package handlers

import (
	"net/http"
	"strings"

	"github.com/kingao12/investment-platform/internal/api/request"
	"github.com/kingao12/investment-platform/internal/api/response"
	"github.com/kingao12/investment-platform/internal/service"
)

// SettingsHandler handles HTTP requests for settings endpoints.
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler with the provided service dependency.
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// UpdateEquityAPIKey handles PUT requests to store the Alpha Vantage API key.
// The key is encrypted at rest and never echoed back.
//
// Endpoint: PUT /api/settings/equity-api-key
// Request Body: UpdateEquityAPIKeyRequest (apiKey)
// Response: 204 No Content on success
// Error: 400 Bad Request if the body is invalid or the key is empty
// Error: 500 Internal Server Error if the key cannot be stored
func (h *SettingsHandler) UpdateEquityAPIKey(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpdateEquityAPIKeyRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	apiKey := strings.TrimSpace(req.APIKey)
	if apiKey == "" {
		response.RespondError(w, http.StatusBadRequest, "validation failed", "apiKey is required")
		return
	}

	if err := h.settingsService.SetEquityAPIKey(r.Context(), apiKey); err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to store API key", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
