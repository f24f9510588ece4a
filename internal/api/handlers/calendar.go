package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kingao12/investment-platform/internal/api/request"
	"github.com/kingao12/investment-platform/internal/api/response"
	"github.com/kingao12/investment-platform/internal/apperrors"
	"github.com/kingao12/investment-platform/internal/service"
	"github.com/kingao12/investment-platform/internal/validation"
)

// CalendarHandler handles HTTP requests for economic-calendar endpoints.
type CalendarHandler struct {
	calendarService *service.CalendarService
}

// NewCalendarHandler creates a new CalendarHandler with the provided service dependency.
func NewCalendarHandler(calendarService *service.CalendarService) *CalendarHandler {
	return &CalendarHandler{
		calendarService: calendarService,
	}
}

// Events handles GET requests to retrieve calendar events within a date range.
// The start and end query parameters take YYYY-MM-DD dates; when absent the
// range defaults to the current month.
//
// Endpoint: GET /api/calendar?start=YYYY-MM-DD&end=YYYY-MM-DD
// Response: 200 OK with array of CalendarEvent
// Error: 400 Bad Request if a date is malformed or end precedes start
// Error: 500 Internal Server Error if retrieval fails
func (h *CalendarHandler) Events(w http.ResponseWriter, r *http.Request) {
	startDate, endDate, err := parseDateRange(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid date range", err.Error())
		return
	}

	events, err := h.calendarService.GetEvents(startDate, endDate)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidDateRange) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidDateRange.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveCalendar.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, events)
}

// CreateEvent handles POST requests to record a new calendar event.
//
// Endpoint: POST /api/calendar
// Request Body: CreateCalendarEventRequest (date, title, country, category, importance)
// Response: 201 Created with CalendarEvent
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *CalendarHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateCalendarEventRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateCalendarEvent(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	event, err := h.calendarService.CreateEvent(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create calendar event", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, event)
}

// UpdateEvent handles PUT requests to update an existing calendar event.
//
// Endpoint: PUT /api/calendar/{uuid}
// Request Body: UpdateCalendarEventRequest (all fields optional)
// Response: 200 OK with updated CalendarEvent
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if event not found
// Error: 500 Internal Server Error if update fails
func (h *CalendarHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateCalendarEventRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateCalendarEvent(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	event, err := h.calendarService.UpdateEvent(r.Context(), eventID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrCalendarEventNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrCalendarEventNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update calendar event", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, event)
}

// DeleteEvent handles DELETE requests to remove a calendar event.
//
// Endpoint: DELETE /api/calendar/{uuid}
// Response: 204 No Content on successful deletion
// Error: 404 Not Found if event not found
// Error: 500 Internal Server Error if deletion fails
func (h *CalendarHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "uuid")

	if err := h.calendarService.DeleteEvent(r.Context(), eventID); err != nil {
		if errors.Is(err, apperrors.ErrCalendarEventNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrCalendarEventNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete calendar event", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// parseDateRange reads the start and end query parameters, defaulting each
// to the boundaries of the current month.
func parseDateRange(r *http.Request) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	startDate := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	endDate := startDate.AddDate(0, 1, -1)

	if raw := r.URL.Query().Get("start"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		startDate = parsed
	}
	if raw := r.URL.Query().Get("end"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		endDate = parsed
	}

	return startDate, endDate, nil
}
