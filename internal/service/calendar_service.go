package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kingao12/investment-platform/internal/api/request"
	"github.com/kingao12/investment-platform/internal/apperrors"
	"github.com/kingao12/investment-platform/internal/model"
	"github.com/kingao12/investment-platform/internal/repository"
)

// CalendarService handles economic-calendar business logic operations.
type CalendarService struct {
	calendarRepo *repository.CalendarRepository
}

// NewCalendarService creates a new CalendarService with the provided repository dependency.
func NewCalendarService(calendarRepo *repository.CalendarRepository) *CalendarService {
	return &CalendarService{calendarRepo: calendarRepo}
}

// GetEvents retrieves calendar events within the date range.
// Returns apperrors.ErrInvalidDateRange when the end precedes the start.
func (s *CalendarService) GetEvents(startDate, endDate time.Time) ([]model.CalendarEvent, error) {
	if endDate.Before(startDate) {
		return nil, apperrors.ErrInvalidDateRange
	}
	return s.calendarRepo.GetEvents(startDate, endDate)
}

// CreateEvent stores a new calendar event.
func (s *CalendarService) CreateEvent(ctx context.Context, req request.CreateCalendarEventRequest) (*model.CalendarEvent, error) {
	date, err := repository.ParseTime(req.Date)
	if err != nil || date.IsZero() {
		return nil, fmt.Errorf("failed to parse date: %w", err)
	}

	event := &model.CalendarEvent{
		ID:         uuid.New().String(),
		Date:       date,
		Title:      req.Title,
		Country:    req.Country,
		Category:   req.Category,
		Importance: req.Importance,
	}

	if err := s.calendarRepo.InsertEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return event, nil
}

// UpdateEvent applies the provided fields to an existing calendar event and
// returns the updated record.
func (s *CalendarService) UpdateEvent(ctx context.Context, eventID string, req request.UpdateCalendarEventRequest) (*model.CalendarEvent, error) {
	event, err := s.calendarRepo.GetEvent(eventID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		date, err := repository.ParseTime(*req.Date)
		if err != nil || date.IsZero() {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}
		event.Date = date
	}
	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Country != nil {
		event.Country = *req.Country
	}
	if req.Category != nil {
		event.Category = *req.Category
	}
	if req.Importance != nil {
		event.Importance = *req.Importance
	}

	if err := s.calendarRepo.UpdateEvent(ctx, &event); err != nil {
		return nil, fmt.Errorf("failed to update calendar event: %w", err)
	}

	return &event, nil
}

// DeleteEvent removes a calendar event.
func (s *CalendarService) DeleteEvent(ctx context.Context, eventID string) error {
	return s.calendarRepo.DeleteEvent(ctx, eventID)
}
