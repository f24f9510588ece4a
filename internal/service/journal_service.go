package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/kingao12/investment-platform/internal/api/request"
	"github.com/kingao12/investment-platform/internal/model"
	"github.com/kingao12/investment-platform/internal/repository"
)

// JournalService handles trade-journal business logic operations. Journal
// entries are free-standing notes about trades and never feed the cost-basis
// or valuation calculations.
type JournalService struct {
	journalRepo *repository.JournalRepository
}

// NewJournalService creates a new JournalService with the provided repository dependency.
func NewJournalService(journalRepo *repository.JournalRepository) *JournalService {
	return &JournalService{journalRepo: journalRepo}
}

// GetEntries retrieves all journal entries, newest first.
func (s *JournalService) GetEntries() ([]model.JournalEntry, error) {
	return s.journalRepo.GetEntries()
}

// CreateEntry stores a new journal entry.
func (s *JournalService) CreateEntry(ctx context.Context, req request.CreateJournalEntryRequest) (*model.JournalEntry, error) {
	date, err := repository.ParseTime(req.Date)
	if err != nil || date.IsZero() {
		return nil, fmt.Errorf("failed to parse date: %w", err)
	}

	entry := &model.JournalEntry{
		ID:       uuid.New().String(),
		Date:     date,
		Symbol:   strings.ToUpper(strings.TrimSpace(req.Symbol)),
		Side:     req.Side,
		Quantity: req.Quantity,
		Price:    req.Price,
		Reason:   req.Reason,
		Result:   req.Result,
	}

	if err := s.journalRepo.InsertEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create journal entry: %w", err)
	}

	return entry, nil
}

// UpdateEntry applies the provided fields to an existing journal entry and
// returns the updated record. Symbols normalize to uppercase, matching create.
func (s *JournalService) UpdateEntry(ctx context.Context, entryID string, req request.UpdateJournalEntryRequest) (*model.JournalEntry, error) {
	entry, err := s.journalRepo.GetEntry(entryID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		date, err := repository.ParseTime(*req.Date)
		if err != nil || date.IsZero() {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}
		entry.Date = date
	}
	if req.Symbol != nil {
		entry.Symbol = strings.ToUpper(strings.TrimSpace(*req.Symbol))
	}
	if req.Side != nil {
		entry.Side = *req.Side
	}
	if req.Quantity != nil {
		entry.Quantity = *req.Quantity
	}
	if req.Price != nil {
		entry.Price = *req.Price
	}
	if req.Reason != nil {
		entry.Reason = *req.Reason
	}
	if req.Result != nil {
		entry.Result = *req.Result
	}

	if err := s.journalRepo.UpdateEntry(ctx, &entry); err != nil {
		return nil, fmt.Errorf("failed to update journal entry: %w", err)
	}

	return &entry, nil
}

// DeleteEntry removes a journal entry.
func (s *JournalService) DeleteEntry(ctx context.Context, entryID string) error {
	return s.journalRepo.DeleteEntry(ctx, entryID)
}
