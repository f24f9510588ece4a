package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kingao12/investment-platform/internal/api/request"
	"github.com/kingao12/investment-platform/internal/model"
	"github.com/kingao12/investment-platform/internal/repository"
)

// PortfolioService handles portfolio-related business logic operations.
// It coordinates the portfolio repository with the valuation service to
// produce portfolio summaries on demand; derived numbers are computed from
// the ledger on every request and never persisted.
type PortfolioService struct {
	portfolioRepo    *repository.PortfolioRepository
	holdingRepo      *repository.HoldingRepository
	valuationService *ValuationService
}

// NewPortfolioService creates a new PortfolioService with the provided dependencies.
func NewPortfolioService(
	portfolioRepo *repository.PortfolioRepository,
	holdingRepo *repository.HoldingRepository,
	valuationService *ValuationService,
) *PortfolioService {
	return &PortfolioService{
		portfolioRepo:    portfolioRepo,
		holdingRepo:      holdingRepo,
		valuationService: valuationService,
	}
}

// GetAllPortfolios retrieves all portfolios from the database.
func (s *PortfolioService) GetAllPortfolios() ([]model.Portfolio, error) {
	return s.portfolioRepo.GetPortfolios()
}

// GetPortfolio retrieves a single portfolio by its ID.
func (s *PortfolioService) GetPortfolio(portfolioID string) (model.Portfolio, error) {
	return s.portfolioRepo.GetPortfolioOnID(portfolioID)
}

// GetPortfolioSummary computes the full valuation of one portfolio: each
// holding's cost basis combined with a live price fan-out, rolled up to
// portfolio totals. A lookup failure for one holding never aborts the
// summary; that holding values at break-even.
func (s *PortfolioService) GetPortfolioSummary(ctx context.Context, portfolioID string) (model.PortfolioSummary, error) {
	portfolio, err := s.portfolioRepo.GetPortfolioOnID(portfolioID)
	if err != nil {
		return model.PortfolioSummary{}, err
	}

	holdings, err := s.holdingRepo.GetHoldingsOnPortfolioID(portfolioID)
	if err != nil {
		return model.PortfolioSummary{}, err
	}

	valuations, err := s.valuationService.ValueHoldings(ctx, holdings)
	if err != nil {
		return model.PortfolioSummary{}, err
	}

	return SummarizePortfolio(portfolio, valuations), nil
}

// CreatePortfolio stores a new portfolio and returns it.
func (s *PortfolioService) CreatePortfolio(ctx context.Context, req request.CreatePortfolioRequest) (*model.Portfolio, error) {
	portfolio := &model.Portfolio{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.portfolioRepo.InsertPortfolio(ctx, portfolio); err != nil {
		return nil, fmt.Errorf("failed to create portfolio: %w", err)
	}

	return portfolio, nil
}

// UpdatePortfolio applies the provided fields to an existing portfolio and
// returns the updated record.
func (s *PortfolioService) UpdatePortfolio(ctx context.Context, portfolioID string, req request.UpdatePortfolioRequest) (*model.Portfolio, error) {
	portfolio, err := s.portfolioRepo.GetPortfolioOnID(portfolioID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		portfolio.Name = *req.Name
	}
	if req.Description != nil {
		portfolio.Description = *req.Description
	}

	if err := s.portfolioRepo.UpdatePortfolio(ctx, &portfolio); err != nil {
		return nil, fmt.Errorf("failed to update portfolio: %w", err)
	}

	return &portfolio, nil
}

// DeletePortfolio removes a portfolio; its holdings and their transactions
// cascade in the database.
func (s *PortfolioService) DeletePortfolio(ctx context.Context, portfolioID string) error {
	return s.portfolioRepo.DeletePortfolio(ctx, portfolioID)
}
