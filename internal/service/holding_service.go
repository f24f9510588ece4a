package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/kingao12/investment-platform/internal/api/request"
	"github.com/kingao12/investment-platform/internal/apperrors"
	"github.com/kingao12/investment-platform/internal/model"
	"github.com/kingao12/investment-platform/internal/repository"
)

// HoldingService handles holding-related business logic operations.
type HoldingService struct {
	holdingRepo   *repository.HoldingRepository
	portfolioRepo *repository.PortfolioRepository
}

// NewHoldingService creates a new HoldingService with the provided repository dependencies.
func NewHoldingService(
	holdingRepo *repository.HoldingRepository,
	portfolioRepo *repository.PortfolioRepository,
) *HoldingService {
	return &HoldingService{
		holdingRepo:   holdingRepo,
		portfolioRepo: portfolioRepo,
	}
}

// GetHoldingsPerPortfolio retrieves all holdings belonging to a portfolio.
func (s *HoldingService) GetHoldingsPerPortfolio(portfolioID string) ([]model.Holding, error) {
	return s.holdingRepo.GetHoldingsOnPortfolioID(portfolioID)
}

// GetHolding retrieves a single holding by its ID.
func (s *HoldingService) GetHolding(holdingID string) (model.Holding, error) {
	return s.holdingRepo.GetHoldingOnID(holdingID)
}

// CreateHolding stores a new holding after confirming its portfolio exists.
// Symbols are uppercased at this boundary so price lookups and snapshot keys
// stay consistent.
func (s *HoldingService) CreateHolding(ctx context.Context, req request.CreateHoldingRequest) (*model.Holding, error) {
	if _, err := s.portfolioRepo.GetPortfolioOnID(req.PortfolioID); err != nil {
		return nil, err
	}

	if !model.ValidAssetClasses[req.AssetClass] {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidAssetClass, req.AssetClass)
	}

	holding := &model.Holding{
		ID:          uuid.New().String(),
		PortfolioID: req.PortfolioID,
		Symbol:      strings.ToUpper(strings.TrimSpace(req.Symbol)),
		DisplayName: req.DisplayName,
		AssetClass:  req.AssetClass,
	}

	if err := s.holdingRepo.InsertHolding(ctx, holding); err != nil {
		return nil, fmt.Errorf("failed to create holding: %w", err)
	}

	return holding, nil
}

// UpdateHolding applies the provided fields to an existing holding and
// returns the updated record.
func (s *HoldingService) UpdateHolding(ctx context.Context, holdingID string, req request.UpdateHoldingRequest) (*model.Holding, error) {
	holding, err := s.holdingRepo.GetHoldingOnID(holdingID)
	if err != nil {
		return nil, err
	}

	if req.Symbol != nil {
		holding.Symbol = strings.ToUpper(strings.TrimSpace(*req.Symbol))
	}
	if req.DisplayName != nil {
		holding.DisplayName = *req.DisplayName
	}
	if req.AssetClass != nil {
		if !model.ValidAssetClasses[*req.AssetClass] {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidAssetClass, *req.AssetClass)
		}
		holding.AssetClass = *req.AssetClass
	}

	if err := s.holdingRepo.UpdateHolding(ctx, &holding); err != nil {
		return nil, fmt.Errorf("failed to update holding: %w", err)
	}

	return &holding, nil
}

// DeleteHolding removes a holding; its transactions cascade in the database.
func (s *HoldingService) DeleteHolding(ctx context.Context, holdingID string) error {
	return s.holdingRepo.DeleteHolding(ctx, holdingID)
}
