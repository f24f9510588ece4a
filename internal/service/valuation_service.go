package service

import (
	"context"
	"log"
	"time"

	"github.com/kingao12/investment-platform/internal/model"
	"github.com/kingao12/investment-platform/internal/pricing"
	"github.com/kingao12/investment-platform/internal/repository"
)

// maxSnapshotAge is how long a persisted quote may stand in for a failed
// live lookup. Older snapshots are ignored and the holding values at
// break-even.
const maxSnapshotAge = time.Hour

// ValuationService combines cost-basis output with best-effort live prices
// into per-holding and portfolio-level valuations. It owns the price fan-out:
// one lookup per holding, awaited collectively, each outcome independent.
type ValuationService struct {
	holdingRepo     *repository.HoldingRepository
	transactionRepo *repository.TransactionRepository
	snapshotRepo    *repository.SnapshotRepository
	router          *pricing.Router
	vsCurrency      string
}

// NewValuationService creates a new ValuationService with the provided
// repository and pricing dependencies.
func NewValuationService(
	holdingRepo *repository.HoldingRepository,
	transactionRepo *repository.TransactionRepository,
	snapshotRepo *repository.SnapshotRepository,
	router *pricing.Router,
	vsCurrency string,
) *ValuationService {
	return &ValuationService{
		holdingRepo:     holdingRepo,
		transactionRepo: transactionRepo,
		snapshotRepo:    snapshotRepo,
		router:          router,
		vsCurrency:      vsCurrency,
	}
}

// ValueHoldings produces the derived valuation for every holding in the
// slice. Each invocation is one complete pass: prices are fanned out,
// awaited collectively, and applied together, so the result never mixes
// fresh and stale lookups from different passes.
//
// A holding whose lookup fails falls back to its most recent persisted
// snapshot if that snapshot is younger than maxSnapshotAge, and otherwise
// values at break-even. A holding whose ledger cannot be loaded contributes
// zeros rather than aborting the rest.
func (s *ValuationService) ValueHoldings(ctx context.Context, holdings []model.Holding) ([]model.HoldingValuation, error) {
	if len(holdings) == 0 {
		return []model.HoldingValuation{}, nil
	}

	holdingIDs := make([]string, len(holdings))
	for i, h := range holdings {
		holdingIDs[i] = h.ID
	}

	ledgers, err := s.transactionRepo.GetLedgers(holdingIDs)
	if err != nil {
		return nil, err
	}

	requests := make([]pricing.Request, len(holdings))
	for i, h := range holdings {
		requests[i] = pricing.Request{Symbol: h.Symbol, AssetClass: h.AssetClass}
	}

	results := s.router.Resolve(ctx, requests)
	s.storeSnapshots(ctx, holdings, results)

	snapshots := s.loadFreshSnapshots(holdings)

	valuations := make([]model.HoldingValuation, len(holdings))
	for i, h := range holdings {
		price, priced := priceFor(results[i], snapshots[h.Symbol])

		valuation := ValueHolding(h, ledgers[h.ID], price, priced)
		if priced {
			valuation.PriceChange24h = change24hFor(results[i], snapshots[h.Symbol])
		}
		valuations[i] = valuation
	}

	return valuations, nil
}

// SummarizePortfolio rolls per-holding valuations up to portfolio level.
// Invested and value are summed first; gain and ROI derive from the sums,
// never from averaging per-holding ROIs. All monetary outputs are rounded
// to two decimal places.
func SummarizePortfolio(portfolio model.Portfolio, valuations []model.HoldingValuation) model.PortfolioSummary {
	var totalInvested, totalValue, realizedGain float64
	for _, v := range valuations {
		totalInvested += v.NetInvested
		totalValue += v.CurrentValue
		realizedGain += v.RealizedGain
	}

	totalGain := totalValue - totalInvested

	roiPercent := 0.0
	if totalInvested != 0 {
		roiPercent = round(totalGain / totalInvested * 100)
	}

	return model.PortfolioSummary{
		ID:            portfolio.ID,
		Name:          portfolio.Name,
		Description:   portfolio.Description,
		TotalInvested: round(totalInvested),
		TotalValue:    round(totalValue),
		TotalGain:     round(totalGain),
		ROIPercent:    roiPercent,
		RealizedGain:  round(realizedGain),
		Holdings:      valuations,
	}
}

// RefreshPrices resolves live quotes for every distinct symbol across the
// given holdings and persists the successes as snapshots. Returns how many
// symbols resolved and how many did not; failures are counted, never
// propagated.
func (s *ValuationService) RefreshPrices(ctx context.Context, holdings []model.Holding) (resolved, failed int) {
	seen := make(map[string]bool)
	requests := make([]pricing.Request, 0, len(holdings))
	kept := make([]model.Holding, 0, len(holdings))
	for _, h := range holdings {
		if seen[h.Symbol] {
			continue
		}
		seen[h.Symbol] = true
		requests = append(requests, pricing.Request{Symbol: h.Symbol, AssetClass: h.AssetClass})
		kept = append(kept, h)
	}

	results := s.router.Resolve(ctx, requests)
	s.storeSnapshots(ctx, kept, results)

	for _, r := range results {
		if r.Err != nil {
			failed++
		} else {
			resolved++
		}
	}
	return resolved, failed
}

// RefreshAllPrices runs RefreshPrices over every holding in the database.
// This is the entry point for both the manual refresh endpoint and the
// scheduled refresh job.
func (s *ValuationService) RefreshAllPrices(ctx context.Context) (resolved, failed int, err error) {
	holdings, err := s.holdingRepo.GetHoldings()
	if err != nil {
		return 0, 0, err
	}

	resolved, failed = s.RefreshPrices(ctx, holdings)
	return resolved, failed, nil
}

// storeSnapshots persists every successful lookup. Snapshot writes are
// best-effort; a failed write only costs the next fallback, so it is logged
// and dropped.
func (s *ValuationService) storeSnapshots(ctx context.Context, holdings []model.Holding, results []pricing.Result) {
	now := time.Now().Unix()
	for i, r := range results {
		if r.Err != nil {
			continue
		}
		snapshot := model.PriceSnapshot{
			Symbol:         holdings[i].Symbol,
			AssetClass:     holdings[i].AssetClass,
			Price:          r.Quote.Price,
			Change24h:      r.Quote.Change24h,
			FetchedAtUnix:  now,
			SourceCurrency: r.Quote.Currency,
		}
		if err := s.snapshotRepo.UpsertSnapshot(ctx, snapshot); err != nil {
			log.Printf("failed to store price snapshot for %s: %v", snapshot.Symbol, err)
		}
	}
}

// loadFreshSnapshots returns stored snapshots younger than maxSnapshotAge,
// keyed by symbol. Load failures degrade to break-even valuation, so they
// are logged and swallowed.
func (s *ValuationService) loadFreshSnapshots(holdings []model.Holding) map[string]*model.PriceSnapshot {
	symbols := make([]string, len(holdings))
	for i, h := range holdings {
		symbols[i] = h.Symbol
	}

	stored, err := s.snapshotRepo.GetSnapshots(symbols)
	if err != nil {
		log.Printf("failed to load price snapshots: %v", err)
		return map[string]*model.PriceSnapshot{}
	}

	cutoff := time.Now().Add(-maxSnapshotAge).Unix()
	fresh := make(map[string]*model.PriceSnapshot, len(stored))
	for symbol, snapshot := range stored {
		if snapshot.FetchedAtUnix >= cutoff {
			fresh[symbol] = &snapshot
		}
	}
	return fresh
}

// priceFor picks the price for one holding: the live quote when the lookup
// succeeded, else a fresh snapshot, else nothing.
func priceFor(result pricing.Result, snapshot *model.PriceSnapshot) (float64, bool) {
	if result.Err == nil {
		return result.Quote.Price, true
	}
	if snapshot != nil {
		return snapshot.Price, true
	}
	return 0, false
}

// change24hFor mirrors priceFor for the 24h change figure.
func change24hFor(result pricing.Result, snapshot *model.PriceSnapshot) float64 {
	if result.Err == nil {
		return result.Quote.Change24h
	}
	if snapshot != nil {
		return snapshot.Change24h
	}
	return 0
}
