// Package scheduler runs the background price-snapshot refresh on a cron
// schedule so the dashboard can fall back to recent quotes when a live
// lookup fails.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/kingao12/investment-platform/internal/service"
)

// refreshTimeout bounds one refresh pass; each underlying lookup already
// carries its own 10s timeout.
const refreshTimeout = 2 * time.Minute

// Scheduler owns the cron runner for background jobs.
type Scheduler struct {
	cron      *cron.Cron
	valuation *service.ValuationService
}

// New creates a Scheduler and registers the price refresh job under spec,
// a cron expression (descriptors like "@every 15m" work too). An empty spec
// registers nothing; Start and Stop remain safe to call.
func New(valuation *service.ValuationService, spec string) (*Scheduler, error) {
	s := &Scheduler{
		cron:      cron.New(),
		valuation: valuation,
	}

	if spec != "" {
		if _, err := s.cron.AddFunc(spec, s.refreshPrices); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Start begins running registered jobs in their own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) refreshPrices() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	resolved, failed, err := s.valuation.RefreshAllPrices(ctx)
	if err != nil {
		log.Printf("scheduled price refresh failed: %v", err)
		return
	}
	log.Printf("scheduled price refresh: %d resolved, %d failed", resolved, failed)
}
