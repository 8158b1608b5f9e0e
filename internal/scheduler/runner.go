// Package scheduler advances the simulation of every active campaign on a
// fixed interval.
package scheduler

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"marketsim/internal/config/configs"
	"marketsim/internal/core/domain"
	"marketsim/internal/metrics"
)

// CampaignLister lists the campaigns to simulate.
type CampaignLister interface {
	ListActiveCampaigns(ctx context.Context) ([]domain.Campaign, error)
}

// Simulator produces and stores one sample for a campaign.
type Simulator interface {
	SimulateCampaign(ctx context.Context, c domain.Campaign) (*domain.SimulationDataPoint, error)
}

// Runner simulates every active campaign once per interval, running at most
// concurrency simulations at a time.
type Runner struct {
	campaigns   CampaignLister
	sim         Simulator
	interval    time.Duration
	concurrency int
	metrics     *metrics.Metrics
	logger      *slog.Logger
}

// NewRunner creates a runner. m may be nil.
func NewRunner(campaigns CampaignLister, sim Simulator, cfg configs.Simulation, m *metrics.Metrics, logger *slog.Logger) *Runner {
	r := &Runner{
		campaigns:   campaigns,
		sim:         sim,
		interval:    cfg.TickInterval,
		concurrency: cfg.Concurrency,
		metrics:     m,
		logger:      logger,
	}
	if r.interval <= 0 {
		r.interval = 5 * time.Second
	}
	if r.concurrency <= 0 {
		r.concurrency = 1
	}
	return r
}

// Run ticks until ctx is cancelled. A failed tick is logged and the loop
// keeps going.
func (r *Runner) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()

	r.logger.Info("simulation ticker started", slog.Duration("interval", r.interval), slog.Int("concurrency", r.concurrency))
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("simulation ticker stopped")
			return
		case <-t.C:
			if _, _, err := r.Tick(ctx); err != nil && ctx.Err() == nil {
				r.logger.Error("simulation tick error", slog.Any("error", err))
			}
		}
	}
}

// Tick simulates every active campaign once. One campaign failing does not
// stop the others; it is logged and counted in failed.
func (r *Runner) Tick(ctx context.Context) (ok, failed int, err error) {
	start := time.Now()
	campaigns, err := r.campaigns.ListActiveCampaigns(ctx)
	if err != nil {
		return 0, 0, err
	}

	var okN, failedN atomic.Int64
	var g errgroup.Group
	g.SetLimit(r.concurrency)
	for _, c := range campaigns {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			if _, simErr := r.sim.SimulateCampaign(ctx, c); simErr != nil {
				failedN.Add(1)
				r.logger.Warn("simulate campaign error", slog.Int64("campaign_id", c.ID), slog.Any("error", simErr))
				return nil
			}
			okN.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	ok, failed = int(okN.Load()), int(failedN.Load())
	r.metrics.ObserveTick(time.Since(start), ok, failed)
	r.logger.Debug("simulation tick", slog.Int("campaigns", len(campaigns)), slog.Int("ok", ok), slog.Int("failed", failed))
	return ok, failed, nil
}
