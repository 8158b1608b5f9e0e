package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"marketsim/internal/core/domain"
	"marketsim/internal/core/port"
	"marketsim/internal/core/simulation"
)

const maxHistoryLimit = 1000

// SimulationUseCase runs the metrics engine for campaigns and owns the
// resulting history. The snapshot cache and the publisher are optional.
type SimulationUseCase struct {
	campaigns port.CampaignRepository
	history   port.SimulationRepository
	cache     port.SnapshotCache
	publisher port.DataPointPublisher
	logger    *slog.Logger

	historyLimit int
	now          func() time.Time
}

// SimulationOption configures optional collaborators of SimulationUseCase.
type SimulationOption func(*SimulationUseCase)

// WithSnapshotCache keeps the newest sample of each campaign in c.
func WithSnapshotCache(c port.SnapshotCache) SimulationOption {
	return func(u *SimulationUseCase) { u.cache = c }
}

// WithPublisher streams every new sample to p.
func WithPublisher(p port.DataPointPublisher) SimulationOption {
	return func(u *SimulationUseCase) { u.publisher = p }
}

// WithHistoryLimit sets the default number of samples History returns.
func WithHistoryLimit(n int) SimulationOption {
	return func(u *SimulationUseCase) {
		if n > 0 {
			u.historyLimit = min(n, maxHistoryLimit)
		}
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) SimulationOption {
	return func(u *SimulationUseCase) { u.now = now }
}

// NewSimulationUseCase creates the simulation usecase.
func NewSimulationUseCase(campaigns port.CampaignRepository, history port.SimulationRepository, logger *slog.Logger, opts ...SimulationOption) *SimulationUseCase {
	u := &SimulationUseCase{
		campaigns:    campaigns,
		history:      history,
		logger:       logger,
		historyLimit: 100,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Simulate loads the campaign and appends one new sample to its history.
func (u *SimulationUseCase) Simulate(ctx context.Context, userID, campaignID int64) (*domain.SimulationDataPoint, error) {
	c, err := u.ownedCampaign(ctx, userID, campaignID)
	if err != nil {
		return nil, err
	}
	return u.SimulateCampaign(ctx, *c)
}

// SimulateCampaign generates a sample for c, stores it, then refreshes the
// cache and publishes it. Cache and publisher failures are logged only.
func (u *SimulationUseCase) SimulateCampaign(ctx context.Context, c domain.Campaign) (*domain.SimulationDataPoint, error) {
	p, err := simulation.GenerateDataPoint(c, u.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("campaign %d: %w", c.ID, err)
	}
	if err = u.history.AppendDataPoint(ctx, &p); err != nil {
		return nil, fmt.Errorf("append data point: %w", err)
	}

	if u.cache != nil {
		if err = u.cache.StoreLatest(ctx, p); err != nil {
			u.logger.Warn("snapshot cache error", slog.Int64("campaign_id", c.ID), slog.Any("error", err))
		}
	}
	if u.publisher != nil {
		if err = u.publisher.PublishDataPoint(ctx, p); err != nil {
			u.logger.Warn("publish data point error", slog.Int64("campaign_id", c.ID), slog.Any("error", err))
		}
	}
	return &p, nil
}

// History returns the newest samples of a campaign in ascending order.
func (u *SimulationUseCase) History(ctx context.Context, userID, campaignID int64, limit int) ([]domain.SimulationDataPoint, error) {
	if _, err := u.ownedCampaign(ctx, userID, campaignID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = u.historyLimit
	}
	limit = min(limit, maxHistoryLimit)
	return u.history.ListDataPoints(ctx, campaignID, limit)
}

// Latest returns the newest sample, preferring the snapshot cache.
func (u *SimulationUseCase) Latest(ctx context.Context, userID, campaignID int64) (*domain.SimulationDataPoint, error) {
	if _, err := u.ownedCampaign(ctx, userID, campaignID); err != nil {
		return nil, err
	}
	if u.cache != nil {
		p, err := u.cache.Latest(ctx, campaignID)
		if err != nil {
			u.logger.Warn("snapshot cache error", slog.Int64("campaign_id", campaignID), slog.Any("error", err))
		} else if p != nil {
			return p, nil
		}
	}
	return u.history.LatestDataPoint(ctx, campaignID)
}

// Summary aggregates the stored history of a campaign.
func (u *SimulationUseCase) Summary(ctx context.Context, userID, campaignID int64) (*domain.SimulationSummary, error) {
	c, err := u.ownedCampaign(ctx, userID, campaignID)
	if err != nil {
		return nil, err
	}
	points, err := u.history.ListDataPoints(ctx, campaignID, maxHistoryLimit)
	if err != nil {
		return nil, err
	}
	sum := simulation.Summarize(*c, points)
	return &sum, nil
}

func (u *SimulationUseCase) ownedCampaign(ctx context.Context, userID, campaignID int64) (*domain.Campaign, error) {
	c, err := u.campaigns.GetCampaign(ctx, userID, campaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("campaign %d: %w", campaignID, domain.ErrNotFound)
	}
	return c, nil
}
