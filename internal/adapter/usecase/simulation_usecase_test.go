package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"marketsim/internal/core/domain"
	"marketsim/internal/core/port/mocks"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func fixedClock() func() time.Time {
	at := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func fullCampaign() *domain.Campaign {
	kws := make([]domain.Keyword, 10)
	for i := range kws {
		kws[i] = domain.Keyword{Text: "kw", MatchType: domain.MatchExact}
	}
	return &domain.Campaign{
		ID:            42,
		UserID:        1,
		Name:          "Spring sale",
		DailyBudget:   "50.00",
		Keywords:      kws,
		AdHeadline1:   strings.Repeat("a", 30),
		AdHeadline2:   strings.Repeat("b", 30),
		AdDescription: strings.Repeat("c", 90),
		Status:        domain.CampaignActive,
	}
}

// TestSimulate ensures a sample is generated, stored, cached and published.
func TestSimulate(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	history := mocks.NewMockSimulationRepository(t)
	cache := mocks.NewMockSnapshotCache(t)
	publisher := mocks.NewMockDataPointPublisher(t)

	campaigns.EXPECT().GetCampaign(mock.Anything, int64(1), int64(42)).Return(fullCampaign(), nil)
	history.EXPECT().
		AppendDataPoint(mock.Anything, mock.AnythingOfType("*domain.SimulationDataPoint")).
		Run(func(ctx context.Context, p *domain.SimulationDataPoint) { p.ID = 7 }).
		Return(nil)
	cache.EXPECT().StoreLatest(mock.Anything, mock.AnythingOfType("domain.SimulationDataPoint")).Return(nil)
	publisher.EXPECT().PublishDataPoint(mock.Anything, mock.AnythingOfType("domain.SimulationDataPoint")).Return(nil)

	svc := NewSimulationUseCase(campaigns, history, testLogger,
		WithSnapshotCache(cache), WithPublisher(publisher), WithClock(fixedClock()))

	p, err := svc.Simulate(context.Background(), 1, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.ID)
	assert.Equal(t, int64(42), p.CampaignID)
	assert.Equal(t, int64(3400), p.Impressions)
	assert.Equal(t, int64(136), p.Clicks)
	assert.Equal(t, int64(8), p.Conversions)
	assert.True(t, p.Cost.Equal(decimal.NewFromInt(68)))
	assert.Equal(t, fixedClock()(), p.Date)
}

func TestSimulate_UnknownCampaign(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	history := mocks.NewMockSimulationRepository(t)
	campaigns.EXPECT().GetCampaign(mock.Anything, int64(1), int64(9)).Return(nil, nil)

	svc := NewSimulationUseCase(campaigns, history, testLogger)
	_, err := svc.Simulate(context.Background(), 1, 9)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSimulate_InvalidBudgetIsNotStored(t *testing.T) {
	history := mocks.NewMockSimulationRepository(t)
	svc := NewSimulationUseCase(mocks.NewMockCampaignRepository(t), history, testLogger)

	c := fullCampaign()
	c.DailyBudget = "fifty"
	_, err := svc.SimulateCampaign(context.Background(), *c)
	assert.ErrorIs(t, err, domain.ErrInvalidBudget)
	history.AssertNotCalled(t, "AppendDataPoint", mock.Anything, mock.Anything)
}

// TestSimulate_SideEffectFailuresAreLogged ensures cache and publisher
// errors do not fail the tick.
func TestSimulate_SideEffectFailuresAreLogged(t *testing.T) {
	history := mocks.NewMockSimulationRepository(t)
	cache := mocks.NewMockSnapshotCache(t)
	publisher := mocks.NewMockDataPointPublisher(t)

	history.EXPECT().AppendDataPoint(mock.Anything, mock.Anything).Return(nil)
	cache.EXPECT().StoreLatest(mock.Anything, mock.Anything).Return(errors.New("redis down"))
	publisher.EXPECT().PublishDataPoint(mock.Anything, mock.Anything).Return(errors.New("kafka down"))

	svc := NewSimulationUseCase(mocks.NewMockCampaignRepository(t), history, testLogger,
		WithSnapshotCache(cache), WithPublisher(publisher))

	p, err := svc.SimulateCampaign(context.Background(), *fullCampaign())
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestSimulate_StoreFailure(t *testing.T) {
	history := mocks.NewMockSimulationRepository(t)
	history.EXPECT().AppendDataPoint(mock.Anything, mock.Anything).Return(errors.New("boom"))

	svc := NewSimulationUseCase(mocks.NewMockCampaignRepository(t), history, testLogger)
	_, err := svc.SimulateCampaign(context.Background(), *fullCampaign())
	assert.Error(t, err)
}

// TestConcurrentSimulation ensures concurrent ticks each append exactly one
// sample to the history.
func TestConcurrentSimulation(t *testing.T) {
	history := mocks.NewMockSimulationRepository(t)

	var (
		mu     sync.Mutex
		stored []domain.SimulationDataPoint
	)
	history.EXPECT().
		AppendDataPoint(mock.Anything, mock.AnythingOfType("*domain.SimulationDataPoint")).
		Run(func(ctx context.Context, p *domain.SimulationDataPoint) {
			mu.Lock()
			defer mu.Unlock()
			p.ID = int64(len(stored) + 1)
			stored = append(stored, *p)
		}).
		Return(nil)

	svc := NewSimulationUseCase(mocks.NewMockCampaignRepository(t), history, testLogger)

	wg := sync.WaitGroup{}
	count := 10
	wg.Add(count)
	for i := 0; i < count; i++ {
		go func() {
			defer wg.Done()
			_, _ = svc.SimulateCampaign(context.Background(), *fullCampaign())
		}()
	}
	wg.Wait()

	require.Len(t, stored, count)
	seen := map[int64]bool{}
	for _, p := range stored {
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
		assert.Equal(t, int64(136), p.Clicks)
	}
}

func TestHistory_DefaultAndCappedLimit(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	history := mocks.NewMockSimulationRepository(t)

	campaigns.EXPECT().GetCampaign(mock.Anything, int64(1), int64(42)).Return(fullCampaign(), nil)
	history.EXPECT().ListDataPoints(mock.Anything, int64(42), 25).Return([]domain.SimulationDataPoint{{ID: 1}}, nil).Once()
	history.EXPECT().ListDataPoints(mock.Anything, int64(42), maxHistoryLimit).Return(nil, nil).Once()

	svc := NewSimulationUseCase(campaigns, history, testLogger, WithHistoryLimit(25))

	points, err := svc.History(context.Background(), 1, 42, 0)
	require.NoError(t, err)
	assert.Len(t, points, 1)

	_, err = svc.History(context.Background(), 1, 42, 5000)
	require.NoError(t, err)
}

func TestLatest_PrefersCache(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	history := mocks.NewMockSimulationRepository(t)
	cache := mocks.NewMockSnapshotCache(t)

	campaigns.EXPECT().GetCampaign(mock.Anything, int64(1), int64(42)).Return(fullCampaign(), nil)
	cache.EXPECT().Latest(mock.Anything, int64(42)).Return(&domain.SimulationDataPoint{ID: 99}, nil)

	svc := NewSimulationUseCase(campaigns, history, testLogger, WithSnapshotCache(cache))
	p, err := svc.Latest(context.Background(), 1, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(99), p.ID)
	history.AssertNotCalled(t, "LatestDataPoint", mock.Anything, mock.Anything)
}

func TestLatest_FallsBackToRepository(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	history := mocks.NewMockSimulationRepository(t)
	cache := mocks.NewMockSnapshotCache(t)

	campaigns.EXPECT().GetCampaign(mock.Anything, int64(1), int64(42)).Return(fullCampaign(), nil)
	cache.EXPECT().Latest(mock.Anything, int64(42)).Return(nil, nil)
	history.EXPECT().LatestDataPoint(mock.Anything, int64(42)).Return(&domain.SimulationDataPoint{ID: 5}, nil)

	svc := NewSimulationUseCase(campaigns, history, testLogger, WithSnapshotCache(cache))
	p, err := svc.Latest(context.Background(), 1, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(5), p.ID)
}

func TestSummary(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	history := mocks.NewMockSimulationRepository(t)

	campaigns.EXPECT().GetCampaign(mock.Anything, int64(1), int64(42)).Return(fullCampaign(), nil)
	history.EXPECT().ListDataPoints(mock.Anything, int64(42), maxHistoryLimit).Return([]domain.SimulationDataPoint{
		{Impressions: 3400, Clicks: 136, Conversions: 8, Cost: decimal.NewFromInt(68)},
		{Impressions: 3400, Clicks: 136, Conversions: 8, Cost: decimal.NewFromInt(68)},
	}, nil)

	svc := NewSimulationUseCase(campaigns, history, testLogger)
	s, err := svc.Summary(context.Background(), 1, 42)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Samples)
	assert.Equal(t, int64(272), s.Clicks)
	assert.Equal(t, "136.00", s.Cost.StringFixed(2))
	assert.Equal(t, "8.50", s.CPA.StringFixed(2))
	assert.Equal(t, 1.0, s.Factors.KeywordRelevance)
}
