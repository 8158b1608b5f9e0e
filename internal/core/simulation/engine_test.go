package simulation

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketsim/internal/core/domain"
)

func keywords(n int) []domain.Keyword {
	kws := make([]domain.Keyword, n)
	for i := range kws {
		kws[i] = domain.Keyword{Text: fmt.Sprintf("kw-%d", i), MatchType: domain.MatchBroad}
	}
	return kws
}

func TestGenerateDataPoint_FullCampaign(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	c := domain.Campaign{
		ID:            7,
		Keywords:      keywords(10),
		AdHeadline1:   strings.Repeat("a", 30),
		AdHeadline2:   strings.Repeat("b", 30),
		AdDescription: strings.Repeat("c", 90),
		DailyBudget:   "50",
	}

	f := CalculateFactors(c)
	assert.Equal(t, 1.0, f.KeywordRelevance)
	assert.Equal(t, 1.0, f.AdQualityScore)
	assert.Equal(t, 0.7, f.TargetingPrecision)

	p, err := GenerateDataPoint(c, at)
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.CampaignID)
	assert.Equal(t, int64(3400), p.Impressions)
	assert.Equal(t, int64(136), p.Clicks)
	assert.Equal(t, int64(8), p.Conversions)
	assert.Equal(t, "68.00", p.Cost.StringFixed(2))
	assert.True(t, p.Cost.Equal(decimal.NewFromInt(68)))
	assert.Equal(t, at, p.Date)
	assert.Equal(t, "0.5", CostPerClick(decimal.NewFromInt(50)).String())
}

func TestGenerateDataPoint_EmptyCampaign(t *testing.T) {
	c := domain.Campaign{DailyBudget: "0"}

	f := CalculateFactors(c)
	assert.Equal(t, 0.0, f.KeywordRelevance)
	assert.Equal(t, 0.0, f.AdQualityScore)

	p, err := GenerateDataPoint(c, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1700), p.Impressions)
	assert.Equal(t, int64(34), p.Clicks)
	assert.Equal(t, int64(1), p.Conversions)
	assert.Equal(t, "0.00", p.Cost.StringFixed(2))
}

func TestKeywordRelevance(t *testing.T) {
	tests := []struct {
		count int
		want  float64
	}{
		{0, 0},
		{1, 0.1},
		{5, 0.5},
		{10, 1},
		{11, 1},
		{250, 1},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d keywords", tt.count), func(t *testing.T) {
			f := CalculateFactors(domain.Campaign{Keywords: keywords(tt.count)})
			assert.InDelta(t, tt.want, f.KeywordRelevance, 1e-12)
		})
	}
}

func TestAdQualityScore_CountsCharacters(t *testing.T) {
	// 15 multi-byte characters are half a headline
	c := domain.Campaign{AdHeadline1: strings.Repeat("é", 15)}
	f := CalculateFactors(c)
	assert.InDelta(t, 0.5/3, f.AdQualityScore, 1e-12)
}

func TestGenerateDataPoint_Invariants(t *testing.T) {
	budgets := []string{"0", "0.01", "1", "12.34", "50", "99.999", "1000", "25000.5"}
	for kw := 0; kw <= 15; kw += 3 {
		for hl := 0; hl <= 40; hl += 8 {
			for desc := 0; desc <= 120; desc += 30 {
				for _, b := range budgets {
					c := domain.Campaign{
						Keywords:      keywords(kw),
						AdHeadline1:   strings.Repeat("h", hl),
						AdHeadline2:   strings.Repeat("x", hl/2),
						AdDescription: strings.Repeat("d", desc),
						DailyBudget:   b,
					}
					f := CalculateFactors(c)
					require.GreaterOrEqual(t, f.AdQualityScore, 0.0)
					require.LessOrEqual(t, f.AdQualityScore, 1.0)
					require.GreaterOrEqual(t, f.KeywordRelevance, 0.0)
					require.LessOrEqual(t, f.KeywordRelevance, 1.0)

					p, err := GenerateDataPoint(c, time.Time{})
					require.NoError(t, err)
					require.GreaterOrEqual(t, p.Conversions, int64(0))
					require.LessOrEqual(t, p.Clicks, p.Impressions)
					require.LessOrEqual(t, p.Conversions, p.Clicks)
					require.False(t, p.Cost.IsNegative())
					require.True(t, p.Cost.Equal(p.Cost.Round(2)), "cost %s has more than two decimals", p.Cost)

					budget := decimal.RequireFromString(b)
					want := decimal.NewFromInt(p.Clicks).Mul(CostPerClick(budget)).Round(2)
					require.True(t, want.Equal(p.Cost), "cost %s, want %s", p.Cost, want)
				}
			}
		}
	}
}

func TestGenerateDataPoint_InvalidBudget(t *testing.T) {
	for _, b := range []string{"", "  ", "abc", "-1", "12..5", "1,000"} {
		t.Run(fmt.Sprintf("%q", b), func(t *testing.T) {
			_, err := GenerateDataPoint(domain.Campaign{DailyBudget: b}, time.Now())
			assert.ErrorIs(t, err, domain.ErrInvalidBudget)
		})
	}
}

func TestParseDailyBudget(t *testing.T) {
	d, err := ParseDailyBudget(" 49.50 ")
	require.NoError(t, err)
	assert.Equal(t, "49.5", d.String())
}

func TestGenerateDataPoint_Concurrent(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	campaigns := make([]domain.Campaign, 50)
	for i := range campaigns {
		campaigns[i] = domain.Campaign{
			ID:          int64(i + 1),
			Keywords:    keywords(i % 12),
			AdHeadline1: strings.Repeat("h", i%31),
			DailyBudget: fmt.Sprintf("%d.25", i),
		}
	}

	want := make([]domain.SimulationDataPoint, len(campaigns))
	for i, c := range campaigns {
		p, err := GenerateDataPoint(c, at)
		require.NoError(t, err)
		want[i] = p
	}

	got := make([]domain.SimulationDataPoint, len(campaigns))
	var wg sync.WaitGroup
	for i, c := range campaigns {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i], _ = GenerateDataPoint(c, at)
		}()
	}
	wg.Wait()

	for i := range want {
		assert.Equal(t, want[i].Clicks, got[i].Clicks)
		assert.True(t, want[i].Cost.Equal(got[i].Cost), "campaign %d", i+1)
	}
}
