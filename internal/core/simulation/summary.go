package simulation

import (
	"slices"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"

	"marketsim/internal/core/domain"
)

// Summarize aggregates the simulation history of c. Ratios with a zero
// denominator are reported as zero.
func Summarize(c domain.Campaign, points []domain.SimulationDataPoint) domain.SimulationSummary {
	sum := domain.SimulationSummary{
		CampaignID: c.ID,
		Samples:    len(points),
		Cost:       decimal.Zero,
		AvgCPC:     decimal.Zero,
		CPA:        decimal.Zero,
		Factors:    CalculateFactors(c),
	}
	if len(points) == 0 {
		return sum
	}

	clicks := make([]float64, len(points))
	costs := make([]float64, len(points))
	sum.From, sum.To = points[0].Date, points[0].Date
	for i, p := range points {
		sum.Impressions += p.Impressions
		sum.Clicks += p.Clicks
		sum.Conversions += p.Conversions
		sum.Cost = sum.Cost.Add(p.Cost)

		clicks[i] = float64(p.Clicks)
		costs[i] = p.Cost.InexactFloat64()

		if p.Date.Before(sum.From) {
			sum.From = p.Date
		}
		if p.Date.After(sum.To) {
			sum.To = p.Date
		}
	}

	if sum.Impressions > 0 {
		sum.CTR = float64(sum.Clicks) / float64(sum.Impressions)
	}
	if sum.Clicks > 0 {
		sum.ConversionRate = float64(sum.Conversions) / float64(sum.Clicks)
		sum.AvgCPC = sum.Cost.Div(decimal.NewFromInt(sum.Clicks)).Round(2)
	}
	if sum.Conversions > 0 {
		sum.CPA = sum.Cost.Div(decimal.NewFromInt(sum.Conversions)).Round(2)
	}

	sum.MeanClicks = stat.Mean(clicks, nil)
	if len(clicks) > 1 {
		sum.StdDevClicks = stat.StdDev(clicks, nil)
	}

	// stat.Quantile requires sorted input
	slices.Sort(costs)
	sum.MedianCost = stat.Quantile(0.5, stat.Empirical, costs, nil)

	return sum
}
