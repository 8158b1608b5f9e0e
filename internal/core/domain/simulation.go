package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// SimulationFactors are the heuristic inputs of the performance simulator.
// Every factor lies in [0,1]. They are derived from the campaign on every
// tick and never stored.
type SimulationFactors struct {
	KeywordRelevance   float64 `json:"keywordRelevance"`
	AdQualityScore     float64 `json:"adQualityScore"`
	TargetingPrecision float64 `json:"targetingPrecision"`
}

// SimulationDataPoint is one synthetic performance sample of a campaign.
// Clicks never exceed impressions and conversions never exceed clicks. Cost
// is rounded to two decimal places.
type SimulationDataPoint struct {
	ID          int64           `json:"id"`
	CampaignID  int64           `json:"campaignId"`
	Impressions int64           `json:"impressions"`
	Clicks      int64           `json:"clicks"`
	Conversions int64           `json:"conversions"`
	Cost        decimal.Decimal `json:"cost"`
	Date        time.Time       `json:"date"`
}

// MarshalJSON renders Cost as a JSON number with exactly two decimals, the
// same shape for API responses, cached snapshots and published messages.
func (p SimulationDataPoint) MarshalJSON() ([]byte, error) {
	type plain SimulationDataPoint
	return json.Marshal(struct {
		plain
		Cost json.Number `json:"cost"`
	}{plain: plain(p), Cost: json.Number(p.Cost.StringFixed(2))})
}

// SimulationSummary aggregates the history of a campaign for the
// performance dashboard.
type SimulationSummary struct {
	CampaignID     int64
	Samples        int
	Impressions    int64
	Clicks         int64
	Conversions    int64
	Cost           decimal.Decimal
	CTR            float64 // clicks / impressions
	ConversionRate float64 // conversions / clicks
	AvgCPC         decimal.Decimal
	CPA            decimal.Decimal
	MeanClicks     float64
	StdDevClicks   float64
	MedianCost     float64
	Factors        SimulationFactors
	From           time.Time
	To             time.Time
}
