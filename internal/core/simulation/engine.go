// Package simulation derives synthetic ad-performance samples from a
// campaign's static configuration. Every function is pure and safe for
// concurrent use; scheduling and persistence belong to the callers.
package simulation

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"marketsim/internal/core/domain"
)

const (
	// keywordSaturation is the keyword count at which relevance maxes out.
	keywordSaturation = 10

	// DefaultTargetingPrecision is used for every campaign. It does not
	// depend on the campaign's targeting configuration.
	DefaultTargetingPrecision = 0.7

	baseImpressions = 1000
	baseCTR         = 0.02
	baseCVR         = 0.03
)

var hundred = decimal.NewFromInt(100)

// ParseDailyBudget parses a budget as entered in the campaign builder. The
// value must be a non-negative decimal number.
func ParseDailyBudget(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty", domain.ErrInvalidBudget)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidBudget, s)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s is negative", domain.ErrInvalidBudget, s)
	}
	return d, nil
}

// CalculateFactors returns the heuristic factors for c.
func CalculateFactors(c domain.Campaign) domain.SimulationFactors {
	return domain.SimulationFactors{
		KeywordRelevance:   keywordRelevance(len(c.Keywords)),
		AdQualityScore:     adQualityScore(c.AdHeadline1, c.AdHeadline2, c.AdDescription),
		TargetingPrecision: DefaultTargetingPrecision,
	}
}

// CostPerClick is a hundredth of the daily budget.
func CostPerClick(budget decimal.Decimal) decimal.Decimal {
	return budget.Div(hundred)
}

// GenerateDataPoint simulates one performance sample for c, timestamped at.
// It fails with domain.ErrInvalidBudget when the daily budget is not a
// non-negative number.
func GenerateDataPoint(c domain.Campaign, at time.Time) (domain.SimulationDataPoint, error) {
	budget, err := ParseDailyBudget(c.DailyBudget)
	if err != nil {
		return domain.SimulationDataPoint{}, err
	}
	f := CalculateFactors(c)

	impressions := math.Floor(baseImpressions * (1 + f.TargetingPrecision) * (1 + f.KeywordRelevance))
	clicks := math.Floor(impressions * baseCTR * (1 + f.AdQualityScore))
	conversions := math.Floor(clicks * baseCVR * (1 + f.AdQualityScore))

	cost := decimal.NewFromFloat(clicks).Mul(CostPerClick(budget)).Round(2)

	return domain.SimulationDataPoint{
		CampaignID:  c.ID,
		Impressions: int64(impressions),
		Clicks:      int64(clicks),
		Conversions: int64(conversions),
		Cost:        cost,
		Date:        at,
	}, nil
}

func keywordRelevance(count int) float64 {
	return math.Min(float64(count)/keywordSaturation, 1)
}

func adQualityScore(headline1, headline2, description string) float64 {
	h1 := lengthRatio(headline1, domain.MaxHeadlineLength)
	h2 := lengthRatio(headline2, domain.MaxHeadlineLength)
	desc := lengthRatio(description, domain.MaxDescriptionLength)
	return (h1 + h2 + desc) / 3
}

// lengthRatio saturates at 1 once s reaches limit characters.
func lengthRatio(s string, limit int) float64 {
	return math.Min(float64(utf8.RuneCountInString(s))/float64(limit), 1)
}
