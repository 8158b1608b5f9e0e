package db

import (
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketsim/internal/core/domain"
	"marketsim/internal/core/simulation"
)

// TestDemoCampaigns ensures the seed data respects the builder limits and
// can be simulated.
func TestDemoCampaigns(t *testing.T) {
	campaigns := DemoCampaigns(1)
	require.NotEmpty(t, campaigns)

	active := 0
	for _, c := range campaigns {
		t.Run(c.Name, func(t *testing.T) {
			assert.Equal(t, int64(1), c.UserID)
			assert.True(t, c.Status.Valid())
			assert.LessOrEqual(t, utf8.RuneCountInString(c.AdHeadline1), domain.MaxHeadlineLength)
			assert.LessOrEqual(t, utf8.RuneCountInString(c.AdHeadline2), domain.MaxHeadlineLength)
			assert.LessOrEqual(t, utf8.RuneCountInString(c.AdDescription), domain.MaxDescriptionLength)
			for _, kw := range c.Keywords {
				assert.True(t, kw.MatchType.Valid())
			}

			p, err := simulation.GenerateDataPoint(c, time.Now())
			require.NoError(t, err)
			assert.LessOrEqual(t, p.Clicks, p.Impressions)
		})
		if c.Status == domain.CampaignActive {
			active++
		}
	}
	assert.Equal(t, 1, active)
}
