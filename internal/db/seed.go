package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"marketsim/internal/core/domain"
)

// DemoCampaigns returns the campaigns Seed inserts for userID. They cover
// the range of the simulator: a fully optimised campaign, a half-built one
// and an empty draft.
func DemoCampaigns(userID int64) []domain.Campaign {
	keywords := func(n int) []domain.Keyword {
		base := []string{
			"running shoes", "trail running", "marathon training", "buy running shoes",
			"lightweight sneakers", "running gear", "best running shoes", "running shoes sale",
			"women's running shoes", "men's running shoes", "running socks", "running apparel",
		}
		out := make([]domain.Keyword, 0, n)
		for i := 0; i < n; i++ {
			mt := domain.MatchBroad
			switch i % 3 {
			case 1:
				mt = domain.MatchPhrase
			case 2:
				mt = domain.MatchExact
			}
			out = append(out, domain.Keyword{Text: base[i%len(base)], MatchType: mt})
		}
		return out
	}
	targeting := domain.Targeting{
		Locations: []string{"United States", "Canada"},
		Languages: []string{"en"},
		Devices:   []string{"mobile", "desktop"},
		Demographics: domain.Demographics{
			AgeRanges: []string{"25-34", "35-44"},
			Genders:   []string{"all"},
		},
	}

	return []domain.Campaign{
		{
			UserID:        userID,
			Name:          "Spring Running Sale",
			Type:          "search",
			Platform:      "google_ads",
			Goal:          "sales",
			DailyBudget:   "50.00",
			Keywords:      keywords(12),
			Targeting:     targeting,
			AdHeadline1:   "Spring Sale on Running Shoes",
			AdHeadline2:   "Free Shipping Over $50 Today",
			AdDescription: "Shop top brands of running shoes and gear. Fast delivery and free returns on all orders.",
			FinalURL:      "https://example.com/spring-sale",
			Status:        domain.CampaignActive,
		},
		{
			UserID:        userID,
			Name:          "Trail Shoes Leads",
			Type:          "search",
			Platform:      "google_ads",
			Goal:          "leads",
			DailyBudget:   "20.00",
			Keywords:      keywords(5),
			Targeting:     targeting,
			AdHeadline1:   "Trail Shoes for Every Run",
			AdHeadline2:   "Join Our Club",
			AdDescription: "Get trail tips and early access to new releases.",
			FinalURL:      "https://example.com/trail",
			Status:        domain.CampaignPaused,
		},
		{
			UserID:      userID,
			Name:        "Brand Awareness Draft",
			Type:        "display",
			Platform:    "google_ads",
			Goal:        "awareness",
			DailyBudget: "0.00",
			Keywords:    []domain.Keyword{},
			Status:      domain.CampaignDraft,
		},
	}
}

// Seed inserts the demo campaigns for userID in a single transaction.
// Campaigns whose name already exists for the user are skipped, so Seed can
// run repeatedly. It returns the number of campaigns inserted.
func Seed(ctx context.Context, db *pgxpool.Pool, userID int64) (inserted int, err error) {
	tx, err := db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	for _, c := range DemoCampaigns(userID) {
		kw, _ := json.Marshal(c.Keywords)
		tgt, _ := json.Marshal(c.Targeting)
		tag, execErr := tx.Exec(ctx, `INSERT INTO campaigns
    (user_id, name, type, platform, goal, daily_budget, keywords, targeting,
     ad_headline_1, ad_headline_2, ad_description, final_url, status, created_at, updated_at)
SELECT $1::bigint, $2::text, $3::text, $4::text, $5::text, $6::numeric, $7::jsonb, $8::jsonb,
       $9::text, $10::text, $11::text, $12::text, $13::text, now(), now()
WHERE NOT EXISTS (SELECT 1 FROM campaigns WHERE user_id = $1 AND name = $2)`,
			c.UserID, c.Name, c.Type, c.Platform, c.Goal, c.DailyBudget, kw, tgt,
			c.AdHeadline1, c.AdHeadline2, c.AdDescription, c.FinalURL, c.Status)
		if execErr != nil {
			return inserted, fmt.Errorf("seed campaign %q: %w", c.Name, execErr)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}
