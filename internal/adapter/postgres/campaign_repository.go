package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"marketsim/internal/core/domain"
	"marketsim/internal/core/port"
)

const campaignColumns = `
    id,
    user_id,
    name,
    type,
    platform,
    goal,
    daily_budget::text,
    keywords,
    targeting,
    ad_headline_1,
    ad_headline_2,
    ad_description,
    final_url,
    status,
    created_at,
    updated_at`

// CampaignRepository implements port.CampaignRepository using pgxpool for PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// CreateCampaign inserts c and fills its id and timestamps.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	keywords, err := json.Marshal(c.Keywords)
	if err != nil {
		return fmt.Errorf("encode keywords: %w", err)
	}
	targeting, err := json.Marshal(c.Targeting)
	if err != nil {
		return fmt.Errorf("encode targeting: %w", err)
	}
	return r.pool.QueryRow(ctx, `INSERT INTO campaigns
    (user_id, name, type, platform, goal, daily_budget, keywords, targeting,
     ad_headline_1, ad_headline_2, ad_description, final_url, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6::numeric,$7,$8,$9,$10,$11,$12,$13,now(),now())
RETURNING id, created_at, updated_at`,
		c.UserID, c.Name, c.Type, c.Platform, c.Goal, c.DailyBudget, keywords, targeting,
		c.AdHeadline1, c.AdHeadline2, c.AdDescription, c.FinalURL, c.Status).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// GetCampaign returns a campaign by id when it belongs to userID.
func (r *CampaignRepository) GetCampaign(ctx context.Context, userID, id int64) (*domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT`+campaignColumns+` FROM campaigns WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCampaigns returns one page of the user's campaigns, newest first, and
// the number of campaigns matching the filter.
func (r *CampaignRepository) ListCampaigns(ctx context.Context, req port.CampaignListReq) ([]domain.Campaign, int, error) {
	args := []any{req.UserID}
	where := "WHERE user_id = $1"
	if req.Status != "" {
		args = append(args, req.Status)
		where += " AND status = $2"
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM campaigns `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM campaigns %s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		campaignColumns, where, len(args)+1, len(args)+2)
	rows, err := r.pool.Query(ctx, query, append(args, req.Limit, req.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	items, err := pgx.CollectRows(rows, scanCampaign)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListActiveCampaigns returns every active campaign.
func (r *CampaignRepository) ListActiveCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT`+campaignColumns+` FROM campaigns WHERE status = 'active' ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

func (r *CampaignRepository) UpdateCampaignStatus(ctx context.Context, userID, id int64, status domain.CampaignStatus) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET status = $1, updated_at = now() WHERE id = $2 AND user_id = $3`, status, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteCampaign removes the campaign. Its simulation history goes with it
// through ON DELETE CASCADE.
func (r *CampaignRepository) DeleteCampaign(ctx context.Context, userID, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var c domain.Campaign
	var keywordsRaw, targetRaw []byte
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.Name,
		&c.Type,
		&c.Platform,
		&c.Goal,
		&c.DailyBudget,
		&keywordsRaw,
		&targetRaw,
		&c.AdHeadline1,
		&c.AdHeadline2,
		&c.AdDescription,
		&c.FinalURL,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return c, err
	}
	if err = json.Unmarshal(keywordsRaw, &c.Keywords); err != nil {
		return c, fmt.Errorf("campaign %d keywords: %w", c.ID, err)
	}
	if err = json.Unmarshal(targetRaw, &c.Targeting); err != nil {
		return c, fmt.Errorf("campaign %d targeting: %w", c.ID, err)
	}
	return c, nil
}
