package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"marketsim/internal/core/domain"
)

// SimulationRepository implements port.SimulationRepository on the
// simulation_data table.
type SimulationRepository struct {
	pool *pgxpool.Pool
}

func NewSimulationRepository(pool *pgxpool.Pool) *SimulationRepository {
	return &SimulationRepository{pool: pool}
}

// AppendDataPoint inserts p and fills its id.
func (r *SimulationRepository) AppendDataPoint(ctx context.Context, p *domain.SimulationDataPoint) error {
	return r.pool.QueryRow(ctx, `INSERT INTO simulation_data
    (campaign_id, impressions, clicks, conversions, cost, date)
VALUES ($1,$2,$3,$4,$5::numeric,$6) RETURNING id`,
		p.CampaignID, p.Impressions, p.Clicks, p.Conversions, p.Cost.StringFixed(2), p.Date).
		Scan(&p.ID)
}

// ListDataPoints returns the newest limit samples in ascending date order.
func (r *SimulationRepository) ListDataPoints(ctx context.Context, campaignID int64, limit int) ([]domain.SimulationDataPoint, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, campaign_id, impressions, clicks, conversions, cost, date
        FROM (
            SELECT id, campaign_id, impressions, clicks, conversions, cost::text AS cost, date
            FROM simulation_data
            WHERE campaign_id = $1
            ORDER BY date DESC, id DESC
            LIMIT $2
        ) newest
        ORDER BY date, id`, campaignID, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanDataPoint)
}

// LatestDataPoint returns the newest sample or nil when there is none.
func (r *SimulationRepository) LatestDataPoint(ctx context.Context, campaignID int64) (*domain.SimulationDataPoint, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, campaign_id, impressions, clicks, conversions, cost::text, date
        FROM simulation_data
        WHERE campaign_id = $1
        ORDER BY date DESC, id DESC
        LIMIT 1`, campaignID)
	if err != nil {
		return nil, err
	}
	p, err := pgx.CollectOneRow(rows, scanDataPoint)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanDataPoint(row pgx.CollectableRow) (domain.SimulationDataPoint, error) {
	var (
		p    domain.SimulationDataPoint
		cost string
	)
	if err := row.Scan(&p.ID, &p.CampaignID, &p.Impressions, &p.Clicks, &p.Conversions, &cost, &p.Date); err != nil {
		return p, err
	}
	d, err := decimal.NewFromString(cost)
	if err != nil {
		return p, fmt.Errorf("data point %d cost: %w", p.ID, err)
	}
	p.Cost = d
	p.Date = p.Date.UTC()
	return p, nil
}
