package port

import (
	"context"

	"marketsim/internal/core/domain"
)

// CampaignRepository defines the persistence layer for campaigns. It is an
// outbound port in hexagonal architecture. Lookups scoped to a user return
// nil when the campaign does not exist or belongs to someone else.
type CampaignRepository interface {
	// CreateCampaign stores c and fills its ID and timestamps.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// GetCampaign returns a campaign owned by userID.
	GetCampaign(ctx context.Context, userID, id int64) (*domain.Campaign, error)
	// ListCampaigns returns one page of a user's campaigns and the total count.
	ListCampaigns(ctx context.Context, req CampaignListReq) ([]domain.Campaign, int, error)
	// ListActiveCampaigns returns active campaigns of all users.
	ListActiveCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// UpdateCampaignStatus changes the status. domain.ErrNotFound is returned
	// when no campaign matched.
	UpdateCampaignStatus(ctx context.Context, userID, id int64, status domain.CampaignStatus) error
	// DeleteCampaign removes a campaign and its simulation history.
	// domain.ErrNotFound is returned when no campaign matched.
	DeleteCampaign(ctx context.Context, userID, id int64) error
}

// CampaignListReq selects a page of campaigns. Offset and Limit are derived
// from the page parameters by the usecase.
type CampaignListReq struct {
	UserID int64
	Status domain.CampaignStatus // empty means any
	Offset int
	Limit  int
}

// SimulationRepository stores the append-only simulation history.
type SimulationRepository interface {
	// AppendDataPoint inserts p and fills its ID.
	AppendDataPoint(ctx context.Context, p *domain.SimulationDataPoint) error
	// ListDataPoints returns the newest limit samples in ascending date order.
	ListDataPoints(ctx context.Context, campaignID int64, limit int) ([]domain.SimulationDataPoint, error)
	// LatestDataPoint returns the newest sample or nil when there is none.
	LatestDataPoint(ctx context.Context, campaignID int64) (*domain.SimulationDataPoint, error)
}

// SnapshotCache keeps the latest sample per campaign for dashboards that
// poll frequently.
type SnapshotCache interface {
	StoreLatest(ctx context.Context, p domain.SimulationDataPoint) error
	// Latest returns nil on a cache miss.
	Latest(ctx context.Context, campaignID int64) (*domain.SimulationDataPoint, error)
}

// DataPointPublisher streams samples to downstream consumers.
type DataPointPublisher interface {
	PublishDataPoint(ctx context.Context, p domain.SimulationDataPoint) error
}
