package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"marketsim/internal/core/domain"
)

const keyPrefix = "marketsim:latest:"

// SnapshotCache implements port.SnapshotCache. Each campaign's newest sample
// is stored as JSON under its own key and expires after ttl.
type SnapshotCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewSnapshotCache(client redis.UniversalClient, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{client: client, ttl: ttl}
}

func (c *SnapshotCache) StoreLatest(ctx context.Context, p domain.SimulationDataPoint) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal data point: %w", err)
	}
	return c.client.Set(ctx, latestKey(p.CampaignID), data, c.ttl).Err()
}

// Latest returns nil on a miss.
func (c *SnapshotCache) Latest(ctx context.Context, campaignID int64) (*domain.SimulationDataPoint, error) {
	data, err := c.client.Get(ctx, latestKey(campaignID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get latest data point: %w", err)
	}
	var p domain.SimulationDataPoint
	if err = json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unmarshal data point: %w", err)
	}
	return &p, nil
}

func latestKey(campaignID int64) string {
	return keyPrefix + strconv.FormatInt(campaignID, 10)
}
