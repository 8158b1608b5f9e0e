package redis

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketsim/internal/core/domain"
)

// memoryHook answers SET and GET from a map without touching the network.
type memoryHook struct {
	mu      sync.Mutex
	data    map[string][]byte
	expires map[string]bool
}

func newMemoryClient(t *testing.T) (*redis.Client, *memoryHook) {
	t.Helper()
	hook := &memoryHook{data: map[string][]byte{}, expires: map[string]bool{}}
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	client.AddHook(hook)
	t.Cleanup(func() { _ = client.Close() })
	return client, hook
}

func (h *memoryHook) DialHook(next redis.DialHook) redis.DialHook { return next }

func (h *memoryHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func (h *memoryHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		h.mu.Lock()
		defer h.mu.Unlock()

		args := cmd.Args()
		switch c := cmd.(type) {
		case *redis.StatusCmd:
			key := args[1].(string)
			switch v := args[2].(type) {
			case []byte:
				h.data[key] = v
			case string:
				h.data[key] = []byte(v)
			}
			h.expires[key] = len(args) > 3
			c.SetVal("OK")
		case *redis.StringCmd:
			v, ok := h.data[args[1].(string)]
			if !ok {
				c.SetErr(redis.Nil)
				return redis.Nil
			}
			c.SetVal(string(v))
		default:
			return next(ctx, cmd)
		}
		return nil
	}
}

func TestLatestKey(t *testing.T) {
	assert.Equal(t, "marketsim:latest:42", latestKey(42))
}

func TestSnapshotCache_StoreAndLatest(t *testing.T) {
	client, hook := newMemoryClient(t)
	cache := NewSnapshotCache(client, time.Minute)
	at := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

	p, err := cache.Latest(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, p)

	require.NoError(t, cache.StoreLatest(context.Background(), domain.SimulationDataPoint{
		ID: 3, CampaignID: 7, Impressions: 3400, Clicks: 136, Conversions: 8,
		Cost: decimal.NewFromInt(68), Date: at,
	}))
	assert.Contains(t, string(hook.data["marketsim:latest:7"]), `"cost":68.00`)
	assert.True(t, hook.expires["marketsim:latest:7"])

	p, err = cache.Latest(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, int64(3), p.ID)
	assert.Equal(t, int64(136), p.Clicks)
	assert.Equal(t, "68.00", p.Cost.StringFixed(2))
	assert.True(t, p.Date.Equal(at))
}

// TestLatest_ConnectionError ensures an unreachable server surfaces as an
// error instead of a miss.
func TestLatest_ConnectionError(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	cache := NewSnapshotCache(client, time.Minute)
	p, err := cache.Latest(context.Background(), 1)
	require.Error(t, err)
	assert.Nil(t, p)
}
