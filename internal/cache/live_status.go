package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/cityvent/events-api/internal/schedule"
)

// DefaultTTL keeps liveness snapshots fresh enough for a status badge
// polling every few seconds while still absorbing hot-event traffic.
const DefaultTTL = 30 * time.Second

type LiveStatusCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewLiveStatusCache(addr, password string) *LiveStatusCache {
	if addr == "" {
		return nil
	}

	return &LiveStatusCache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
		ttl: DefaultTTL,
	}
}

func (c *LiveStatusCache) key(id string) string {
	return "live_status:" + id
}

// GetLiveWindow returns the cached verdict for an event. Any redis or
// decode failure is a miss; liveness must always resolve.
func (c *LiveStatusCache) GetLiveWindow(
	ctx context.Context,
	id string,
) (*schedule.LiveWindow, bool) {

	if c == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		return nil, false
	}

	var win schedule.LiveWindow
	if err := json.Unmarshal(raw, &win); err != nil {
		return nil, false
	}
	return &win, true
}

func (c *LiveStatusCache) SetLiveWindow(
	ctx context.Context,
	id string,
	win schedule.LiveWindow,
) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(win)
	if err != nil {
		return
	}

	// Best effort: a failed write just means the next reader resolves
	// again.
	c.client.Set(ctx, c.key(id), raw, c.ttl)
}
