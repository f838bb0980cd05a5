package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"drivethru/internal/domain"

	"github.com/redis/go-redis/v9"
)

// DefaultMenuTTL is how long a preloaded menu stays cached.
const DefaultMenuTTL = time.Hour

// MenuCache keeps per-restaurant menu snapshots in redis so resolution does
// not hit postgres on every utterance.
type MenuCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewMenuCache(client *redis.Client, ttl time.Duration) *MenuCache {
	if ttl <= 0 {
		ttl = DefaultMenuTTL
	}
	return &MenuCache{Client: client, TTL: ttl}
}

func menuCacheKey(restaurantID int) string {
	return fmt.Sprintf("menu_cache:%d", restaurantID)
}

func (c *MenuCache) Get(ctx context.Context, restaurantID int) (*domain.MenuSnapshot, error) {
	raw, err := c.Client.Get(ctx, menuCacheKey(restaurantID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("menu cache get: %w", err)
	}

	var snapshot domain.MenuSnapshot
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		return nil, fmt.Errorf("menu cache decode: %w", err)
	}
	return &snapshot, nil
}

func (c *MenuCache) Set(ctx context.Context, snapshot *domain.MenuSnapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("menu cache encode: %w", err)
	}
	if err := c.Client.Set(ctx, menuCacheKey(snapshot.RestaurantID), payload, c.TTL).Err(); err != nil {
		return fmt.Errorf("menu cache set: %w", err)
	}
	return nil
}

func (c *MenuCache) Invalidate(ctx context.Context, restaurantID int) error {
	if err := c.Client.Del(ctx, menuCacheKey(restaurantID)).Err(); err != nil {
		return fmt.Errorf("menu cache invalidate: %w", err)
	}
	return nil
}
