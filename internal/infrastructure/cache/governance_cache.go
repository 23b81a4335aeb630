// Package cache implements the governance config cache on Redis. The decision
// engine reads the config on every evaluation, so a short-lived cache keeps
// that off the database hot path.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/marginiq/marginiq-api/internal/application/ports"
	"github.com/marginiq/marginiq-api/internal/domain/governance"
)

var _ ports.GovernanceCache = (*RedisGovernanceCache)(nil)

// RedisGovernanceCache stores governance configs as JSON under
// governance:{companyID} with a TTL.
type RedisGovernanceCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisGovernanceCache builds the cache on an already-connected client.
func NewRedisGovernanceCache(client *redis.Client, ttl time.Duration) *RedisGovernanceCache {
	return &RedisGovernanceCache{client: client, ttl: ttl}
}

func key(companyID string) string { return "governance:" + companyID }

// Get returns the cached config or (nil, nil) on a miss.
func (c *RedisGovernanceCache) Get(ctx context.Context, companyID string) (*governance.Config, error) {
	raw, err := c.client.Get(ctx, key(companyID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}
	var cfg governance.Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &cfg, nil
}

// Set caches the config for the configured TTL.
func (c *RedisGovernanceCache) Set(ctx context.Context, cfg *governance.Config) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Set(ctx, key(cfg.CompanyID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Invalidate drops the company's cached config.
func (c *RedisGovernanceCache) Invalidate(ctx context.Context, companyID string) error {
	if err := c.client.Del(ctx, key(companyID)).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}
