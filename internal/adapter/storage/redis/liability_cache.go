package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"treasury-engine/internal/core/ports"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// LiabilityCache implements ports.LiabilityCache using Redis. Entries are
// short-lived memoization only; liability is always recomputable from the
// ledger, so a cold or lost cache is never a correctness problem.
type LiabilityCache struct {
	client *goredis.Client
	prefix string
}

// NewLiabilityCache creates a new Redis-backed liability cache.
func NewLiabilityCache(client *goredis.Client) *LiabilityCache {
	return &LiabilityCache{
		client: client,
		prefix: "liability:",
	}
}

// Get retrieves a cached liability. Returns nil, nil on a miss.
func (c *LiabilityCache) Get(ctx context.Context, userID uuid.UUID) (*ports.Liability, error) {
	val, err := c.client.Get(ctx, c.prefix+userID.String()).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis liability get: %w", err)
	}

	var liability ports.Liability
	if err := json.Unmarshal(val, &liability); err != nil {
		return nil, fmt.Errorf("decode cached liability: %w", err)
	}
	return &liability, nil
}

// Set stores a computed liability with TTL.
func (c *LiabilityCache) Set(ctx context.Context, userID uuid.UUID, liability ports.Liability, ttl time.Duration) error {
	val, err := json.Marshal(liability)
	if err != nil {
		return fmt.Errorf("encode liability: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+userID.String(), val, ttl).Err(); err != nil {
		return fmt.Errorf("redis liability set: %w", err)
	}
	return nil
}
