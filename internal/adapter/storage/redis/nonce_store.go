package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// NonceStore implements ports.RelayNonceStore using Redis SET NX.
// A reservation on (wallet, chain, nonce) guarantees at-most-once
// submission of that nonce across every engine instance.
type NonceStore struct {
	client *goredis.Client
	prefix string
}

// NewNonceStore creates a new Redis-backed relay nonce store.
func NewNonceStore(client *goredis.Client) *NonceStore {
	return &NonceStore{
		client: client,
		prefix: "relaynonce:",
	}
}

func (s *NonceStore) key(walletAddress string, chainID int64, nonce uint64) string {
	return fmt.Sprintf("%s%s:%d:%d", s.prefix, walletAddress, chainID, nonce)
}

// Reserve atomically claims a nonce for submission. Returns true if the
// nonce was free and is now held, false if another submission holds it.
func (s *NonceStore) Reserve(ctx context.Context, walletAddress string, chainID int64, nonce uint64, ttl time.Duration) (bool, error) {
	result, err := s.client.SetArgs(ctx, s.key(walletAddress, chainID, nonce), 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			// Key already exists — nonce is held by another submission
			return false, nil
		}
		return false, fmt.Errorf("redis nonce reserve: %w", err)
	}
	return result == "OK", nil
}

// Release frees a reservation after a clean failure that did not consume
// the nonce on-chain, so the retry can reuse it.
func (s *NonceStore) Release(ctx context.Context, walletAddress string, chainID int64, nonce uint64) error {
	if err := s.client.Del(ctx, s.key(walletAddress, chainID, nonce)).Err(); err != nil {
		return fmt.Errorf("redis nonce release: %w", err)
	}
	return nil
}
