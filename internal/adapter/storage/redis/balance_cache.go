package redis

import (
	"context"
	"fmt"
	"strconv"

	goredis "github.com/redis/go-redis/v9"
)

// BalanceCache implements ports.BalanceCache using Redis. It holds the
// last known available balance for offline affordability checks; the
// ledger stays authoritative, this is only the device's working copy.
type BalanceCache struct {
	client *goredis.Client
	key    string
}

// NewBalanceCache creates a balance cache scoped to one user.
func NewBalanceCache(client *goredis.Client, userID string) *BalanceCache {
	return &BalanceCache{
		client: client,
		key:    "balance:" + userID,
	}
}

// Balance returns the cached balance in cents, or nil when none is
// cached yet.
func (c *BalanceCache) Balance(ctx context.Context) (*int64, error) {
	val, err := c.client.Get(ctx, c.key).Result()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis balance get: %w", err)
	}
	cents, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("redis balance parse: %w", err)
	}
	return &cents, nil
}

// SetBalance stores the balance in cents.
func (c *BalanceCache) SetBalance(ctx context.Context, cents int64) error {
	if err := c.client.Set(ctx, c.key, strconv.FormatInt(cents, 10), 0).Err(); err != nil {
		return fmt.Errorf("redis balance set: %w", err)
	}
	return nil
}
