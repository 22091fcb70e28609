package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// DeviceStore implements ports.DeviceStore using Redis. It is the
// durable local store of the device: the offline queue, the quarantine
// bucket and the device signing keys all live under its prefix.
// Values persist without TTL; queued money must survive restarts.
type DeviceStore struct {
	client *goredis.Client
	prefix string
}

// NewDeviceStore creates a new Redis-backed device store.
func NewDeviceStore(client *goredis.Client) *DeviceStore {
	return &DeviceStore{
		client: client,
		prefix: "device:",
	}
}

// Get retrieves a value by key. Returns nil, nil if the key does not
// exist.
func (s *DeviceStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis device get: %w", err)
	}
	return val, nil
}

// Set stores a value under key.
func (s *DeviceStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis device set: %w", err)
	}
	return nil
}

// Remove deletes a key. Removing an absent key is not an error.
func (s *DeviceStore) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis device remove: %w", err)
	}
	return nil
}
