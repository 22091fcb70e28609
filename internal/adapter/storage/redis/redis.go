package redis

import (
	"context"
	"fmt"

	"qrpay/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// NewClient opens the Redis connection backing device-local state: the
// pending queue, the quarantine and rejected buckets, the cached balance
// and the device signing keys. Everything that must survive a restart
// while offline lives behind this client.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:       cfg.Addr(),
		Password:   cfg.Password,
		DB:         cfg.DB,
		ClientName: "qrpay-device",
	})

	// The device store holds the offline queue; the node does not start
	// without it.
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("pinging device store: %w", err)
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Msg("Device store connected")

	return client, nil
}
