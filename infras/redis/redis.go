package redis

import (
	"context"
	"fmt"
	"net"
	"usertodo/config"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// New dials Redis when CACHE_REDIS_PRIMARY_HOST is set. It returns a nil client otherwise,
// which disables the features that depend on it.
func New(config *config.Config) (*goRedis.Client, func(), error) {
	if !config.RedisEnabled() {
		log.Info().Msg("Redis not configured, skipping")

		return nil, func() {}, nil
	}

	primary := config.Cache.Redis.Primary

	client := goRedis.NewClient(&goRedis.Options{
		Addr:     net.JoinHostPort(primary.Host, primary.Port),
		Password: primary.Password,
		DB:       primary.DB,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		_ = client.Close()

		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Info().
		Int("db", primary.DB).
		Str("host", primary.Host).
		Str("port", primary.Port).
		Msg("Connected to Redis")

	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("Failed closing Redis client")
		}
	}

	return client, cleanup, nil
}
