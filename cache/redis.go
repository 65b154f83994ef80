package cache

import (
	"context"
	"time"

	"github.com/ZacxDev/storefront/config"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const connectionTimeout = 2 * time.Second

type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

// Open returns a Redis cache when an address is configured and Nop
// otherwise.
func Open(ctx context.Context, cfg config.CacheConfig) (Cache, func() error, error) {
	if cfg.RedisAddress == "" {
		return Nop(), func() error { return nil }, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, connectionTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, nil, errors.Wrap(err, "connect to redis")
	}

	return NewRedis(client, cfg.TTL), client.Close, nil
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	html, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, "cache get")
	}
	return html, true, nil
}

func (r *Redis) Set(ctx context.Context, key, html string) error {
	return errors.Wrap(r.client.Set(ctx, key, html, r.ttl).Err(), "cache set")
}
