package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter counts queries per client in fixed windows shared by every
// server instance.
type RedisLimiter struct {
	client *redis.Client
	limit  int // Max queries per window
	window time.Duration
}

func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

func (r *RedisLimiter) Allow(ctx context.Context, clientID string) (bool, error) {
	if r.limit <= 0 {
		return true, nil
	}
	key := "queries:" + clientID

	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	// NX keeps the window anchored at the first query.
	pipe.ExpireNX(ctx, key, r.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("redis limiter: %w", err)
	}
	return incr.Val() <= int64(r.limit), nil
}

func (r *RedisLimiter) Window() time.Duration { return r.window }
