package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/pribylovaa/jobsync-search/internal/models"

	"github.com/redis/go-redis/v9"
)

type redisCache struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisCache создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "search:v1:".
func NewRedisCache(ctx context.Context, redisURL, prefix string) (SearchCache, error) {
	const op = "cache.NewRedisCache"

	if prefix == "" {
		prefix = "search:v1:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &redisCache{rdb: rdb, prefix: prefix}, nil
}

func (c *redisCache) key(k string) string { return c.prefix + k }

func (c *redisCache) Get(ctx context.Context, key string) (*models.SearchResult, bool, error) {
	const op = "cache.redis.Get"

	raw, err := c.rdb.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	var res models.SearchResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, false, fmt.Errorf("%s: decode: %w", op, err)
	}

	// JSON теряет различие nil/пустой; восстанавливаем инварианты результата.
	if res.Jobs == nil {
		res.Jobs = []models.JobPosting{}
	}
	if res.CategoryCounts == nil {
		res.CategoryCounts = map[string]int64{}
	}
	if res.RegionCounts == nil {
		res.RegionCounts = map[string]int64{}
	}

	return &res, true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, res *models.SearchResult, ttl time.Duration) error {
	const op = "cache.redis.Set"

	raw, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("%s: encode: %w", op, err)
	}

	if err := c.rdb.Set(ctx, c.key(key), raw, ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (c *redisCache) Close() error { return c.rdb.Close() }
