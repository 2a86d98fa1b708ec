package resumeinfra

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/cvlens/cvlens/parsing/resume"
)

const redisKeyPrefix = "cvlens:record:"

// RedisCache is the bounded-growth alternative to FileCache: entries
// expire after the configured TTL, so the store cannot grow without limit
// when many distinct resumes pass through. A TTL of 0 keeps entries
// indefinitely, matching FileCache semantics.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache wraps an existing client as a resume.Cache.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// Get implements resume.Cache.
func (c *RedisCache) Get(ctx context.Context, key string) (*resume.Record, bool, error) {
	data, err := c.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, resume.ErrCacheFailed(err).WithDetail("key", key)
	}

	var record resume.Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, false, nil
	}
	return &record, true, nil
}

// Put implements resume.Cache.
func (c *RedisCache) Put(ctx context.Context, key string, record *resume.Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return resume.ErrCacheFailed(err).WithDetail("key", key)
	}
	if err := c.client.Set(ctx, redisKeyPrefix+key, data, c.ttl).Err(); err != nil {
		return resume.ErrCacheFailed(err).WithDetail("key", key)
	}
	return nil
}
