package redis_client

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores video metadata in Redis
type Cache struct {
	RDB *redis.Client
}

// NewCache connects to the Redis server at addr and checks it is reachable
func NewCache(ctx context.Context, addr string) (*Cache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, err
	}
	return &Cache{RDB: rdb}, nil
}

// Get returns the cached value for key. A missing key yields an empty string and redis.Nil.
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	return c.RDB.Get(ctx, key).Result()
}

func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.RDB.Set(ctx, key, value, ttl).Err()
}

func (c *Cache) Close() error {
	return c.RDB.Close()
}
