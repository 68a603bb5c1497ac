package holidayinfra

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/Abraxas-365/laboral/labor/holiday"
	"github.com/Abraxas-365/laboral/pkg/errx"
)

const cacheKeyPrefix = "laboral:holidays"

// RedisCache keeps one JSON list per year
type RedisCache struct {
	client *redis.Client
	prefix string
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{
		client: client,
		prefix: cacheKeyPrefix,
	}
}

func (c *RedisCache) key(year int) string {
	return fmt.Sprintf("%s:%d", c.prefix, year)
}

func (c *RedisCache) Get(ctx context.Context, year int) ([]holiday.Holiday, bool, error) {
	data, err := c.client.Get(ctx, c.key(year)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errx.Wrap(err, "failed to read holiday cache", errx.TypeInternal)
	}

	var holidays []holiday.Holiday
	if err := json.Unmarshal(data, &holidays); err != nil {
		return nil, false, errx.Wrap(err, "failed to decode cached holidays", errx.TypeInternal)
	}
	return holidays, true, nil
}

func (c *RedisCache) Set(ctx context.Context, year int, holidays []holiday.Holiday, ttl time.Duration) error {
	data, err := json.Marshal(holidays)
	if err != nil {
		return errx.Wrap(err, "failed to encode holidays", errx.TypeInternal)
	}

	if err := c.client.Set(ctx, c.key(year), data, ttl).Err(); err != nil {
		return errx.Wrap(err, "failed to write holiday cache", errx.TypeInternal)
	}
	return nil
}
