package schedule

import (
	"context"
	"encoding/json"
	"time"

	"dayplanner/models"

	"github.com/go-redis/redis/v8"
)

const planCachePrefix = "plan:"

// PlanCache keeps computed day plans. Get returns nil, nil on a miss.
type PlanCache interface {
	Get(ctx context.Context, key string) (*models.DayPlan, error)
	Set(ctx context.Context, key string, plan *models.DayPlan) error
}

type RedisPlanCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPlanCache(client *redis.Client, ttl time.Duration) *RedisPlanCache {
	return &RedisPlanCache{client: client, ttl: ttl}
}

func (c *RedisPlanCache) Get(ctx context.Context, key string) (*models.DayPlan, error) {
	data, err := c.client.Get(ctx, planCachePrefix+key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var plan models.DayPlan
	if err := json.Unmarshal([]byte(data), &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (c *RedisPlanCache) Set(ctx context.Context, key string, plan *models.DayPlan) error {
	b, err := json.Marshal(plan)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, planCachePrefix+key, b, c.ttl).Err()
}
