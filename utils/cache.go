// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"dayplanner/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the plan cache client.
var CacheClient *redis.Client

// InitCache connects the plan cache client using the cache DB from AppConfig.
func InitCache() error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return fmt.Errorf("failed to connect to Redis (Cache): %w", err)
	}
	CacheClient = client
	return nil
}

// GetCacheClient returns the plan cache client, or nil when Redis was never connected.
func GetCacheClient() *redis.Client {
	return CacheClient
}

// CloseCache closes the plan cache client if it is open.
func CloseCache() error {
	if CacheClient == nil {
		return nil
	}
	return CacheClient.Close()
}
