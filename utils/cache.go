// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"ttravels/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// TripContextClient is the dedicated client for per-conversation trip context.
	TripContextClient *redis.Client
)

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitTripContextCache initializes the Redis client holding in-progress trip contexts.
func InitTripContextCache() {
	TripContextClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTripContextDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := TripContextClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (TripContext): %v", err)
	}
}

// GetTripContextClient returns the Redis client for trip context storage.
func GetTripContextClient() *redis.Client {
	if TripContextClient == nil {
		InitTripContextCache()
	}
	return TripContextClient
}
