package common

import (
	"context"
	"fmt"
	"os"
	"time"

	"cardvault/internal/logging"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds a client from REDIS_* env vars. A failed ping is
// logged but the client is still returned; the pool reconnects on use.
func NewRedisClient() *redis.Client {
	redisHost := os.Getenv("REDIS_HOST")
	if redisHost == "" {
		redisHost = "localhost"
	}
	redisPort := os.Getenv("REDIS_PORT")
	if redisPort == "" {
		redisPort = "6379"
	}

	addr := fmt.Sprintf("%s:%s", redisHost, redisPort)
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     os.Getenv("REDIS_PASSWORD"),
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logging.Warn("Redis ping failed", "addr", addr, "error", err.Error())
	} else {
		logging.Info("Redis connected", "addr", addr)
	}
	return client
}
