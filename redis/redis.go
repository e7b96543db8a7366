package redis

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

// Init connects to Redis when REDIS_ADDR is set. The cache is optional:
// without it every read goes straight to the database.
func Init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, caching disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	if _, err := client.Ping(Ctx).Result(); err != nil {
		log.Printf("Warning: Failed to connect to Redis, caching disabled: %v", err)
		return
	}

	Client = client
	log.Println("✅ Connected to Redis")
}

// Enabled reports whether the cache is available.
func Enabled() bool {
	return Client != nil
}

// Get returns the cached value for key, or "" on miss or error.
func Get(key string) string {
	if !Enabled() {
		return ""
	}
	val, err := Client.Get(Ctx, key).Result()
	if err != nil {
		return ""
	}
	return val
}

// Set stores a value with a TTL. Failures are logged and ignored.
func Set(key, value string, ttl time.Duration) {
	if !Enabled() {
		return
	}
	if err := Client.Set(Ctx, key, value, ttl).Err(); err != nil {
		log.Printf("Redis set error for %s: %v", key, err)
	}
}
