package database

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient initializes and returns a Redis client, or nil when no
// address is configured. The catalog cache degrades to direct reads without it.
func NewRedisClient(addr string) (*redis.Client, error) {
	if addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{Addr: addr})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return client, nil
}
