package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var (
	redisServer *miniredis.Miniredis
	redisClient *redis.Client
	redisOnce   sync.Once
)

// NewRedis returns a client backed by an in-process miniredis server.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		srv, err := miniredis.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to start miniredis: %v", err))
		}
		redisServer = srv
		redisClient = redis.NewClient(&redis.Options{Addr: srv.Addr()})
	})
	return redisClient
}

// ClearRedis flushes all keys between scenarios.
func ClearRedis() error {
	if redisClient == nil {
		return nil
	}
	return redisClient.FlushAll(context.Background()).Err()
}
