package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisConnOnce sync.Once
var redisConn *redis.Client

// NewRedis returns a client connected to a process-wide miniredis server.
func NewRedis() *redis.Client {
	redisConnOnce.Do(func() {
		miniRedis, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisConn = redis.NewClient(&redis.Options{Addr: miniRedis.Addr()})
	})
	return redisConn
}

// ClearRedis drops every key, including rate limit counters.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.TODO()).Err()
}
