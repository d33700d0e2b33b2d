package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/goal-planner/backend/config"
)

func TestNewRedisClient(t *testing.T) {
	t.Run("disabled when url is empty", func(t *testing.T) {
		client, err := NewRedisClient(context.Background(), &config.RedisConfig{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if client != nil {
			t.Fatal("expected nil client")
		}
	})

	t.Run("connects to a live server", func(t *testing.T) {
		mr := miniredis.RunT(t)

		client, err := NewRedisClient(context.Background(), &config.RedisConfig{URL: "redis://" + mr.Addr() + "/0"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer client.Close()

		if err := client.Set(context.Background(), "k", "v", 0).Err(); err != nil {
			t.Fatalf("set failed: %v", err)
		}
		if got, _ := mr.Get("k"); got != "v" {
			t.Errorf("miniredis value = %q, want %q", got, "v")
		}
	})

	t.Run("invalid url", func(t *testing.T) {
		if _, err := NewRedisClient(context.Background(), &config.RedisConfig{URL: "://bad"}); err == nil {
			t.Fatal("expected error")
		}
	})
}
