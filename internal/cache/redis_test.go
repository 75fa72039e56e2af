package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestDisabledCache(t *testing.T) {
	c := New("")
	if c.Enabled() {
		t.Fatal("cache without URL should be disabled")
	}

	ctx := context.Background()
	if err := c.Set(ctx, "k", []string{"v"}, time.Minute); err != nil {
		t.Errorf("Set on disabled cache: %v", err)
	}
	var out []string
	if err := c.Get(ctx, "k", &out); err != redis.Nil {
		t.Errorf("Get on disabled cache = %v, want redis.Nil", err)
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete on disabled cache: %v", err)
	}
}

func TestInvalidURLDisablesCache(t *testing.T) {
	if New("://not-a-url").Enabled() {
		t.Error("cache with invalid URL should be disabled")
	}
}

func TestRedisRoundTrip(t *testing.T) {
	url := os.Getenv("REDIS_TEST_URL")
	if url == "" {
		t.Skip("skipping redis integration test: REDIS_TEST_URL not set")
	}
	c := New(url)
	defer c.Close()
	if !c.Enabled() {
		t.Fatal("expected cache to connect")
	}

	ctx := context.Background()
	if err := c.Set(ctx, "cafe:test", map[string]int{"n": 1}, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	var out map[string]int
	if err := c.Get(ctx, "cafe:test", &out); err != nil || out["n"] != 1 {
		t.Fatalf("Get = %v, %v", out, err)
	}
	if err := c.Delete(ctx, "cafe:test"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := c.Get(ctx, "cafe:test", &out); err != redis.Nil {
		t.Errorf("Get after Delete = %v, want redis.Nil", err)
	}
}
