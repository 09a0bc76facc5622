package infra

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"

	"github.com/congo-pay/simplewallet/internal/config"
	"github.com/congo-pay/simplewallet/internal/logging"
)

func TestNewRedisClient(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	defer mr.Close()

	client, err := NewRedisClient(context.Background(), "redis://"+mr.Addr()+"/0")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer client.Close()

	if _, err := NewRedisClient(context.Background(), ""); err == nil {
		t.Fatalf("expected error for empty url")
	}
	if _, err := NewRedisClient(context.Background(), "://bad"); err == nil {
		t.Fatalf("expected error for malformed url")
	}
}

func TestOpenBackendsRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	defer mr.Close()

	cfg := config.Simulator{StateBackend: config.BackendRedis, RedisURL: "redis://" + mr.Addr()}
	b, err := OpenBackends(context.Background(), cfg, logging.Discard())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer b.Close()

	if b.Cache == nil {
		t.Fatalf("expected idempotency cache")
	}
	ctx := context.Background()
	if err := b.Store.Set(ctx, "7e2664aa", "10"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if v, found, err := b.Store.Get(ctx, "7e2664aa"); err != nil || !found || v != "10" {
		t.Fatalf("unexpected get %q %v %v", v, found, err)
	}
}

func TestOpenBackendsMemory(t *testing.T) {
	b, err := OpenBackends(context.Background(), config.Simulator{StateBackend: config.BackendMemory}, logging.Discard())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer b.Close()
	if b.Cache != nil {
		t.Fatalf("expected no cache without REDIS_URL")
	}
	if err := b.Store.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

func TestOpenBackendsUnknown(t *testing.T) {
	if _, err := OpenBackends(context.Background(), config.Simulator{StateBackend: "etcd"}, logging.Discard()); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}
