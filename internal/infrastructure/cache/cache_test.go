package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"chromaprint/internal/domain/entities"
	"chromaprint/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMemoryCatalogCache_TTL(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewMemoryCatalogCache(time.Minute)
	c.now = func() time.Time { return now }

	_, ok, err := c.GetPrinters(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "empty cache is a miss")

	require.NoError(t, c.SetPrinters(ctx, []entities.Printer{{ID: "a"}}))

	got, ok, err := c.GetPrinters(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a", got[0].ID)

	now = now.Add(time.Minute)
	_, ok, _ = c.GetPrinters(ctx)
	assert.False(t, ok, "entry expires after ttl")
}

func TestMemoryCatalogCache_EmptyCatalogIsAHit(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCatalogCache(time.Minute)

	require.NoError(t, c.SetPrinters(ctx, []entities.Printer{}))
	got, ok, err := c.GetPrinters(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestMemoryCatalogCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCatalogCache(time.Minute)

	require.NoError(t, c.SetPrinters(ctx, []entities.Printer{{ID: "a"}}))
	require.NoError(t, c.Invalidate(ctx))

	_, ok, _ := c.GetPrinters(ctx)
	assert.False(t, ok)
}

func TestMemoryCatalogCache_ZeroTTLDisablesCaching(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCatalogCache(0)

	require.NoError(t, c.SetPrinters(ctx, []entities.Printer{{ID: "a"}}))
	_, ok, _ := c.GetPrinters(ctx)
	assert.False(t, ok)
}

func TestMemoryCatalogCache_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCatalogCache(time.Minute)
	src := []entities.Printer{{ID: "a"}}
	require.NoError(t, c.SetPrinters(ctx, src))
	src[0].ID = "mutated"

	got, _, _ := c.GetPrinters(ctx)
	got[0].ID = "also mutated"

	again, _, _ := c.GetPrinters(ctx)
	assert.Equal(t, "a", again[0].ID)
}

func TestMemoryCatalogCache_Concurrent(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCatalogCache(time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.SetPrinters(ctx, []entities.Printer{{ID: "a"}})
			_, _, _ = c.GetPrinters(ctx)
			_ = c.Invalidate(ctx)
		}()
	}
	wg.Wait()
}

func TestNew_WithoutRedisUsesMemory(t *testing.T) {
	c, closeFn := New(context.Background(), config.CacheConfig{CatalogTTL: time.Minute}, zap.NewNop())
	defer func() { _ = closeFn() }()

	_, ok := c.(*MemoryCatalogCache)
	assert.True(t, ok)
}

func TestNew_UnreachableRedisFallsBack(t *testing.T) {
	// Port 1 is reserved and refuses connections.
	c, closeFn := New(context.Background(), config.CacheConfig{RedisAddr: "127.0.0.1:1", CatalogTTL: time.Minute}, zap.NewNop())
	defer func() { _ = closeFn() }()

	_, ok := c.(*MemoryCatalogCache)
	assert.True(t, ok)
}
