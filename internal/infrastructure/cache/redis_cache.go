// Package cache keeps the printer catalog close to the HTTP handlers, in
// Redis when configured and in process memory otherwise.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"chromaprint/internal/domain/entities"
	"chromaprint/internal/infrastructure/config"
	"chromaprint/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const printersKey = "chromaprint:catalog:printers"

type RedisCatalogCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

var _ interfaces.ICatalogCache = (*RedisCatalogCache)(nil)

func NewRedisCatalogCache(client redis.Cmdable, ttl time.Duration) *RedisCatalogCache {
	return &RedisCatalogCache{client: client, ttl: ttl}
}

func (c *RedisCatalogCache) GetPrinters(ctx context.Context) ([]entities.Printer, bool, error) {
	data, err := c.client.Get(ctx, printersKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get printers: %w", err)
	}

	var printers []entities.Printer
	if err := json.Unmarshal(data, &printers); err != nil {
		return nil, false, fmt.Errorf("decode printers: %w", err)
	}
	return printers, true, nil
}

func (c *RedisCatalogCache) SetPrinters(ctx context.Context, printers []entities.Printer) error {
	data, err := json.Marshal(printers)
	if err != nil {
		return fmt.Errorf("encode printers: %w", err)
	}
	return c.client.Set(ctx, printersKey, data, c.ttl).Err()
}

func (c *RedisCatalogCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, printersKey).Err()
}

// New selects the catalog cache for cfg. When Redis is configured but does
// not answer a ping the in-memory cache is used instead. The returned close
// function releases the Redis connection pool, if any.
func New(ctx context.Context, cfg config.CacheConfig, log *zap.Logger) (interfaces.ICatalogCache, func() error) {
	noop := func() error { return nil }
	if cfg.RedisAddr == "" {
		log.Info("Catalog cache: in-memory", zap.Duration("ttl", cfg.CatalogTTL))
		return NewMemoryCatalogCache(cfg.CatalogTTL), noop
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warn("Redis unavailable, falling back to in-memory catalog cache",
			zap.String("addr", cfg.RedisAddr), zap.Error(err))
		_ = client.Close()
		return NewMemoryCatalogCache(cfg.CatalogTTL), noop
	}

	log.Info("Catalog cache: redis", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", cfg.CatalogTTL))
	return NewRedisCatalogCache(client, cfg.CatalogTTL), client.Close
}
