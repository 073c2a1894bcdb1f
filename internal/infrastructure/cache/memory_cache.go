package cache

import (
	"context"
	"sync"
	"time"

	"chromaprint/internal/domain/entities"
	"chromaprint/internal/usecase/interfaces"
)

// MemoryCatalogCache is a process-local catalog cache with a single TTL.
type MemoryCatalogCache struct {
	mu        sync.RWMutex
	printers  []entities.Printer
	expiresAt time.Time
	ttl       time.Duration
	now       func() time.Time
}

var _ interfaces.ICatalogCache = (*MemoryCatalogCache)(nil)

func NewMemoryCatalogCache(ttl time.Duration) *MemoryCatalogCache {
	return &MemoryCatalogCache{ttl: ttl, now: time.Now}
}

func (c *MemoryCatalogCache) GetPrinters(_ context.Context) ([]entities.Printer, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.printers == nil || !c.now().Before(c.expiresAt) {
		return nil, false, nil
	}
	out := make([]entities.Printer, len(c.printers))
	copy(out, c.printers)
	return out, true, nil
}

func (c *MemoryCatalogCache) SetPrinters(_ context.Context, printers []entities.Printer) error {
	if c.ttl <= 0 {
		return nil
	}
	cp := make([]entities.Printer, len(printers))
	copy(cp, printers)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.printers = cp
	c.expiresAt = c.now().Add(c.ttl)
	return nil
}

func (c *MemoryCatalogCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.printers = nil
	c.expiresAt = time.Time{}
	return nil
}
