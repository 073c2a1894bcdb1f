package usecase

import (
	"context"
	"errors"
	"time"

	"chromaprint/internal/domain/catalog"
	"chromaprint/internal/domain/entities"
	"chromaprint/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// ErrStoreUnavailable is returned by operations that need the document store
// when the process runs without one.
var ErrStoreUnavailable = errors.New("document store not configured")

// IPrinterUseCase serves the printer catalog.
//
// List behaviour:
//   - a cache hit is returned as is
//   - without a document store the embedded sample catalog is returned
//   - an empty printers table is seeded with the sample catalog first

type IPrinterUseCase interface {
	List(ctx context.Context) ([]entities.Printer, error)
	Seed(ctx context.Context) (int, error)
}

type PrinterUseCase struct {
	repo  interfaces.IPrinterRepository
	cache interfaces.ICatalogCache
	log   *zap.Logger
}

var _ IPrinterUseCase = (*PrinterUseCase)(nil)

// NewPrinterUseCase builds the catalog use case. repo and cache are optional.
func NewPrinterUseCase(repo interfaces.IPrinterRepository, cache interfaces.ICatalogCache, log *zap.Logger) *PrinterUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &PrinterUseCase{repo: repo, cache: cache, log: log}
}

func (u *PrinterUseCase) List(ctx context.Context) ([]entities.Printer, error) {
	if u.cache != nil {
		printers, ok, err := u.cache.GetPrinters(ctx)
		if err != nil {
			u.log.Warn("catalog cache read failed", zap.Error(err))
		} else if ok {
			return printers, nil
		}
	}

	if u.repo == nil {
		return catalog.SamplePrinters()
	}

	if _, err := u.seedIfEmpty(ctx); err != nil {
		// An unseeded catalog is still served, possibly empty.
		u.log.Warn("printer catalog seed failed", zap.Error(err))
	}

	printers, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		if err := u.cache.SetPrinters(ctx, printers); err != nil {
			u.log.Warn("catalog cache write failed", zap.Error(err))
		}
	}
	return printers, nil
}

func (u *PrinterUseCase) Seed(ctx context.Context) (int, error) {
	if u.repo == nil {
		return 0, ErrStoreUnavailable
	}
	n, err := u.seedIfEmpty(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 && u.cache != nil {
		if err := u.cache.Invalidate(ctx); err != nil {
			u.log.Warn("catalog cache invalidation failed", zap.Error(err))
		}
	}
	return n, nil
}

func (u *PrinterUseCase) seedIfEmpty(ctx context.Context) (int, error) {
	count, err := u.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	samples, err := catalog.SamplePrinters()
	if err != nil {
		return 0, err
	}
	now := time.Now().UTC()
	for i := range samples {
		samples[i].CreatedAt = now
	}

	n, err := u.repo.CreateMany(ctx, samples)
	if err != nil {
		return n, err
	}
	u.log.Info("printer catalog seeded", zap.Int("count", n))
	return n, nil
}
