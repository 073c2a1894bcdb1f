package usecase

import (
	"context"
	"errors"
	"testing"

	"chromaprint/internal/domain/entities"
	mock_interfaces "chromaprint/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPrinterUseCase_List(t *testing.T) {
	t.Run("without store returns sample catalog", func(t *testing.T) {
		uc := NewPrinterUseCase(nil, nil, nil)
		printers, err := uc.List(context.Background())
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if len(printers) != 3 || printers[0].Title != "ChromaPrint Pro X1" {
			t.Fatalf("unexpected sample catalog: %+v", printers)
		}
	})

	t.Run("cache hit skips store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPrinterRepository(ctrl)
		cache := mock_interfaces.NewMockICatalogCache(ctrl)
		uc := NewPrinterUseCase(repo, cache, nil)

		cache.EXPECT().GetPrinters(gomock.Any()).Return([]entities.Printer{{ID: "cached"}}, true, nil)

		printers, err := uc.List(context.Background())
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if len(printers) != 1 || printers[0].ID != "cached" {
			t.Fatalf("unexpected printers: %+v", printers)
		}
	})

	t.Run("empty table is seeded then listed and cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPrinterRepository(ctrl)
		cache := mock_interfaces.NewMockICatalogCache(ctrl)
		uc := NewPrinterUseCase(repo, cache, nil)

		stored := []entities.Printer{{ID: "chromaprint-pro-x1"}, {ID: "chromaprint-studio-s2"}, {ID: "chromaprint-resin-r1"}}
		gomock.InOrder(
			cache.EXPECT().GetPrinters(gomock.Any()).Return(nil, false, nil),
			repo.EXPECT().Count(gomock.Any()).Return(0, nil),
			repo.EXPECT().CreateMany(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, printers []entities.Printer) (int, error) {
					if len(printers) != 3 {
						t.Fatalf("expected 3 sample printers, got %d", len(printers))
					}
					for _, p := range printers {
						if p.CreatedAt.IsZero() {
							t.Fatalf("expected created_at on %s", p.ID)
						}
					}
					return len(printers), nil
				},
			),
			repo.EXPECT().List(gomock.Any()).Return(stored, nil),
			cache.EXPECT().SetPrinters(gomock.Any(), stored).Return(nil),
		)

		printers, err := uc.List(context.Background())
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if len(printers) != 3 {
			t.Fatalf("expected 3 printers, got %d", len(printers))
		}
	})

	t.Run("non-empty table is not seeded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPrinterRepository(ctrl)
		uc := NewPrinterUseCase(repo, nil, nil)

		repo.EXPECT().Count(gomock.Any()).Return(5, nil)
		repo.EXPECT().List(gomock.Any()).Return([]entities.Printer{{ID: "a"}}, nil)

		if _, err := uc.List(context.Background()); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("seed failure is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPrinterRepository(ctrl)
		uc := NewPrinterUseCase(repo, nil, nil)

		repo.EXPECT().Count(gomock.Any()).Return(0, nil)
		repo.EXPECT().CreateMany(gomock.Any(), gomock.Any()).Return(0, errors.New("throttled"))
		repo.EXPECT().List(gomock.Any()).Return([]entities.Printer{}, nil)

		printers, err := uc.List(context.Background())
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if len(printers) != 0 {
			t.Fatalf("expected empty catalog, got %+v", printers)
		}
	})

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPrinterRepository(ctrl)
		uc := NewPrinterUseCase(repo, nil, nil)

		repo.EXPECT().Count(gomock.Any()).Return(1, nil)
		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.List(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("cache errors fall through to store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPrinterRepository(ctrl)
		cache := mock_interfaces.NewMockICatalogCache(ctrl)
		uc := NewPrinterUseCase(repo, cache, nil)

		cache.EXPECT().GetPrinters(gomock.Any()).Return(nil, false, errors.New("redis down"))
		repo.EXPECT().Count(gomock.Any()).Return(1, nil)
		repo.EXPECT().List(gomock.Any()).Return([]entities.Printer{{ID: "a"}}, nil)
		cache.EXPECT().SetPrinters(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		printers, err := uc.List(context.Background())
		if err != nil || len(printers) != 1 {
			t.Fatalf("expected one printer, got %+v err=%v", printers, err)
		}
	})
}

func TestPrinterUseCase_Seed(t *testing.T) {
	t.Run("without store", func(t *testing.T) {
		_, err := NewPrinterUseCase(nil, nil, nil).Seed(context.Background())
		if !errors.Is(err, ErrStoreUnavailable) {
			t.Fatalf("expected ErrStoreUnavailable, got %v", err)
		}
	})

	t.Run("seeds and invalidates cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPrinterRepository(ctrl)
		cache := mock_interfaces.NewMockICatalogCache(ctrl)
		uc := NewPrinterUseCase(repo, cache, nil)

		repo.EXPECT().Count(gomock.Any()).Return(0, nil)
		repo.EXPECT().CreateMany(gomock.Any(), gomock.Any()).Return(3, nil)
		cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		n, err := uc.Seed(context.Background())
		if err != nil || n != 3 {
			t.Fatalf("expected 3 inserted, got %d err=%v", n, err)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPrinterRepository(ctrl)
		uc := NewPrinterUseCase(repo, nil, nil)

		repo.EXPECT().Count(gomock.Any()).Return(3, nil)

		n, err := uc.Seed(context.Background())
		if err != nil || n != 0 {
			t.Fatalf("expected 0 inserted, got %d err=%v", n, err)
		}
	})

	t.Run("count error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPrinterRepository(ctrl)
		uc := NewPrinterUseCase(repo, nil, nil)

		repo.EXPECT().Count(gomock.Any()).Return(0, errors.New("db"))

		if _, err := uc.Seed(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}
