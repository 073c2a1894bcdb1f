package interfaces

import (
	"context"

	"chromaprint/internal/domain/entities"
)

// IPrinterRepository abstracts DynamoDB persistence for the printer catalog.
//
// The storefront must be able to:
//   - list the whole catalog (it is small, no paging is exposed)
//   - detect an empty catalog and seed it

type IPrinterRepository interface {
	List(ctx context.Context) ([]entities.Printer, error)
	Count(ctx context.Context) (int, error)
	CreateMany(ctx context.Context, printers []entities.Printer) (int, error)
}
