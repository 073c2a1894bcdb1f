package interfaces

import (
	"context"

	"chromaprint/internal/domain/entities"
)

// ICatalogCache keeps the last printer listing close to the handlers.
// A miss is reported with ok == false and a nil error.
type ICatalogCache interface {
	GetPrinters(ctx context.Context) (printers []entities.Printer, ok bool, err error)
	SetPrinters(ctx context.Context, printers []entities.Printer) error
	Invalidate(ctx context.Context) error
}
