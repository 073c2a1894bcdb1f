package interfaces

import (
	"context"

	"chromaprint/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// ListByEmail returns the newest quotes first.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByEmail(ctx context.Context, email string, limit int32) ([]entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
}
