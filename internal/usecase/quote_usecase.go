package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"chromaprint/internal/domain/entities"
	"chromaprint/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultOrdersLimit int32 = 50

var (
	ErrQuoteNotFound        = errors.New("quote not found")
	ErrInvalidQuoteID       = errors.New("invalid quote id")
	ErrInvalidEmail         = errors.New("invalid email")
	ErrInvalidQuoteEstimate = errors.New("quote estimate is required")
)

type SubmitQuoteCommand struct {
	Email    string
	Name     string
	Estimate map[string]any
	Notes    string
}

// SubmitQuoteResult carries the submitted quote. Persisted is false when no
// document store is configured; the quote then has no id.
type SubmitQuoteResult struct {
	Quote     entities.Quote
	Persisted bool
}

// IQuoteUseCase handles quote requests and the customer's order history.

type IQuoteUseCase interface {
	Submit(ctx context.Context, cmd SubmitQuoteCommand) (SubmitQuoteResult, error)
	ListByEmail(ctx context.Context, email string) ([]entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo  interfaces.IQuoteRepository
	limit int32
	log   *zap.Logger
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

// NewQuoteUseCase builds the quote use case. repo may be nil; a non-positive
// limit falls back to DefaultOrdersLimit.
func NewQuoteUseCase(repo interfaces.IQuoteRepository, limit int32, log *zap.Logger) *QuoteUseCase {
	if limit <= 0 {
		limit = DefaultOrdersLimit
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &QuoteUseCase{repo: repo, limit: limit, log: log}
}

func (u *QuoteUseCase) Submit(ctx context.Context, cmd SubmitQuoteCommand) (SubmitQuoteResult, error) {
	email := strings.TrimSpace(cmd.Email)
	if email == "" {
		return SubmitQuoteResult{}, ErrInvalidEmail
	}
	if len(cmd.Estimate) == 0 {
		return SubmitQuoteResult{}, ErrInvalidQuoteEstimate
	}

	q := entities.Quote{
		Email:     email,
		Name:      strings.TrimSpace(cmd.Name),
		Estimate:  cmd.Estimate,
		Notes:     cmd.Notes,
		Status:    entities.QuoteStatusSubmitted,
		CreatedAt: time.Now().UTC(),
	}

	if u.repo == nil {
		u.log.Info("quote submission simulated", zap.String("email", email))
		return SubmitQuoteResult{Quote: q}, nil
	}

	q.ID = uuid.NewString()
	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return SubmitQuoteResult{}, err
	}
	u.log.Info("quote submitted", zap.String("quote_id", created.ID), zap.String("email", email))
	return SubmitQuoteResult{Quote: created, Persisted: true}, nil
}

func (u *QuoteUseCase) ListByEmail(ctx context.Context, email string) ([]entities.Quote, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrInvalidEmail
	}
	if u.repo == nil {
		return []entities.Quote{}, nil
	}

	quotes, err := u.repo.ListByEmail(ctx, email, u.limit)
	if err != nil {
		return nil, err
	}
	if quotes == nil {
		quotes = []entities.Quote{}
	}
	return quotes, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	if u.repo == nil {
		return entities.Quote{}, ErrStoreUnavailable
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}
