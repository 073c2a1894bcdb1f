package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"chromaprint/internal/domain/entities"
	"chromaprint/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrQuotePaymentNotFound           = errors.New("quote payment not found")
	ErrInvalidPaymentQuoteID          = errors.New("invalid quote_id")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidProviderPayload         = errors.New("invalid payment provider payload")
	ErrQuoteAlreadyPaid               = errors.New("quote already paid")
	ErrQuoteNotPayable                = errors.New("quote is not awaiting payment")
	ErrQuoteWithoutPrice              = errors.New("quote has no estimated cost")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// sandboxPayerEmail is accepted by Mercado Pago test credentials when no
// test payer is configured.
const sandboxPayerEmail = "test_user_br@testuser.com"

// PaymentOptions configures how quote payments reach the provider.
type PaymentOptions struct {
	// Mock skips the gateway and approves every payment locally.
	Mock           bool
	AccessToken    string
	TestPayerEmail string
	// DefaultMethod fills payment_method_id when the caller omits it.
	DefaultMethod string
}

// IQuotePaymentUseCase settles submitted quotes.
//
// CreateAndApprove charges the amount of the quote's stored estimate, records
// the provider response and marks the quote as paid once the provider
// approves the payment.

type IQuotePaymentUseCase interface {
	CreateAndApprove(ctx context.Context, quoteID string, providerPayload json.RawMessage) (entities.QuotePayment, error)
	GetByID(ctx context.Context, id string) (entities.QuotePayment, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuotePayment, error)
	GetLatestByQuoteID(ctx context.Context, quoteID string) (entities.QuotePayment, error)
}

type QuotePaymentUseCase struct {
	repo      interfaces.IQuotePaymentRepository
	quoteRepo interfaces.IQuoteRepository
	gateway   interfaces.IPaymentGateway
	opts      PaymentOptions
	log       *zap.Logger
}

var _ IQuotePaymentUseCase = (*QuotePaymentUseCase)(nil)

func NewQuotePaymentUseCase(
	repo interfaces.IQuotePaymentRepository,
	quoteRepo interfaces.IQuoteRepository,
	gateway interfaces.IPaymentGateway,
	opts PaymentOptions,
	log *zap.Logger,
) *QuotePaymentUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &QuotePaymentUseCase{repo: repo, quoteRepo: quoteRepo, gateway: gateway, opts: opts, log: log}
}

func (u *QuotePaymentUseCase) CreateAndApprove(ctx context.Context, quoteID string, providerPayload json.RawMessage) (entities.QuotePayment, error) {
	quoteID = strings.TrimSpace(quoteID)
	log := u.log.With(zap.String("quote_id", quoteID), zap.Bool("mock", u.opts.Mock))
	log.Debug("create-and-approve start", zap.Int("payload_len", len(providerPayload)))

	if quoteID == "" {
		return entities.QuotePayment{}, ErrInvalidPaymentQuoteID
	}
	if len(providerPayload) == 0 {
		providerPayload = json.RawMessage("{}")
	}
	if !json.Valid(providerPayload) {
		if !u.opts.Mock {
			log.Warn("invalid payment payload (not json)")
			return entities.QuotePayment{}, ErrInvalidProviderPayload
		}
		providerPayload = json.RawMessage("{}")
	}
	if u.repo == nil || u.quoteRepo == nil {
		return entities.QuotePayment{}, ErrStoreUnavailable
	}
	if !u.opts.Mock && u.gateway == nil {
		return entities.QuotePayment{}, ErrPaymentGatewayNotConfigured
	}

	quote, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		log.Error("failed loading quote", zap.Error(err))
		return entities.QuotePayment{}, err
	}
	if quote.ID == "" {
		return entities.QuotePayment{}, ErrQuoteNotFound
	}
	switch quote.Status {
	case entities.QuoteStatusSubmitted:
	case entities.QuoteStatusPaid:
		return entities.QuotePayment{}, ErrQuoteAlreadyPaid
	default:
		return entities.QuotePayment{}, ErrQuoteNotPayable
	}
	amount, ok := quote.EstimatedCost()
	if !ok {
		return entities.QuotePayment{}, ErrQuoteWithoutPrice
	}

	reqMap := map[string]any{}
	if err := json.Unmarshal(providerPayload, &reqMap); err != nil || reqMap == nil {
		if !u.opts.Mock {
			log.Warn("payment payload is not an object", zap.Error(err))
			return entities.QuotePayment{}, ErrInvalidProviderPayload
		}
		reqMap = map[string]any{}
	}
	if !hasNonEmptyString(reqMap, "payment_method_id") && u.opts.DefaultMethod != "" {
		reqMap["payment_method_id"] = u.opts.DefaultMethod
	}
	if !u.opts.Mock {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Warn("missing payment_method_id")
			return entities.QuotePayment{}, ErrInvalidProviderPayload
		}
		u.ensurePayerDefaults(reqMap, quote.Email)
		if !hasPayer(reqMap) {
			log.Warn("missing or invalid payer")
			return entities.QuotePayment{}, ErrInvalidProviderPayload
		}
	}

	// external_reference lets provider notifications be reconciled with the quote.
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = quoteID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("ChromaPrint quote %s", quoteID)
	}
	// The stored estimate is the source of truth for the amount.
	reqMap["transaction_amount"] = amount

	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.QuotePayment{}, err
	}

	var (
		providerPaymentID string
		providerStatus    string
		providerResp      json.RawMessage
	)
	if u.opts.Mock {
		log.Info("mock mode enabled, skipping external payment gateway")
		providerPaymentID, providerStatus, providerResp, err = mockProviderResponse(reqMap)
		if err != nil {
			return entities.QuotePayment{}, err
		}
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			log.Error("payment gateway failed", zap.Error(err))
			return entities.QuotePayment{}, mapGatewayError(err)
		}
	}
	log.Info("payment gateway answered",
		zap.String("provider_payment_id", providerPaymentID),
		zap.String("provider_status", providerStatus),
	)

	var parsed map[string]any
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn("provider response unmarshal failed", zap.Error(err))
	}

	p := entities.QuotePayment{
		ID:                 providerPaymentID,
		QuoteID:            quoteID,
		Amount:             amount,
		Date:               time.Now().UTC(),
		Status:             paymentStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error("payment repository create failed", zap.String("payment_id", p.ID), zap.Error(err))
		return entities.QuotePayment{}, err
	}

	if created.Status == entities.PaymentStatusApproved {
		if _, err := u.quoteRepo.UpdateStatus(ctx, quoteID, entities.QuoteStatusPaid); err != nil {
			// The payment is recorded; the quote can be reconciled from external_reference.
			log.Error("failed marking quote as paid", zap.String("payment_id", created.ID), zap.Error(err))
		}
	}

	log.Info("create-and-approve done", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))
	return created, nil
}

func (u *QuotePaymentUseCase) GetByID(ctx context.Context, id string) (entities.QuotePayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuotePayment{}, ErrInvalidPaymentID
	}
	if u.repo == nil {
		return entities.QuotePayment{}, ErrStoreUnavailable
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.QuotePayment{}, err
	}
	if p.ID == "" {
		return entities.QuotePayment{}, ErrQuotePaymentNotFound
	}
	return p, nil
}

func (u *QuotePaymentUseCase) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuotePayment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidPaymentQuoteID
	}
	if u.repo == nil {
		return nil, ErrStoreUnavailable
	}
	return u.repo.ListByQuoteID(ctx, quoteID)
}

// GetLatestByQuoteID returns the most recent payment of a quote.
func (u *QuotePaymentUseCase) GetLatestByQuoteID(ctx context.Context, quoteID string) (entities.QuotePayment, error) {
	payments, err := u.ListByQuoteID(ctx, quoteID)
	if err != nil {
		return entities.QuotePayment{}, err
	}
	if len(payments) == 0 {
		return entities.QuotePayment{}, ErrQuotePaymentNotFound
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	return latest, nil
}

func (u *QuotePaymentUseCase) ensurePayerDefaults(m map[string]any, quoteEmail string) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}

	// Sandbox credentials only accept test users as payers.
	sandbox := strings.HasPrefix(strings.TrimSpace(u.opts.AccessToken), "TEST-")
	switch {
	case strings.TrimSpace(u.opts.TestPayerEmail) != "":
		payer["email"] = strings.TrimSpace(u.opts.TestPayerEmail)
	case sandbox:
		payer["email"] = sandboxPayerEmail
	case quoteEmail != "":
		payer["email"] = quoteEmail
	}
}

func mockProviderResponse(req map[string]any) (id, status string, resp json.RawMessage, err error) {
	now := time.Now().UTC()
	id = strconv.FormatInt(now.UnixNano(), 10)

	mockResp := make(map[string]any, len(req)+5)
	for k, v := range req {
		mockResp[k] = v
	}
	mockResp["id"] = id
	mockResp["status"] = "approved"
	mockResp["status_detail"] = "accredited"
	mockResp["date_created"] = now.Format(time.RFC3339Nano)
	mockResp["date_approved"] = now.Format(time.RFC3339Nano)

	b, err := json.Marshal(mockResp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}

func mapGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	return strings.TrimSpace(fmt.Sprintf("%v", v)) != ""
}
