package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "chromaprint/internal/adapter/http/dto/response"
	"chromaprint/internal/usecase"
	"chromaprint/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errEmptyMPPayload = errors.New("mp_payload cannot be empty")

// QuotePaymentHandler handles payments settling a submitted quote.
type QuotePaymentHandler struct {
	usecase usecase.IQuotePaymentUseCase
	log     *zap.Logger
}

func NewQuotePaymentHandler(uc usecase.IQuotePaymentUseCase, log *zap.Logger) *QuotePaymentHandler {
	return &QuotePaymentHandler{usecase: uc, log: log}
}

// CreatePayment godoc
// @Summary      Pay a submitted quote
// @Description  Accepts a Mercado Pago payment payload, bare or wrapped in `mp_payload`.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     DemoToken
// @Param        quote_id  path      string                             true   "Quote id"
// @Param        payload   body      request.QuotePaymentCreateRequest  false  "Payment payload"
// @Success      200       {object}  response.QuotePaymentResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      404       {object}  pkg.HTTPError
// @Failure      409       {object}  pkg.HTTPError
// @Router       /api/quote/{quote_id}/payments [post]
func (h *QuotePaymentHandler) CreatePayment(c *gin.Context) {
	quoteID := c.Param("quote_id")
	log := h.log.With(zap.String("quote_id", quoteID))
	log.Debug("create payment start")

	mpPayload, err := readMPPayload(c)
	if err != nil {
		log.Warn("invalid payment payload", zap.Error(err))
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), quoteID, mpPayload)
	if err != nil {
		appErr := mapQuotePaymentError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			log.Error("create payment failed", zap.Error(err))
		} else {
			log.Info("create payment rejected", zap.String("code", appErr.Code), zap.Error(err))
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Info("payment created", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))

	c.JSON(http.StatusOK, response.FromQuotePayment(created))
}

// GetLatestPayment godoc
// @Summary      Latest payment of a quote
// @Tags         payments
// @Produce      json
// @Security     DemoToken
// @Param        quote_id  path      string  true  "Quote id"
// @Success      200       {object}  response.QuotePaymentResponse
// @Failure      404       {object}  pkg.HTTPError
// @Router       /api/quote/{quote_id}/payments [get]
func (h *QuotePaymentHandler) GetLatestPayment(c *gin.Context) {
	quoteID := c.Param("quote_id")

	latest, err := h.usecase.GetLatestByQuoteID(c.Request.Context(), quoteID)
	if err != nil {
		appErr := mapQuotePaymentError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			h.log.Error("get latest payment failed", zap.String("quote_id", quoteID), zap.Error(err))
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotePayment(latest))
}

// readMPPayload returns the provider payload of the request body. The body
// may be the payload itself or an object wrapping it in `mp_payload`. Bodies
// that are not JSON are passed on untouched; the use case decides.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			trimmed := strings.TrimSpace(string(wrapped))
			if trimmed == "" || trimmed == "null" {
				return nil, errEmptyMPPayload
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapQuotePaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentQuoteID), errors.Is(err, usecase.ErrInvalidProviderPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotePaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteAlreadyPaid):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_PAID", "Quote already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotPayable):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_PAYABLE", "Quote is not awaiting payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteWithoutPrice):
		return pkg.NewDomainErrorSimple("QUOTE_WITHOUT_PRICE", "Quote has no estimated cost", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrStoreUnavailable), errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("SERVICE_UNAVAILABLE", "Payments are not available", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
