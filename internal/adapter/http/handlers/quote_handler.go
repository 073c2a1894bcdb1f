package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "chromaprint/internal/adapter/http/dto/request"
	response "chromaprint/internal/adapter/http/dto/response"
	"chromaprint/internal/usecase"
	"chromaprint/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuoteHandler handles quote submission and the customer's order history.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
	log     *zap.Logger
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, log *zap.Logger) *QuoteHandler {
	return &QuoteHandler{usecase: uc, log: log}
}

// SubmitQuote godoc
// @Summary      Submit a quote request
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Security     DemoToken
// @Param        payload  body      request.QuoteRequest  true  "Quote"
// @Success      200      {object}  response.QuoteSubmitResponse
// @Failure      401      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Router       /api/quote [post]
func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusUnprocessableEntity).
			WithDetails(request.ValidationDetails(err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res, err := h.usecase.Submit(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapQuoteError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			h.log.Error("submit quote failed", zap.Error(err))
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSubmitQuoteResult(res))
}

// ListOrders godoc
// @Summary      List the quotes submitted with an email
// @Tags         quotes
// @Produce      json
// @Param        email  query     string  true  "Customer email"
// @Success      200    {object}  response.QuoteListResponse
// @Failure      422    {object}  pkg.HTTPError
// @Router       /api/account/orders [get]
func (h *QuoteHandler) ListOrders(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusUnprocessableEntity).
			WithDetails(map[string]any{"email": "required"})
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	quotes, err := h.usecase.ListByEmail(c.Request.Context(), email)
	if err != nil {
		appErr := mapQuoteError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			h.log.Error("list orders failed", zap.Error(err))
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmail), errors.Is(err, usecase.ErrInvalidQuoteEstimate), errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
