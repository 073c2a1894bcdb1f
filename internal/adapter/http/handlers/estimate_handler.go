package handlers

import (
	"errors"
	"net/http"

	request "chromaprint/internal/adapter/http/dto/request"
	response "chromaprint/internal/adapter/http/dto/response"
	"chromaprint/internal/usecase"
	"chromaprint/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusUnprocessableEntity)
)

// EstimateHandler serves the instant price estimator.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
	log     *zap.Logger
}

func NewEstimateHandler(uc usecase.IEstimateUseCase, log *zap.Logger) *EstimateHandler {
	return &EstimateHandler{usecase: uc, log: log}
}

// CreateEstimate godoc
// @Summary      Estimate the price of a print
// @Tags         estimate
// @Accept       json
// @Produce      json
// @Param        payload  body      request.EstimateRequest  true  "Part dimensions and options"
// @Success      200      {object}  response.EstimateResponse
// @Failure      422      {object}  pkg.HTTPError
// @Router       /api/estimate [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := errInvalidEstimatePayload.WithDetails(request.ValidationDetails(err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out, err := h.usecase.Estimate(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapEstimateError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			h.log.Error("estimate failed", zap.Error(err))
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateOutput(out))
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDimensions),
		errors.Is(err, usecase.ErrInvalidComplexity),
		errors.Is(err, usecase.ErrInvalidInfill),
		errors.Is(err, usecase.ErrInvalidModelVolume):
		return pkg.NewDomainError("INVALID_ESTIMATE_INPUT", err.Error(), err, http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
