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

type AuthHandler struct {
	usecase usecase.IAuthUseCase
	log     *zap.Logger
}

func NewAuthHandler(uc usecase.IAuthUseCase, log *zap.Logger) *AuthHandler {
	return &AuthHandler{usecase: uc, log: log}
}

// Login godoc
// @Summary      Log in with the demo account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      request.LoginRequest  true  "Demo credentials"
// @Success      200      {object}  response.LoginResponse
// @Failure      401      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusUnprocessableEntity).
			WithDetails(request.ValidationDetails(err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			h.log.Error("login failed", zap.Error(err))
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLoginResult(res))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid credentials. Use demo credentials provided.", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
