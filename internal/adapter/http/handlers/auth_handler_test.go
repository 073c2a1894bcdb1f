package handlers

import (
	"errors"
	"net/http"
	"testing"

	"chromaprint/internal/adapter/http/handlers/mocks"
	"chromaprint/internal/domain/entities"
	"chromaprint/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestAuthHandler_Login(t *testing.T) {
	setup := func(t *testing.T) (*gin.Engine, *mocks.MockIAuthUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc, zap.NewNop())
		r := gin.New()
		r.POST("/api/auth/login", h.Login)
		return r, uc
	}

	t.Run("missing password", func(t *testing.T) {
		r, _ := setup(t)

		w := doJSON(r, http.MethodPost, "/api/auth/login", `{"email":"demo@chromaprint.dev"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("invalid credentials", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Login(gomock.Any(), "demo@chromaprint.dev", "wrong").Return(usecase.LoginResult{}, usecase.ErrInvalidCredentials)

		w := doJSON(r, http.MethodPost, "/api/auth/login", `{"email":"demo@chromaprint.dev","password":"wrong"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["detail"] != "Invalid credentials. Use demo credentials provided." {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("internal error", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.LoginResult{}, errors.New("boom"))

		w := doJSON(r, http.MethodPost, "/api/auth/login", `{"email":"a","password":"b"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Login(gomock.Any(), "demo@chromaprint.dev", "chromaprint-demo").Return(usecase.LoginResult{
			Token: "demo-token-123",
			User:  entities.User{Email: "demo@chromaprint.dev", Name: "Demo User"},
		}, nil)

		w := doJSON(r, http.MethodPost, "/api/auth/login", `{"email":"demo@chromaprint.dev","password":"chromaprint-demo"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		user, _ := body["user"].(map[string]any)
		if body["token"] != "demo-token-123" || user["name"] != "Demo User" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
