package handlers

import (
	"errors"
	"net/http"
	"testing"

	"chromaprint/internal/adapter/http/handlers/mocks"
	"chromaprint/internal/domain/catalog"
	"chromaprint/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestPrinterHandler_ListPrinters(t *testing.T) {
	setup := func(t *testing.T) (*gin.Engine, *mocks.MockIPrinterUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPrinterUseCase(ctrl)
		h := NewPrinterHandler(uc, zap.NewNop())
		r := gin.New()
		r.GET("/api/printers", h.ListPrinters)
		return r, uc
	}

	t.Run("error", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().List(gomock.Any()).Return(nil, errors.New("scan failed"))

		w := doJSON(r, http.MethodGet, "/api/printers", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "INTERNAL_ERROR" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("empty catalog", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().List(gomock.Any()).Return([]entities.Printer{}, nil)

		w := doJSON(r, http.MethodGet, "/api/printers", "")
		if w.Code != http.StatusOK || w.Body.String() != `{"items":[]}` {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("samples", func(t *testing.T) {
		samples, err := catalog.SamplePrinters()
		if err != nil {
			t.Fatalf("samples: %v", err)
		}
		r, uc := setup(t)
		uc.EXPECT().List(gomock.Any()).Return(samples, nil)

		w := doJSON(r, http.MethodGet, "/api/printers", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		items, _ := decodeBody(t, w)["items"].([]any)
		if len(items) != 3 {
			t.Fatalf("expected 3 printers, got %d", len(items))
		}
	})
}
