package handlers

import (
	"net/http"
	"testing"

	"chromaprint/internal/usecase/interfaces"
	mock_interfaces "chromaprint/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestStatusHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	probe := mock_interfaces.NewMockIStoreProbe(ctrl)
	h := NewStatusHandler(probe)

	r := gin.New()
	r.GET("/", h.Root)
	r.GET("/api/hello", h.Hello)
	r.GET("/test", h.Diagnostics)

	w := doJSON(r, http.MethodGet, "/", "")
	if w.Body.String() != `{"message":"ChromaPrint Backend is live"}` {
		t.Fatalf("unexpected root body: %s", w.Body.String())
	}

	w = doJSON(r, http.MethodGet, "/api/hello", "")
	if w.Body.String() != `{"message":"Hello from ChromaPrint API"}` {
		t.Fatalf("unexpected hello body: %s", w.Body.String())
	}

	probe.EXPECT().Probe(gomock.Any()).Return(interfaces.StoreStatus{
		Backend:          "✅ Running",
		Database:         "✅ Connected & Working",
		ConnectionStatus: "Connected",
		Collections:      []string{"printers", "quotes"},
	})
	w = doJSON(r, http.MethodGet, "/test", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["connection_status"] != "Connected" || len(body["collections"].([]any)) != 2 {
		t.Fatalf("unexpected diagnostics body: %s", w.Body.String())
	}
}
