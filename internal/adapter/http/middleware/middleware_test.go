package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/time/rate"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID_GeneratesNewID(t *testing.T) {
	var captured string
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) { captured = GetRequestID(c) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/x", nil))

	_, err := uuid.Parse(captured)
	require.NoError(t, err)
	assert.Equal(t, captured, w.Header().Get(HeaderRequestID))
}

func TestRequestID_UsesProvidedID(t *testing.T) {
	provided := uuid.New().String()
	var captured string
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) { captured = GetRequestID(c) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(HeaderRequestID, provided)
	serve(r, req)

	assert.Equal(t, provided, captured)
}

func TestRequestID_ReplacesInvalidID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) {})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(HeaderRequestID, "not-a-uuid")
	w := serve(r, req)

	assert.NotEqual(t, "not-a-uuid", w.Header().Get(HeaderRequestID))
	_, err := uuid.Parse(w.Header().Get(HeaderRequestID))
	assert.NoError(t, err)
}

func TestRateLimit(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(rate.NewLimiter(1, 1)))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	before := counterValue(t, rateLimitRejects)

	first := serve(r, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Limit"))

	second := serve(r, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "1", second.Header().Get("Retry-After"))
	assert.Contains(t, second.Body.String(), `"code":"RATE_LIMIT_EXCEEDED"`)
	assert.Equal(t, before+1, counterValue(t, rateLimitRejects))
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	r := gin.New()
	r.Use(Metrics())
	r.GET("/api/quote/:quote_id/payments", func(c *gin.Context) { c.Status(http.StatusOK) })

	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/quote/:quote_id/payments", "200")
	before := counterValue(t, counter)

	serve(r, httptest.NewRequest(http.MethodGet, "/api/quote/q-1/payments", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/api/quote/q-2/payments", nil))

	assert.Equal(t, before+2, counterValue(t, counter))
}

func TestMetrics_UnmatchedPath(t *testing.T) {
	r := gin.New()
	r.Use(Metrics())

	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")
	before := counterValue(t, counter)

	serve(r, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, before+1, counterValue(t, counter))
}

func TestRecovery(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	r := gin.New()
	r.Use(RequestID(), Recovery(zap.New(core)))
	r.GET("/panic", func(c *gin.Context) { panic("kaboom") })

	before := counterValue(t, panicRecoveries)
	w := serve(r, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"INTERNAL_ERROR"`)
	assert.Equal(t, before+1, counterValue(t, panicRecoveries))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "kaboom", logs.All()[0].ContextMap()["error"])
}

func TestAccessLog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := gin.New()
	r.Use(RequestID(), AccessLog(zap.New(core)))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/bad", func(c *gin.Context) { c.Status(http.StatusUnprocessableEntity) })

	serve(r, httptest.NewRequest(http.MethodGet, "/ok", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/bad", nil))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	assert.Equal(t, zap.WarnLevel, entries[1].Level)

	fields := entries[0].ContextMap()
	assert.Equal(t, "/ok", fields["path"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
	assert.NotEmpty(t, fields["request_id"])
}

type staticValidator string

func (s staticValidator) ValidateToken(token string) bool {
	return token != "" && token == string(s)
}

func TestDemoAuth(t *testing.T) {
	r := gin.New()
	r.POST("/api/quote", DemoAuth(staticValidator("demo-token-123")), func(c *gin.Context) { c.Status(http.StatusOK) })

	cases := []struct {
		name   string
		header string
		value  string
		want   int
	}{
		{"missing", "", "", http.StatusUnauthorized},
		{"wrong", HeaderDemoToken, "nope", http.StatusUnauthorized},
		{"valid", HeaderDemoToken, "demo-token-123", http.StatusOK},
		{"bearer", "Authorization", "Bearer demo-token-123", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/quote", nil)
			if tc.header != "" {
				req.Header.Set(tc.header, tc.value)
			}
			w := serve(r, req)

			assert.Equal(t, tc.want, w.Code)
			if tc.want == http.StatusUnauthorized {
				assert.Contains(t, w.Body.String(), "Authentication required. Please login with demo credentials.")
			}
		})
	}
}

func TestCORS_AllowsDemoTokenHeader(t *testing.T) {
	r := gin.New()
	r.Use(CORS())
	r.POST("/api/quote", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/api/quote", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "X-Demo-Token")
	w := serve(r, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "X-Demo-Token")
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}
