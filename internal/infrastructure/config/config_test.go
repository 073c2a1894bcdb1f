package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, ":8000", cfg.Addr())
	assert.Equal(t, "demo-token-123", cfg.Demo.Token)
	assert.Equal(t, "Demo User", cfg.Demo.UserName)
	assert.True(t, cfg.DynamoDB.Enabled)
	assert.Equal(t, "us-east-1", cfg.DynamoDB.Region)
	assert.Equal(t, "printers", cfg.DynamoDB.PrintersTable)
	assert.Equal(t, "quotes", cfg.DynamoDB.QuotesTable)
	assert.Equal(t, "users", cfg.DynamoDB.UsersTable)
	assert.Equal(t, "quote_payments", cfg.DynamoDB.PaymentsTable)
	assert.Equal(t, 30*time.Second, cfg.DynamoDB.ConnectTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Cache.CatalogTTL)
	assert.Equal(t, int32(50), cfg.OrdersLimit)
	assert.True(t, cfg.Payments.Mock)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "development")
	t.Setenv("DEMO_EMAIL", "someone@example.com")
	t.Setenv("DYNAMODB_ENDPOINT", "http://dynamodb:8000")
	t.Setenv("DYNAMODB_ENABLED", "false")
	t.Setenv("CATALOG_CACHE_TTL", "30s")
	t.Setenv("RATE_LIMIT", "5")
	t.Setenv("RATE_LIMIT_BURST", "10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "someone@example.com", cfg.Demo.Email)
	assert.Equal(t, "http://dynamodb:8000", cfg.DynamoDB.Endpoint)
	assert.False(t, cfg.DynamoDB.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Cache.CatalogTTL)
	assert.InDelta(t, 5.0, cfg.RateLimit.RequestsPerSecond, 1e-9)
	assert.Equal(t, 10, cfg.RateLimit.Burst)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string][2]string{
		"port out of range": {"PORT", "70000"},
		"port not a number": {"PORT", "abc"},
		"orders limit":      {"ORDERS_LIMIT", "0"},
		"rate limit":        {"RATE_LIMIT", "0"},
		"ttl":               {"CATALOG_CACHE_TTL", "soon"},
	}

	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := Load()
			require.Error(t, err)
		})
	}
}
