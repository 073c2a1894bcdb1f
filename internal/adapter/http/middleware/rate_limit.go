package middleware

import (
	"net/http"
	"strconv"

	"chromaprint/pkg"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit rejects requests above the global limit with 429.
func RateLimit(limiter *rate.Limiter) gin.HandlerFunc {
	limit := strconv.Itoa(int(limiter.Limit()))
	return func(c *gin.Context) {
		if !limiter.Allow() {
			rateLimitRejects.Inc()
			c.Header("Retry-After", "1")
			appErr := pkg.NewDomainErrorSimple("RATE_LIMIT_EXCEEDED", "Rate limit exceeded", http.StatusTooManyRequests).
				WithDetails(map[string]any{"limit": limiter.Limit(), "burst": limiter.Burst()})
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Header("X-RateLimit-Limit", limit)
		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(limiter.Tokens())))
		c.Next()
	}
}
