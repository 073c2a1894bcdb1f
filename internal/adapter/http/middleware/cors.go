package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HeaderDemoToken carries the demo session token.
const HeaderDemoToken = "X-Demo-Token"

// CORS allows any origin. Credentials are not allowed together with a
// wildcard origin, the demo token travels in a header instead.
func CORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization", HeaderDemoToken, HeaderRequestID},
		ExposeHeaders:   []string{HeaderRequestID, "Retry-After"},
		MaxAge:          12 * time.Hour,
	})
}
