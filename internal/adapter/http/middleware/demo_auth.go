package middleware

import (
	"net/http"
	"strings"

	"chromaprint/pkg"

	"github.com/gin-gonic/gin"
)

// TokenValidator reports whether a demo token is valid.
type TokenValidator interface {
	ValidateToken(token string) bool
}

var errAuthRequired = pkg.NewDomainErrorSimple("AUTH_REQUIRED", "Authentication required. Please login with demo credentials.", http.StatusUnauthorized)

// DemoAuth requires a valid X-Demo-Token header. A bearer Authorization
// header carrying the same token is accepted too.
func DemoAuth(v TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(c.GetHeader(HeaderDemoToken))
		if token == "" {
			if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			}
		}

		if !v.ValidateToken(token) {
			c.AbortWithStatusJSON(errAuthRequired.HTTPStatus, errAuthRequired.ToHTTPError())
			return
		}
		c.Next()
	}
}
