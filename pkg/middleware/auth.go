package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware.
const (
	ClaimsKey  = "claims"
	SubjectKey = "userId"
)

// Token is minimal interface for a verified token that can expose claims
type Token interface {
	Claims(v interface{}) error
}

// Verifier is the minimal interface the middleware depends on
type Verifier interface {
	Verify(ctx context.Context, raw string) (Token, error)
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "unauthorized", "message": "Authentication required"})
}

// AuthMiddleware returns a Gin middleware that verifies Bearer tokens using the provided verifier.
// On success the claims map is stored under ClaimsKey and the "sub" claim under SubjectKey.
func AuthMiddleware(ver Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(SubjectKey); ok {
			c.Next()
			return
		}
		if !authenticate(c, ver) {
			unauthorized(c)
			return
		}
		c.Next()
	}
}

// OptionalAuth sets the same context keys as AuthMiddleware when the request
// carries a valid bearer token and passes every request on. Mounted ahead of
// the rate limiter it lets the limiter key by subject.
func OptionalAuth(ver Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authenticate(c, ver)
		c.Next()
	}
}

func authenticate(c *gin.Context, ver Verifier) bool {
	token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	token = strings.TrimSpace(token)
	if !ok || token == "" {
		return false
	}

	verified, err := ver.Verify(c.Request.Context(), token)
	if err != nil {
		return false
	}

	var claims map[string]interface{}
	if err := verified.Claims(&claims); err != nil {
		return false
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return false
	}

	c.Set(ClaimsKey, claims)
	c.Set(SubjectKey, sub)
	return true
}

// Subject returns the authenticated subject set by AuthMiddleware.
func Subject(c *gin.Context) string {
	return c.GetString(SubjectKey)
}
