package middleware

import (
	"net/http"
	"strings"

	"github.com/azamatb/notekeeper/internal/domain"
	"github.com/gin-gonic/gin"
)

const errUnauthorized = "Token is invalid or expired"

// tokenVerifier is the subset of AuthUsecase the middleware needs.
type tokenVerifier interface {
	VerifyToken(rawToken string, kind domain.TokenKind) (string, error)
}

// Auth validates a Bearer token of the required kind and sets "userID" in
// the gin context. A refresh token presented to an access-only route (or
// vice versa) is rejected.
func Auth(verifier tokenVerifier, kind domain.TokenKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
			return
		}

		rawToken := strings.TrimPrefix(header, "Bearer ")

		userID, err := verifier.VerifyToken(rawToken, kind)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
