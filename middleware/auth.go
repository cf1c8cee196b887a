package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rowanvale/charforge/config"
)

const SubjectKey = "auth_subject"

// Auth validates the Bearer token and stores its subject in the context.
// Expired and malformed tokens get distinct 401 details.
func Auth(sec config.AuthConfig) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		claims, err := ParseToken(tokenStr, sec.JWTSecret, sec.JWTAudience)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Token has expired"})
			} else {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token"})
			}
			return
		}

		ctx.Set(SubjectKey, claims.Subject)
		ctx.Next()
	}
}

// GetSubject retrieves the authenticated user identity from the Gin context.
func GetSubject(c *gin.Context) string {
	if v, exists := c.Get(SubjectKey); exists {
		return v.(string)
	}
	return ""
}
