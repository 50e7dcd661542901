package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adewale/gradlink/internal/app/models/dto"
	"github.com/adewale/gradlink/internal/pkg/auth"
)

// ContextUserKey is the gin context key the authenticated username is
// stored under.
const ContextUserKey = "currentUser"

// AuthMiddleware validates bearer tokens on protected routes.
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// JWTAuth middleware for JWT token validation
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("Authentication required"))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("Invalid token format"))
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("Token expired"))
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("Invalid token"))
			return
		}

		c.Set(ContextUserKey, claims.Username)
		c.Next()
	}
}

// CurrentUser returns the authenticated username set by JWTAuth, or "" when
// the route ran without authentication.
func CurrentUser(c *gin.Context) string {
	if v, ok := c.Get(ContextUserKey); ok {
		if username, ok := v.(string); ok {
			return username
		}
	}
	return ""
}
