package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tanziljws/tanipintar-website/internal/models"
	"github.com/tanziljws/tanipintar-website/internal/utils"
)

const claimsKey = "admin_claims"

type TokenAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*models.Claims, error)
}

type Middleware struct {
	auth TokenAuthenticator
}

func NewMiddleware(auth TokenAuthenticator) *Middleware {
	return &Middleware{auth: auth}
}

// RequireAdmin accepts a Bearer token backed by a live session and stores its
// claims on the context.
func (m *Middleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondError(c, http.StatusUnauthorized, "MISSING_TOKEN", "authorization header required")
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := m.auth.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			slog.Warn("token validation failed", "path", c.FullPath(), "error", err)
			utils.RespondError(c, http.StatusUnauthorized, "INVALID_TOKEN", "token validation failed")
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

func ClaimsFromContext(c *gin.Context) (*models.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*models.Claims)
	return claims, ok
}

// CORS allows the configured front-end origin with credentials.
func CORS(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", allowedOrigin)
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Header("Vary", "Origin")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
