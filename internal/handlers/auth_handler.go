package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tanziljws/tanipintar-website/internal/models"
	"github.com/tanziljws/tanipintar-website/internal/services"
	"github.com/tanziljws/tanipintar-website/internal/utils"
)

type AuthHandler struct {
	authService services.IAuthService
	middleware  *Middleware
}

func NewAuthHandler(authService services.IAuthService, middleware *Middleware) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		middleware:  middleware,
	}
}

func (h *AuthHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/admin/login", h.Login)

	adminGr := router.Group("/api/admin", h.middleware.RequireAdmin())
	adminGr.POST("/logout", h.Logout)
	adminGr.POST("/logout-all", h.LogoutAll)
	adminGr.GET("/me", h.Me)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondServiceError(c, err, "ADMIN_NOT_FOUND")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, resp)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := ClaimsFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "MISSING_TOKEN", "authorization header required")
		return
	}

	if err := h.authService.Logout(c.Request.Context(), claims.SessionID); err != nil {
		respondServiceError(c, err, "SESSION_NOT_FOUND")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, gin.H{"message": "logged out"})
}

// LogoutAll ends every session of the calling admin on all devices.
func (h *AuthHandler) LogoutAll(c *gin.Context) {
	claims, ok := ClaimsFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "MISSING_TOKEN", "authorization header required")
		return
	}

	if err := h.authService.LogoutAll(c.Request.Context(), claims.AdminID); err != nil {
		respondServiceError(c, err, "")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, gin.H{"message": "logged out from all sessions"})
}

// Me returns the identity behind the current token.
func (h *AuthHandler) Me(c *gin.Context) {
	claims, _ := ClaimsFromContext(c)
	utils.RespondSuccess(c, http.StatusOK, gin.H{
		"admin_id":   claims.AdminID,
		"username":   claims.Username,
		"expires_at": claims.ExpiresAt.Time,
	})
}
