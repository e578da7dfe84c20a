package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tanziljws/tanipintar-website/internal/utils"
)

// HealthCheck reports whether one backing dependency is reachable.
type HealthCheck func(ctx context.Context) bool

type HealthHandler struct {
	checks   map[string]HealthCheck
	optional map[string]HealthCheck
}

// NewHealthHandler takes one check per required dependency, keyed by the name
// reported in the response.
func NewHealthHandler(checks map[string]HealthCheck) *HealthHandler {
	return &HealthHandler{checks: checks, optional: map[string]HealthCheck{}}
}

// WithOptional adds a dependency that is reported but never fails the check.
func (h *HealthHandler) WithOptional(name string, check HealthCheck) *HealthHandler {
	h.optional[name] = check
	return h
}

func (h *HealthHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/api/test", h.Test)
	router.GET("/api/health", h.Health)
}

func (h *HealthHandler) Test(c *gin.Context) {
	utils.RespondSuccess(c, http.StatusOK, gin.H{"message": "TaniPintar API is running"})
}

// Health answers 503 when any required dependency is down.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	status := "ok"
	deps := make(map[string]bool, len(h.checks)+len(h.optional))
	for name, check := range h.checks {
		deps[name] = check(ctx)
		if !deps[name] {
			status = "degraded"
		}
	}
	for name, check := range h.optional {
		deps[name] = check(ctx)
	}

	code := http.StatusOK
	if status != "ok" {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, utils.SuccessResponse{
		Success: status == "ok",
		Data:    gin.H{"status": status, "dependencies": deps},
		Meta:    &utils.Meta{Timestamp: time.Now()},
	})
}
