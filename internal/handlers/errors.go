package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tanziljws/tanipintar-website/internal/repository"
	"github.com/tanziljws/tanipintar-website/internal/services"
	"github.com/tanziljws/tanipintar-website/internal/utils"
)

// respondServiceError maps a service error onto the envelope. notFoundCode is
// the code used when the addressed row does not exist.
func respondServiceError(c *gin.Context, err error, notFoundCode string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		utils.RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, repository.ErrNotFound):
		utils.RespondError(c, http.StatusNotFound, notFoundCode, "resource not found")
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.RespondError(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid username or password")
	case errors.Is(err, services.ErrUnauthorized):
		utils.RespondError(c, http.StatusUnauthorized, "INVALID_TOKEN", "token validation failed")
	default:
		slog.Error("request failed", "method", c.Request.Method, "path", c.FullPath(), "error", err)
		utils.RespondError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal server error")
	}
}

func respondInvalidBody(c *gin.Context, err error) {
	slog.Warn("invalid request body", "path", c.FullPath(), "error", err)
	utils.RespondError(c, http.StatusBadRequest, "INVALID_REQUEST_FORMAT", "Invalid request format")
}

func respondInvalidID(c *gin.Context) {
	utils.RespondError(c, http.StatusBadRequest, "INVALID_ID", "id must be a positive integer")
}
