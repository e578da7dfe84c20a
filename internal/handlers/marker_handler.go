package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tanziljws/tanipintar-website/internal/models"
	"github.com/tanziljws/tanipintar-website/internal/services"
	"github.com/tanziljws/tanipintar-website/internal/utils"
)

type MarkerHandler struct {
	markerService services.IMarkerService
	middleware    *Middleware
}

func NewMarkerHandler(markerService services.IMarkerService, middleware *Middleware) *MarkerHandler {
	return &MarkerHandler{
		markerService: markerService,
		middleware:    middleware,
	}
}

func (h *MarkerHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/api/map-markers", h.ListMarkers)

	// map-marker is an alias of map-markers.
	for _, prefix := range []string{"/api/admin/map-markers", "/api/admin/map-marker"} {
		adminGr := router.Group(prefix, h.middleware.RequireAdmin())
		adminGr.GET("", h.ListMarkers)
		adminGr.POST("", h.CreateMarker)
		adminGr.PUT("/:id", h.UpdateMarker)
		adminGr.DELETE("/:id", h.DeleteMarker)
	}
}

func (h *MarkerHandler) ListMarkers(c *gin.Context) {
	markers, err := h.markerService.ListMarkers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, utils.CreateListResponse(markers))
}

func (h *MarkerHandler) CreateMarker(c *gin.Context) {
	var req models.MapMarkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}

	marker, err := h.markerService.CreateMarker(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "MARKER_NOT_FOUND")
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, marker)
}

func (h *MarkerHandler) UpdateMarker(c *gin.Context) {
	id, err := utils.GetParamAsInt64(c, "id")
	if err != nil {
		respondInvalidID(c)
		return
	}

	var req models.MapMarkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}

	marker, err := h.markerService.UpdateMarker(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err, "MARKER_NOT_FOUND")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, marker)
}

func (h *MarkerHandler) DeleteMarker(c *gin.Context) {
	id, err := utils.GetParamAsInt64(c, "id")
	if err != nil {
		respondInvalidID(c)
		return
	}

	if err := h.markerService.DeleteMarker(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "MARKER_NOT_FOUND")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, gin.H{"id": id, "deleted": true})
}
