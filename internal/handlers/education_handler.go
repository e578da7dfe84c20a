package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tanziljws/tanipintar-website/internal/models"
	"github.com/tanziljws/tanipintar-website/internal/services"
	"github.com/tanziljws/tanipintar-website/internal/utils"
)

type EducationHandler struct {
	educationService services.IEducationService
	middleware       *Middleware
}

func NewEducationHandler(educationService services.IEducationService, middleware *Middleware) *EducationHandler {
	return &EducationHandler{
		educationService: educationService,
		middleware:       middleware,
	}
}

func (h *EducationHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/api/education", h.ListItems)

	adminGr := router.Group("/api/admin/education", h.middleware.RequireAdmin())
	adminGr.GET("", h.ListContent)
	adminGr.POST("", h.CreateContent)
	adminGr.PUT("/:id", h.UpdateContent)
	adminGr.DELETE("/:id", h.DeleteContent)
}

func (h *EducationHandler) ListItems(c *gin.Context) {
	items, err := h.educationService.ListItems(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, utils.CreateListResponse(items))
}

func (h *EducationHandler) ListContent(c *gin.Context) {
	contents, err := h.educationService.ListContent(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, utils.CreateListResponse(contents))
}

func (h *EducationHandler) CreateContent(c *gin.Context) {
	var req models.CreateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}

	content, err := h.educationService.CreateContent(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "CONTENT_NOT_FOUND")
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, content)
}

func (h *EducationHandler) UpdateContent(c *gin.Context) {
	id, err := utils.GetParamAsInt64(c, "id")
	if err != nil {
		respondInvalidID(c)
		return
	}

	var req models.UpdateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}

	content, err := h.educationService.UpdateContent(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err, "CONTENT_NOT_FOUND")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, content)
}

func (h *EducationHandler) DeleteContent(c *gin.Context) {
	id, err := utils.GetParamAsInt64(c, "id")
	if err != nil {
		respondInvalidID(c)
		return
	}

	if err := h.educationService.DeleteContent(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "CONTENT_NOT_FOUND")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, gin.H{"id": id, "deleted": true})
}
