package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tanziljws/tanipintar-website/internal/services"
	"github.com/tanziljws/tanipintar-website/internal/utils"
)

const maxUploadMemory = 8 << 20

type GalleryHandler struct {
	galleryService services.IGalleryService
	middleware     *Middleware
}

func NewGalleryHandler(galleryService services.IGalleryService, middleware *Middleware) *GalleryHandler {
	return &GalleryHandler{
		galleryService: galleryService,
		middleware:     middleware,
	}
}

func (h *GalleryHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/api/gallery", h.ListImages)

	adminGr := router.Group("/api/admin/gallery", h.middleware.RequireAdmin())
	adminGr.POST("", h.Upload)
	adminGr.DELETE("/:id", h.Delete)
}

func (h *GalleryHandler) ListImages(c *gin.Context) {
	images, err := h.galleryService.ListImages(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, utils.CreateListResponse(images))
}

// Upload expects a multipart form with an "image" file and an optional title.
func (h *GalleryHandler) Upload(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(maxUploadMemory); err != nil {
		respondInvalidBody(c, err)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "MISSING_FILE", "image file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondServiceError(c, err, "")
		return
	}
	defer file.Close()

	image, err := h.galleryService.Upload(c.Request.Context(),
		c.PostForm("title"),
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file)
	if err != nil {
		respondServiceError(c, err, "")
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, image)
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	id, err := utils.GetParamAsInt64(c, "id")
	if err != nil {
		respondInvalidID(c)
		return
	}

	if err := h.galleryService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "IMAGE_NOT_FOUND")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, gin.H{"id": id, "deleted": true})
}
