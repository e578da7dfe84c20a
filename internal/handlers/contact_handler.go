package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tanziljws/tanipintar-website/internal/models"
	"github.com/tanziljws/tanipintar-website/internal/services"
	"github.com/tanziljws/tanipintar-website/internal/utils"
)

type ContactHandler struct {
	contactService services.IContactService
	middleware     *Middleware
}

func NewContactHandler(contactService services.IContactService, middleware *Middleware) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		middleware:     middleware,
	}
}

func (h *ContactHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/contact", h.Submit)

	adminGr := router.Group("/api/admin", h.middleware.RequireAdmin())
	adminGr.GET("/contacts", h.ListMessages)
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}

	msg, err := h.contactService.Submit(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "")
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, gin.H{
		"id":      msg.ID,
		"message": "Pesan Anda telah terkirim",
	})
}

func (h *ContactHandler) ListMessages(c *gin.Context) {
	messages, err := h.contactService.ListMessages(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, utils.CreateListResponse(messages))
}
