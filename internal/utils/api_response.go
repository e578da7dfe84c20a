package utils

import (
	"time"

	"github.com/gin-gonic/gin"
)

type SuccessResponse struct {
	Success bool  `json:"success"`
	Data    any   `json:"data"`
	Meta    *Meta `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Success bool     `json:"success"`
	Error   APIError `json:"error"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Meta struct {
	Timestamp time.Time `json:"timestamp"`
	Total     *int      `json:"total,omitempty"`
	Warning   string    `json:"warning,omitempty"`
}

func CreateErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error: APIError{
			Code:    code,
			Message: message,
		},
	}
}

func CreateSuccessResponse(data any) SuccessResponse {
	return SuccessResponse{
		Success: true,
		Data:    data,
		Meta: &Meta{
			Timestamp: time.Now(),
		},
	}
}

// CreateListResponse is CreateSuccessResponse with the item count in meta.
func CreateListResponse[T any](items []T) SuccessResponse {
	total := len(items)
	if items == nil {
		items = []T{}
	}
	resp := CreateSuccessResponse(items)
	resp.Meta.Total = &total
	return resp
}

func RespondError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, CreateErrorResponse(code, message))
}

func RespondSuccess(c *gin.Context, status int, data any) {
	c.JSON(status, CreateSuccessResponse(data))
}
