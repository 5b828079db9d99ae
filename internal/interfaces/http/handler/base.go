package handler

import (
	"net/http"

	"github.com/docs2ai/gateway/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// BaseHandler provides the response envelope helpers shared by all handlers
type BaseHandler struct{}

// List sends a collection envelope
func (h *BaseHandler) List(c *gin.Context, data any, count int, total int64) {
	c.JSON(http.StatusOK, dto.NewListResponse(data, count, total))
}

// OK sends a mutation envelope with status 200
func (h *BaseHandler) OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, dto.NewMutationResponse(message, data))
}

// Created sends a mutation envelope with status 201
func (h *BaseHandler) Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, dto.NewMutationResponse(message, data))
}

// Error translates any error into the error envelope
func (h *BaseHandler) Error(c *gin.Context, err error) {
	status, message := dto.MapError(err)
	c.JSON(status, dto.NewErrorResponse(message))
}

// BadRequest sends a 400 error envelope with a literal message
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(message))
}
