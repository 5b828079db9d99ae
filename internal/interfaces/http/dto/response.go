package dto

import (
	"strconv"

	"github.com/docs2ai/gateway/internal/domain/shared"
	"github.com/gin-gonic/gin"
)

// Envelope statuses
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ListResponse is the envelope for collection endpoints
type ListResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
	Total  int64  `json:"total"`
	Data   any    `json:"data"`
}

// MutationResponse is the envelope for create/update/delete endpoints
type MutationResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse is the envelope for failures
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// NewListResponse wraps a page of records
func NewListResponse(data any, count int, total int64) ListResponse {
	return ListResponse{Status: StatusSuccess, Count: count, Total: total, Data: data}
}

// NewMutationResponse wraps a mutated record with a human message
func NewMutationResponse(message string, data any) MutationResponse {
	return MutationResponse{Status: StatusSuccess, Message: message, Data: data}
}

// NewErrorResponse wraps a failure message
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Status: StatusError, Message: message}
}

// ParseFilter reads limit/offset query parameters. Values that are missing,
// non-numeric, or negative fall back to the defaults rather than erroring.
func ParseFilter(c *gin.Context) shared.Filter {
	filter := shared.DefaultFilter()
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			filter.Limit = v
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			filter.Offset = v
		}
	}
	return filter
}
