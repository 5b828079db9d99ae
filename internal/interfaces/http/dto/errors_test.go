package dto

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/docs2ai/gateway/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation errors are bad requests",
			err:        shared.NewValidationError("Name is required"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Name is required",
		},
		{
			name:       "not found maps to 404",
			err:        shared.NewNotFoundError("Vendor with ID 9 not found"),
			wantStatus: http.StatusNotFound,
			wantMsg:    "Vendor with ID 9 not found",
		},
		{
			name:       "unknown domain codes default to 400",
			err:        shared.NewDomainError("SOMETHING_ODD", "odd"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "odd",
		},
		{
			name:       "wrapped domain errors unwrap",
			err:        fmt.Errorf("creating vendor: %w", shared.NewNotFoundError("Vendor with ID 9 not found")),
			wantStatus: http.StatusNotFound,
			wantMsg:    "Vendor with ID 9 not found",
		},
		{
			name:       "plain errors never leak their message",
			err:        errors.New("pq: connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := MapError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
