package docsai

import (
	"context"
	"errors"
	"testing"

	infra "github.com/docs2ai/gateway/internal/infrastructure/docsai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newStatusService(params *memParams) (*StatusService, *MockGateway) {
	gateway := new(MockGateway)
	return NewStatusService(params, gateway, zap.NewNop()), gateway
}

func TestGetStatus(t *testing.T) {
	t.Run("maps the polled state", func(t *testing.T) {
		service, gateway := newStatusService(configuredParams())
		gateway.On("GetProgressStatus", mock.Anything, "api-key", "folder-1").
			Return(&infra.ProgressStatus{Success: true, Message: "ok", TotalPending: 3, IsRunning: true}, nil)

		got := service.GetStatus(context.Background())

		assert.True(t, got.Success)
		assert.Equal(t, 3, got.TotalPending)
		assert.True(t, got.IsRunning)
	})

	t.Run("unconfigured integration degrades to a message", func(t *testing.T) {
		service, gateway := newStatusService(newMemParams(nil))

		got := service.GetStatus(context.Background())

		assert.False(t, got.Success)
		assert.Equal(t, "Docs2AI is not configured", got.Message)
		assert.Zero(t, got.TotalPending)
		gateway.AssertNotCalled(t, "GetProgressStatus")
	})

	t.Run("an unreachable service degrades to a message", func(t *testing.T) {
		service, gateway := newStatusService(configuredParams())
		gateway.On("GetProgressStatus", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("dial tcp: timeout"))

		got := service.GetStatus(context.Background())

		assert.False(t, got.Success)
		assert.Equal(t, "Docs2AI is unreachable", got.Message)
		assert.Zero(t, got.TotalPending)
		assert.False(t, got.IsRunning)
	})
}
