package docsai

import (
	"context"

	domain "github.com/docs2ai/gateway/internal/domain/docsai"
	"go.uber.org/zap"
)

// StatusService polls the document processing state. It never raises to the
// HTTP caller; every failure degrades to a failure envelope with zeros.
type StatusService struct {
	params  domain.ParamRepository
	gateway Gateway
	logger  *zap.Logger
}

// NewStatusService creates a new StatusService
func NewStatusService(params domain.ParamRepository, gateway Gateway, logger *zap.Logger) *StatusService {
	return &StatusService{params: params, gateway: gateway, logger: logger.Named("docsai-status")}
}

// GetStatus returns the folder's processing queue state
func (s *StatusService) GetStatus(ctx context.Context) *StatusResponse {
	settings, err := loadSettings(ctx, s.params)
	if err != nil {
		s.logger.Error("Could not load settings", zap.Error(err))
		return &StatusResponse{Message: "Could not load Docs2AI settings"}
	}
	if !settings.Configured() {
		return &StatusResponse{Message: "Docs2AI is not configured"}
	}

	status, err := s.gateway.GetProgressStatus(ctx, settings.APIKey, settings.FolderID)
	if err != nil {
		s.logger.Warn("Progress poll failed", zap.Error(err))
		return &StatusResponse{Message: "Docs2AI is unreachable"}
	}
	return &StatusResponse{
		Success:      status.Success,
		Message:      status.Message,
		TotalPending: status.TotalPending,
		IsRunning:    status.IsRunning,
	}
}
