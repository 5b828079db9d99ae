package docsai

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/docs2ai/gateway/internal/domain/docsai"
	"github.com/docs2ai/gateway/internal/domain/shared"
	infra "github.com/docs2ai/gateway/internal/infrastructure/docsai"
	"go.uber.org/zap"
)

// SettingsService reads and saves the integration configuration
type SettingsService struct {
	params  domain.ParamRepository
	gateway Gateway
	logger  *zap.Logger
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(params domain.ParamRepository, gateway Gateway, logger *zap.Logger) *SettingsService {
	return &SettingsService{params: params, gateway: gateway, logger: logger.Named("docsai-settings")}
}

// GetSettings returns the stored integration settings
func (s *SettingsService) GetSettings(ctx context.Context) (*SettingsResponse, error) {
	settings, err := loadSettings(ctx, s.params)
	if err != nil {
		return nil, err
	}
	return &SettingsResponse{
		APIKey:      settings.APIKey,
		FolderID:    settings.FolderID,
		FolderName:  settings.FolderName,
		ScannerLink: settings.ScannerLink,
		ReturnURL:   settings.ReturnURL,
	}, nil
}

// SaveSettings persists the integration settings. A changed folder id is
// validated against the service before it replaces the stored one; on any
// validation failure the previous folder id stays in place.
func (s *SettingsService) SaveSettings(ctx context.Context, req SaveSettingsRequest) (*SettingsResponse, error) {
	previous, err := loadSettings(ctx, s.params)
	if err != nil {
		return nil, err
	}

	if err := s.params.Set(ctx, domain.ParamAPIKey, req.APIKey); err != nil {
		return nil, err
	}
	if err := s.params.Set(ctx, domain.ParamReturnURL, req.ReturnURL); err != nil {
		return nil, err
	}

	if req.FolderID != previous.FolderID {
		if err := s.applyFolderChange(ctx, req.APIKey, req.FolderID); err != nil {
			return nil, err
		}
	}
	return s.GetSettings(ctx)
}

// applyFolderChange validates and persists a new folder id. Clearing the
// folder also clears the cached folder name and scanner link without a call.
func (s *SettingsService) applyFolderChange(ctx context.Context, apiKey, folderID string) error {
	if folderID == "" {
		for _, key := range []string{domain.ParamFolderID, domain.ParamFolderName, domain.ParamScannerLink} {
			if err := s.params.Delete(ctx, key); err != nil {
				return err
			}
		}
		return nil
	}

	if apiKey == "" {
		return s.params.Set(ctx, domain.ParamFolderID, folderID)
	}

	link, err := s.gateway.GetScannerLink(ctx, apiKey, folderID)
	if err != nil {
		s.logger.Warn("Folder validation failed",
			zap.String("folder_id", folderID),
			zap.Error(err),
		)
		if errors.Is(err, infra.ErrFolderNotFound) {
			msg := "Folder not found"
			var notFound *infra.FolderNotFoundError
			if errors.As(err, &notFound) {
				msg = notFound.Message
			}
			return shared.NewValidationError(fmt.Sprintf("Folder validation failed: %s. Folder ID was not saved.", msg))
		}
		return shared.NewValidationError("Could not validate the Docs2AI folder: " + err.Error())
	}

	if err := s.params.Set(ctx, domain.ParamFolderID, folderID); err != nil {
		return err
	}
	if err := s.params.Set(ctx, domain.ParamFolderName, link.FolderName); err != nil {
		return err
	}
	return s.params.Set(ctx, domain.ParamScannerLink, link.ScannerLink)
}
