package docsai

import (
	"context"

	domain "github.com/docs2ai/gateway/internal/domain/docsai"
	infra "github.com/docs2ai/gateway/internal/infrastructure/docsai"
)

// Gateway is what the services need from the Docs2AI HTTP client
type Gateway interface {
	SendFile(ctx context.Context, apiKey, folderID string, doc infra.Document, returnURL string, kind domain.TargetKind) error
	GetScannerLink(ctx context.Context, apiKey, folderID string) (*infra.ScannerLink, error)
	GetProgressStatus(ctx context.Context, apiKey, folderID string) (*infra.ProgressStatus, error)
}

// loadSettings reads the integration parameters from the key/value store
func loadSettings(ctx context.Context, params domain.ParamRepository) (domain.Settings, error) {
	var s domain.Settings
	var err error
	if s.APIKey, err = params.Get(ctx, domain.ParamAPIKey); err != nil {
		return s, err
	}
	if s.FolderID, err = params.Get(ctx, domain.ParamFolderID); err != nil {
		return s, err
	}
	if s.FolderName, err = params.Get(ctx, domain.ParamFolderName); err != nil {
		return s, err
	}
	if s.ScannerLink, err = params.Get(ctx, domain.ParamScannerLink); err != nil {
		return s, err
	}
	if s.ReturnURL, err = params.Get(ctx, domain.ParamReturnURL); err != nil {
		return s, err
	}
	return s, nil
}
