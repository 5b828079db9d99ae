package docsai

import (
	"context"
	"errors"
	"testing"

	domain "github.com/docs2ai/gateway/internal/domain/docsai"
	infra "github.com/docs2ai/gateway/internal/infrastructure/docsai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSettingsService(params *memParams) (*SettingsService, *MockGateway) {
	gateway := new(MockGateway)
	return NewSettingsService(params, gateway, zap.NewNop()), gateway
}

func TestGetSettings(t *testing.T) {
	service, _ := newSettingsService(newMemParams(map[string]string{
		domain.ParamAPIKey:      "api-key",
		domain.ParamFolderID:    "folder-1",
		domain.ParamFolderName:  "Invoices",
		domain.ParamScannerLink: "https://web.docs2ai.com/scan/folder-1",
	}))

	got, err := service.GetSettings(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "api-key", got.APIKey)
	assert.Equal(t, "folder-1", got.FolderID)
	assert.Equal(t, "Invoices", got.FolderName)
	assert.Equal(t, "https://web.docs2ai.com/scan/folder-1", got.ScannerLink)
	assert.Empty(t, got.ReturnURL)
}

func TestSaveSettings(t *testing.T) {
	t.Run("new folder is validated and cached fields stored", func(t *testing.T) {
		params := newMemParams(map[string]string{domain.ParamAPIKey: "old-key"})
		service, gateway := newSettingsService(params)
		gateway.On("GetScannerLink", mock.Anything, "new-key", "folder-9").
			Return(&infra.ScannerLink{Status: "success", FolderName: "Receipts", ScannerLink: "https://web.docs2ai.com/scan/folder-9"}, nil)

		got, err := service.SaveSettings(context.Background(), SaveSettingsRequest{
			APIKey:    "new-key",
			FolderID:  "folder-9",
			ReturnURL: "https://erp.example.com/docs2ai/callback",
		})

		require.NoError(t, err)
		assert.Equal(t, "new-key", got.APIKey)
		assert.Equal(t, "folder-9", got.FolderID)
		assert.Equal(t, "Receipts", got.FolderName)
		assert.Equal(t, "https://web.docs2ai.com/scan/folder-9", got.ScannerLink)
		assert.Equal(t, "https://erp.example.com/docs2ai/callback", got.ReturnURL)
	})

	t.Run("unchanged folder skips validation", func(t *testing.T) {
		params := newMemParams(map[string]string{
			domain.ParamAPIKey:   "old-key",
			domain.ParamFolderID: "folder-1",
		})
		service, gateway := newSettingsService(params)

		got, err := service.SaveSettings(context.Background(), SaveSettingsRequest{
			APIKey:   "rotated-key",
			FolderID: "folder-1",
		})

		require.NoError(t, err)
		assert.Equal(t, "rotated-key", got.APIKey)
		gateway.AssertNotCalled(t, "GetScannerLink")
	})

	t.Run("unknown folder keeps the previous one and surfaces the service message", func(t *testing.T) {
		params := newMemParams(map[string]string{
			domain.ParamAPIKey:   "api-key",
			domain.ParamFolderID: "folder-1",
		})
		service, gateway := newSettingsService(params)
		gateway.On("GetScannerLink", mock.Anything, "api-key", "missing").
			Return(nil, &infra.FolderNotFoundError{Message: "Folder 'missing' does not exist"})

		_, err := service.SaveSettings(context.Background(), SaveSettingsRequest{
			APIKey:   "api-key",
			FolderID: "missing",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Folder validation failed: Folder 'missing' does not exist")
		assert.Equal(t, "folder-1", params.values[domain.ParamFolderID])
	})

	t.Run("bare not-found errors still read as folder validation failures", func(t *testing.T) {
		params := newMemParams(map[string]string{
			domain.ParamAPIKey:   "api-key",
			domain.ParamFolderID: "folder-1",
		})
		service, gateway := newSettingsService(params)
		gateway.On("GetScannerLink", mock.Anything, "api-key", "missing").Return(nil, infra.ErrFolderNotFound)

		_, err := service.SaveSettings(context.Background(), SaveSettingsRequest{
			APIKey:   "api-key",
			FolderID: "missing",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Folder validation failed: Folder not found")
		assert.Equal(t, "folder-1", params.values[domain.ParamFolderID])
	})

	t.Run("other validation failures carry the cause", func(t *testing.T) {
		params := newMemParams(map[string]string{domain.ParamAPIKey: "api-key"})
		service, gateway := newSettingsService(params)
		gateway.On("GetScannerLink", mock.Anything, "api-key", "folder-9").
			Return(nil, errors.New("docs2ai: folder validation failed: quota exceeded"))

		_, err := service.SaveSettings(context.Background(), SaveSettingsRequest{
			APIKey:   "api-key",
			FolderID: "folder-9",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Could not validate the Docs2AI folder")
		assert.Contains(t, err.Error(), "quota exceeded")
	})

	t.Run("clearing the folder clears the cached fields", func(t *testing.T) {
		params := newMemParams(map[string]string{
			domain.ParamAPIKey:      "api-key",
			domain.ParamFolderID:    "folder-1",
			domain.ParamFolderName:  "Invoices",
			domain.ParamScannerLink: "https://web.docs2ai.com/scan/folder-1",
		})
		service, gateway := newSettingsService(params)

		got, err := service.SaveSettings(context.Background(), SaveSettingsRequest{APIKey: "api-key"})

		require.NoError(t, err)
		assert.Empty(t, got.FolderID)
		assert.Empty(t, got.FolderName)
		assert.Empty(t, got.ScannerLink)
		gateway.AssertNotCalled(t, "GetScannerLink")
	})

	t.Run("folder without api key is stored unvalidated", func(t *testing.T) {
		params := newMemParams(nil)
		service, gateway := newSettingsService(params)

		got, err := service.SaveSettings(context.Background(), SaveSettingsRequest{FolderID: "folder-9"})

		require.NoError(t, err)
		assert.Equal(t, "folder-9", got.FolderID)
		assert.Empty(t, got.FolderName)
		gateway.AssertNotCalled(t, "GetScannerLink")
	})
}
