package docsai

import (
	domain "github.com/docs2ai/gateway/internal/domain/docsai"
)

// FileInput is one document of an upload batch
type FileInput struct {
	Filename string
	Content  []byte
}

// UploadRequest is a batch of documents aimed at one record
type UploadRequest struct {
	Target    domain.TargetKind
	EntryID   int64
	ExpenseID int64
	Files     []FileInput
}

// FileResult is the outcome of one document
type FileResult struct {
	Filename string `json:"filename"`
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
}

// UploadResult summarizes a batch
type UploadResult struct {
	BatchID      string       `json:"batch_id"`
	SuccessCount int          `json:"success_count"`
	FailedCount  int          `json:"failed_count"`
	Files        []FileResult `json:"files"`
}

// SettingsResponse is the API shape of the integration settings
type SettingsResponse struct {
	APIKey      string `json:"api_key"`
	FolderID    string `json:"folder_id"`
	FolderName  string `json:"folder_name"`
	ScannerLink string `json:"scanner_link"`
	ReturnURL   string `json:"return_url"`
}

// SaveSettingsRequest is the payload for updating the integration settings
type SaveSettingsRequest struct {
	APIKey    string `json:"api_key"`
	FolderID  string `json:"folder_id"`
	ReturnURL string `json:"return_url"`
}

// StatusResponse is the processing state reported to the frontend
type StatusResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	TotalPending int    `json:"total_pending"`
	IsRunning    bool   `json:"is_running"`
}
