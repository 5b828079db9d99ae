package docsai

import "context"

// Parameter keys for the Docs2AI integration
const (
	ParamAPIKey      = "docs2ai.api_key"
	ParamFolderID    = "docs2ai.folder_id"
	ParamFolderName  = "docs2ai.folder_name"
	ParamScannerLink = "docs2ai.scanner_link"
	ParamReturnURL   = "docs2ai.return_url"
)

// Settings is the current integration configuration
type Settings struct {
	APIKey      string `json:"api_key"`
	FolderID    string `json:"folder_id"`
	FolderName  string `json:"folder_name"`
	ScannerLink string `json:"scanner_link"`
	ReturnURL   string `json:"return_url"`
}

// Configured reports whether uploads can be attempted at all
func (s Settings) Configured() bool {
	return s.APIKey != "" && s.FolderID != ""
}

// ParamRepository is a persistent key/value store for integration settings
type ParamRepository interface {
	// Get returns the value for a key, empty string when unset
	Get(ctx context.Context, key string) (string, error)

	// Set stores a value, overwriting any previous one
	Set(ctx context.Context, key, value string) error

	// Delete removes a key; deleting an absent key is not an error
	Delete(ctx context.Context, key string) error
}
