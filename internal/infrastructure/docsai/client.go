package docsai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	domain "github.com/docs2ai/gateway/internal/domain/docsai"
	"github.com/docs2ai/gateway/internal/infrastructure/config"
	"go.uber.org/zap"
)

// maxResponseSize limits response bodies to prevent memory exhaustion
const maxResponseSize = 1 * 1024 * 1024 // 1MB

// ErrFolderNotFound is returned when the service does not know the folder id
var ErrFolderNotFound = fmt.Errorf("docs2ai: folder not found")

// FolderNotFoundError carries the service's own message for an unknown
// folder. It matches ErrFolderNotFound through errors.Is.
type FolderNotFoundError struct {
	Message string
}

func (e *FolderNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrFolderNotFound, e.Message)
}

func (e *FolderNotFoundError) Unwrap() error { return ErrFolderNotFound }

// Client talks to the Docs2AI enterprise API. Uploads and status polls use
// separate HTTP clients because their timeout budgets differ.
type Client struct {
	baseURL      string
	uploadClient *http.Client
	statusClient *http.Client
	logger       *zap.Logger
}

// NewClient creates a new Docs2AI client
func NewClient(cfg *config.DocsAIConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		uploadClient: &http.Client{Timeout: cfg.UploadTimeout},
		statusClient: &http.Client{Timeout: cfg.StatusTimeout},
		logger:       logger.Named("docsai"),
	}
}

// Document is one file to relay
type Document struct {
	Filename string
	Mimetype string
	Content  []byte
}

// ScannerLink is the service's description of a folder
type ScannerLink struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	FolderName  string `json:"folder_name"`
	ScannerLink string `json:"scanner_link"`
}

// ProgressStatus is the document processing state of a folder
type ProgressStatus struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	TotalPending int    `json:"total_pending"`
	IsRunning    bool   `json:"is_running"`
}

// SendFile relays one document to the folder's intake endpoint. Any response
// other than 200 or 201 is an error carrying the response body as message.
// There is no retry; the caller decides what a failed file means.
func (c *Client) SendFile(ctx context.Context, apiKey, folderID string, doc Document, returnURL string, kind domain.TargetKind) error {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="document"; filename="%s"`, escapeQuotes(doc.Filename)))
	header.Set("Content-Type", doc.Mimetype)
	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("docs2ai: build multipart: %w", err)
	}
	if _, err := part.Write(doc.Content); err != nil {
		return fmt.Errorf("docs2ai: write document part: %w", err)
	}

	fields := map[string]string{
		"return_url":     returnURL,
		"info[platform]": "odoo",
	}
	if kind != "" {
		fields["type"] = string(kind)
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("docs2ai: write field %s: %w", name, err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("docs2ai: close multipart: %w", err)
	}

	url := fmt.Sprintf("%s/api/enterprise/%s/send-file-doc2ai", c.baseURL, folderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return fmt.Errorf("docs2ai: build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.uploadClient.Do(req)
	if err != nil {
		return fmt.Errorf("docs2ai: send file: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		c.logger.Warn("Upload rejected",
			zap.String("filename", doc.Filename),
			zap.Int("status", resp.StatusCode),
		)
		return fmt.Errorf("docs2ai: upload failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	c.logger.Info("Document relayed",
		zap.String("filename", doc.Filename),
		zap.Int("status", resp.StatusCode),
	)
	return nil
}

// GetScannerLink validates a folder id and returns its name and scanner URL.
// A 404 maps to a FolderNotFoundError carrying the service message; a 200
// whose body does not say success is an error carrying that message too.
func (c *Client) GetScannerLink(ctx context.Context, apiKey, folderID string) (*ScannerLink, error) {
	respBody, statusCode, err := c.get(ctx, apiKey, folderID, "get-scanner-link")
	if err != nil {
		return nil, err
	}
	if statusCode == http.StatusNotFound {
		notFound := &FolderNotFoundError{Message: "Folder not found"}
		var link ScannerLink
		if err := json.Unmarshal(respBody, &link); err == nil && link.Message != "" {
			notFound.Message = link.Message
		}
		return nil, notFound
	}

	var link ScannerLink
	if err := json.Unmarshal(respBody, &link); err != nil {
		return nil, fmt.Errorf("docs2ai: invalid scanner-link response: %w", err)
	}
	if statusCode != http.StatusOK || link.Status != "success" {
		msg := link.Message
		if msg == "" {
			msg = fmt.Sprintf("unexpected status %d", statusCode)
		}
		return nil, fmt.Errorf("docs2ai: folder validation failed: %s", msg)
	}
	return &link, nil
}

// GetProgressStatus polls the folder's processing queue. An OK response that
// is not valid JSON degrades to a zero-value status rather than an error.
func (c *Client) GetProgressStatus(ctx context.Context, apiKey, folderID string) (*ProgressStatus, error) {
	respBody, statusCode, err := c.get(ctx, apiKey, folderID, "get-progress-status")
	if err != nil {
		return nil, err
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("docs2ai: progress status failed with status %d", statusCode)
	}

	var status ProgressStatus
	if err := json.Unmarshal(respBody, &status); err != nil {
		c.logger.Warn("Malformed progress-status response", zap.Error(err))
		return &ProgressStatus{}, nil
	}
	return &status, nil
}

// get performs an authenticated GET against a folder endpoint
func (c *Client) get(ctx context.Context, apiKey, folderID, endpoint string) ([]byte, int, error) {
	url := fmt.Sprintf("%s/api/enterprise/%s/%s", c.baseURL, folderID, endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("docs2ai: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.statusClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("docs2ai: %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, 0, fmt.Errorf("docs2ai: read response: %w", err)
	}
	return respBody, resp.StatusCode, nil
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
