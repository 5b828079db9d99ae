package handler

import (
	"io"
	"mime/multipart"
	"strconv"

	"github.com/docs2ai/gateway/internal/application/docsai"
	domain "github.com/docs2ai/gateway/internal/domain/docsai"
	"github.com/docs2ai/gateway/internal/domain/shared"
	"github.com/gin-gonic/gin"
)

// UploadHandler serves the batch document upload endpoint
type UploadHandler struct {
	BaseHandler
	uploadService *docsai.UploadService
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(uploadService *docsai.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// RegisterRoutes registers upload routes on the API group
func (h *UploadHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/uploads", h.Upload)
}

// Upload relays multipart documents to the scanning service. Form fields:
// type (vendor|expenses), entry_id or expense_id, and one or more files
// under "documents".
func (h *UploadHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		h.BadRequest(c, "Invalid multipart payload")
		return
	}

	req := docsai.UploadRequest{
		Target: domain.TargetKind(c.PostForm("type")),
	}
	if req.EntryID, err = parseFormID(c.PostForm("entry_id")); err != nil {
		h.Error(c, err)
		return
	}
	if req.ExpenseID, err = parseFormID(c.PostForm("expense_id")); err != nil {
		h.Error(c, err)
		return
	}

	files := form.File["documents"]
	if len(files) == 0 {
		files = form.File["document"]
	}
	for _, header := range files {
		content, err := readUpload(header)
		if err != nil {
			h.BadRequest(c, "Could not read uploaded file "+header.Filename)
			return
		}
		req.Files = append(req.Files, docsai.FileInput{
			Filename: header.Filename,
			Content:  content,
		})
	}

	result, err := h.uploadService.Upload(c.Request.Context(), req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, "Documents uploaded successfully", result)
}

func readUpload(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

// parseFormID reads an optional numeric form value
func parseFormID(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, shared.NewValidationError("Invalid id: " + raw)
	}
	return id, nil
}
