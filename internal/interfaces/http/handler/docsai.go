package handler

import (
	"net/http"

	"github.com/docs2ai/gateway/internal/application/docsai"
	"github.com/docs2ai/gateway/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DocsAIHandler serves the integration status, settings, and log relay
type DocsAIHandler struct {
	BaseHandler
	statusService   *docsai.StatusService
	settingsService *docsai.SettingsService
	logger          *zap.Logger
}

// NewDocsAIHandler creates a new DocsAIHandler
func NewDocsAIHandler(
	statusService *docsai.StatusService,
	settingsService *docsai.SettingsService,
	log *zap.Logger,
) *DocsAIHandler {
	return &DocsAIHandler{
		statusService:   statusService,
		settingsService: settingsService,
		logger:          log.Named("frontend"),
	}
}

// RegisterRoutes registers integration routes on the docs2ai group
func (h *DocsAIHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/status", h.Status)
	rg.GET("/settings", h.GetSettings)
	rg.PUT("/settings", h.SaveSettings)
	rg.POST("/ws/log", h.RelayLog)
}

// Status returns the document processing queue state. Failures degrade to a
// failure body, never to an error status.
func (h *DocsAIHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.statusService.GetStatus(c.Request.Context()))
}

// GetSettings returns the stored integration settings
func (h *DocsAIHandler) GetSettings(c *gin.Context) {
	resp, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, "Settings retrieved successfully", resp)
}

// SaveSettings updates the integration settings with folder validation
func (h *DocsAIHandler) SaveSettings(c *gin.Context) {
	var req docsai.SaveSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid JSON payload")
		return
	}
	resp, err := h.settingsService.SaveSettings(c.Request.Context(), req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, "Settings saved successfully", resp)
}

// logLine is one frontend log record to relay
type logLine struct {
	Level    string         `json:"level"`
	Message  string         `json:"message"`
	Metadata map[string]any `json:"metadata"`
}

// RelayLog writes a frontend log line into the server log at the requested
// level. Unknown levels fall back to info.
func (h *DocsAIHandler) RelayLog(c *gin.Context) {
	var line logLine
	if err := c.ShouldBindJSON(&line); err != nil {
		h.BadRequest(c, "Invalid JSON payload")
		return
	}

	level := logger.ParseLevel(line.Level)
	if level > zapcore.ErrorLevel {
		// relayed lines never terminate the process
		level = zapcore.ErrorLevel
	}

	fields := []zap.Field{zap.String("request_id", logger.GetRequestID(c.Request.Context()))}
	if len(line.Metadata) > 0 {
		fields = append(fields, zap.Any("metadata", line.Metadata))
	}
	if ce := h.logger.Check(level, line.Message); ce != nil {
		ce.Write(fields...)
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
