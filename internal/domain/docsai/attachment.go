package docsai

import (
	"context"

	"github.com/docs2ai/gateway/internal/domain/shared"
)

// ResModel names the record type an attachment hangs off
const (
	ResModelEntry   = "accounting.entry"
	ResModelExpense = "expense"
)

// Attachment is a stored document bound to a business record
type Attachment struct {
	shared.BaseEntity
	Name     string `gorm:"type:varchar(255);not null"`
	Mimetype string `gorm:"type:varchar(100)"`
	Datas    []byte `gorm:"type:bytea"`
	ResModel string `gorm:"type:varchar(50);not null;index:idx_attachment_res,priority:1"`
	ResID    int64  `gorm:"not null;index:idx_attachment_res,priority:2"`
}

// TableName returns the table name for GORM
func (Attachment) TableName() string {
	return "attachments"
}

// AttachmentRepository defines the interface for attachment persistence
type AttachmentRepository interface {
	// Save creates or updates an attachment
	Save(ctx context.Context, a *Attachment) error

	// FindByRecord lists attachments bound to one record
	FindByRecord(ctx context.Context, resModel string, resID int64) ([]Attachment, error)
}
