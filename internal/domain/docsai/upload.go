package docsai

import (
	"context"
	"time"

	"github.com/docs2ai/gateway/internal/domain/shared"
)

// TargetKind says what record a scanned document belongs to
type TargetKind string

const (
	TargetVendorBill TargetKind = "vendor"
	TargetExpense    TargetKind = "expenses"
)

// AttemptStatus is the per-file outcome of a batch upload
type AttemptStatus string

const (
	AttemptPending AttemptStatus = "pending"
	AttemptSuccess AttemptStatus = "success"
	AttemptFailed  AttemptStatus = "failed"
)

// UploadAttempt records one file of an upload batch. Rows start pending
// and move to success or failed exactly once.
type UploadAttempt struct {
	shared.BaseEntity
	BatchID      string        `gorm:"type:varchar(36);not null;index"`
	Filename     string        `gorm:"type:varchar(255);not null"`
	Mimetype     string        `gorm:"type:varchar(100)"`
	Status       AttemptStatus `gorm:"type:varchar(10);not null;default:'pending'"`
	ErrorMessage string        `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (UploadAttempt) TableName() string {
	return "upload_attempts"
}

// MarkSuccess finishes a pending attempt successfully
func (a *UploadAttempt) MarkSuccess() {
	if a.Status != AttemptPending {
		return
	}
	a.Status = AttemptSuccess
	a.UpdatedAt = time.Now()
}

// MarkFailed finishes a pending attempt with an error message
func (a *UploadAttempt) MarkFailed(msg string) {
	if a.Status != AttemptPending {
		return
	}
	a.Status = AttemptFailed
	a.ErrorMessage = msg
	a.UpdatedAt = time.Now()
}

// UploadAttemptRepository persists batch traceability rows
type UploadAttemptRepository interface {
	// Save creates or updates an attempt row
	Save(ctx context.Context, a *UploadAttempt) error

	// FindByBatch lists the attempts of one batch in insertion order
	FindByBatch(ctx context.Context, batchID string) ([]UploadAttempt, error)
}
