package persistence

import (
	"context"

	"github.com/docs2ai/gateway/internal/domain/docsai"
	"gorm.io/gorm"
)

// GormAttachmentRepository implements AttachmentRepository using GORM
type GormAttachmentRepository struct {
	db *gorm.DB
}

// NewGormAttachmentRepository creates a new GormAttachmentRepository
func NewGormAttachmentRepository(db *gorm.DB) *GormAttachmentRepository {
	return &GormAttachmentRepository{db: db}
}

// Save creates or updates an attachment
func (r *GormAttachmentRepository) Save(ctx context.Context, a *docsai.Attachment) error {
	return r.db.WithContext(ctx).Save(a).Error
}

// FindByRecord lists attachments bound to one record
func (r *GormAttachmentRepository) FindByRecord(ctx context.Context, resModel string, resID int64) ([]docsai.Attachment, error) {
	var attachments []docsai.Attachment
	if err := r.db.WithContext(ctx).
		Where("res_model = ? AND res_id = ?", resModel, resID).
		Order("id ASC").
		Find(&attachments).Error; err != nil {
		return nil, err
	}
	return attachments, nil
}

// Ensure GormAttachmentRepository implements AttachmentRepository
var _ docsai.AttachmentRepository = (*GormAttachmentRepository)(nil)

// GormUploadAttemptRepository implements UploadAttemptRepository using GORM
type GormUploadAttemptRepository struct {
	db *gorm.DB
}

// NewGormUploadAttemptRepository creates a new GormUploadAttemptRepository
func NewGormUploadAttemptRepository(db *gorm.DB) *GormUploadAttemptRepository {
	return &GormUploadAttemptRepository{db: db}
}

// Save creates or updates an attempt row
func (r *GormUploadAttemptRepository) Save(ctx context.Context, a *docsai.UploadAttempt) error {
	return r.db.WithContext(ctx).Save(a).Error
}

// FindByBatch lists the attempts of one batch in insertion order
func (r *GormUploadAttemptRepository) FindByBatch(ctx context.Context, batchID string) ([]docsai.UploadAttempt, error) {
	var attempts []docsai.UploadAttempt
	if err := r.db.WithContext(ctx).
		Where("batch_id = ?", batchID).
		Order("id ASC").
		Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

// Ensure GormUploadAttemptRepository implements UploadAttemptRepository
var _ docsai.UploadAttemptRepository = (*GormUploadAttemptRepository)(nil)
