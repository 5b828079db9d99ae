package docsai

import (
	"context"
	"errors"
	"time"

	"github.com/docs2ai/gateway/internal/domain/accounting"
	domain "github.com/docs2ai/gateway/internal/domain/docsai"
	"github.com/docs2ai/gateway/internal/domain/expense"
	"github.com/docs2ai/gateway/internal/domain/shared"
	infra "github.com/docs2ai/gateway/internal/infrastructure/docsai"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UploadService relays scanned documents to Docs2AI and records the outcome
// on the originating accounting record
type UploadService struct {
	params      domain.ParamRepository
	gateway     Gateway
	entryRepo   accounting.EntryRepository
	expenseRepo expense.ExpenseRepository
	attempts    domain.UploadAttemptRepository
	logger      *zap.Logger
}

// NewUploadService creates a new UploadService
func NewUploadService(
	params domain.ParamRepository,
	gateway Gateway,
	entryRepo accounting.EntryRepository,
	expenseRepo expense.ExpenseRepository,
	attempts domain.UploadAttemptRepository,
	logger *zap.Logger,
) *UploadService {
	return &UploadService{
		params:      params,
		gateway:     gateway,
		entryRepo:   entryRepo,
		expenseRepo: expenseRepo,
		attempts:    attempts,
		logger:      logger.Named("docsai-upload"),
	}
}

// Upload sends a batch of documents sequentially. Files succeed or fail
// independently; the first success flags the target entry as uploaded.
// Only a batch with zero successes is an error.
func (s *UploadService) Upload(ctx context.Context, req UploadRequest) (*UploadResult, error) {
	if len(req.Files) == 0 {
		return nil, shared.NewValidationError("No documents provided")
	}

	settings, err := loadSettings(ctx, s.params)
	if err != nil {
		return nil, err
	}
	if !settings.Configured() {
		return nil, shared.ErrNotConfigured
	}

	entry, err := s.resolveTarget(ctx, req)
	if err != nil {
		return nil, err
	}

	result := &UploadResult{
		BatchID: uuid.New().String(),
		Files:   make([]FileResult, 0, len(req.Files)),
	}

	for _, file := range req.Files {
		attempt := &domain.UploadAttempt{
			BatchID:  result.BatchID,
			Filename: file.Filename,
			Status:   domain.AttemptPending,
		}

		mime, err := domain.ResolveMime(file.Filename, file.Content)
		if err == nil {
			attempt.Mimetype = mime
			err = s.gateway.SendFile(ctx, settings.APIKey, settings.FolderID, infra.Document{
				Filename: file.Filename,
				Mimetype: mime,
				Content:  file.Content,
			}, settings.ReturnURL, req.Target)
		}

		if err != nil {
			attempt.MarkFailed(err.Error())
			result.FailedCount++
			result.Files = append(result.Files, FileResult{
				Filename: file.Filename,
				Status:   string(domain.AttemptFailed),
				Error:    err.Error(),
			})
			s.logger.Warn("Document upload failed",
				zap.String("batch_id", result.BatchID),
				zap.String("filename", file.Filename),
				zap.Error(err),
			)
		} else {
			attempt.MarkSuccess()
			result.SuccessCount++
			result.Files = append(result.Files, FileResult{
				Filename: file.Filename,
				Status:   string(domain.AttemptSuccess),
			})
			if entry != nil && !entry.DocsAIUploaded {
				entry.MarkUploaded(time.Now())
				if err := s.entryRepo.Save(ctx, entry); err != nil {
					return nil, err
				}
			}
		}

		if err := s.attempts.Save(ctx, attempt); err != nil {
			return nil, err
		}
	}

	if result.SuccessCount == 0 {
		return result, shared.NewValidationError("All documents failed to upload")
	}
	return result, nil
}

// resolveTarget loads the entry whose upload flag should flip. Expense
// targets flag their linked entry; an expense without one is accepted but
// nothing gets flagged.
func (s *UploadService) resolveTarget(ctx context.Context, req UploadRequest) (*accounting.Entry, error) {
	switch req.Target {
	case domain.TargetVendorBill:
		if req.EntryID == 0 {
			return nil, shared.NewValidationError("entry_id is required for vendor uploads")
		}
		entry, err := s.entryRepo.FindByID(ctx, req.EntryID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewNotFoundError("Entry with ID %d not found", req.EntryID)
			}
			return nil, err
		}
		if !entry.IsVendorBill() {
			return nil, shared.NewValidationError("Entry is not a vendor bill")
		}
		return entry, nil

	case domain.TargetExpense:
		if req.ExpenseID == 0 {
			return nil, shared.NewValidationError("expense_id is required for expense uploads")
		}
		exp, err := s.expenseRepo.FindByID(ctx, req.ExpenseID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewNotFoundError("Expense with ID %d not found", req.ExpenseID)
			}
			return nil, err
		}
		if exp.EntryID == 0 {
			return nil, nil
		}
		entry, err := s.entryRepo.FindByID(ctx, exp.EntryID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, nil
			}
			return nil, err
		}
		return entry, nil

	default:
		return nil, shared.NewValidationError("Invalid upload type: " + string(req.Target))
	}
}
