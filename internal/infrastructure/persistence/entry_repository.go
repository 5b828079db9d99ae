package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/docs2ai/gateway/internal/domain/accounting"
	"github.com/docs2ai/gateway/internal/domain/shared"
	"gorm.io/gorm"
)

// sequencePrefixes are the document number prefixes per move type
var sequencePrefixes = map[accounting.MoveType]string{
	accounting.MoveTypeOutInvoice: "INV",
	accounting.MoveTypeOutRefund:  "RINV",
	accounting.MoveTypeInInvoice:  "BILL",
	accounting.MoveTypeInRefund:   "RBILL",
	accounting.MoveTypeInReceipt:  "RCPT",
}

// GormEntryRepository implements EntryRepository using GORM
type GormEntryRepository struct {
	db *gorm.DB
}

// NewGormEntryRepository creates a new GormEntryRepository
func NewGormEntryRepository(db *gorm.DB) *GormEntryRepository {
	return &GormEntryRepository{db: db}
}

// FindByID finds an entry with its lines
func (r *GormEntryRepository) FindByID(ctx context.Context, id int64) (*accounting.Entry, error) {
	var e accounting.Entry
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Preload("Lines.Taxes").
		First(&e, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// FindByMoveTypes lists entries whose move type is in the given set, newest first
func (r *GormEntryRepository) FindByMoveTypes(ctx context.Context, moveTypes []accounting.MoveType, filter shared.Filter) (shared.ListPage[accounting.Entry], error) {
	query := r.db.WithContext(ctx).Model(&accounting.Entry{}).Where("move_type IN ?", moveTypes)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return shared.ListPage[accounting.Entry]{}, err
	}

	var entries []accounting.Entry
	if err := applyWindow(query, filter).Preload("Lines").Preload("Lines.Taxes").Find(&entries).Error; err != nil {
		return shared.ListPage[accounting.Entry]{}, err
	}
	return shared.ListPage[accounting.Entry]{Items: entries, Total: total}, nil
}

// Save creates or updates an entry with its lines
func (r *GormEntryRepository) Save(ctx context.Context, entry *accounting.Entry) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(entry).Error
}

// NextSequence returns the next document number for a move type, e.g. BILL/2026/0042.
// The counter restarts each year; concurrent creators may burn a number, which
// is acceptable for display sequences.
func (r *GormEntryRepository) NextSequence(ctx context.Context, moveType accounting.MoveType) (string, error) {
	prefix, ok := sequencePrefixes[moveType]
	if !ok {
		return "", shared.NewValidationError(fmt.Sprintf("Invalid move type: %s", moveType))
	}

	year := time.Now().Year()
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&accounting.Entry{}).
		Where("move_type = ? AND created_at >= ?", moveType, start).
		Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%d/%04d", prefix, year, count+1), nil
}

// Ensure GormEntryRepository implements EntryRepository
var _ accounting.EntryRepository = (*GormEntryRepository)(nil)
