package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/docs2ai/gateway/internal/domain/docsai"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ConfigParam is one persisted key/value setting
type ConfigParam struct {
	Key       string `gorm:"primaryKey;type:varchar(100)"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (ConfigParam) TableName() string {
	return "config_params"
}

// GormParamRepository implements ParamRepository using GORM
type GormParamRepository struct {
	db *gorm.DB
}

// NewGormParamRepository creates a new GormParamRepository
func NewGormParamRepository(db *gorm.DB) *GormParamRepository {
	return &GormParamRepository{db: db}
}

// Get returns the value for a key, empty string when unset
func (r *GormParamRepository) Get(ctx context.Context, key string) (string, error) {
	var p ConfigParam
	if err := r.db.WithContext(ctx).First(&p, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return p.Value, nil
}

// Set stores a value, overwriting any previous one
func (r *GormParamRepository) Set(ctx context.Context, key, value string) error {
	p := ConfigParam{Key: key, Value: value, UpdatedAt: time.Now()}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&p).Error
}

// Delete removes a key; deleting an absent key is not an error
func (r *GormParamRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Delete(&ConfigParam{}, "key = ?", key).Error
}

// Ensure GormParamRepository implements ParamRepository
var _ docsai.ParamRepository = (*GormParamRepository)(nil)
