package persistence

import (
	"github.com/docs2ai/gateway/internal/domain/shared"
	"gorm.io/gorm"
)

// applyWindow applies the list window and a newest-first order
func applyWindow(query *gorm.DB, filter shared.Filter) *gorm.DB {
	limit := filter.Limit
	if limit <= 0 {
		limit = shared.DefaultLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = shared.DefaultOffset
	}
	return query.Order("id DESC").Limit(limit).Offset(offset)
}
