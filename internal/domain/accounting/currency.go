package accounting

import (
	"strings"
	"time"

	"github.com/docs2ai/gateway/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Currency is an ISO currency usable on entries and expenses.
// Unknown codes are created on demand; disabled ones are reactivated.
type Currency struct {
	shared.BaseEntity
	Name          string          `gorm:"type:varchar(10);not null;uniqueIndex"`
	Symbol        string          `gorm:"type:varchar(10)"`
	Rounding      decimal.Decimal `gorm:"type:decimal(12,6);not null;default:0.01"`
	DecimalPlaces int             `gorm:"not null;default:2"`
	Active        bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Currency) TableName() string {
	return "currencies"
}

// NewCurrency creates an active currency with default precision
func NewCurrency(code string) (*Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, shared.NewValidationError("Currency code is required")
	}
	return &Currency{
		Name:          code,
		Symbol:        code,
		Rounding:      decimal.NewFromFloat(0.01),
		DecimalPlaces: 2,
		Active:        true,
	}, nil
}

// Reactivate turns an archived currency back on
func (c *Currency) Reactivate() {
	if !c.Active {
		c.Active = true
		c.UpdatedAt = time.Now()
	}
}
