package catalog

import (
	"github.com/docs2ai/gateway/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProductType distinguishes stockable goods from services
type ProductType string

const (
	ProductTypeConsumable ProductType = "consu"
	ProductTypeService    ProductType = "service"
)

// DefaultUoM is the unit applied when the caller names none
const DefaultUoM = "Units"

// Product is a catalog item. Expense categories are products flagged
// can_be_expensed, following the accounting convention.
type Product struct {
	shared.BaseEntity
	Name          string          `gorm:"type:varchar(200);not null;index"`
	Description   string          `gorm:"type:text"`
	DefaultCode   string          `gorm:"type:varchar(50);index"`
	Type          ProductType     `gorm:"type:varchar(10);not null;default:'service'"`
	CategoryName  string          `gorm:"type:varchar(100)"`
	StandardPrice decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	UoM           string          `gorm:"column:uom;type:varchar(50);not null;default:'Units'"`
	CanBeExpensed bool            `gorm:"not null;default:false;index"`
	PurchaseOK    bool            `gorm:"column:purchase_ok;not null;default:true"`
	Company       string          `gorm:"type:varchar(100)"`
	Active        bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewExpenseCategory creates an expensable service product with catalog defaults
func NewExpenseCategory(name string, productType ProductType) (*Product, error) {
	if name == "" {
		return nil, shared.NewValidationError("Name is required")
	}
	switch productType {
	case ProductTypeConsumable, ProductTypeService:
	case "":
		productType = ProductTypeService
	default:
		return nil, shared.NewValidationError("Invalid product type")
	}
	return &Product{
		Name:          name,
		Type:          productType,
		UoM:           DefaultUoM,
		CanBeExpensed: true,
		PurchaseOK:    true,
		Active:        true,
	}, nil
}
