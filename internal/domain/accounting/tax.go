package accounting

import (
	"github.com/docs2ai/gateway/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TaxAmountType controls how a tax amount is interpreted
type TaxAmountType string

const (
	TaxAmountTypePercent TaxAmountType = "percent"
	TaxAmountTypeFixed   TaxAmountType = "fixed"
)

// TaxUse restricts a tax to one side of the ledger
type TaxUse string

const (
	TaxUseSale     TaxUse = "sale"
	TaxUsePurchase TaxUse = "purchase"
	TaxUseNone     TaxUse = "none"
)

// RepartitionType distinguishes the base row from the tax row
type RepartitionType string

const (
	RepartitionBase RepartitionType = "base"
	RepartitionTax  RepartitionType = "tax"
)

// RepartitionDocument selects invoice or refund distribution
type RepartitionDocument string

const (
	RepartitionInvoice RepartitionDocument = "invoice"
	RepartitionRefund  RepartitionDocument = "refund"
)

// Tax is a configured tax with its accounting distribution
type Tax struct {
	shared.BaseEntity
	Name        string          `gorm:"type:varchar(100);not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	AmountType  TaxAmountType   `gorm:"type:varchar(10);not null;default:'percent'"`
	TypeTaxUse  TaxUse          `gorm:"type:varchar(10);not null;default:'purchase';index"`
	Company     string          `gorm:"type:varchar(100)"`
	Active      bool            `gorm:"not null;default:true"`
	Repartition []TaxRepartitionLine `gorm:"foreignKey:TaxID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Tax) TableName() string {
	return "taxes"
}

// TaxRepartitionLine distributes a tax over accounts
type TaxRepartitionLine struct {
	shared.BaseEntity
	TaxID         int64               `gorm:"not null;index"`
	Document      RepartitionDocument `gorm:"type:varchar(10);not null"`
	Repartition   RepartitionType     `gorm:"type:varchar(5);not null"`
	FactorPercent decimal.Decimal     `gorm:"type:decimal(8,4);not null;default:100"`
	AccountID     int64
}

// TableName returns the table name for GORM
func (TaxRepartitionLine) TableName() string {
	return "tax_repartition_lines"
}

// NewTax creates a tax with the default base+tax repartition for invoices
// and refunds. accountID may be zero when no posting account is known.
func NewTax(name string, amount decimal.Decimal, amountType TaxAmountType, use TaxUse, accountID int64) (*Tax, error) {
	if name == "" {
		return nil, shared.NewValidationError("Tax name is required")
	}
	switch amountType {
	case TaxAmountTypePercent, TaxAmountTypeFixed:
	default:
		return nil, shared.NewValidationError("Invalid tax amount type")
	}
	switch use {
	case TaxUseSale, TaxUsePurchase, TaxUseNone:
	default:
		return nil, shared.NewValidationError("Invalid tax use")
	}

	t := &Tax{
		Name:       name,
		Amount:     amount,
		AmountType: amountType,
		TypeTaxUse: use,
		Active:     true,
	}
	for _, doc := range []RepartitionDocument{RepartitionInvoice, RepartitionRefund} {
		t.Repartition = append(t.Repartition,
			TaxRepartitionLine{Document: doc, Repartition: RepartitionBase, FactorPercent: decimal.NewFromInt(100)},
			TaxRepartitionLine{Document: doc, Repartition: RepartitionTax, FactorPercent: decimal.NewFromInt(100), AccountID: accountID},
		)
	}
	return t, nil
}

// AmountOn computes the tax amount for the given untaxed base
func (t *Tax) AmountOn(base decimal.Decimal) decimal.Decimal {
	if t.AmountType == TaxAmountTypeFixed {
		return t.Amount
	}
	return base.Mul(t.Amount).Div(decimal.NewFromInt(100))
}
