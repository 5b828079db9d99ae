package accounting

import "github.com/docs2ai/gateway/internal/domain/shared"

// AccountType is a coarse chart-of-accounts classification
type AccountType string

const (
	AccountTypeExpense AccountType = "expense"
	AccountTypeIncome  AccountType = "income"
	AccountTypeAsset   AccountType = "asset_current"
	AccountTypePayable AccountType = "liability_payable"
)

// Account is a ledger account referenced by tax repartition and entry lines
type Account struct {
	shared.BaseEntity
	Code        string      `gorm:"type:varchar(20);not null;uniqueIndex"`
	Name        string      `gorm:"type:varchar(200);not null"`
	AccountType AccountType `gorm:"type:varchar(30);not null;index"`
	Company     string      `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (Account) TableName() string {
	return "accounts"
}
