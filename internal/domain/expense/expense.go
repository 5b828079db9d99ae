package expense

import (
	"time"

	"github.com/docs2ai/gateway/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PaymentMode says who paid for the expense
type PaymentMode string

const (
	PaymentModeOwnAccount     PaymentMode = "own_account"     // employee paid, to be reimbursed
	PaymentModeCompanyAccount PaymentMode = "company_account" // paid with company money
)

// ExpenseState is the approval lifecycle of an expense
type ExpenseState string

const (
	ExpenseStateDraft     ExpenseState = "draft"
	ExpenseStateSubmitted ExpenseState = "submitted"
	ExpenseStateApproved  ExpenseState = "approved"
	ExpenseStateDone      ExpenseState = "done"
	ExpenseStateRefused   ExpenseState = "refused"
)

// Expense is an employee expense line
type Expense struct {
	shared.BaseEntity
	Name                string          `gorm:"type:varchar(200);not null"`
	EmployeeID          int64           `gorm:"not null;index"`
	EmployeeName        string          `gorm:"-"`
	Date                time.Time       `gorm:"not null"`
	ProductID           int64           `gorm:"index"`
	Quantity            decimal.Decimal `gorm:"type:decimal(18,4);not null;default:1"`
	PriceUnit           decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	TotalAmount         decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	TotalAmountCurrency decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	CurrencyID          int64           `gorm:"index"`
	PaymentMode         PaymentMode     `gorm:"type:varchar(20);not null;default:'own_account'"`
	VendorID            int64           `gorm:"index"`
	ManagerID           int64
	AccountID           int64
	Description         string       `gorm:"type:text"`
	State               ExpenseState `gorm:"type:varchar(10);not null;default:'draft'"`
	TaxIDs              []int64      `gorm:"serializer:json"`
	EntryID             int64        `gorm:"index"`
}

// TableName returns the table name for GORM
func (Expense) TableName() string {
	return "expenses"
}

// NewExpense creates a draft expense. Total is derived from quantity and
// unit price unless an explicit total is given.
func NewExpense(name string, employeeID int64, date time.Time, quantity, priceUnit decimal.Decimal, mode PaymentMode) (*Expense, error) {
	if name == "" {
		return nil, shared.NewValidationError("Name is required")
	}
	if employeeID == 0 {
		return nil, shared.NewValidationError("employee_id is required")
	}
	switch mode {
	case PaymentModeOwnAccount, PaymentModeCompanyAccount:
	case "":
		mode = PaymentModeOwnAccount
	default:
		return nil, shared.NewValidationError("Invalid payment mode")
	}
	if quantity.IsZero() {
		quantity = decimal.NewFromInt(1)
	}
	if date.IsZero() {
		date = time.Now()
	}

	total := quantity.Mul(priceUnit)
	return &Expense{
		Name:                name,
		EmployeeID:          employeeID,
		Date:                date,
		Quantity:            quantity,
		PriceUnit:           priceUnit,
		TotalAmount:         total,
		TotalAmountCurrency: total,
		PaymentMode:         mode,
		State:               ExpenseStateDraft,
	}, nil
}

// SetTotal overrides the derived total with an explicit amount
func (e *Expense) SetTotal(total decimal.Decimal) {
	e.TotalAmount = total
	e.TotalAmountCurrency = total
	if e.Quantity.Equal(decimal.NewFromInt(1)) {
		e.PriceUnit = total
	}
}

// Employee links an expense to the person who incurred it. UserID ties the
// employee to a login for the current-user fallback.
type Employee struct {
	shared.BaseEntity
	Name   string `gorm:"type:varchar(200);not null"`
	UserID int64  `gorm:"index"`
}

// TableName returns the table name for GORM
func (Employee) TableName() string {
	return "employees"
}
