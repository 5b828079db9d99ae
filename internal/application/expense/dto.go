package expense

import (
	"github.com/docs2ai/gateway/internal/domain/expense"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// CreateExpenseRequest is the payload for submitting an expense
type CreateExpenseRequest struct {
	Name        string           `json:"name"`
	EmployeeID  int64            `json:"employee_id"`
	ProductID   int64            `json:"product_id"`
	CategoryID  int64            `json:"category_id"`
	Date        string           `json:"date"`
	Quantity    decimal.Decimal  `json:"quantity"`
	PriceUnit   decimal.Decimal  `json:"price_unit"`
	Total       *decimal.Decimal `json:"total"`
	Currency    string           `json:"currency"`
	CurrencyID  int64            `json:"currency_id"`
	TaxIDs      []int64          `json:"tax_ids"`
	VendorID    int64            `json:"vendor_id"`
	ManagerID   int64            `json:"manager_id"`
	AccountID   int64            `json:"account_id"`
	PaymentMode string           `json:"payment_mode"`
	Description string           `json:"description"`
	Attachment  *AttachmentInput `json:"attachment"`
}

// AttachmentInput is an inline base64 document in a create payload
type AttachmentInput struct {
	Name string `json:"name"`
	Data string `json:"data"`
}

// ExpenseResponse is the API shape of an expense
type ExpenseResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	EmployeeID   int64           `json:"employee_id"`
	EmployeeName string          `json:"employee_name,omitempty"`
	ProductID    int64           `json:"product_id,omitempty"`
	Date         string          `json:"date"`
	Quantity     decimal.Decimal `json:"quantity"`
	PriceUnit    decimal.Decimal `json:"price_unit"`
	Total        decimal.Decimal `json:"total"`
	CurrencyID   int64           `json:"currency_id,omitempty"`
	TaxIDs       []int64         `json:"tax_ids,omitempty"`
	VendorID     int64           `json:"vendor_id,omitempty"`
	ManagerID    int64           `json:"manager_id,omitempty"`
	AccountID    int64           `json:"account_id,omitempty"`
	PaymentMode  string          `json:"payment_mode"`
	State        string          `json:"state"`
	Description  string          `json:"description,omitempty"`
	EntryID      int64           `json:"entry_id,omitempty"`
}

// ToExpenseResponse converts a domain expense to its API shape
func ToExpenseResponse(e *expense.Expense) ExpenseResponse {
	resp := ExpenseResponse{
		ID:           e.ID,
		Name:         e.Name,
		EmployeeID:   e.EmployeeID,
		EmployeeName: e.EmployeeName,
		ProductID:    e.ProductID,
		Quantity:     e.Quantity,
		PriceUnit:    e.PriceUnit,
		Total:        e.TotalAmount,
		CurrencyID:   e.CurrencyID,
		TaxIDs:       e.TaxIDs,
		VendorID:     e.VendorID,
		ManagerID:    e.ManagerID,
		AccountID:    e.AccountID,
		PaymentMode:  string(e.PaymentMode),
		State:        string(e.State),
		Description:  e.Description,
		EntryID:      e.EntryID,
	}
	if !e.Date.IsZero() {
		resp.Date = e.Date.Format(dateLayout)
	}
	return resp
}
