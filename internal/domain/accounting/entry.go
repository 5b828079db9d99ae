package accounting

import (
	"fmt"
	"time"

	"github.com/docs2ai/gateway/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MoveType classifies an accounting entry
type MoveType string

const (
	MoveTypeOutInvoice MoveType = "out_invoice" // customer invoice
	MoveTypeOutRefund  MoveType = "out_refund"  // customer credit note
	MoveTypeInInvoice  MoveType = "in_invoice"  // vendor bill
	MoveTypeInRefund   MoveType = "in_refund"   // vendor credit note
	MoveTypeInReceipt  MoveType = "in_receipt"  // purchase receipt
)

// SalesMoveTypes are the move types listed by the sales endpoints
var SalesMoveTypes = []MoveType{MoveTypeOutInvoice, MoveTypeOutRefund}

// PurchaseMoveTypes are the move types listed by the purchase endpoints
var PurchaseMoveTypes = []MoveType{MoveTypeInInvoice, MoveTypeInRefund}

// BillMoveTypes are the move types listed by the bills endpoint
var BillMoveTypes = []MoveType{MoveTypeInInvoice, MoveTypeInReceipt}

// ValidMoveType reports whether t is a known move type
func ValidMoveType(t MoveType) bool {
	switch t {
	case MoveTypeOutInvoice, MoveTypeOutRefund, MoveTypeInInvoice, MoveTypeInRefund, MoveTypeInReceipt:
		return true
	}
	return false
}

// EntryState is the lifecycle state of an entry
type EntryState string

const (
	EntryStateDraft  EntryState = "draft"
	EntryStatePosted EntryState = "posted"
	EntryStateCancel EntryState = "cancel"
)

// PaymentState tracks settlement of a posted entry
type PaymentState string

const (
	PaymentStateNotPaid   PaymentState = "not_paid"
	PaymentStateInPayment PaymentState = "in_payment"
	PaymentStatePaid      PaymentState = "paid"
)

// Entry is an accounting document: invoice, refund, bill, or receipt.
// Amounts are recomputed from the lines, never written directly.
type Entry struct {
	shared.BaseEntity
	Name             string          `gorm:"type:varchar(100);index"`
	MoveType         MoveType        `gorm:"type:varchar(20);not null;index"`
	PartnerID        int64           `gorm:"not null;index"`
	PartnerName      string          `gorm:"-"`
	Date             time.Time       `gorm:"not null"`
	InvoiceDate      *time.Time
	InvoiceDateDue   *time.Time
	CurrencyID       int64           `gorm:"index"`
	State            EntryState      `gorm:"type:varchar(10);not null;default:'draft'"`
	PaymentState     PaymentState    `gorm:"type:varchar(15);not null;default:'not_paid'"`
	AmountUntaxed    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	AmountTax        decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	AmountTotal      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	AmountResidual   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Journal          string          `gorm:"type:varchar(100)"`
	Company          string          `gorm:"type:varchar(100)"`
	DocsAIUploaded   bool            `gorm:"not null;default:false"`
	DocsAIUploadDate *time.Time
	Lines            []EntryLine     `gorm:"foreignKey:EntryID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Entry) TableName() string {
	return "accounting_entries"
}

// EntryLine is one product line on an entry
type EntryLine struct {
	shared.BaseEntity
	EntryID   int64           `gorm:"not null;index"`
	ProductID int64           `gorm:"index"`
	Name      string          `gorm:"type:varchar(200)"`
	Quantity  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:1"`
	PriceUnit decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	AccountID int64
	Taxes     []Tax           `gorm:"many2many:entry_line_taxes"`
}

// TableName returns the table name for GORM
func (EntryLine) TableName() string {
	return "accounting_entry_lines"
}

// Subtotal is the untaxed amount of the line
func (l *EntryLine) Subtotal() decimal.Decimal {
	return l.Quantity.Mul(l.PriceUnit)
}

// NewEntry creates a draft entry of the given type
func NewEntry(moveType MoveType, partnerID int64, date time.Time) (*Entry, error) {
	if !ValidMoveType(moveType) {
		return nil, shared.NewValidationError(fmt.Sprintf("Invalid move type: %s", moveType))
	}
	if partnerID == 0 {
		return nil, shared.NewValidationError("partner_id is required")
	}
	if date.IsZero() {
		date = time.Now()
	}
	return &Entry{
		MoveType:       moveType,
		PartnerID:      partnerID,
		Date:           date,
		State:          EntryStateDraft,
		PaymentState:   PaymentStateNotPaid,
		AmountUntaxed:  decimal.Zero,
		AmountTax:      decimal.Zero,
		AmountTotal:    decimal.Zero,
		AmountResidual: decimal.Zero,
	}, nil
}

// AddLine appends a line and recomputes totals
func (e *Entry) AddLine(line EntryLine) error {
	if line.Quantity.IsNegative() {
		return shared.NewValidationError("Line quantity cannot be negative")
	}
	e.Lines = append(e.Lines, line)
	e.ComputeTotals()
	return nil
}

// ComputeTotals recalculates the amount fields from the lines.
// Tax amounts use the tax's own arithmetic, summed per line.
func (e *Entry) ComputeTotals() {
	untaxed := decimal.Zero
	tax := decimal.Zero
	for i := range e.Lines {
		base := e.Lines[i].Subtotal()
		untaxed = untaxed.Add(base)
		for j := range e.Lines[i].Taxes {
			tax = tax.Add(e.Lines[i].Taxes[j].AmountOn(base))
		}
	}
	e.AmountUntaxed = untaxed
	e.AmountTax = tax
	e.AmountTotal = untaxed.Add(tax)
	if e.PaymentState == PaymentStateNotPaid {
		e.AmountResidual = e.AmountTotal
	}
}

// Post moves a draft entry to posted. Posting an already posted or
// cancelled entry is rejected.
func (e *Entry) Post() error {
	if e.State != EntryStateDraft {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot post entry in state %s", e.State))
	}
	e.State = EntryStatePosted
	e.UpdatedAt = time.Now()
	return nil
}

// MarkUploaded records the first successful document relay. The flag is
// one-way; later calls keep the original timestamp.
func (e *Entry) MarkUploaded(at time.Time) {
	if e.DocsAIUploaded {
		return
	}
	e.DocsAIUploaded = true
	e.DocsAIUploadDate = &at
	e.UpdatedAt = time.Now()
}

// IsVendorBill reports whether the entry accepts scanned vendor documents
func (e *Entry) IsVendorBill() bool {
	return e.MoveType == MoveTypeInInvoice
}
