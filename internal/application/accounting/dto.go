package accounting

import (
	"time"

	"github.com/docs2ai/gateway/internal/domain/accounting"
	"github.com/shopspring/decimal"
)

// dateLayout is the wire format for all document dates
const dateLayout = "2006-01-02"

// CreateEntryRequest is the payload for creating a sales or purchase entry
type CreateEntryRequest struct {
	PartnerID      int64             `json:"partner_id"`
	Name           string            `json:"name"`
	Date           string            `json:"date"`
	InvoiceDate    string            `json:"invoice_date"`
	InvoiceDateDue string            `json:"invoice_date_due"`
	Journal        string            `json:"journal"`
	Company        string            `json:"company"`
	Lines          []EntryLineInput  `json:"lines"`
}

// EntryLineInput is one product line in a create payload
type EntryLineInput struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	PriceUnit decimal.Decimal `json:"price_unit"`
	TaxIDs    []int64         `json:"tax_ids"`
}

// CreateBillRequest is the payload for creating a vendor bill or receipt
type CreateBillRequest struct {
	VendorID       int64            `json:"vendor_id"`
	PartnerID      int64            `json:"partner_id"`
	MoveType       string           `json:"move_type"`
	BillName       string           `json:"bill_name"`
	Date           string           `json:"date"`
	InvoiceDate    string           `json:"invoice_date"`
	InvoiceDateDue string           `json:"invoice_date_due"`
	Currency       string           `json:"currency"`
	CurrencyID     int64            `json:"currency_id"`
	Tax            *decimal.Decimal `json:"tax"`
	TaxIDs         []int64          `json:"tax_ids"`
	Description    string           `json:"description"`
	Amount         *decimal.Decimal `json:"amount"`
	Journal        string           `json:"journal"`
	Company        string           `json:"company"`
	Lines          []EntryLineInput `json:"lines"`
	Attachment     *AttachmentInput `json:"attachment"`
}

// AttachmentInput is an inline base64 document in a create payload
type AttachmentInput struct {
	Name string `json:"name"`
	Data string `json:"data"`
}

// EntryLineResponse is the API shape of an entry line
type EntryLineResponse struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"product_id,omitempty"`
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	PriceUnit decimal.Decimal `json:"price_unit"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxIDs    []int64         `json:"tax_ids,omitempty"`
}

// EntryResponse is the API shape of an accounting entry
type EntryResponse struct {
	ID               int64               `json:"id"`
	Name             string              `json:"name"`
	MoveType         string              `json:"move_type"`
	PartnerID        int64               `json:"partner_id"`
	PartnerName      string              `json:"partner_name,omitempty"`
	Date             string              `json:"date"`
	InvoiceDate      string              `json:"invoice_date,omitempty"`
	InvoiceDateDue   string              `json:"invoice_date_due,omitempty"`
	CurrencyID       int64               `json:"currency_id,omitempty"`
	State            string              `json:"state"`
	PaymentState     string              `json:"payment_state"`
	AmountUntaxed    decimal.Decimal     `json:"amount_untaxed"`
	AmountTax        decimal.Decimal     `json:"amount_tax"`
	AmountTotal      decimal.Decimal     `json:"amount_total"`
	AmountResidual   decimal.Decimal     `json:"amount_residual"`
	Journal          string              `json:"journal,omitempty"`
	Company          string              `json:"company,omitempty"`
	DocsAIUploaded   bool                `json:"docs2ai_uploaded"`
	DocsAIUploadDate string              `json:"docs2ai_upload_date,omitempty"`
	Lines            []EntryLineResponse `json:"lines"`
}

// ToEntryResponse converts a domain entry to its API shape
func ToEntryResponse(e *accounting.Entry) EntryResponse {
	resp := EntryResponse{
		ID:             e.ID,
		Name:           e.Name,
		MoveType:       string(e.MoveType),
		PartnerID:      e.PartnerID,
		PartnerName:    e.PartnerName,
		Date:           e.Date.Format(dateLayout),
		CurrencyID:     e.CurrencyID,
		State:          string(e.State),
		PaymentState:   string(e.PaymentState),
		AmountUntaxed:  e.AmountUntaxed,
		AmountTax:      e.AmountTax,
		AmountTotal:    e.AmountTotal,
		AmountResidual: e.AmountResidual,
		Journal:        e.Journal,
		Company:        e.Company,
		DocsAIUploaded: e.DocsAIUploaded,
		Lines:          make([]EntryLineResponse, len(e.Lines)),
	}
	if e.InvoiceDate != nil {
		resp.InvoiceDate = e.InvoiceDate.Format(dateLayout)
	}
	if e.InvoiceDateDue != nil {
		resp.InvoiceDateDue = e.InvoiceDateDue.Format(dateLayout)
	}
	if e.DocsAIUploadDate != nil {
		resp.DocsAIUploadDate = e.DocsAIUploadDate.Format(time.RFC3339)
	}
	for i := range e.Lines {
		line := &e.Lines[i]
		taxIDs := make([]int64, len(line.Taxes))
		for j := range line.Taxes {
			taxIDs[j] = line.Taxes[j].ID
		}
		resp.Lines[i] = EntryLineResponse{
			ID:        line.ID,
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			PriceUnit: line.PriceUnit,
			Subtotal:  line.Subtotal(),
			TaxIDs:    taxIDs,
		}
	}
	return resp
}

// CreateTaxRequest is the payload for creating a tax
type CreateTaxRequest struct {
	Name       string           `json:"name"`
	Amount     *decimal.Decimal `json:"amount"`
	AmountType string           `json:"amount_type"`
	TypeTaxUse string           `json:"type_tax_use"`
}

// TaxResponse is the API shape of a tax
type TaxResponse struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	AmountType string          `json:"amount_type"`
	TypeTaxUse string          `json:"type_tax_use"`
	Active     bool            `json:"active"`
}

// ToTaxResponse converts a domain tax to its API shape
func ToTaxResponse(t *accounting.Tax) TaxResponse {
	return TaxResponse{
		ID:         t.ID,
		Name:       t.Name,
		Amount:     t.Amount,
		AmountType: string(t.AmountType),
		TypeTaxUse: string(t.TypeTaxUse),
		Active:     t.Active,
	}
}

// CurrencyResponse is the API shape of a currency
type CurrencyResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	DecimalPlaces int    `json:"decimal_places"`
	Active        bool   `json:"active"`
}
