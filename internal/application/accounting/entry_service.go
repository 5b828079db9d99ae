package accounting

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/docs2ai/gateway/internal/domain/accounting"
	"github.com/docs2ai/gateway/internal/domain/docsai"
	"github.com/docs2ai/gateway/internal/domain/partner"
	"github.com/docs2ai/gateway/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// EntryService handles invoices, purchase entries, and vendor bills
type EntryService struct {
	entryRepo      accounting.EntryRepository
	partnerRepo    partner.PartnerRepository
	currencyRepo   accounting.CurrencyRepository
	taxRepo        accounting.TaxRepository
	accountRepo    accounting.AccountRepository
	attachmentRepo docsai.AttachmentRepository
}

// NewEntryService creates a new EntryService
func NewEntryService(
	entryRepo accounting.EntryRepository,
	partnerRepo partner.PartnerRepository,
	currencyRepo accounting.CurrencyRepository,
	taxRepo accounting.TaxRepository,
	accountRepo accounting.AccountRepository,
	attachmentRepo docsai.AttachmentRepository,
) *EntryService {
	return &EntryService{
		entryRepo:      entryRepo,
		partnerRepo:    partnerRepo,
		currencyRepo:   currencyRepo,
		taxRepo:        taxRepo,
		accountRepo:    accountRepo,
		attachmentRepo: attachmentRepo,
	}
}

// ListSales lists customer invoices and credit notes
func (s *EntryService) ListSales(ctx context.Context, filter shared.Filter) ([]EntryResponse, int64, error) {
	return s.list(ctx, accounting.SalesMoveTypes, filter)
}

// ListPurchases lists vendor bills and credit notes
func (s *EntryService) ListPurchases(ctx context.Context, filter shared.Filter) ([]EntryResponse, int64, error) {
	return s.list(ctx, accounting.PurchaseMoveTypes, filter)
}

// ListBills lists vendor bills and purchase receipts
func (s *EntryService) ListBills(ctx context.Context, filter shared.Filter) ([]EntryResponse, int64, error) {
	return s.list(ctx, accounting.BillMoveTypes, filter)
}

func (s *EntryService) list(ctx context.Context, moveTypes []accounting.MoveType, filter shared.Filter) ([]EntryResponse, int64, error) {
	page, err := s.entryRepo.FindByMoveTypes(ctx, moveTypes, filter)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]EntryResponse, len(page.Items))
	for i := range page.Items {
		s.resolvePartnerName(ctx, &page.Items[i])
		responses[i] = ToEntryResponse(&page.Items[i])
	}
	return responses, page.Total, nil
}

// resolvePartnerName fills the display name; a missing partner leaves it blank
func (s *EntryService) resolvePartnerName(ctx context.Context, e *accounting.Entry) {
	if p, err := s.partnerRepo.FindByID(ctx, e.PartnerID); err == nil {
		e.PartnerName = p.Name
	}
}

// CreateSalesEntry creates a draft customer invoice
func (s *EntryService) CreateSalesEntry(ctx context.Context, req CreateEntryRequest) (*EntryResponse, error) {
	return s.createEntry(ctx, accounting.MoveTypeOutInvoice, req)
}

// CreatePurchaseEntry creates a draft vendor bill without the scan workflow
func (s *EntryService) CreatePurchaseEntry(ctx context.Context, req CreateEntryRequest) (*EntryResponse, error) {
	return s.createEntry(ctx, accounting.MoveTypeInInvoice, req)
}

func (s *EntryService) createEntry(ctx context.Context, moveType accounting.MoveType, req CreateEntryRequest) (*EntryResponse, error) {
	if req.PartnerID == 0 {
		return nil, shared.NewValidationError("partner_id is required")
	}
	if _, err := s.partnerRepo.FindByID(ctx, req.PartnerID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("Partner with ID %d not found", req.PartnerID)
		}
		return nil, err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	entry, err := accounting.NewEntry(moveType, req.PartnerID, valueOrZeroTime(date))
	if err != nil {
		return nil, err
	}
	entry.Journal = req.Journal
	entry.Company = req.Company
	if entry.InvoiceDate, err = parseDate(req.InvoiceDate); err != nil {
		return nil, err
	}
	if entry.InvoiceDateDue, err = parseDate(req.InvoiceDateDue); err != nil {
		return nil, err
	}

	for _, line := range req.Lines {
		taxes, err := s.resolveTaxes(ctx, line.TaxIDs)
		if err != nil {
			return nil, err
		}
		if err := entry.AddLine(accounting.EntryLine{
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  defaultQuantity(line.Quantity),
			PriceUnit: line.PriceUnit,
			Taxes:     taxes,
		}); err != nil {
			return nil, err
		}
	}

	entry.Name = req.Name
	if entry.Name == "" {
		if entry.Name, err = s.entryRepo.NextSequence(ctx, moveType); err != nil {
			return nil, err
		}
	}

	if err := s.entryRepo.Save(ctx, entry); err != nil {
		return nil, err
	}
	s.resolvePartnerName(ctx, entry)
	resp := ToEntryResponse(entry)
	return &resp, nil
}

// CreateBill creates and posts a vendor bill or purchase receipt. Currency
// codes are resolved or created on demand, and a percentage tax is looked
// up or synthesized with its accounting distribution.
func (s *EntryService) CreateBill(ctx context.Context, req CreateBillRequest) (*EntryResponse, error) {
	vendorID := req.VendorID
	if vendorID == 0 {
		vendorID = req.PartnerID
	}
	if vendorID == 0 {
		return nil, shared.NewValidationError("vendor_id is required")
	}
	vendor, err := s.partnerRepo.FindByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("Vendor with ID %d not found", vendorID)
		}
		return nil, err
	}
	// Billing a partner makes it a vendor if it was not one already
	if !vendor.IsVendor() {
		vendor.MarkVendor()
		if err := s.partnerRepo.Save(ctx, vendor); err != nil {
			return nil, err
		}
	}

	moveType := accounting.MoveTypeInInvoice
	if req.MoveType != "" {
		moveType = accounting.MoveType(req.MoveType)
		if moveType != accounting.MoveTypeInInvoice && moveType != accounting.MoveTypeInReceipt {
			return nil, shared.NewValidationError(fmt.Sprintf("Invalid move type for a bill: %s", req.MoveType))
		}
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	entry, err := accounting.NewEntry(moveType, vendorID, valueOrZeroTime(date))
	if err != nil {
		return nil, err
	}
	entry.Journal = req.Journal
	entry.Company = req.Company
	if entry.InvoiceDate, err = parseDate(req.InvoiceDate); err != nil {
		return nil, err
	}
	if entry.InvoiceDateDue, err = parseDate(req.InvoiceDateDue); err != nil {
		return nil, err
	}

	if entry.CurrencyID, err = s.resolveCurrency(ctx, req.CurrencyID, req.Currency); err != nil {
		return nil, err
	}

	// A percentage wins over a tax_ids list when both are sent
	var billTaxes []accounting.Tax
	switch {
	case req.Tax != nil:
		billTax, err := s.ensurePurchaseTax(ctx, *req.Tax)
		if err != nil {
			return nil, err
		}
		billTaxes = []accounting.Tax{*billTax}
	case len(req.TaxIDs) > 0:
		if billTaxes, err = s.resolveTaxes(ctx, req.TaxIDs); err != nil {
			return nil, err
		}
	}

	lines := req.Lines
	if len(lines) == 0 && req.Amount != nil {
		name := req.Description
		if name == "" {
			name = "Scanned document"
		}
		lines = []EntryLineInput{{Name: name, Quantity: decimal.NewFromInt(1), PriceUnit: *req.Amount}}
	}
	for _, line := range lines {
		lineTaxes := billTaxes
		if len(line.TaxIDs) > 0 {
			if lineTaxes, err = s.resolveTaxes(ctx, line.TaxIDs); err != nil {
				return nil, err
			}
		}
		if err := entry.AddLine(accounting.EntryLine{
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  defaultQuantity(line.Quantity),
			PriceUnit: line.PriceUnit,
			Taxes:     lineTaxes,
		}); err != nil {
			return nil, err
		}
	}

	entry.Name = req.BillName
	if entry.Name == "" {
		if entry.Name, err = s.entryRepo.NextSequence(ctx, moveType); err != nil {
			return nil, err
		}
	}

	if err := entry.Post(); err != nil {
		return nil, err
	}
	if err := s.entryRepo.Save(ctx, entry); err != nil {
		return nil, err
	}

	if req.Attachment != nil {
		if err := s.attachInline(ctx, entry.ID, req.Attachment); err != nil {
			return nil, err
		}
	}

	entry.PartnerName = vendor.Name
	resp := ToEntryResponse(entry)
	return &resp, nil
}

// resolveCurrency maps a raw id or a code to a currency id. An unknown id
// is retried as a name before it becomes a 404; codes are searched by name
// or symbol, reactivated, or created.
func (s *EntryService) resolveCurrency(ctx context.Context, currencyID int64, code string) (int64, error) {
	if currencyID != 0 {
		c, err := s.currencyRepo.FindByID(ctx, currencyID)
		if err == nil {
			return c.ID, nil
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return 0, err
		}
		if c, err = s.currencyRepo.FindByCode(ctx, strconv.FormatInt(currencyID, 10)); err == nil {
			return c.ID, nil
		}
		if errors.Is(err, shared.ErrNotFound) {
			return 0, shared.NewNotFoundError("Currency with ID %d not found", currencyID)
		}
		return 0, err
	}
	if code == "" {
		return 0, nil
	}

	c, err := s.currencyRepo.FindByCode(ctx, code)
	switch {
	case err == nil:
		c.Reactivate()
		if err := s.currencyRepo.Save(ctx, c); err != nil {
			return 0, err
		}
		return c.ID, nil
	case errors.Is(err, shared.ErrNotFound):
		created, err := accounting.NewCurrency(code)
		if err != nil {
			return 0, err
		}
		if err := s.currencyRepo.Save(ctx, created); err != nil {
			return 0, err
		}
		return created.ID, nil
	default:
		return 0, err
	}
}

// resolveTaxes loads the referenced taxes so line totals include them
func (s *EntryService) resolveTaxes(ctx context.Context, ids []int64) ([]accounting.Tax, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	taxes := make([]accounting.Tax, 0, len(ids))
	for _, id := range ids {
		tax, err := s.taxRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewNotFoundError("Tax with ID %d not found", id)
			}
			return nil, err
		}
		taxes = append(taxes, *tax)
	}
	return taxes, nil
}

// ensurePurchaseTax finds or creates the percentage purchase tax used by
// scanned bills. Any percentage purchase tax with the requested rate is
// reused regardless of its name. The posting account comes from the
// company's default purchase tax when one exists, otherwise from any
// expense account.
func (s *EntryService) ensurePurchaseTax(ctx context.Context, percent decimal.Decimal) (*accounting.Tax, error) {
	existing, err := s.taxRepo.FindByAmountAndUse(ctx, percent, accounting.TaxUsePurchase)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	accountID, err := s.purchaseTaxAccount(ctx)
	if err != nil {
		return nil, err
	}
	name := fmt.Sprintf("Purchase Tax %s%%", percent.String())
	tax, err := accounting.NewTax(name, percent, accounting.TaxAmountTypePercent, accounting.TaxUsePurchase, accountID)
	if err != nil {
		return nil, err
	}
	if err := s.taxRepo.Save(ctx, tax); err != nil {
		return nil, err
	}
	return tax, nil
}

// purchaseTaxAccount picks the account for a synthesized tax. Zero means no
// account could be found; the tax is still usable.
func (s *EntryService) purchaseTaxAccount(ctx context.Context) (int64, error) {
	defaultTax, err := s.taxRepo.FirstByUse(ctx, accounting.TaxUsePurchase)
	if err == nil {
		for i := range defaultTax.Repartition {
			line := &defaultTax.Repartition[i]
			if line.Document == accounting.RepartitionInvoice && line.Repartition == accounting.RepartitionTax && line.AccountID != 0 {
				return line.AccountID, nil
			}
		}
	} else if !errors.Is(err, shared.ErrNotFound) {
		return 0, err
	}

	account, err := s.accountRepo.FirstByType(ctx, accounting.AccountTypeExpense)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return account.ID, nil
}

// attachInline stores a base64 document against an entry
func (s *EntryService) attachInline(ctx context.Context, entryID int64, input *AttachmentInput) error {
	if input.Name == "" {
		return shared.NewValidationError("Attachment name is required")
	}
	content, err := base64.StdEncoding.DecodeString(input.Data)
	if err != nil {
		return shared.NewValidationError("Attachment data is not valid base64")
	}
	mime, err := docsai.ResolveMime(input.Name, content)
	if err != nil {
		return err
	}
	return s.attachmentRepo.Save(ctx, &docsai.Attachment{
		Name:     input.Name,
		Mimetype: mime,
		Datas:    content,
		ResModel: docsai.ResModelEntry,
		ResID:    entryID,
	})
}

// parseDate parses an optional YYYY-MM-DD value
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, shared.NewValidationError(fmt.Sprintf("Invalid date %q, expected YYYY-MM-DD", value))
	}
	return &t, nil
}

func valueOrZeroTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func defaultQuantity(q decimal.Decimal) decimal.Decimal {
	if q.IsZero() {
		return decimal.NewFromInt(1)
	}
	return q
}
