package expense

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/docs2ai/gateway/internal/domain/accounting"
	"github.com/docs2ai/gateway/internal/domain/docsai"
	"github.com/docs2ai/gateway/internal/domain/expense"
	"github.com/docs2ai/gateway/internal/domain/shared"
)

// ExpenseService handles employee expense submission
type ExpenseService struct {
	expenseRepo    expense.ExpenseRepository
	employeeRepo   expense.EmployeeRepository
	currencyRepo   accounting.CurrencyRepository
	taxRepo        accounting.TaxRepository
	entryRepo      accounting.EntryRepository
	attachmentRepo docsai.AttachmentRepository
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(
	expenseRepo expense.ExpenseRepository,
	employeeRepo expense.EmployeeRepository,
	currencyRepo accounting.CurrencyRepository,
	taxRepo accounting.TaxRepository,
	entryRepo accounting.EntryRepository,
	attachmentRepo docsai.AttachmentRepository,
) *ExpenseService {
	return &ExpenseService{
		expenseRepo:    expenseRepo,
		employeeRepo:   employeeRepo,
		currencyRepo:   currencyRepo,
		taxRepo:        taxRepo,
		entryRepo:      entryRepo,
		attachmentRepo: attachmentRepo,
	}
}

// ListExpenses lists expenses, newest first
func (s *ExpenseService) ListExpenses(ctx context.Context, filter shared.Filter) ([]ExpenseResponse, int64, error) {
	page, err := s.expenseRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]ExpenseResponse, len(page.Items))
	for i := range page.Items {
		s.resolveEmployeeName(ctx, &page.Items[i])
		responses[i] = ToExpenseResponse(&page.Items[i])
	}
	return responses, page.Total, nil
}

func (s *ExpenseService) resolveEmployeeName(ctx context.Context, e *expense.Expense) {
	if emp, err := s.employeeRepo.FindByID(ctx, e.EmployeeID); err == nil {
		e.EmployeeName = emp.Name
	}
}

// CreateExpense records an expense. When no employee is given, the one
// linked to the authenticated user is used. userID may be zero for
// unauthenticated channels.
func (s *ExpenseService) CreateExpense(ctx context.Context, userID int64, req CreateExpenseRequest) (*ExpenseResponse, error) {
	employeeID, err := s.resolveEmployee(ctx, req.EmployeeID, userID)
	if err != nil {
		return nil, err
	}

	var date time.Time
	if req.Date != "" {
		if date, err = time.Parse(dateLayout, req.Date); err != nil {
			return nil, shared.NewValidationError(fmt.Sprintf("Invalid date %q, expected YYYY-MM-DD", req.Date))
		}
	}

	exp, err := expense.NewExpense(req.Name, employeeID, date, req.Quantity, req.PriceUnit, expense.PaymentMode(req.PaymentMode))
	if err != nil {
		return nil, err
	}
	if req.Total != nil {
		exp.SetTotal(*req.Total)
	}
	exp.Description = req.Description
	exp.VendorID = req.VendorID
	exp.ManagerID = req.ManagerID
	exp.AccountID = req.AccountID

	// category_id is an alias accepted for product_id
	exp.ProductID = req.ProductID
	if exp.ProductID == 0 {
		exp.ProductID = req.CategoryID
	}

	if exp.CurrencyID, err = s.resolveCurrency(ctx, req.CurrencyID, req.Currency); err != nil {
		return nil, err
	}

	for _, taxID := range req.TaxIDs {
		if _, err := s.taxRepo.FindByID(ctx, taxID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewNotFoundError("Tax with ID %d not found", taxID)
			}
			return nil, err
		}
	}
	exp.TaxIDs = req.TaxIDs

	if exp.EntryID, err = s.createLinkedEntry(ctx, exp); err != nil {
		return nil, err
	}

	if err := s.expenseRepo.Save(ctx, exp); err != nil {
		return nil, err
	}

	if req.Attachment != nil {
		if err := s.attachInline(ctx, exp.ID, req.Attachment); err != nil {
			return nil, err
		}
	}

	s.resolveEmployeeName(ctx, exp)
	resp := ToExpenseResponse(exp)
	return &resp, nil
}

// resolveEmployee returns the explicit employee or falls back to the one
// linked to the authenticated user
func (s *ExpenseService) resolveEmployee(ctx context.Context, employeeID, userID int64) (int64, error) {
	if employeeID != 0 {
		emp, err := s.employeeRepo.FindByID(ctx, employeeID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return 0, shared.NewNotFoundError("Employee with ID %d not found", employeeID)
			}
			return 0, err
		}
		return emp.ID, nil
	}
	if userID == 0 {
		return 0, shared.NewValidationError("employee_id is required")
	}
	emp, err := s.employeeRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return 0, shared.NewValidationError("No employee linked to the current user")
		}
		return 0, err
	}
	return emp.ID, nil
}

// resolveCurrency maps a raw id or a code to a currency id. An unknown id
// is retried as a name before it becomes a 404.
func (s *ExpenseService) resolveCurrency(ctx context.Context, currencyID int64, code string) (int64, error) {
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

// createLinkedEntry books a purchase receipt against the vendor so the
// document scan flow can flag it once the file is delivered. An expense
// without a vendor stays unlinked.
func (s *ExpenseService) createLinkedEntry(ctx context.Context, exp *expense.Expense) (int64, error) {
	if exp.VendorID == 0 {
		return 0, nil
	}
	entry, err := accounting.NewEntry(accounting.MoveTypeInReceipt, exp.VendorID, exp.Date)
	if err != nil {
		return 0, err
	}
	entry.CurrencyID = exp.CurrencyID
	if err := entry.AddLine(accounting.EntryLine{
		ProductID: exp.ProductID,
		Name:      exp.Name,
		Quantity:  exp.Quantity,
		PriceUnit: exp.PriceUnit,
	}); err != nil {
		return 0, err
	}
	if entry.Name, err = s.entryRepo.NextSequence(ctx, accounting.MoveTypeInReceipt); err != nil {
		return 0, err
	}
	if err := s.entryRepo.Save(ctx, entry); err != nil {
		return 0, err
	}
	return entry.ID, nil
}

func (s *ExpenseService) attachInline(ctx context.Context, expenseID int64, input *AttachmentInput) error {
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
		ResModel: docsai.ResModelExpense,
		ResID:    expenseID,
	})
}
