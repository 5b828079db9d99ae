package accounting

import (
	"context"
	"errors"

	"github.com/docs2ai/gateway/internal/domain/accounting"
	"github.com/docs2ai/gateway/internal/domain/shared"
)

// TaxService handles tax catalog operations
type TaxService struct {
	taxRepo     accounting.TaxRepository
	accountRepo accounting.AccountRepository
}

// NewTaxService creates a new TaxService
func NewTaxService(taxRepo accounting.TaxRepository, accountRepo accounting.AccountRepository) *TaxService {
	return &TaxService{taxRepo: taxRepo, accountRepo: accountRepo}
}

// ListTaxes lists active taxes, optionally restricted to one use
func (s *TaxService) ListTaxes(ctx context.Context, use string, filter shared.Filter) ([]TaxResponse, int64, error) {
	var taxUse accounting.TaxUse
	if use != "" {
		taxUse = accounting.TaxUse(use)
		if taxUse != accounting.TaxUseSale && taxUse != accounting.TaxUsePurchase && taxUse != accounting.TaxUseNone {
			return nil, 0, shared.NewValidationError("Invalid type_tax_use: " + use)
		}
	}
	page, err := s.taxRepo.FindByUse(ctx, taxUse, filter)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]TaxResponse, len(page.Items))
	for i := range page.Items {
		responses[i] = ToTaxResponse(&page.Items[i])
	}
	return responses, page.Total, nil
}

// CreateTax creates a tax with its default accounting distribution
func (s *TaxService) CreateTax(ctx context.Context, req CreateTaxRequest) (*TaxResponse, error) {
	if req.Name == "" {
		return nil, shared.NewValidationError("Tax name is required")
	}
	if req.Amount == nil {
		return nil, shared.NewValidationError("Tax amount is required")
	}

	amountType := accounting.TaxAmountTypePercent
	if req.AmountType != "" {
		amountType = accounting.TaxAmountType(req.AmountType)
		if amountType != accounting.TaxAmountTypePercent && amountType != accounting.TaxAmountTypeFixed {
			return nil, shared.NewValidationError("Invalid amount_type: " + req.AmountType)
		}
	}
	use := accounting.TaxUsePurchase
	if req.TypeTaxUse != "" {
		use = accounting.TaxUse(req.TypeTaxUse)
		if use != accounting.TaxUseSale && use != accounting.TaxUsePurchase && use != accounting.TaxUseNone {
			return nil, shared.NewValidationError("Invalid type_tax_use: " + req.TypeTaxUse)
		}
	}

	accountID, err := s.accountForUse(ctx, use)
	if err != nil {
		return nil, err
	}
	tax, err := accounting.NewTax(req.Name, *req.Amount, amountType, use, accountID)
	if err != nil {
		return nil, err
	}
	if err := s.taxRepo.Save(ctx, tax); err != nil {
		return nil, err
	}
	resp := ToTaxResponse(tax)
	return &resp, nil
}

// accountForUse picks a posting account matching the tax use
func (s *TaxService) accountForUse(ctx context.Context, use accounting.TaxUse) (int64, error) {
	accountType := accounting.AccountTypeExpense
	if use == accounting.TaxUseSale {
		accountType = accounting.AccountTypeIncome
	}
	account, err := s.accountRepo.FirstByType(ctx, accountType)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return account.ID, nil
}
