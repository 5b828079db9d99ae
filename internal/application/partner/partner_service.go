package partner

import (
	"context"
	"errors"

	"github.com/docs2ai/gateway/internal/domain/partner"
	"github.com/docs2ai/gateway/internal/domain/shared"
)

// PartnerService handles customer and vendor operations
type PartnerService struct {
	partnerRepo partner.PartnerRepository
}

// NewPartnerService creates a new PartnerService
func NewPartnerService(partnerRepo partner.PartnerRepository) *PartnerService {
	return &PartnerService{partnerRepo: partnerRepo}
}

// ListCustomers lists partners acting as customers
func (s *PartnerService) ListCustomers(ctx context.Context, filter shared.Filter) ([]PartnerResponse, int64, error) {
	return s.listByRole(ctx, partner.RoleCustomer, filter)
}

// ListVendors lists partners acting as vendors
func (s *PartnerService) ListVendors(ctx context.Context, filter shared.Filter) ([]PartnerResponse, int64, error) {
	return s.listByRole(ctx, partner.RoleVendor, filter)
}

func (s *PartnerService) listByRole(ctx context.Context, role partner.Role, filter shared.Filter) ([]PartnerResponse, int64, error) {
	page, err := s.partnerRepo.FindByRole(ctx, role, filter)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]PartnerResponse, len(page.Items))
	for i := range page.Items {
		responses[i] = ToPartnerResponse(&page.Items[i])
	}
	return responses, page.Total, nil
}

// CreateCustomer creates a partner with customer rank 1
func (s *PartnerService) CreateCustomer(ctx context.Context, req CreatePartnerRequest) (*PartnerResponse, error) {
	p, err := partner.NewCustomer(req.Name)
	if err != nil {
		return nil, err
	}
	return s.create(ctx, p, req)
}

// CreateVendor creates a partner with supplier rank 1
func (s *PartnerService) CreateVendor(ctx context.Context, req CreatePartnerRequest) (*PartnerResponse, error) {
	p, err := partner.NewVendor(req.Name)
	if err != nil {
		return nil, err
	}
	return s.create(ctx, p, req)
}

func (s *PartnerService) create(ctx context.Context, p *partner.Partner, req CreatePartnerRequest) (*PartnerResponse, error) {
	p.Email = req.Email
	p.Phone = req.Phone
	p.Mobile = req.Mobile
	p.Street = req.Street
	p.Street2 = req.Street2
	p.City = req.City
	p.State = req.State
	p.Zip = req.Zip
	p.Country = req.Country
	p.VAT = req.VAT
	p.IsCompany = req.IsCompany

	if err := s.partnerRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	resp := ToPartnerResponse(p)
	return &resp, nil
}

// GetVendor returns a vendor by id. Partners without a vendor role are
// reported as missing, not as some other record type.
func (s *PartnerService) GetVendor(ctx context.Context, id int64) (*PartnerResponse, error) {
	p, err := s.findVendor(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToPartnerResponse(p)
	return &resp, nil
}

// DeleteVendor permanently removes a vendor
func (s *PartnerService) DeleteVendor(ctx context.Context, id int64) error {
	if _, err := s.findVendor(ctx, id); err != nil {
		return err
	}
	if err := s.partnerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return vendorNotFound(id)
		}
		return err
	}
	return nil
}

func (s *PartnerService) findVendor(ctx context.Context, id int64) (*partner.Partner, error) {
	p, err := s.partnerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, vendorNotFound(id)
		}
		return nil, err
	}
	if !p.IsVendor() {
		return nil, vendorNotFound(id)
	}
	return p, nil
}

func vendorNotFound(id int64) error {
	return shared.NewNotFoundError("Vendor with ID %d not found", id)
}
