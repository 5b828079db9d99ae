package partner

import (
	"time"

	"github.com/docs2ai/gateway/internal/domain/shared"
)

// Partner represents a commercial counterparty. The same record can act as
// customer, vendor, or both; the ranks track how the record entered the system.
type Partner struct {
	shared.BaseEntity
	Name         string `gorm:"type:varchar(200);not null;index"`
	Email        string `gorm:"type:varchar(200);index"`
	Phone        string `gorm:"type:varchar(50)"`
	Mobile       string `gorm:"type:varchar(50)"`
	Street       string `gorm:"type:varchar(200)"`
	Street2      string `gorm:"type:varchar(200)"`
	City         string `gorm:"type:varchar(100)"`
	State        string `gorm:"type:varchar(100)"`
	Zip          string `gorm:"type:varchar(20)"`
	Country      string `gorm:"type:varchar(100)"`
	VAT          string `gorm:"column:vat;type:varchar(50)"`
	IsCompany    bool   `gorm:"not null;default:false"`
	CustomerRank int    `gorm:"not null;default:0;index"`
	SupplierRank int    `gorm:"not null;default:0;index"`
	Active       bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Partner) TableName() string {
	return "partners"
}

// NewCustomer creates a partner acting as a customer
func NewCustomer(name string) (*Partner, error) {
	p, err := newPartner(name)
	if err != nil {
		return nil, err
	}
	p.CustomerRank = 1
	return p, nil
}

// NewVendor creates a partner acting as a vendor
func NewVendor(name string) (*Partner, error) {
	p, err := newPartner(name)
	if err != nil {
		return nil, err
	}
	p.SupplierRank = 1
	return p, nil
}

func newPartner(name string) (*Partner, error) {
	if name == "" {
		return nil, shared.NewValidationError("Name is required")
	}
	if len(name) > 200 {
		return nil, shared.NewValidationError("Name cannot exceed 200 characters")
	}
	return &Partner{
		Name:   name,
		Active: true,
	}, nil
}

// MarkCustomer promotes the partner to a customer role
func (p *Partner) MarkCustomer() {
	if p.CustomerRank == 0 {
		p.CustomerRank = 1
		p.UpdatedAt = time.Now()
	}
}

// MarkVendor promotes the partner to a vendor role
func (p *Partner) MarkVendor() {
	if p.SupplierRank == 0 {
		p.SupplierRank = 1
		p.UpdatedAt = time.Now()
	}
}

// IsCustomer reports whether the partner has ever acted as a customer
func (p *Partner) IsCustomer() bool {
	return p.CustomerRank > 0
}

// IsVendor reports whether the partner has ever acted as a vendor
func (p *Partner) IsVendor() bool {
	return p.SupplierRank > 0
}
