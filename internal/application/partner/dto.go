package partner

import (
	"time"

	"github.com/docs2ai/gateway/internal/domain/partner"
)

// CreatePartnerRequest is the payload for creating a customer or vendor
type CreatePartnerRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Mobile    string `json:"mobile"`
	Street    string `json:"street"`
	Street2   string `json:"street2"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
	VAT       string `json:"vat"`
	IsCompany bool   `json:"is_company"`
}

// PartnerResponse is the API shape of a partner
type PartnerResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Mobile       string    `json:"mobile"`
	Street       string    `json:"street"`
	Street2      string    `json:"street2"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Zip          string    `json:"zip"`
	Country      string    `json:"country"`
	VAT          string    `json:"vat"`
	IsCompany    bool      `json:"is_company"`
	CustomerRank int       `json:"customer_rank"`
	SupplierRank int       `json:"supplier_rank"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToPartnerResponse converts a domain partner to its API shape
func ToPartnerResponse(p *partner.Partner) PartnerResponse {
	return PartnerResponse{
		ID:           p.ID,
		Name:         p.Name,
		Email:        p.Email,
		Phone:        p.Phone,
		Mobile:       p.Mobile,
		Street:       p.Street,
		Street2:      p.Street2,
		City:         p.City,
		State:        p.State,
		Zip:          p.Zip,
		Country:      p.Country,
		VAT:          p.VAT,
		IsCompany:    p.IsCompany,
		CustomerRank: p.CustomerRank,
		SupplierRank: p.SupplierRank,
		CreatedAt:    p.CreatedAt,
	}
}
