package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ledger/internal/domain/entity"
)

// CompanyView is the outward-facing representation of an adhered company.
type CompanyView struct {
	ID           uuid.UUID `json:"id"`
	CUIT         string    `json:"cuit"`
	BusinessName string    `json:"businessName"`
	AdhesionDate time.Time `json:"adhesionDate"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewCompanyView converts a company entity to its outward-facing shape.
func NewCompanyView(company *entity.Company) *CompanyView {
	return &CompanyView{
		ID:           company.ID,
		CUIT:         company.CUIT,
		BusinessName: company.BusinessName,
		AdhesionDate: company.AdhesionDate,
		CreatedAt:    company.CreatedAt,
		UpdatedAt:    company.UpdatedAt,
	}
}

// NewCompanyViews converts a slice of company entities.
func NewCompanyViews(companies []*entity.Company) []*CompanyView {
	views := make([]*CompanyView, 0, len(companies))
	for _, company := range companies {
		views = append(views, NewCompanyView(company))
	}

	return views
}

// AdhereCompanyInput defines the data required to adhere a new company.
type AdhereCompanyInput struct {
	CUIT         string
	BusinessName string
}

// AdhereCompanyOutput returns the newly adhered company.
type AdhereCompanyOutput struct {
	Company *CompanyView
}

// CompanyListOutput returns a filtered company projection.
type CompanyListOutput struct {
	Companies []*CompanyView
}

// CompanyUsecase defines the interface for company operations.
type CompanyUsecase interface {
	// Adhere registers a company under its CUIT, which must not already
	// be adhered.
	Adhere(ctx context.Context, input *AdhereCompanyInput) (*AdhereCompanyOutput, error)

	// ListAdheredLastMonth returns companies that adhered during the
	// previous calendar month.
	ListAdheredLastMonth(ctx context.Context) (*CompanyListOutput, error)

	// ListWithTransfersLastMonth returns companies with at least one
	// transfer during the previous calendar month.
	ListWithTransfersLastMonth(ctx context.Context) (*CompanyListOutput, error)
}
