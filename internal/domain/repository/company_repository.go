// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCompanyNotFound is a domain-specific error returned when a company is not found.
var ErrCompanyNotFound = errors.New("company not found")

// CompanyRepository defines the standard operations for company persistence.
type CompanyRepository interface {
	// FindByID retrieves a single company by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Company, error)

	// FindByCUIT retrieves a single company by its tax registration code.
	FindByCUIT(ctx context.Context, cuit string) (*entity.Company, error)

	// Create persists a new company entity to the storage.
	Create(ctx context.Context, company *entity.Company) error

	// ListAdheredLastMonth returns companies whose adhesion date falls
	// within the previous calendar month.
	ListAdheredLastMonth(ctx context.Context) ([]*entity.Company, error)

	// ListWithTransfersLastMonth returns companies that made at least one
	// transfer during the previous calendar month.
	ListWithTransfersLastMonth(ctx context.Context) ([]*entity.Company, error)
}
