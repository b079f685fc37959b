// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
)

// TransferRepository defines the standard operations for transfer persistence.
type TransferRepository interface {
	// Create persists a new transfer entity to the storage.
	Create(ctx context.Context, transfer *entity.Transfer) error

	// ListByCompany returns all transfers recorded for a company, most recent first.
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.Transfer, error)

	// ListLastMonth returns transfers whose transfer date falls within the
	// previous calendar month, most recent first.
	ListLastMonth(ctx context.Context) ([]*entity.Transfer, error)
}
