package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ledger/internal/domain/entity"
)

// TransferView is the outward-facing representation of a recorded transfer.
type TransferView struct {
	ID            uuid.UUID `json:"id"`
	Amount        float64   `json:"amount"`
	CompanyID     uuid.UUID `json:"companyId"`
	DebitAccount  string    `json:"debitAccount"`
	CreditAccount string    `json:"creditAccount"`
	TransferDate  time.Time `json:"transferDate"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// NewTransferView converts a transfer entity to its outward-facing shape.
func NewTransferView(transfer *entity.Transfer) *TransferView {
	return &TransferView{
		ID:            transfer.ID,
		Amount:        transfer.Amount,
		CompanyID:     transfer.CompanyID,
		DebitAccount:  transfer.DebitAccount,
		CreditAccount: transfer.CreditAccount,
		TransferDate:  transfer.TransferDate,
		CreatedAt:     transfer.CreatedAt,
		UpdatedAt:     transfer.UpdatedAt,
	}
}

// NewTransferViews converts a slice of transfer entities.
func NewTransferViews(transfers []*entity.Transfer) []*TransferView {
	views := make([]*TransferView, 0, len(transfers))
	for _, transfer := range transfers {
		views = append(views, NewTransferView(transfer))
	}

	return views
}

// CreateTransferInput defines the data required to record a transfer.
type CreateTransferInput struct {
	Amount        float64
	CompanyID     uuid.UUID
	DebitAccount  string
	CreditAccount string
}

// CreateTransferOutput returns the newly recorded transfer.
type CreateTransferOutput struct {
	Transfer *TransferView
}

// TransferListOutput returns a filtered transfer projection.
type TransferListOutput struct {
	Transfers []*TransferView
}

// TransferUsecase defines the interface for transfer operations.
type TransferUsecase interface {
	// Create records a transfer against an existing company.
	Create(ctx context.Context, input *CreateTransferInput) (*CreateTransferOutput, error)

	// ListLastMonth returns transfers made during the previous calendar month.
	ListLastMonth(ctx context.Context) (*TransferListOutput, error)
}
