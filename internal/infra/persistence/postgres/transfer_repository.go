package postgres

import (
	"context"

	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	"ledger/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// transferRepository implements the repository.TransferRepository interface.
type transferRepository struct {
	db *gorm.DB
}

// NewTransferRepository is the constructor for transferRepository.
func NewTransferRepository(db *gorm.DB) repository.TransferRepository {
	return &transferRepository{db: db}
}

// Create persists a new transfer. A foreign key violation on the company
// reference maps to the company-not-found variant.
func (repo *transferRepository) Create(ctx context.Context, transfer *entity.Transfer) error {
	transferM := fromTransferDomain(transfer)

	if err := repo.db.WithContext(ctx).Create(transferM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCompanyNotFound.WrapMessage("transfer references an unknown company")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required transfer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create transfer")
	}

	// Update the entity with generated values
	transfer.ID = transferM.ID
	transfer.CreatedAt = transferM.CreatedAt
	transfer.UpdatedAt = transferM.UpdatedAt

	return nil
}

// ListByCompany returns all transfers recorded for a company, most recent first.
func (repo *transferRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.Transfer, error) {
	var transferModels []*model.TransferModel
	err := repo.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("transfer_date DESC").
		Find(&transferModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transfers by company")
	}

	return toTransferDomainSlice(transferModels), nil
}

// ListLastMonth returns transfers whose transfer date falls within the
// previous calendar month, most recent first.
func (repo *transferRepository) ListLastMonth(ctx context.Context) ([]*entity.Transfer, error) {
	var transferModels []*model.TransferModel
	err := repo.db.WithContext(ctx).
		Where("transfer_date >= date_trunc('month', current_date - interval '1 month')").
		Where("transfer_date < date_trunc('month', current_date)").
		Order("transfer_date DESC").
		Find(&transferModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transfers for last month")
	}

	return toTransferDomainSlice(transferModels), nil
}

// --- Mapper Functions ---

// toTransferDomain converts a GORM TransferModel to a domain Transfer entity.
func toTransferDomain(data *model.TransferModel) *entity.Transfer {
	if data == nil {
		return nil
	}

	return &entity.Transfer{
		ID:            data.ID,
		Amount:        data.Amount,
		CompanyID:     data.CompanyID,
		DebitAccount:  data.DebitAccount,
		CreditAccount: data.CreditAccount,
		TransferDate:  data.TransferDate,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toTransferDomainSlice(data []*model.TransferModel) []*entity.Transfer {
	transfers := make([]*entity.Transfer, 0, len(data))
	for _, transferM := range data {
		transfers = append(transfers, toTransferDomain(transferM))
	}

	return transfers
}

// fromTransferDomain converts a domain Transfer entity to a GORM TransferModel.
func fromTransferDomain(data *entity.Transfer) *model.TransferModel {
	if data == nil {
		return nil
	}

	return &model.TransferModel{
		ID:            data.ID,
		Amount:        data.Amount,
		CompanyID:     data.CompanyID,
		DebitAccount:  data.DebitAccount,
		CreditAccount: data.CreditAccount,
		TransferDate:  data.TransferDate,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
