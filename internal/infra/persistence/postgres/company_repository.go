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

// companyRepository implements the repository.CompanyRepository interface.
type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository is the constructor for companyRepository.
func NewCompanyRepository(db *gorm.DB) repository.CompanyRepository {
	return &companyRepository{db: db}
}

// FindByID retrieves a single company by its unique ID.
func (repo *companyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	var companyM model.CompanyModel
	if err := repo.db.WithContext(ctx).First(&companyM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCompanyNotFound
		}

		return nil, errors.Wrap(err, "failed to find company by ID")
	}

	return toCompanyDomain(&companyM), nil
}

// FindByCUIT retrieves a single company by its tax registration code.
func (repo *companyRepository) FindByCUIT(ctx context.Context, cuit string) (*entity.Company, error) {
	var companyM model.CompanyModel
	if err := repo.db.WithContext(ctx).First(&companyM, "cuit = ?", cuit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCompanyNotFound
		}

		return nil, errors.Wrap(err, "failed to find company by CUIT")
	}

	return toCompanyDomain(&companyM), nil
}

// Create persists a new company. A unique constraint violation on the CUIT
// maps to the same conflict variant the pre-insert check produces.
func (repo *companyRepository) Create(ctx context.Context, company *entity.Company) error {
	companyM := fromCompanyDomain(company)

	if err := repo.db.WithContext(ctx).Create(companyM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrCompanyAlreadyAdhered.WrapMessage("cuit already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required company information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create company")
	}

	// Update the entity with generated values
	company.ID = companyM.ID
	company.CreatedAt = companyM.CreatedAt
	company.UpdatedAt = companyM.UpdatedAt

	return nil
}

// ListAdheredLastMonth returns companies whose adhesion date falls within
// the previous calendar month.
func (repo *companyRepository) ListAdheredLastMonth(ctx context.Context) ([]*entity.Company, error) {
	var companyModels []*model.CompanyModel
	err := repo.db.WithContext(ctx).
		Where("adhesion_date >= date_trunc('month', current_date - interval '1 month')").
		Where("adhesion_date < date_trunc('month', current_date)").
		Order("adhesion_date DESC").
		Find(&companyModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list companies adhered last month")
	}

	return toCompanyDomainSlice(companyModels), nil
}

// ListWithTransfersLastMonth returns the distinct companies that made at
// least one transfer during the previous calendar month.
func (repo *companyRepository) ListWithTransfersLastMonth(ctx context.Context) ([]*entity.Company, error) {
	var companyModels []*model.CompanyModel
	err := repo.db.WithContext(ctx).
		Distinct("companies.*").
		Joins("JOIN transfers ON transfers.company_id = companies.id").
		Where("transfers.transfer_date >= date_trunc('month', current_date - interval '1 month')").
		Where("transfers.transfer_date < date_trunc('month', current_date)").
		Find(&companyModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list companies with transfers last month")
	}

	return toCompanyDomainSlice(companyModels), nil
}

// --- Mapper Functions ---

// toCompanyDomain converts a GORM CompanyModel to a domain Company entity.
func toCompanyDomain(data *model.CompanyModel) *entity.Company {
	if data == nil {
		return nil
	}

	return &entity.Company{
		ID:           data.ID,
		CUIT:         data.CUIT,
		BusinessName: data.BusinessName,
		AdhesionDate: data.AdhesionDate,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toCompanyDomainSlice(data []*model.CompanyModel) []*entity.Company {
	companies := make([]*entity.Company, 0, len(data))
	for _, companyM := range data {
		companies = append(companies, toCompanyDomain(companyM))
	}

	return companies
}

// fromCompanyDomain converts a domain Company entity to a GORM CompanyModel.
func fromCompanyDomain(data *entity.Company) *model.CompanyModel {
	if data == nil {
		return nil
	}

	return &model.CompanyModel{
		ID:           data.ID,
		CUIT:         data.CUIT,
		BusinessName: data.BusinessName,
		AdhesionDate: data.AdhesionDate,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
