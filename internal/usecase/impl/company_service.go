package impl

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	"ledger/internal/errors"
	"ledger/internal/usecase"
)

// companyService implements the CompanyUsecase interface.
type companyService struct {
	companyRepo repository.CompanyRepository
	logger      *slog.Logger
}

// CompanyServiceParams holds dependencies for companyService, injected by Fx.
type CompanyServiceParams struct {
	fx.In

	CompanyRepo repository.CompanyRepository
	Logger      *slog.Logger
}

// NewCompanyService is the constructor for companyService.
func NewCompanyService(params CompanyServiceParams) usecase.CompanyUsecase {
	return &companyService{
		companyRepo: params.CompanyRepo,
		logger:      params.Logger,
	}
}

// Adhere registers a company under its CUIT. The pre-check produces a
// friendly conflict error; the unique constraint on cuit backs it up and
// the repository maps that violation to the same error.
func (srv *companyService) Adhere(ctx context.Context, input *usecase.AdhereCompanyInput) (*usecase.AdhereCompanyOutput, error) {
	srv.logger.Debug("Starting company adhesion", slog.String("cuit", input.CUIT))

	if _, err := srv.companyRepo.FindByCUIT(ctx, input.CUIT); err == nil {
		srv.logger.Warn("Adhesion rejected", slog.String("cuit", input.CUIT), slog.Any("error", domainerrors.ErrCompanyAlreadyAdhered))

		return nil, errors.Wrap(domainerrors.ErrCompanyAlreadyAdhered, "adhere failed")
	} else if !errors.Is(err, repository.ErrCompanyNotFound) {
		return nil, errors.Wrap(err, "failed to check cuit availability")
	}

	company := &entity.Company{
		CUIT:         input.CUIT,
		BusinessName: input.BusinessName,
		AdhesionDate: time.Now(),
	}

	if err := srv.companyRepo.Create(ctx, company); err != nil {
		srv.logger.Warn("Adhesion failed", slog.String("cuit", input.CUIT), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create company")
	}

	srv.logger.Debug("Company adhered", slog.Any("companyID", company.ID))

	return &usecase.AdhereCompanyOutput{Company: usecase.NewCompanyView(company)}, nil
}

// ListAdheredLastMonth returns companies that adhered during the previous
// calendar month. The date-range filter runs in the store.
func (srv *companyService) ListAdheredLastMonth(ctx context.Context) (*usecase.CompanyListOutput, error) {
	companies, err := srv.companyRepo.ListAdheredLastMonth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list companies adhered last month")
	}

	return &usecase.CompanyListOutput{Companies: usecase.NewCompanyViews(companies)}, nil
}

// ListWithTransfersLastMonth returns companies with at least one transfer
// during the previous calendar month.
func (srv *companyService) ListWithTransfersLastMonth(ctx context.Context) (*usecase.CompanyListOutput, error) {
	companies, err := srv.companyRepo.ListWithTransfersLastMonth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list companies with transfers last month")
	}

	return &usecase.CompanyListOutput{Companies: usecase.NewCompanyViews(companies)}, nil
}
