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

// transferService implements the TransferUsecase interface.
type transferService struct {
	transferRepo repository.TransferRepository
	companyRepo  repository.CompanyRepository
	logger       *slog.Logger
}

// TransferServiceParams holds dependencies for transferService, injected by Fx.
type TransferServiceParams struct {
	fx.In

	TransferRepo repository.TransferRepository
	CompanyRepo  repository.CompanyRepository
	Logger       *slog.Logger
}

// NewTransferService is the constructor for transferService.
func NewTransferService(params TransferServiceParams) usecase.TransferUsecase {
	return &transferService{
		transferRepo: params.TransferRepo,
		companyRepo:  params.CompanyRepo,
		logger:       params.Logger,
	}
}

// Create records a transfer against an existing company. The company
// lookup doubles as the friendly error for a dangling reference; the
// foreign key constraint backs it up.
func (srv *transferService) Create(ctx context.Context, input *usecase.CreateTransferInput) (*usecase.CreateTransferOutput, error) {
	srv.logger.Debug("Recording transfer", slog.Any("companyID", input.CompanyID))

	if _, err := srv.companyRepo.FindByID(ctx, input.CompanyID); err != nil {
		srv.logger.Warn("Transfer rejected", slog.Any("companyID", input.CompanyID), slog.Any("error", err))

		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCompanyNotFound, "create transfer failed")
		}

		return nil, errors.Wrap(err, "failed to find company")
	}

	transfer := &entity.Transfer{
		Amount:        input.Amount,
		CompanyID:     input.CompanyID,
		DebitAccount:  input.DebitAccount,
		CreditAccount: input.CreditAccount,
		TransferDate:  time.Now(),
	}

	if err := srv.transferRepo.Create(ctx, transfer); err != nil {
		srv.logger.Warn("Transfer failed", slog.Any("companyID", input.CompanyID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create transfer")
	}

	srv.logger.Debug("Transfer recorded", slog.Any("transferID", transfer.ID))

	return &usecase.CreateTransferOutput{Transfer: usecase.NewTransferView(transfer)}, nil
}

// ListLastMonth returns transfers made during the previous calendar month.
func (srv *transferService) ListLastMonth(ctx context.Context) (*usecase.TransferListOutput, error) {
	transfers, err := srv.transferRepo.ListLastMonth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transfers last month")
	}

	return &usecase.TransferListOutput{Transfers: usecase.NewTransferViews(transfers)}, nil
}
