package impl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	"ledger/internal/errors"
	mockRepo "ledger/internal/mocks/repository"
	"ledger/internal/usecase"
)

// transferServiceFixtures holds all test dependencies for transfer service tests.
type transferServiceFixtures struct {
	service      usecase.TransferUsecase
	transferRepo *mockRepo.MockTransferRepository
	companyRepo  *mockRepo.MockCompanyRepository
}

func createTestTransferService(t *testing.T) transferServiceFixtures {
	transferRepo := mockRepo.NewMockTransferRepository(t)
	companyRepo := mockRepo.NewMockCompanyRepository(t)

	service := NewTransferService(TransferServiceParams{
		TransferRepo: transferRepo,
		CompanyRepo:  companyRepo,
		Logger:       newDiscardLogger(),
	})

	return transferServiceFixtures{
		service:      service,
		transferRepo: transferRepo,
		companyRepo:  companyRepo,
	}
}

func TestTransferService_Create_Success(t *testing.T) {
	fx := createTestTransferService(t)

	ctx := context.Background()
	companyID := uuid.New()
	input := &usecase.CreateTransferInput{
		Amount:        10000.50,
		CompanyID:     companyID,
		DebitAccount:  "1234567890",
		CreditAccount: "0987654321",
	}

	fx.companyRepo.EXPECT().
		FindByID(ctx, companyID).
		Return(&entity.Company{ID: companyID, CUIT: "30-12345678-0"}, nil)
	fx.transferRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Transfer")).
		Run(func(ctx context.Context, transfer *entity.Transfer) {
			transfer.ID = uuid.New()
			transfer.TransferDate = time.Now()
		}).
		Return(nil)

	output, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, companyID, output.Transfer.CompanyID)
	assert.InDelta(t, 10000.50, output.Transfer.Amount, 0.001)
	assert.False(t, output.Transfer.TransferDate.IsZero())
}

func TestTransferService_Create_UnknownCompany(t *testing.T) {
	fx := createTestTransferService(t)

	ctx := context.Background()
	companyID := uuid.New()

	fx.companyRepo.EXPECT().
		FindByID(ctx, companyID).
		Return(nil, repository.ErrCompanyNotFound)

	output, err := fx.service.Create(ctx, &usecase.CreateTransferInput{
		Amount:        100,
		CompanyID:     companyID,
		DebitAccount:  "1234567890",
		CreditAccount: "0987654321",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCompanyNotFound))
}

func TestTransferService_ListLastMonth(t *testing.T) {
	fx := createTestTransferService(t)

	ctx := context.Background()
	transfers := []*entity.Transfer{
		{ID: uuid.New(), Amount: 25000.30},
		{ID: uuid.New(), Amount: 15000.75},
	}

	fx.transferRepo.EXPECT().ListLastMonth(ctx).Return(transfers, nil)

	output, err := fx.service.ListLastMonth(ctx)

	require.NoError(t, err)
	assert.Len(t, output.Transfers, 2)
}
