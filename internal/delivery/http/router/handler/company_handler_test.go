package handler

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/errors"
	mockUsecase "ledger/internal/mocks/usecase"
	"ledger/internal/usecase"
)

func companyView(cuit string) *usecase.CompanyView {
	return &usecase.CompanyView{
		ID:           uuid.New(),
		CUIT:         cuit,
		BusinessName: "Empresa SA",
	}
}

func TestCompanyHandler_Adhere_Success(t *testing.T) {
	uc := mockUsecase.NewMockCompanyUsecase(t)
	h := NewCompanyHandler(uc, newDiscardLogger())

	uc.EXPECT().
		Adhere(mock.Anything, mock.MatchedBy(func(input *usecase.AdhereCompanyInput) bool {
			return input.CUIT == "30-12345678-0" && input.BusinessName == "Empresa SA"
		})).
		Return(&usecase.AdhereCompanyOutput{Company: companyView("30-12345678-0")}, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/api/companies/adhere",
		`{"cuit":"30-12345678-0","businessName":"Empresa SA"}`)

	require.NoError(t, h.Adhere(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])

	company := body["data"].(map[string]any)["company"].(map[string]any)
	assert.Equal(t, "30-12345678-0", company["cuit"])
}

func TestCompanyHandler_Adhere_MissingBusinessName(t *testing.T) {
	uc := mockUsecase.NewMockCompanyUsecase(t)
	h := NewCompanyHandler(uc, newDiscardLogger())

	c, _ := newJSONContext(t, http.MethodPost, "/api/companies/adhere",
		`{"cuit":"30-12345678-0"}`)

	err := h.Adhere(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCompanyHandler_Adhere_PassesThroughConflict(t *testing.T) {
	uc := mockUsecase.NewMockCompanyUsecase(t)
	h := NewCompanyHandler(uc, newDiscardLogger())

	uc.EXPECT().
		Adhere(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrCompanyAlreadyAdhered.WrapMessage("adhere failed"))

	c, _ := newJSONContext(t, http.MethodPost, "/api/companies/adhere",
		`{"cuit":"30-12345678-0","businessName":"Empresa SA"}`)

	err := h.Adhere(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCompanyAlreadyAdhered))
}

func TestCompanyHandler_ListAdheredLastMonth_CountsResults(t *testing.T) {
	uc := mockUsecase.NewMockCompanyUsecase(t)
	h := NewCompanyHandler(uc, newDiscardLogger())

	uc.EXPECT().
		ListAdheredLastMonth(mock.Anything).
		Return(&usecase.CompanyListOutput{Companies: []*usecase.CompanyView{
			companyView("30-12345678-0"),
			companyView("30-23456789-1"),
		}}, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/api/companies/adhered-last-month", "")

	require.NoError(t, h.ListAdheredLastMonth(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, float64(2), body["results"])
	assert.Len(t, body["data"].(map[string]any)["companies"], 2)
}

func TestCompanyHandler_ListWithTransfersLastMonth_EmptyStillCounts(t *testing.T) {
	uc := mockUsecase.NewMockCompanyUsecase(t)
	h := NewCompanyHandler(uc, newDiscardLogger())

	uc.EXPECT().
		ListWithTransfersLastMonth(mock.Anything).
		Return(&usecase.CompanyListOutput{Companies: []*usecase.CompanyView{}}, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/api/companies/with-transfers-last-month", "")

	require.NoError(t, h.ListWithTransfersLastMonth(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(0), body["results"])
}
