package handler

import (
	"log/slog"
	"net/http"

	"ledger/internal/delivery/http/response"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CompanyHandler holds dependencies for the company endpoints.
type CompanyHandler struct {
	uc     usecase.CompanyUsecase
	logger *slog.Logger
}

// NewCompanyHandler is the constructor for CompanyHandler.
func NewCompanyHandler(uc usecase.CompanyUsecase, logger *slog.Logger) *CompanyHandler {
	return &CompanyHandler{
		uc:     uc,
		logger: logger,
	}
}

// AdhereCompanyRequest represents the request body for company adhesion.
type AdhereCompanyRequest struct {
	CUIT         string `json:"cuit" validate:"required"`
	BusinessName string `json:"businessName" validate:"required"`
}

// Adhere handles POST /api/companies/adhere.
func (h *CompanyHandler) Adhere(c echo.Context) error {
	var req AdhereCompanyRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("bind adhere request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Adhere(c.Request().Context(), &usecase.AdhereCompanyInput{
		CUIT:         req.CUIT,
		BusinessName: req.BusinessName,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, echo.Map{"company": output.Company})
}

// ListWithTransfersLastMonth handles GET /api/companies/with-transfers-last-month.
func (h *CompanyHandler) ListWithTransfersLastMonth(c echo.Context) error {
	output, err := h.uc.ListWithTransfersLastMonth(c.Request().Context())
	if err != nil {
		return err
	}

	return response.SuccessList(c, http.StatusOK, len(output.Companies),
		echo.Map{"companies": output.Companies})
}

// ListAdheredLastMonth handles GET /api/companies/adhered-last-month.
func (h *CompanyHandler) ListAdheredLastMonth(c echo.Context) error {
	output, err := h.uc.ListAdheredLastMonth(c.Request().Context())
	if err != nil {
		return err
	}

	return response.SuccessList(c, http.StatusOK, len(output.Companies),
		echo.Map{"companies": output.Companies})
}
