package handler

import (
	"log/slog"
	"net/http"

	"ledger/internal/delivery/http/response"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TransferHandler holds dependencies for the transfer endpoints.
type TransferHandler struct {
	uc     usecase.TransferUsecase
	logger *slog.Logger
}

// NewTransferHandler is the constructor for TransferHandler.
func NewTransferHandler(uc usecase.TransferUsecase, logger *slog.Logger) *TransferHandler {
	return &TransferHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateTransferRequest represents the request body for recording a transfer.
type CreateTransferRequest struct {
	Amount        float64   `json:"amount" validate:"required,gt=0"`
	CompanyID     uuid.UUID `json:"companyId" validate:"required"`
	DebitAccount  string    `json:"debitAccount" validate:"required"`
	CreditAccount string    `json:"creditAccount" validate:"required"`
}

// Create handles POST /api/transfers.
func (h *TransferHandler) Create(c echo.Context) error {
	var req CreateTransferRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("bind transfer request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Create(c.Request().Context(), &usecase.CreateTransferInput{
		Amount:        req.Amount,
		CompanyID:     req.CompanyID,
		DebitAccount:  req.DebitAccount,
		CreditAccount: req.CreditAccount,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, echo.Map{"transfer": output.Transfer})
}

// ListLastMonth handles GET /api/transfers/last-month.
func (h *TransferHandler) ListLastMonth(c echo.Context) error {
	output, err := h.uc.ListLastMonth(c.Request().Context())
	if err != nil {
		return err
	}

	return response.SuccessList(c, http.StatusOK, len(output.Transfers),
		echo.Map{"transfers": output.Transfers})
}
