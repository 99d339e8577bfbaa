package handlers

import (
	"log/slog"
	"net/http"

	"funds-mover/internal/dto"
	"funds-mover/internal/errors"
	"funds-mover/internal/services"

	"github.com/labstack/echo/v4"
)

// TransferHandler handles the move-funds journey
type TransferHandler struct {
	transfers services.TransferFlowServiceInterface
	ledger    services.LedgerServiceInterface
	logger    *slog.Logger
}

// NewTransferHandler creates a new transfer handler
func NewTransferHandler(transfers services.TransferFlowServiceInterface, ledger services.LedgerServiceInterface, logger *slog.Logger) *TransferHandler {
	return &TransferHandler{
		transfers: transfers,
		ledger:    ledger,
		logger:    logger,
	}
}

// ValidateTransfer checks an amount before the review step
// @Summary Validate transfer amount
// @Tags Transfers
// @Accept json
// @Produce json
// @Param request body dto.TransferRequest true "Transfer details"
// @Success 200 {object} dto.TransferValidationResponse
// @Failure 422 {object} errors.ErrorResponse "TRANSFER_005 - Insufficient funds"
// @Router /transfers/validate [post]
func (h *TransferHandler) ValidateTransfer(c echo.Context) error {
	var req dto.TransferRequest
	if details, ok := bindRequest(c, &req); !ok {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(details...))
	}

	from, to, amount, err := parseTransfer(req.FromAccount, req.ToAccount, req.Amount.String())
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	if err := h.transfers.ValidateAmount(from, to, amount); err != nil {
		return sendServiceError(c, h.logger, err)
	}

	source, err := h.ledger.GetAccount(from)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, dto.TransferValidationResponse{
		Valid:            true,
		AvailableBalance: source.Balance,
	})
}

// ReviewTransfer projects balances before the PIN is entered
// @Summary Review transfer
// @Tags Transfers
// @Accept json
// @Produce json
// @Param request body dto.TransferRequest true "Transfer details"
// @Success 200 {object} dto.TransferReviewResponse
// @Router /transfers/review [post]
func (h *TransferHandler) ReviewTransfer(c echo.Context) error {
	var req dto.TransferRequest
	if details, ok := bindRequest(c, &req); !ok {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(details...))
	}

	from, to, amount, err := parseTransfer(req.FromAccount, req.ToAccount, req.Amount.String())
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	review, err := h.transfers.Review(from, to, amount)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransferReviewResponse(review))
}

// ConfirmTransfer verifies the PIN and executes the transfer
// @Summary Confirm transfer
// @Tags Transfers
// @Accept json
// @Produce json
// @Param request body dto.ConfirmTransferRequest true "Transfer details with PIN"
// @Success 201 {object} dto.TransferConfirmationResponse
// @Failure 401 {object} errors.ErrorResponse "PIN_001 - Incorrect PIN"
// @Failure 422 {object} errors.ErrorResponse "TRANSFER_005 - Insufficient funds"
// @Router /transfers/confirm [post]
func (h *TransferHandler) ConfirmTransfer(c echo.Context) error {
	var req dto.ConfirmTransferRequest
	if details, ok := bindRequest(c, &req); !ok {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(details...))
	}

	from, to, amount, err := parseTransfer(req.FromAccount, req.ToAccount, req.Amount.String())
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	confirmation, err := h.transfers.Confirm(from, to, amount, req.Pin)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, dto.NewTransferConfirmationResponse(confirmation))
}
