package handlers

import (
	"log/slog"
	"net/http"

	"funds-mover/internal/dto"
	"funds-mover/internal/errors"
	"funds-mover/internal/models"
	"funds-mover/internal/services"

	"github.com/labstack/echo/v4"
)

// TransactionHandler serves the transaction history
type TransactionHandler struct {
	history services.HistoryServiceInterface
	logger  *slog.Logger
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(history services.HistoryServiceInterface, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{history: history, logger: logger}
}

// ListTransactions returns history entries newest first, optionally for one account
// @Summary List transactions
// @Tags Transactions
// @Produce json
// @Param account query string false "pension, savings or currentAccount"
// @Success 200 {object} dto.TransactionListResponse
// @Failure 400 {object} errors.ErrorResponse "ACCOUNT_002 - Invalid account ID"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	account := c.QueryParam("account")
	if account == "" {
		return c.JSON(http.StatusOK, dto.NewTransactionListResponse(h.history.ListAll()))
	}

	accountID, err := models.ParseAccountID(account)
	if err != nil {
		return SendError(c, errors.AccountInvalidID, errors.WithDetails(err.Error()))
	}

	transactions, err := h.history.ListByAccount(accountID)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionListResponse(transactions))
}
