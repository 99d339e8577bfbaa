package handlers

import (
	"log/slog"
	"net/http"

	"funds-mover/internal/dto"
	"funds-mover/internal/errors"
	"funds-mover/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	ledger services.LedgerServiceInterface
	logger *slog.Logger
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(ledger services.LedgerServiceInterface, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		ledger: ledger,
		logger: logger,
	}
}

// ListAccounts returns the three accounts and their combined balance
// @Summary List accounts
// @Tags Accounts
// @Produce json
// @Success 200 {object} dto.AccountListResponse
// @Router /accounts [get]
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.NewAccountListResponse(h.ledger.Accounts()))
}

// GetAccount returns a single account
// @Summary Get account
// @Tags Accounts
// @Produce json
// @Param accountId path string true "pension, savings or currentAccount"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} errors.ErrorResponse "ACCOUNT_002 - Invalid account ID"
// @Router /accounts/{accountId} [get]
func (h *AccountHandler) GetAccount(c echo.Context) error {
	accountID, err := parseAccountParam(c)
	if err != nil {
		return SendError(c, errors.AccountInvalidID, errors.WithDetails(err.Error()))
	}

	account, err := h.ledger.GetAccount(accountID)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, dto.NewAccountResponse(account))
}

// UpdateBalance overwrites the balance of an account
// @Summary Update balance
// @Tags Accounts
// @Accept json
// @Produce json
// @Param accountId path string true "pension, savings or currentAccount"
// @Param request body dto.UpdateBalanceRequest true "New balance"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Balance storage error"
// @Router /accounts/{accountId}/balance [put]
func (h *AccountHandler) UpdateBalance(c echo.Context) error {
	accountID, err := parseAccountParam(c)
	if err != nil {
		return SendError(c, errors.AccountInvalidID, errors.WithDetails(err.Error()))
	}

	var req dto.UpdateBalanceRequest
	if details, ok := bindRequest(c, &req); !ok {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(details...))
	}

	balance, err := decimal.NewFromString(req.Balance.String())
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid balance"))
	}

	account, err := h.ledger.UpdateBalance(accountID, balance)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, dto.NewAccountResponse(account))
}
