package handlers

import (
	stderrors "errors"
	"log/slog"
	"strings"

	"funds-mover/internal/errors"
	"funds-mover/internal/models"
	"funds-mover/internal/services"
	"funds-mover/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// parseAccountParam reads and validates the :accountId path parameter
func parseAccountParam(c echo.Context) (models.AccountID, error) {
	return models.ParseAccountID(c.Param("accountId"))
}

// bindRequest binds the request body into req and runs the validator.
// On failure it returns the details to report to the client.
func bindRequest(c echo.Context, req interface{}) ([]string, bool) {
	if err := c.Bind(req); err != nil {
		return []string{"Invalid request body"}, false
	}

	if err := c.Validate(req); err != nil {
		return validation.FormatErrors(err), false
	}

	return nil, true
}

// parseTransfer converts validated request fields into domain values
func parseTransfer(from, to, amount string) (models.AccountID, models.AccountID, decimal.Decimal, error) {
	fromID, err := models.ParseAccountID(from)
	if err != nil {
		return "", "", decimal.Zero, err
	}

	toID, err := models.ParseAccountID(to)
	if err != nil {
		return "", "", decimal.Zero, err
	}

	value, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return "", "", decimal.Zero, err
	}

	return fromID, toID, value, nil
}

// sendServiceError maps ledger and transfer errors onto API error codes
func sendServiceError(c echo.Context, logger *slog.Logger, err error) error {
	switch {
	case stderrors.Is(err, services.ErrAccountNotFound):
		return SendError(c, errors.AccountNotFound)
	case stderrors.Is(err, models.ErrInvalidAccountID):
		return SendError(c, errors.AccountInvalidID)
	case stderrors.Is(err, services.ErrInsufficientFunds):
		return SendError(c, errors.TransferInsufficientFunds, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrSameAccountTransfer):
		return SendError(c, errors.TransferSameAccount)
	case stderrors.Is(err, services.ErrInvalidAmount), stderrors.Is(err, services.ErrTooManyDecimalPlaces):
		return SendError(c, errors.TransferInvalidAmount, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrIncorrectPin):
		return SendError(c, errors.PinIncorrect)
	case stderrors.Is(err, services.ErrInvalidPinFormat):
		return SendError(c, errors.PinInvalidFormat)
	case stderrors.Is(err, services.ErrPersistenceFailed):
		return SendStorageError(c, logger, err)
	default:
		return SendSystemError(c, logger, err)
	}
}
