package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"funds-mover/internal/models"

	"github.com/shopspring/decimal"
)

var ErrTooManyDecimalPlaces = errors.New("amount cannot have more than 2 decimal places")

type transferFlowService struct {
	ledger  LedgerServiceInterface
	pins    PinVerifierInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

// NewTransferFlowService creates the service behind the move-funds, review and PIN screens
func NewTransferFlowService(
	ledger LedgerServiceInterface,
	pins PinVerifierInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) TransferFlowServiceInterface {
	return &transferFlowService{
		ledger:  ledger,
		pins:    pins,
		metrics: metrics,
		logger:  logger,
	}
}

// ValidateAmount checks an entered amount against the current source balance
func (s *transferFlowService) ValidateAmount(from, to models.AccountID, amount decimal.Decimal) error {
	_, _, err := s.validate(from, to, amount)
	return err
}

// Review projects both balances after the transfer without applying it
func (s *transferFlowService) Review(from, to models.AccountID, amount decimal.Decimal) (*models.TransferReview, error) {
	source, destination, err := s.validate(from, to, amount)
	if err != nil {
		return nil, err
	}

	return models.NewTransferReview(source, destination, amount), nil
}

// Confirm verifies the PIN and applies the transfer to the ledger
func (s *transferFlowService) Confirm(from, to models.AccountID, amount decimal.Decimal, pin string) (*models.TransferConfirmation, error) {
	start := time.Now()

	if _, _, err := s.validate(from, to, amount); err != nil {
		s.recordTransfer("rejected", start)
		return nil, err
	}

	if err := s.pins.Verify(pin); err != nil {
		s.metrics.IncrementCounter("pin_attempt", map[string]string{"result": "failed"})
		s.recordTransfer("rejected", start)
		s.logger.Warn("transfer PIN rejected", "from_account", from, "to_account", to, "error", err)
		return nil, err
	}
	s.metrics.IncrementCounter("pin_attempt", map[string]string{"result": "success"})

	transfer, err := s.ledger.TransferFunds(from, to, amount)
	if err != nil {
		s.recordTransfer("failed", start)
		return nil, fmt.Errorf("failed to transfer funds: %w", err)
	}

	s.recordTransfer("success", start)
	s.metrics.RecordGauge("transfer_amount", amount.InexactFloat64(), nil)

	return models.NewTransferConfirmation(transfer), nil
}

func (s *transferFlowService) validate(from, to models.AccountID, amount decimal.Decimal) (models.Account, models.Account, error) {
	if err := models.NewTransfer(from, to, amount).Validate(); err != nil {
		if errors.Is(err, models.ErrInvalidAccountID) {
			return models.Account{}, models.Account{}, fmt.Errorf("%w: %q -> %q", ErrAccountNotFound, from, to)
		}
		return models.Account{}, models.Account{}, err
	}

	if !models.HasAtMostTwoDecimals(amount) {
		return models.Account{}, models.Account{}, ErrTooManyDecimalPlaces
	}

	source, err := s.ledger.GetAccount(from)
	if err != nil {
		return models.Account{}, models.Account{}, err
	}

	destination, err := s.ledger.GetAccount(to)
	if err != nil {
		return models.Account{}, models.Account{}, err
	}

	if !source.CanDebit(amount) {
		return models.Account{}, models.Account{}, fmt.Errorf("%w: %s balance is %s",
			ErrInsufficientFunds, from, models.FormatGBP(source.Balance))
	}

	return source, destination, nil
}

func (s *transferFlowService) recordTransfer(status string, start time.Time) {
	s.metrics.IncrementCounter("transfers_total", map[string]string{"status": status})
	s.metrics.RecordProcessingTime("transfer_duration_"+status, time.Since(start))
}
