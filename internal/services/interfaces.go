package services

import (
	"time"

	"funds-mover/internal/models"

	"github.com/shopspring/decimal"
)

// LedgerServiceInterface owns the three account balances and their persistence
type LedgerServiceInterface interface {
	// Initialize loads persisted balances, falling back to defaults per account
	Initialize() (*LoadResult, error)
	GetAccount(id models.AccountID) (models.Account, error)
	// Accounts returns a snapshot of every account in display order
	Accounts() []models.Account
	UpdateBalance(id models.AccountID, newBalance decimal.Decimal) (models.Account, error)
	TransferFunds(from, to models.AccountID, amount decimal.Decimal) (*models.Transfer, error)
	HealthCheck() error
}

// PinVerifierInterface checks the transfer confirmation PIN
type PinVerifierInterface interface {
	Verify(pin string) error
}

// TransferFlowServiceInterface drives the move-funds journey: amount entry, review and PIN confirmation
type TransferFlowServiceInterface interface {
	ValidateAmount(from, to models.AccountID, amount decimal.Decimal) error
	Review(from, to models.AccountID, amount decimal.Decimal) (*models.TransferReview, error)
	Confirm(from, to models.AccountID, amount decimal.Decimal, pin string) (*models.TransferConfirmation, error)
}

// HistoryServiceInterface serves the sample transaction history
type HistoryServiceInterface interface {
	ListAll() []models.Transaction
	ListByAccount(id models.AccountID) ([]models.Transaction, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
