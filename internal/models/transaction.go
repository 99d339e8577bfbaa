package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionTypeWithdrawal = "withdrawal"
	TransactionTypeTopUp      = "topup"
	TransactionTypeTransfer   = "transfer"

	// TransactionDateLayout is the display layout for transaction timestamps
	TransactionDateLayout = "02 Jan 2006, 15:04"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
)

// Transaction is a single entry of an account's transaction history.
// Amounts are signed: withdrawals and outgoing transfers are negative.
type Transaction struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	AccountID AccountID       `json:"account"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.ID == "" {
		return errors.New("transaction id is required")
	}

	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if !t.AccountID.IsValid() {
		return ErrInvalidAccountID
	}

	if t.Date.IsZero() {
		return errors.New("transaction date is required")
	}

	return nil
}

// IsIncoming reports whether the entry adds money to the account
func (t *Transaction) IsIncoming() bool {
	return t.Amount.GreaterThanOrEqual(decimal.Zero)
}

// Label returns the display label of the transaction type
func (t *Transaction) Label() string {
	return TransactionLabel(t.Type)
}

// FormattedDate renders the transaction date for display
func (t *Transaction) FormattedDate() string {
	return t.Date.Format(TransactionDateLayout)
}

// Helper functions

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeWithdrawal, TransactionTypeTopUp, TransactionTypeTransfer:
		return true
	default:
		return false
	}
}

// TransactionLabel returns the display label for a transaction type
func TransactionLabel(transactionType string) string {
	switch transactionType {
	case TransactionTypeWithdrawal:
		return "Withdrawal"
	case TransactionTypeTopUp:
		return "Top up"
	case TransactionTypeTransfer:
		return "Transfer"
	default:
		return ""
	}
}
