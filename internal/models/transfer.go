package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferSettlementWindow is how long a confirmed transfer takes to arrive
const TransferSettlementWindow = "3-5 days"

var (
	ErrInvalidTransferAmount = errors.New("transfer amount must be positive")
	ErrSameAccountTransfer   = errors.New("from and to accounts cannot be the same")
)

// Transfer is the receipt of an executed account-to-account transfer
type Transfer struct {
	ID               uuid.UUID       `json:"id"`
	FromAccountID    AccountID       `json:"from_account_id"`
	ToAccountID      AccountID       `json:"to_account_id"`
	Amount           decimal.Decimal `json:"amount"`
	FromBalanceAfter decimal.Decimal `json:"from_balance_after"`
	ToBalanceAfter   decimal.Decimal `json:"to_balance_after"`
	CompletedAt      time.Time       `json:"completed_at"`
}

// NewTransfer builds a receipt with a fresh ID
func NewTransfer(from, to AccountID, amount decimal.Decimal) *Transfer {
	return &Transfer{
		ID:            uuid.New(),
		FromAccountID: from,
		ToAccountID:   to,
		Amount:        amount,
	}
}

// Validate validates the transfer fields
func (t *Transfer) Validate() error {
	if !t.FromAccountID.IsValid() || !t.ToAccountID.IsValid() {
		return ErrInvalidAccountID
	}

	if t.FromAccountID == t.ToAccountID {
		return ErrSameAccountTransfer
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidTransferAmount
	}

	return nil
}

// Complete stamps the post-transfer balances
func (t *Transfer) Complete(fromBalance, toBalance decimal.Decimal, at time.Time) {
	t.FromBalanceAfter = fromBalance
	t.ToBalanceAfter = toBalance
	t.CompletedAt = at
}

// TransferConfirmation is returned once a PIN-confirmed transfer has been applied
type TransferConfirmation struct {
	Transfer      *Transfer `json:"transfer"`
	ArrivalNotice string    `json:"arrival_notice"`
}

// NewTransferConfirmation wraps a completed transfer with the customer-facing arrival notice
func NewTransferConfirmation(transfer *Transfer) *TransferConfirmation {
	destination := strings.TrimSuffix(transfer.ToAccountID.DisplayName(), " Account")

	return &TransferConfirmation{
		Transfer: transfer,
		ArrivalNotice: fmt.Sprintf("%s will arrive in %s to your %s account.",
			FormatGBP(transfer.Amount), TransferSettlementWindow, destination),
	}
}
