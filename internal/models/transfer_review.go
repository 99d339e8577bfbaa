package models

import (
	"github.com/shopspring/decimal"
)

// RetirementGrowthMultiplier approximates the growth lost by taking money out of a pension early
var RetirementGrowthMultiplier = decimal.RequireFromString("1.64")

// TransferReview is the summary shown before a transfer is confirmed
type TransferReview struct {
	FromAccount      Account          `json:"from_account"`
	ToAccount        Account          `json:"to_account"`
	Amount           decimal.Decimal  `json:"amount"`
	FromBalanceAfter decimal.Decimal  `json:"from_balance_after"`
	ToBalanceAfter   decimal.Decimal  `json:"to_balance_after"`
	RetirementImpact *decimal.Decimal `json:"retirement_impact,omitempty"`
}

// NewTransferReview projects the balances of both accounts after moving amount
func NewTransferReview(from, to Account, amount decimal.Decimal) *TransferReview {
	review := &TransferReview{
		FromAccount:      from,
		ToAccount:        to,
		Amount:           amount,
		FromBalanceAfter: from.Balance.Sub(amount),
		ToBalanceAfter:   to.Balance.Add(amount),
	}

	if from.ID == AccountPension {
		impact := amount.Mul(RetirementGrowthMultiplier).Round(2)
		review.RetirementImpact = &impact
	}

	return review
}
