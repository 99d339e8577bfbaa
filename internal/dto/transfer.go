package dto

import (
	"encoding/json"
	"time"

	"funds-mover/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transfer Request DTOs

// TransferRequest represents an amount to move between two accounts
type TransferRequest struct {
	FromAccount string      `json:"from_account" validate:"required,account_id"`
	ToAccount   string      `json:"to_account" validate:"required,account_id"`
	Amount      json.Number `json:"amount" validate:"required,money_amount"`
}

// ConfirmTransferRequest represents a transfer authorised with the PIN
type ConfirmTransferRequest struct {
	FromAccount string      `json:"from_account" validate:"required,account_id"`
	ToAccount   string      `json:"to_account" validate:"required,account_id"`
	Amount      json.Number `json:"amount" validate:"required,money_amount"`
	Pin         string      `json:"pin" validate:"required,pin"`
}

// Transfer Response DTOs

// TransferValidationResponse reports that an amount may be moved
type TransferValidationResponse struct {
	Valid            bool            `json:"valid"`
	AvailableBalance decimal.Decimal `json:"available_balance"`
}

// TransferReviewResponse represents the review screen before PIN confirmation
type TransferReviewResponse struct {
	FromAccount               AccountResponse  `json:"from_account"`
	ToAccount                 AccountResponse  `json:"to_account"`
	Amount                    decimal.Decimal  `json:"amount"`
	FormattedAmount           string           `json:"formatted_amount"`
	FromBalanceAfter          decimal.Decimal  `json:"from_balance_after"`
	ToBalanceAfter            decimal.Decimal  `json:"to_balance_after"`
	RetirementImpact          *decimal.Decimal `json:"retirement_impact,omitempty"`
	FormattedRetirementImpact string           `json:"formatted_retirement_impact,omitempty"`
}

// TransferConfirmationResponse represents a completed transfer
type TransferConfirmationResponse struct {
	TransferID       uuid.UUID        `json:"transfer_id"`
	FromAccount      models.AccountID `json:"from_account"`
	ToAccount        models.AccountID `json:"to_account"`
	Amount           decimal.Decimal  `json:"amount"`
	FromBalanceAfter decimal.Decimal  `json:"from_balance_after"`
	ToBalanceAfter   decimal.Decimal  `json:"to_balance_after"`
	CompletedAt      time.Time        `json:"completed_at"`
	Message          string           `json:"message"`
}

// NewTransferReviewResponse converts a review model to its API representation
func NewTransferReviewResponse(review *models.TransferReview) TransferReviewResponse {
	response := TransferReviewResponse{
		FromAccount:      NewAccountResponse(review.FromAccount),
		ToAccount:        NewAccountResponse(review.ToAccount),
		Amount:           review.Amount,
		FormattedAmount:  models.FormatGBP(review.Amount),
		FromBalanceAfter: review.FromBalanceAfter,
		ToBalanceAfter:   review.ToBalanceAfter,
		RetirementImpact: review.RetirementImpact,
	}

	if review.RetirementImpact != nil {
		response.FormattedRetirementImpact = models.FormatGBP(*review.RetirementImpact)
	}

	return response
}

// NewTransferConfirmationResponse converts a confirmation model to its API representation
func NewTransferConfirmationResponse(confirmation *models.TransferConfirmation) TransferConfirmationResponse {
	transfer := confirmation.Transfer

	return TransferConfirmationResponse{
		TransferID:       transfer.ID,
		FromAccount:      transfer.FromAccountID,
		ToAccount:        transfer.ToAccountID,
		Amount:           transfer.Amount,
		FromBalanceAfter: transfer.FromBalanceAfter,
		ToBalanceAfter:   transfer.ToBalanceAfter,
		CompletedAt:      transfer.CompletedAt,
		Message:          confirmation.ArrivalNotice,
	}
}
