package dto

import (
	"encoding/json"

	"funds-mover/internal/models"

	"github.com/shopspring/decimal"
)

// Account Request DTOs

// UpdateBalanceRequest represents the request payload for overwriting an account balance
type UpdateBalanceRequest struct {
	Balance json.Number `json:"balance" validate:"required,balance_amount"`
}

// Account Response DTOs

// AccountResponse represents a single account in API responses
type AccountResponse struct {
	ID               models.AccountID `json:"id"`
	Name             string           `json:"name"`
	Balance          decimal.Decimal  `json:"balance"`
	FormattedBalance string           `json:"formatted_balance"`
	Currency         string           `json:"currency"`
}

// AccountListResponse represents every account with the combined balance
type AccountListResponse struct {
	Accounts       []AccountResponse `json:"accounts"`
	TotalBalance   decimal.Decimal   `json:"total_balance"`
	FormattedTotal string            `json:"formatted_total"`
}

// NewAccountResponse converts an account model to its API representation
func NewAccountResponse(account models.Account) AccountResponse {
	return AccountResponse{
		ID:               account.ID,
		Name:             account.Name,
		Balance:          account.Balance,
		FormattedBalance: models.FormatGBP(account.Balance),
		Currency:         models.CurrencyGBP,
	}
}

// NewAccountListResponse converts the ledger snapshot to its API representation
func NewAccountListResponse(accounts []models.Account) AccountListResponse {
	response := AccountListResponse{
		Accounts:     make([]AccountResponse, 0, len(accounts)),
		TotalBalance: decimal.Zero,
	}

	for _, account := range accounts {
		response.Accounts = append(response.Accounts, NewAccountResponse(account))
		response.TotalBalance = response.TotalBalance.Add(account.Balance)
	}
	response.FormattedTotal = models.FormatGBP(response.TotalBalance)

	return response
}
