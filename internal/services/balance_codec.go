package services

import (
	"bytes"
	"encoding/json"
	"fmt"

	"funds-mover/internal/models"

	"github.com/shopspring/decimal"
)

// balancePayload is the persisted form: a flat object with unquoted numbers
type balancePayload struct {
	Pension        json.Number `json:"pension"`
	Savings        json.Number `json:"savings"`
	CurrentAccount json.Number `json:"currentAccount"`
}

func encodeBalances(accounts map[models.AccountID]*models.Account) (string, error) {
	payload := balancePayload{
		Pension:        json.Number(accounts[models.AccountPension].Balance.String()),
		Savings:        json.Number(accounts[models.AccountSavings].Balance.String()),
		CurrentAccount: json.Number(accounts[models.AccountCurrentAccount].Balance.String()),
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode balances: %w", err)
	}

	return string(data), nil
}

// decodeBalances merges a stored payload over the defaults.
// It returns corrupt=true when the payload is not a JSON object, in which case
// every account keeps its default. Otherwise each account whose value is
// missing, null, not a number or out of range is listed in defaulted.
func decodeBalances(raw string) (accounts map[models.AccountID]*models.Account, defaulted []models.AccountID, corrupt bool) {
	accounts = models.DefaultAccounts()

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil || fields == nil {
		return accounts, models.AllAccountIDs(), true
	}

	for _, id := range models.AllAccountIDs() {
		balance, ok := parseBalance(fields[string(id)])
		if !ok {
			defaulted = append(defaulted, id)
			continue
		}
		accounts[id].Balance = balance
	}

	return accounts, defaulted, false
}

func parseBalance(value json.RawMessage) (decimal.Decimal, bool) {
	value = bytes.TrimSpace(value)
	if len(value) == 0 || bytes.Equal(value, []byte("null")) {
		return decimal.Zero, false
	}

	// quoted numbers are rejected; only JSON numbers count
	if value[0] == '"' {
		return decimal.Zero, false
	}

	balance, err := decimal.NewFromString(string(value))
	if err != nil || !models.IsWithinAmountRange(balance) {
		return decimal.Zero, false
	}

	return balance, true
}
