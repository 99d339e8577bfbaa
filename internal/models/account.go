package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// AccountID identifies one of the fixed demo accounts
type AccountID string

const (
	AccountPension        AccountID = "pension"
	AccountSavings        AccountID = "savings"
	AccountCurrentAccount AccountID = "currentAccount"
)

var (
	ErrInvalidAccountID = errors.New("invalid account id")
)

// accountOrder is the display and persistence order of the fixed accounts
var accountOrder = []AccountID{AccountPension, AccountSavings, AccountCurrentAccount}

var accountNames = map[AccountID]string{
	AccountPension:        "Pension",
	AccountSavings:        "Savings",
	AccountCurrentAccount: "Current Account",
}

var defaultBalances = map[AccountID]string{
	AccountPension:        "48750.00",
	AccountSavings:        "16250.00",
	AccountCurrentAccount: "74500.00",
}

// Account is a single ledger record
type Account struct {
	ID      AccountID       `json:"id"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

// AllAccountIDs returns the fixed account identities in display order
func AllAccountIDs() []AccountID {
	ids := make([]AccountID, len(accountOrder))
	copy(ids, accountOrder)
	return ids
}

// IsValid reports whether id is one of the fixed accounts
func (id AccountID) IsValid() bool {
	_, ok := accountNames[id]
	return ok
}

// DisplayName returns the human readable account name
func (id AccountID) DisplayName() string {
	return accountNames[id]
}

// String implements fmt.Stringer
func (id AccountID) String() string {
	return string(id)
}

// ParseAccountID converts raw input into an AccountID
func ParseAccountID(raw string) (AccountID, error) {
	id := AccountID(raw)
	if !id.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidAccountID, raw)
	}
	return id, nil
}

// DefaultBalance returns the seed balance for id
func DefaultBalance(id AccountID) decimal.Decimal {
	raw, ok := defaultBalances[id]
	if !ok {
		return decimal.Zero
	}
	return decimal.RequireFromString(raw)
}

// DefaultAccounts returns a fresh set of accounts seeded with the default balances
func DefaultAccounts() map[AccountID]*Account {
	accounts := make(map[AccountID]*Account, len(accountOrder))
	for _, id := range accountOrder {
		accounts[id] = &Account{
			ID:      id,
			Name:    id.DisplayName(),
			Balance: DefaultBalance(id),
		}
	}
	return accounts
}

// CanDebit checks that amount is positive and covered by the balance
func (a *Account) CanDebit(amount decimal.Decimal) bool {
	return amount.GreaterThan(decimal.Zero) && a.Balance.GreaterThanOrEqual(amount)
}
