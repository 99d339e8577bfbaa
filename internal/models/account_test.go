package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccountID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    AccountID
		wantErr bool
	}{
		{name: "pension", raw: "pension", want: AccountPension},
		{name: "savings", raw: "savings", want: AccountSavings},
		{name: "current account", raw: "currentAccount", want: AccountCurrentAccount},
		{name: "wrong case", raw: "Pension", wantErr: true},
		{name: "unknown", raw: "checking", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAccountID(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidAccountID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllAccountIDs_Order(t *testing.T) {
	ids := AllAccountIDs()
	assert.Equal(t, []AccountID{AccountPension, AccountSavings, AccountCurrentAccount}, ids)

	// callers must not be able to reorder the package copy
	ids[0] = AccountSavings
	assert.Equal(t, AccountPension, AllAccountIDs()[0])
}

func TestDefaultAccounts(t *testing.T) {
	accounts := DefaultAccounts()
	require.Len(t, accounts, 3)

	assert.True(t, accounts[AccountPension].Balance.Equal(decimal.RequireFromString("48750.00")))
	assert.True(t, accounts[AccountSavings].Balance.Equal(decimal.RequireFromString("16250.00")))
	assert.True(t, accounts[AccountCurrentAccount].Balance.Equal(decimal.RequireFromString("74500.00")))

	assert.Equal(t, "Pension", accounts[AccountPension].Name)
	assert.Equal(t, "Savings", accounts[AccountSavings].Name)
	assert.Equal(t, "Current Account", accounts[AccountCurrentAccount].Name)

	for id, account := range accounts {
		assert.Equal(t, id, account.ID)
	}
}

func TestDefaultAccounts_ReturnsFreshCopies(t *testing.T) {
	first := DefaultAccounts()
	first[AccountPension].Balance = decimal.Zero

	second := DefaultAccounts()
	assert.True(t, second[AccountPension].Balance.Equal(DefaultBalance(AccountPension)))
}

func TestDefaultBalance_UnknownAccount(t *testing.T) {
	assert.True(t, DefaultBalance(AccountID("unknown")).IsZero())
}

func TestAccount_CanDebit(t *testing.T) {
	account := &Account{ID: AccountSavings, Balance: decimal.NewFromInt(100)}

	assert.True(t, account.CanDebit(decimal.NewFromInt(100)))
	assert.True(t, account.CanDebit(decimal.RequireFromString("0.01")))
	assert.False(t, account.CanDebit(decimal.RequireFromString("100.01")))
	assert.False(t, account.CanDebit(decimal.Zero))
	assert.False(t, account.CanDebit(decimal.NewFromInt(-5)))
}
