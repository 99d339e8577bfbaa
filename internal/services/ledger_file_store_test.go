package services

import (
	"os"
	"path/filepath"
	"testing"

	"funds-mover/internal/models"
	"funds-mover/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerService_TruncatedBalanceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client_storage.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"account_balances": {"pension": 1}`), 0o600))

	ledger := NewLedgerService(repositories.NewFileStore(path), testStorageKey, testLogger())

	result, err := ledger.Initialize()
	require.NoError(t, err)
	assert.True(t, result.Corrupt)
	assert.True(t, result.UsedDefaults)
	assert.Equal(t, models.AllAccountIDs(), result.DefaultedAccounts)

	pension, err := ledger.GetAccount(models.AccountPension)
	require.NoError(t, err)
	assert.True(t, pension.Balance.Equal(dec("48750")))

	_, err = ledger.UpdateBalance(models.AccountSavings, dec("2"))
	require.NoError(t, err)

	_, err = ledger.TransferFunds(models.AccountPension, models.AccountSavings, dec("500"))
	require.NoError(t, err)

	assert.FileExists(t, path+".corrupt")

	reloaded := NewLedgerService(repositories.NewFileStore(path), testStorageKey, testLogger())
	result, err = reloaded.Initialize()
	require.NoError(t, err)
	assert.False(t, result.Corrupt)
	assert.Empty(t, result.DefaultedAccounts)

	savings, err := reloaded.GetAccount(models.AccountSavings)
	require.NoError(t, err)
	assert.True(t, savings.Balance.Equal(dec("502")))

	pension, err = reloaded.GetAccount(models.AccountPension)
	require.NoError(t, err)
	assert.True(t, pension.Balance.Equal(dec("48250")))
}

func TestLedgerService_OutOfRangeStoredBalance(t *testing.T) {
	store := repositories.NewMemoryStore()
	require.NoError(t, store.Set(testStorageKey, `{"pension":1e100000000,"savings":16250,"currentAccount":74500}`))

	ledger := NewLedgerService(store, testStorageKey, testLogger())

	result, err := ledger.Initialize()
	require.NoError(t, err)
	assert.False(t, result.Corrupt)
	assert.Equal(t, []models.AccountID{models.AccountPension}, result.DefaultedAccounts)

	_, err = ledger.UpdateBalance(models.AccountSavings, dec("100"))
	require.NoError(t, err)

	stored, err := store.Get(testStorageKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"pension":48750,"savings":100,"currentAccount":74500}`, stored)
}
