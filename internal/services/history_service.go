package services

import (
	"fmt"
	"sort"
	"time"

	"funds-mover/internal/models"

	"github.com/shopspring/decimal"
)

type historyService struct {
	transactions []models.Transaction
}

// NewHistoryService creates a history service over the built-in sample transactions
func NewHistoryService() HistoryServiceInterface {
	return NewHistoryServiceWith(sampleTransactions())
}

// NewHistoryServiceWith creates a history service over the given transactions
func NewHistoryServiceWith(transactions []models.Transaction) HistoryServiceInterface {
	sorted := make([]models.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	return &historyService{transactions: sorted}
}

// ListAll returns every transaction, newest first
func (s *historyService) ListAll() []models.Transaction {
	result := make([]models.Transaction, len(s.transactions))
	copy(result, s.transactions)
	return result
}

// ListByAccount returns the transactions of one account, newest first
func (s *historyService) ListByAccount(id models.AccountID) ([]models.Transaction, error) {
	if !id.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrAccountNotFound, id)
	}

	result := make([]models.Transaction, 0)
	for _, tx := range s.transactions {
		if tx.AccountID == id {
			result = append(result, tx)
		}
	}

	return result, nil
}

func sampleTransactions() []models.Transaction {
	at := func(month time.Month, day, hour, minute int) time.Time {
		return time.Date(2025, month, day, hour, minute, 0, 0, time.UTC)
	}

	return []models.Transaction{
		{ID: "1", Type: models.TransactionTypeWithdrawal, AccountID: models.AccountCurrentAccount, Amount: decimal.NewFromInt(-250), Date: at(time.October, 29, 9, 25)},
		{ID: "2", Type: models.TransactionTypeTopUp, AccountID: models.AccountCurrentAccount, Amount: decimal.NewFromInt(300), Date: at(time.October, 16, 13, 15)},
		{ID: "3", Type: models.TransactionTypeWithdrawal, AccountID: models.AccountCurrentAccount, Amount: decimal.NewFromInt(-80), Date: at(time.October, 12, 11, 25)},
		{ID: "4", Type: models.TransactionTypeTransfer, AccountID: models.AccountCurrentAccount, Amount: decimal.NewFromInt(-90), Date: at(time.October, 6, 20, 50)},
		{ID: "5", Type: models.TransactionTypeWithdrawal, AccountID: models.AccountCurrentAccount, Amount: decimal.NewFromInt(-80), Date: at(time.October, 1, 15, 25)},
		{ID: "6", Type: models.TransactionTypeTopUp, AccountID: models.AccountCurrentAccount, Amount: decimal.NewFromInt(300), Date: at(time.September, 25, 13, 15)},
		{ID: "7", Type: models.TransactionTypeTransfer, AccountID: models.AccountCurrentAccount, Amount: decimal.NewFromInt(-90), Date: at(time.September, 12, 11, 25)},
		{ID: "8", Type: models.TransactionTypeWithdrawal, AccountID: models.AccountSavings, Amount: decimal.NewFromInt(-150), Date: at(time.October, 20, 14, 30)},
		{ID: "9", Type: models.TransactionTypeTopUp, AccountID: models.AccountSavings, Amount: decimal.NewFromInt(500), Date: at(time.October, 10, 10, 20)},
		{ID: "10", Type: models.TransactionTypeWithdrawal, AccountID: models.AccountPension, Amount: decimal.NewFromInt(-1000), Date: at(time.October, 15, 16, 45)},
	}
}
