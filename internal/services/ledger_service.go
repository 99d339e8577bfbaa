package services

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"funds-mover/internal/models"
	"funds-mover/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrInvalidAmount       = models.ErrInvalidTransferAmount
	ErrSameAccountTransfer = models.ErrSameAccountTransfer
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrPersistenceFailed   = errors.New("failed to persist balances")
)

var _ LedgerServiceInterface = (*LedgerService)(nil)

// LoadResult describes where the balances came from on Initialize
type LoadResult struct {
	// UsedDefaults is set when no account could be restored from storage
	UsedDefaults bool
	// Corrupt is set when a stored payload existed but was not a JSON object
	Corrupt           bool
	DefaultedAccounts []models.AccountID
}

// LedgerService holds the balances of the three fixed accounts and writes the
// whole set back to storage after every mutation.
type LedgerService struct {
	mu       sync.RWMutex
	store    repositories.KeyValueStoreInterface
	key      string
	accounts map[models.AccountID]*models.Account
	logger   *slog.Logger
	metrics  MetricsRecorderInterface
	now      func() time.Time
}

// NewLedgerService creates a ledger seeded with the default balances.
// Call Initialize to replace them with whatever is persisted under key.
func NewLedgerService(store repositories.KeyValueStoreInterface, key string, logger *slog.Logger) *LedgerService {
	return &LedgerService{
		store:    store,
		key:      key,
		accounts: models.DefaultAccounts(),
		logger:   logger,
		now:      time.Now,
	}
}

// WithMetrics makes the ledger publish balance gauges after each change
func (s *LedgerService) WithMetrics(metrics MetricsRecorderInterface) *LedgerService {
	s.metrics = metrics
	return s
}

// Initialize loads the persisted balances. Missing or malformed data never
// fails, including storage that cannot be decoded at all; it falls back to
// defaults and is reported through LoadResult. Only a failure to reach the
// store is returned as an error.
func (s *LedgerService) Initialize() (*LoadResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.store.Get(s.key)
	if errors.Is(err, repositories.ErrKeyNotFound) {
		s.accounts = models.DefaultAccounts()
		s.publishBalances()
		s.logger.Info("no persisted balances, using defaults", "key", s.key)
		return &LoadResult{
			UsedDefaults:      true,
			DefaultedAccounts: models.AllAccountIDs(),
		}, nil
	}
	if errors.Is(err, repositories.ErrCorruptStorage) {
		s.accounts = models.DefaultAccounts()
		s.publishBalances()
		s.logger.Warn("balance storage is unreadable, using defaults", "key", s.key, "error", err)
		return &LoadResult{
			UsedDefaults:      true,
			Corrupt:           true,
			DefaultedAccounts: models.AllAccountIDs(),
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load balances: %w", err)
	}

	accounts, defaulted, corrupt := decodeBalances(raw)
	s.accounts = accounts
	s.publishBalances()

	result := &LoadResult{
		UsedDefaults:      corrupt || len(defaulted) == len(accounts),
		Corrupt:           corrupt,
		DefaultedAccounts: defaulted,
	}

	switch {
	case corrupt:
		s.logger.Warn("persisted balances are unreadable, using defaults", "key", s.key)
	case len(defaulted) > 0:
		s.logger.Warn("some persisted balances are invalid, using defaults for them",
			"key", s.key, "accounts", defaulted)
	default:
		s.logger.Info("balances restored", "key", s.key)
	}

	return result, nil
}

// GetAccount returns a copy of the account record
func (s *LedgerService) GetAccount(id models.AccountID) (models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[id]
	if !ok {
		return models.Account{}, fmt.Errorf("%w: %q", ErrAccountNotFound, id)
	}

	return *account, nil
}

// Accounts returns copies of all accounts in display order
func (s *LedgerService) Accounts() []models.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]models.Account, 0, len(s.accounts))
	for _, id := range models.AllAccountIDs() {
		accounts = append(accounts, *s.accounts[id])
	}

	return accounts
}

// UpdateBalance overwrites the balance of one account. Any value is accepted,
// including zero and negatives.
func (s *LedgerService) UpdateBalance(id models.AccountID, newBalance decimal.Decimal) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[id]
	if !ok {
		return models.Account{}, fmt.Errorf("%w: %q", ErrAccountNotFound, id)
	}

	previous := account.Balance
	account.Balance = newBalance

	if err := s.persist(); err != nil {
		account.Balance = previous
		return models.Account{}, err
	}

	s.logger.Info("balance updated",
		"account_id", id,
		"previous_balance", previous.String(),
		"new_balance", newBalance.String(),
	)
	s.publishBalances()

	return *account, nil
}

// TransferFunds moves amount from one account to another
func (s *LedgerService) TransferFunds(from, to models.AccountID, amount decimal.Decimal) (*models.Transfer, error) {
	transfer := models.NewTransfer(from, to, amount)
	if err := transfer.Validate(); err != nil {
		if errors.Is(err, models.ErrInvalidAccountID) {
			return nil, fmt.Errorf("%w: %q -> %q", ErrAccountNotFound, from, to)
		}
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	source := s.accounts[from]
	destination := s.accounts[to]

	if !source.CanDebit(amount) {
		return nil, fmt.Errorf("%w: %s balance %s, requested %s",
			ErrInsufficientFunds, from, source.Balance.String(), amount.String())
	}

	sourcePrevious := source.Balance
	destinationPrevious := destination.Balance

	source.Balance = source.Balance.Sub(amount)
	destination.Balance = destination.Balance.Add(amount)

	if err := s.persist(); err != nil {
		source.Balance = sourcePrevious
		destination.Balance = destinationPrevious
		return nil, err
	}

	transfer.Complete(source.Balance, destination.Balance, s.now().UTC())

	s.logger.Info("transfer completed",
		"transfer_id", transfer.ID,
		"from_account", from,
		"to_account", to,
		"amount", amount.String(),
	)
	s.publishBalances()

	return transfer, nil
}

// HealthCheck reports whether the balance store is reachable
func (s *LedgerService) HealthCheck() error {
	return s.store.HealthCheck()
}

// persist must be called with the write lock held
func (s *LedgerService) persist() error {
	payload, err := encodeBalances(s.accounts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}

	if err := s.store.Set(s.key, payload); err != nil {
		s.logger.Error("failed to persist balances", "key", s.key, "error", err)
		return fmt.Errorf("%w: %w", ErrPersistenceFailed, err)
	}

	return nil
}

func (s *LedgerService) publishBalances() {
	if s.metrics == nil {
		return
	}

	for id, account := range s.accounts {
		s.metrics.RecordGauge("account_balance", account.Balance.InexactFloat64(), map[string]string{
			"account": string(id),
		})
	}
}
