package repositories

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	ErrStoreUnavailable = errors.New("storage is unavailable")
)

type BreakerState int

const (
	BreakerClosed BreakerState = iota
	BreakerOpen
	BreakerHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case BreakerClosed:
		return "closed"
	case BreakerOpen:
		return "open"
	case BreakerHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

type BreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxFailures:     5,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 1,
	}
}

// BreakerStore stops calling a failing store for ResetTimeout after
// MaxFailures consecutive errors. A missing key is not a failure.
type BreakerStore struct {
	mu                sync.Mutex
	next              KeyValueStoreInterface
	config            BreakerConfig
	state             BreakerState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
	now               func() time.Time
}

// NewBreakerStore wraps next with a circuit breaker
func NewBreakerStore(next KeyValueStoreInterface, config BreakerConfig) *BreakerStore {
	return &BreakerStore{
		next:   next,
		config: config,
		state:  BreakerClosed,
		now:    time.Now,
	}
}

func (b *BreakerStore) Get(key string) (string, error) {
	if err := b.allow(); err != nil {
		return "", err
	}

	value, err := b.next.Get(key)
	b.record(err)
	return value, err
}

func (b *BreakerStore) Set(key, value string) error {
	if err := b.allow(); err != nil {
		return err
	}

	err := b.next.Set(key, value)
	b.record(err)
	return err
}

// HealthCheck always reaches the wrapped store so probes see real state
func (b *BreakerStore) HealthCheck() error {
	return b.next.HealthCheck()
}

// State returns the current breaker state
func (b *BreakerStore) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *BreakerStore) allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == BreakerOpen {
		if b.now().Sub(b.lastFailureTime) <= b.config.ResetTimeout {
			return fmt.Errorf("%w: circuit open after %d failures", ErrStoreUnavailable, b.failures)
		}
		b.state = BreakerHalfOpen
		b.halfOpenSuccesses = 0
	}

	return nil
}

func (b *BreakerStore) record(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err == nil || errors.Is(err, ErrKeyNotFound) || errors.Is(err, ErrEmptyKey) {
		b.recordSuccess()
		return
	}

	b.lastFailureTime = b.now()

	switch b.state {
	case BreakerHalfOpen:
		b.state = BreakerOpen
	case BreakerClosed:
		b.failures++
		if b.failures >= b.config.MaxFailures {
			b.state = BreakerOpen
		}
	}
}

func (b *BreakerStore) recordSuccess() {
	switch b.state {
	case BreakerHalfOpen:
		b.halfOpenSuccesses++
		if b.halfOpenSuccesses >= b.config.HalfOpenMaxSucc {
			b.state = BreakerClosed
			b.failures = 0
			b.halfOpenSuccesses = 0
		}
	case BreakerClosed:
		b.failures = 0
	}
}
