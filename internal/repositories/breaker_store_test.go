package repositories

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

// scriptedStore fails Set with queued errors before delegating to a memory store
type scriptedStore struct {
	KeyValueStoreInterface
	setErrs   []error
	setCalls  int
	healthErr error
}

func (f *scriptedStore) Set(key, value string) error {
	f.setCalls++
	if len(f.setErrs) > 0 {
		err := f.setErrs[0]
		f.setErrs = f.setErrs[1:]
		if err != nil {
			return err
		}
	}
	return f.KeyValueStoreInterface.Set(key, value)
}

func (f *scriptedStore) HealthCheck() error {
	return f.healthErr
}

type BreakerStoreTestSuite struct {
	suite.Suite
	next    *scriptedStore
	store   *BreakerStore
	current time.Time
}

func TestBreakerStoreSuite(t *testing.T) {
	suite.Run(t, new(BreakerStoreTestSuite))
}

func (s *BreakerStoreTestSuite) SetupTest() {
	s.next = &scriptedStore{KeyValueStoreInterface: NewMemoryStore()}
	s.store = NewBreakerStore(s.next, BreakerConfig{
		MaxFailures:     2,
		ResetTimeout:    time.Minute,
		HalfOpenMaxSucc: 1,
	})
	s.current = time.Date(2025, 10, 29, 9, 0, 0, 0, time.UTC)
	s.store.now = func() time.Time { return s.current }
}

func (s *BreakerStoreTestSuite) trip() {
	s.next.setErrs = []error{errors.New("connection reset"), errors.New("connection reset")}

	s.Error(s.store.Set("account_balances", "{}"))
	s.Error(s.store.Set("account_balances", "{}"))
	s.Require().Equal(BreakerOpen, s.store.State())
}

func (s *BreakerStoreTestSuite) TestPassesThroughWhenClosed() {
	s.NoError(s.store.Set("account_balances", `{"pension":1}`))

	value, err := s.store.Get("account_balances")
	s.NoError(err)
	s.Equal(`{"pension":1}`, value)
	s.Equal(BreakerClosed, s.store.State())
}

func (s *BreakerStoreTestSuite) TestMissingKeyIsNotAFailure() {
	for i := 0; i < 3; i++ {
		_, err := s.store.Get("account_balances")
		s.ErrorIs(err, ErrKeyNotFound)
	}
	s.Equal(BreakerClosed, s.store.State())
}

func (s *BreakerStoreTestSuite) TestOpensAfterConsecutiveFailures() {
	s.trip()

	err := s.store.Set("account_balances", "{}")
	s.ErrorIs(err, ErrStoreUnavailable)

	_, err = s.store.Get("account_balances")
	s.ErrorIs(err, ErrStoreUnavailable)

	s.Equal(2, s.next.setCalls)
}

func (s *BreakerStoreTestSuite) TestSuccessResetsFailureCount() {
	s.next.setErrs = []error{errors.New("timeout"), nil, errors.New("timeout")}

	s.Error(s.store.Set("k", "v"))
	s.NoError(s.store.Set("k", "v"))
	s.Error(s.store.Set("k", "v"))

	s.Equal(BreakerClosed, s.store.State())
}

func (s *BreakerStoreTestSuite) TestHalfOpenProbeCloses() {
	s.trip()

	s.current = s.current.Add(2 * time.Minute)

	s.NoError(s.store.Set("account_balances", "{}"))
	s.Equal(BreakerClosed, s.store.State())
}

func (s *BreakerStoreTestSuite) TestHalfOpenProbeFailureReopens() {
	s.trip()

	s.current = s.current.Add(2 * time.Minute)
	s.next.setErrs = []error{errors.New("still down")}

	s.Error(s.store.Set("account_balances", "{}"))
	s.Equal(BreakerOpen, s.store.State())
}

func (s *BreakerStoreTestSuite) TestHealthCheckBypassesBreaker() {
	s.trip()

	s.NoError(s.store.HealthCheck())

	s.next.healthErr = errors.New("down")
	s.Error(s.store.HealthCheck())
}

func (s *BreakerStoreTestSuite) TestBreakerStateString() {
	s.Equal("closed", BreakerClosed.String())
	s.Equal("open", BreakerOpen.String())
	s.Equal("half-open", BreakerHalfOpen.String())
}
