package repositories

// KeyValueStoreInterface is the client-durable storage the ledger persists into.
// Values are opaque strings; callers own serialization.
type KeyValueStoreInterface interface {
	// Get returns the value stored under key, or ErrKeyNotFound
	Get(key string) (string, error)
	// Set stores value under key, replacing any previous value
	Set(key, value string) error
	// HealthCheck reports whether the backing medium is reachable
	HealthCheck() error
}
