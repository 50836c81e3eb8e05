package ports

// PreferenceStore is the persistent key-value string store used for calibration
// models and recordings.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type PreferenceStore interface {
	// Get returns the value stored under key.
	// Returns "", false, nil if the key is not present.
	Get(key string) (string, bool, error)

	// Put stores value under key, replacing any previous value.
	Put(key, value string) error
}
