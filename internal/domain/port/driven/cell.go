package driven

import "context"

// Cell defines the driven port for the persistence cell: a synchronous
// string-keyed store holding opaque string values. The vault addresses exactly
// one fixed key in it; the port stays key-generic so adapters can back other
// slots without change.
type Cell interface {
	// Get returns the value stored under key. The second result is false when
	// the key holds no value; that is not an error.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, fully overwriting any prior value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes the value under key. Removing an absent key is not an
	// error; adapters must be idempotent here.
	Remove(ctx context.Context, key string) error
}
