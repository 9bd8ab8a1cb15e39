// This package defines the capabilities a host runtime must provide for
// synchronization: an addressable location and a persistent key-value store.
// In-memory implementations suitable for tests and headless hosts live here;
// an SQLite-backed store lives in the sqlite subpackage.
package host

// History selects how a location update is recorded in navigation history.
type History int

const (
	// Replace overwrites the current history entry.
	Replace History = iota
	// Push adds a new history entry.
	Push
)

func (h History) String() string {
	switch h {
	case Replace:
		return "replace"
	case Push:
		return "push"
	default:
		return "unknown"
	}
}

// Location is the host's addressable URL.
//
// Implementations are treated as a single-writer resource: concurrent writers
// are not coordinated and last write wins.
type Location interface {
	// Current returns the full raw URL. ok is false when the host has no
	// addressable location (a headless context).
	Current() (raw string, ok bool)
	// Assign navigates to raw, recording the change per mode.
	Assign(raw string, mode History) error
}

// Storage is the host's persistent key-value store.
type Storage interface {
	// Get fetches the value stored under key. ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)
	// Set stores value under key, overwriting any previous value.
	Set(key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}
