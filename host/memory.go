package host

import "sync"

var (
	_ Location = (*MemoryLocation)(nil)
	_ Location = (*headless)(nil)
	_ Storage  = (*MemoryStorage)(nil)
)

// MemoryLocation is an in-memory [Location] that records its full navigation
// history, so tests can assert on push/replace semantics and count assigns.
type MemoryLocation struct {
	mu      sync.Mutex
	entries []string
	assigns int
}

// NewMemoryLocation creates a location positioned at raw.
func NewMemoryLocation(raw string) *MemoryLocation {
	return &MemoryLocation{
		entries: []string{raw},
	}
}

func (l *MemoryLocation) Current() (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.entries[len(l.entries)-1], true
}

func (l *MemoryLocation) Assign(raw string, mode History) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.assigns++
	if mode == Push {
		l.entries = append(l.entries, raw)
		return nil
	}
	l.entries[len(l.entries)-1] = raw
	return nil
}

// History returns a copy of all recorded history entries, oldest first.
func (l *MemoryLocation) History() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := make([]string, len(l.entries))
	copy(entries, l.entries)
	return entries
}

// Assigns returns how many times [MemoryLocation.Assign] was called.
func (l *MemoryLocation) Assigns() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.assigns
}

// Headless returns a [Location] with no addressable URL: reads report no
// location and writes do nothing.
func Headless() Location {
	return headless{}
}

type headless struct{}

func (headless) Current() (string, bool)      { return "", false }
func (headless) Assign(string, History) error { return nil }

// MemoryStorage is an in-memory [Storage] backed by a mutex-guarded map.
type MemoryStorage struct {
	mu    sync.Mutex
	slots map[string]string
}

// NewMemoryStorage creates an empty in-memory store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		slots: make(map[string]string),
	}
}

func (s *MemoryStorage) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.slots[key]
	return value, ok, nil
}

func (s *MemoryStorage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[key] = value
	return nil
}

func (s *MemoryStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, key)
	return nil
}
