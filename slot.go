package paramsync

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/paramsync/paramsync/codec"
	"github.com/paramsync/paramsync/host"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Slot synchronizes a value with a single named key of a persistent store.
//
// The stored format is the JSON-marshaled string map produced by the codec,
// not the value itself.
type Slot[Value any] struct {
	store host.Storage
	key   string
	codec codec.Codec[Value]
	cfg   *config
}

// NewSlot creates a slot synchronizer over the given store, key and codec.
func NewSlot[Value any](
	store host.Storage,
	key string,
	c codec.Codec[Value],
	options ...Option,
) *Slot[Value] {
	if store == nil {
		panic("storage can't be nil")
	}
	if strings.TrimSpace(key) == "" {
		panic("key can't be blank")
	}
	if c == nil {
		panic("codec can't be nil")
	}
	return &Slot[Value]{
		store: store,
		key:   key,
		codec: c,
		cfg:   newConfig(options...),
	}
}

// Load decodes the stored slot. An absent slot resolves to fallback silently;
// a failing store or a corrupt slot also resolves to fallback but is reported
// to the logger. Load never fails.
func (s *Slot[Value]) Load(fallback Value) Value {
	s.cfg.metrics.reads.Inc()

	raw, ok, err := s.store.Get(s.key)
	if err != nil {
		s.cfg.logger.Error("read storage slot", "key", s.key, "error", err)
		s.cfg.metrics.storeErrors.Inc()
		s.cfg.metrics.readFallbacks.Inc()
		return fallback
	}
	if !ok {
		s.cfg.metrics.readFallbacks.Inc()
		return fallback
	}

	var m codec.Map
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		s.cfg.logger.Error("corrupt storage slot", "key", s.key, "error", err)
		s.cfg.metrics.storeErrors.Inc()
		s.cfg.metrics.readFallbacks.Inc()
		return fallback
	}

	return s.codec.Decode(m)
}

// Save encodes the value and stores it under the slot key.
//
// Store write failures are reported to the logger but not returned: the
// caller's in-memory value stands even when persistence is unavailable. Only
// encoding failures are returned.
func (s *Slot[Value]) Save(value Value) error {
	m, err := s.codec.Encode(value)
	if err != nil {
		return fmt.Errorf("encode value: %w", err)
	}

	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal map: %w", err)
	}

	if err := s.store.Set(s.key, string(data)); err != nil {
		s.cfg.logger.Error("write storage slot", "key", s.key, "error", err)
		s.cfg.metrics.storeErrors.Inc()
		s.cfg.metrics.writes.WithLabelValues("failed").Inc()
		return nil
	}
	s.cfg.metrics.writes.WithLabelValues("committed").Inc()

	return nil
}

// Clear removes the slot from the store.
func (s *Slot[Value]) Clear() error {
	if err := s.store.Delete(s.key); err != nil {
		return fmt.Errorf("delete storage slot: %w", err)
	}
	return nil
}
