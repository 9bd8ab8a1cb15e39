package paramsync_test

import (
	"testing"

	"github.com/paramsync/paramsync"
	"github.com/paramsync/paramsync/codec/value"
	"github.com/paramsync/paramsync/host"
	"github.com/paramsync/paramsync/internal/testing/require"
)

func TestOptions(t *testing.T) {
	require.PanicWithError(t, "unknown history mode", func() {
		_ = paramsync.WithHistory(host.History(9))
	})

	require.PanicWithError(t, "logger can't be nil", func() {
		_ = paramsync.WithLogger(nil)
	})
}

func TestNewQueryValidation(t *testing.T) {
	loc := host.NewMemoryLocation("https://example.com")

	require.PanicWithError(t, "location can't be nil", func() {
		_ = paramsync.NewQuery(nil, value.String())
	})

	require.PanicWithError(t, "codec can't be nil", func() {
		_ = paramsync.NewQuery[string](loc, nil)
	})
}

func TestNewSlotValidation(t *testing.T) {
	store := host.NewMemoryStorage()

	require.PanicWithError(t, "storage can't be nil", func() {
		_ = paramsync.NewSlot(nil, "key", value.String())
	})

	require.PanicWithError(t, "key can't be blank", func() {
		_ = paramsync.NewSlot(store, " ", value.String())
	})

	require.PanicWithError(t, "codec can't be nil", func() {
		_ = paramsync.NewSlot[string](store, "key", nil)
	})
}

func TestWatchValidation(t *testing.T) {
	loc := host.NewMemoryLocation("https://example.com")
	q := paramsync.NewQuery(loc, value.String())

	require.PanicWithError(t, "interval can't be <= 0", func() {
		_ = q.Watch(0)
	})
}
