package host_test

import (
	"testing"

	"github.com/paramsync/paramsync/host"
	"github.com/paramsync/paramsync/internal/testing/require"
)

func TestMemoryLocation(t *testing.T) {
	loc := host.NewMemoryLocation("https://example.com/app")

	raw, ok := loc.Current()
	require.True(t, ok)
	require.Equal(t, raw, "https://example.com/app")

	require.Nil(t, loc.Assign("https://example.com/app?a=1", host.Replace))
	raw, _ = loc.Current()
	require.Equal(t, raw, "https://example.com/app?a=1")
	require.Equal(t, loc.History(), []string{"https://example.com/app?a=1"})

	require.Nil(t, loc.Assign("https://example.com/app?a=2", host.Push))
	require.Equal(t, loc.History(), []string{
		"https://example.com/app?a=1",
		"https://example.com/app?a=2",
	})

	require.Equal(t, loc.Assigns(), 2)
}

func TestHeadless(t *testing.T) {
	loc := host.Headless()

	_, ok := loc.Current()
	require.False(t, ok)
	require.Nil(t, loc.Assign("https://example.com", host.Push))
}

func TestMemoryStorage(t *testing.T) {
	store := host.NewMemoryStorage()

	_, ok, err := store.Get("slot")
	require.Nil(t, err)
	require.False(t, ok)

	require.Nil(t, store.Set("slot", "v1"))
	require.Nil(t, store.Set("slot", "v2"))

	value, ok, err := store.Get("slot")
	require.Nil(t, err)
	require.True(t, ok)
	require.Equal(t, value, "v2")

	require.Nil(t, store.Delete("slot"))
	require.Nil(t, store.Delete("slot"))

	_, ok, err = store.Get("slot")
	require.Nil(t, err)
	require.False(t, ok)
}

func TestHistoryString(t *testing.T) {
	require.Equal(t, host.Replace.String(), "replace")
	require.Equal(t, host.Push.String(), "push")
}
