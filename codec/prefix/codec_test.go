package prefix_test

import (
	"maps"
	"testing"

	"github.com/paramsync/paramsync/codec"
	"github.com/paramsync/paramsync/codec/prefix"
	"github.com/paramsync/paramsync/internal/testing/require"
)

func TestCodec(t *testing.T) {
	c := prefix.New("user")

	in := map[string]any{
		"name": "John",
		"age":  float64(30),
	}

	m, err := c.Encode(in)
	require.Nil(t, err)
	require.Equal(t, m, codec.Map{
		"user.name": "John",
		"user.age":  "30",
	})

	require.Equal(t, c.Decode(m), in)
}

func TestCodecSeparator(t *testing.T) {
	c := prefix.New("user").WithSeparator(":")

	m, err := c.Encode(map[string]any{"name": "Jane"})
	require.Nil(t, err)
	require.Equal(t, m, codec.Map{"user:name": "Jane"})
	require.Equal(t, c.Decode(m), map[string]any{"name": "Jane"})
}

func TestCodecValidation(t *testing.T) {
	require.PanicWithError(t, "namespace can't be blank", func() {
		_ = prefix.New(" ")
	})

	require.PanicWithError(t, "separator can't be empty", func() {
		_ = prefix.New("user").WithSeparator("")
	})
}

// Two differently-prefixed codecs can share one flat map: each decodes only
// its own namespace and ignores foreign and unprefixed keys.
func TestCodecIsolation(t *testing.T) {
	user := prefix.New("user")
	app := prefix.New("app")

	userIn := map[string]any{"name": "John", "age": float64(30)}
	appIn := map[string]any{"theme": "dark"}

	userMap, err := user.Encode(userIn)
	require.Nil(t, err)
	appMap, err := app.Encode(appIn)
	require.Nil(t, err)

	merged := codec.Map{
		"other.name": "foreign",
		"plain":      "unprefixed",
	}
	maps.Copy(merged, userMap)
	maps.Copy(merged, appMap)

	require.Equal(t, user.Decode(merged), userIn)
	require.Equal(t, app.Decode(merged), appIn)
}

func TestCodecDefaults(t *testing.T) {
	c := prefix.New("user")
	require.Equal(t, c.Decode(codec.Map{}), map[string]any{})
}
