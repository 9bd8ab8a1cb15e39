package flat_test

import (
	"testing"

	"github.com/paramsync/paramsync/codec"
	"github.com/paramsync/paramsync/codec/flat"
	"github.com/paramsync/paramsync/internal/testing/require"
)

func TestCodec(t *testing.T) {
	c := flat.New()

	in := map[string]any{
		"name":  "John",
		"role":  "Developer",
		"age":   float64(30),
		"admin": true,
		"tags":  []any{"a", "b"},
	}

	m, err := c.Encode(in)
	require.Nil(t, err)
	require.Equal(t, m, codec.Map{
		"name":  "John",
		"role":  "Developer",
		"age":   "30",
		"admin": "true",
		"tags":  `["a","b"]`,
	})

	require.Equal(t, c.Decode(m), in)
}

func TestCodecDefaults(t *testing.T) {
	c := flat.New()

	require.Equal(t, c.Decode(codec.Map{}), map[string]any{})

	m, err := c.Encode(map[string]any{})
	require.Nil(t, err)
	require.Equal(t, c.Decode(m), map[string]any{})
}

// A string field whose text is valid JSON syntax decodes to the parsed type,
// not the original string. This collision is part of the strategy's contract.
func TestCodecTypeCollision(t *testing.T) {
	c := flat.New()

	m, err := c.Encode(map[string]any{"name": "5"})
	require.Nil(t, err)
	require.Equal(t, m, codec.Map{"name": "5"})

	require.Equal(t, c.Decode(m), map[string]any{"name": float64(5)})
	require.Equal(t, c.Decode(codec.Map{"flag": "true"}), map[string]any{"flag": true})
	require.Equal(t, c.Decode(codec.Map{"text": "Developer"}), map[string]any{"text": "Developer"})
}
