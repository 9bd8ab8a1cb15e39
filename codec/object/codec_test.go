package object_test

import (
	"testing"

	"github.com/paramsync/paramsync/codec"
	"github.com/paramsync/paramsync/codec/object"
	"github.com/paramsync/paramsync/internal/testing/require"
)

type profile struct {
	Name string   `json:"name"`
	Age  int      `json:"age"`
	Tags []string `json:"tags,omitempty"`
}

func TestCodec(t *testing.T) {
	c := object.New[profile]()

	in := profile{Name: "John", Age: 30, Tags: []string{"admin"}}
	m, err := c.Encode(in)
	require.Nil(t, err)
	require.Equal(t, m, codec.Map{"data": `{"name":"John","age":30,"tags":["admin"]}`})

	require.Equal(t, c.Decode(m), in)
}

func TestCodecKey(t *testing.T) {
	c := object.New[profile]().WithKey("state")

	m, err := c.Encode(profile{Name: "Jane"})
	require.Nil(t, err)

	_, ok := m["state"]
	require.True(t, ok)
	require.Equal(t, c.Decode(m).Name, "Jane")

	require.PanicWithError(t, "key can't be blank", func() {
		_ = object.New[profile]().WithKey("")
	})
}

func TestCodecDefaults(t *testing.T) {
	c := object.New[profile]()

	// Absent key and malformed payloads both decode to the zero value.
	require.Equal(t, c.Decode(codec.Map{}), profile{})
	require.Equal(t, c.Decode(codec.Map{"data": "{not json"}), profile{})
	require.Equal(t, c.Decode(codec.Map{"other": `{"name":"x"}`}), profile{})
}
