// This package implements a whole-object [codec.Codec]: the value is
// JSON-marshaled into a single map entry.
package object

import (
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/paramsync/paramsync/codec"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultKey = "data"

var _ codec.Codec[any] = (*Codec[any])(nil)

// Codec stores a whole value as one JSON blob under a single map key.
type Codec[Value any] struct {
	key string
}

// New creates a whole-object codec with the default key "data".
func New[Value any]() *Codec[Value] {
	return &Codec[Value]{key: defaultKey}
}

// WithKey changes the map key the blob is stored under.
func (c *Codec[Value]) WithKey(key string) *Codec[Value] {
	if strings.TrimSpace(key) == "" {
		panic("key can't be blank")
	}
	c.key = key
	return c
}

func (c *Codec[Value]) Encode(value Value) (codec.Map, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return codec.Map{c.key: string(data)}, nil
}

// Decode returns the zero value of Value when the key is absent or the blob
// is not valid JSON. It never fails.
func (c *Codec[Value]) Decode(m codec.Map) Value {
	var zero Value

	raw, ok := m[c.key]
	if !ok {
		return zero
	}

	var value Value
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return zero
	}

	return value
}
