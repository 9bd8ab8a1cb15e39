package paramsync

import (
	"net/url"

	"github.com/paramsync/paramsync/codec"
	"github.com/paramsync/paramsync/params"
)

// EncodeToValues encodes a value straight into a URL parameter collection.
//
// Deprecated: this is the older parameter-object API. Use [Query], which
// generalizes hash and hash-routing modes and degrades gracefully on
// headless hosts.
func EncodeToValues[Value any](c codec.Codec[Value], value Value) (url.Values, error) {
	m, err := c.Encode(value)
	if err != nil {
		return nil, err
	}
	return params.FromMap(m), nil
}

// DecodeFromValues decodes a value straight from a URL parameter collection.
//
// Deprecated: this is the older parameter-object API. Use [Query].
func DecodeFromValues[Value any](c codec.Codec[Value], values url.Values) Value {
	return c.Decode(params.ToMap(values))
}
