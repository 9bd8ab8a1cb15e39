// This package bridges between a [codec.Map] and the URL parameter collection
// of [net/url]. Percent-encoding is delegated entirely to net/url.
package params

import (
	"fmt"
	"net/url"

	"github.com/paramsync/paramsync/codec"
)

// FromMap builds a parameter collection with one entry per map key.
func FromMap(m codec.Map) url.Values {
	values := make(url.Values, len(m))
	for k, v := range m {
		values.Set(k, v)
	}
	return values
}

// FromAny builds a parameter collection from a loosely-typed map, skipping
// nil values (and nil string pointers) instead of emitting empty strings.
// Non-string values are stringified with their default format.
func FromAny(m map[string]any) url.Values {
	values := make(url.Values, len(m))
	for k, v := range m {
		switch v := v.(type) {
		case nil:
			continue
		case string:
			values.Set(k, v)
		case *string:
			if v == nil {
				continue
			}
			values.Set(k, *v)
		default:
			values.Set(k, fmt.Sprint(v))
		}
	}
	return values
}

// ToMap flattens a parameter collection into a [codec.Map]. A key appearing
// multiple times collapses to its last value.
func ToMap(values url.Values) codec.Map {
	m := make(codec.Map, len(values))
	for k, vs := range values {
		if len(vs) == 0 {
			continue
		}
		m[k] = vs[len(vs)-1]
	}
	return m
}

// Parse parses a raw query string into a [codec.Map], collapsing duplicate
// keys to the last value.
func Parse(raw string) (codec.Map, error) {
	values, err := url.ParseQuery(raw)
	if err != nil {
		return nil, fmt.Errorf("parse query: %w", err)
	}
	return ToMap(values), nil
}

// Encode serializes a [codec.Map] into a query string with keys sorted, the
// way [url.Values.Encode] does.
func Encode(m codec.Map) string {
	return FromMap(m).Encode()
}
