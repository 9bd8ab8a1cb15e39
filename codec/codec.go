// This package contains the main [Codec] interface and several implementations inside subpackages.
package codec

// Map is the canonical wire-neutral intermediate form: a flat mapping from
// string keys to string values. Key order carries no meaning.
type Map = map[string]string

// Codec is a bidirectional transform between a typed value and a [Map].
//
// Implementations are stateless and safe to construct once and reuse across calls.
type Codec[Value any] interface {
	// Encode serializes a value into a flat string map.
	Encode(value Value) (Map, error)
	// Decode deserializes a flat string map into a value.
	//
	// Decode is total: it must produce a value for any map, including an empty
	// one, substituting type-appropriate defaults for missing or malformed
	// entries instead of failing.
	Decode(m Map) Value
}
