// This package implements the per-field stringification rule shared by the
// flattened and prefixed codecs.
package field

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Kind tags how a stored string was interpreted during decoding.
type Kind int

const (
	// KindParsed means the string was valid JSON and carries the parsed value.
	KindParsed Kind = iota
	// KindRaw means the string was not valid JSON and is kept verbatim.
	KindRaw
)

// Value is the tagged result of interpreting a single stored string.
type Value struct {
	Kind   Kind
	Parsed any
	Raw    string
}

// Infer interprets a stored string: JSON-parseable text yields the parsed
// value, anything else is kept as a raw string.
//
// A string field that happens to be valid JSON syntax (the literal text "123")
// comes back as a number. This collision is inherent to the strategy and is
// kept for compatibility with existing stored data.
func Infer(raw string) Value {
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return Value{Kind: KindRaw, Raw: raw}
	}
	return Value{Kind: KindParsed, Parsed: parsed}
}

// Any collapses the tagged result into a plain value.
func (v Value) Any() any {
	if v.Kind == KindRaw {
		return v.Raw
	}
	return v.Parsed
}

// Flatten stringifies a single field value: strings are copied verbatim,
// everything else is JSON-marshaled.
func Flatten(value any) (string, error) {
	if s, ok := value.(string); ok {
		return s, nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
