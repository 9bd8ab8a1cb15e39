// This package implements a flattened [codec.Codec]: one map entry per field,
// JSON-marshaling everything that is not already a string.
package flat

import (
	"github.com/paramsync/paramsync/codec"
	"github.com/paramsync/paramsync/internal/field"
)

var _ codec.Codec[map[string]any] = (*Codec)(nil)

// Codec flattens a dynamic object into one map entry per field.
//
// Field types are not recorded: a string field "5" and a numeric field 5 both
// store as "5", and decoding re-infers the type by JSON-parseability. The
// string "5" therefore comes back as the number 5. See [field.Infer].
type Codec struct{}

// New creates a flattened codec.
func New() *Codec {
	return &Codec{}
}

func (c *Codec) Encode(value map[string]any) (codec.Map, error) {
	m := make(codec.Map, len(value))
	for k, v := range value {
		s, err := field.Flatten(v)
		if err != nil {
			return nil, err
		}
		m[k] = s
	}
	return m, nil
}

func (c *Codec) Decode(m codec.Map) map[string]any {
	value := make(map[string]any, len(m))
	for k, raw := range m {
		value[k] = field.Infer(raw).Any()
	}
	return value
}
