// This package implements a namespaced [codec.Codec]: flattened encoding with
// every key qualified by a shared prefix, so multiple codecs can share one
// flat map without colliding.
package prefix

import (
	"strings"

	"github.com/paramsync/paramsync/codec"
	"github.com/paramsync/paramsync/internal/field"
)

const defaultSeparator = "."

var _ codec.Codec[map[string]any] = (*Codec)(nil)

// Codec flattens a dynamic object with keys emitted as namespace+separator+field.
type Codec struct {
	namespace string
	separator string
}

// New creates a namespaced codec with the default separator ".".
func New(namespace string) *Codec {
	if strings.TrimSpace(namespace) == "" {
		panic("namespace can't be blank")
	}
	return &Codec{
		namespace: namespace,
		separator: defaultSeparator,
	}
}

// WithSeparator changes the string placed between the namespace and the field name.
func (c *Codec) WithSeparator(separator string) *Codec {
	if separator == "" {
		panic("separator can't be empty")
	}
	c.separator = separator
	return c
}

func (c *Codec) Encode(value map[string]any) (codec.Map, error) {
	m := make(codec.Map, len(value))
	for k, v := range value {
		s, err := field.Flatten(v)
		if err != nil {
			return nil, err
		}
		m[c.namespace+c.separator+k] = s
	}
	return m, nil
}

// Decode considers only keys carrying this codec's prefix; foreign-prefixed
// and unprefixed keys are ignored.
func (c *Codec) Decode(m codec.Map) map[string]any {
	p := c.namespace + c.separator

	value := make(map[string]any)
	for k, raw := range m {
		name, ok := strings.CutPrefix(k, p)
		if !ok {
			continue
		}
		value[name] = field.Infer(raw).Any()
	}
	return value
}
