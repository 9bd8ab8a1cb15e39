// This package implements a single-field [codec.Codec]: the whole value is
// serialized into one map entry. Constructors for common primitive codecs are
// provided alongside.
package value

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/paramsync/paramsync/codec"
)

const defaultKey = "value"

var _ codec.Codec[any] = (*Codec[any])(nil)

// Codec stores a value under a single map key using a caller-supplied
// serialize/deserialize pair.
type Codec[Value any] struct {
	key         string
	serialize   func(Value) string
	deserialize func(string) Value
}

// New creates a single-field codec with the default key "value".
//
// Deserialize is invoked with "" when the key is absent from the decoded map,
// so it must accept the empty string and return a sensible default rather
// than fail.
func New[Value any](
	serialize func(Value) string,
	deserialize func(string) Value,
) *Codec[Value] {
	if serialize == nil {
		panic("serialize can't be nil")
	}
	if deserialize == nil {
		panic("deserialize can't be nil")
	}
	return &Codec[Value]{
		key:         defaultKey,
		serialize:   serialize,
		deserialize: deserialize,
	}
}

// WithKey changes the map key the value is stored under.
func (c *Codec[Value]) WithKey(key string) *Codec[Value] {
	if strings.TrimSpace(key) == "" {
		panic("key can't be blank")
	}
	c.key = key
	return c
}

func (c *Codec[Value]) Encode(value Value) (codec.Map, error) {
	return codec.Map{c.key: c.serialize(value)}, nil
}

func (c *Codec[Value]) Decode(m codec.Map) Value {
	return c.deserialize(m[c.key])
}

// String creates a codec for plain strings. Both directions are identity.
func String() *Codec[string] {
	return New(
		func(s string) string { return s },
		func(s string) string { return s },
	)
}

// Number creates a codec for numbers.
//
// Decoding an empty, non-numeric or NaN string yields 0 silently, so an
// absent parameter and an explicit zero are indistinguishable after decoding.
func Number() *Codec[float64] {
	return New(
		func(f float64) string {
			return strconv.FormatFloat(f, 'f', -1, 64)
		},
		func(s string) float64 {
			f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil || math.IsNaN(f) {
				return 0
			}
			return f
		},
	)
}

// Bool creates a codec for booleans. Only the exact string "true" decodes to
// true; every other value, including absence, decodes to false.
func Bool() *Codec[bool] {
	return New(
		strconv.FormatBool,
		func(s string) bool { return s == "true" },
	)
}

// Time creates a codec for timestamps in RFC 3339 form.
//
// A missing or unparseable value decodes to now(), which makes decoding
// time-dependent. Pass a fixed clock to make it deterministic; a nil now
// means [time.Now].
func Time(now func() time.Time) *Codec[time.Time] {
	if now == nil {
		now = time.Now
	}
	return New(
		func(t time.Time) string {
			return t.Format(time.RFC3339Nano)
		},
		func(s string) time.Time {
			t, err := time.Parse(time.RFC3339Nano, s)
			if err != nil {
				return now()
			}
			return t
		},
	)
}

// Strings creates a codec for string slices, joined with commas.
//
// An empty slice encodes to "" and "" decodes back to an empty slice, never
// to a slice holding one empty element. Elements containing commas do not
// survive the round trip.
func Strings() *Codec[[]string] {
	return New(
		func(ss []string) string {
			return strings.Join(ss, ",")
		},
		func(s string) []string {
			if s == "" {
				return []string{}
			}
			return strings.Split(s, ",")
		},
	)
}
