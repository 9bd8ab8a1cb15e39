// This package synchronizes typed values with a host location's query/hash
// portion (Query) or with a persistent key-value store (Slot), using a codec
// to transform between values and flat string maps.
package paramsync

import "github.com/paramsync/paramsync/codec"

// Codec is an alias for [codec.Codec].
type Codec[Value any] = codec.Codec[Value]

// Map is an alias for [codec.Map].
type Map = codec.Map
