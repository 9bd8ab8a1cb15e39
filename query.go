package paramsync

import (
	"fmt"

	"github.com/paramsync/paramsync/codec"
	"github.com/paramsync/paramsync/host"
	"github.com/paramsync/paramsync/params"
)

// Query synchronizes a value with a location's query string or hash fragment.
//
// A Query holds no state of its own: every call re-reads the location, so
// external navigation is picked up automatically.
type Query[Value any] struct {
	loc   host.Location
	codec codec.Codec[Value]
	cfg   *config
}

// NewQuery creates a query synchronizer over the given location and codec.
func NewQuery[Value any](
	loc host.Location,
	c codec.Codec[Value],
	options ...Option,
) *Query[Value] {
	if loc == nil {
		panic("location can't be nil")
	}
	if c == nil {
		panic("codec can't be nil")
	}
	return &Query[Value]{
		loc:   loc,
		codec: c,
		cfg:   newConfig(options...),
	}
}

// Read decodes the current parameter string. On a headless host, an empty
// parameter string or a parse failure it returns the codec's decoding of an
// empty map. It never fails.
func (q *Query[Value]) Read() Value {
	return q.ReadOr(q.codec.Decode(codec.Map{}))
}

// ReadOr is like [Query.Read] but returns fallback instead of the codec's
// empty-map decoding.
func (q *Query[Value]) ReadOr(fallback Value) Value {
	q.cfg.metrics.reads.Inc()

	raw, ok := q.loc.Current()
	if !ok {
		q.cfg.metrics.readFallbacks.Inc()
		return fallback
	}

	ps := q.paramString(raw)
	if ps == "" {
		q.cfg.metrics.readFallbacks.Inc()
		return fallback
	}

	m, err := params.Parse(ps)
	if err != nil {
		q.cfg.metrics.readFallbacks.Inc()
		return fallback
	}

	return q.codec.Decode(m)
}

// Write encodes the value and commits it to the location, overwriting only
// the synchronized portion (query string, hash fragment, or the hash query
// with the hash path preserved).
//
// The location is only assigned when the serialized representation actually
// changed, so an unchanged value never triggers a navigation event. On a
// headless host Write does nothing.
func (q *Query[Value]) Write(value Value) error {
	raw, ok := q.loc.Current()
	if !ok {
		return nil
	}

	m, err := q.codec.Encode(value)
	if err != nil {
		return fmt.Errorf("encode value: %w", err)
	}
	qs := params.Encode(m)

	prefix, query, fragment, hasFragment := splitLocation(raw)

	switch {
	case !q.cfg.useHash:
		query = qs
	case !q.cfg.hashRouting:
		fragment = qs
		hasFragment = hasFragment || fragment != ""
	default:
		fragment = hashPath(fragment)
		if qs != "" {
			fragment += "?" + qs
		}
		hasFragment = hasFragment || fragment != ""
	}

	next := joinLocation(prefix, query, fragment, hasFragment)
	if next == raw {
		q.cfg.metrics.writes.WithLabelValues("skipped").Inc()
		return nil
	}

	if err := q.loc.Assign(next, q.cfg.history); err != nil {
		return fmt.Errorf("assign location: %w", err)
	}
	q.cfg.metrics.writes.WithLabelValues("committed").Inc()

	return nil
}

// paramString resolves the portion of the location the query synchronizes:
// the query string, the whole hash fragment, or the hash fragment's query.
func (q *Query[Value]) paramString(raw string) string {
	_, query, fragment, _ := splitLocation(raw)
	switch {
	case !q.cfg.useHash:
		return query
	case !q.cfg.hashRouting:
		return fragment
	default:
		return hashQuery(fragment)
	}
}
