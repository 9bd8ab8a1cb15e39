package paramsync

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// Watcher polls a location for changes made outside this process's writes
// (external navigation) and delivers freshly decoded values.
type Watcher[Value any] struct {
	query    *Query[Value]
	interval time.Duration
	updates  chan Value
	last     string

	ctx   context.Context
	stop  func()
	group *errgroup.Group
}

// Watch starts polling the location every interval. A value is delivered on
// [Watcher.Updates] whenever the serialized parameter string changes.
func (q *Query[Value]) Watch(interval time.Duration) *Watcher[Value] {
	if interval <= 0 {
		panic("interval can't be <= 0")
	}

	ctx_, stop := context.WithCancel(context.Background())
	group, ctx := errgroup.WithContext(ctx_)

	w := Watcher[Value]{
		query:    q,
		interval: interval,
		updates:  make(chan Value, 1),

		ctx:   ctx,
		stop:  stop,
		group: group,
	}

	// Snapshot before the worker starts, so a change made right after Watch
	// returns is never missed.
	w.last = w.current()

	group.Go(w.worker)

	return &w
}

// Updates returns the channel change notifications are delivered on. When a
// notification is not consumed before the next change, only the latest value
// is kept.
func (w *Watcher[Value]) Updates() <-chan Value {
	return w.updates
}

// Close stops the polling worker and waits for it to finish.
func (w *Watcher[Value]) Close() error {
	w.stop()
	return w.group.Wait()
}

func (w *Watcher[Value]) worker() error {
	last := w.last

	tick := time.NewTicker(w.interval)
	defer tick.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return nil
		case <-tick.C:
		}

		ps := w.current()
		if ps == last {
			continue
		}
		last = ps

		// Drop a stale pending value so the latest one always fits.
		select {
		case <-w.updates:
		default:
		}
		select {
		case w.updates <- w.query.Read():
		default:
		}
	}
}

func (w *Watcher[Value]) current() string {
	raw, ok := w.query.loc.Current()
	if !ok {
		return ""
	}
	return w.query.paramString(raw)
}
