package logger

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

const (
	defaultQueueSize    = 1024
	defaultFlushTimeout = 5 * time.Second
)

// AsyncOptions tunes the buffered record pipeline. Zero values pick the
// defaults above.
type AsyncOptions struct {
	BufferSize   int
	FlushTimeout time.Duration
}

// queuedRecord carries the handler it was enqueued through so attrs and
// groups added via WithAttrs/WithGroup survive the trip across the queue.
type queuedRecord struct {
	ctx    context.Context
	record slog.Record
	sink   slog.Handler
}

// asyncState is shared between an AsyncHandler and its WithAttrs/WithGroup
// derivatives so all of them feed the single drain goroutine.
type asyncState struct {
	queue        chan queuedRecord
	quit         chan struct{}
	done         chan struct{}
	closed       atomic.Bool
	dropped      atomic.Uint64
	flushTimeout time.Duration
}

// AsyncHandler ships records to an inner handler from a background
// goroutine. Enqueueing never blocks: records are dropped when the queue is
// full, which keeps a slow remote sink from stalling message handling.
type AsyncHandler struct {
	inner slog.Handler
	state *asyncState
}

// NewAsyncHandler wraps handler with a buffered queue drained by a single
// goroutine.
func NewAsyncHandler(handler slog.Handler, opts AsyncOptions) *AsyncHandler {
	size := opts.BufferSize
	if size <= 0 {
		size = defaultQueueSize
	}
	flush := opts.FlushTimeout
	if flush <= 0 {
		flush = defaultFlushTimeout
	}

	h := &AsyncHandler{
		inner: handler,
		state: &asyncState{
			queue:        make(chan queuedRecord, size),
			quit:         make(chan struct{}),
			done:         make(chan struct{}),
			flushTimeout: flush,
		},
	}
	go h.drain()
	return h
}

func (h *AsyncHandler) drain() {
	defer close(h.state.done)
	for {
		select {
		case item := <-h.state.queue:
			// Delivery errors are swallowed; the remote sink is best effort.
			_ = item.sink.Handle(item.ctx, item.record)
		case <-h.state.quit:
			for {
				select {
				case item := <-h.state.queue:
					_ = item.sink.Handle(item.ctx, item.record)
				default:
					return
				}
			}
		}
	}
}

func (h *AsyncHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *AsyncHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.state.closed.Load() {
		return nil
	}
	select {
	case h.state.queue <- queuedRecord{ctx: context.WithoutCancel(ctx), record: r.Clone(), sink: h.inner}:
		if h.state.closed.Load() {
			// Shutdown raced the send; the final drain pass may already
			// be over, so reclaim one queued record instead of stranding it.
			select {
			case <-h.state.queue:
				h.state.dropped.Add(1)
			default:
			}
		}
	default:
		h.state.dropped.Add(1)
	}
	return nil
}

// WithAttrs derives a handler that shares the queue and drain goroutine.
func (h *AsyncHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &AsyncHandler{inner: h.inner.WithAttrs(attrs), state: h.state}
}

func (h *AsyncHandler) WithGroup(name string) slog.Handler {
	return &AsyncHandler{inner: h.inner.WithGroup(name), state: h.state}
}

// Dropped reports how many records were discarded because the queue was
// full.
func (h *AsyncHandler) Dropped() uint64 {
	return h.state.dropped.Load()
}

// Shutdown stops accepting records and waits for the queue to empty, up to
// the flush timeout or the context deadline, whichever comes first.
func (h *AsyncHandler) Shutdown(ctx context.Context) error {
	if h == nil {
		return nil
	}
	if h.state.closed.CompareAndSwap(false, true) {
		close(h.state.quit)
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.state.flushTimeout)
		defer cancel()
	}

	select {
	case <-h.state.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
