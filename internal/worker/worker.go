package worker

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mikey-austin/showcase/internal/ports"
)

// Cloner is implemented by argument bundles that must be deep-copied before
// a worker takes ownership of them.
type Cloner[T any] interface {
	Clone() T
}

// Options configures Spawn.
type Options struct {
	Logger *zap.Logger
	IDGen  ports.IDGen
}

// Handle tracks a spawned worker.
type Handle struct {
	id   string
	name string
	done chan struct{}
}

// Spawn runs fn(ctx, arg) on its own goroutine. If arg implements Cloner the
// worker receives a clone, so the caller may keep using its value.
func Spawn[T any](ctx context.Context, opts Options, name string, fn func(context.Context, T), arg T) *Handle {
	if c, ok := any(arg).(Cloner[T]); ok {
		arg = c.Clone()
	}

	h := &Handle{
		id:   newID(opts.IDGen),
		name: name,
		done: make(chan struct{}),
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("worker", name), zap.String("worker_id", h.id))

	go func() {
		defer close(h.done)
		start := time.Now()
		logger.Debug("worker started")
		fn(ctx, arg)
		logger.Debug("worker finished", zap.Duration("elapsed", time.Since(start)))
	}()
	return h
}

// ID returns the worker's unique identifier.
func (h *Handle) ID() string {
	return h.id
}

// Name returns the name given to Spawn.
func (h *Handle) Name() string {
	return h.name
}

// Done is closed once the worker function has returned.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Join blocks until the worker function has returned.
func (h *Handle) Join() {
	<-h.done
}

func newID(gen ports.IDGen) string {
	if gen != nil {
		if id := gen.NewID(); id != "" {
			return id
		}
	}
	return uuid.NewString()
}
