package core

import (
	"context"
	"sync"
)

// Void is the element type for futures that carry no value, and the
// placeholder for the absent side of an ActiveRunner shape.
type Void = struct{}

// Future is a single-fulfillment result channel. The producer side completes
// it exactly once; any number of consumers may wait on it. A Future is
// created by Submit, Run, or Async and is never reused.
type Future[T any] struct {
	once  sync.Once
	done  chan struct{}
	value T
	err   error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// complete fulfills the future. Later attempts are no-ops, so a racing
// abandon and a racing result cannot both win.
func (f *Future[T]) complete(value T, err error) {
	f.once.Do(func() {
		f.value = value
		f.err = err
		close(f.done)
	})
}

// abandon resolves the future with ErrTaskAbandoned. Called for tasks the
// dispatch loop will never pick up, so waiters do not hang forever.
func (f *Future[T]) abandon() {
	var zero T
	f.complete(zero, ErrTaskAbandoned)
}

// Done returns a channel that is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Err returns the completion error without blocking. It is nil both for a
// successful result and for a future that has not completed yet; use Done
// to distinguish the two.
func (f *Future[T]) Err() error {
	select {
	case <-f.done:
		return f.err
	default:
		return nil
	}
}

// Get blocks until the result is available or ctx is done. The returned
// error is the work step's error, ErrTaskAbandoned, or the context error.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Wait is Get without the value.
func (f *Future[T]) Wait(ctx context.Context) error {
	_, err := f.Get(ctx)
	return err
}
