package core

import "errors"

var (
	// ErrAlreadyRunning is returned by Run when the worker has already been
	// started. A worker is single-use; Run never succeeds twice, even after
	// a full stop.
	ErrAlreadyRunning = errors.New("runnable: already running")

	// ErrAlreadyStarted is returned by Thread.Start on the second call.
	// A Thread is associated with at most one OS thread over its lifetime.
	ErrAlreadyStarted = errors.New("runnable: thread already started")

	// ErrTaskAbandoned resolves the future of a task that was queued but
	// never dispatched because the worker stopped first. This is the
	// broken-promise signal: the work step was never invoked.
	ErrTaskAbandoned = errors.New("runnable: task abandoned before dispatch")

	// ErrQueueCapacity is the panic value of NewSizedQueue for a
	// non-positive capacity. A zero-capacity bounded queue cannot hold
	// anything, so the mistake is always in the caller's construction code.
	ErrQueueCapacity = errors.New("runnable: sized queue capacity must be positive")
)
