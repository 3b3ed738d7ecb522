package runnable

import "github.com/parkyh/go-runnable/core"

// Re-export commonly used types from core package for convenience.
// This allows users to import only the runnable package for most use cases.

// Thread is the portable handle over one OS thread
type Thread = core.Thread

// Priority describes OS scheduling intent as a portable (policy, level) pair
type Priority = core.Priority

// Policy is the portable scheduling-class tag of a Priority
type Policy = core.Policy

// Runner executes a work step continuously on one dedicated OS thread
type Runner = core.Runner

// Work is the user-supplied step executed repeatedly by a Runner
type Work = core.Work

// WorkFunc adapts a plain function to the Work interface
type WorkFunc = core.WorkFunc

// ActiveRunner is the queue-driven worker with a future per submitted task
type ActiveRunner[D, R any] = core.ActiveRunner[D, R]

// Future is a single-fulfillment result channel
type Future[T any] = core.Future[T]

// Void marks the absent side of an ActiveRunner shape
type Void = core.Void

// SizedQueue is a bounded FIFO buffer with evict-oldest-on-overflow insertion
type SizedQueue[T any] = core.SizedQueue[T]

// WorkerStats is a snapshot of a worker's observable state
type WorkerStats = core.WorkerStats

// Logger is the structured logging interface injected into workers
type Logger = core.Logger

// Metrics is the metrics sink interface injected into workers
type Metrics = core.Metrics

// Option configures a worker or thread at construction time
type Option = core.Option

// Policy constants
const (
	PolicyDefault    Policy = core.PolicyDefault
	PolicyOther      Policy = core.PolicyOther
	PolicyFIFO       Policy = core.PolicyFIFO
	PolicyRoundRobin Policy = core.PolicyRoundRobin
	PolicyBatch      Policy = core.PolicyBatch
	PolicyIdle       Policy = core.PolicyIdle
)

// Sentinel errors
var (
	ErrAlreadyRunning = core.ErrAlreadyRunning
	ErrAlreadyStarted = core.ErrAlreadyStarted
	ErrTaskAbandoned  = core.ErrTaskAbandoned
)

// Construction helpers and options
var (
	NewThread       = core.NewThread
	NewRunner       = core.NewRunner
	Async           = core.Async
	DefaultPriority = core.DefaultPriority
	WithLogger      = core.WithLogger
	WithMetrics     = core.WithMetrics
	WithName        = core.WithName
	WithPriority    = core.WithPriority
)

// NewActiveRunner creates a worker whose step takes a D and produces an R.
func NewActiveRunner[D, R any](work func(D) (R, error), opts ...Option) *ActiveRunner[D, R] {
	return core.NewActiveRunner(work, opts...)
}

// NewSinkRunner creates a worker whose step consumes data and returns no value.
func NewSinkRunner[D any](work func(D) error, opts ...Option) *ActiveRunner[D, Void] {
	return core.NewSinkRunner(work, opts...)
}

// NewSourceRunner creates a worker whose step takes no input and produces a value.
func NewSourceRunner[R any](work func() (R, error), opts ...Option) *ActiveRunner[Void, R] {
	return core.NewSourceRunner(work, opts...)
}

// NewTriggerRunner creates a worker whose step takes no input and returns no value.
func NewTriggerRunner(work func() error, opts ...Option) *ActiveRunner[Void, Void] {
	return core.NewTriggerRunner(work, opts...)
}

// Trigger submits a task with no payload to a runner with a Void input side.
func Trigger[R any](r *ActiveRunner[Void, R]) *Future[R] {
	return core.Trigger(r)
}

// NewSizedQueue creates an empty bounded queue; capacity must be positive.
func NewSizedQueue[T any](capacity int) *SizedQueue[T] {
	return core.NewSizedQueue[T](capacity)
}
