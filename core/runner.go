package core

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// Work is the user-supplied step a Runner executes repeatedly. A returned
// error terminates the run loop and is carried on the completion future.
type Work interface {
	Work() error
}

// WorkFunc adapts a plain function to the Work interface.
type WorkFunc func() error

func (f WorkFunc) Work() error { return f() }

// Runner executes a work step continuously on one dedicated OS thread until
// stopped. A Runner is single-use: Run may succeed once per instance.
type Runner struct {
	s *runnerState
}

// runnerState is split from the handle for the same reason as threadState:
// the run loop must not keep a dropped Runner reachable, or the
// join-on-finalize teardown could never fire.
type runnerState struct {
	work Work

	mu      sync.Mutex
	started bool
	thread  *Thread
	running atomic.Bool

	priority Priority
	name     string
	logger   Logger
	metrics  Metrics
}

// NewRunner creates a stopped Runner around the given work step.
func NewRunner(work Work, opts ...Option) *Runner {
	o := buildOptions(opts)
	r := &Runner{s: &runnerState{
		work:     work,
		priority: o.priority,
		name:     o.name,
		logger:   o.logger,
		metrics:  o.metrics,
	}}
	runtime.SetFinalizer(r, func(r *Runner) { r.s.teardown() })
	return r
}

// Run spawns the dedicated thread and invokes the work step in a loop while
// the running flag holds. The returned future resolves when the loop exits,
// carrying the work step's error if one terminated it. Run fails with
// ErrAlreadyRunning if the instance has ever been started.
func (r *Runner) Run() (*Future[Void], error) {
	s := r.s
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil, ErrAlreadyRunning
	}
	s.started = true
	s.running.Store(true)
	s.thread = NewThread(WithLogger(s.logger), WithName(s.name), WithPriority(s.priority))
	thread := s.thread
	s.mu.Unlock()

	done := newFuture[Void]()
	if _, err := thread.Start(func() { s.loop(done) }); err != nil {
		return nil, err
	}
	return done, nil
}

func (s *runnerState) loop(done *Future[Void]) {
	var workErr error
	for s.running.Load() {
		start := time.Now()
		err := s.work.Work()
		if s.metrics != nil {
			s.metrics.RecordWorkDuration(s.name, time.Since(start))
		}
		if err != nil {
			// The running flag is intentionally left set: a work-step
			// failure kills the loop but Status keeps reporting true.
			workErr = err
			if s.metrics != nil {
				s.metrics.RecordWorkError(s.name)
			}
			break
		}
	}
	done.complete(Void{}, workErr)
}

// Stop clears the running flag and returns immediately. The loop exits
// after the in-flight work step completes; callers that need completion
// must wait on the future returned by Run.
func (r *Runner) Stop() {
	r.s.running.Store(false)
}

// Status reports the running flag.
func (r *Runner) Status() bool {
	return r.s.running.Load()
}

// SetPriority caches p and, if the runner is live, delegates to the owned
// thread. It reports false while the runner is not running; the cached value
// is still applied when the thread starts.
func (r *Runner) SetPriority(p Priority) bool {
	s := r.s
	s.mu.Lock()
	s.priority = p
	thread := s.thread
	s.mu.Unlock()
	if s.running.Load() && thread != nil {
		return thread.SetPriority(p)
	}
	return false
}

// GetPriority returns the cached priority.
func (r *Runner) GetPriority() Priority {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.priority
}

// SetName caches the thread name, propagating it to the live thread if the
// runner is running.
func (r *Runner) SetName(name string) {
	s := r.s
	s.mu.Lock()
	s.name = name
	thread := s.thread
	s.mu.Unlock()
	if s.running.Load() && thread != nil {
		thread.SetName(name)
	}
}

// GetName returns the cached thread name.
func (r *Runner) GetName() string {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

// teardown runs when a Runner is dropped without an explicit stop. It
// guarantees no OS thread outlives the instance.
func (s *runnerState) teardown() {
	s.running.Store(false)
	s.mu.Lock()
	thread := s.thread
	s.mu.Unlock()
	if thread != nil {
		thread.Join()
	}
}
