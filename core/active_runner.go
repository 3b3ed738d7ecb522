package core

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// taskEnvelope pairs one queued payload with its result promise. It is
// created by Submit, consumed exactly once by the dispatch loop, then
// discarded.
type taskEnvelope[D, R any] struct {
	data   D
	future *Future[R]
}

// ActiveRunner is the queue-driven worker: Submit enqueues a request and
// returns a future, and a dedicated OS thread dispatches requests to the
// work step serially, in FIFO order.
//
// The data and result sides are both optional; use Void for the absent one.
// NewSinkRunner, NewSourceRunner and NewTriggerRunner wrap the three
// degenerate shapes over this same engine.
type ActiveRunner[D, R any] struct {
	s *activeState[D, R]
}

type activeState[D, R any] struct {
	work func(D) (R, error)

	// mu guards tasks and the started flag; cond wakes the dispatch loop
	// when a task arrives or stop is requested.
	mu      sync.Mutex
	cond    *sync.Cond
	tasks   []taskEnvelope[D, R]
	started bool
	running atomic.Bool

	thread   *Thread
	priority Priority
	name     string
	logger   Logger
	metrics  Metrics
}

// NewActiveRunner creates a stopped worker whose work step takes a D and
// produces an R.
func NewActiveRunner[D, R any](work func(D) (R, error), opts ...Option) *ActiveRunner[D, R] {
	o := buildOptions(opts)
	s := &activeState[D, R]{
		work:     work,
		priority: o.priority,
		name:     o.name,
		logger:   o.logger,
		metrics:  o.metrics,
	}
	s.cond = sync.NewCond(&s.mu)
	r := &ActiveRunner[D, R]{s: s}
	runtime.SetFinalizer(r, func(r *ActiveRunner[D, R]) { r.s.teardown() })
	return r
}

// NewSinkRunner creates a worker whose step consumes data and returns no
// value.
func NewSinkRunner[D any](work func(D) error, opts ...Option) *ActiveRunner[D, Void] {
	return NewActiveRunner(func(d D) (Void, error) {
		return Void{}, work(d)
	}, opts...)
}

// NewSourceRunner creates a worker whose step takes no input and produces a
// value. Submit with Trigger.
func NewSourceRunner[R any](work func() (R, error), opts ...Option) *ActiveRunner[Void, R] {
	return NewActiveRunner(func(Void) (R, error) {
		return work()
	}, opts...)
}

// NewTriggerRunner creates a worker whose step takes no input and returns no
// value. Submit with Trigger.
func NewTriggerRunner(work func() error, opts ...Option) *ActiveRunner[Void, Void] {
	return NewActiveRunner(func(Void) (Void, error) {
		return Void{}, work()
	}, opts...)
}

// Trigger submits a task with no payload to a runner with a Void input side.
func Trigger[R any](r *ActiveRunner[Void, R]) *Future[R] {
	return r.Submit(Void{})
}

// Run spawns the dispatch thread. The returned future resolves when the
// dispatch loop exits after Stop. Run fails with ErrAlreadyRunning if the
// instance has ever been started.
//
// Tasks submitted before Run are already queued and will be dispatched once
// the loop is live.
func (r *ActiveRunner[D, R]) Run() (*Future[Void], error) {
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
	if _, err := thread.Start(func() { s.dispatch(done) }); err != nil {
		return nil, err
	}
	return done, nil
}

// dispatch is the loop running on the owned thread. It holds the queue lock
// only while manipulating the queue, never across a work step invocation,
// so producers are not blocked by in-flight work.
func (s *activeState[D, R]) dispatch(done *Future[Void]) {
	defer done.complete(Void{}, nil)

	for {
		s.mu.Lock()
		for len(s.tasks) == 0 && s.running.Load() {
			s.cond.Wait()
		}
		if !s.running.Load() {
			// Exit without draining: queued tasks are abandoned, their
			// futures resolved with ErrTaskAbandoned instead of a result.
			abandoned := s.tasks
			s.tasks = nil
			name := s.name
			s.mu.Unlock()
			for _, task := range abandoned {
				task.future.abandon()
			}
			if s.metrics != nil && len(abandoned) > 0 {
				s.metrics.RecordTaskAbandoned(name, len(abandoned))
			}
			return
		}

		task := s.tasks[0]
		s.tasks[0] = taskEnvelope[D, R]{} // release references before reslicing
		s.tasks = s.tasks[1:]
		depth := len(s.tasks)
		name := s.name
		s.mu.Unlock()

		if s.metrics != nil {
			s.metrics.RecordQueueDepth(name, depth)
		}

		start := time.Now()
		value, err := s.work(task.data)
		if s.metrics != nil {
			s.metrics.RecordWorkDuration(name, time.Since(start))
			if err != nil {
				s.metrics.RecordWorkError(name)
			}
		}
		// A work-step error surfaces only on this task's future; the loop
		// continues with the next task.
		task.future.complete(value, err)
	}
}

// Submit appends a task to the back of the queue, wakes the dispatch loop
// and returns the task's future immediately. It never blocks on work
// completion. A task submitted after Stop is never dispatched; its future
// resolves with ErrTaskAbandoned.
func (r *ActiveRunner[D, R]) Submit(data D) *Future[R] {
	s := r.s
	f := newFuture[R]()

	s.mu.Lock()
	if s.started && !s.running.Load() {
		name := s.name
		s.mu.Unlock()
		f.abandon()
		if s.metrics != nil {
			s.metrics.RecordTaskAbandoned(name, 1)
		}
		return f
	}
	s.tasks = append(s.tasks, taskEnvelope[D, R]{data: data, future: f})
	name := s.name
	s.cond.Signal()
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.RecordTaskSubmitted(name)
	}
	return f
}

// Stop clears the running flag under the queue lock and wakes a blocked
// dispatch loop. It does not wait for the loop to exit; callers that need
// completion must wait on the future returned by Run.
func (r *ActiveRunner[D, R]) Stop() {
	s := r.s
	s.mu.Lock()
	s.running.Store(false)
	s.cond.Signal()
	s.mu.Unlock()
}

// Status reports the running flag.
func (r *ActiveRunner[D, R]) Status() bool {
	return r.s.running.Load()
}

// Pending returns the number of queued, not yet dispatched tasks.
func (r *ActiveRunner[D, R]) Pending() int {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Stats snapshots the worker's observable state.
func (r *ActiveRunner[D, R]) Stats() WorkerStats {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	return WorkerStats{
		Name:    s.name,
		Running: s.running.Load(),
		Pending: len(s.tasks),
	}
}

// SetPriority caches p and, if the worker is live, delegates to the owned
// thread. It reports false while the worker is not running.
func (r *ActiveRunner[D, R]) SetPriority(p Priority) bool {
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
func (r *ActiveRunner[D, R]) GetPriority() Priority {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.priority
}

// SetName caches the thread name, propagating it to the live thread if the
// worker is running.
func (r *ActiveRunner[D, R]) SetName(name string) {
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
func (r *ActiveRunner[D, R]) GetName() string {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

// teardown runs when an ActiveRunner is dropped without an explicit stop.
// It guarantees no OS thread outlives the instance and no queued future is
// left unresolved: tasks submitted to a worker that was never run have no
// dispatch loop to abandon them, so teardown does it here.
func (s *activeState[D, R]) teardown() {
	s.mu.Lock()
	s.running.Store(false)
	s.cond.Signal()
	thread := s.thread
	s.mu.Unlock()
	if thread != nil {
		thread.Join()
	}

	s.mu.Lock()
	abandoned := s.tasks
	s.tasks = nil
	name := s.name
	s.mu.Unlock()
	for _, task := range abandoned {
		task.future.abandon()
	}
	if s.metrics != nil && len(abandoned) > 0 {
		s.metrics.RecordTaskAbandoned(name, len(abandoned))
	}
}
