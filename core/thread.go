package core

import (
	"runtime"
	"sync"
)

// Thread wraps one OS thread. The wrapped thread is a goroutine pinned with
// runtime.LockOSThread for its whole lifetime, so the goroutine exiting
// destroys the thread and nothing else is ever scheduled onto it.
//
// A Thread is associated with at most one OS thread over its lifetime:
// Start may be called once. Unless detached, the thread is joined before the
// handle is released; a finalizer enforces this for handles that are dropped
// without an explicit Join.
type Thread struct {
	s *threadState
}

// threadState is split from the handle so the running thread never holds a
// reference to the handle itself. That keeps a dropped handle collectable
// (and its join-on-finalize effective) while the thread is still running.
type threadState struct {
	mu       sync.Mutex
	started  bool
	detached bool
	tid      int // valid once the thread function has been entered
	tidReady chan struct{}
	done     *Future[Void]
	priority Priority
	name     string
	logger   Logger
}

// NewThread creates an unstarted thread handle. WithPriority and WithName
// configure the values applied to the OS thread at start; WithLogger sets
// the sink for scheduling failures.
func NewThread(opts ...Option) *Thread {
	o := buildOptions(opts)
	t := &Thread{s: &threadState{
		tidReady: make(chan struct{}),
		done:     newFuture[Void](),
		priority: o.priority,
		name:     o.name,
		logger:   o.logger,
	}}
	runtime.SetFinalizer(t, func(t *Thread) { t.s.join() })
	return t
}

// Start spawns the OS thread executing fn. The cached priority and name are
// applied inside the new thread before fn is invoked. The returned future
// resolves when fn returns. Start fails with ErrAlreadyStarted on the second
// call.
func (t *Thread) Start(fn func()) (*Future[Void], error) {
	s := t.s
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil, ErrAlreadyStarted
	}
	s.started = true
	s.mu.Unlock()

	go s.main(fn)
	return s.done, nil
}

// main is the top-level function of the owned OS thread. LockOSThread is
// never undone, so the thread terminates together with this goroutine.
func (s *threadState) main(fn func()) {
	runtime.LockOSThread()

	s.mu.Lock()
	s.tid = currentThreadID()
	prio := s.priority
	name := s.name
	s.mu.Unlock()
	close(s.tidReady)

	if !prio.IsDefault() {
		if err := applyPriority(s.tid, prio); err != nil {
			s.logger.Error("thread: set_priority failed",
				F("name", name), F("priority", prio.String()), F("err", err))
		}
	}
	if err := applyThreadName(s.tid, name); err != nil {
		s.logger.Warn("thread: set_name failed", F("name", name), F("err", err))
	}

	fn()
	s.done.complete(Void{}, nil)
}

// Detach releases ownership of the OS thread. A detached thread runs
// independently and is not joined when the handle is released.
func (t *Thread) Detach() {
	s := t.s
	s.mu.Lock()
	s.detached = true
	s.mu.Unlock()
	runtime.SetFinalizer(t, nil)
}

// Join blocks until the owned thread terminates. It is idempotent and a
// no-op if the thread was never started or has been detached.
func (t *Thread) Join() {
	t.s.join()
}

func (s *threadState) join() {
	s.mu.Lock()
	started := s.started
	detached := s.detached
	s.mu.Unlock()
	if !started || detached {
		return
	}
	<-s.done.Done()
}

// SetPriority caches p as the thread's priority and, if the thread is
// already live, issues the OS re-scheduling call. A failed live call is
// logged and reported as false; the cached value is kept either way. A
// default priority skips the syscall and reports success.
func (t *Thread) SetPriority(p Priority) bool {
	s := t.s
	s.mu.Lock()
	s.priority = p
	started := s.started
	s.mu.Unlock()

	if !started {
		return true
	}
	if p.IsDefault() {
		return true
	}

	<-s.tidReady
	s.mu.Lock()
	tid := s.tid
	name := s.name
	s.mu.Unlock()

	if err := applyPriority(tid, p); err != nil {
		s.logger.Error("thread: set_priority failed",
			F("name", name), F("priority", p.String()), F("err", err))
		return false
	}
	return true
}

// GetPriority returns the cached priority.
func (t *Thread) GetPriority() Priority {
	s := t.s
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.priority
}

// SetName caches the display name and, if the thread is already live,
// propagates it to the OS-visible thread name where supported.
func (t *Thread) SetName(name string) {
	s := t.s
	s.mu.Lock()
	s.name = name
	started := s.started
	s.mu.Unlock()

	if !started {
		return
	}
	<-s.tidReady
	s.mu.Lock()
	tid := s.tid
	s.mu.Unlock()
	if err := applyThreadName(tid, name); err != nil {
		s.logger.Warn("thread: set_name failed", F("name", name), F("err", err))
	}
}

// GetName returns the cached display name.
func (t *Thread) GetName() string {
	s := t.s
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

// Async runs fn on its own detached OS thread and returns a future resolved
// when fn returns. No handle to the thread is retained.
func Async(fn func()) *Future[Void] {
	f := newFuture[Void]()
	go func() {
		runtime.LockOSThread()
		fn()
		f.complete(Void{}, nil)
	}()
	return f
}
