package core

import (
	"context"
	"errors"
	"testing"
	"time"
)

// TestThread_StartAndJoin verifies the basic thread lifecycle
// Given: an unstarted thread handle
// When: Start runs a function and Join is called
// Then: the function executed and the completion future resolved
func TestThread_StartAndJoin(t *testing.T) {
	thread := NewThread(WithName("test-thread"))

	executed := make(chan struct{})
	done, err := thread.Start(func() {
		close(executed)
	})
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	select {
	case <-executed:
	case <-time.After(time.Second):
		t.Fatal("thread function did not run")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := done.Wait(ctx); err != nil {
		t.Fatalf("completion future error = %v", err)
	}

	thread.Join()
	thread.Join() // idempotent
}

// TestThread_StartTwice verifies the single-start guarantee
// Given: a thread that has been started
// When: Start is called a second time
// Then: ErrAlreadyStarted is returned
func TestThread_StartTwice(t *testing.T) {
	thread := NewThread()

	if _, err := thread.Start(func() {}); err != nil {
		t.Fatalf("first Start() error = %v", err)
	}
	if _, err := thread.Start(func() {}); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("second Start() error = %v, want ErrAlreadyStarted", err)
	}

	thread.Join()
}

// TestThread_JoinNeverStarted verifies Join is a no-op without a thread
func TestThread_JoinNeverStarted(t *testing.T) {
	thread := NewThread()
	thread.Join() // must not block
}

// TestThread_PriorityCaching verifies the not-started SetPriority branch
// Given: an unstarted thread
// When: a priority is set
// Then: the call reports success and the value is cached
func TestThread_PriorityCaching(t *testing.T) {
	thread := NewThread()

	p := Priority{Policy: PolicyBatch, Level: 0}
	if !thread.SetPriority(p) {
		t.Error("SetPriority() before start = false, want true")
	}
	if got := thread.GetPriority(); got != p {
		t.Errorf("GetPriority() = %v, want %v", got, p)
	}
}

// TestThread_DefaultPrioritySkipsSyscall verifies the no-op success path
// Given: a live thread
// When: the default priority is set
// Then: the call reports success without touching the OS
func TestThread_DefaultPrioritySkipsSyscall(t *testing.T) {
	thread := NewThread()
	block := make(chan struct{})
	defer close(block)

	if _, err := thread.Start(func() { <-block }); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer thread.Detach()

	if !thread.SetPriority(DefaultPriority()) {
		t.Error("SetPriority(default) on live thread = false, want true")
	}
}

// TestThread_NameAccessors verifies name caching and live propagation
func TestThread_NameAccessors(t *testing.T) {
	thread := NewThread(WithName("before"))
	if got := thread.GetName(); got != "before" {
		t.Errorf("GetName() = %q, want \"before\"", got)
	}

	block := make(chan struct{})
	done, err := thread.Start(func() { <-block })
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	thread.SetName("after")
	if got := thread.GetName(); got != "after" {
		t.Errorf("GetName() = %q, want \"after\"", got)
	}

	close(block)
	<-done.Done()
}

// TestAsync verifies the fire-and-forget helper
// Given: a function passed to Async
// When: the returned future is waited on
// Then: the function has completed
func TestAsync(t *testing.T) {
	var executed bool
	future := Async(func() {
		executed = true
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := future.Wait(ctx); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if !executed {
		t.Error("Async function did not run before future resolved")
	}
}
