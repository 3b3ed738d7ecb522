package core

import (
	"context"
	"errors"
	"testing"
	"time"
)

// TestFuture_CompleteAndGet verifies single fulfillment delivery
// Given: a fresh future
// When: the producer completes it with a value
// Then: Get returns the value and Done is closed
func TestFuture_CompleteAndGet(t *testing.T) {
	f := newFuture[int]()
	f.complete(42, nil)

	select {
	case <-f.Done():
	default:
		t.Fatal("Done() not closed after complete")
	}

	got, err := f.Get(context.Background())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != 42 {
		t.Errorf("Get() = %d, want 42", got)
	}
}

// TestFuture_SingleFulfillment verifies a second completion is a no-op
// Given: a future already completed with a value
// When: complete is called again with a different value
// Then: the original value is preserved
func TestFuture_SingleFulfillment(t *testing.T) {
	f := newFuture[string]()
	f.complete("first", nil)
	f.complete("second", errors.New("late"))

	got, err := f.Get(context.Background())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "first" {
		t.Errorf("Get() = %q, want \"first\"", got)
	}
}

// TestFuture_Abandon verifies the broken-promise signal
// Given: a future whose task will never be dispatched
// When: the future is abandoned
// Then: waiters observe ErrTaskAbandoned instead of hanging
func TestFuture_Abandon(t *testing.T) {
	f := newFuture[int]()
	f.abandon()

	if err := f.Wait(context.Background()); !errors.Is(err, ErrTaskAbandoned) {
		t.Errorf("Wait() error = %v, want ErrTaskAbandoned", err)
	}
}

// TestFuture_Err verifies the non-blocking error accessor
// Given: a pending future and a failed one
// When: Err is called on each
// Then: the pending future reports nil and the failed one its error
func TestFuture_Err(t *testing.T) {
	pending := newFuture[int]()
	if err := pending.Err(); err != nil {
		t.Errorf("Err() on pending future = %v, want nil", err)
	}

	failed := newFuture[int]()
	cause := errors.New("step failed")
	failed.complete(0, cause)
	if err := failed.Err(); !errors.Is(err, cause) {
		t.Errorf("Err() = %v, want %v", err, cause)
	}
}

// TestFuture_GetContextCancel verifies the caller-side escape hatch
// Given: a future that is never completed
// When: Get is called with a context that times out
// Then: the context error is returned
func TestFuture_GetContextCancel(t *testing.T) {
	f := newFuture[int]()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := f.Get(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Get() error = %v, want context.DeadlineExceeded", err)
	}
}
