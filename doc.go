// Package runnable provides small active-object concurrency primitives
// built around dedicated OS threads.
//
// The library wraps one OS thread per worker - there is no shared pool and
// no work stealing. Two execution models are built on the thread wrapper:
//
//   - Runner executes a user work step in a loop until stopped.
//   - ActiveRunner queues submitted requests and dispatches them serially
//     to the work step, returning a one-shot future per request.
//
// # Quick Start
//
// Create an ActiveRunner around a work step, start it, and submit:
//
//	worker := runnable.NewActiveRunner(func(n int) (int, error) {
//		return n * n, nil
//	})
//	done, err := worker.Run()
//	if err != nil {
//		// worker was already started
//	}
//
//	future := worker.Submit(7)
//	result, err := future.Get(ctx) // 49
//
//	worker.Stop()
//	done.Wait(ctx)
//
// # Key Concepts
//
// Thread: a portable handle over exactly one OS thread, with start, detach,
// join, scheduling priority and a display name. The thread is joined before
// the handle is released, so a live OS thread never outlives its owner.
//
// Future: a single-fulfillment result channel. Submit, Run and Async each
// return one. A task discarded by Stop resolves its future with
// ErrTaskAbandoned instead of a result.
//
// Priority: a portable (policy, level) pair describing scheduling intent.
// Only the thread layer translates it to the OS; failures of the live
// scheduling call are logged and reported via a boolean, never retried.
//
// # Ordering
//
// For a single producer, ActiveRunner dispatches tasks in exactly the order
// Submit was called. Across producers, order is the lock acquisition order;
// no stronger guarantee is made.
//
// # Shutdown
//
// Stop requests termination and returns immediately; the future returned by
// Run resolves once the loop has exited. Tasks still queued when the loop
// observes the stop signal are abandoned, not drained.
package runnable
