package core

import "time"

// Metrics defines the interface for collecting worker execution metrics.
// Implementations can send metrics to monitoring systems (Prometheus, StatsD, etc.).
//
// Methods should be non-blocking and fast to avoid impacting dispatch
// throughput. The worker name passed to each method is the name configured
// with WithName or SetName; it may be empty.
type Metrics interface {
	// RecordWorkDuration records how long one work-step invocation took.
	RecordWorkDuration(worker string, duration time.Duration)

	// RecordWorkError records a work step returning an error.
	RecordWorkError(worker string)

	// RecordTaskSubmitted records a task accepted into a worker's queue.
	RecordTaskSubmitted(worker string)

	// RecordTaskAbandoned records tasks discarded without dispatch because
	// the worker stopped first.
	RecordTaskAbandoned(worker string, count int)

	// RecordQueueDepth records the queue depth observed after a dequeue.
	RecordQueueDepth(worker string, depth int)
}

// WorkerStats represents runtime observability state for one worker.
type WorkerStats struct {
	Name    string
	Running bool
	Pending int
}
