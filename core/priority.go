package core

import "fmt"

// Policy is the portable scheduling-class tag of a Priority. The worker
// components treat it opaquely; only the thread layer translates it into an
// OS scheduling class.
type Policy int32

const (
	// PolicyDefault leaves the thread under the OS default scheduler.
	PolicyDefault Policy = iota

	// PolicyOther is the normal time-sharing scheduler, equivalent to
	// PolicyDefault on Linux.
	PolicyOther

	// PolicyFIFO is first-in-first-out real-time scheduling.
	PolicyFIFO

	// PolicyRoundRobin is real-time scheduling with time slicing.
	PolicyRoundRobin

	// PolicyBatch is for CPU-bound batch work with a scheduling penalty.
	PolicyBatch

	// PolicyIdle runs the thread only when the CPU would otherwise idle.
	PolicyIdle
)

func (p Policy) String() string {
	switch p {
	case PolicyDefault:
		return "default"
	case PolicyOther:
		return "other"
	case PolicyFIFO:
		return "fifo"
	case PolicyRoundRobin:
		return "round_robin"
	case PolicyBatch:
		return "batch"
	case PolicyIdle:
		return "idle"
	default:
		return fmt.Sprintf("policy(%d)", int32(p))
	}
}

// Priority describes OS scheduling intent as a portable (policy, level)
// pair. Level is only meaningful for the real-time policies; it must be zero
// for the others.
type Priority struct {
	Policy Policy
	Level  uint8
}

// DefaultPriority returns the priority a thread starts with when none is
// configured.
func DefaultPriority() Priority {
	return Priority{Policy: PolicyDefault}
}

// IsDefault reports whether applying p would be a no-op. The live scheduling
// syscall is skipped for default priorities.
func (p Priority) IsDefault() bool {
	return (p.Policy == PolicyDefault || p.Policy == PolicyOther) && p.Level == 0
}

func (p Priority) String() string {
	return fmt.Sprintf("%s/%d", p.Policy, p.Level)
}
