//go:build linux

package core

import (
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/sys/unix"
)

func (p Policy) osPolicy() uint32 {
	switch p {
	case PolicyFIFO:
		return unix.SCHED_FIFO
	case PolicyRoundRobin:
		return unix.SCHED_RR
	case PolicyBatch:
		return unix.SCHED_BATCH
	case PolicyIdle:
		return unix.SCHED_IDLE
	default:
		return unix.SCHED_NORMAL
	}
}

// currentThreadID returns the kernel task id of the calling thread. Only
// valid while the goroutine is locked to its OS thread.
func currentThreadID() int {
	return unix.Gettid()
}

// applyPriority issues the live scheduling call for the thread identified by
// tid. Callers are expected to have skipped default priorities already.
func applyPriority(tid int, p Priority) error {
	attr := unix.SchedAttr{
		Size:     unix.SizeofSchedAttr,
		Policy:   p.Policy.osPolicy(),
		Priority: uint32(p.Level),
	}
	return unix.SchedSetAttr(tid, &attr, 0)
}

// applyThreadName sets the OS-visible name of the thread identified by tid.
// The kernel limits comm to 15 bytes.
func applyThreadName(tid int, name string) error {
	if name == "" {
		return nil
	}
	name = truncateCommName(name)
	return os.WriteFile(fmt.Sprintf("/proc/self/task/%d/comm", tid), []byte(name), 0o644)
}

// truncateCommName shortens name to the comm limit of 15 bytes without
// splitting a multibyte rune, so the written name stays valid UTF-8.
func truncateCommName(name string) string {
	const limit = 15
	if len(name) <= limit {
		return name
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(name[cut]) {
		cut--
	}
	return name[:cut]
}
