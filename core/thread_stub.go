//go:build !linux

package core

import "errors"

var errSchedulingUnsupported = errors.New("runnable: thread scheduling not supported on this platform")

func currentThreadID() int { return 0 }

func applyPriority(tid int, p Priority) error {
	return errSchedulingUnsupported
}

func applyThreadName(tid int, name string) error {
	return nil
}
