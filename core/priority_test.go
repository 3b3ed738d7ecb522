package core

import "testing"

// TestPriority_IsDefault verifies which priorities skip the live syscall
func TestPriority_IsDefault(t *testing.T) {
	cases := []struct {
		priority Priority
		want     bool
	}{
		{Priority{}, true},
		{Priority{Policy: PolicyDefault}, true},
		{Priority{Policy: PolicyOther}, true},
		{Priority{Policy: PolicyOther, Level: 1}, false},
		{Priority{Policy: PolicyFIFO, Level: 10}, false},
		{Priority{Policy: PolicyIdle}, false},
		{Priority{Policy: PolicyBatch}, false},
	}

	for _, c := range cases {
		if got := c.priority.IsDefault(); got != c.want {
			t.Errorf("%v.IsDefault() = %v, want %v", c.priority, got, c.want)
		}
	}
}

// TestPolicy_String verifies the policy labels used in log fields
func TestPolicy_String(t *testing.T) {
	cases := map[Policy]string{
		PolicyDefault:    "default",
		PolicyOther:      "other",
		PolicyFIFO:       "fifo",
		PolicyRoundRobin: "round_robin",
		PolicyBatch:      "batch",
		PolicyIdle:       "idle",
		Policy(99):       "policy(99)",
	}

	for policy, want := range cases {
		if got := policy.String(); got != want {
			t.Errorf("Policy(%d).String() = %q, want %q", policy, got, want)
		}
	}
}
