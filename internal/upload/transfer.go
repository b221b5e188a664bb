package upload

import "github.com/mycloudhq/mycloud/internal/quota"

// State is the phase of a simulated transfer.
type State int

const (
	// StateIdle is a transfer that has not begun.
	StateIdle State = iota
	// StateInProgress is a transfer whose progress is advancing.
	StateInProgress
	// StateComplete is a finished transfer; the completion side effect
	// fires exactly once, at this transition.
	StateComplete
	// StateRejected is a transfer refused by the admission check
	// before any progress began.
	StateRejected
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInProgress:
		return "in_progress"
	case StateComplete:
		return "complete"
	case StateRejected:
		return "rejected"
	}
	return "unknown"
}

// Transfer models a simulated upload as an explicit state machine. No
// bytes move; progress is a counter advanced by external ticks.
type Transfer struct {
	state   State
	percent int
	step    int
}

// NewTransfer builds an idle transfer advancing by step percent per tick.
func NewTransfer(step int) *Transfer {
	if step < 1 {
		step = 1
	}
	return &Transfer{state: StateIdle, step: step}
}

// Begin runs the quota admission check. On rejection the transfer
// moves to StateRejected and nothing else changes anywhere.
func (t *Transfer) Begin(usedBytes, limitBytes, incomingBytes int64) error {
	if !quota.CanAdmit(usedBytes, limitBytes, incomingBytes) {
		t.state = StateRejected
		return ErrQuotaExceeded
	}
	t.state = StateInProgress
	t.percent = 0
	return nil
}

// Advance moves an in-progress transfer forward by one tick and
// reports whether it reached completion. Ticks on any other state are
// no-ops.
func (t *Transfer) Advance() bool {
	if t.state != StateInProgress {
		return t.state == StateComplete
	}

	t.percent += t.step
	if t.percent >= 100 {
		t.percent = 100
		t.state = StateComplete
	}
	return t.state == StateComplete
}

// State returns the transfer's current phase.
func (t *Transfer) State() State {
	return t.state
}

// Percent returns the current progress in the range 0-100.
func (t *Transfer) Percent() int {
	return t.percent
}
