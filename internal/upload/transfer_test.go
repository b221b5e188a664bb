package upload

import "testing"

const gib = int64(1024 * 1024 * 1024)

func TestTransferAdvancesToComplete(t *testing.T) {
	transfer := NewTransfer(10)
	if transfer.State() != StateIdle {
		t.Fatalf("expected new transfer to be idle, got %s", transfer.State())
	}

	if err := transfer.Begin(0, 5*gib, 3*gib); err != nil {
		t.Fatalf("begin returned error: %v", err)
	}
	if transfer.State() != StateInProgress {
		t.Fatalf("expected in_progress after begin, got %s", transfer.State())
	}

	ticks := 0
	for !transfer.Advance() {
		ticks++
		if ticks > 100 {
			t.Fatalf("transfer never completed")
		}
	}

	if transfer.State() != StateComplete {
		t.Fatalf("expected complete, got %s", transfer.State())
	}
	if transfer.Percent() != 100 {
		t.Fatalf("expected 100 percent, got %d", transfer.Percent())
	}
	// 10 ticks of 10 percent; Advance returns true on the final one.
	if ticks != 9 {
		t.Fatalf("expected completion on the tenth tick, got %d prior ticks", ticks)
	}
}

func TestTransferRejectedBeforeAnyProgress(t *testing.T) {
	transfer := NewTransfer(10)

	err := transfer.Begin(3*gib, 5*gib, 3*gib)
	if err != ErrQuotaExceeded {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}
	if transfer.State() != StateRejected {
		t.Fatalf("expected rejected state, got %s", transfer.State())
	}
	if transfer.Percent() != 0 {
		t.Fatalf("expected no progress on rejection, got %d", transfer.Percent())
	}

	// Ticks on a rejected transfer are no-ops.
	if done := transfer.Advance(); done {
		t.Fatalf("expected Advance to be a no-op on rejected transfer")
	}
	if transfer.State() != StateRejected {
		t.Fatalf("expected state to remain rejected, got %s", transfer.State())
	}
}

func TestTransferExactRemainingCapacityAdmitted(t *testing.T) {
	transfer := NewTransfer(50)

	if err := transfer.Begin(3*gib, 5*gib, 2*gib); err != nil {
		t.Fatalf("expected exact-fit upload to be admitted, got %v", err)
	}
}

func TestTransferStepClampsAtHundred(t *testing.T) {
	transfer := NewTransfer(33)

	if err := transfer.Begin(0, gib, 1); err != nil {
		t.Fatalf("begin returned error: %v", err)
	}
	for i := 0; i < 4; i++ {
		transfer.Advance()
	}
	if transfer.Percent() != 100 {
		t.Fatalf("expected percent clamped at 100, got %d", transfer.Percent())
	}
}
