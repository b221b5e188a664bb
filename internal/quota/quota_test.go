package quota

import "testing"

const gib = int64(1024 * 1024 * 1024)

func TestCanAdmitWithinLimit(t *testing.T) {
	if !CanAdmit(0, 5*gib, 3*gib) {
		t.Fatalf("expected upload within limit to be admitted")
	}
}

func TestCanAdmitExactRemainingCapacity(t *testing.T) {
	if !CanAdmit(3*gib, 5*gib, 2*gib) {
		t.Fatalf("expected upload filling exact remaining capacity to be admitted")
	}
}

func TestCanAdmitOverLimit(t *testing.T) {
	if CanAdmit(3*gib, 5*gib, 3*gib) {
		t.Fatalf("expected upload exceeding limit to be rejected")
	}
}

func TestRemainingFloorsAtZero(t *testing.T) {
	if got := Remaining(6*gib, 5*gib); got != 0 {
		t.Fatalf("expected 0 remaining for over-quota user, got %d", got)
	}
	if got := Remaining(2*gib, 5*gib); got != 3*gib {
		t.Fatalf("expected 3 GiB remaining, got %d", got)
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(gib, 4*gib); got != 25 {
		t.Fatalf("expected 25 percent, got %f", got)
	}
	if got := Percent(gib, 0); got != 0 {
		t.Fatalf("expected 0 percent for zero limit, got %f", got)
	}
}
