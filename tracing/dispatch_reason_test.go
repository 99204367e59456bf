package tracing

import "testing"

func TestDispatchReasonString(t *testing.T) {
	seen := make(map[string]DispatchReason)
	for r := DispatchUnspecified; r <= DispatchBadArgument; r++ {
		s := r.String()
		if s == "unknown" {
			t.Fatalf("reason %d has no name", r)
		}
		if prev, ok := seen[s]; ok {
			t.Fatalf("reasons %d and %d share name %q", prev, r, s)
		}
		seen[s] = r
	}
	if got := DispatchReason(99).String(); got != "unknown" {
		t.Fatalf("unexpected name for out-of-range reason: %s", got)
	}
}

func TestDispatchReasonRejected(t *testing.T) {
	if DispatchSucceeded.Rejected() || DispatchFailed.Rejected() {
		t.Fatalf("ledger outcomes must not count as rejections")
	}
	if !DispatchShortInput.Rejected() || !DispatchUnknownSelector.Rejected() || !DispatchBadArgument.Rejected() {
		t.Fatalf("input errors must count as rejections")
	}
}
