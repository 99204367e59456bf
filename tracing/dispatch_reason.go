package tracing

// DispatchReason classifies how a precompile invocation ended.
type DispatchReason int

const (
	DispatchUnspecified DispatchReason = iota
	DispatchSucceeded
	DispatchFailed
	DispatchShortInput      // call data shorter than a selector
	DispatchUnknownSelector // selector matches no supported operation
	DispatchBadArgument     // arguments missing or malformed
)

// String returns a human-readable string for the reason.
func (r DispatchReason) String() string {
	switch r {
	case DispatchUnspecified:
		return "unspecified"
	case DispatchSucceeded:
		return "dispatched"
	case DispatchFailed:
		return "dispatch_failed"
	case DispatchShortInput:
		return "short_input"
	case DispatchUnknownSelector:
		return "unknown_selector"
	case DispatchBadArgument:
		return "bad_argument"
	}
	return "unknown"
}

// Rejected reports whether the invocation was turned away before reaching
// the ledger.
func (r DispatchReason) Rejected() bool {
	switch r {
	case DispatchShortInput, DispatchUnknownSelector, DispatchBadArgument:
		return true
	}
	return false
}
