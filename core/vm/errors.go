package vm

import "fmt"

// ExitSucceed is the success status reported to the calling engine.
type ExitSucceed uint8

const (
	ExitStopped ExitSucceed = iota
	ExitReturned
)

func (s ExitSucceed) String() string {
	if s == ExitReturned {
		return "returned"
	}
	return "stopped"
}

// ExitErrorKind is the closed set of failure classifications surfaced to
// callers of a precompile.
type ExitErrorKind uint8

const (
	// ExitInvalidRange covers short input, bad slice bounds and unknown
	// selectors.
	ExitInvalidRange ExitErrorKind = iota
	// ExitOther wraps a failure of the native dispatch.
	ExitOther
)

func (k ExitErrorKind) String() string {
	switch k {
	case ExitInvalidRange:
		return "InvalidRange"
	case ExitOther:
		return "Other"
	}
	return fmt.Sprintf("ExitErrorKind(%d)", uint8(k))
}

// PrecompileOutput is a successful precompile result.
type PrecompileOutput struct {
	ExitStatus ExitSucceed
	Output     []byte
}

// PrecompileFailure is the error returned by a failing precompile.
type PrecompileFailure struct {
	Kind    ExitErrorKind
	Message string // only set for ExitOther
}

// ErrInvalidRange matches every invalid-range failure via errors.Is.
var ErrInvalidRange = &PrecompileFailure{Kind: ExitInvalidRange}

func (f *PrecompileFailure) Error() string {
	if f.Kind == ExitOther {
		return "precompile failure: " + f.Message
	}
	return "precompile failure: " + f.Kind.String()
}

// Is matches failures of the same kind. Messages are only compared for
// ExitOther targets that carry one.
func (f *PrecompileFailure) Is(target error) bool {
	t, ok := target.(*PrecompileFailure)
	if !ok {
		return false
	}
	if f.Kind != t.Kind {
		return false
	}
	return t.Kind != ExitOther || t.Message == "" || t.Message == f.Message
}

func errOther(msg string) *PrecompileFailure {
	return &PrecompileFailure{Kind: ExitOther, Message: msg}
}
