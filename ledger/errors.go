package ledger

import "fmt"

// DispatchError is the structural failure returned by Runtime.Dispatch.
type DispatchError struct {
	Module string
	Name   string
}

func (e *DispatchError) Error() string {
	if e.Module == "" {
		return e.Name
	}
	return fmt.Sprintf("%s::%s", e.Module, e.Name)
}

var (
	// ErrBadOrigin is returned when a call requires a signed origin.
	ErrBadOrigin = &DispatchError{Name: "BadOrigin"}
	// ErrUnknownCall is returned for call variants the runtime has no pallet for.
	ErrUnknownCall = &DispatchError{Name: "CallFiltered"}

	ErrNoneValue       = &DispatchError{Module: templatePallet, Name: "NoneValue"}
	ErrStorageOverflow = &DispatchError{Module: templatePallet, Name: "StorageOverflow"}
)
