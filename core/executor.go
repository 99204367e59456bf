package core

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/core/types"

	"github.com/templatechain/nativecall/core/vm"
	"github.com/templatechain/nativecall/ledger"
)

// ErrNotPrecompile is returned when a call targets an address that hosts no
// native-call precompile.
var ErrNotPrecompile = errors.New("address is not a native-call precompile")

// Receipt is the outcome of one executed call.
type Receipt struct {
	// Status is types.ReceiptStatusSuccessful or types.ReceiptStatusFailed.
	Status uint64
	Output []byte
	// Failure is set for failed calls only.
	Failure *vm.PrecompileFailure
	// Events lists the ledger events the call deposited.
	Events []ledger.Event
}

// Succeeded reports whether the call returned successfully.
func (r *Receipt) Succeeded() bool { return r.Status == types.ReceiptStatusSuccessful }

// CallExecutor is an abstraction over a call execution backend. It hides the
// concrete ledger behind a common interface that tools and tests can use.
type CallExecutor interface {
	// Engine returns a short human identifier of the backend.
	Engine() string

	// ExecuteCall runs the described call and returns its receipt. A
	// precompile failure yields a failed receipt, not an error; errors are
	// reserved for calls that could not be executed at all.
	ExecuteCall(meta *vm.CallMetadata) (*Receipt, error)
}

// NewCallExecutor returns an executor running the native-call precompiles
// against rt. Calls must not be executed concurrently, otherwise events may
// be attributed to the wrong receipt.
func NewCallExecutor(rt *ledger.Runtime, config vm.Config) CallExecutor {
	return &runtimeExecutor{
		runtime:     rt,
		precompiles: vm.NewPrecompileSet(ledger.HashedAddressMapping{}, rt, config),
	}
}

// runtimeExecutor bridges the precompile set to an in-process ledger.Runtime.
type runtimeExecutor struct {
	runtime     *ledger.Runtime
	precompiles *vm.PrecompileSet
}

func (e *runtimeExecutor) Engine() string { return "native-runtime" }

func (e *runtimeExecutor) ExecuteCall(meta *vm.CallMetadata) (*Receipt, error) {
	h, err := meta.Handle()
	if err != nil {
		return nil, err
	}
	if addr := h.Context().Address; !e.precompiles.IsPrecompile(addr) {
		return nil, fmt.Errorf("%w: %s", ErrNotPrecompile, addr)
	}
	before := len(e.runtime.Events())

	out, _, err := e.precompiles.Run(h)
	if err != nil {
		var failure *vm.PrecompileFailure
		if !errors.As(err, &failure) {
			return nil, err
		}
		return &Receipt{Status: types.ReceiptStatusFailed, Failure: failure}, nil
	}
	return &Receipt{
		Status: types.ReceiptStatusSuccessful,
		Output: out.Output,
		Events: e.runtime.Events()[before:],
	}, nil
}
