package vm

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"

	"github.com/templatechain/nativecall/ledger"
	"github.com/templatechain/nativecall/tracing"
)

// nativeCallFailed is the only detail a caller learns about a failed native
// dispatch. The underlying error is logged instead.
const nativeCallFailed = "native call failed"

// AddressMapping converts a 160-bit caller address into the ledger's account
// identity. Implementations must be total over the address space.
type AddressMapping interface {
	IntoAccountID(addr common.Address) ledger.AccountID
}

// CallDispatcher submits a native call to the ledger with the given origin.
type CallDispatcher interface {
	Dispatch(call ledger.Call, origin ledger.Origin) (ledger.PostInfo, error)
}

// Bridge hands native calls built by precompiles to the ledger, signed by the
// account the caller maps to. It holds no mutable state and may be shared by
// concurrent invocations.
type Bridge struct {
	mapping    AddressMapping
	dispatcher CallDispatcher
}

// NewBridge creates a bridge over the given collaborators.
func NewBridge(mapping AddressMapping, dispatcher CallDispatcher) *Bridge {
	return &Bridge{mapping: mapping, dispatcher: dispatcher}
}

// Dispatch executes call exactly once as the caller of h. A ledger failure is
// reported as an opaque ExitOther failure.
func (b *Bridge) Dispatch(h PrecompileHandle, call ledger.Call) (*PrecompileOutput, error) {
	caller := h.Context().Caller
	account := b.mapping.IntoAccountID(caller)

	info, err := b.dispatcher.Dispatch(call, ledger.Signed(account))
	if err != nil {
		log.Warn("Native call dispatch failed", "call", call, "caller", caller, "account", account, "err", err)
		markDispatch(tracing.DispatchFailed)
		return nil, errOther(nativeCallFailed)
	}
	log.Debug("Native call dispatched", "call", call, "caller", caller, "account", account, "weight", info.ActualWeight, "paysfee", info.PaysFee)
	markDispatch(tracing.DispatchSucceeded)

	return &PrecompileOutput{ExitStatus: ExitReturned, Output: []byte{}}, nil
}
