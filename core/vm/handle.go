package vm

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Context is the call context the execution engine supplies for one
// precompile invocation.
type Context struct {
	// Address is the precompile being executed.
	Address common.Address
	// Caller is the immediate caller of the precompile.
	Caller common.Address
	// ApparentValue is the value declared by the call. It is carried for
	// the engine's bookkeeping only; no value is moved by this package.
	ApparentValue *uint256.Int
}

// PrecompileHandle gives a precompile read-only access to the invocation.
type PrecompileHandle interface {
	Input() []byte
	Context() Context
}

type callHandle struct {
	input []byte
	ctx   Context
}

// NewHandle returns a handle over a private copy of input.
func NewHandle(ctx Context, input []byte) PrecompileHandle {
	if ctx.ApparentValue == nil {
		ctx.ApparentValue = new(uint256.Int)
	} else {
		ctx.ApparentValue = new(uint256.Int).Set(ctx.ApparentValue)
	}
	return &callHandle{
		input: common.CopyBytes(input),
		ctx:   ctx,
	}
}

func (h *callHandle) Input() []byte { return h.input }

// Context returns the call context. The apparent value is copied so that
// callers cannot alter what later readers observe.
func (h *callHandle) Context() Context {
	ctx := h.ctx
	ctx.ApparentValue = new(uint256.Int).Set(h.ctx.ApparentValue)
	return ctx
}
