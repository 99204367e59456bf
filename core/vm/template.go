package vm

import (
	"github.com/ethereum/go-ethereum/log"

	"github.com/templatechain/nativecall/ledger"
	"github.com/templatechain/nativecall/tracing"
)

// DoSomethingSignature is the canonical signature of the only operation the
// template precompile exposes.
const DoSomethingSignature = "doSomething(uint32)"

var doSomethingSelector = MethodID(DoSomethingSignature)

// TemplateMethods returns the signatures the template precompile accepts.
func TemplateMethods() []string {
	return []string{DoSomethingSignature}
}

// TemplatePrecompile exposes the ledger's template pallet to contracts.
type TemplatePrecompile struct {
	bridge *Bridge
	strict bool
}

// NewTemplatePrecompile creates the template precompile on top of bridge.
func NewTemplatePrecompile(bridge *Bridge, config Config) *TemplatePrecompile {
	return &TemplatePrecompile{bridge: bridge, strict: config.StrictPadding}
}

// Execute decodes the call data of h and dispatches the requested call.
func (p *TemplatePrecompile) Execute(h PrecompileHandle) (*PrecompileOutput, error) {
	sel, tail, err := splitInput(h.Input())
	if err != nil {
		markDispatch(tracing.DispatchShortInput)
		return nil, err
	}
	switch sel {
	case doSomethingSelector:
		return p.doSomething(h, tail)
	default:
		log.Debug("Unknown template precompile selector", "selector", sel, "caller", h.Context().Caller)
		markDispatch(tracing.DispatchUnknownSelector)
		return nil, ErrInvalidRange
	}
}

func (p *TemplatePrecompile) doSomething(h PrecompileHandle, tail []byte) (*PrecompileOutput, error) {
	something, err := ParseUint32(tail, p.strict)
	if err != nil {
		markDispatch(tracing.DispatchBadArgument)
		return nil, err
	}
	return p.bridge.Dispatch(h, ledger.TemplateDoSomething{Something: something})
}
