package ledger

import (
	"fmt"

	"github.com/ethereum/go-ethereum/log"
)

// Config carries the ledger-side settings.
type Config struct {
	// SS58Prefix is the network prefix used when rendering accounts.
	SS58Prefix uint16
}

// DefaultConfig contains the default ledger settings.
var DefaultConfig = Config{
	SS58Prefix: DefaultSS58Prefix,
}

// Validate reports settings that cannot be honoured.
func (c Config) Validate() error {
	if c.SS58Prefix > MaxSS58Prefix {
		return fmt.Errorf("%w: %d > %d", ErrSS58PrefixRange, c.SS58Prefix, MaxSS58Prefix)
	}
	return nil
}

// Runtime executes native calls against an in-memory State. Every dispatch is
// transactional: its writes and events become visible only if the call
// succeeds. Runtime is safe for concurrent use.
type Runtime struct {
	config Config
	state  *State
}

// NewRuntime creates a runtime over a fresh state.
func NewRuntime(config Config) *Runtime {
	return &Runtime{config: config, state: NewState()}
}

// State exposes the runtime's storage for inspection.
func (r *Runtime) State() *State { return r.state }

// Dispatch executes call with the authority of origin.
func (r *Runtime) Dispatch(call Call, origin Origin) (PostInfo, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	if r.state.hasPending() {
		// Left over from a panicking pallet; never leak it into this call.
		r.state.revert()
	}

	var (
		info PostInfo
		err  error
	)
	switch c := call.(type) {
	case TemplateDoSomething:
		info, err = r.template().doSomething(origin, c.Something)
	case TemplateCauseError:
		info, err = r.template().causeError(origin)
	default:
		err = ErrUnknownCall
	}
	if err != nil {
		r.state.revert()
		log.Trace("Native call reverted", "call", describeCall(call), "origin", origin.Kind, "err", err)
		return PostInfo{}, err
	}
	r.state.commit()
	return info, nil
}

// Something returns the value stored by the template pallet, if any.
func (r *Runtime) Something() (uint32, bool) {
	raw, ok := r.state.Get(somethingKey)
	if !ok {
		return 0, false
	}
	return decodeU32(raw), true
}

// Events returns every event deposited by committed dispatches.
func (r *Runtime) Events() []Event { return r.state.Events() }

func (r *Runtime) template() templatePalletImpl {
	return templatePalletImpl{state: r.state, prefix: r.config.SS58Prefix}
}

func describeCall(call Call) string {
	if s, ok := call.(fmt.Stringer); ok {
		return s.String()
	}
	if call == nil {
		return "<nil>"
	}
	return call.Pallet() + "::" + call.Name()
}
