package vm

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// CallMetadata describes a precompile call with string-encoded addresses and
// value, as received from configuration, flags or RPC payloads. Handle turns
// it into the typed form the precompiles consume.
type CallMetadata struct {
	From     string // Hex-encoded caller address (0x…)
	To       string // Hex-encoded precompile address, empty for the template precompile
	Data     []byte // Calldata
	ValueHex string // Hex-encoded apparent value (0x…), empty for zero
}

// Handle validates the metadata and builds an immutable precompile handle.
func (m *CallMetadata) Handle() (PrecompileHandle, error) {
	if !common.IsHexAddress(m.From) {
		return nil, fmt.Errorf("invalid caller address %q", m.From)
	}
	to := TemplatePrecompileAddress
	if m.To != "" {
		if !common.IsHexAddress(m.To) {
			return nil, fmt.Errorf("invalid precompile address %q", m.To)
		}
		to = common.HexToAddress(m.To)
	}
	value := new(uint256.Int)
	if m.ValueHex != "" {
		v, err := uint256.FromHex(m.ValueHex)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", m.ValueHex, err)
		}
		value = v
	}
	ctx := Context{
		Address:       to,
		Caller:        common.HexToAddress(m.From),
		ApparentValue: value,
	}
	return NewHandle(ctx, m.Data), nil
}
