package vm

import (
	"encoding/binary"
	"sort"

	"github.com/ethereum/go-ethereum/common"
)

// TemplatePrecompileIndex is the precompile index of the template precompile.
const TemplatePrecompileIndex uint64 = 2049

// TemplateContractAccount is the ledger account (SS58, generic prefix) that
// the template precompile's address maps to.
const TemplateContractAccount = "5CwnBK9Ack1mhznmCnwiibCNQc174pYQVktYW3ayRpLm4K2X"

// TemplatePrecompileAddress is the reserved address of the template
// precompile, 0x0000000000000000000000000000000000000801.
var TemplatePrecompileAddress = HashToAddress(TemplatePrecompileIndex)

// HashToAddress returns the precompile address for index: the index as a
// big-endian integer in the low-order bytes of an otherwise zero address.
func HashToAddress(index uint64) common.Address {
	var addr common.Address
	binary.BigEndian.PutUint64(addr[common.AddressLength-8:], index)
	return addr
}

// Precompile is a natively implemented contract.
type Precompile interface {
	Execute(h PrecompileHandle) (*PrecompileOutput, error)
}

// PrecompileSet routes invocations to the precompile at the called address.
// It is populated once by NewPrecompileSet and only read afterwards.
type PrecompileSet struct {
	contracts map[common.Address]Precompile
	addresses []common.Address
}

// NewPrecompileSet builds the native-call precompiles on top of the given
// ledger collaborators.
func NewPrecompileSet(mapping AddressMapping, dispatcher CallDispatcher, config Config) *PrecompileSet {
	bridge := NewBridge(mapping, dispatcher)
	contracts := map[common.Address]Precompile{
		TemplatePrecompileAddress: NewTemplatePrecompile(bridge, config),
	}
	addresses := make([]common.Address, 0, len(contracts))
	for addr := range contracts {
		addresses = append(addresses, addr)
	}
	sort.Slice(addresses, func(i, j int) bool {
		return addresses[i].Cmp(addresses[j]) < 0
	})
	return &PrecompileSet{contracts: contracts, addresses: addresses}
}

// IsPrecompile reports whether addr hosts a precompile of this set.
func (s *PrecompileSet) IsPrecompile(addr common.Address) bool {
	_, ok := s.contracts[addr]
	return ok
}

// Addresses returns the precompile addresses in ascending order.
func (s *PrecompileSet) Addresses() []common.Address {
	return append([]common.Address(nil), s.addresses...)
}

// Run executes the precompile addressed by h. If the address does not belong
// to the set, handled is false and the engine should continue with normal
// execution.
func (s *PrecompileSet) Run(h PrecompileHandle) (out *PrecompileOutput, handled bool, err error) {
	p, ok := s.contracts[h.Context().Address]
	if !ok {
		return nil, false, nil
	}
	out, err = p.Execute(h)
	return out, true, err
}
