package ledger

import (
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/blake2b"
)

var evmAccountPrefix = []byte("evm:")

// HashedAddressMapping derives a native account from a 160-bit EVM address by
// hashing the address under a fixed domain prefix. The mapping is total and
// one-way: there is no way back from the account to the address.
type HashedAddressMapping struct{}

// IntoAccountID returns blake2b-256("evm:" || addr).
func (HashedAddressMapping) IntoAccountID(addr common.Address) AccountID {
	var data [4 + common.AddressLength]byte
	copy(data[:4], evmAccountPrefix)
	copy(data[4:], addr[:])
	return AccountID(blake2b.Sum256(data[:]))
}
