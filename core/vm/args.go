package vm

import (
	"encoding/binary"
	"math"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/log"
	"github.com/holiman/uint256"

	"github.com/templatechain/nativecall/ledger"
)

// WordLength is the ABI slot width every static argument occupies.
const WordLength = 32

// GetSlice returns data[from:to]. It is the only place call data is indexed;
// every decoder goes through it so that out-of-range access surfaces as
// ErrInvalidRange instead of a panic.
func GetSlice(data []byte, from, to int) ([]byte, error) {
	if from < 0 || to < from || to > len(data) {
		log.Debug("Failed to get slice from call data", "data", hexutil.Encode(data), "from", from, "to", to)
		return nil, ErrInvalidRange
	}
	return data[from:to], nil
}

// word returns the index-th 32-byte argument slot of tail.
func word(tail []byte, index int) ([]byte, error) {
	return GetSlice(tail, index*WordLength, (index+1)*WordLength)
}

// ParseUint32 decodes a uint32 from the first argument slot of tail. Only the
// low-order four bytes are interpreted. With strict set, a slot whose
// high-order padding is not zero is rejected as well.
func ParseUint32(tail []byte, strict bool) (uint32, error) {
	if len(tail) < WordLength {
		return 0, ErrInvalidRange
	}
	slot, err := word(tail, 0)
	if err != nil {
		return 0, err
	}
	if strict {
		v := new(uint256.Int).SetBytes(slot)
		if !v.IsUint64() || v.Uint64() > math.MaxUint32 {
			log.Debug("Rejected over-wide uint32 argument", "word", hexutil.Encode(slot))
			return 0, ErrInvalidRange
		}
	}
	raw, err := GetSlice(slot, WordLength-4, WordLength)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(raw), nil
}

// ParseAccountID decodes a native account identity from the first argument
// slot of tail, which must carry all 32 bytes of it.
func ParseAccountID(tail []byte) (ledger.AccountID, error) {
	slot, err := word(tail, 0)
	if err != nil {
		return ledger.AccountID{}, err
	}
	id, err := ledger.BytesToAccountID(slot)
	if err != nil {
		log.Info("Error parsing account id bytes", "bytes", hexutil.Encode(slot), "err", err)
		return ledger.AccountID{}, ErrInvalidRange
	}
	return id, nil
}
