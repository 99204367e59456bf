package ledger

import (
	"encoding/binary"
	"math"
	"strconv"
)

const templatePallet = "Template"

// Reference weights, in the ledger's weight units.
const (
	doSomethingWeight uint64 = 10_000 + dbWriteWeight
	causeErrorWeight  uint64 = 10_000 + dbReadWeight + dbWriteWeight

	dbReadWeight  uint64 = 25_000
	dbWriteWeight uint64 = 100_000
)

var somethingKey = StorageKey{Pallet: templatePallet, Item: "Something"}

type templatePalletImpl struct {
	state  *State
	prefix uint16
}

func (p templatePalletImpl) doSomething(origin Origin, something uint32) (PostInfo, error) {
	who, err := ensureSigned(origin)
	if err != nil {
		return PostInfo{}, err
	}
	p.state.put(somethingKey, encodeU32(something))
	p.state.depositEvent(Event{
		Pallet: templatePallet,
		Name:   "SomethingStored",
		Fields: map[string]string{
			"something": strconv.FormatUint(uint64(something), 10),
			"who":       who.Encode(p.prefix),
		},
	})
	return PostInfo{ActualWeight: doSomethingWeight, PaysFee: true}, nil
}

func (p templatePalletImpl) causeError(origin Origin) (PostInfo, error) {
	if _, err := ensureSigned(origin); err != nil {
		return PostInfo{}, err
	}
	raw, ok := p.state.get(somethingKey)
	if !ok {
		return PostInfo{}, ErrNoneValue
	}
	old := decodeU32(raw)
	if old == math.MaxUint32 {
		return PostInfo{}, ErrStorageOverflow
	}
	p.state.put(somethingKey, encodeU32(old+1))
	return PostInfo{ActualWeight: causeErrorWeight, PaysFee: true}, nil
}

func ensureSigned(origin Origin) (AccountID, error) {
	if origin.Kind != OriginSigned {
		return AccountID{}, ErrBadOrigin
	}
	return origin.Signer, nil
}

// Values are stored little-endian, matching the ledger's native codec.
func encodeU32(v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return b[:]
}

func decodeU32(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}
