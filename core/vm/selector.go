package vm

import (
	"encoding/hex"

	"github.com/ethereum/go-ethereum/crypto"
)

// SelectorLength is the width of a function selector.
const SelectorLength = 4

// Selector identifies a function by the first four bytes of the Keccak-256
// hash of its canonical signature.
type Selector [SelectorLength]byte

// MethodID computes the selector of a canonical function signature such as
// "doSomething(uint32)": name, parenthesised parameter types, no spaces.
func MethodID(signature string) Selector {
	var sel Selector
	copy(sel[:], crypto.Keccak256([]byte(signature))[:SelectorLength])
	return sel
}

// Bytes returns the selector as a freshly allocated slice.
func (s Selector) Bytes() []byte { return s[:] }

// Hex returns the 0x-prefixed hex encoding of the selector.
func (s Selector) Hex() string { return "0x" + hex.EncodeToString(s[:]) }

func (s Selector) String() string { return s.Hex() }

// splitInput separates the selector from the argument tail. It fails with
// ErrInvalidRange if input cannot hold a selector.
func splitInput(input []byte) (Selector, []byte, error) {
	var sel Selector
	raw, err := GetSlice(input, 0, SelectorLength)
	if err != nil {
		return sel, nil, err
	}
	copy(sel[:], raw)
	tail, err := GetSlice(input, SelectorLength, len(input))
	if err != nil {
		return sel, nil, err
	}
	return sel, tail, nil
}
