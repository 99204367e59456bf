package ledger

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

// AccountIDLength is the width of a native account identity in bytes.
const AccountIDLength = 32

// DefaultSS58Prefix is the generic substrate address format.
const DefaultSS58Prefix uint16 = 42

// MaxSS58Prefix is the largest prefix the two-byte SS58 format can carry.
const MaxSS58Prefix uint16 = 0x3fff

var (
	ErrInvalidAccountLength = errors.New("invalid account id length")
	ErrInvalidSS58          = errors.New("invalid ss58 address")
	ErrSS58Checksum         = errors.New("ss58 checksum mismatch")
	ErrSS58PrefixRange      = errors.New("ss58 prefix out of range")
)

var ss58Preimage = []byte("SS58PRE")

// AccountID is the ledger's own account representation.
type AccountID [AccountIDLength]byte

// BytesToAccountID converts b into an AccountID. Unlike common.BytesToAddress
// no padding or truncation takes place, the input must be exactly 32 bytes.
func BytesToAccountID(b []byte) (AccountID, error) {
	var id AccountID
	if len(b) != AccountIDLength {
		return id, fmt.Errorf("%w: have %d, want %d", ErrInvalidAccountLength, len(b), AccountIDLength)
	}
	copy(id[:], b)
	return id, nil
}

func (a AccountID) Bytes() []byte { return a[:] }

// Hex returns the 0x-prefixed hex encoding of the raw account bytes.
func (a AccountID) Hex() string { return "0x" + hex.EncodeToString(a[:]) }

// String renders the account in SS58 using the generic prefix.
func (a AccountID) String() string { return a.Encode(DefaultSS58Prefix) }

// Encode renders the account in SS58 format under the given network prefix.
// Only the low 14 bits of prefix are encoded; callers validate it against
// MaxSS58Prefix first (see Config.Validate).
func (a AccountID) Encode(prefix uint16) string {
	ident := ss58Ident(prefix)
	payload := make([]byte, 0, len(ident)+AccountIDLength+2)
	payload = append(payload, ident...)
	payload = append(payload, a[:]...)
	sum := ss58Checksum(payload)
	payload = append(payload, sum[:2]...)
	return base58.Encode(payload)
}

// ParseSS58 decodes an SS58 account address, returning the account and the
// network prefix it was encoded with.
func ParseSS58(s string) (AccountID, uint16, error) {
	var id AccountID
	raw, err := base58.Decode(s)
	if err != nil {
		return id, 0, fmt.Errorf("%w: %v", ErrInvalidSS58, err)
	}
	if len(raw) < 1 {
		return id, 0, ErrInvalidSS58
	}
	var (
		prefix    uint16
		identSize int
	)
	switch {
	case raw[0] < 64:
		prefix, identSize = uint16(raw[0]), 1
	case raw[0] < 128:
		if len(raw) < 2 {
			return id, 0, ErrInvalidSS58
		}
		lower := (raw[0] << 2) | (raw[1] >> 6)
		upper := raw[1] & 0x3f
		prefix, identSize = uint16(lower)|uint16(upper)<<8, 2
	default:
		return id, 0, fmt.Errorf("%w: reserved prefix byte %#x", ErrInvalidSS58, raw[0])
	}
	if len(raw) != identSize+AccountIDLength+2 {
		return id, 0, fmt.Errorf("%w: unexpected length %d", ErrInvalidSS58, len(raw))
	}
	body := raw[:identSize+AccountIDLength]
	sum := ss58Checksum(body)
	if !bytes.Equal(sum[:2], raw[len(body):]) {
		return id, 0, ErrSS58Checksum
	}
	copy(id[:], body[identSize:])
	return id, prefix, nil
}

func ss58Ident(prefix uint16) []byte {
	prefix &= 0x3fff
	if prefix < 64 {
		return []byte{byte(prefix)}
	}
	first := byte((prefix&0xfc)>>2) | 0x40
	second := byte(prefix>>8) | byte((prefix&0x03)<<6)
	return []byte{first, second}
}

func ss58Checksum(data []byte) [blake2b.Size]byte {
	buf := make([]byte, 0, len(ss58Preimage)+len(data))
	buf = append(buf, ss58Preimage...)
	buf = append(buf, data...)
	return blake2b.Sum512(buf)
}
