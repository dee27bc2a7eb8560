package ulid

import (
	"bytes"
	"time"
)

const (
	// EncodedSize is the length of the text form in characters.
	EncodedSize = 26

	// BinarySize is the length of the binary form in bytes.
	BinarySize = 16

	// MaxTimestamp is the largest millisecond timestamp representable in the
	// 48-bit timestamp field (spring of 10889 AD).
	MaxTimestamp = uint64(1)<<48 - 1
)

// ULID is a 128-bit identifier: bytes 0-5 hold a big-endian millisecond Unix
// timestamp, bytes 6-15 hold 80 bits of randomness. The zero value is Nil.
type ULID [BinarySize]byte

var (
	// Nil is the all-zero ULID ("00000000000000000000000000").
	Nil ULID

	// Max is the all-ones ULID ("7ZZZZZZZZZZZZZZZZZZZZZZZZZ").
	Max = ULID{
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	}
)

// FromBytes constructs a ULID from its 16-byte binary form.
// Returns ErrInvalidLength if b is not exactly 16 bytes.
func FromBytes(b []byte) (ULID, error) {
	var u ULID
	if len(b) != BinarySize {
		return u, ErrInvalidLength
	}
	copy(u[:], b)
	return u, nil
}

// Bytes returns a copy of the 16-byte binary form.
func (u ULID) Bytes() []byte {
	b := make([]byte, BinarySize)
	copy(b, u[:])
	return b
}

// Timestamp returns the embedded millisecond Unix timestamp.
func (u ULID) Timestamp() uint64 {
	return uint64(u[0])<<40 | uint64(u[1])<<32 | uint64(u[2])<<24 |
		uint64(u[3])<<16 | uint64(u[4])<<8 | uint64(u[5])
}

// Time returns the embedded timestamp as a time.Time with millisecond
// precision.
func (u ULID) Time() time.Time {
	ms := int64(u.Timestamp())
	return time.UnixMilli(ms)
}

// Entropy returns a copy of the 10 random bytes.
func (u ULID) Entropy() []byte {
	e := make([]byte, 10)
	copy(e, u[6:])
	return e
}

// IsNil reports whether u is the all-zero ULID.
func (u ULID) IsNil() bool {
	return u == Nil
}

// Compare returns -1, 0 or 1 depending on whether u sorts before, equal to
// or after other. The order matches lexicographic order of the text form.
func (u ULID) Compare(other ULID) int {
	return bytes.Compare(u[:], other[:])
}
