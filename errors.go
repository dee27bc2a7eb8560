package ulid

import "errors"

// Sentinel errors for codec operations. Both are deterministic input errors,
// never transient; callers decide whether they surface as validation failures
// or hard errors.
var (
	// ErrInvalidLength is returned when a binary value is not exactly 16
	// bytes or a text value is not exactly 26 characters.
	ErrInvalidLength = errors.New("ulid: invalid length")

	// ErrInvalidCharacter is returned when a text value contains a character
	// outside the Crockford Base32 alphabet, or its first character exceeds
	// '7' (the value would overflow 128 bits).
	ErrInvalidCharacter = errors.New("ulid: invalid character")
)
