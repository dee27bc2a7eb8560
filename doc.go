// Package ulid implements Universally Unique Lexicographically Sortable
// Identifiers: 128-bit values composed of a 48-bit millisecond timestamp and
// 80 bits of randomness, rendered as 26 characters of Crockford Base32.
//
// The text form sorts lexicographically in the same order as the binary form
// sorts numerically, so ULIDs work as time-ordered primary keys, request
// identifiers, and log correlation tokens.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/ulid"
//
//	// Generate a new identifier
//	id := ulid.New()
//	s := id.String()
//	// Output: "01JX3MFH2ZK9P4T8QVWC5N7R6B"
//
//	// Parse the text form back
//	id, err := ulid.Parse(s)
//
//	// Cheap validation of untrusted input, never fails
//	ok := ulid.Valid(s)
//
// # Deterministic generation
//
// Generator accepts an injectable clock and entropy source so tests can
// produce repeatable identifiers:
//
//	gen := ulid.NewGenerator(
//		ulid.WithClock(func() time.Time { return fixed }),
//		ulid.WithEntropy(bytes.NewReader(seed)),
//	)
//	id := gen.New()
//
// # Database and transport
//
// ULID implements encoding.TextMarshaler/TextUnmarshaler (JSON rides on
// these), encoding.BinaryMarshaler/BinaryUnmarshaler, sql.Scanner and
// driver.Valuer. The pgxulid subpackage maps ULIDs onto Postgres uuid
// columns through a pgx pgtype codec, and the requestid subpackage provides
// HTTP middleware that stamps each request with a ULID.
//
// All operations are pure and safe for concurrent use without coordination.
package ulid
