package ulid

import "github.com/google/uuid"

// FromUUID reinterprets a UUID's 16 bytes as a ULID. The mapping is the
// identity on bytes, so it round-trips with ULID.UUID.
func FromUUID(id uuid.UUID) ULID {
	return ULID(id)
}

// UUID reinterprets the ULID's 16 bytes as a UUID. Useful for storing ULIDs
// in uuid-typed database columns.
func (u ULID) UUID() uuid.UUID {
	return uuid.UUID(u)
}
