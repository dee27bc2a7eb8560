package ulid

import (
	"database/sql/driver"
	"fmt"

	"github.com/google/uuid"
)

// MarshalText implements encoding.TextMarshaler using the 26-character form.
// JSON marshaling rides on this, producing a quoted string.
func (u ULID) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *ULID) UnmarshalText(text []byte) error {
	id, err := Parse(string(text))
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler using the 16-byte form.
func (u ULID) MarshalBinary() ([]byte, error) {
	return u.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (u *ULID) UnmarshalBinary(data []byte) error {
	id, err := FromBytes(data)
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// Value implements driver.Valuer, producing the 26-character text form.
func (u ULID) Value() (driver.Value, error) {
	return u.String(), nil
}

// Scan implements sql.Scanner. It accepts the 26-character text form, the
// 16-byte binary form, and the 36-character hyphenated UUID form that
// Postgres uuid columns produce through database/sql.
func (u *ULID) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return u.scanText(v)
	case []byte:
		if len(v) == BinarySize {
			return u.UnmarshalBinary(v)
		}
		return u.scanText(string(v))
	default:
		return fmt.Errorf("ulid: cannot scan %T", src)
	}
}

func (u *ULID) scanText(s string) error {
	if len(s) == 36 {
		id, err := uuid.Parse(s)
		if err != nil {
			return fmt.Errorf("ulid: cannot scan uuid: %w", err)
		}
		*u = FromUUID(id)
		return nil
	}
	return u.UnmarshalText([]byte(s))
}
