package ulid_test

import (
	"database/sql/driver"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ulid"
)

func TestTextMarshaling(t *testing.T) {
	t.Parallel()

	id := ulid.MustParse("01ARYZ6S41VTPVXVYYNPZEZQND")

	t.Run("round-trips through text", func(t *testing.T) {
		t.Parallel()

		text, err := id.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, "01ARYZ6S41VTPVXVYYNPZEZQND", string(text))

		var back ulid.ULID
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, id, back)
	})

	t.Run("round-trips through JSON", func(t *testing.T) {
		t.Parallel()

		type record struct {
			ID ulid.ULID `json:"id"`
		}

		data, err := json.Marshal(record{ID: id})
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"01ARYZ6S41VTPVXVYYNPZEZQND"}`, string(data))

		var back record
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, id, back.ID)
	})

	t.Run("rejects malformed text", func(t *testing.T) {
		t.Parallel()

		var u ulid.ULID
		assert.ErrorIs(t, u.UnmarshalText([]byte("too short")), ulid.ErrInvalidLength)
		assert.ErrorIs(t, u.UnmarshalText([]byte("IIIIIIIIIIIIIIIIIIIIIIIIII")), ulid.ErrInvalidCharacter)
	})
}

func TestBinaryMarshaling(t *testing.T) {
	t.Parallel()

	id := ulid.MustParse("01ARYZ6S41VTPVXVYYNPZEZQND")

	t.Run("round-trips through binary", func(t *testing.T) {
		t.Parallel()

		data, err := id.MarshalBinary()
		require.NoError(t, err)
		require.Len(t, data, ulid.BinarySize)

		var back ulid.ULID
		require.NoError(t, back.UnmarshalBinary(data))
		assert.Equal(t, id, back)
	})

	t.Run("rejects wrong sizes", func(t *testing.T) {
		t.Parallel()

		var u ulid.ULID
		assert.ErrorIs(t, u.UnmarshalBinary(nil), ulid.ErrInvalidLength)
		assert.ErrorIs(t, u.UnmarshalBinary(make([]byte, 15)), ulid.ErrInvalidLength)
	})
}

func TestSQLInterfaces(t *testing.T) {
	t.Parallel()

	id := ulid.MustParse("01ARYZ6S41VTPVXVYYNPZEZQND")

	t.Run("Value produces the text form", func(t *testing.T) {
		t.Parallel()

		v, err := id.Value()
		require.NoError(t, err)
		assert.Equal(t, driver.Value("01ARYZ6S41VTPVXVYYNPZEZQND"), v)
	})

	t.Run("Scan accepts the text form", func(t *testing.T) {
		t.Parallel()

		var u ulid.ULID
		require.NoError(t, u.Scan("01ARYZ6S41VTPVXVYYNPZEZQND"))
		assert.Equal(t, id, u)
	})

	t.Run("Scan accepts the 16-byte binary form", func(t *testing.T) {
		t.Parallel()

		var u ulid.ULID
		require.NoError(t, u.Scan(id.Bytes()))
		assert.Equal(t, id, u)
	})

	t.Run("Scan accepts the hyphenated uuid form", func(t *testing.T) {
		t.Parallel()

		var u ulid.ULID
		require.NoError(t, u.Scan("01563df3-6481-dead-beef-deadbeefdead"))
		assert.Equal(t, id, u)

		var fromBytes ulid.ULID
		require.NoError(t, fromBytes.Scan([]byte("01563df3-6481-dead-beef-deadbeefdead")))
		assert.Equal(t, id, fromBytes)
	})

	t.Run("Scan rejects unsupported types and garbage", func(t *testing.T) {
		t.Parallel()

		var u ulid.ULID
		assert.Error(t, u.Scan(42))
		assert.Error(t, u.Scan(nil))
		assert.Error(t, u.Scan("not-a-ulid"))
		assert.Error(t, u.Scan("zzzzzzzz-zzzz-zzzz-zzzz-zzzzzzzzzzzz"))
	})
}

func TestUUIDInterop(t *testing.T) {
	t.Parallel()

	id := ulid.MustParse("01ARYZ6S41VTPVXVYYNPZEZQND")

	t.Run("byte-identity both ways", func(t *testing.T) {
		t.Parallel()

		u := id.UUID()
		assert.Equal(t, "01563df3-6481-dead-beef-deadbeefdead", u.String())
		assert.Equal(t, id, ulid.FromUUID(u))
	})

	t.Run("random UUIDs round-trip", func(t *testing.T) {
		t.Parallel()

		for n := 0; n < 100; n++ {
			u := uuid.New()
			assert.Equal(t, u, ulid.FromUUID(u).UUID())
		}
	})
}
