package ulid_test

import (
	"crypto/rand"
	"testing"

	oklog "github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ulid"
)

// Wire compatibility with oklog/ulid, the de facto reference implementation.
func TestOklogCompatibility(t *testing.T) {
	t.Parallel()

	t.Run("identical encoding for identical bytes", func(t *testing.T) {
		t.Parallel()

		for n := 0; n < 200; n++ {
			b := make([]byte, ulid.BinarySize)
			_, err := rand.Read(b)
			require.NoError(t, err)

			mine, err := ulid.FromBytes(b)
			require.NoError(t, err)

			var ref oklog.ULID
			copy(ref[:], b)

			require.Equal(t, ref.String(), mine.String())
		}
	})

	t.Run("oklog output parses here", func(t *testing.T) {
		t.Parallel()

		ref := oklog.MustNew(1469918176385, rand.Reader)

		mine, err := ulid.Parse(ref.String())
		require.NoError(t, err)
		assert.Equal(t, ref.Time(), mine.Timestamp())
		assert.Equal(t, ref[:], mine.Bytes())
	})

	t.Run("our output parses there", func(t *testing.T) {
		t.Parallel()

		mine := ulid.New()

		ref, err := oklog.ParseStrict(mine.String())
		require.NoError(t, err)
		assert.Equal(t, mine.Bytes(), ref[:])
	})
}
