package ulid

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"time"
)

// Generator produces ULIDs from an injectable clock and entropy source.
// The zero-configuration generator reads the wall clock and crypto/rand;
// tests supply fixed sources for deterministic output. A Generator is safe
// for concurrent use as long as its entropy reader is.
type Generator struct {
	now     func() time.Time
	entropy io.Reader
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithClock sets the time source used for the timestamp field.
func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) {
		g.now = now
	}
}

// WithEntropy sets the reader supplying the 10 random bytes.
func WithEntropy(r io.Reader) GeneratorOption {
	return func(g *Generator) {
		g.entropy = r
	}
}

// NewGenerator returns a Generator using the wall clock and crypto/rand
// unless overridden by options.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		now:     time.Now,
		entropy: rand.Reader,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// New generates a ULID stamped with the generator's current time.
func (g *Generator) New() ULID {
	return g.NewAt(uint64(g.now().UnixMilli()))
}

// NewAt generates a ULID with an explicit millisecond Unix timestamp.
// Timestamps wider than 48 bits are truncated to the low 48 bits; callers
// must not pass timestamps >= 2^48.
func (g *Generator) NewAt(ms uint64) ULID {
	var u ULID

	ms &= MaxTimestamp
	u[0] = byte(ms >> 40)
	u[1] = byte(ms >> 32)
	u[2] = byte(ms >> 24)
	u[3] = byte(ms >> 16)
	u[4] = byte(ms >> 8)
	u[5] = byte(ms)

	if _, err := io.ReadFull(g.entropy, u[6:]); err != nil {
		// Fallback: use time-based entropy (degraded but functional)
		binary.BigEndian.PutUint64(u[6:14], uint64(time.Now().UnixNano()))
	}

	return u
}

var defaultGenerator = NewGenerator()

// New generates a ULID stamped with the current wall-clock time.
func New() ULID {
	return defaultGenerator.New()
}

// NewString generates a ULID and returns its 26-character text form.
func NewString() string {
	return New().String()
}

// NewAt generates a ULID with an explicit millisecond Unix timestamp and
// random entropy from crypto/rand. Timestamps are truncated to 48 bits.
func NewAt(ms uint64) ULID {
	return defaultGenerator.NewAt(ms)
}
