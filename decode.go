package ulid

// invalid marks bytes outside the Crockford Base32 alphabet in decodeTable.
const invalid = 0xFF

// decodeTable maps an ASCII byte to its 5-bit symbol value, or invalid.
// Direct-mapped so each character lookup is a single index with no branching.
var decodeTable [256]byte

func init() {
	for i := range decodeTable {
		decodeTable[i] = invalid
	}
	for i := 0; i < len(crockfordBase32); i++ {
		decodeTable[crockfordBase32[i]] = byte(i)
	}
}

// Parse decodes a 26-character Crockford Base32 string into a ULID.
// Returns ErrInvalidLength if s is not exactly 26 characters and
// ErrInvalidCharacter if any character is outside the alphabet or the first
// character exceeds '7'. The operation fails atomically: no partial value is
// produced.
func Parse(s string) (ULID, error) {
	var u ULID
	if len(s) != EncodedSize {
		return u, ErrInvalidLength
	}

	var v [EncodedSize]byte
	for i := 0; i < EncodedSize; i++ {
		c := decodeTable[s[i]]
		if c == invalid {
			return u, ErrInvalidCharacter
		}
		v[i] = c
	}
	// The first symbol carries only the top 3 bits of the 128-bit value, so
	// values above 7 would overflow.
	if v[0] > 7 {
		return u, ErrInvalidCharacter
	}

	// Pack timestamp (10 chars = 48 bits + 2 leading zero bits)
	ms := uint64(v[0])<<45 | uint64(v[1])<<40 | uint64(v[2])<<35 |
		uint64(v[3])<<30 | uint64(v[4])<<25 | uint64(v[5])<<20 |
		uint64(v[6])<<15 | uint64(v[7])<<10 | uint64(v[8])<<5 | uint64(v[9])
	u[0] = byte(ms >> 40)
	u[1] = byte(ms >> 32)
	u[2] = byte(ms >> 24)
	u[3] = byte(ms >> 16)
	u[4] = byte(ms >> 8)
	u[5] = byte(ms)

	// Pack entropy (16 chars = 80 bits)
	u[6] = v[10]<<3 | v[11]>>2
	u[7] = (v[11]&0x03)<<6 | v[12]<<1 | v[13]>>4
	u[8] = (v[13]&0x0F)<<4 | v[14]>>1
	u[9] = (v[14]&0x01)<<7 | v[15]<<2 | v[16]>>3
	u[10] = (v[16]&0x07)<<5 | v[17]
	u[11] = v[18]<<3 | v[19]>>2
	u[12] = (v[19]&0x03)<<6 | v[20]<<1 | v[21]>>4
	u[13] = (v[21]&0x0F)<<4 | v[22]>>1
	u[14] = (v[22]&0x01)<<7 | v[23]<<2 | v[24]>>3
	u[15] = (v[24]&0x07)<<5 | v[25]

	return u, nil
}

// MustParse decodes s or panics. Intended for package-level sentinels and
// tests with known-good input.
func MustParse(s string) ULID {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// Valid reports whether s is a well-formed 26-character ULID. It accepts
// exactly the strings Parse accepts, allocates nothing, and never panics on
// any input.
func Valid(s string) bool {
	if len(s) != EncodedSize {
		return false
	}
	if decodeTable[s[0]] > 7 {
		return false
	}
	for i := 1; i < EncodedSize; i++ {
		if decodeTable[s[i]] == invalid {
			return false
		}
	}
	return true
}
