package ulid

// Crockford's Base32 alphabet (excludes I, L, O, U to avoid confusion).
const crockfordBase32 = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// String encodes the 128-bit value as 26 Crockford Base32 characters.
// The layout is one 3-bit field followed by twenty-five 5-bit fields, most
// significant bit first, so the first character is always '0'-'7'.
func (u ULID) String() string {
	var dst [EncodedSize]byte

	// Encode timestamp (48 bits = 10 base32 chars)
	ms := u.Timestamp()
	dst[0] = crockfordBase32[(ms>>45)&0x1F]
	dst[1] = crockfordBase32[(ms>>40)&0x1F]
	dst[2] = crockfordBase32[(ms>>35)&0x1F]
	dst[3] = crockfordBase32[(ms>>30)&0x1F]
	dst[4] = crockfordBase32[(ms>>25)&0x1F]
	dst[5] = crockfordBase32[(ms>>20)&0x1F]
	dst[6] = crockfordBase32[(ms>>15)&0x1F]
	dst[7] = crockfordBase32[(ms>>10)&0x1F]
	dst[8] = crockfordBase32[(ms>>5)&0x1F]
	dst[9] = crockfordBase32[ms&0x1F]

	// Encode entropy (80 bits = 16 base32 chars)
	dst[10] = crockfordBase32[(u[6]>>3)&0x1F]
	dst[11] = crockfordBase32[((u[6]&0x07)<<2)|((u[7]>>6)&0x03)]
	dst[12] = crockfordBase32[(u[7]>>1)&0x1F]
	dst[13] = crockfordBase32[((u[7]&0x01)<<4)|((u[8]>>4)&0x0F)]
	dst[14] = crockfordBase32[((u[8]&0x0F)<<1)|((u[9]>>7)&0x01)]
	dst[15] = crockfordBase32[(u[9]>>2)&0x1F]
	dst[16] = crockfordBase32[((u[9]&0x03)<<3)|((u[10]>>5)&0x07)]
	dst[17] = crockfordBase32[u[10]&0x1F]
	dst[18] = crockfordBase32[(u[11]>>3)&0x1F]
	dst[19] = crockfordBase32[((u[11]&0x07)<<2)|((u[12]>>6)&0x03)]
	dst[20] = crockfordBase32[(u[12]>>1)&0x1F]
	dst[21] = crockfordBase32[((u[12]&0x01)<<4)|((u[13]>>4)&0x0F)]
	dst[22] = crockfordBase32[((u[13]&0x0F)<<1)|((u[14]>>7)&0x01)]
	dst[23] = crockfordBase32[(u[14]>>2)&0x1F]
	dst[24] = crockfordBase32[((u[14]&0x03)<<3)|((u[15]>>5)&0x07)]
	dst[25] = crockfordBase32[u[15]&0x1F]

	return string(dst[:])
}
