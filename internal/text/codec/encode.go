package codec

// Encode writes the encoding of c into dst and returns the number of bytes
// written. It returns 0, leaving dst untouched, when c is out of range for
// enc or dst is shorter than CodepointLength(enc, c).
//
// UTF-16 output is big-endian: the high byte of each code unit comes first.
func Encode(enc Encoding, dst []byte, c Codepoint) int {
	n := CodepointLength(enc, c)
	if n == 0 || n > len(dst) {
		return 0
	}

	switch enc {
	case ASCII:
		dst[0] = byte(c)
	case UTF8:
		switch n {
		case 1:
			dst[0] = byte(c)
		case 2:
			dst[0] = 0xC0 | byte(c>>6)&0x1F
			dst[1] = 0x80 | byte(c)&0x3F
		case 3:
			dst[0] = 0xE0 | byte(c>>12)&0x0F
			dst[1] = 0x80 | byte(c>>6)&0x3F
			dst[2] = 0x80 | byte(c)&0x3F
		case 4:
			dst[0] = 0xF0 | byte(c>>18)&0x07
			dst[1] = 0x80 | byte(c>>12)&0x3F
			dst[2] = 0x80 | byte(c>>6)&0x3F
			dst[3] = 0x80 | byte(c)&0x3F
		}
	case UTF16:
		if n == 2 {
			putUnit(dst, uint16(c))
			break
		}
		c -= surrogateBase
		putUnit(dst, uint16(surrogateMin|(c>>10)&0x3FF))
		putUnit(dst[2:], uint16(surrogateLow|c&0x3FF))
	}

	return n
}

// AppendEncoded appends the encoding of c to dst. The boolean is false, and
// dst is returned unchanged, if c cannot be encoded.
func AppendEncoded(enc Encoding, dst []byte, c Codepoint) ([]byte, bool) {
	var scratch [MaxEncodedLength]byte
	n := Encode(enc, scratch[:], c)
	if n == 0 {
		return dst, false
	}
	return append(dst, scratch[:n]...), true
}

func putUnit(dst []byte, u uint16) {
	dst[0] = byte(u >> 8)
	dst[1] = byte(u)
}
