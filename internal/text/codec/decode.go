package codec

// DecodeRune decodes the first codepoint of src and reports how many bytes
// it occupies. A size of 0 means nothing could be decoded: src is empty, the
// first byte is not a lead, the sequence is cut short, or a trailing unit is
// malformed.
func DecodeRune(enc Encoding, src []byte) (Codepoint, int) {
	n, ok := WellFormed(enc, src)
	if !ok {
		return 0, 0
	}

	switch enc {
	case ASCII:
		return Codepoint(src[0]), 1
	case UTF8:
		var c Codepoint
		switch n {
		case 1:
			c = Codepoint(src[0])
		case 2:
			c = Codepoint(src[0]&0x1F)<<6 | Codepoint(src[1]&0x3F)
		case 3:
			c = Codepoint(src[0]&0x0F)<<12 | Codepoint(src[1]&0x3F)<<6 | Codepoint(src[2]&0x3F)
		case 4:
			c = Codepoint(src[0]&0x07)<<18 | Codepoint(src[1]&0x3F)<<12 |
				Codepoint(src[2]&0x3F)<<6 | Codepoint(src[3]&0x3F)
		}
		return c, n
	case UTF16:
		hi := unit(src)
		if n == 2 {
			return Codepoint(hi), 2
		}
		lo := unit(src[2:])
		return (Codepoint(hi)-surrogateMin)<<10 + (Codepoint(lo) - surrogateLow) + surrogateBase, 4
	}
	return 0, 0
}

// Decode decodes up to len(dst) codepoints from src into dst and returns how
// many were decoded. It stops early at a malformed or truncated sequence and
// at an embedded NUL codepoint, and never reads past len(src).
func Decode(enc Encoding, src []byte, dst []Codepoint) int {
	n := 0
	for n < len(dst) && len(src) > 0 {
		c, size := DecodeRune(enc, src)
		if size == 0 || c == 0 {
			break
		}
		dst[n] = c
		n++
		src = src[size:]
	}
	return n
}

func unit(src []byte) uint16 {
	return uint16(src[0])<<8 | uint16(src[1])
}
