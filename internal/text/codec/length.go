package codec

// CodepointLength returns how many bytes encoding c in enc requires.
//
// UTF-8 uses 1 byte up to 0x7F, 2 up to 0x7FF, 3 up to 0xFFFF and 4 up to
// 0x10FFFF. UTF-16 uses one code unit (2 bytes) below 0x10000 and a
// surrogate pair (4 bytes) up to 0x10FFFF. ASCII only covers 0x00-0x7F.
// Anything else returns 0.
func CodepointLength(enc Encoding, c Codepoint) int {
	switch enc {
	case UTF8:
		switch {
		case c <= 0x7F:
			return 1
		case c <= 0x7FF:
			return 2
		case c <= 0xFFFF:
			return 3
		case c <= MaxCodepoint:
			return 4
		}
	case UTF16:
		switch {
		case c < surrogateBase:
			return 2
		case c <= MaxCodepoint:
			return 4
		}
	case ASCII:
		if c <= 0x7F {
			return 1
		}
	}
	return 0
}

// EncodedLength returns the total length of the encoded sequence that starts
// with b, or 0 if b cannot start a sequence.
//
// For UTF-8 this is read from the lead byte's high bits; continuation bytes
// (10xxxxxx) and the unused 11111xxx patterns return 0. For UTF-16, b is the
// high byte of the first code unit: a high surrogate announces a pair, a low
// surrogate cannot start a sequence, everything else is a single unit.
func EncodedLength(enc Encoding, b byte) int {
	switch enc {
	case UTF8:
		switch {
		case b&0x80 == 0x00:
			return 1
		case b&0xE0 == 0xC0:
			return 2
		case b&0xF0 == 0xE0:
			return 3
		case b&0xF8 == 0xF0:
			return 4
		}
	case UTF16:
		switch {
		case b >= surrogateMin>>8 && b <= surrogateHigh>>8:
			return 4
		case b >= surrogateLow>>8 && b <= surrogateMax>>8:
			return 0
		default:
			return 2
		}
	case ASCII:
		if b < 0x80 {
			return 1
		}
	}
	return 0
}

// isContinuation reports whether b is a UTF-8 continuation byte.
func isContinuation(b byte) bool {
	return b&0xC0 == 0x80
}

// WellFormed reports whether src begins with a structurally complete
// sequence and returns its length. It checks the lead, the available length
// and the shape of the trailing units, but does not compute the codepoint.
func WellFormed(enc Encoding, src []byte) (int, bool) {
	if len(src) == 0 {
		return 0, false
	}
	n := EncodedLength(enc, src[0])
	if n == 0 || n > len(src) {
		return 0, false
	}
	switch enc {
	case UTF8:
		for i := 1; i < n; i++ {
			if !isContinuation(src[i]) {
				return 0, false
			}
		}
		// 4-byte leads above F4, and F4 followed by 90..BF, land past MaxCodepoint.
		if n == 4 && (src[0] > 0xF4 || (src[0] == 0xF4 && src[1] > 0x8F)) {
			return 0, false
		}
	case UTF16:
		if n == 4 && !isLowSurrogateByte(src[2]) {
			return 0, false
		}
	}
	return n, true
}

func isLowSurrogateByte(b byte) bool {
	return b >= surrogateLow>>8 && b <= surrogateMax>>8
}
