package codec

import (
	"errors"
	"fmt"
	"strings"
)

// Codepoint is a Unicode scalar value. Only 0..=MaxCodepoint is representable;
// encoders reject anything larger.
type Codepoint uint32

// MaxCodepoint is the largest valid Unicode codepoint.
const MaxCodepoint Codepoint = 0x10FFFF

// MaxEncodedLength is the longest sequence any supported encoding produces.
const MaxEncodedLength = 4

// Surrogate range boundaries.
const (
	surrogateMin  = 0xD800
	surrogateHigh = 0xDBFF // last high (leading) surrogate
	surrogateLow  = 0xDC00 // first low (trailing) surrogate
	surrogateMax  = 0xDFFF
	surrogateBase = 0x10000
)

// ErrUnknownEncoding is returned by ParseEncoding for unrecognized names.
var ErrUnknownEncoding = errors.New("unknown encoding")

// Encoding selects the byte representation used for codepoints.
type Encoding uint8

const (
	UTF8  Encoding = iota // variable width, 1-4 bytes
	UTF16                 // big-endian code units, 2 or 4 bytes
	ASCII                 // 7-bit, 1 byte
)

// String returns the canonical name of the encoding.
func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "utf-8"
	case UTF16:
		return "utf-16"
	case ASCII:
		return "ascii"
	default:
		return fmt.Sprintf("encoding(%d)", uint8(e))
	}
}

// Valid reports whether e is one of the supported encodings.
func (e Encoding) Valid() bool {
	return e <= ASCII
}

// ParseEncoding parses an encoding name. Matching is case-insensitive and
// accepts the common spellings ("utf8", "UTF-8", "utf-16be", ...).
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "utf-8", "utf8":
		return UTF8, nil
	case "utf-16", "utf16", "utf-16be", "utf16be":
		return UTF16, nil
	case "ascii", "us-ascii":
		return ASCII, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
}

// CodepointLength returns the number of bytes needed to encode c, or 0 if c
// cannot be encoded.
func (e Encoding) CodepointLength(c Codepoint) int { return CodepointLength(e, c) }

// EncodedLength predicts the sequence length from its first byte.
func (e Encoding) EncodedLength(b byte) int { return EncodedLength(e, b) }

// Encode writes c into dst and returns the number of bytes written.
func (e Encoding) Encode(dst []byte, c Codepoint) int { return Encode(e, dst, c) }

// DecodeRune decodes the first codepoint in src.
func (e Encoding) DecodeRune(src []byte) (Codepoint, int) { return DecodeRune(e, src) }
