// Package codec maps single Unicode codepoints to and from their encoded
// byte representation.
//
// Three encodings are supported:
//
//   - ASCII: one byte per codepoint, codepoints up to 0x7F
//   - UTF8: the standard 1 to 4 byte variable-length encoding
//   - UTF16: 16-bit code units written high byte first, with surrogate
//     pairs for codepoints at or above 0x10000
//
// The functions in this package are pure: they never allocate (except the
// Append helpers) and carry no iteration state. Every higher-level
// operation in twine (length counting, validation, search, buffer growth)
// is expressed as repeated calls into this package.
//
// Failure is reported as a zero length. A zero from EncodedLength or
// DecodeRune means "no codepoint starts here", which callers treat the same
// way as running out of input.
//
// Basic usage:
//
//	var dst [4]byte
//	n := codec.Encode(codec.UTF8, dst[:], 0x10082) // n == 4, F0 90 82 82
//	c, size := codec.DecodeRune(codec.UTF8, dst[:n]) // c == 0x10082, size == 4
package codec
