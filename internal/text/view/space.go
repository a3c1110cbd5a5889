package view

import "github.com/dshills/twine/internal/text/codec"

// IsSpace reports whether c is whitespace: ASCII whitespace plus the members
// of the Unicode Line_Separator, Paragraph_Separator and Space_Separator
// categories. The list is fixed and does not follow Unicode updates.
func IsSpace(c codec.Codepoint) bool {
	switch c {
	case 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x20:
		return true
	case 0x2028: // Line_Separator
		return true
	case 0x2029: // Paragraph_Separator
		return true
	case 0xA0, 0x1680, 0x202F: // Space_Separator
		return true
	}
	return c >= 0x2000 && c <= 0x200A
}
