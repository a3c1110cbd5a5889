package view

import (
	"bytes"
	"unsafe"
)

// View is a borrowed, read-only range of encoded bytes.
type View struct {
	b []byte
}

// emptyBacking gives non-null empty views something to point at.
var emptyBacking = []byte{}

// Null returns the null view.
func Null() View {
	return View{}
}

// Of returns a view over b. A nil slice produces the null view.
func Of(b []byte) View {
	return View{b: b}
}

// FromString returns a view over the bytes of s without copying. The bytes
// must not be modified through the view.
func FromString(s string) View {
	if len(s) == 0 {
		return View{b: emptyBacking}
	}
	return View{b: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// Bytes returns the borrowed bytes.
func (v View) Bytes() []byte {
	return v.b
}

// Len returns the length in bytes.
func (v View) Len() int {
	return len(v.b)
}

// String copies the raw bytes into a Go string.
func (v View) String() string {
	return string(v.b)
}

// IsNull reports whether v borrows nothing at all.
func (v View) IsNull() bool {
	return v.b == nil
}

// IsEmpty reports whether v is null or has length 0.
func (v View) IsEmpty() bool {
	return len(v.b) == 0
}

// Equal reports whether a and b hold the same bytes.
func (v View) Equal(other View) bool {
	return len(v.b) == len(other.b) && bytes.Equal(v.b, other.b)
}

// StartsWith reports whether v begins with prefix. Both must share an
// encoding; the comparison is byte-exact.
func (v View) StartsWith(prefix View) bool {
	return v.Trunc(prefix.Len()).Equal(prefix)
}

// EndsWith reports whether v ends with suffix.
func (v View) EndsWith(suffix View) bool {
	if v.Len() < suffix.Len() {
		return false
	}
	return v.Drop(v.Len() - suffix.Len()).Equal(suffix)
}

// Contains returns the byte offset of the first occurrence of needle in v,
// or -1 if there is none.
func (v View) Contains(needle View) int {
	return bytes.Index(v.b, needle.b)
}

// Drop returns v without its first n bytes. Dropping more than Len yields an
// empty view at the end of v.
func (v View) Drop(n int) View {
	n = min(max(n, 0), len(v.b))
	return View{b: v.b[n:]}
}

// Trunc returns the first n bytes of v, or all of v if it is shorter.
func (v View) Trunc(n int) View {
	n = min(max(n, 0), len(v.b))
	return View{b: v.b[:n]}
}
