package view

import (
	"slices"

	"github.com/dshills/twine/internal/text/codec"
)

// Predicate classifies a codepoint.
type Predicate func(codec.Codepoint) bool

// Length returns the number of codepoints in v. Counting stops at the first
// malformed sequence.
func (v View) Length(enc codec.Encoding) int {
	n := 0
	for {
		if _, size := Next(enc, &v); size == 0 {
			return n
		}
		n++
	}
}

// IsValid reports whether every position in v starts a well-formed sequence
// that fits in the remaining bytes. Codepoints are not computed.
func (v View) IsValid(enc codec.Encoding) bool {
	b := v.b
	for len(b) > 0 {
		n, ok := codec.WellFormed(enc, b)
		if !ok {
			return false
		}
		b = b[n:]
	}
	return true
}

// Index returns the codepoint index of the first c in v, or -1.
func (v View) Index(enc codec.Encoding, c codec.Codepoint) int {
	i := 0
	for {
		got, n := Next(enc, &v)
		if n == 0 {
			return -1
		}
		if got == c {
			return i
		}
		i++
	}
}

// Offset returns the byte offset of the first c in v, or -1.
func (v View) Offset(enc codec.Encoding, c codec.Codepoint) int {
	head, _, found := v.Split(enc, c)
	if !found {
		return -1
	}
	return head.Len()
}

// First returns the first codepoint of v and its size. The size is 0 when v
// is empty or starts with malformed bytes.
func (v View) First(enc codec.Encoding) (codec.Codepoint, int) {
	return Next(enc, &v)
}

// Last returns the last codepoint of v and its size.
func (v View) Last(enc codec.Encoding) (codec.Codepoint, int) {
	return NextReverse(enc, &v)
}

// Head returns the bytes of the first codepoint, sized from the lead byte
// alone. It returns the null view if v is empty or the lead is invalid.
func (v View) Head(enc codec.Encoding) View {
	n := v.leadLength(enc)
	if n == 0 {
		return Null()
	}
	return v.Trunc(n)
}

// Tail returns everything after the first codepoint, or the null view if
// there is no valid first codepoint.
func (v View) Tail(enc codec.Encoding) View {
	n := v.leadLength(enc)
	if n == 0 {
		return Null()
	}
	return v.Drop(n)
}

func (v View) leadLength(enc codec.Encoding) int {
	if len(v.b) == 0 {
		return 0
	}
	n := codec.EncodedLength(enc, v.b[0])
	if n > len(v.b) {
		return 0
	}
	return n
}

// Split returns the part of v before the first sep and the remainder after
// it. The separator belongs to neither. If sep does not occur, head is all
// of v, rem is the exhausted end of v and found is false.
//
// A malformed sequence ends the scan early: head stops before it and rem
// starts at it, with found false.
func (v View) Split(enc codec.Encoding, sep codec.Codepoint) (head, rem View, found bool) {
	return v.splitFunc(enc, func(c codec.Codepoint) bool { return c == sep })
}

// SplitBy splits v at the first codepoint for which pred is true.
func (v View) SplitBy(enc codec.Encoding, pred Predicate) (head, rem View, found bool) {
	return v.splitFunc(enc, pred)
}

// SplitWhile returns the longest prefix of v whose codepoints all satisfy
// pred. The first codepoint that fails pred is consumed, like a separator.
func (v View) SplitWhile(enc codec.Encoding, pred Predicate) (head, rem View, found bool) {
	return v.splitFunc(enc, func(c codec.Codepoint) bool { return !pred(c) })
}

// SplitAny splits v at the first codepoint that appears in set.
func (v View) SplitAny(enc codec.Encoding, set ...codec.Codepoint) (head, rem View, found bool) {
	return v.splitFunc(enc, func(c codec.Codepoint) bool { return slices.Contains(set, c) })
}

func (v View) splitFunc(enc codec.Encoding, stop Predicate) (head, rem View, found bool) {
	head = View{b: v.b[:0]}
	rem = v
	for {
		c, n := Next(enc, &rem)
		if n == 0 {
			return head, rem, false
		}
		if stop(c) {
			return head, rem, true
		}
		head.b = v.b[:len(head.b)+n]
	}
}

// TrimLeft returns v without leading whitespace.
func (v View) TrimLeft(enc codec.Encoding) View {
	it := v
	drop := 0
	for {
		c, n := Next(enc, &it)
		if n == 0 || !IsSpace(c) {
			break
		}
		drop += n
	}
	return v.Drop(drop)
}

// TrimRight returns v without trailing whitespace.
func (v View) TrimRight(enc codec.Encoding) View {
	it := v
	drop := 0
	for {
		c, n := NextReverse(enc, &it)
		if n == 0 || !IsSpace(c) {
			break
		}
		drop += n
	}
	return v.Trunc(v.Len() - drop)
}

// Trim returns v without leading and trailing whitespace.
func (v View) Trim(enc codec.Encoding) View {
	return v.TrimLeft(enc).TrimRight(enc)
}

// IsAllSpace reports whether v is empty or consists only of whitespace.
func (v View) IsAllSpace(enc codec.Encoding) bool {
	return v.TrimLeft(enc).IsEmpty()
}
