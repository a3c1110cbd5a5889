package view

import (
	"iter"

	"github.com/dshills/twine/internal/text/codec"
)

// Status classifies the outcome of a single iteration step.
type Status uint8

const (
	// Exhausted means the view had no bytes left.
	Exhausted Status = iota
	// Invalid means the bytes at Offset do not form a codepoint.
	Invalid
	// Decoded means Codepoint was read and Size bytes were consumed.
	Decoded
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Exhausted:
		return "exhausted"
	case Invalid:
		return "invalid"
	case Decoded:
		return "decoded"
	default:
		return "unknown"
	}
}

// Step is the result of consuming one codepoint from a view.
type Step struct {
	Status    Status
	Codepoint codec.Codepoint
	Size      int // bytes consumed, 0 unless Decoded
	Offset    int // position of the codepoint (or the bad bytes) in the view before the step
}

// NextStep consumes the first codepoint of v. On Exhausted or Invalid, v is
// left unchanged.
func NextStep(enc codec.Encoding, v *View) Step {
	if len(v.b) == 0 {
		return Step{Status: Exhausted}
	}

	c, n := codec.DecodeRune(enc, v.b)
	if n == 0 {
		return Step{Status: Invalid}
	}

	v.b = v.b[n:]
	return Step{Status: Decoded, Codepoint: c, Size: n}
}

// NextReverseStep consumes the last codepoint of v by scanning backward for
// the nearest lead byte. The sequence found there must end exactly at the end
// of v. Only the length of v shrinks; its start never moves.
func NextReverseStep(enc codec.Encoding, v *View) Step {
	end := len(v.b)
	if end == 0 {
		return Step{Status: Exhausted}
	}

	unit := 1
	if enc == codec.UTF16 {
		unit = 2
		if end%2 != 0 {
			return Step{Status: Invalid, Offset: end - 1}
		}
	}

	for i := end - unit; i >= 0 && end-i <= codec.MaxEncodedLength; i -= unit {
		if codec.EncodedLength(enc, v.b[i]) == 0 {
			continue
		}
		c, n := codec.DecodeRune(enc, v.b[i:])
		if n == 0 || i+n != end {
			return Step{Status: Invalid, Offset: i}
		}
		v.b = v.b[:i]
		return Step{Status: Decoded, Codepoint: c, Size: n, Offset: i}
	}

	return Step{Status: Invalid, Offset: max(end-codec.MaxEncodedLength, 0)}
}

// Next consumes the first codepoint of v and returns it with its size in
// bytes. A size of 0 means v is empty or starts with malformed bytes.
func Next(enc codec.Encoding, v *View) (codec.Codepoint, int) {
	s := NextStep(enc, v)
	return s.Codepoint, s.Size
}

// NextReverse consumes the last codepoint of v. A size of 0 means v is empty
// or ends with malformed bytes.
func NextReverse(enc codec.Encoding, v *View) (codec.Codepoint, int) {
	s := NextReverseStep(enc, v)
	return s.Codepoint, s.Size
}

// Codepoints returns an iterator over the byte offsets and codepoints of v,
// front to back. Iteration stops at the first malformed sequence.
func (v View) Codepoints(enc codec.Encoding) iter.Seq2[int, codec.Codepoint] {
	return func(yield func(int, codec.Codepoint) bool) {
		it := v
		off := 0
		for {
			c, n := Next(enc, &it)
			if n == 0 || !yield(off, c) {
				return
			}
			off += n
		}
	}
}

// Backward returns an iterator over the byte offsets and codepoints of v,
// back to front.
func (v View) Backward(enc codec.Encoding) iter.Seq2[int, codec.Codepoint] {
	return func(yield func(int, codec.Codepoint) bool) {
		it := v
		for {
			c, n := NextReverse(enc, &it)
			if n == 0 || !yield(it.Len(), c) {
				return
			}
		}
	}
}
