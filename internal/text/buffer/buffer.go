package buffer

import (
	"bytes"
	"fmt"

	"github.com/dshills/twine/internal/text/codec"
	"github.com/dshills/twine/internal/text/view"
)

// Buffer owns a run of encoded text.
//
// The zero Buffer is an empty, unbounded UTF-8 buffer with no storage.
type Buffer struct {
	enc codec.Encoding

	// data[:length] is the text; len(data) is the capacity.
	data   []byte
	length int

	maxCap   int
	growth   Growth
	fixed    bool
	released bool
}

// New creates an empty buffer without allocating storage.
func New(enc codec.Encoding, opts ...Option) *Buffer {
	b := &Buffer{enc: enc}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewWithCapacity creates an empty buffer with capacity bytes preallocated.
// The allocation is clamped to the maximum capacity when one is set.
func NewWithCapacity(enc codec.Encoding, capacity int, opts ...Option) *Buffer {
	b := New(enc, opts...)
	if b.maxCap > 0 && capacity > b.maxCap {
		capacity = b.maxCap
	}
	if capacity > 0 {
		b.data = make([]byte, capacity)
	}
	return b
}

// NewWithMaxCapacity creates an empty buffer that will never grow beyond
// limit bytes. No storage is allocated up front.
func NewWithMaxCapacity(enc codec.Encoding, limit int, opts ...Option) *Buffer {
	b := New(enc, opts...)
	WithMaxCapacity(limit)(b)
	return b
}

// NewFixed creates an empty buffer over caller-provided memory. The buffer
// writes into mem, never reallocates, and cannot be released.
func NewFixed(enc codec.Encoding, mem []byte) *Buffer {
	return &Buffer{
		enc:    enc,
		data:   mem[:len(mem):len(mem)],
		maxCap: len(mem),
		fixed:  true,
	}
}

func (b *Buffer) check() error {
	if b.released {
		return ErrReleased
	}
	return nil
}

// Extend makes room for at least required bytes in total. It is a no-op when
// the capacity already suffices and fails with ErrCapacityExceeded, leaving
// the buffer untouched, when required is above the maximum capacity.
func (b *Buffer) Extend(required int) error {
	if err := b.check(); err != nil {
		return err
	}
	if required <= len(b.data) {
		return nil
	}
	if b.fixed || (b.maxCap > 0 && required > b.maxCap) {
		return ErrCapacityExceeded
	}

	size := required
	if b.growth == GrowthDouble {
		size = max(required, 2*len(b.data))
		if b.maxCap > 0 {
			size = min(size, b.maxCap)
		}
	}

	data := make([]byte, size)
	copy(data, b.data[:b.length])
	b.data = data
	return nil
}

// Grow makes room for n more bytes.
func (b *Buffer) Grow(n int) error {
	return b.Extend(b.length + n)
}

// Push appends the encoding of c. Surrogate codepoints are written as
// single units, so in a UTF-16 buffer pushing a high surrogate and then a
// low surrogate yields one pair that decodes as a single supplementary
// codepoint.
func (b *Buffer) Push(c codec.Codepoint) error {
	if err := b.check(); err != nil {
		return err
	}
	n := codec.CodepointLength(b.enc, c)
	if n == 0 {
		return ErrInvalidCodepoint
	}
	if err := b.Grow(n); err != nil {
		return err
	}
	codec.Encode(b.enc, b.data[b.length:], c)
	b.length += n
	return nil
}

// Append copies v to the end of the buffer. v must be well-formed in the
// buffer's encoding; nothing is copied otherwise.
func (b *Buffer) Append(v view.View) error {
	if err := b.check(); err != nil {
		return err
	}
	if !v.IsValid(b.enc) {
		return ErrMalformed
	}
	return b.appendBytes(v.Bytes())
}

// AppendString appends s, which must already be in the buffer's encoding.
func (b *Buffer) AppendString(s string) error {
	return b.Append(view.FromString(s))
}

// AppendLine appends v followed by a newline. If the newline does not fit,
// v stays appended.
func (b *Buffer) AppendLine(v view.View) error {
	if err := b.Append(v); err != nil {
		return err
	}
	return b.Push('\n')
}

// AppendFormat appends fmt.Sprintf(format, args...) transcoded into the
// buffer's encoding. Either all of the formatted text is appended or none.
func (b *Buffer) AppendFormat(format string, args ...any) error {
	if err := b.check(); err != nil {
		return err
	}
	scratch := DefaultPool.Get(codec.UTF8)
	defer DefaultPool.Put(scratch)

	if _, err := fmt.Fprintf(scratch, format, args...); err != nil {
		return err
	}
	return b.AppendFrom(codec.UTF8, scratch.View())
}

// AppendFrom appends v, encoded in src, transcoded into the buffer's
// encoding. It fails with ErrMalformed if v is not well-formed in src and
// with ErrInvalidCodepoint if a codepoint has no encoding in the buffer's
// encoding. A surrogate codepoint decoded from src is never written as a
// UTF-16 unit, since a lone unit would leave the buffer malformed. Nothing
// is appended on failure.
func (b *Buffer) AppendFrom(src codec.Encoding, v view.View) error {
	if err := b.check(); err != nil {
		return err
	}
	if src == b.enc {
		return b.Append(v)
	}

	need := 0
	for rest := v; ; {
		step := view.NextStep(src, &rest)
		if step.Status == view.Exhausted {
			break
		}
		if step.Status == view.Invalid {
			return ErrMalformed
		}
		n := codec.CodepointLength(b.enc, step.Codepoint)
		if n == 0 || (b.enc == codec.UTF16 && isSurrogate(step.Codepoint)) {
			return ErrInvalidCodepoint
		}
		need += n
	}
	if err := b.Grow(need); err != nil {
		return err
	}

	for _, c := range v.Codepoints(src) {
		b.length += codec.Encode(b.enc, b.data[b.length:], c)
	}
	return nil
}

// Concat appends each view in order and stops at the first failure. Views
// appended before the failure remain.
func (b *Buffer) Concat(views ...view.View) error {
	for i, v := range views {
		if err := b.Append(v); err != nil {
			return fmt.Errorf("concat view %d: %w", i, err)
		}
	}
	return nil
}

// Insert writes the encoding of c at byte offset idx, shifting the rest of
// the text right. idx must be below Len; use Push to add at the end.
func (b *Buffer) Insert(idx int, c codec.Codepoint) error {
	if err := b.check(); err != nil {
		return err
	}
	if idx < 0 || idx >= b.length {
		return ErrOffsetOutOfRange
	}
	n := codec.CodepointLength(b.enc, c)
	if n == 0 {
		return ErrInvalidCodepoint
	}
	if err := b.openGap(idx, n); err != nil {
		return err
	}
	codec.Encode(b.enc, b.data[idx:idx+n], c)
	return nil
}

// InsertView copies v to byte offset idx, shifting the rest of the text
// right. idx must be below Len and v must be well-formed.
func (b *Buffer) InsertView(idx int, v view.View) error {
	if err := b.check(); err != nil {
		return err
	}
	if idx < 0 || idx >= b.length {
		return ErrOffsetOutOfRange
	}
	if !v.IsValid(b.enc) {
		return ErrMalformed
	}
	n := v.Len()
	if err := b.openGap(idx, n); err != nil {
		return err
	}
	copy(b.data[idx:idx+n], v.Bytes())
	return nil
}

// openGap moves data[idx:length] right by n bytes and grows length.
func (b *Buffer) openGap(idx, n int) error {
	if err := b.Grow(n); err != nil {
		return err
	}
	// copy is a memmove; the overlapping ranges are safe.
	copy(b.data[idx+n:b.length+n], b.data[idx:b.length])
	b.length += n
	return nil
}

// Write appends p with Append semantics. It implements io.Writer.
func (b *Buffer) Write(p []byte) (int, error) {
	if err := b.Append(view.Of(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (b *Buffer) appendBytes(p []byte) error {
	if err := b.Grow(len(p)); err != nil {
		return err
	}
	b.length += copy(b.data[b.length:], p)
	return nil
}

// Clear empties the buffer and keeps its storage.
func (b *Buffer) Clear() {
	b.length = 0
}

// View returns a view over the buffer's text. The view borrows the buffer's
// storage and must not be used after the next mutation.
func (b *Buffer) View() view.View {
	if b.data == nil {
		return view.Null()
	}
	return view.Of(b.data[:b.length])
}

// Snapshot returns an owned copy of the buffer's text.
func (b *Buffer) Snapshot() view.View {
	if b.data == nil {
		return view.Null()
	}
	return view.Of(bytes.Clone(b.data[:b.length]))
}

// Bytes returns the buffer's text without copying.
func (b *Buffer) Bytes() []byte {
	return b.data[:b.length]
}

// String returns a copy of the buffer's text.
func (b *Buffer) String() string {
	return string(b.data[:b.length])
}

// Len returns the text length in bytes.
func (b *Buffer) Len() int {
	return b.length
}

// Cap returns the allocated capacity in bytes.
func (b *Buffer) Cap() int {
	return len(b.data)
}

// MaxCap returns the maximum capacity, or 0 when unbounded.
func (b *Buffer) MaxCap() int {
	return b.maxCap
}

// HasMaxCapacity reports whether the buffer's growth is bounded.
func (b *Buffer) HasMaxCapacity() bool {
	return b.fixed || b.maxCap > 0
}

// Encoding returns the buffer's encoding.
func (b *Buffer) Encoding() codec.Encoding {
	return b.enc
}

// IsFixed reports whether the buffer wraps caller-provided memory.
func (b *Buffer) IsFixed() bool {
	return b.fixed
}

// IsReleased reports whether Release has been called.
func (b *Buffer) IsReleased() bool {
	return b.released
}

// Release frees the buffer's storage. The buffer cannot be used afterwards.
func (b *Buffer) Release() error {
	if err := b.check(); err != nil {
		return err
	}
	if b.fixed {
		return ErrFixedBacking
	}
	b.data = nil
	b.length = 0
	b.released = true
	return nil
}

// reset prepares a pooled buffer for reuse in enc.
func (b *Buffer) reset(enc codec.Encoding) {
	b.enc = enc
	b.length = 0
	b.maxCap = 0
	b.growth = GrowthDouble
}

func isSurrogate(c codec.Codepoint) bool {
	return c >= 0xD800 && c <= 0xDFFF
}
