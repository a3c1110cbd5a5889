package buffer

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/twine/internal/text/codec"
	"github.com/dshills/twine/internal/text/view"
)

var _ io.Writer = (*Buffer)(nil)

func TestNewBuffer(t *testing.T) {
	b := New(codec.UTF8)

	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, b.Cap(), "new buffer should have no storage")
	assert.True(t, b.View().IsNull(), "view of a buffer without storage should be null")
	assert.False(t, b.HasMaxCapacity())
	assert.Equal(t, codec.UTF8, b.Encoding())
}

func TestZeroBuffer(t *testing.T) {
	var b Buffer

	require.NoError(t, b.AppendString("ok"))
	assert.Equal(t, "ok", b.String())
	assert.Equal(t, codec.UTF8, b.Encoding())
}

func TestNewWithCapacity(t *testing.T) {
	b := NewWithCapacity(codec.UTF8, 16)
	assert.Equal(t, 16, b.Cap())
	assert.Equal(t, 0, b.Len())

	b = NewWithCapacity(codec.UTF8, 16, WithMaxCapacity(8))
	assert.Equal(t, 8, b.Cap(), "capacity should be clamped to the maximum")
}

func TestPushAppend(t *testing.T) {
	b := New(codec.UTF8)

	require.NoError(t, b.Push('A'))
	require.NoError(t, b.AppendString("BCD"))

	assert.Equal(t, "ABCD", b.String())
	assert.Equal(t, 4, b.Len())
	assert.Equal(t, 4, b.Cap(), "exact growth should leave no slack")
}

func TestPushMultibyte(t *testing.T) {
	b := New(codec.UTF8)
	for _, c := range []codec.Codepoint{0xC1, 0x904, 0x10082} {
		require.NoError(t, b.Push(c), "push %U", c)
	}
	assert.Equal(t, "Áऄ\U00010082", b.String())
	assert.Equal(t, 3, b.View().Length(codec.UTF8))
}

func TestPushInvalidCodepoint(t *testing.T) {
	tests := []struct {
		name string
		enc  codec.Encoding
		c    codec.Codepoint
	}{
		{"utf-8 above max", codec.UTF8, 0x110000},
		{"utf-16 above max", codec.UTF16, 0x110000},
		{"ascii non-ascii", codec.ASCII, 0xE9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(tt.enc)
			assert.ErrorIs(t, b.Push(tt.c), ErrInvalidCodepoint)
			assert.Equal(t, 0, b.Len())
		})
	}
}

func TestPushSurrogatePair(t *testing.T) {
	b := New(codec.UTF16)
	require.NoError(t, b.Push(0xD800))
	require.NoError(t, b.Push(0xDC00))

	assert.Equal(t, []byte{0xD8, 0x00, 0xDC, 0x00}, b.Bytes())
	assert.Equal(t, 1, b.View().Length(codec.UTF16))

	c, size := b.View().First(codec.UTF16)
	assert.Equal(t, codec.Codepoint(0x10000), c)
	assert.Equal(t, 4, size)
}

func TestAppendMalformed(t *testing.T) {
	b := New(codec.UTF8)
	require.NoError(t, b.AppendString("ok"))

	assert.ErrorIs(t, b.AppendString("x\xff"), ErrMalformed)
	assert.Equal(t, "ok", b.String(), "failed append must not copy anything")
}

func TestAppendEmpty(t *testing.T) {
	b := New(codec.UTF8)
	assert.NoError(t, b.Append(view.Null()))
	assert.NoError(t, b.AppendString(""))
	assert.Equal(t, 0, b.Len())
}

func TestInsertAtStart(t *testing.T) {
	b := New(codec.UTF8)
	require.NoError(t, b.AppendString("BCD"))

	require.NoError(t, b.InsertView(0, view.FromString("  ")))
	assert.Equal(t, "  BCD", b.String())

	assert.ErrorIs(t, b.Insert(b.Len(), 'x'), ErrOffsetOutOfRange)
	assert.Equal(t, "  BCD", b.String())
}

func TestInsertMiddle(t *testing.T) {
	b := New(codec.UTF8)
	require.NoError(t, b.AppendString("ac"))

	require.NoError(t, b.Insert(1, 0xE9))
	assert.Equal(t, "aéc", b.String())

	require.NoError(t, b.InsertView(1, view.FromString("→")))
	assert.Equal(t, "a→éc", b.String())
}

func TestInsertOutOfRange(t *testing.T) {
	b := New(codec.UTF8)
	assert.ErrorIs(t, b.Insert(0, 'x'), ErrOffsetOutOfRange, "insert into empty buffer")

	require.NoError(t, b.AppendString("abc"))
	for _, idx := range []int{-1, 3, 10} {
		assert.ErrorIs(t, b.Insert(idx, 'x'), ErrOffsetOutOfRange, "Insert(%d)", idx)
		assert.ErrorIs(t, b.InsertView(idx, view.FromString("x")), ErrOffsetOutOfRange, "InsertView(%d)", idx)
	}
	assert.Equal(t, "abc", b.String())
}

func TestInsertMalformed(t *testing.T) {
	b := New(codec.UTF8)
	require.NoError(t, b.AppendString("abc"))

	assert.ErrorIs(t, b.InsertView(1, view.Of([]byte{0xE0, 0xA4})), ErrMalformed)
	assert.ErrorIs(t, b.Insert(1, 0x110000), ErrInvalidCodepoint)
	assert.Equal(t, "abc", b.String())
}

func TestMaxCapacity(t *testing.T) {
	b := NewWithMaxCapacity(codec.UTF8, 4)
	require.True(t, b.HasMaxCapacity())
	require.Equal(t, 4, b.MaxCap())

	require.NoError(t, b.AppendString("abc"))

	// 'é' needs two bytes; only one is left.
	assert.ErrorIs(t, b.Push(0xE9), ErrCapacityExceeded)
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, 3, b.Cap())

	require.NoError(t, b.Push('d'))
	assert.ErrorIs(t, b.AppendString("e"), ErrCapacityExceeded)
	assert.ErrorIs(t, b.Insert(0, 'z'), ErrCapacityExceeded)
	assert.Equal(t, "abcd", b.String())
	assert.Equal(t, 4, b.Cap())
}

func TestExtend(t *testing.T) {
	b := New(codec.UTF8)
	require.NoError(t, b.Extend(10))
	assert.Equal(t, 10, b.Cap())

	require.NoError(t, b.Extend(5))
	assert.Equal(t, 10, b.Cap(), "extend to a smaller size should be a no-op")

	require.NoError(t, b.Grow(4))
	assert.Equal(t, 10, b.Cap(), "grow within capacity should be a no-op")
}

func TestGrowthDouble(t *testing.T) {
	b := New(codec.UTF8, WithGrowth(GrowthDouble))
	for _, c := range "ABCDE" {
		require.NoError(t, b.Push(codec.Codepoint(c)))
	}
	assert.Equal(t, 8, b.Cap())

	b = New(codec.UTF8, WithGrowth(GrowthDouble), WithMaxCapacity(6))
	for _, c := range "ABCDE" {
		require.NoError(t, b.Push(codec.Codepoint(c)))
	}
	assert.Equal(t, 6, b.Cap(), "doubling should stop at the maximum")
}

func TestAppendLine(t *testing.T) {
	b := New(codec.UTF8)
	require.NoError(t, b.AppendLine(view.FromString("hi")))
	assert.Equal(t, "hi\n", b.String())

	b = NewWithMaxCapacity(codec.UTF8, 2)
	assert.ErrorIs(t, b.AppendLine(view.FromString("hi")), ErrCapacityExceeded)
	assert.Equal(t, "hi", b.String(), "text should stay appended without the newline")
}

func TestAppendFormat(t *testing.T) {
	b := New(codec.UTF8)
	require.NoError(t, b.AppendFormat("n=%d", 42))
	assert.Equal(t, "n=42", b.String())

	b = New(codec.UTF16)
	require.NoError(t, b.AppendFormat("%s", "A€"))
	assert.Equal(t, []byte{0x00, 0x41, 0x20, 0xAC}, b.Bytes())
}

func TestAppendFormatAtomic(t *testing.T) {
	b := New(codec.ASCII)
	require.NoError(t, b.AppendString("x"))
	assert.ErrorIs(t, b.AppendFormat("ab%s", "é"), ErrInvalidCodepoint)
	assert.ErrorIs(t, b.AppendFormat("%s", "\xff"), ErrMalformed)
	assert.Equal(t, "x", b.String())

	b2 := NewWithMaxCapacity(codec.UTF8, 4)
	assert.ErrorIs(t, b2.AppendFormat("%d", 12345), ErrCapacityExceeded)
	assert.Equal(t, 0, b2.Len())
}

func TestAppendFrom(t *testing.T) {
	b := New(codec.UTF8)
	src := view.Of([]byte{0x00, 0x41, 0xD8, 0x3D, 0xDF, 0x0F})
	require.NoError(t, b.AppendFrom(codec.UTF16, src))
	assert.Equal(t, "A\U0001F70F", b.String())

	err := b.AppendFrom(codec.UTF16, view.Of([]byte{0x00, 0x42, 0x00}))
	assert.ErrorIs(t, err, ErrMalformed, "odd utf-16 input")
	assert.Equal(t, "A\U0001F70F", b.String())
}

func TestAppendFromUTF8ToUTF16(t *testing.T) {
	b := New(codec.UTF16)
	require.NoError(t, b.AppendFrom(codec.UTF8, view.FromString("A\U0001F70F")))
	assert.Equal(t, []byte{0x00, 0x41, 0xD8, 0x3D, 0xDF, 0x0F}, b.Bytes())
	assert.True(t, b.View().IsValid(codec.UTF16))
}

func TestAppendFromSurrogateIntoUTF16(t *testing.T) {
	// ED A0 80 is the UTF-8 form of U+D800; ED B0 80 of U+DC00.
	for _, src := range [][]byte{
		{0xED, 0xA0, 0x80, 'A'},
		{'A', 0xED, 0xB0, 0x80},
		{0xED, 0xA0, 0x80, 0xED, 0xB0, 0x80},
	} {
		b := New(codec.UTF16)
		require.NoError(t, b.Push('x'))

		err := b.AppendFrom(codec.UTF8, view.Of(src))
		assert.ErrorIs(t, err, ErrInvalidCodepoint, "% X", src)
		assert.Equal(t, []byte{0x00, 'x'}, b.Bytes(), "% X", src)
		assert.True(t, b.View().IsValid(codec.UTF16))
	}

	// Another encoding still carries the codepoint through.
	b := New(codec.UTF8)
	require.NoError(t, b.AppendFrom(codec.UTF16, view.Of([]byte{0x00, 0x41})))
	assert.Equal(t, "A", b.String())
}

func TestAppendFormatSurrogateIntoUTF16(t *testing.T) {
	b := New(codec.UTF16)
	assert.ErrorIs(t, b.AppendFormat("%s", "\xed\xa0\x80"), ErrInvalidCodepoint)
	assert.Equal(t, 0, b.Len())
}

func TestAppendFromSameEncoding(t *testing.T) {
	b := New(codec.UTF16)
	require.NoError(t, b.AppendFrom(codec.UTF16, view.Of([]byte{0x00, 0x41})))
	assert.Equal(t, []byte{0x00, 0x41}, b.Bytes())
}

func TestConcat(t *testing.T) {
	b := New(codec.UTF8)
	err := b.Concat(
		view.FromString("a"),
		view.FromString("b"),
		view.FromString("\xff"),
		view.FromString("c"),
	)
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Equal(t, "ab", b.String(), "views before the failure should remain")
}

func TestWrite(t *testing.T) {
	b := New(codec.UTF8)
	_, err := fmt.Fprintf(b, "%s-%d", "id", 7)
	require.NoError(t, err)
	assert.Equal(t, "id-7", b.String())

	n, err := b.Write([]byte{0xC3})
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestViewAndSnapshot(t *testing.T) {
	b := New(codec.UTF8)
	require.NoError(t, b.AppendString("abc"))

	v := b.View()
	snap := b.Snapshot()

	b.Clear()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 3, b.Cap(), "clear should keep storage")
	require.NoError(t, b.AppendString("xyz"))

	assert.Equal(t, "xyz", v.String(), "view should borrow buffer storage")
	assert.Equal(t, "abc", snap.String(), "snapshot should be unaffected by mutation")
}

func TestFixedBuffer(t *testing.T) {
	mem := make([]byte, 4)
	b := NewFixed(codec.UTF8, mem)

	assert.True(t, b.IsFixed())
	assert.True(t, b.HasMaxCapacity())
	assert.Equal(t, 4, b.MaxCap())

	require.NoError(t, b.AppendString("abcd"))
	assert.Equal(t, "abcd", string(mem), "fixed buffer should write into caller memory")
	assert.ErrorIs(t, b.Push('e'), ErrCapacityExceeded)

	assert.ErrorIs(t, b.Release(), ErrFixedBacking)
	b.Clear()
	require.NoError(t, b.AppendString("xy"), "buffer should stay usable after refused release")
	assert.Equal(t, "xy", b.String())
}

func TestFixedBufferEmptyMemory(t *testing.T) {
	b := NewFixed(codec.UTF8, nil)
	assert.True(t, b.HasMaxCapacity(), "fixed buffer over no memory should still be bounded")
	assert.ErrorIs(t, b.Push('a'), ErrCapacityExceeded)
}

func TestRelease(t *testing.T) {
	b := New(codec.UTF8)
	require.NoError(t, b.AppendString("abc"))
	require.NoError(t, b.Release())

	assert.True(t, b.IsReleased())
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, b.Cap())

	ops := map[string]func() error{
		"push":    func() error { return b.Push('x') },
		"append":  func() error { return b.AppendString("x") },
		"extend":  func() error { return b.Extend(8) },
		"insert":  func() error { return b.Insert(0, 'x') },
		"format":  func() error { return b.AppendFormat("x") },
		"from":    func() error { return b.AppendFrom(codec.ASCII, view.FromString("x")) },
		"release": b.Release,
		"write": func() error {
			_, err := b.Write([]byte("x"))
			return err
		},
	}
	for name, op := range ops {
		assert.ErrorIs(t, op(), ErrReleased, name)
	}
}

func TestUTF16Buffer(t *testing.T) {
	b := New(codec.UTF16)
	require.NoError(t, b.Push('A'))
	require.NoError(t, b.Push(0x1F70F))

	assert.Equal(t, []byte{0x00, 0x41, 0xD8, 0x3D, 0xDF, 0x0F}, b.Bytes())
	assert.Equal(t, 2, b.View().Length(codec.UTF16))

	require.NoError(t, b.Insert(2, 'B'))
	assert.Equal(t, []byte{0x00, 0x41, 0x00, 0x42, 0xD8, 0x3D, 0xDF, 0x0F}, b.Bytes())

	assert.ErrorIs(t, b.AppendString("A"), ErrMalformed, "odd-length utf-16 append")
}

func TestGrowthString(t *testing.T) {
	for _, g := range []Growth{GrowthExact, GrowthDouble} {
		parsed, ok := ParseGrowth(g.String())
		assert.True(t, ok, g.String())
		assert.Equal(t, g, parsed)
	}
	_, ok := ParseGrowth("triple")
	assert.False(t, ok, "unknown growth policy should be rejected")
}
