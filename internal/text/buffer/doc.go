// Package buffer provides Buffer, a growable owner of encoded text.
//
// A Buffer holds bytes in one of the codec encodings and hands out views over
// them. Every mutation either succeeds completely or leaves the buffer as it
// was, with the exception of AppendLine and Concat, which are sequences of
// independent appends.
//
// Basic usage:
//
//	buf := buffer.New(codec.UTF8)
//	buf.Push('A')
//	buf.AppendString("BCD")   // "ABCD"
//	buf.Insert(0, ' ')        // " ABCD"
//	fmt.Println(buf.View())
//
// Capacity:
//
// By default a buffer reallocates to exactly the size an operation needs.
// WithGrowth(GrowthDouble) switches to amortized doubling. A nonzero maximum
// capacity (WithMaxCapacity or NewWithMaxCapacity) bounds growth; an
// operation that would exceed it fails with ErrCapacityExceeded.
//
// Fixed backing:
//
// NewFixed wraps caller memory. Such a buffer never reallocates, and Release
// refuses to free it. A released buffer rejects every further operation with
// ErrReleased.
//
// Views:
//
// View borrows the buffer's bytes and is invalidated by the next mutation.
// Snapshot returns an owned copy that stays valid.
//
// Buffer is not safe for concurrent use. Pool is.
package buffer
