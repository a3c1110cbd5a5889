package view

import (
	"strings"
	"testing"

	"github.com/dshills/twine/internal/text/codec"
)

func setupWords(b *testing.B, words int) View {
	b.Helper()
	return FromString(strings.Repeat("héllo wörld ", words))
}

func BenchmarkLength(b *testing.B) {
	v := setupWords(b, 1000)
	b.SetBytes(int64(v.Len()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = v.Length(codec.UTF8)
	}
}

func BenchmarkIsValid(b *testing.B) {
	v := setupWords(b, 1000)
	b.SetBytes(int64(v.Len()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = v.IsValid(codec.UTF8)
	}
}

func BenchmarkSplit(b *testing.B) {
	v := setupWords(b, 1000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rest := v
		for !rest.IsEmpty() {
			_, rest, _ = rest.Split(codec.UTF8, ' ')
		}
	}
}

func BenchmarkBackward(b *testing.B) {
	v := setupWords(b, 1000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for range v.Backward(codec.UTF8) {
		}
	}
}

func BenchmarkTrim(b *testing.B) {
	v := FromString(strings.Repeat(" \t", 100) + "x" + strings.Repeat(" ", 100))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = v.Trim(codec.UTF8)
	}
}
