// Package view provides View, a non-owning window over encoded text, and the
// iterator that walks it one codepoint at a time.
//
// A View never allocates and never outlives the bytes it borrows from (a
// string literal, a buffer, or another view). Every read operation returns a
// new View that points into the same memory:
//
//	line := view.FromString("10 20 30")
//	for !line.IsEmpty() {
//	    word, rest, _ := line.Split(codec.UTF8, ' ')
//	    fmt.Println(word) // "10", "20", "30"
//	    line = rest
//	}
//
// Iteration:
//
// Next and NextReverse consume a *View from the front or the back. The view
// itself is the cursor; there is no separate index. Both return a size of 0
// when nothing more can be decoded. NextStep and NextReverseStep return a
// Step that separates "exhausted" from "malformed input" for callers that
// need the distinction.
//
// Null and empty:
//
// The zero View is null (it borrows nothing). A view over zero bytes of a
// real source is empty but not null. IsNull tells them apart; IsEmpty is
// true for both.
package view
