// Package producer defines splittable, ordered element sources.
//
// A Producer represents a finite sequence of known length that can be
// split at an arbitrary index into two sibling producers whose
// concatenation is element-equivalent to the original, and that can be
// materialised into a single-pass in-order iterator. Splitting a
// Producer must be pure: the parent must not be touched again once
// split, and SplitAt(0) or SplitAt(Len()) are legal splits that yield
// one empty sibling.
package producer

import "iter"

// A Producer is an ordered, finite, splittable source of T.
type Producer[T any] interface {
	// Len reports the number of elements this producer will generate.
	Len() int

	// SplitAt splits this producer at index i, with 0 <= i <= Len(),
	// returning two producers whose concatenation is element-equivalent
	// to the original, with lengths i and Len()-i. SplitAt panics if i
	// is out of range: an out-of-range split index is a programming
	// error, not a runtime condition callers are expected to recover
	// from.
	SplitAt(i int) (left, right Producer[T])

	// IntoIter materialises this producer into a single-pass in-order
	// iterator. IntoIter consumes the producer; it must not be called
	// more than once, nor after the producer has been split.
	IntoIter() iter.Seq[T]
}

func checkSplit(length, i int) {
	if i < 0 || i > length {
		panic("fastiter/producer: split index out of range")
	}
}
