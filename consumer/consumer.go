// Package consumer implements the fold-and-combine operators that
// terminate a fastiter pipeline: Sum, Count, Min, Max, Any, All,
// Reduce, Fold, Collect, and ForEach, plus the Map and Filter adapters
// that stack in front of them.
package consumer

import "iter"

// A Consumer folds a T-element stream into a partial result R. It is
// the terminal operation of a pipeline, driven by the bridge package.
//
// combine must be associative up to the Ordered flag: for every
// producer P and every valid split index i, Combine(Consume(left of
// P at i), Consume(right of P at i)) must equal Consume(P) as a whole.
// This is the split-combine identity that makes the recursive bridge
// correct regardless of where it chooses to split.
type Consumer[T, R any] interface {
	// Consume folds every element of seq into a single partial result.
	Consume(seq iter.Seq[T]) R

	// Split returns two sibling consumers for the two halves of a
	// parent producer. Implementations that carry shared latched state
	// (for short-circuiting operators such as Any/All) must have both
	// siblings observe the same underlying state.
	Split() (left, right Consumer[T, R])

	// Combine merges two sibling partial results into one, in
	// left-then-right order. For ordered consumers this order is
	// significant; for unordered consumers Combine must additionally be
	// commutative.
	Combine(left, right R) R

	// IsFull reports whether this consumer already has enough
	// information that further elements cannot change its result. The
	// bridge consults IsFull before recursing further so it can skip
	// unstarted branches and let already-running branches observe the
	// same short-circuit state.
	IsFull() bool

	// IsOrdered reports whether Combine is non-commutative and thus
	// sibling partials must be combined in left-to-right producer
	// order. Collect and GroupBy are ordered; Map, Filter and Fold
	// report their downstream consumer's flag; the others in this
	// package are not ordered.
	IsOrdered() bool
}
