package consumer

import "iter"

// Fold folds each chunk of elements down to a single accumulator with
// identity/foldOp, then passes that one accumulator on to a downstream
// consumer as a single-element stream. Combine delegates to the
// downstream consumer.
//
// Supplemented from the original implementation's FoldConsumer, which
// is not named in fastiter's terminal-consumer table but is a genuine
// feature of the engine: it lets a caller reduce within a chunk with
// one operation (e.g. a cheap running total) and then reduce across
// chunks with a different, possibly more expensive, downstream
// consumer (e.g. Collect the per-chunk totals).
type Fold[T, U, R any] struct {
	base     Consumer[U, R]
	identity func() U
	foldOp   func(acc U, item T) U
}

// NewFold constructs a Fold consumer.
func NewFold[T, U, R any](base Consumer[U, R], identity func() U, foldOp func(U, T) U) Consumer[T, R] {
	return Fold[T, U, R]{base: base, identity: identity, foldOp: foldOp}
}

// Consume implements Consumer. Within a chunk, elements are folded one
// at a time through a Folder built from identity/foldOp — the same
// per-element accumulation path BridgeUnindexed would use if it chose
// to drive this consumer element by element instead of batch by batch.
func (f Fold[T, U, R]) Consume(seq iter.Seq[T]) R {
	folder := newFuncFolder(f.foldOp, nil)
	acc := f.identity()
	for v := range seq {
		if folder.IsFull() {
			break
		}
		acc = folder.FoldOne(acc, v)
	}
	acc = folder.Finish(acc)
	single := func(yield func(U) bool) { yield(acc) }
	return f.base.Consume(single)
}

// Split implements Consumer.
func (f Fold[T, U, R]) Split() (Consumer[T, R], Consumer[T, R]) {
	leftBase, rightBase := f.base.Split()
	return Fold[T, U, R]{base: leftBase, identity: f.identity, foldOp: f.foldOp},
		Fold[T, U, R]{base: rightBase, identity: f.identity, foldOp: f.foldOp}
}

// Combine implements Consumer by delegating to the downstream consumer.
func (f Fold[T, U, R]) Combine(left, right R) R { return f.base.Combine(left, right) }

// IsFull implements Consumer by delegating to the downstream consumer.
func (f Fold[T, U, R]) IsFull() bool { return f.base.IsFull() }

// IsOrdered implements Consumer by delegating to the downstream consumer.
func (f Fold[T, U, R]) IsOrdered() bool { return f.base.IsOrdered() }
