package consumer

// A Folder is the unindexed analogue of Consumer: instead of consuming
// a whole iter.Seq at once, it accepts one element at a time, which is
// what a streaming, single-pass source over an UnindexedProducer chunk
// naturally supports.
type Folder[T, R any] interface {
	// FoldOne folds a single element into the accumulator, returning
	// the updated accumulator.
	FoldOne(acc R, item T) R

	// Finish converts a final accumulator into the folder's result.
	Finish(acc R) R

	// IsFull reports whether additional elements cannot change the
	// eventual result, mirroring Consumer.IsFull.
	IsFull() bool
}

// funcFolder adapts a plain fold function and finish function into a
// Folder, used internally by the Fold consumer so that its per-chunk
// accumulation logic is expressed the same way whether it is driven a
// batch at a time (via Consume) or one element at a time (via
// FoldOne/Finish).
type funcFolder[T, R any] struct {
	fold   func(acc R, item T) R
	finish func(acc R) R
}

func newFuncFolder[T, R any](fold func(R, T) R, finish func(R) R) Folder[T, R] {
	if finish == nil {
		finish = func(acc R) R { return acc }
	}
	return &funcFolder[T, R]{fold: fold, finish: finish}
}

func (f *funcFolder[T, R]) FoldOne(acc R, item T) R { return f.fold(acc, item) }
func (f *funcFolder[T, R]) Finish(acc R) R          { return f.finish(acc) }
func (f *funcFolder[T, R]) IsFull() bool            { return false }
