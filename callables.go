package fastiter

// MapFunc transforms an element of type T into an element of type U. It
// must be deterministic per element; side effects are observable in
// unspecified order unless the downstream consumer is ordered.
type MapFunc[T, U any] func(T) U

// Predicate reports whether an element of type T satisfies some
// condition, for use with Filter, Any, and All.
type Predicate[T any] func(T) bool

// KeyFunc extracts a key from an element, for use with MinKey, MaxKey
// and GroupBy.
type KeyFunc[T, K any] func(T) K

// Reducer combines two partial results of type R into one. It must be
// associative for a deterministic result, and additionally commutative
// if used with an unordered producer.
type Reducer[R any] func(a, b R) R

// Identity produces the initial accumulator value for a Reduce or Fold.
// Reduce calls it once per terminal leaf of the split recursion; Fold
// calls it twice per leaf, once to start the per-chunk fold and once to
// start the cross-chunk reduction of that chunk's result.
type Identity[R any] func() R

// FoldFunc folds a single element of type T into an accumulator of type
// R.
type FoldFunc[T, R any] func(acc R, item T) R

// Effect is a function invoked purely for its side effect, for use with
// ForEach.
type Effect[T any] func(T)
