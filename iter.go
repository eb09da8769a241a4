package fastiter

import (
	"cmp"
	"context"
	"iter"

	"github.com/exascience/fastiter/bridge"
	"github.com/exascience/fastiter/consumer"
	"github.com/exascience/fastiter/internal"
	"github.com/exascience/fastiter/pool"
	"github.com/exascience/fastiter/producer"
)

// An Iter is a parallel pipeline over elements of type T, backed by a
// Producer. Terminal operations (Sum, Count, Collect, and the rest)
// drive the pipeline to a result via the bridge package. Map and
// Filter return their own adapter types rather than another Iter[T],
// since a terminal operation that needs an extra type constraint
// (Sum's Number, Min's Ordered) can only be expressed as a free
// function, and free functions need a concrete element type to
// dispatch on.
type Iter[T any] struct {
	prod producer.Producer[T]
}

// FromRange builds an Iter over the arithmetic progression
// start, start+step, ... up to but excluding stop.
func FromRange(start, stop, step int) Iter[int] {
	return Iter[int]{prod: producer.NewRangeProducer(start, stop, step)}
}

// FromSlice builds an Iter over data. The caller must not mutate data
// once it has been handed to fastiter.
func FromSlice[T any](data []T) Iter[T] {
	return Iter[T]{prod: producer.NewSliceProducer(data)}
}

// Concat builds an Iter that yields every element of each iter in
// turn, without copying their backing storage.
func Concat[T any](iters ...Iter[T]) Iter[T] {
	prods := make([]producer.Producer[T], len(iters))
	for i, it := range iters {
		prods[i] = it.prod
	}
	return Iter[T]{prod: producer.NewChainProducer(prods...)}
}

// FromIterable builds an UnindexedIter over a single-pass iter.Seq
// whose total length cannot be known in advance. Pipelines built this
// way are driven with bridge.BridgeUnindexed, buffering chunkSize
// elements per internal split.
func FromIterable[T any](seq iter.Seq[T], chunkSize int) UnindexedIter[T] {
	if chunkSize <= 0 {
		chunkSize = internal.DefaultBufferSize(pool.GlobalConfig().MinSplitSize)
	}
	return UnindexedIter[T]{prod: producer.NewSeqProducer(seq, chunkSize)}
}

// An UnindexedIter is a parallel pipeline over a source of unknown
// length, such as a channel or an arbitrary iter.Seq.
type UnindexedIter[T any] struct {
	prod producer.UnindexedProducer[T]
}

// A MappedIter defers materialising a Map adapter until a terminal
// consumer is known. Its terminals are CollectMapped, SumMapped and
// ForEachMapped; a MappedIter cannot be passed to Filter or Fold.
type MappedIter[T, U any] struct {
	prod producer.Producer[T]
	f    func(T) U
}

// Map returns a MappedIter that applies f to every element of it.
func Map[T, U any](it Iter[T], f MapFunc[T, U]) MappedIter[T, U] {
	return MappedIter[T, U]{prod: it.prod, f: f}
}

// A FilteredIter defers materialising a Filter adapter until a
// terminal consumer is known.
type FilteredIter[T any] struct {
	prod producer.Producer[T]
	p    func(T) bool
}

// Filter returns a FilteredIter that keeps only elements of it for
// which p is true.
func Filter[T any](it Iter[T], p Predicate[T]) FilteredIter[T] {
	return FilteredIter[T]{prod: it.prod, p: p}
}

func runConsumer[T, R any](ctx context.Context, prod producer.Producer[T], cons consumer.Consumer[T, R]) R {
	result, err := bridge.Bridge(ctx, prod, cons)
	if err != nil {
		panic(err)
	}
	return result
}

func runUnindexedConsumer[T, R any](ctx context.Context, prod producer.UnindexedProducer[T], cons consumer.Consumer[T, R]) R {
	result, err := bridge.BridgeUnindexed(ctx, prod, cons)
	if err != nil {
		panic(err)
	}
	return result
}

// Sum reduces it to the sum of its elements.
func Sum[T consumer.Number](it Iter[T]) T {
	return runConsumer(context.Background(), it.prod, consumer.NewSum[T]())
}

// Count reports the number of elements it yields.
func Count[T any](it Iter[T]) int {
	return runConsumer(context.Background(), it.prod, consumer.NewCount[T]())
}

// Min returns it's smallest element and false if it is empty.
func Min[T cmp.Ordered](it Iter[T]) (T, bool) {
	opt := runConsumer(context.Background(), it.prod, consumer.NewMin[T]())
	return opt.Value, opt.Ok
}

// Max returns it's largest element and false if it is empty.
func Max[T cmp.Ordered](it Iter[T]) (T, bool) {
	opt := runConsumer(context.Background(), it.prod, consumer.NewMax[T]())
	return opt.Value, opt.Ok
}

// MinKey returns the element of it for which key is smallest, and
// false if it is empty. Ties favor the earlier element.
func MinKey[T any, K cmp.Ordered](it Iter[T], key KeyFunc[T, K]) (T, bool) {
	opt := runConsumer(context.Background(), it.prod, consumer.NewMinKey[T, K](key))
	return opt.Value, opt.Ok
}

// MaxKey returns the element of it for which key is largest, and
// false if it is empty. Ties favor the earlier element.
func MaxKey[T any, K cmp.Ordered](it Iter[T], key KeyFunc[T, K]) (T, bool) {
	opt := runConsumer(context.Background(), it.prod, consumer.NewMaxKey[T, K](key))
	return opt.Value, opt.Ok
}

// Any reports whether any element of it satisfies pred, short-circuiting
// as soon as a match is found anywhere in the pipeline.
func Any[T any](it Iter[T], pred Predicate[T]) bool {
	return runConsumer(context.Background(), it.prod, consumer.NewAny(pred))
}

// All reports whether every element of it satisfies pred, short-circuiting
// as soon as a counterexample is found anywhere in the pipeline.
func All[T any](it Iter[T], pred Predicate[T]) bool {
	return runConsumer(context.Background(), it.prod, consumer.NewAll(pred))
}

// Reduce folds it down to a single value using op, starting from
// identity() on every leaf. op must be associative and identity() must
// be op's identity element, since Reduce may call identity() more than
// once across leaves.
func Reduce[T any](it Iter[T], identity Identity[T], op Reducer[T]) T {
	return runConsumer(context.Background(), it.prod, consumer.NewReduce(identity, op))
}

// Fold folds it down to a single value using foldOp within each chunk
// and op across chunks, starting from identity() on every leaf.
func Fold[T, R any](it Iter[T], identity Identity[R], foldOp FoldFunc[T, R], op Reducer[R]) R {
	base := consumer.NewReduce(identity, op)
	return runConsumer(context.Background(), it.prod, consumer.NewFold[T, R, R](base, identity, foldOp))
}

// Collect gathers every element of it into a slice, preserving order.
func Collect[T any](it Iter[T]) []T {
	return runConsumer(context.Background(), it.prod, consumer.NewCollect[T]())
}

// ForEach invokes f once per element of it, for its side effect.
// Execution order across chunks is unspecified; see ForEachOrdered.
func ForEach[T any](it Iter[T], f Effect[T]) {
	runConsumer(context.Background(), it.prod, consumer.NewForEach(f))
}

// ForEachOrdered invokes f once per element of it, in encounter order.
// It is implemented as Collect followed by a sequential loop, since
// guaranteeing order for arbitrary side effects across concurrently
// running chunks otherwise requires serializing the whole pipeline.
func ForEachOrdered[T any](it Iter[T], f Effect[T]) {
	for _, v := range Collect(it) {
		f(v)
	}
}

// GroupBy partitions it into groups keyed by key, preserving each
// group's elements in encounter order.
func GroupBy[T any, K comparable](it Iter[T], key KeyFunc[T, K]) map[K][]T {
	return runConsumer(context.Background(), it.prod, consumer.NewGroupBy[T, K](key))
}

// CollectMapped gathers every mapped element of m into a slice,
// preserving order.
func CollectMapped[T, U any](m MappedIter[T, U]) []U {
	base := consumer.NewCollect[U]()
	return runConsumer(context.Background(), m.prod, consumer.NewMap[T, U, []U](base, m.f))
}

// SumMapped reduces m to the sum of its mapped elements, without ever
// materialising them as a slice.
func SumMapped[T any, U consumer.Number](m MappedIter[T, U]) U {
	base := consumer.NewSum[U]()
	return runConsumer(context.Background(), m.prod, consumer.NewMap[T, U, U](base, m.f))
}

// ForEachMapped invokes f once per mapped element of m, for its side
// effect.
func ForEachMapped[T, U any](m MappedIter[T, U], f Effect[U]) {
	base := consumer.NewForEach(f)
	runConsumer(context.Background(), m.prod, consumer.NewMap[T, U, struct{}](base, m.f))
}

// Collect gathers every element of fi that satisfies its predicate
// into a slice, preserving order.
func (fi FilteredIter[T]) Collect() []T {
	base := consumer.NewCollect[T]()
	return runConsumer(context.Background(), fi.prod, consumer.NewFilter[T, []T](base, fi.p))
}

// ForEach invokes f once per element of fi that satisfies its
// predicate, for its side effect.
func (fi FilteredIter[T]) ForEach(f Effect[T]) {
	base := consumer.NewForEach(f)
	runConsumer(context.Background(), fi.prod, consumer.NewFilter[T, struct{}](base, fi.p))
}

// Count reports the number of elements of fi that satisfy its
// predicate.
func (fi FilteredIter[T]) Count() int {
	base := consumer.NewCount[T]()
	return runConsumer(context.Background(), fi.prod, consumer.NewFilter[T, int](base, fi.p))
}

// Collect gathers every element of u into a slice, preserving the
// order chunks were produced in.
func (u UnindexedIter[T]) Collect() []T {
	return runUnindexedConsumer(context.Background(), u.prod, consumer.NewCollect[T]())
}

// ForEach invokes f once per element of u, for its side effect.
func (u UnindexedIter[T]) ForEach(f Effect[T]) {
	runUnindexedConsumer(context.Background(), u.prod, consumer.NewForEach(f))
}

// SumUnindexed reduces u to the sum of its elements.
func SumUnindexed[T consumer.Number](u UnindexedIter[T]) T {
	return runUnindexedConsumer(context.Background(), u.prod, consumer.NewSum[T]())
}
