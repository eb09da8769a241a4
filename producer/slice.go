package producer

import "iter"

// A SliceProducer is a Producer backed by an in-memory ordered sequence
// with O(1) indexed access. Splitting is a slice boundary; the
// underlying storage is shared between siblings and never copied.
type SliceProducer[T any] struct {
	data       []T
	start, end int
}

// NewSliceProducer wraps data as a Producer over its full length. The
// caller must not mutate data after handing it to fastiter; the
// producer takes no defensive copy.
func NewSliceProducer[T any](data []T) *SliceProducer[T] {
	return &SliceProducer[T]{data: data, start: 0, end: len(data)}
}

// Len implements Producer.
func (s *SliceProducer[T]) Len() int { return s.end - s.start }

// SplitAt implements Producer.
func (s *SliceProducer[T]) SplitAt(i int) (Producer[T], Producer[T]) {
	checkSplit(s.Len(), i)
	mid := s.start + i
	left := &SliceProducer[T]{data: s.data, start: s.start, end: mid}
	right := &SliceProducer[T]{data: s.data, start: mid, end: s.end}
	return left, right
}

// IntoIter implements Producer.
func (s *SliceProducer[T]) IntoIter() iter.Seq[T] {
	data, start, end := s.data, s.start, s.end
	return func(yield func(T) bool) {
		for i := start; i < end; i++ {
			if !yield(data[i]) {
				return
			}
		}
	}
}

// Slice returns the backing sub-slice this producer covers. Useful for
// consumers, such as Collect, that want to append directly into a
// pre-sized buffer instead of iterating element by element.
func (s *SliceProducer[T]) Slice() []T { return s.data[s.start:s.end] }

// An ImmutableSliceProducer is functionally identical to a
// SliceProducer, but documents a stronger contract: the caller
// guarantees the backing storage is never mutated by anyone, including
// through aliases held outside fastiter, for the lifetime of the
// producer and all of its splits. Go has no first-class immutable
// slice type, so this distinction is a documentation contract rather
// than a distinct memory layout, matching how the original
// implementation distinguished list and tuple producers only by the
// mutability contract of their backing storage.
type ImmutableSliceProducer[T any] struct {
	SliceProducer[T]
}

// NewImmutableSliceProducer wraps data under the immutability contract
// described on ImmutableSliceProducer.
func NewImmutableSliceProducer[T any](data []T) *ImmutableSliceProducer[T] {
	return &ImmutableSliceProducer[T]{SliceProducer[T]{data: data, start: 0, end: len(data)}}
}

// SplitAt implements Producer, preserving the ImmutableSliceProducer type
// across splits.
func (s *ImmutableSliceProducer[T]) SplitAt(i int) (Producer[T], Producer[T]) {
	checkSplit(s.Len(), i)
	mid := s.start + i
	left := &ImmutableSliceProducer[T]{SliceProducer[T]{data: s.data, start: s.start, end: mid}}
	right := &ImmutableSliceProducer[T]{SliceProducer[T]{data: s.data, start: mid, end: s.end}}
	return left, right
}
