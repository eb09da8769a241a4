package consumer

import "iter"

// ForEach invokes f on every element for its side effect. Execution
// order across chunks is unspecified: this is fastiter's unordered
// default, per its resolution of the "is for_each ordered?" open
// question. See fastiter.ForEachOrdered for the ordered variant.
type ForEach[T any] struct {
	f func(T)
}

// NewForEach constructs a ForEach consumer.
func NewForEach[T any](f func(T)) Consumer[T, struct{}] { return ForEach[T]{f: f} }

// Consume implements Consumer.
func (e ForEach[T]) Consume(seq iter.Seq[T]) struct{} {
	for v := range seq {
		e.f(v)
	}
	return struct{}{}
}

// Split implements Consumer.
func (e ForEach[T]) Split() (Consumer[T, struct{}], Consumer[T, struct{}]) { return e, e }

// Combine implements Consumer: there is nothing to combine.
func (ForEach[T]) Combine(struct{}, struct{}) struct{} { return struct{}{} }

// IsFull implements Consumer: ForEach never short-circuits.
func (ForEach[T]) IsFull() bool { return false }

// IsOrdered implements Consumer.
func (ForEach[T]) IsOrdered() bool { return false }
