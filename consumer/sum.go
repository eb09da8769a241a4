package consumer

import (
	"iter"

	"gonum.org/v1/gonum/floats"
)

// Sum consumes numeric elements and adds them, per the table in
// fastiter's design: partial state is the running sum, Combine is
// a+b, unordered, never full. An empty input yields the additive
// identity, zero.
type Sum[T Number] struct{}

// NewSum constructs a Sum consumer.
func NewSum[T Number]() Consumer[T, T] { return Sum[T]{} }

// Consume implements Consumer. Elements are buffered so that the
// float64 leaf case can be summed with gonum's floats.Sum, which uses
// a numerically steadier accumulation than a naive running total; for
// every other Number type it falls back to a plain running sum.
func (Sum[T]) Consume(seq iter.Seq[T]) T {
	var buf []T
	for v := range seq {
		buf = append(buf, v)
	}
	return leafSum(buf)
}

func leafSum[T Number](xs []T) T {
	if f64, ok := any(xs).([]float64); ok {
		return T(floats.Sum(f64))
	}
	var total T
	for _, x := range xs {
		total += x
	}
	return total
}

// Split implements Consumer.
func (Sum[T]) Split() (Consumer[T, T], Consumer[T, T]) { return Sum[T]{}, Sum[T]{} }

// Combine implements Consumer.
func (Sum[T]) Combine(left, right T) T { return left + right }

// IsFull implements Consumer: sum never short-circuits.
func (Sum[T]) IsFull() bool { return false }

// IsOrdered implements Consumer: addition is commutative.
func (Sum[T]) IsOrdered() bool { return false }
