package consumer

import "iter"

// Map wraps a downstream consumer and applies f to each element before
// it reaches it. Split, Combine, IsFull, and IsOrdered all delegate to
// the downstream consumer; f must be deterministic per element.
type Map[T, U, R any] struct {
	base Consumer[U, R]
	f    func(T) U
}

// NewMap constructs a Map adapter.
func NewMap[T, U, R any](base Consumer[U, R], f func(T) U) Consumer[T, R] {
	return Map[T, U, R]{base: base, f: f}
}

// Consume implements Consumer.
func (m Map[T, U, R]) Consume(seq iter.Seq[T]) R {
	f := m.f
	mapped := func(yield func(U) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	}
	return m.base.Consume(mapped)
}

// Split implements Consumer.
func (m Map[T, U, R]) Split() (Consumer[T, R], Consumer[T, R]) {
	leftBase, rightBase := m.base.Split()
	return Map[T, U, R]{base: leftBase, f: m.f}, Map[T, U, R]{base: rightBase, f: m.f}
}

// Combine implements Consumer.
func (m Map[T, U, R]) Combine(left, right R) R { return m.base.Combine(left, right) }

// IsFull implements Consumer.
func (m Map[T, U, R]) IsFull() bool { return m.base.IsFull() }

// IsOrdered implements Consumer.
func (m Map[T, U, R]) IsOrdered() bool { return m.base.IsOrdered() }

// Filter wraps a downstream consumer and skips elements for which p is
// false. Split, Combine, IsFull, and IsOrdered all delegate to the
// downstream consumer.
type Filter[T, R any] struct {
	base Consumer[T, R]
	p    func(T) bool
}

// NewFilter constructs a Filter adapter.
func NewFilter[T, R any](base Consumer[T, R], p func(T) bool) Consumer[T, R] {
	return Filter[T, R]{base: base, p: p}
}

// Consume implements Consumer.
func (fl Filter[T, R]) Consume(seq iter.Seq[T]) R {
	p := fl.p
	filtered := func(yield func(T) bool) {
		for v := range seq {
			if p(v) {
				if !yield(v) {
					return
				}
			}
		}
	}
	return fl.base.Consume(filtered)
}

// Split implements Consumer.
func (fl Filter[T, R]) Split() (Consumer[T, R], Consumer[T, R]) {
	leftBase, rightBase := fl.base.Split()
	return Filter[T, R]{base: leftBase, p: fl.p}, Filter[T, R]{base: rightBase, p: fl.p}
}

// Combine implements Consumer.
func (fl Filter[T, R]) Combine(left, right R) R { return fl.base.Combine(left, right) }

// IsFull implements Consumer.
func (fl Filter[T, R]) IsFull() bool { return fl.base.IsFull() }

// IsOrdered implements Consumer.
func (fl Filter[T, R]) IsOrdered() bool { return fl.base.IsOrdered() }
