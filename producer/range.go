package producer

import (
	"fmt"
	"iter"
)

// A RangeProducer is a Producer over an arithmetic progression
// start, start+step, start+2*step, ... up to but excluding stop.
//
// Constructing a RangeProducer with step == 0 panics: a zero step
// cannot make progress towards stop and is rejected at construction,
// per fastiter's invalid-argument error taxonomy.
type RangeProducer struct {
	start, stop, step int
	length            int
}

// NewRangeProducer constructs a RangeProducer over [start, stop) with
// the given step. Direction is inferred from the sign of step; if stop
// is not reachable from start in that direction the range is empty.
func NewRangeProducer(start, stop, step int) *RangeProducer {
	if step == 0 {
		panic("fastiter/producer: range step cannot be zero")
	}
	return &RangeProducer{start: start, stop: stop, step: step, length: rangeLength(start, stop, step)}
}

func rangeLength(start, stop, step int) int {
	if step > 0 {
		if stop <= start {
			return 0
		}
		return (stop - start + step - 1) / step
	}
	if stop >= start {
		return 0
	}
	return (start-stop-step-1) / (-step)
}

// Len implements Producer.
func (r *RangeProducer) Len() int { return r.length }

// SplitAt implements Producer.
func (r *RangeProducer) SplitAt(i int) (Producer[int], Producer[int]) {
	checkSplit(r.length, i)
	mid := r.start + i*r.step
	left := &RangeProducer{start: r.start, stop: mid, step: r.step, length: i}
	right := &RangeProducer{start: mid, stop: r.stop, step: r.step, length: r.length - i}
	return left, right
}

// IntoIter implements Producer.
func (r *RangeProducer) IntoIter() iter.Seq[int] {
	start, stop, step := r.start, r.stop, r.step
	return func(yield func(int) bool) {
		if step > 0 {
			for v := start; v < stop; v += step {
				if !yield(v) {
					return
				}
			}
			return
		}
		for v := start; v > stop; v += step {
			if !yield(v) {
				return
			}
		}
	}
}

// String renders the range for diagnostics, mirroring pargo's own use
// of fmt.Sprintf in panic messages rather than a dedicated Stringer
// contract.
func (r *RangeProducer) String() string {
	return fmt.Sprintf("RangeProducer(%d:%d:%d)", r.start, r.stop, r.step)
}
