package producer

import (
	"iter"
	"sync"
)

// An UnindexedProducer is a finite-but-unknown-length source of T. It
// backs FromIterable, where the total element count cannot be known in
// advance (a channel, or an arbitrary iter.Seq).
type UnindexedProducer[T any] interface {
	// Split attempts to split this producer. It returns a left producer
	// materialised from a bounded prefix of the source and, unless the
	// end of the source was reached while filling that prefix, a right
	// producer for the rest; that right producer may turn out to be
	// empty, in which case its own Split reports ok false. ok is false
	// when the source is exhausted and no further split is possible.
	Split() (left Producer[T], right UnindexedProducer[T], ok bool)
}

// channelProducer buffers a shared, single-pass source into bounded
// SliceProducer chunks. The source is drained under a single mutex so
// it is consumed exactly once across the whole split recursion, no
// matter how many goroutines call Split concurrently.
type channelProducer[T any] struct {
	mu        *sync.Mutex
	next      func() (T, bool)
	chunkSize int
	done      *bool
}

// NewChannelProducer wraps a channel as an UnindexedProducer, buffering
// up to chunkSize elements per Split call.
func NewChannelProducer[T any](ch <-chan T, chunkSize int) UnindexedProducer[T] {
	if chunkSize < 1 {
		chunkSize = 1
	}
	next := func() (T, bool) {
		v, ok := <-ch
		return v, ok
	}
	done := false
	return &channelProducer[T]{mu: &sync.Mutex{}, next: next, chunkSize: chunkSize, done: &done}
}

// NewSeqProducer wraps an iter.Seq as an UnindexedProducer by pulling
// it through a buffered channel, buffering up to chunkSize elements per
// Split call.
func NewSeqProducer[T any](seq iter.Seq[T], chunkSize int) UnindexedProducer[T] {
	ch := make(chan T, chunkSize)
	go func() {
		defer close(ch)
		for v := range seq {
			ch <- v
		}
	}()
	return NewChannelProducer(ch, chunkSize)
}

func (c *channelProducer[T]) Split() (Producer[T], UnindexedProducer[T], bool) {
	c.mu.Lock()
	if *c.done {
		c.mu.Unlock()
		return nil, nil, false
	}
	buf := make([]T, 0, c.chunkSize)
	for len(buf) < c.chunkSize {
		v, ok := c.next()
		if !ok {
			*c.done = true
			break
		}
		buf = append(buf, v)
	}
	exhausted := *c.done
	c.mu.Unlock()

	if len(buf) == 0 {
		return nil, nil, false
	}
	left := NewSliceProducer(buf)
	if exhausted {
		return left, nil, true
	}
	return left, c, true
}
