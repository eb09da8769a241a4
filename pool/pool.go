package pool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/exascience/fastiter/internal"
)

func defaultNumThreads() int {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	return n
}

// Pool is a non-blocking worker pool: Spawn either runs fn on a fresh
// goroutine, gated by a buffered-channel semaphore sized to the
// pool's thread count, or — when the semaphore has no free slot —
// runs fn synchronously on the calling goroutine.
//
// This is a deliberate departure from a bounded-queue worker pool.
// The bridge recurses by spawning a child for one half of a split and
// continuing to work the other half inline, and the spawning
// goroutine itself may be running inside a task spawned by a parent
// split. A worker pool that blocks its caller when full can deadlock
// that recursion: the blocked parent holds a slot that a queued child
// needs to ever complete. Falling inline instead of blocking a full
// semaphore means a Spawn call never waits for pool capacity, so the
// recursion always makes progress regardless of NumThreads — even with
// NumThreads == 1 (at most one spawned goroutine beside the caller,
// every other task run inline) it completes rather than deadlocking.
// Grounded on the try-acquire discipline of
// Baxromumarov-scoped's weighted semaphore and the panic-to-error
// convention of its Future/Result type.
type Pool struct {
	sem    chan struct{}
	wg     sync.WaitGroup
	closed atomic.Bool
}

// NewPool constructs a Pool whose semaphore admits up to numThreads
// concurrently-running spawned goroutines.
func NewPool(numThreads int) *Pool {
	if numThreads < 1 {
		numThreads = 1
	}
	return &Pool{sem: make(chan struct{}, numThreads)}
}

// Future is the result of a Spawn call: a single-value, single-error
// channel that Await reads exactly once.
type Future[R any] struct {
	ch chan futureResult[R]
}

type futureResult[R any] struct {
	val R
	err error
}

// Await blocks until fn has finished, returning its result or error
// (including a wrapped panic, see internal.WrapPanic).
func (f *Future[R]) Await() (R, error) {
	r := <-f.ch
	return r.val, r.err
}

// Spawn runs fn, preferring a fresh goroutine if the pool has a free
// semaphore slot and otherwise running fn on the calling goroutine
// before Spawn returns. Either way the returned Future carries fn's
// result; a panic inside fn is recovered and reported as an error.
func Spawn[R any](p *Pool, fn func() (R, error)) *Future[R] {
	future := &Future[R]{ch: make(chan futureResult[R], 1)}
	select {
	case p.sem <- struct{}{}:
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			defer func() { <-p.sem }()
			val, err := runCaptured(fn)
			future.ch <- futureResult[R]{val: val, err: err}
		}()
	default:
		val, err := runCaptured(fn)
		future.ch <- futureResult[R]{val: val, err: err}
	}
	return future
}

func runCaptured[R any](fn func() (R, error)) (val R, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = internal.WrapPanic(r)
		}
	}()
	return fn()
}

// Drain marks the pool closed and waits for every goroutine already
// spawned on it to finish. Drain does not prevent further Spawn calls
// on the same Pool value, but fastiter only calls it on a pool that
// SetNumThreads has already replaced as the global pool, so no new
// work is submitted to it afterwards.
func (p *Pool) Drain() {
	p.closed.Store(true)
	p.wg.Wait()
}
