// Package internal holds helpers shared by the root fastiter, bridge
// and pool packages that are not part of fastiter's public API.
package internal

import (
	"fmt"
	"math"
	"runtime"
	"runtime/debug"
)

// PanicError wraps a recovered panic value together with the goroutine
// stack trace captured at the point of the panic, so a panic raised on a
// spawned worker goroutine can be re-raised on the awaiting goroutine
// without losing its origin.
type PanicError struct {
	Value any
	Stack string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v\n\n%s", e.Value, e.Stack)
}

// Unwrap lets errors.As locate an *error value inside Value, if any.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// WrapPanic captures a recovered panic value as a *PanicError. It returns
// nil if p is nil, so it is safe to call unconditionally from a deferred
// recover().
func WrapPanic(p any) error {
	if p == nil {
		return nil
	}
	return &PanicError{Value: p, Stack: string(debug.Stack())}
}

// ClampMaxSplitDepth implements the depth heuristic from the bridge's
// deadlock-avoidance argument: a worker pool of numThreads threads can
// support roughly numThreads independent running tasks, and a balanced
// binary recursion to depth d spawns up to 2^d leaf tasks, so depth is
// capped to bound the leaf count regardless of how large numThreads is.
func ClampMaxSplitDepth(numThreads int) int {
	if numThreads < 1 {
		numThreads = 1
	}
	depth := int(math.Log2(float64(numThreads))) + 1
	switch {
	case depth < 2:
		return 2
	case depth > 4:
		return 4
	default:
		return depth
	}
}

// DefaultBufferSize picks a chunk size for buffering an unindexed source
// into a materialised slice when the caller has not requested a specific
// minimum split size. It scales with GOMAXPROCS the same way pargo's own
// internal package scaled its default batch counts.
func DefaultBufferSize(minSplitSize int) int {
	if minSplitSize > 0 {
		return minSplitSize
	}
	n := 2 * runtime.GOMAXPROCS(0)
	if n < 1 {
		n = 1
	}
	return n
}
