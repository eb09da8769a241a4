// Package bridge drives a Producer/Consumer pair to a result,
// recursively splitting the producer and fanning the halves out
// across fastiter's worker pool up to a bounded depth, then folding
// the partial results back together with the consumer's Combine.
//
// Grounded on the fork-join shape of parallel.Do and speculative.Do in
// ExaScience/pargo (spawn one half on a goroutine, keep the other
// half on the calling goroutine, recover panics on both sides,
// propagate the left-most error) and on pipeline.Pipeline's use of
// context.Context for cooperative cancellation.
package bridge

import (
	"context"

	"github.com/exascience/fastiter/consumer"
	"github.com/exascience/fastiter/internal"
	"github.com/exascience/fastiter/pool"
	"github.com/exascience/fastiter/producer"
)

// Bridge drives prod through cons, splitting and running halves in
// parallel on the global pool according to the global configuration's
// MinSplitSize and MaxSplitDepth, until prod is small enough, recursion
// is deep enough, or cons reports IsFull, at which point the remaining
// chunk is consumed directly on the current goroutine.
//
// Bridge checks ctx before every split and before every leaf: once ctx
// is cancelled no new split or leaf starts and Bridge returns
// ctx.Err(). A leaf already consuming its chunk is not interrupted, and
// every spawned half is awaited before Bridge returns. A panic inside the producer or consumer is recovered and
// returned as an error (see internal.WrapPanic); when both halves of
// a split fail, the left half's error or panic takes precedence, matching
// pargo's left-most-error-wins convention.
func Bridge[T, R any](ctx context.Context, prod producer.Producer[T], cons consumer.Consumer[T, R]) (R, error) {
	cfg := pool.GlobalConfig()
	return run(ctx, pool.GlobalPool(), cfg.MinSplitSize, cfg.MaxSplitDepth, 0, prod, cons)
}

// Sequential drives prod through cons on the calling goroutine only,
// never splitting. It exists for debugging and for comparing a
// parallel run's result against a known-sequential baseline.
func Sequential[T, R any](prod producer.Producer[T], cons consumer.Consumer[T, R]) (result R, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = internal.WrapPanic(p)
		}
	}()
	return cons.Consume(prod.IntoIter()), nil
}

func run[T, R any](ctx context.Context, p *pool.Pool, minSplit, maxDepth, depth int, prod producer.Producer[T], cons consumer.Consumer[T, R]) (R, error) {
	var zero R
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	default:
	}

	if cons.IsFull() || depth >= maxDepth || prod.Len() <= minSplit {
		return leaf(prod, cons)
	}

	leftProd, rightProd := prod.SplitAt(prod.Len() / 2)
	leftCons, rightCons := cons.Split()

	future := pool.Spawn(p, func() (R, error) {
		return run(ctx, p, minSplit, maxDepth, depth+1, rightProd, rightCons)
	})
	leftVal, leftErr := run(ctx, p, minSplit, maxDepth, depth+1, leftProd, leftCons)
	rightVal, rightErr := future.Await()

	if leftErr != nil {
		return leftVal, leftErr
	}
	if rightErr != nil {
		return rightVal, rightErr
	}
	return cons.Combine(leftVal, rightVal), nil
}

func leaf[T, R any](prod producer.Producer[T], cons consumer.Consumer[T, R]) (result R, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = internal.WrapPanic(p)
		}
	}()
	return cons.Consume(prod.IntoIter()), nil
}

// BridgeUnindexed drives an UnindexedProducer through cons. Each call
// to the producer's Split buffers one bounded chunk into an ordinary
// Producer, which is itself bridged in parallel on the pool while the
// calling goroutine requests the next chunk; partial results are
// combined strictly in the order the chunks were produced, so Collect
// and other ordered consumers still see encounter order even though
// the total element count was never known up front.
//
// Grounded on pipeline.Pipeline's model of pulling bounded batches
// from a Source and feeding each through parallel stages while
// preserving encounter order for ordered nodes.
func BridgeUnindexed[T, R any](ctx context.Context, prod producer.UnindexedProducer[T], cons consumer.Consumer[T, R]) (R, error) {
	cfg := pool.GlobalConfig()
	p := pool.GlobalPool()

	type pending struct {
		future *pool.Future[R]
	}
	var chunks []pending

	for {
		select {
		case <-ctx.Done():
			var zero R
			return zero, ctx.Err()
		default:
		}
		if cons.IsFull() {
			break
		}
		left, right, ok := prod.Split()
		if !ok {
			break
		}
		leftCons, rest := cons.Split()
		cons = rest
		chunks = append(chunks, pending{
			future: pool.Spawn(p, func() (R, error) {
				return run(ctx, p, cfg.MinSplitSize, cfg.MaxSplitDepth, 0, left, leftCons)
			}),
		})
		if right == nil {
			break
		}
		prod = right
	}

	var (
		zero     R
		result   R
		has      bool
		firstErr error
	)
	for _, c := range chunks {
		val, err := c.future.Await()
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if !has {
			result, has = val, true
		} else {
			result = cons.Combine(result, val)
		}
	}
	if firstErr != nil {
		return zero, firstErr
	}
	if !has {
		return leaf(producer.NewSliceProducer([]T(nil)), cons)
	}
	return result, nil
}
