package pool_test

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/exascience/fastiter/pool"
)

func TestSpawnRunsAndReturnsValue(t *testing.T) {
	p := pool.NewPool(4)
	future := pool.Spawn(p, func() (int, error) { return 42, nil })
	val, err := future.Await()
	assert.NoError(t, err)
	assert.Equal(t, 42, val)
}

func TestSpawnPropagatesError(t *testing.T) {
	p := pool.NewPool(4)
	want := errors.New("boom")
	future := pool.Spawn(p, func() (int, error) { return 0, want })
	_, err := future.Await()
	assert.Equal(t, want, err)
}

func TestSpawnRecoversPanic(t *testing.T) {
	p := pool.NewPool(4)
	future := pool.Spawn(p, func() (int, error) { panic("kaboom") })
	_, err := future.Await()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "kaboom")
}

func TestSpawnNeverBlocksWhenPoolIsFull(t *testing.T) {
	p := pool.NewPool(1)
	var running atomic.Int32
	futures := make([]*pool.Future[int], 8)
	for i := range futures {
		futures[i] = pool.Spawn(p, func() (int, error) {
			running.Add(1)
			defer running.Add(-1)
			return 1, nil
		})
	}
	total := 0
	for _, f := range futures {
		v, err := f.Await()
		assert.NoError(t, err)
		total += v
	}
	assert.Equal(t, 8, total)
}

func TestSetNumThreadsReplacesPool(t *testing.T) {
	pool.SetNumThreads(2)
	assert.Equal(t, 2, pool.GlobalConfig().NumThreads)
	pool.SetNumThreads(5)
	assert.Equal(t, 5, pool.GlobalConfig().NumThreads)
}

func TestSetNumThreadsRejectsNonPositive(t *testing.T) {
	assert.Panics(t, func() { pool.SetNumThreads(0) })
}

func TestSetNumThreadsIdempotent(t *testing.T) {
	pool.SetNumThreads(3)
	once := pool.GlobalConfig()
	pool.SetNumThreads(3)
	twice := pool.GlobalConfig()
	assert.Equal(t, once, twice)

	p := pool.GlobalPool()
	f := pool.Spawn(p, func() (int, error) { return 1, nil })
	v, err := f.Await()
	assert.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestSetMaxSplitDepthRejectsBelowTwo(t *testing.T) {
	assert.Panics(t, func() { pool.SetMaxSplitDepth(1) })
}

func TestSetMinSplitSizeRejectsNonPositive(t *testing.T) {
	assert.Panics(t, func() { pool.SetMinSplitSize(0) })
}
