package consumer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/exascience/fastiter/consumer"
)

func seqOf[T any](xs []T) func(yield func(T) bool) {
	return func(yield func(T) bool) {
		for _, x := range xs {
			if !yield(x) {
				return
			}
		}
	}
}

// checkSplitCombine verifies the split-combine identity for a
// consumer at every split point of a fixed input slice.
func checkSplitCombine[T, R any](t *testing.T, c consumer.Consumer[T, R], data []T, equal func(a, b R) bool) {
	t.Helper()
	want := c.Consume(seqOf(data))
	for i := 0; i <= len(data); i++ {
		left, right := c.Split()
		gotLeft := left.Consume(seqOf(data[:i]))
		gotRight := right.Consume(seqOf(data[i:]))
		got := c.Combine(gotLeft, gotRight)
		if !equal(want, got) {
			t.Fatalf("split at %d: combine(%v, %v) = %v, want %v", i, gotLeft, gotRight, got, want)
		}
	}
}

func TestSumSplitCombine(t *testing.T) {
	data := make([]float64, 37)
	for i := range data {
		data[i] = float64(i) * 1.5
	}
	checkSplitCombine(t, consumer.NewSum[float64](), data, func(a, b float64) bool {
		return scalar.EqualWithinAbsOrRel(a, b, 1e-9, 1e-9)
	})
}

func TestSumIntegers(t *testing.T) {
	data := []int{1, 2, 3, 4, 5}
	got := consumer.NewSum[int]().Consume(seqOf(data))
	assert.Equal(t, 15, got)
}

func TestSumEmpty(t *testing.T) {
	assert.Equal(t, 0, consumer.NewSum[int]().Consume(seqOf[int](nil)))
}

func TestCountSplitCombine(t *testing.T) {
	data := []string{"a", "b", "c", "d", "e", "f", "g"}
	checkSplitCombine(t, consumer.NewCount[string](), data, func(a, b int) bool { return a == b })
}

func TestMinMax(t *testing.T) {
	data := []int{5, 3, 9, -2, 7, -2, 0}
	min := consumer.NewMin[int]().Consume(seqOf(data))
	max := consumer.NewMax[int]().Consume(seqOf(data))
	assert.Equal(t, consumer.Some(-2), min)
	assert.Equal(t, consumer.Some(9), max)
}

func TestMinMaxEmpty(t *testing.T) {
	assert.Equal(t, consumer.None[int](), consumer.NewMin[int]().Consume(seqOf[int](nil)))
	assert.Equal(t, consumer.None[int](), consumer.NewMax[int]().Consume(seqOf[int](nil)))
}

func TestMinTiesFavorLeft(t *testing.T) {
	type pair struct {
		key int
		tag string
	}
	data := []pair{{1, "first"}, {1, "second"}}
	got := consumer.NewMinKey[pair, int](func(p pair) int { return p.key }).Consume(seqOf(data))
	assert.Equal(t, "first", got.Value.tag)
}

func TestAnyShortCircuits(t *testing.T) {
	calls := 0
	pred := func(v int) bool {
		calls++
		return v == 3
	}
	c := consumer.NewAny(pred)
	got := c.Consume(seqOf([]int{1, 2, 3, 4, 5}))
	assert.True(t, got)
	assert.LessOrEqual(t, calls, 3)
}

func TestAnySplitSharesLatch(t *testing.T) {
	c := consumer.NewAny(func(v int) bool { return v == 2 })
	left, right := c.Split()
	leftResult := left.Consume(seqOf([]int{1, 2}))
	rightResult := right.Consume(seqOf([]int{3, 4}))
	assert.True(t, c.IsFull())
	assert.True(t, c.Combine(leftResult, rightResult))
}

func TestAllFindsCounterexample(t *testing.T) {
	c := consumer.NewAll(func(v int) bool { return v > 0 })
	got := c.Consume(seqOf([]int{1, 2, -1, 4}))
	assert.False(t, got)
}

func TestAllEmptyIsTrue(t *testing.T) {
	c := consumer.NewAll[int](func(int) bool { return false })
	assert.True(t, c.Consume(seqOf[int](nil)))
}

func TestReduce(t *testing.T) {
	c := consumer.NewReduce(func() int { return 0 }, func(a, b int) int { return a + b })
	checkSplitCombine(t, c, []int{1, 2, 3, 4, 5, 6, 7}, func(a, b int) bool { return a == b })
}

func TestCollectPreservesOrder(t *testing.T) {
	data := []int{9, 8, 7, 6, 5, 4, 3, 2, 1}
	c := consumer.NewCollect[int]()
	for i := 0; i <= len(data); i++ {
		left, right := c.Split()
		got := c.Combine(left.Consume(seqOf(data[:i])), right.Consume(seqOf(data[i:])))
		assert.Equal(t, data, got)
	}
}

func TestForEach(t *testing.T) {
	var sum int
	c := consumer.NewForEach(func(v int) { sum += v })
	c.Consume(seqOf([]int{1, 2, 3}))
	assert.Equal(t, 6, sum)
}

func TestFoldDelegatesToBase(t *testing.T) {
	base := consumer.NewReduce(func() int { return 0 }, func(a, b int) int { return a + b })
	f := consumer.NewFold[int, int, int](base, func() int { return 0 }, func(acc, item int) int { return acc + item })
	got := f.Consume(seqOf([]int{1, 2, 3, 4}))
	assert.Equal(t, 10, got)
}

func TestMapAdapter(t *testing.T) {
	base := consumer.NewCollect[int]()
	m := consumer.NewMap[int, int, []int](base, func(v int) int { return v * v })
	got := m.Consume(seqOf([]int{1, 2, 3}))
	assert.Equal(t, []int{1, 4, 9}, got)
}

func TestFilterAdapter(t *testing.T) {
	base := consumer.NewCollect[int]()
	f := consumer.NewFilter[int, []int](base, func(v int) bool { return v%2 == 0 })
	got := f.Consume(seqOf([]int{1, 2, 3, 4, 5, 6}))
	assert.Equal(t, []int{2, 4, 6}, got)
}
