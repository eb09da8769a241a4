package fastiter_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	fastiter "github.com/exascience/fastiter"
)

// These mirror the literal input/expression/expected-output scenarios
// and the empty-input answers used as fastiter's acceptance checks.

func TestScenarioSumMillion(t *testing.T) {
	got := fastiter.Sum(fastiter.FromRange(0, 1_000_000, 1))
	assert.Equal(t, 499_999_500_000, got)
}

func TestScenarioMapSquares(t *testing.T) {
	got := fastiter.CollectMapped(fastiter.Map(fastiter.FromRange(0, 10, 1), func(v int) int { return v * v }))
	assert.Equal(t, []int{0, 1, 4, 9, 16, 25, 36, 49, 64, 81}, got)
}

func TestScenarioFilterEvens(t *testing.T) {
	got := fastiter.Filter(fastiter.FromRange(0, 20, 1), func(v int) bool { return v%2 == 0 }).Collect()
	assert.Equal(t, []int{0, 2, 4, 6, 8, 10, 12, 14, 16, 18}, got)
}

func TestScenarioReduceFactorial(t *testing.T) {
	got := fastiter.Reduce(fastiter.FromRange(1, 11, 1), func() int { return 1 }, func(a, b int) int { return a * b })
	assert.Equal(t, 3_628_800, got)
}

func TestScenarioMaxByKey(t *testing.T) {
	got, ok := fastiter.MaxKey(fastiter.FromSlice([]string{"a", "abc", "ab", "abcdef"}), func(s string) int { return len(s) })
	assert.True(t, ok)
	assert.Equal(t, "abcdef", got)
}

func TestScenarioAnyStopsEarly(t *testing.T) {
	var calls atomic.Int64
	assert.True(t, fastiter.Any(fastiter.FromRange(0, 100, 1), func(v int) bool {
		calls.Add(1)
		return v == 73
	}))
	assert.Less(t, calls.Load(), int64(100))
}

func TestScenarioAllFalse(t *testing.T) {
	assert.False(t, fastiter.All(fastiter.FromRange(0, 100, 1), func(v int) bool { return v < 50 }))
}

func TestScenarioEmptySum(t *testing.T) {
	got := fastiter.Sum(fastiter.FromSlice([]int{}))
	assert.Equal(t, 0, got)
}

func TestEmptyInputAnswers(t *testing.T) {
	empty := fastiter.FromSlice([]int{})
	assert.Equal(t, 0, fastiter.Sum(empty))
	assert.Equal(t, 0, fastiter.Count(empty))
	assert.False(t, fastiter.Any(empty, func(int) bool { return true }))
	assert.True(t, fastiter.All(empty, func(int) bool { return false }))
	_, minOk := fastiter.Min(empty)
	assert.False(t, minOk)
	_, maxOk := fastiter.Max(empty)
	assert.False(t, maxOk)
	assert.Empty(t, fastiter.Collect(empty))
}

func TestRoundTripFromSlice(t *testing.T) {
	xs := []int{9, 4, 7, 1, 0, 3}
	assert.Equal(t, xs, fastiter.Collect(fastiter.FromSlice(xs)))
}

func TestRoundTripFromRange(t *testing.T) {
	var want []int
	for v := 2; v < 40; v += 3 {
		want = append(want, v)
	}
	assert.Equal(t, want, fastiter.Collect(fastiter.FromRange(2, 40, 3)))
}
