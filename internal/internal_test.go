package internal_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/exascience/fastiter/internal"
)

func TestWrapPanicNil(t *testing.T) {
	assert.Nil(t, internal.WrapPanic(nil))
}

func TestWrapPanicCapturesValueAndStack(t *testing.T) {
	err := internal.WrapPanic("boom")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "boom")

	var panicErr *internal.PanicError
	assert.ErrorAs(t, err, &panicErr)
	assert.Equal(t, "boom", panicErr.Value)
	assert.NotEmpty(t, panicErr.Stack)
}

func TestWrapPanicUnwrapsErrorValue(t *testing.T) {
	inner := errors.New("inner")
	err := internal.WrapPanic(inner)
	assert.ErrorIs(t, err, inner)
}

func TestClampMaxSplitDepth(t *testing.T) {
	cases := map[int]int{1: 2, 2: 2, 4: 3, 8: 4, 32: 4, 1024: 4}
	for threads, want := range cases {
		assert.Equal(t, want, internal.ClampMaxSplitDepth(threads), "threads=%d", threads)
	}
}

func TestDefaultBufferSizeUsesMinSplitSizeWhenPositive(t *testing.T) {
	assert.Equal(t, 500, internal.DefaultBufferSize(500))
}

func TestDefaultBufferSizeFallsBackToGOMAXPROCS(t *testing.T) {
	assert.GreaterOrEqual(t, internal.DefaultBufferSize(0), 1)
}
