package fastiter

import (
	"cmp"
	"sort"

	"github.com/exascience/fastiter/pool"
)

// sortGrainSize is the partition size below which Sort and SortFunc
// fall back to the standard library's sequential sort, mirroring the
// grain-size cutoff pargo's own quicksort used to stop forking.
const sortGrainSize = 0x500

// Sort sorts data in place in ascending order, splitting the work
// across fastiter's worker pool for large slices.
//
// Adapted from pargo's parallel quicksort
// (sort.Sort/pseudoMedianOfNine): partition around a pseudo-median of
// nine, spawn one side on the pool, keep the other side on the
// calling goroutine. Supplemented into fastiter because a data-parallel
// iterator engine without a parallel sort is missing one of the most
// common terminal operations such an engine is built for.
func Sort[T cmp.Ordered](data []T) {
	SortFunc(data, func(a, b T) int { return cmp.Compare(a, b) })
}

// SortFunc sorts data in place using cmp to compare elements, the same
// way Sort does for ordered element types.
func SortFunc[T any](data []T, cmpFn func(a, b T) int) {
	if len(data) < sortGrainSize {
		sort.Slice(data, func(i, j int) bool { return cmpFn(data[i], data[j]) < 0 })
		return
	}
	p := pool.GlobalPool()
	quicksort(p, data, cmpFn)
}

func quicksort[T any](p *pool.Pool, data []T, cmpFn func(a, b T) int) {
	size := len(data)
	if size < sortGrainSize {
		sort.Slice(data, func(i, j int) bool { return cmpFn(data[i], data[j]) < 0 })
		return
	}

	pivotIndex := pseudoMedianOfNine(data, cmpFn, size)
	if pivotIndex > 0 {
		data[0], data[pivotIndex] = data[pivotIndex], data[0]
	}

	i, j := 0, size
outer:
	for {
		for {
			j--
			if cmpFn(data[0], data[j]) >= 0 {
				break
			}
		}
		for {
			if i == j {
				break outer
			}
			i++
			if cmpFn(data[i], data[0]) >= 0 {
				break
			}
		}
		if i == j {
			break outer
		}
		data[i], data[j] = data[j], data[i]
	}
	data[j], data[0] = data[0], data[j]

	left, right := data[:j], data[j+1:]
	future := pool.Spawn(p, func() (struct{}, error) {
		quicksort(p, right, cmpFn)
		return struct{}{}, nil
	})
	quicksort(p, left, cmpFn)
	future.Await()
}

func medianOfThree[T any](data []T, cmpFn func(a, b T) int, l, m, r int) int {
	switch {
	case cmpFn(data[l], data[m]) < 0:
		if cmpFn(data[m], data[r]) < 0 {
			return m
		} else if cmpFn(data[l], data[r]) < 0 {
			return r
		}
	case cmpFn(data[r], data[m]) < 0:
		return m
	case cmpFn(data[r], data[l]) < 0:
		return r
	}
	return l
}

func pseudoMedianOfNine[T any](data []T, cmpFn func(a, b T) int, size int) int {
	offset := size / 8
	return medianOfThree(data, cmpFn,
		medianOfThree(data, cmpFn, 0, offset, offset*2),
		medianOfThree(data, cmpFn, offset*3, offset*4, offset*5),
		medianOfThree(data, cmpFn, offset*6, offset*7, size-1),
	)
}

// IsSortedBy reports whether data is already sorted according to cmpFn.
func IsSortedBy[T any](data []T, cmpFn func(a, b T) int) bool {
	for i := 1; i < len(data); i++ {
		if cmpFn(data[i], data[i-1]) < 0 {
			return false
		}
	}
	return true
}
