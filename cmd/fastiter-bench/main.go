// Command fastiter-bench runs a handful of representative fastiter
// pipelines and reports their wall-clock time, for spot-checking that
// a given NumThreads/MinSplitSize configuration actually parallelizes
// on the machine it runs on.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/rs/zerolog"

	fastiter "github.com/exascience/fastiter"
	"github.com/exascience/fastiter/pool"
)

func main() {
	numThreads := flag.Int("threads", 0, "worker pool size (0 = GOMAXPROCS)")
	minSplit := flag.Int("min-split", 0, "minimum chunk size before a split stops (0 = default)")
	size := flag.Int("size", 10_000_000, "element count for the benchmarked pipelines")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *numThreads > 0 {
		pool.SetNumThreads(*numThreads)
	}
	if *minSplit > 0 {
		pool.SetMinSplitSize(*minSplit)
	}

	cfg := pool.GlobalConfig()
	fmt.Fprintf(os.Stderr, "fastiter-bench: threads=%d min-split=%d max-depth=%d size=%d\n",
		cfg.NumThreads, cfg.MinSplitSize, cfg.MaxSplitDepth, *size)

	run("sum", *size, func() {
		fastiter.Sum(fastiter.FromRange(0, *size, 1))
	})

	run("filter+collect", *size, func() {
		fastiter.Filter(fastiter.FromRange(0, *size, 1), func(v int) bool { return v%7 == 0 }).Collect()
	})

	run("map+sum", *size, func() {
		fastiter.SumMapped(fastiter.Map(fastiter.FromRange(0, *size, 1), func(v int) float64 {
			return math.Sqrt(float64(v))
		}))
	})

	run("any", *size, func() {
		fastiter.Any(fastiter.FromRange(0, *size, 1), func(v int) bool { return v == *size-1 })
	})

	run("reduce-max", *size, func() {
		fastiter.Reduce(fastiter.FromRange(0, *size, 1), func() int { return math.MinInt }, func(a, b int) int {
			if a > b {
				return a
			}
			return b
		})
	})
}

func run(name string, size int, fn func()) {
	start := time.Now()
	fn()
	fmt.Printf("%-16s n=%-12d %s\n", name, size, time.Since(start))
}
