// Package pool holds fastiter's process-wide worker pool and its
// configuration: thread count, minimum split size, and maximum split
// depth. The pool and its configuration are encapsulated behind a
// single lazily-initialised holder; callers only ever see the
// documented setters (SetNumThreads, SetMinSplitSize,
// SetMaxSplitDepth) and the read-only Config snapshot.
package pool

import (
	"os"
	"runtime"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/exascience/fastiter/internal"
)

// DefaultMinSplitSize is the length below which the bridge stops
// splitting and processes a chunk sequentially, unless overridden by
// SetMinSplitSize or the FASTITER_MIN_SPLIT_SIZE environment variable.
const DefaultMinSplitSize = 10_000

// Config is a read-only snapshot of the current global configuration.
type Config struct {
	NumThreads    int
	MinSplitSize  int
	MaxSplitDepth int
}

type holder struct {
	mu            sync.Mutex
	numThreads    int
	minSplitSize  int
	maxSplitDepth int
	maxSplitSet   bool
	pool          *Pool
	logger        zerolog.Logger
}

var (
	globalOnce sync.Once
	global     *holder
	warnOnce   sync.Once
)

// globalHolder returns the lazily-initialised holder and gives
// warnIfSequential its one chance to fire.
func globalHolder() *holder {
	h := initHolder()
	warnIfSequential(h)
	return h
}

// initHolder returns the lazily-initialised holder without touching
// the one-shot warning, so SetLogger can install a logger before it
// fires.
func initHolder() *holder {
	globalOnce.Do(func() {
		_ = godotenv.Load() // best-effort; absence of a .env file is not an error
		h := &holder{
			numThreads:   envInt("FASTITER_NUM_THREADS", 0),
			minSplitSize: envInt("FASTITER_MIN_SPLIT_SIZE", DefaultMinSplitSize),
			logger:       log.Logger,
		}
		if h.numThreads <= 0 {
			h.numThreads = defaultNumThreads()
		}
		if depth := envInt("FASTITER_MAX_SPLIT_DEPTH", 0); depth > 0 {
			h.maxSplitDepth = depth
			h.maxSplitSet = true
		} else {
			h.maxSplitDepth = internal.ClampMaxSplitDepth(h.numThreads)
		}
		h.pool = NewPool(h.numThreads)
		global = h
	})
	return global
}

// warnIfSequential emits a single warning, the first time the global
// pool is ever touched, if GOMAXPROCS leaves no room for fastiter's
// spawned goroutines to run concurrently with their caller. The engine
// still produces correct results in that case (spawned goroutines only
// interleave with their caller on a single processor), only slower
// than a caller sizing NumThreads off of GOMAXPROCS would expect.
func warnIfSequential(h *holder) {
	warnOnce.Do(func() {
		if runtime.GOMAXPROCS(0) <= 1 {
			h.mu.Lock()
			l := h.logger
			h.mu.Unlock()
			l.Warn().
				Int("gomaxprocs", runtime.GOMAXPROCS(0)).
				Msg("fastiter: GOMAXPROCS leaves no room for parallelism; falling back to sequential execution")
		}
	})
}

func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// GlobalConfig returns a snapshot of the current global configuration.
func GlobalConfig() Config {
	h := globalHolder()
	h.mu.Lock()
	defer h.mu.Unlock()
	return Config{
		NumThreads:    h.numThreads,
		MinSplitSize:  h.minSplitSize,
		MaxSplitDepth: h.maxSplitDepth,
	}
}

// GlobalPool returns the process-wide worker pool, creating it lazily
// on first use.
func GlobalPool() *Pool {
	h := globalHolder()
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pool
}

// Logger returns the logger used for one-shot warnings, such as the
// "cannot truly parallelize" notice fastiter's error taxonomy
// documents. It defaults to the global zerolog logger; tests can
// install a silent logger via SetLogger.
func Logger() zerolog.Logger {
	h := globalHolder()
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.logger
}

// SetLogger overrides the logger used for fastiter's internal
// diagnostics.
func SetLogger(l zerolog.Logger) {
	h := initHolder()
	h.mu.Lock()
	h.logger = l
	h.mu.Unlock()
}

// SetNumThreads replaces the current pool with one sized to n,
// draining outstanding tasks on the old pool before disposing of it.
// It panics if n is not positive, per fastiter's invalid-argument
// error taxonomy (reported at the boundary before any work is
// spawned).
func SetNumThreads(n int) {
	if n < 1 {
		panic("fastiter/pool: num threads must be positive")
	}
	h := globalHolder()
	h.mu.Lock()
	defer h.mu.Unlock()
	old := h.pool
	h.numThreads = n
	if !h.maxSplitSet {
		h.maxSplitDepth = internal.ClampMaxSplitDepth(n)
	}
	h.pool = NewPool(n)
	if old != nil {
		old.Drain()
	}
}

// SetMinSplitSize sets the length below which the bridge stops
// splitting and processes a chunk sequentially. It panics if n is not
// positive.
func SetMinSplitSize(n int) {
	if n < 1 {
		panic("fastiter/pool: min split size must be positive")
	}
	h := globalHolder()
	h.mu.Lock()
	h.minSplitSize = n
	h.mu.Unlock()
}

// SetMaxSplitDepth overrides the recursion depth at which the bridge
// stops spawning children in parallel. It panics if n < 2.
func SetMaxSplitDepth(n int) {
	if n < 2 {
		panic("fastiter/pool: max split depth must be at least 2")
	}
	h := globalHolder()
	h.mu.Lock()
	h.maxSplitDepth = n
	h.maxSplitSet = true
	h.mu.Unlock()
}
