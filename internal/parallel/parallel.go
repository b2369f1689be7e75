// Package parallel provides fork-join helpers for data-parallel layer kernels.
package parallel

import (
	"golang.org/x/sync/errgroup"

	"github.com/born-ml/layercore/internal/envconfig"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Maximum number of concurrently running goroutines.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
	MinGrain     int  // Minimum elements of work per goroutine (used by ForChannels).
}

// DefaultConfig returns defaults derived from the LAYERCORE_* environment.
func DefaultConfig() Config {
	n := max(envconfig.NumThreads, 1)
	return Config{
		Enabled:      n > 1 && !envconfig.NoParallel,
		NumWorkers:   n,
		MinChunkSize: 1,
		MinGrain:     max(envconfig.MinGrain, 1),
	}
}

// Sequential returns a config that always runs on the calling goroutine.
func Sequential() Config {
	return Config{NumWorkers: 1, MinChunkSize: 1, MinGrain: 1}
}

// For executes f(i) for i in [0, n) and returns once every call has finished.
// Items are split into contiguous chunks; each chunk runs on one goroutine, so
// f never sees the same index twice. Falls back to sequential execution if
// parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	if n <= 0 {
		return
	}
	workers := max(cfg.NumWorkers, 1)
	minChunk := max(cfg.MinChunkSize, 1)
	if !cfg.Enabled || workers == 1 || n < 2*minChunk {
		// Sequential fallback.
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	chunkSize := max((n+workers-1)/workers, minChunk)

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				f(i)
			}
			return nil
		})
	}
	_ = g.Wait()
}

// ForChannels executes f(q) for every channel q in [0, channels), where each
// channel carries planeSize elements of work. Channels are grouped so that a
// goroutine handles at least cfg.MinGrain elements.
func ForChannels(channels, planeSize int, f func(q int), cfg Config) {
	if channels <= 0 {
		return
	}
	perChannel := max(planeSize, 1)
	grain := max(cfg.MinGrain, 1)
	cfg.MinChunkSize = max(cfg.MinChunkSize, (grain+perChannel-1)/perChannel)
	For(channels, f, cfg)
}
