// Package parallel provides the optional fan-out used by element-wise transforms.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config decides whether an element loop is split across goroutines.
type Config struct {
	Enabled    bool
	NumWorkers int // Upper bound on goroutines running chunks at once

	// MinChunkSize is the smallest number of matrix elements handed to one
	// goroutine. Loops shorter than two chunks run on the caller.
	MinChunkSize int
}

// DefaultConfig enables one worker per CPU with 4096-element chunks.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 4096,
	}
}

// Sequential returns a Config that always runs on the calling goroutine.
func Sequential() Config {
	return Config{Enabled: false}
}

// ForRange splits [0, n) into contiguous chunks and calls f(lo, hi) for each.
// Falls back to a single f(0, n) call if parallelism is disabled or n is too small.
// Chunks never overlap, so f may write to disjoint output ranges without locking.
func ForRange(n int, f func(lo, hi int), cfg Config) {
	if n <= 0 {
		return
	}
	workers := max(cfg.NumWorkers, 1)
	if !cfg.Enabled || workers == 1 || n < 2*max(cfg.MinChunkSize, 1) {
		f(0, n)
		return
	}

	chunkSize := max((n+workers-1)/workers, cfg.MinChunkSize)

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < n; start += chunkSize {
		lo, hi := start, min(start+chunkSize, n)
		g.Go(func() error {
			f(lo, hi)
			return nil
		})
	}
	_ = g.Wait() // f cannot fail
}
