// Package parallel splits index ranges across worker goroutines.
//
// It is used for mini-batch gradient accumulation, where every worker reads
// the shared network and writes only to its own accumulator.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Workers      int // Number of worker goroutines; <= 1 runs sequentially.
	MinChunkSize int // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns one worker per CPU and a chunk floor of 8 examples.
func DefaultConfig() Config {
	return Config{
		Workers:      runtime.NumCPU(),
		MinChunkSize: 8,
	}
}

// Sequential returns a config that never spawns goroutines.
func Sequential() Config {
	return Config{Workers: 1}
}

// Chunks returns the [start, end) ranges For would hand to workers.
func (c Config) Chunks(n int) [][2]int {
	if n <= 0 {
		return nil
	}
	if c.Workers <= 1 || n < 2*max(c.MinChunkSize, 1) {
		return [][2]int{{0, n}}
	}

	size := max((n+c.Workers-1)/c.Workers, c.MinChunkSize, 1)
	chunks := make([][2]int, 0, (n+size-1)/size)
	for start := 0; start < n; start += size {
		chunks = append(chunks, [2]int{start, min(start+size, n)})
	}
	return chunks
}

// ForChunks calls f once per chunk of [0, n) and waits for all calls.
// chunk is the chunk's index in Chunks(n), so callers can keep one
// accumulator per chunk without locking.
func ForChunks(n int, cfg Config, f func(chunk, start, end int)) {
	chunks := cfg.Chunks(n)
	if len(chunks) == 1 {
		f(0, chunks[0][0], chunks[0][1])
		return
	}

	var wg sync.WaitGroup
	for i, c := range chunks {
		wg.Add(1)
		go func(i, s, e int) {
			defer wg.Done()
			f(i, s, e)
		}(i, c[0], c[1])
	}
	wg.Wait()
}

// For executes f(i) for i in [0, n).
func For(n int, cfg Config, f func(i int)) {
	ForChunks(n, cfg, func(_, start, end int) {
		for i := start; i < end; i++ {
			f(i)
		}
	})
}
