package compute

import (
	"runtime"
	"sync"
)

// serialThreshold is the buffer size below which goroutine fan-out
// costs more than it saves.
const serialThreshold = 1 << 14

type CPUBackend struct {
	workers int
}

func NewCPUBackend() *CPUBackend {
	return &CPUBackend{
		workers: runtime.NumCPU(),
	}
}

func (c *CPUBackend) Name() string    { return "cpu" }
func (c *CPUBackend) Available() bool { return true }
func (c *CPUBackend) Cleanup()        {}

func (c *CPUBackend) Map(dst, src []float64, fn func(float64) float64) {
	n := len(src)
	if n < serialThreshold || c.workers < 2 {
		for i := 0; i < n; i++ {
			dst[i] = fn(src[i])
		}
		return
	}
	c.chunked(n, func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = fn(src[i])
		}
	})
}

func (c *CPUBackend) Map2(dst, a, b []float64, fn func(x, y float64) float64) {
	n := len(a)
	if n < serialThreshold || c.workers < 2 {
		for i := 0; i < n; i++ {
			dst[i] = fn(a[i], b[i])
		}
		return
	}
	c.chunked(n, func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = fn(a[i], b[i])
		}
	})
}

func (c *CPUBackend) chunked(n int, body func(start, end int)) {
	var wg sync.WaitGroup
	chunkSize := (n + c.workers - 1) / c.workers

	for w := 0; w < c.workers; w++ {
		start := w * chunkSize
		if start >= n {
			break
		}
		end := start + chunkSize
		if end > n {
			end = n
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			body(start, end)
		}(start, end)
	}

	wg.Wait()
}
