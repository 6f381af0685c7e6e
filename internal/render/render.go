// Package render drives per-pixel scene evaluation into a framebuffer.
package render

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"raytracer/internal/mathutil"
)

// Scene is a fixed-configuration image description: a size plus a pure
// per-pixel color function, safe for concurrent calls.
type Scene interface {
	Size() (width, height int)
	ColorAt(i, j int) mathutil.Color
}

// Options control how Render runs. The zero value renders sequentially and
// silently.
type Options struct {
	Workers  int       // row-rendering goroutines; <= 0 means 1
	Progress io.Writer // "Scanlines remaining" counter; nil disables
}

// Render computes every pixel of s. Scanlines are handed to a worker pool;
// each worker writes only its own scanline's bytes, so the stored pixel order
// never depends on completion order.
func Render(s Scene, opts Options) *FrameBuffer {
	w, h := s.Size()
	fb := NewFrameBuffer(w, h)

	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > h {
		workers = h
	}

	var remaining atomic.Int64
	remaining.Store(int64(h))

	rows := make(chan int, workers*2)
	var wg sync.WaitGroup
	for n := 0; n < workers; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range rows {
				renderRow(s, fb, w, h, j)
				left := remaining.Add(-1)
				if opts.Progress != nil {
					fmt.Fprintf(opts.Progress, "\rScanlines remaining: %d ", left)
				}
			}
		}()
	}

	// Top scanline (j = h-1) first.
	for j := h - 1; j >= 0; j-- {
		rows <- j
	}
	close(rows)
	wg.Wait()

	if opts.Progress != nil {
		// Erase the counter.
		fmt.Fprintf(opts.Progress, "\r%30s\r", "")
	}

	return fb
}

func renderRow(s Scene, fb *FrameBuffer, w, h, j int) {
	row := h - 1 - j
	for i := 0; i < w; i++ {
		fb.SetRGB(i, row, s.ColorAt(i, j))
	}
}
