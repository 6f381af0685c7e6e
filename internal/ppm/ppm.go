// Package ppm encodes framebuffers as plain-text PPM (P3).
package ppm

import (
	"bufio"
	"fmt"
	"io"

	"raytracer/internal/render"
)

// Encode writes fb as a P3 stream: the header, then one "R G B" line per
// pixel in the framebuffer's stored order (top scanline first, left to
// right).
func Encode(w io.Writer, fb *render.FrameBuffer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", fb.Width, fb.Height)
	for o := 0; o < len(fb.Pix); o += 3 {
		fmt.Fprintf(bw, "%d %d %d\n", fb.Pix[o], fb.Pix[o+1], fb.Pix[o+2])
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("ppm: write: %w", err)
	}
	return nil
}
