package render

import (
	"image"

	"raytracer/internal/mathutil"
)

// FrameBuffer holds the rendered image as one flat RGB slice for cache
// locality, stored in emission order: top scanline first, pixels left to
// right, 3 bytes per pixel.
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []uint8 // RGB interleaved, len = W*H*3
}

// NewFrameBuffer allocates a zeroed RGB buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Pix:    make([]uint8, w*h*3),
	}
}

// SetRGB stores c at column i of scanline row (row 0 is the top of the image).
func (fb *FrameBuffer) SetRGB(i, row int, c mathutil.Color) {
	r, g, b := c.RGB8()
	o := (row*fb.Width + i) * 3
	fb.Pix[o] = r
	fb.Pix[o+1] = g
	fb.Pix[o+2] = b
}

// At returns the stored channels at column i of scanline row.
func (fb *FrameBuffer) At(i, row int) (r, g, b uint8) {
	o := (row*fb.Width + i) * 3
	return fb.Pix[o], fb.Pix[o+1], fb.Pix[o+2]
}

// NRGBA converts the framebuffer to a fully opaque image for the preview
// encoders.
func (fb *FrameBuffer) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for p := 0; p < fb.Width*fb.Height; p++ {
		src := p * 3
		dst := p * 4
		img.Pix[dst] = fb.Pix[src]
		img.Pix[dst+1] = fb.Pix[src+1]
		img.Pix[dst+2] = fb.Pix[src+2]
		img.Pix[dst+3] = 255
	}
	return img
}
