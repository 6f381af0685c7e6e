// Package preview writes optional compressed copies of a render next to the
// PPM output.
package preview

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"

	"raytracer/internal/render"
)

// Accepted -preview values.
const (
	FormatNone = "none"
	FormatWebP = "webp"
	FormatTGA  = "tga"
	FormatPNG  = "png"
)

// Valid reports whether format names a supported preview encoding.
func Valid(format string) bool {
	switch format {
	case FormatNone, FormatWebP, FormatTGA, FormatPNG:
		return true
	}
	return false
}

// Write encodes fb at basePath plus the format's extension. A scale factor
// above 1 resizes the preview with Catmull-Rom resampling; FormatNone writes
// nothing.
func Write(basePath, format string, fb *render.FrameBuffer, scale int) error {
	if format == FormatNone {
		return nil
	}

	img := fb.NRGBA()
	if scale > 1 {
		img = Resize(img, fb.Width*scale, fb.Height*scale)
	}

	path := basePath + "." + format
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("preview: create %s: %w", path, err)
	}
	defer f.Close()

	switch format {
	case FormatWebP:
		err = nativewebp.Encode(f, img, nil)
	case FormatTGA:
		err = tga.Encode(f, img)
	case FormatPNG:
		err = png.Encode(f, img)
	default:
		err = fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return fmt.Errorf("preview: encode %s: %w", path, err)
	}
	return nil
}

// Resize rescales an opaque image with Catmull-Rom filtering.
func Resize(img *image.NRGBA, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
