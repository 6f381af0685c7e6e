// Package scene defines the two fixed render setups. Each scene is a size
// plus a pure per-pixel color function; the pixel row index j runs from 0 at
// the bottom of the image to height-1 at the top, matching the viewport's
// v axis.
package scene

import (
	"raytracer/internal/mathutil"
	"raytracer/internal/trace"
)

// ColorSwatch is the 256x256 gradient test pattern. It has no camera or rays:
// the pixel color is a direct function of the pixel coordinates.
type ColorSwatch struct {
	width, height int
}

func NewColorSwatch() ColorSwatch {
	return ColorSwatch{width: 256, height: 256}
}

func (s ColorSwatch) Size() (int, int) { return s.width, s.height }

func (s ColorSwatch) ColorAt(i, j int) mathutil.Color {
	return mathutil.Color{
		float64(i) / float64(s.width-1),
		float64(j) / float64(s.height-1),
		0.25,
	}
}

// BlueSky is the single-sphere scene: a 400-pixel-wide 16:9 image rendered
// through the pinhole camera, one ray per pixel.
type BlueSky struct {
	width, height int
	cam           Camera
}

func NewBlueSky() BlueSky {
	aspectRatio := 16.0 / 9.0
	width := 400
	height := int(float64(width) / aspectRatio)
	return BlueSky{
		width:  width,
		height: height,
		cam:    NewCamera(aspectRatio),
	}
}

func (s BlueSky) Size() (int, int) { return s.width, s.height }

func (s BlueSky) ColorAt(i, j int) mathutil.Color {
	u := float64(i) / float64(s.width-1)
	v := float64(j) / float64(s.height-1)
	return trace.RayColor(s.cam.RayAt(u, v))
}
