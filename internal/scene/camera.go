package scene

import (
	"raytracer/internal/mathutil"
	"raytracer/internal/trace"
)

// Camera is a pinhole camera: every ray leaves Origin toward a point on the
// viewport rectangle, which sits one focal length down the -z axis.
type Camera struct {
	Origin     mathutil.Point3
	Horizontal mathutil.Vec3
	Vertical   mathutil.Vec3
	LowerLeft  mathutil.Point3
}

// NewCamera builds the fixed camera: origin at (0,0,0), viewport height 2.0,
// focal length 1.0, viewport width derived from the aspect ratio.
func NewCamera(aspectRatio float64) Camera {
	viewportHeight := 2.0
	viewportWidth := aspectRatio * viewportHeight
	focalLength := 1.0

	origin := mathutil.Point3{0, 0, 0}
	horizontal := mathutil.Vec3{viewportWidth, 0, 0}
	vertical := mathutil.Vec3{0, viewportHeight, 0}
	lowerLeft := origin.
		Sub(horizontal.Div(2)).
		Sub(vertical.Div(2)).
		Sub(mathutil.Vec3{0, 0, focalLength})

	return Camera{
		Origin:     origin,
		Horizontal: horizontal,
		Vertical:   vertical,
		LowerLeft:  lowerLeft,
	}
}

// RayAt returns the ray through viewport coordinates (u, v), each in [0, 1]
// with (0, 0) at the lower-left corner.
func (c Camera) RayAt(u, v float64) trace.Ray {
	dir := c.LowerLeft.
		Add(c.Horizontal.Scale(u)).
		Add(c.Vertical.Scale(v)).
		Sub(c.Origin)
	return trace.Ray{Orig: c.Origin, Dir: dir}
}
