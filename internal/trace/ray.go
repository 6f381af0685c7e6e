// Package trace holds the ray model and the per-ray shading rule.
package trace

import "raytracer/internal/mathutil"

// Ray is an origin point plus a direction vector. The direction is not
// required to be normalized.
type Ray struct {
	Orig mathutil.Point3
	Dir  mathutil.Vec3
}

// At returns the point along the ray at parameter t.
func (r Ray) At(t float64) mathutil.Point3 {
	return r.Orig.Add(r.Dir.Scale(t))
}
