package trace

import (
	"math"

	"raytracer/internal/mathutil"
)

// Sphere is an analytic sphere.
type Sphere struct {
	Center mathutil.Point3
	Radius float64
}

// Hit returns the smallest ray parameter at which r intersects the sphere,
// or -1 if it misses. Only the near root of the quadratic is considered;
// callers must treat t <= 0 as no visible hit.
func (s Sphere) Hit(r Ray) float64 {
	oc := r.Orig.Sub(s.Center)
	a := r.Dir.LenSquared()
	halfB := oc.Dot(r.Dir)
	c := oc.LenSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return -1
	}
	return (-halfB - math.Sqrt(discriminant)) / a
}

// UnitNormal returns the outward unit normal at the point r.At(t).
func (s Sphere) UnitNormal(r Ray, t float64) mathutil.Vec3 {
	return r.At(t).Sub(s.Center).Unit()
}
