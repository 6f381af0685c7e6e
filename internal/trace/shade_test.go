package trace

import (
	"math"
	"testing"

	"raytracer/internal/mathutil"
)

func colorEqual(a, b mathutil.Color) bool {
	for k := range a {
		if math.Abs(a[k]-b[k]) > epsilon {
			return false
		}
	}
	return true
}

func TestRayColorSphereHit(t *testing.T) {
	// Straight at the sphere center: the normal is (0,0,1), mapped to
	// (0.5, 0.5, 1.0).
	r := Ray{Orig: mathutil.Point3{0, 0, 0}, Dir: mathutil.Vec3{0, 0, -1}}
	got := RayColor(r)
	if want := (mathutil.Color{0.5, 0.5, 1.0}); !colorEqual(got, want) {
		t.Errorf("RayColor = %v, want %v", got, want)
	}
}

func TestRayColorZenith(t *testing.T) {
	r := Ray{Orig: mathutil.Point3{0, 0, 0}, Dir: mathutil.Vec3{0, 1, 0}}
	got := RayColor(r)
	if want := (mathutil.Color{0.5, 0.7, 1.0}); !colorEqual(got, want) {
		t.Errorf("RayColor = %v, want %v", got, want)
	}
}

func TestRayColorHorizonWhite(t *testing.T) {
	r := Ray{Orig: mathutil.Point3{0, 0, 0}, Dir: mathutil.Vec3{0, -1, 0}}
	got := RayColor(r)
	if want := (mathutil.Color{1, 1, 1}); !colorEqual(got, want) {
		t.Errorf("RayColor = %v, want %v", got, want)
	}
}

func TestRayColorGradientMidpoint(t *testing.T) {
	// A level ray that misses the sphere sits exactly halfway up the
	// gradient.
	r := Ray{Orig: mathutil.Point3{0, 0, 0}, Dir: mathutil.Vec3{0, 0, 1}}
	got := RayColor(r)
	if want := (mathutil.Color{0.75, 0.85, 1.0}); !colorEqual(got, want) {
		t.Errorf("RayColor = %v, want %v", got, want)
	}
}
