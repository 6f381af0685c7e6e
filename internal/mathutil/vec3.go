package mathutil

import "math"

// Vec3 is a 3-component vector (value type, stack-allocated).
// Every operation returns a new value; nothing mutates its receiver.
type Vec3 [3]float64

// Point3 and Color are usage-convention aliases over the same representation.
type (
	Point3 = Vec3
	Color  = Vec3
)

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Mul is the componentwise (Hadamard) product.
func (a Vec3) Mul(b Vec3) Vec3 {
	return Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Div divides by the scalar s. s == 0 yields IEEE Inf/NaN components,
// propagated rather than trapped.
func (v Vec3) Div(s float64) Vec3 {
	return v.Scale(1 / s)
}

func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (v Vec3) LenSquared() float64 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.LenSquared())
}

// Unit returns v scaled to length 1. The zero vector has no unit form;
// its components come back NaN.
func (v Vec3) Unit() Vec3 {
	return v.Div(v.Len())
}

// RGB8 returns the three channels of a color scaled by 255.999 and truncated.
// Components are expected in [0, 1); out-of-range values overflow the byte
// without clamping.
func (c Color) RGB8() (r, g, b uint8) {
	return uint8(255.999 * c[0]), uint8(255.999 * c[1]), uint8(255.999 * c[2])
}
