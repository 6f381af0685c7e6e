package trace

import "raytracer/internal/mathutil"

// RayColor returns the color seen along r: normal shading where the ray hits
// the scene's one sphere, a vertical white-to-blue sky gradient otherwise.
func RayColor(r Ray) mathutil.Color {
	sphere := Sphere{Center: mathutil.Point3{0, 0, -1}, Radius: 0.5}
	white := mathutil.Color{1, 1, 1}

	if t := sphere.Hit(r); t > 0 {
		// Map each normal component from [-1, 1] to [0, 1].
		n := sphere.UnitNormal(r, t)
		return n.Add(white).Scale(0.5)
	}

	unitDir := r.Dir.Unit()
	t := 0.5 * (unitDir[1] + 1.0)
	skyBlue := mathutil.Color{0.5, 0.7, 1.0}
	return white.Scale(1 - t).Add(skyBlue.Scale(t))
}
