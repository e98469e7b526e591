package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Computations holds the shading state for a single hit
type Computations struct {
	T       float64
	Object  *Shape
	Point   core.Tuple // World-space hit point
	EyeV    core.Tuple // Toward the viewer
	NormalV core.Tuple // Faces the viewer, flipped when Inside
	Inside  bool       // The ray started inside the object

	// OverPoint sits just above the surface along NormalV. Shadow rays start
	// here so a surface does not shadow itself.
	OverPoint core.Tuple
}

// PrepareComputations derives the shading state for intersection i on ray
func PrepareComputations(i Intersection, ray core.Ray) Computations {
	point := ray.Position(i.T)
	comps := Computations{
		T:       i.T,
		Object:  i.Object,
		Point:   point,
		EyeV:    ray.Direction.Negate(),
		NormalV: i.Object.NormalAt(point),
	}

	if comps.NormalV.Dot(comps.EyeV) < 0 {
		comps.Inside = true
		comps.NormalV = comps.NormalV.Negate()
	}

	comps.OverPoint = point.Add(comps.NormalV.Multiply(core.Epsilon))
	return comps
}
