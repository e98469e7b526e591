package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Plane is the local xz plane (y = 0), infinite in x and z
type Plane struct{}

// NewPlane creates a shape holding an xz plane
func NewPlane() *Shape {
	return NewShape(Plane{})
}

// LocalIntersect returns the single crossing point, or nothing for parallel and coplanar rays
func (Plane) LocalIntersect(ray core.Ray) []float64 {
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}
	return []float64{-ray.Origin.Y / ray.Direction.Y}
}

// LocalNormalAt is constant across the plane
func (Plane) LocalNormalAt(point core.Tuple) core.Tuple {
	return core.Vector(0, 1, 0)
}
