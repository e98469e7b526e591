package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Geometry is the shape-specific part of a Shape. Both methods work in the
// shape's local space; Shape handles the conversion to and from world space.
type Geometry interface {
	// LocalIntersect returns the t values where the ray meets the surface, in no particular order
	LocalIntersect(ray core.Ray) []float64
	// LocalNormalAt returns the outward surface normal at a point on the surface
	LocalNormalAt(point core.Tuple) core.Tuple
}
