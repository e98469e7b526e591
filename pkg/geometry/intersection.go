package geometry

import (
	"cmp"
	"slices"
)

// Intersection records where along a ray a shape was hit.
// Object is not owned and must outlive the intersection.
type Intersection struct {
	T      float64
	Object *Shape
}

// Intersections is a list of intersections sorted by ascending T
type Intersections []Intersection

// NewIntersections sorts xs by T. Equal values keep their input order.
func NewIntersections(xs ...Intersection) Intersections {
	sorted := Intersections(xs)
	slices.SortStableFunc(sorted, func(a, b Intersection) int {
		return cmp.Compare(a.T, b.T)
	})
	return sorted
}

// Hit returns the first intersection in front of the ray origin (t > 0)
func (xs Intersections) Hit() (Intersection, bool) {
	for _, x := range xs {
		if x.T > 0 {
			return x, true
		}
	}
	return Intersection{}, false
}
