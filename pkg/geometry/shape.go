package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Shape is a transformed, materially decorated piece of geometry.
// Transform and Material may be changed while building a scene but must not
// change while a render is in progress.
type Shape struct {
	Material material.Material

	geometry         Geometry
	transform        core.Matrix
	inverse          core.Matrix
	inverseTranspose core.Matrix
}

// NewShape wraps geometry in a shape with the identity transform and the default material
func NewShape(geometry Geometry) *Shape {
	return &Shape{
		Material:         material.Default(),
		geometry:         geometry,
		transform:        core.Identity(),
		inverse:          core.Identity(),
		inverseTranspose: core.Identity(),
	}
}

// Geometry returns the shape's local geometry
func (s *Shape) Geometry() Geometry {
	return s.geometry
}

// Transform returns the object-to-world transform
func (s *Shape) Transform() core.Matrix {
	return s.transform
}

// SetTransform sets the object-to-world transform and refreshes the cached inverses.
// Non-invertible transforms are rejected and leave the shape unchanged.
func (s *Shape) SetTransform(m core.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("shape transform: %w", err)
	}
	s.transform = m
	s.inverse = inv
	s.inverseTranspose = inv.Transpose()
	return nil
}

// WorldToObject converts a world-space point into the shape's local space
func (s *Shape) WorldToObject(worldPoint core.Tuple) core.Tuple {
	return s.inverse.MultiplyTuple(worldPoint)
}

// Intersect returns every intersection of a world-space ray with the shape, unsorted
func (s *Shape) Intersect(ray core.Ray) []Intersection {
	ts := s.geometry.LocalIntersect(ray.Transform(s.inverse))
	if len(ts) == 0 {
		return nil
	}

	xs := make([]Intersection, len(ts))
	for i, t := range ts {
		xs[i] = Intersection{T: t, Object: s}
	}
	return xs
}

// NormalAt returns the unit world-space normal at a world-space point on the surface
func (s *Shape) NormalAt(worldPoint core.Tuple) core.Tuple {
	localPoint := s.inverse.MultiplyTuple(worldPoint)
	localNormal := s.geometry.LocalNormalAt(localPoint)
	worldNormal := s.inverseTranspose.MultiplyTuple(localNormal)
	worldNormal.W = 0
	return worldNormal.Normalize()
}
