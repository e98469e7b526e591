package world

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// World is the set of shapes and lights being rendered.
// Shape order only affects the order of equal-t intersections.
type World struct {
	Shapes []*geometry.Shape
	Lights []lights.PointLight
}

// New creates an empty world
func New() *World {
	return &World{}
}

// NewDefault creates the two-sphere world used throughout the tests: a
// greenish unit sphere, a half-size sphere inside it, and a white light at
// (-10, 10, -10).
func NewDefault() *World {
	outer := geometry.NewSphere()
	outer.Material = outer.Material.WithColor(core.NewColor(0.8, 1.0, 0.6))
	outer.Material.Diffuse = 0.7
	outer.Material.Specular = 0.2

	inner := geometry.NewSphere()
	_ = inner.SetTransform(core.Scaling(0.5, 0.5, 0.5)) // uniform scaling is invertible

	return &World{
		Shapes: []*geometry.Shape{outer, inner},
		Lights: []lights.PointLight{lights.NewPointLight(core.Point(-10, 10, -10), core.White)},
	}
}

// AddShape appends shapes to the world
func (w *World) AddShape(shapes ...*geometry.Shape) {
	w.Shapes = append(w.Shapes, shapes...)
}

// AddLight appends lights to the world
func (w *World) AddLight(pointLights ...lights.PointLight) {
	w.Lights = append(w.Lights, pointLights...)
}

// Contains reports whether shape is part of the world
func (w *World) Contains(shape *geometry.Shape) bool {
	for _, s := range w.Shapes {
		if s == shape {
			return true
		}
	}
	return false
}

// Intersect intersects ray with every shape and returns the hits sorted by t
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	var xs []geometry.Intersection
	for _, shape := range w.Shapes {
		xs = append(xs, shape.Intersect(ray)...)
	}
	return geometry.NewIntersections(xs...)
}

// IsShadowed reports whether something lies between point and light.
// Callers should pass Computations.OverPoint rather than the raw hit point.
func (w *World) IsShadowed(point core.Tuple, light lights.PointLight) bool {
	direction, distance := light.DirectionFrom(point)
	hit, ok := w.Intersect(core.NewRay(point, direction)).Hit()
	return ok && hit.T < distance
}

// ShadeHit sums the contribution of every light at the hit described by comps
func (w *World) ShadeHit(comps geometry.Computations) core.Color {
	color := core.Black
	for _, light := range w.Lights {
		inShadow := w.IsShadowed(comps.OverPoint, light)
		color = color.Add(comps.Object.Material.Lighting(
			comps.Object, light, comps.Point, comps.EyeV, comps.NormalV, inShadow,
		))
	}
	return color
}

// ColorAt returns the color seen along ray, or black if it hits nothing
func (w *World) ColorAt(ray core.Ray) core.Color {
	hit, ok := w.Intersect(ray).Hit()
	if !ok {
		return core.Black
	}
	return w.ShadeHit(geometry.PrepareComputations(hit, ray))
}
