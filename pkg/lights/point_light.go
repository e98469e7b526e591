package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// PointLight is an infinitely small light source with no size, emitting
// the same intensity in every direction.
type PointLight struct {
	Position  core.Tuple // World-space position (a point)
	Intensity core.Color // Emitted color and brightness
}

// NewPointLight creates a new point light
func NewPointLight(position core.Tuple, intensity core.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

// DirectionFrom returns the unit vector from point toward the light and the
// distance between them.
func (l PointLight) DirectionFrom(point core.Tuple) (core.Tuple, float64) {
	toLight := l.Position.Subtract(point)
	distance := toLight.Magnitude()
	return toLight.Divide(distance), distance
}
