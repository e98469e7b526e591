package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// Material holds Phong reflection coefficients and the pattern that colors the surface
type Material struct {
	Pattern   *Pattern
	Ambient   float64 // Fraction of light reflected regardless of direction
	Diffuse   float64 // Matte reflection, scaled by the angle to the light
	Specular  float64 // Highlight intensity
	Shininess float64 // Highlight tightness; larger is smaller and sharper
}

// Default returns a white material with ambient 0.1, diffuse 0.9, specular 0.9 and shininess 200
func Default() Material {
	return Material{
		Pattern:   NewSolidPattern(core.White),
		Ambient:   0.1,
		Diffuse:   0.9,
		Specular:  0.9,
		Shininess: 200,
	}
}

// WithColor returns a copy of m painted in a single solid color
func (m Material) WithColor(color core.Color) Material {
	m.Pattern = NewSolidPattern(color)
	return m
}

// Lighting shades point on obj as seen along eye using the Phong model.
// Diffuse and specular terms are dropped when inShadow is set or the light
// is behind the surface. The result is not clamped.
func (m Material) Lighting(obj ObjectSpace, light lights.PointLight, point, eye, normal core.Tuple, inShadow bool) core.Color {
	color := m.Pattern.AtShape(obj, point)
	effective := color.Hadamard(light.Intensity)
	ambient := effective.Multiply(m.Ambient)

	if inShadow {
		return ambient
	}

	lightDir := light.Position.Subtract(point).Normalize()
	lightDotNormal := lightDir.Dot(normal)
	if lightDotNormal < 0 {
		return ambient
	}

	diffuse := effective.Multiply(m.Diffuse * lightDotNormal)

	specular := core.Black
	reflectDir := lightDir.Negate().Reflect(normal)
	if reflectDotEye := reflectDir.Dot(eye); reflectDotEye >= 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Multiply(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
