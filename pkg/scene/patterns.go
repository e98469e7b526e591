package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// NewPatternsScene shows every pattern kind: a checkered floor, a striped
// back wall, and gradient, ring and nested-pattern spheres lit by two lights.
func NewPatternsScene(cfg Config) (*Scene, error) {
	b := &builder{}

	floor := geometry.NewPlane()
	floor.Material = material.Default()
	floor.Material.Pattern = material.NewCheckerPattern(core.NewColor(0.9, 0.9, 0.9), core.NewColor(0.2, 0.2, 0.25))
	floor.Material.Specular = 0

	wall := b.shape(geometry.NewPlane(), core.Translation(0, 0, 6).Multiply(core.RotationX(math.Pi/2)))
	wall.Material = material.Default()
	wall.Material.Pattern = b.pattern(
		material.NewStripePattern(core.NewColor(0.85, 0.75, 0.6), core.NewColor(0.7, 0.55, 0.4)),
		core.RotationY(math.Pi/4).Multiply(core.Scaling(0.5, 0.5, 0.5)),
	)
	wall.Material.Specular = 0

	middle := b.shape(geometry.NewSphere(), core.Translation(-0.5, 1, 0.5))
	middle.Material = coloredMaterial(core.White, 0.7, 0.3)
	middle.Material.Pattern = b.pattern(
		material.NewGradientPattern(core.NewColor(1, 0.2, 0.2), core.NewColor(0.2, 0.2, 1)),
		core.Translation(-1, 0, 0).Multiply(core.Scaling(2, 2, 2)),
	)

	right := b.shape(geometry.NewSphere(), core.Translation(1.5, 0.5, -0.5).Multiply(core.Scaling(0.5, 0.5, 0.5)))
	right.Material = coloredMaterial(core.White, 0.7, 0.3)
	right.Material.Pattern = b.pattern(
		material.NewRingPattern(core.NewColor(0.5, 1, 0.1), core.NewColor(0.1, 0.4, 0.1)),
		core.RotationX(math.Pi/2).Multiply(core.Scaling(0.2, 0.2, 0.2)),
	)

	// Checker cells alternate between fine stripes and a solid
	stripes := b.pattern(
		material.NewStripePattern(core.NewColor(1, 0.8, 0.1), core.NewColor(0.9, 0.4, 0.1)),
		core.Scaling(0.25, 0.25, 0.25),
	)
	nested := b.pattern(
		material.NewPattern(material.PatternChecker, stripes, material.NewSolidPattern(core.NewColor(0.1, 0.1, 0.1))),
		core.Scaling(0.5, 0.5, 0.5),
	)
	left := b.shape(geometry.NewSphere(), core.Translation(-1.5, 0.33, -0.75).Multiply(core.Scaling(0.33, 0.33, 0.33)))
	left.Material = coloredMaterial(core.White, 0.7, 0.3)
	left.Material.Pattern = nested

	w := world.New()
	w.AddShape(floor, wall, middle, right, left)
	w.AddLight(
		lights.NewPointLight(core.Point(-10, 10, -10), core.NewColor(0.8, 0.8, 0.8)),
		lights.NewPointLight(core.Point(5, 6, -8), core.NewColor(0.3, 0.3, 0.35)),
	)

	camera := b.camera(roomCamera(400, 300), cfg)
	return b.finish("patterns", w, camera)
}
