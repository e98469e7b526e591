package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// NewShadowsScene builds a hand made of stretched spheres that casts a
// shadow puppet onto a flat backdrop.
func NewShadowsScene(cfg Config) (*Scene, error) {
	b := &builder{}

	handMaterial := func(color core.Color) material.Material {
		m := material.Default().WithColor(color)
		m.Ambient = 0.2
		m.Diffuse = 0.8
		m.Specular = 0.3
		return m
	}

	backdrop := b.shape(geometry.NewSphere(), core.Translation(0, 0, 20).Multiply(core.Scaling(200, 200, 0.01)))
	backdrop.Material = material.Default()
	backdrop.Material.Ambient = 0
	backdrop.Material.Diffuse = 0.5
	backdrop.Material.Specular = 0

	parts := []struct {
		color     core.Color
		transform core.Matrix
	}{
		{ // wrist
			core.NewColor(0.1, 1, 1),
			core.RotationZ(math.Pi / 4).Multiply(core.Translation(-4, 0, -21)).Multiply(core.Scaling(3, 3, 3)),
		},
		{ // palm
			core.NewColor(0.1, 0.1, 1),
			core.Translation(0, 0, -15).Multiply(core.Scaling(4, 3, 3)),
		},
		{ // thumb
			core.NewColor(0.1, 0.1, 1),
			core.Translation(-2, 2, -16).Multiply(core.Scaling(1, 3, 1)),
		},
		{ // index
			core.NewColor(1, 1, 0.1),
			core.Translation(3, 2, -22).Multiply(core.Scaling(3, 0.75, 0.75)),
		},
		{ // middle
			core.NewColor(0.1, 1, 0.5),
			core.Translation(4, 1, -19).Multiply(core.Scaling(3, 0.75, 0.75)),
		},
		{ // ring
			core.NewColor(0.1, 1, 0.1),
			core.Translation(4, 0, -18).Multiply(core.Scaling(3, 0.75, 0.75)),
		},
		{ // pinky
			core.NewColor(0.1, 0.5, 1),
			core.Translation(3, -1.5, -20).
				Multiply(core.RotationZ(-math.Pi / 10)).
				Multiply(core.Translation(1, 0, 0)).
				Multiply(core.Scaling(2.5, 0.6, 0.6)),
		},
	}

	w := world.New()
	w.AddShape(backdrop)
	for _, part := range parts {
		s := b.shape(geometry.NewSphere(), part.transform)
		s.Material = handMaterial(part.color)
		w.AddShape(s)
	}
	w.AddLight(lights.NewPointLight(core.Point(0, 0, -100), core.White))

	camera := b.camera(cameraSetup{
		width:       400,
		height:      200,
		fieldOfView: 0.524,
		from:        core.Point(40, 0, -70),
		to:          core.Point(0, 0, -5),
		up:          core.Vector(0, 1, 0),
	}, cfg)
	return b.finish("shadows", w, camera)
}
