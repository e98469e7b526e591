package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name   string
	World  *world.World
	Camera *renderer.Camera
}

// Config overrides a scene's default image size and field of view.
// Zero values keep the scene's own defaults.
type Config struct {
	Width       int
	Height      int
	FieldOfView float64 // Radians
}

// cameraSetup is a scene's default camera placement
type cameraSetup struct {
	width, height int
	fieldOfView   float64
	from, to, up  core.Tuple
}

// builder collects the first error raised while assembling a scene so scene
// constructors can be written as straight-line code.
type builder struct {
	err error
}

// shape applies transform to s and returns it
func (b *builder) shape(s *geometry.Shape, transform core.Matrix) *geometry.Shape {
	if b.err == nil {
		b.err = s.SetTransform(transform)
	}
	return s
}

// pattern applies transform to p and returns it
func (b *builder) pattern(p *material.Pattern, transform core.Matrix) *material.Pattern {
	if b.err == nil {
		b.err = p.SetTransform(transform)
	}
	return p
}

// camera creates the scene camera, letting cfg override the defaults
func (b *builder) camera(setup cameraSetup, cfg Config) *renderer.Camera {
	width, height, fov := setup.width, setup.height, setup.fieldOfView
	if cfg.Width > 0 {
		width = cfg.Width
	}
	if cfg.Height > 0 {
		height = cfg.Height
	}
	if cfg.FieldOfView > 0 {
		fov = cfg.FieldOfView
	}

	camera := renderer.NewCamera(width, height, fov)
	if b.err != nil {
		return camera
	}

	view, err := core.ViewTransform(setup.from, setup.to, setup.up)
	if err != nil {
		b.err = err
		return camera
	}
	b.err = camera.SetTransform(view)
	return camera
}

// finish returns the scene, or the first error recorded while building it
func (b *builder) finish(name string, w *world.World, camera *renderer.Camera) (*Scene, error) {
	if b.err != nil {
		return nil, b.err
	}
	return &Scene{Name: name, World: w, Camera: camera}, nil
}

// coloredMaterial returns the default material in color with the given diffuse and specular terms
func coloredMaterial(color core.Color, diffuse, specular float64) material.Material {
	m := material.Default().WithColor(color)
	m.Diffuse = diffuse
	m.Specular = specular
	return m
}
