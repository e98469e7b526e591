package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// NewPlaneScene builds the three spheres standing on an infinite floor plane
func NewPlaneScene(cfg Config) (*Scene, error) {
	b := &builder{}

	floor := geometry.NewPlane()
	floor.Material = coloredMaterial(core.NewColor(1, 0.9, 0.9), 0.9, 0)

	w := world.New()
	w.AddShape(floor)
	w.AddShape(threeSpheres(b)...)
	w.AddLight(lights.NewPointLight(core.Point(-10, 10, -10), core.White))

	camera := b.camera(roomCamera(400, 300), cfg)
	return b.finish("plane", w, camera)
}
