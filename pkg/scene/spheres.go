package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// NewSpheresScene builds three spheres in a room whose floor and walls are
// flattened spheres.
func NewSpheresScene(cfg Config) (*Scene, error) {
	b := &builder{}

	wallMaterial := coloredMaterial(core.NewColor(1, 0.9, 0.9), 0.9, 0)
	flat := core.Scaling(10, 0.01, 10)

	floor := b.shape(geometry.NewSphere(), flat)
	floor.Material = wallMaterial

	leftWall := b.shape(geometry.NewSphere(), core.Translation(0, 0, 5).
		Multiply(core.RotationY(-math.Pi/4)).
		Multiply(core.RotationX(math.Pi/2)).
		Multiply(flat))
	leftWall.Material = wallMaterial

	rightWall := b.shape(geometry.NewSphere(), core.Translation(0, 0, 5).
		Multiply(core.RotationY(math.Pi/4)).
		Multiply(core.RotationX(math.Pi/2)).
		Multiply(flat))
	rightWall.Material = wallMaterial

	w := world.New()
	w.AddShape(floor, leftWall, rightWall)
	w.AddShape(threeSpheres(b)...)
	w.AddLight(lights.NewPointLight(core.Point(-10, 10, -10), core.White))

	camera := b.camera(roomCamera(100, 50), cfg)
	return b.finish("spheres", w, camera)
}

// threeSpheres returns the large middle sphere and the two smaller ones either side of it
func threeSpheres(b *builder) []*geometry.Shape {
	middle := b.shape(geometry.NewSphere(), core.Translation(-0.5, 1, 0.5))
	middle.Material = coloredMaterial(core.NewColor(0.1, 1, 0.5), 0.7, 0.3)

	right := b.shape(geometry.NewSphere(), core.Translation(1.5, 0.5, -0.5).
		Multiply(core.Scaling(0.5, 0.5, 0.5)))
	right.Material = coloredMaterial(core.NewColor(0.5, 1, 0.1), 0.7, 0.3)

	left := b.shape(geometry.NewSphere(), core.Translation(-1.5, 0.33, -0.75).
		Multiply(core.Scaling(0.33, 0.33, 0.33)))
	left.Material = coloredMaterial(core.NewColor(1, 0.8, 0.1), 0.7, 0.3)

	return []*geometry.Shape{middle, right, left}
}

// roomCamera looks slightly down into the room from just above the floor
func roomCamera(width, height int) cameraSetup {
	return cameraSetup{
		width:       width,
		height:      height,
		fieldOfView: math.Pi / 3,
		from:        core.Point(0, 1.5, -5),
		to:          core.Point(0, 1, 0),
		up:          core.Vector(0, 1, 0),
	}
}
