package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// NewDefaultWorldScene wraps world.NewDefault with the camera used to check
// it: looking at the origin from (0, 0, -5).
func NewDefaultWorldScene(cfg Config) (*Scene, error) {
	b := &builder{}
	camera := b.camera(cameraSetup{
		width:       11,
		height:      11,
		fieldOfView: math.Pi / 2,
		from:        core.Point(0, 0, -5),
		to:          core.Point(0, 0, 0),
		up:          core.Vector(0, 1, 0),
	}, cfg)
	return b.finish("default-world", world.NewDefault(), camera)
}
