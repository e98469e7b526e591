package renderer

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestCamera_New(t *testing.T) {
	c := NewCamera(160, 120, math.Pi/2)
	if c.HSize() != 160 || c.VSize() != 120 || c.FieldOfView() != math.Pi/2 {
		t.Errorf("Unexpected camera %+v", c)
	}
	if c.Transform() != core.Identity() {
		t.Errorf("Expected identity transform, got %v", c.Transform())
	}
}

func TestCamera_PixelSize(t *testing.T) {
	tests := []struct {
		name         string
		hsize, vsize int
	}{
		{"horizontal canvas", 200, 125},
		{"vertical canvas", 125, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera(tt.hsize, tt.vsize, math.Pi/2)
			if math.Abs(c.PixelSize()-0.01) > 1e-9 {
				t.Errorf("Expected pixel size 0.01, got %f", c.PixelSize())
			}
		})
	}
}

func TestCamera_RayForPixel(t *testing.T) {
	s := math.Sqrt2 / 2

	tests := []struct {
		name      string
		transform core.Matrix
		px, py    int
		origin    core.Tuple
		direction core.Tuple
	}{
		{
			name:      "through the center",
			transform: core.Identity(),
			px:        100,
			py:        50,
			origin:    core.Point(0, 0, 0),
			direction: core.Vector(0, 0, -1),
		},
		{
			name:      "through a corner",
			transform: core.Identity(),
			px:        0,
			py:        0,
			origin:    core.Point(0, 0, 0),
			direction: core.Vector(0.66519, 0.33259, -0.66851),
		},
		{
			name:      "transformed camera",
			transform: core.RotationY(math.Pi / 4).Multiply(core.Translation(0, -2, 5)),
			px:        100,
			py:        50,
			origin:    core.Point(0, 2, -5),
			direction: core.Vector(s, 0, -s),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera(201, 101, math.Pi/2)
			if err := c.SetTransform(tt.transform); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			ray := c.RayForPixel(tt.px, tt.py)
			if !ray.Origin.ApproxEqual(tt.origin) {
				t.Errorf("Expected origin %v, got %v", tt.origin, ray.Origin)
			}
			if !ray.Direction.ApproxEqual(tt.direction) {
				t.Errorf("Expected direction %v, got %v", tt.direction, ray.Direction)
			}
		})
	}
}

func TestCamera_SetTransformRejectsSingular(t *testing.T) {
	c := NewCamera(10, 10, math.Pi/2)
	if err := c.SetTransform(core.Scaling(0, 0, 0)); !errors.Is(err, core.ErrSingularMatrix) {
		t.Errorf("Expected ErrSingularMatrix, got %v", err)
	}
	if c.Transform() != core.Identity() {
		t.Error("Rejected transform should not be applied")
	}
}
