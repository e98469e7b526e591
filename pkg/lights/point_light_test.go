package lights

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestPointLight_NewPointLight(t *testing.T) {
	position := core.Point(0, 0, 0)
	intensity := core.NewColor(1, 1, 1)

	light := NewPointLight(position, intensity)

	if light.Position != position {
		t.Errorf("Expected position %v, got %v", position, light.Position)
	}
	if light.Intensity != intensity {
		t.Errorf("Expected intensity %v, got %v", intensity, light.Intensity)
	}
}

func TestPointLight_DirectionFrom(t *testing.T) {
	light := NewPointLight(core.Point(0, 10, 0), core.White)

	tests := []struct {
		name              string
		point             core.Tuple
		expectedDirection core.Tuple
		expectedDistance  float64
	}{
		{"directly below", core.Point(0, 0, 0), core.Vector(0, 1, 0), 10},
		{"diagonal", core.Point(10, 0, 0), core.Vector(-math.Sqrt2/2, math.Sqrt2/2, 0), 10 * math.Sqrt2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			direction, distance := light.DirectionFrom(tt.point)
			if !direction.ApproxEqual(tt.expectedDirection) {
				t.Errorf("Expected direction %v, got %v", tt.expectedDirection, direction)
			}
			if math.Abs(distance-tt.expectedDistance) > 1e-9 {
				t.Errorf("Expected distance %f, got %f", tt.expectedDistance, distance)
			}
		})
	}
}
