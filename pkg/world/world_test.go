package world

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

func colorClose(a, b core.Color) bool {
	return math.Abs(a.X-b.X) < 1e-4 && math.Abs(a.Y-b.Y) < 1e-4 && math.Abs(a.Z-b.Z) < 1e-4
}

func TestWorld_New(t *testing.T) {
	w := New()
	if len(w.Shapes) != 0 || len(w.Lights) != 0 {
		t.Errorf("Expected empty world, got %d shapes and %d lights", len(w.Shapes), len(w.Lights))
	}
}

func TestWorld_NewDefault(t *testing.T) {
	w := NewDefault()

	if len(w.Lights) != 1 || w.Lights[0].Position != core.Point(-10, 10, -10) || w.Lights[0].Intensity != core.White {
		t.Errorf("Unexpected default lights: %+v", w.Lights)
	}
	if len(w.Shapes) != 2 {
		t.Fatalf("Expected 2 shapes, got %d", len(w.Shapes))
	}

	outer := w.Shapes[0]
	if got := outer.Material.Pattern.At(core.Point(0, 0, 0)); got != core.NewColor(0.8, 1.0, 0.6) {
		t.Errorf("Unexpected outer color %v", got)
	}
	if outer.Material.Diffuse != 0.7 || outer.Material.Specular != 0.2 {
		t.Errorf("Unexpected outer material %+v", outer.Material)
	}
	if w.Shapes[1].Transform() != core.Scaling(0.5, 0.5, 0.5) {
		t.Errorf("Unexpected inner transform %v", w.Shapes[1].Transform())
	}
	if !w.Contains(outer) || w.Contains(geometry.NewSphere()) {
		t.Error("Contains should match shapes by identity")
	}
}

func TestWorld_Intersect(t *testing.T) {
	w := NewDefault()
	xs := w.Intersect(core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1)))

	expected := []float64{4, 4.5, 5.5, 6}
	if len(xs) != len(expected) {
		t.Fatalf("Expected %d intersections, got %d", len(expected), len(xs))
	}
	for i, x := range xs {
		if math.Abs(x.T-expected[i]) > 1e-9 {
			t.Errorf("Intersection %d: expected t=%f, got t=%f", i, expected[i], x.T)
		}
	}
}

func TestWorld_IsShadowed(t *testing.T) {
	w := NewDefault()
	light := w.Lights[0]

	tests := []struct {
		name     string
		point    core.Tuple
		expected bool
	}{
		{"nothing collinear with point and light", core.Point(0, 10, 0), false},
		{"object between point and light", core.Point(10, -10, 10), true},
		{"object behind the light", core.Point(-20, 20, -20), false},
		{"object behind the point", core.Point(-2, 2, -2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.IsShadowed(tt.point, light); got != tt.expected {
				t.Errorf("Expected shadowed=%v, got %v", tt.expected, got)
			}
		})
	}
}

func TestWorld_ShadeHit(t *testing.T) {
	t.Run("outside", func(t *testing.T) {
		w := NewDefault()
		ray := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))
		comps := geometry.PrepareComputations(geometry.Intersection{T: 4, Object: w.Shapes[0]}, ray)
		if got := w.ShadeHit(comps); !colorClose(got, core.NewColor(0.38066, 0.47583, 0.2855)) {
			t.Errorf("Expected (0.38066, 0.47583, 0.2855), got %v", got)
		}
	})

	t.Run("inside", func(t *testing.T) {
		w := NewDefault()
		w.Lights = []lights.PointLight{lights.NewPointLight(core.Point(0, 0.25, 0), core.White)}
		ray := core.NewRay(core.Point(0, 0, 0), core.Vector(0, 0, 1))
		comps := geometry.PrepareComputations(geometry.Intersection{T: 0.5, Object: w.Shapes[1]}, ray)
		if got := w.ShadeHit(comps); !colorClose(got, core.NewColor(0.90498, 0.90498, 0.90498)) {
			t.Errorf("Expected (0.90498, 0.90498, 0.90498), got %v", got)
		}
	})

	t.Run("in shadow", func(t *testing.T) {
		w := New()
		w.AddLight(lights.NewPointLight(core.Point(0, 0, -10), core.White))
		s1 := geometry.NewSphere()
		s2 := geometry.NewSphere()
		if err := s2.SetTransform(core.Translation(0, 0, 10)); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		w.AddShape(s1, s2)

		ray := core.NewRay(core.Point(0, 0, 5), core.Vector(0, 0, 1))
		comps := geometry.PrepareComputations(geometry.Intersection{T: 4, Object: s2}, ray)
		if got := w.ShadeHit(comps); !colorClose(got, core.NewColor(0.1, 0.1, 0.1)) {
			t.Errorf("Expected (0.1, 0.1, 0.1), got %v", got)
		}
	})

	t.Run("lights are additive", func(t *testing.T) {
		w := NewDefault()
		ray := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))
		comps := geometry.PrepareComputations(geometry.Intersection{T: 4, Object: w.Shapes[0]}, ray)
		single := w.ShadeHit(comps)

		w.AddLight(w.Lights[0])
		if got := w.ShadeHit(comps); !colorClose(got, single.Multiply(2)) {
			t.Errorf("Expected two identical lights to double the color, got %v vs %v", got, single)
		}
	})
}

func TestWorld_ColorAt(t *testing.T) {
	t.Run("ray misses", func(t *testing.T) {
		w := NewDefault()
		if got := w.ColorAt(core.NewRay(core.Point(0, 0, -5), core.Vector(0, 1, 0))); got != core.Black {
			t.Errorf("Expected black, got %v", got)
		}
	})

	t.Run("ray hits", func(t *testing.T) {
		w := NewDefault()
		got := w.ColorAt(core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1)))
		if !colorClose(got, core.NewColor(0.38066, 0.47583, 0.2855)) {
			t.Errorf("Expected (0.38066, 0.47583, 0.2855), got %v", got)
		}
	})

	t.Run("intersection behind the ray", func(t *testing.T) {
		w := NewDefault()
		w.Shapes[0].Material.Ambient = 1
		w.Shapes[1].Material.Ambient = 1

		got := w.ColorAt(core.NewRay(core.Point(0, 0, 0.75), core.Vector(0, 0, -1)))
		expected := w.Shapes[1].Material.Pattern.At(core.Point(0, 0, 0))
		if !colorClose(got, expected) {
			t.Errorf("Expected inner sphere color %v, got %v", expected, got)
		}
	})
}
