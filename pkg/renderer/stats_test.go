package renderer

import (
	"testing"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestAverageLuminance(t *testing.T) {
	// Red, green, blue and black
	c := canvas.New(2, 2)
	c.WritePixel(0, 0, core.NewColor(1, 0, 0))
	c.WritePixel(1, 0, core.NewColor(0, 1, 0))
	c.WritePixel(0, 1, core.NewColor(0, 0, 1))

	expected := (0.299 + 0.587 + 0.114) / 4
	if got := AverageLuminance(c); got < expected-1e-9 || got > expected+1e-9 {
		t.Errorf("Expected average luminance %f, got %f", expected, got)
	}

	if got := AverageLuminance(canvas.New(0, 0)); got != 0 {
		t.Errorf("Expected 0 for an empty canvas, got %f", got)
	}
}

func TestRenderStats_PixelsPerSecond(t *testing.T) {
	stats := RenderStats{TotalPixels: 1000, Elapsed: 2 * time.Second}
	if got := stats.PixelsPerSecond(); got != 500 {
		t.Errorf("Expected 500, got %f", got)
	}
	if got := (RenderStats{TotalPixels: 10}).PixelsPerSecond(); got != 0 {
		t.Errorf("Expected 0 with no elapsed time, got %f", got)
	}
}
