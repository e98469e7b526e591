package renderer

import (
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
)

// RenderStats contains statistics about a finished render
type RenderStats struct {
	RenderID         string        // Unique ID used to correlate log lines
	Width            int           // Image width
	Height           int           // Image height
	TotalPixels      int           // Number of pixels shaded
	Tiles            int           // Number of tiles rendered
	Workers          int           // Number of parallel workers
	Lights           int           // Lights in the world
	Shapes           int           // Shapes in the world
	Elapsed          time.Duration // Wall-clock render time
	AverageLuminance float64       // Mean luminance of the unclamped output
}

// PixelsPerSecond returns the render throughput
func (s RenderStats) PixelsPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalPixels) / s.Elapsed.Seconds()
}

// AverageLuminance returns the mean luminance over every pixel of c
func AverageLuminance(c *canvas.Canvas) float64 {
	total := c.Width() * c.Height()
	if total == 0 {
		return 0
	}

	sum := 0.0
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			sum += c.PixelAt(x, y).Luminance()
		}
	}
	return sum / float64(total)
}
