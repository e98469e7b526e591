package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Canvas is a row-major grid of unclamped colors.
// Writers working on disjoint pixels may run concurrently.
type Canvas struct {
	width  int
	height int
	pixels []core.Color
}

// New creates a black canvas
func New(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels
func (c *Canvas) Height() int {
	return c.height
}

// PixelAt returns the color at (x, y)
func (c *Canvas) PixelAt(x, y int) core.Color {
	return c.pixels[y*c.width+x]
}

// WritePixel stores color at (x, y)
func (c *Canvas) WritePixel(x, y int, color core.Color) {
	c.pixels[y*c.width+x] = color
}

// Image converts the whole canvas to 8-bit RGBA
func (c *Canvas) Image() *image.RGBA {
	return c.Region(image.Rect(0, 0, c.width, c.height))
}

// Region converts the pixels inside bounds to an 8-bit RGBA image whose
// origin is at (0, 0).
func (c *Canvas) Region(bounds image.Rectangle) *image.RGBA {
	bounds = bounds.Intersect(image.Rect(0, 0, c.width, c.height))
	img := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.SetRGBA(x-bounds.Min.X, y-bounds.Min.Y, ToRGBA(c.PixelAt(x, y)))
		}
	}
	return img
}

// ToRGBA clamps a color to [0, 1] and scales it to 8 bits per channel
func ToRGBA(c core.Color) color.RGBA {
	return color.RGBA{
		R: channelByte(c.X),
		G: channelByte(c.Y),
		B: channelByte(c.Z),
		A: 255,
	}
}

func channelByte(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
