package core

// Color shares the tuple representation: X, Y, Z hold red, green and blue.
// W is unused and stays 0 for colors built with NewColor.
type Color = Tuple

// Common colors
var (
	Black = NewColor(0, 0, 0)
	White = NewColor(1, 1, 1)
)

// NewColor creates a new color
func NewColor(r, g, b float64) Color {
	return Tuple{X: r, Y: g, Z: b}
}

// Clamp returns a color with components clamped to [min, max]
func (t Tuple) Clamp(minVal, maxVal float64) Color {
	return Tuple{
		X: max(minVal, min(maxVal, t.X)),
		Y: max(minVal, min(maxVal, t.Y)),
		Z: max(minVal, min(maxVal, t.Z)),
	}
}

// Luminance returns the perceptual luminance of an RGB color
func (t Tuple) Luminance() float64 {
	return 0.299*t.X + 0.587*t.Y + 0.114*t.Z
}
