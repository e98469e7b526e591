package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Camera maps pixels of an hsize x vsize image onto rays through a virtual
// image plane one unit in front of the eye. The default transform looks
// down -z from the origin.
type Camera struct {
	hsize       int
	vsize       int
	fieldOfView float64
	transform   core.Matrix
	inverse     core.Matrix
	pixelSize   float64
	halfWidth   float64
	halfHeight  float64
}

// NewCamera creates a camera with the given image size and horizontal or
// vertical field of view (radians), whichever is the longer side.
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)

	var halfWidth, halfHeight float64
	if aspect >= 1 {
		halfWidth = halfView
		halfHeight = halfView / aspect
	} else {
		halfWidth = halfView * aspect
		halfHeight = halfView
	}

	return &Camera{
		hsize:       hsize,
		vsize:       vsize,
		fieldOfView: fieldOfView,
		transform:   core.Identity(),
		inverse:     core.Identity(),
		pixelSize:   halfWidth * 2 / float64(hsize),
		halfWidth:   halfWidth,
		halfHeight:  halfHeight,
	}
}

// HSize returns the image width in pixels
func (c *Camera) HSize() int { return c.hsize }

// VSize returns the image height in pixels
func (c *Camera) VSize() int { return c.vsize }

// FieldOfView returns the field of view in radians
func (c *Camera) FieldOfView() float64 { return c.fieldOfView }

// PixelSize returns the width of one pixel on the image plane
func (c *Camera) PixelSize() float64 { return c.pixelSize }

// Transform returns the world-to-camera (view) transform
func (c *Camera) Transform() core.Matrix { return c.transform }

// SetTransform sets the view transform, usually built with core.ViewTransform
func (c *Camera) SetTransform(m core.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("camera transform: %w", err)
	}
	c.transform = m
	c.inverse = inv
	return nil
}

// RayForPixel returns the world-space ray from the eye through the center of pixel (px, py)
func (c *Camera) RayForPixel(px, py int) core.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// The camera looks toward -z, so +x is to the left
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MultiplyTuple(core.Point(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(core.Point(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}
