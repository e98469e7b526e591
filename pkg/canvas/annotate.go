package canvas

import (
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

const captionPadding = 4

// Annotate draws caption on a translucent banner along the bottom of img and
// returns the result. img is left untouched.
func Annotate(img image.Image, caption string) image.Image {
	if caption == "" {
		return img
	}

	dc := gg.NewContextForImage(img)
	face := basicfont.Face7x13
	dc.SetFontFace(face)

	width := float64(dc.Width())
	height := float64(dc.Height())
	bannerHeight := float64(face.Height + 2*captionPadding)

	dc.SetRGBA(0, 0, 0, 0.6)
	dc.DrawRectangle(0, height-bannerHeight, width, bannerHeight)
	dc.Fill()

	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(caption, captionPadding, height-bannerHeight/2, 0, 0.5)

	return dc.Image()
}
