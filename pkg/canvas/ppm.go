package canvas

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"
)

// maxPPMLine keeps every PPM line, newline included, within 70 characters
const maxPPMLine = 69

// ppmWriter packs space-separated tokens into lines no longer than maxPPMLine
type ppmWriter struct {
	w    *bufio.Writer
	line []byte
}

func (p *ppmWriter) token(s string) {
	if len(p.line) > 0 && len(p.line)+1+len(s) > maxPPMLine {
		p.newLine()
	}
	if len(p.line) > 0 {
		p.line = append(p.line, ' ')
	}
	p.line = append(p.line, s...)
}

func (p *ppmWriter) newLine() {
	p.line = append(p.line, '\n')
	p.w.Write(p.line)
	p.line = p.line[:0]
}

// WritePPM writes the canvas as a plain (P3) PPM image. Channels are clamped
// and rounded to 0..255.
func (c *Canvas) WritePPM(w io.Writer) error {
	return EncodePPM(w, c.Image())
}

// EncodePPM writes img as a plain (P3) PPM with a maximum value of 255.
// Each row starts on a new line, no line exceeds 70 characters and the
// output ends with a newline.
func EncodePPM(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	buf := bufio.NewWriter(w)
	fmt.Fprintf(buf, "P3\n%d %d\n255\n", bounds.Dx(), bounds.Dy())

	p := &ppmWriter{w: buf, line: make([]byte, 0, maxPPMLine+1)}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rgba := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			p.token(strconv.Itoa(int(rgba.R)))
			p.token(strconv.Itoa(int(rgba.G)))
			p.token(strconv.Itoa(int(rgba.B)))
		}
		if len(p.line) > 0 {
			p.newLine()
		}
	}

	if err := buf.Flush(); err != nil {
		return fmt.Errorf("failed to write PPM: %w", err)
	}
	return nil
}
