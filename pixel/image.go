package pixel

import (
	"image"
	"image/color"

	"github.com/BeatGlow/file2png/draw"
)

type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the pixel values of an image.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func makeBuffer(w, h, stride, size int) Buffer {
	return Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, size),
		Stride: stride,
	}
}

// RGBImage is an opaque 24-bit RGB image.
//
// Pixels are stored as R, G, B, A quadruples so the buffer can be shared with
// [image.RGBA]; the A byte is always 0xff.
type RGBImage struct {
	Buffer
}

// NewRGBImage returns an opaque black image of the given size.
func NewRGBImage(w, h int) *RGBImage {
	if w < 0 || h < 0 {
		w, h = 0, 0
	}
	p := &RGBImage{
		Buffer: makeBuffer(w, h, w*4, w*4*h),
	}
	p.Clear()
	return p
}

func (p *RGBImage) ColorModel() color.Model {
	return RGBModel
}

// PixOffset returns the index of the first element of Pix that corresponds to
// the pixel at (x, y).
func (p *RGBImage) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*4
}

func (p *RGBImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return p.RGBAt(x, y)
}

// RGBAt returns the color of the pixel at (x, y), or black when out of bounds.
func (p *RGBImage) RGBAt(x, y int) RGB {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return Black
	}
	i := p.PixOffset(x, y)
	return RGB{R: p.Pix[i], G: p.Pix[i+1], B: p.Pix[i+2]}
}

func (p *RGBImage) Set(x, y int, c color.Color) {
	p.SetRGB(x, y, rgbModel(c).(RGB))
}

// SetRGB sets the pixel at (x, y). Out of bounds coordinates are ignored.
func (p *RGBImage) SetRGB(x, y int, c RGB) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	i := p.PixOffset(x, y)
	p.Pix[i+0] = c.R
	p.Pix[i+1] = c.G
	p.Pix[i+2] = c.B
	p.Pix[i+3] = 0xff
}

// Clear resets all pixels to opaque black.
func (p *RGBImage) Clear() {
	p.Fill(Black)
}

func (p *RGBImage) Fill(c color.Color) {
	v := rgbModel(c).(RGB)
	for i, l := 0, len(p.Pix); i < l; i += 4 {
		p.Pix[i+0] = v.R
		p.Pix[i+1] = v.G
		p.Pix[i+2] = v.B
		p.Pix[i+3] = 0xff
	}
}

// Opaque reports whether the image is fully opaque, which it always is.
func (p *RGBImage) Opaque() bool {
	return true
}

// ToRGBA returns an [image.RGBA] sharing the pixel buffer of p.
func (p *RGBImage) ToRGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    p.Pix,
		Stride: p.Stride,
		Rect:   p.Rect,
	}
}

// Interface checks.
var (
	_ Image = (*RGBImage)(nil)
)
