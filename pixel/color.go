package pixel

import "image/color"

// RGBModel converts colors to opaque 24-bit RGB.
var RGBModel color.Model = color.ModelFunc(rgbModel)

// Black is the padding color.
var Black = RGB{}

// RGB represents an opaque 24-bit color.
type RGB struct {
	R, G, B uint8
}

func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

func rgbModel(c color.Color) color.Color {
	switch c := c.(type) {
	case RGB:
		return c
	case color.RGBA:
		// Take the stored channels as-is, the alpha channel carries no data.
		return RGB{R: c.R, G: c.G, B: c.B}
	case color.NRGBA:
		return RGB{R: c.R, G: c.G, B: c.B}
	default:
		r, g, b, _ := c.RGBA()
		return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
	}
}
