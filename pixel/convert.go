package pixel

import (
	"image"

	"github.com/BeatGlow/file2png/draw"
)

type opaquer interface {
	Opaque() bool
}

// FromImage returns src as an RGBImage with its bounds moved to the origin.
//
// If src already is an RGBImage anchored at the origin it is returned as-is.
// Opaque images are copied with the Src operator; for images with
// translucent pixels the stored channel values are copied verbatim, without
// premultiplying by alpha.
func FromImage(src image.Image) *RGBImage {
	r := src.Bounds()
	if p, ok := src.(*RGBImage); ok && r.Min == (image.Point{}) {
		return p
	}

	dst := NewRGBImage(r.Dx(), r.Dy())
	if o, ok := src.(opaquer); ok && o.Opaque() {
		draw.Draw(dst, dst.Rect, src, r.Min, draw.Src)
		return dst
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.Set(x-r.Min.X, y-r.Min.Y, src.At(x, y))
		}
	}
	return dst
}
