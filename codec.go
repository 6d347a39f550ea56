package file2png

import (
	"encoding/binary"
	"image"
	"math"

	"github.com/BeatGlow/file2png/pixel"
)

const (
	// HeaderSize is the size of the little-endian payload length header.
	HeaderSize = 8

	// channels carrying data per pixel (red, green, blue).
	channels = 3
)

// Header is the decoded length header of an image.
type Header struct {
	// Length of the payload in bytes.
	Length uint64

	// Dimension is the image width (and height) in pixels.
	Dimension int

	// Capacity is the number of payload bytes the image can hold.
	Capacity uint64
}

// Dimension returns the side length of the smallest square image that holds
// the length header plus n payload bytes, three bytes per pixel.
func Dimension(n int) int {
	pixels := (uint64(n) + HeaderSize + channels - 1) / channels
	return int(ceilSqrt(pixels))
}

// ceilSqrt returns the smallest r with r*r >= v.
func ceilSqrt(v uint64) uint64 {
	if v == 0 {
		return 0
	}
	r := uint64(math.Sqrt(float64(v)))
	// math.Sqrt rounds; step to the exact integer root.
	for r > 0 && r*r >= v {
		r--
	}
	for r*r < v {
		r++
	}
	return r
}

// Encode packs data into a new opaque square image.
func Encode(data []byte) *pixel.RGBImage {
	var (
		d   = Dimension(len(data))
		img = pixel.NewRGBImage(d, d)
		hdr [HeaderSize]byte
	)
	binary.LittleEndian.PutUint64(hdr[:], uint64(len(data)))

	for k, b := range hdr {
		img.Pix[channelOffset(img, k)] = b
	}
	for i, b := range data {
		img.Pix[channelOffset(img, HeaderSize+i)] = b
	}
	return img
}

// Decode extracts the payload from an image produced by Encode.
//
// Channels beyond the declared payload length are ignored.
func Decode(img image.Image) ([]byte, error) {
	if err := checkGeometry(img.Bounds()); err != nil {
		return nil, err
	}

	p := pixel.FromImage(img)
	h, err := readHeader(p)
	if err != nil {
		return nil, err
	}

	data := make([]byte, h.Length)
	for i := range data {
		data[i] = p.Pix[channelOffset(p, HeaderSize+i)]
	}
	return data, nil
}

// ReadHeader returns the length header of img without extracting the payload.
func ReadHeader(img image.Image) (Header, error) {
	if err := checkGeometry(img.Bounds()); err != nil {
		return Header{}, err
	}
	return readHeader(pixel.FromImage(img))
}

func readHeader(p *pixel.RGBImage) (Header, error) {
	var hdr [HeaderSize]byte
	for k := range hdr {
		hdr[k] = p.Pix[channelOffset(p, k)]
	}

	var (
		d = p.Rect.Dx()
		h = Header{
			Length:    binary.LittleEndian.Uint64(hdr[:]),
			Dimension: d,
			Capacity:  capacity(d, d) - HeaderSize,
		}
	)
	if h.Length > h.Capacity {
		expected := h.Length + HeaderSize
		if expected < h.Length {
			expected = math.MaxUint64
		}
		return h, &FormatError{
			Kind:     ErrTruncatedImage,
			Width:    d,
			Height:   d,
			Expected: expected,
			Actual:   capacity(d, d),
			Reason:   "declared length exceeds image capacity",
		}
	}
	return h, nil
}

func checkGeometry(r image.Rectangle) error {
	w, h := r.Dx(), r.Dy()
	switch {
	case w != h:
		return malformed(w, h, 0, 0, "image is not square")
	case w <= 0:
		return malformed(w, h, 0, 0, "image is empty")
	case capacity(w, h) < HeaderSize:
		return malformed(w, h, HeaderSize, capacity(w, h), "image too small for length header")
	}
	return nil
}

// capacity is the number of data channels in a w×h image.
func capacity(w, h int) uint64 {
	return uint64(w) * uint64(h) * channels
}

// channelOffset maps virtual byte offset k to its index in p.Pix.
func channelOffset(p *pixel.RGBImage, k int) int {
	var (
		d = p.Rect.Dx()
		i = k / channels
	)
	return p.PixOffset(p.Rect.Min.X+i%d, p.Rect.Min.Y+i/d) + k%channels
}
