package file2png

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/BeatGlow/file2png/pixel"
)

// Format selects an image container.
type Format uint8

// Supported formats.
const (
	Auto Format = iota // PNG when writing, detected by signature when reading
	PNG
	TIFF
	BMP
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case TIFF:
		return "tiff"
	case BMP:
		return "bmp"
	default:
		return "auto"
	}
}

// ParseFormat parses a format name as returned by [Format.String].
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return Auto, nil
	case "png":
		return PNG, nil
	case "tif", "tiff":
		return TIFF, nil
	case "bmp":
		return BMP, nil
	default:
		return Auto, fmt.Errorf("%w %q", ErrFormat, s)
	}
}

// Compression is the container compression preference.
type Compression uint8

// Compression levels. BMP is always stored uncompressed.
const (
	DefaultCompression Compression = iota
	NoCompression
	BestSpeed
	BestCompression
)

func (c Compression) String() string {
	switch c {
	case NoCompression:
		return "none"
	case BestSpeed:
		return "speed"
	case BestCompression:
		return "best"
	default:
		return "default"
	}
}

// ParseCompression parses a compression name as returned by [Compression.String].
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(s) {
	case "", "default":
		return DefaultCompression, nil
	case "none":
		return NoCompression, nil
	case "speed", "fast":
		return BestSpeed, nil
	case "best":
		return BestCompression, nil
	default:
		return DefaultCompression, fmt.Errorf("file2png: unknown compression %q", s)
	}
}

// Container reads and writes lossless raster images.
type Container interface {
	// Format of the container.
	Format() Format

	// Encode writes img to w.
	Encode(w io.Writer, img *pixel.RGBImage) error

	// Decode reads an image from r.
	Decode(r io.Reader) (image.Image, error)
}

// NewContainer returns the container for f. Auto selects PNG.
func NewContainer(f Format, c Compression) (Container, error) {
	switch f {
	case Auto, PNG:
		return pngContainer{level: pngLevel(c)}, nil
	case TIFF:
		return tiffContainer{compression: tiffCompression(c)}, nil
	case BMP:
		return bmpContainer{}, nil
	default:
		return nil, fmt.Errorf("%w %d", ErrFormat, f)
	}
}

// DecodeImage reads an image in any supported format, detected by signature.
func DecodeImage(r io.Reader) (image.Image, Format, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		return nil, Auto, err
	}
	f, err := ParseFormat(name)
	if err != nil {
		return nil, Auto, err
	}
	return img, f, nil
}

type pngContainer struct {
	level png.CompressionLevel
}

func (pngContainer) Format() Format { return PNG }

func (c pngContainer) Encode(w io.Writer, img *pixel.RGBImage) error {
	enc := &png.Encoder{CompressionLevel: c.level}
	return enc.Encode(w, img.ToRGBA())
}

func (pngContainer) Decode(r io.Reader) (image.Image, error) {
	return png.Decode(r)
}

func pngLevel(c Compression) png.CompressionLevel {
	switch c {
	case NoCompression:
		return png.NoCompression
	case BestSpeed:
		return png.BestSpeed
	case BestCompression:
		return png.BestCompression
	default:
		return png.DefaultCompression
	}
}

type tiffContainer struct {
	compression tiff.CompressionType
}

func (tiffContainer) Format() Format { return TIFF }

func (c tiffContainer) Encode(w io.Writer, img *pixel.RGBImage) error {
	return tiff.Encode(w, img.ToRGBA(), &tiff.Options{Compression: c.compression})
}

func (tiffContainer) Decode(r io.Reader) (image.Image, error) {
	return tiff.Decode(r)
}

func tiffCompression(c Compression) tiff.CompressionType {
	if c == NoCompression {
		return tiff.Uncompressed
	}
	return tiff.Deflate
}

type bmpContainer struct{}

func (bmpContainer) Format() Format { return BMP }

func (bmpContainer) Encode(w io.Writer, img *pixel.RGBImage) error {
	return bmp.Encode(w, img.ToRGBA())
}

func (bmpContainer) Decode(r io.Reader) (image.Image, error) {
	return bmp.Decode(r)
}
