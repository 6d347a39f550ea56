package file2png

import (
	"image"
	"io"

	"go.uber.org/zap"
)

// Config is the stream configuration.
type Config struct {
	// Format of the image container. When decoding, Auto detects the format.
	Format Format

	// Compression preference of the image container when encoding.
	Compression Compression
}

// DefaultConfig writes default-compressed PNG and detects the format on read.
var DefaultConfig = Config{
	Format:      Auto,
	Compression: DefaultCompression,
}

// EncodeStream reads r to the end and writes it to w as an encoded image.
func EncodeStream(r io.Reader, w io.Writer, config *Config) error {
	if config == nil {
		config = &DefaultConfig
	}

	c, err := NewContainer(config.Format, config.Compression)
	if err != nil {
		return err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return &IOError{Op: "read input", Err: err}
	}

	img := Encode(data)
	Logger().Debug("encoded payload",
		zap.Int("bytes", len(data)),
		zap.Int("dimension", img.Rect.Dx()),
		zap.Stringer("format", c.Format()),
		zap.Stringer("compression", config.Compression))

	if err = c.Encode(w, img); err != nil {
		return &IOError{Op: "write " + c.Format().String(), Err: err}
	}
	return nil
}

// DecodeStream reads an encoded image from r and writes the payload to w.
//
// Nothing is written to w unless the whole payload was decoded.
func DecodeStream(r io.Reader, w io.Writer, config *Config) error {
	if config == nil {
		config = &DefaultConfig
	}

	data, err := decodeStream(r, config.Format)
	if err != nil {
		return err
	}

	if _, err = w.Write(data); err != nil {
		return &IOError{Op: "write output", Err: err}
	}
	return nil
}

func decodeStream(r io.Reader, f Format) ([]byte, error) {
	img, f, err := readImage(r, f)
	if err != nil {
		return nil, err
	}

	data, err := Decode(img)
	if err != nil {
		Logger().Debug("decode failed", zap.Stringer("format", f), zap.Error(err))
		return nil, err
	}
	Logger().Debug("decoded payload",
		zap.Int("bytes", len(data)),
		zap.Int("dimension", img.Bounds().Dx()),
		zap.Stringer("format", f))
	return data, nil
}

// Inspect reads an encoded image from r and returns its length header.
func Inspect(r io.Reader, config *Config) (Header, error) {
	if config == nil {
		config = &DefaultConfig
	}

	img, _, err := readImage(r, config.Format)
	if err != nil {
		return Header{}, err
	}
	return ReadHeader(img)
}

func readImage(r io.Reader, f Format) (img image.Image, format Format, err error) {
	if f == Auto {
		img, format, err = DecodeImage(r)
	} else {
		var c Container
		if c, err = NewContainer(f, DefaultCompression); err != nil {
			return nil, f, err
		}
		img, err = c.Decode(r)
		format = f
	}
	if err != nil {
		return nil, format, &IOError{Op: "read " + format.String(), Err: err}
	}
	return img, format, nil
}
