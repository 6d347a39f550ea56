package file2png

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"", Auto},
		{"auto", Auto},
		{"png", PNG},
		{"PNG", PNG},
		{"tif", TIFF},
		{"tiff", TIFF},
		{"bmp", BMP},
	}
	for _, test := range tests {
		f, err := ParseFormat(test.in)
		if err != nil {
			t.Errorf("ParseFormat(%q): unexpected error: %v", test.in, err)
			continue
		}
		if f != test.want {
			t.Errorf("ParseFormat(%q): expected %s, got %s", test.in, test.want, f)
		}
	}

	if _, err := ParseFormat("jpeg"); !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat for jpeg, got %v", err)
	}
}

func TestParseCompression(t *testing.T) {
	for _, c := range []Compression{DefaultCompression, NoCompression, BestSpeed, BestCompression} {
		v, err := ParseCompression(c.String())
		if err != nil {
			t.Errorf("ParseCompression(%q): unexpected error: %v", c, err)
		}
		if v != c {
			t.Errorf("ParseCompression(%q): expected %s, got %s", c, c, v)
		}
	}
	if _, err := ParseCompression("ultra"); err == nil {
		t.Error("expected error for unknown compression")
	}
}

func TestNewContainer(t *testing.T) {
	for _, f := range []Format{Auto, PNG, TIFF, BMP} {
		c, err := NewContainer(f, DefaultCompression)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", f, err)
		}
		want := f
		if f == Auto {
			want = PNG
		}
		if c.Format() != want {
			t.Errorf("%s: expected container format %s, got %s", f, want, c.Format())
		}
	}
	if _, err := NewContainer(Format(42), DefaultCompression); !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
}

func TestContainerRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	payloads := [][]byte{
		{},
		{0x41, 0x42, 0x43},
		testRandomBytes(r, 8),
		testRandomBytes(r, 1000),
		testRandomBytes(r, 30001),
	}

	for _, f := range []Format{PNG, TIFF, BMP} {
		for _, level := range []Compression{DefaultCompression, NoCompression, BestSpeed, BestCompression} {
			t.Run(f.String()+"/"+level.String(), func(it *testing.T) {
				c, err := NewContainer(f, level)
				if err != nil {
					it.Fatal(err)
				}
				for _, data := range payloads {
					var buf bytes.Buffer
					if err = c.Encode(&buf, Encode(data)); err != nil {
						it.Fatalf("n=%d: encode failed: %v", len(data), err)
					}
					encoded := buf.Bytes()

					img, err := c.Decode(bytes.NewReader(encoded))
					if err != nil {
						it.Fatalf("n=%d: decode failed: %v", len(data), err)
					}
					out, err := Decode(img)
					if err != nil {
						it.Fatalf("n=%d: unexpected error: %v", len(data), err)
					}
					if !bytes.Equal(out, data) {
						it.Fatalf("n=%d: round trip mismatch", len(data))
					}

					img, detected, err := DecodeImage(bytes.NewReader(encoded))
					if err != nil {
						it.Fatalf("n=%d: detect failed: %v", len(data), err)
					}
					if detected != f {
						it.Errorf("expected detected format %s, got %s", f, detected)
					}
					if out, err = Decode(img); err != nil || !bytes.Equal(out, data) {
						it.Fatalf("n=%d: round trip after detection failed: %v", len(data), err)
					}
				}
			})
		}
	}
}

func TestDecodeImageUnknown(t *testing.T) {
	if _, _, err := DecodeImage(bytes.NewReader([]byte("definitely not an image"))); err == nil {
		t.Error("expected error for unknown image data")
	}
}
