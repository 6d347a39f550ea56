package file2png

import (
	"errors"
	"fmt"
	"strings"
)

// Errors
var (
	ErrMalformedHeader = errors.New("file2png: malformed header")
	ErrTruncatedImage  = errors.New("file2png: truncated image")
	ErrIO              = errors.New("file2png: i/o failure")
	ErrFormat          = errors.New("file2png: unsupported image format")
)

// FormatError describes an image whose geometry or header cannot be decoded.
type FormatError struct {
	// Kind is ErrMalformedHeader or ErrTruncatedImage.
	Kind error

	// Width and Height of the offending image.
	Width, Height int

	// Expected and Actual are channel byte counts; zero if not applicable.
	Expected, Actual uint64

	Reason string
}

func (e *FormatError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())

	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}

	fmt.Fprintf(&b, " (image %dx%d", e.Width, e.Height)
	if e.Expected > 0 {
		fmt.Fprintf(&b, ", need %d bytes, have %d", e.Expected, e.Actual)
	}
	b.WriteByte(')')

	return b.String()
}

func (e *FormatError) Unwrap() error {
	return e.Kind
}

// IOError wraps a failure of the underlying stream or image container.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return "file2png: " + e.Op + ": " + e.Err.Error()
}

// Unwrap matches both ErrIO and the underlying error.
func (e *IOError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}

func malformed(w, h int, expected, actual uint64, reason string) *FormatError {
	return &FormatError{
		Kind:     ErrMalformedHeader,
		Width:    w,
		Height:   h,
		Expected: expected,
		Actual:   actual,
		Reason:   reason,
	}
}
