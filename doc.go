// Package file2png stores arbitrary bytes in lossless raster images.
//
// The payload is prefixed with its length as an 8-byte little-endian integer
// and the combined byte sequence is packed three bytes per pixel into the red,
// green and blue channels of a square, opaque image, in row-major order.
// Unused channels at the end of the image are zero.
//
//	img := file2png.Encode(data)
//	data, err := file2png.Decode(img)
//
// [EncodeStream] and [DecodeStream] connect the codec to PNG, TIFF or BMP
// containers.
package file2png
