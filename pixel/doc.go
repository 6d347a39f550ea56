// Package pixel implements the raster image used to carry payload bytes.
//
// The [RGBImage] type is an opaque 8-bit RGB grid compatible with Go's native
// [image.Image] / [draw.Image] interfaces. Only the red, green and blue channels
// hold data; alpha is always fully opaque.
package pixel
