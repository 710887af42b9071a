package images

import (
	// Decoders register themselves with image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImageFormat represents supported image formats
type ImageFormat string

// ImageFormat constants. The values match the names the codecs register with
// the image package.
const (
	// FormatJPEG is the JPEG image format.
	FormatJPEG ImageFormat = "jpeg"
	// FormatWebP is the WebP image format.
	FormatWebP ImageFormat = "webp"
	// FormatPNG is the PNG image format.
	FormatPNG ImageFormat = "png"
	// FormatGIF is the GIF image format.
	FormatGIF ImageFormat = "gif"
	// FormatBMP is the BMP image format.
	FormatBMP ImageFormat = "bmp"
	// FormatTIFF is the TIFF image format.
	FormatTIFF ImageFormat = "tiff"
)

// SupportedFormats lists every format that can be decoded as input.
var SupportedFormats = []ImageFormat{
	FormatPNG,
	FormatJPEG,
	FormatGIF,
	FormatBMP,
	FormatTIFF,
	FormatWebP,
}
