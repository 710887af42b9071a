// Package images - loaded image descriptors and raster helpers for energy processing.
package images

import (
	"bytes"
	"image"

	"github.com/pkg/errors"
)

// Image represents an encoded image with a format, data, width, and height.
type Image struct {
	// The format of the image.
	Format ImageFormat `json:"format" yaml:"format"`
	// The data of the image.
	Data []byte `json:"data" yaml:"data"`
	// The width of the image.
	Width int `json:"width" yaml:"width"`
	// The height of the image.
	Height int `json:"height" yaml:"height"`
}

// NewImage inspects encoded image data and returns a descriptor for it. Only
// the header is parsed; the pixels are decoded by Decode.
//
// Arguments:
// - data: The encoded image bytes.
//
// Returns:
// - The descriptor with format and dimensions filled in.
// - An error if no registered codec recognizes the data.
func NewImage(data []byte) (*Image, error) {
	cfg, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "image header decoding failed")
	}

	return &Image{
		Format: ImageFormat(name),
		Data:   data,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}

// Decode decodes the image data with whichever registered codec recognizes it.
//
// Returns:
// - The decoded raster.
// - An error if the data is empty or the codec fails.
func (i *Image) Decode() (image.Image, error) {
	if i == nil || len(i.Data) == 0 {
		return nil, errors.New("image data is empty")
	}

	img, name, err := image.Decode(bytes.NewReader(i.Data))
	if err != nil {
		return nil, errors.Wrap(err, "image decoding failed")
	}

	i.Format = ImageFormat(name)
	b := img.Bounds()
	i.Width, i.Height = b.Dx(), b.Dy()

	return img, nil
}
