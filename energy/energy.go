package energy

import (
	"image"
)

// Result is a quantized energy map ready for encoding.
type Result struct {
	// Width of the map in pixels, equal to the source width.
	Width int
	// Height of the map in pixels, equal to the source height.
	Height int
	// Channels is 3 (RGB) in component mode and 1 (gray) in combined mode.
	Channels int
	// Pix holds Width*Height*Channels samples in row-major order.
	Pix []uint8
	// Max is the raw energy maximum the samples were normalized by.
	Max [3]float32
}

// Compute runs both passes over img. Normalization starts only after the
// gradient pass has visited every pixel.
//
// Arguments:
// - img: The source raster.
// - opts: The energy configuration.
//
// Returns:
// - The quantized energy map.
// - ErrEmptyImage if img has no pixels.
//
// Example:
//
// ```go
//
//	res, err := energy.Compute(img, energy.DefaultOptions())
//	if err != nil {
//		return err
//	}
//	png.Encode(w, res.Image())
//
// ```
func Compute(img image.Image, opts Options) (*Result, error) {
	f, err := Gradient(img, opts)
	if err != nil {
		return nil, err
	}

	return &Result{
		Width:    f.Width,
		Height:   f.Height,
		Channels: f.Channels,
		Pix:      Normalize(f, opts),
		Max:      f.Max,
	}, nil
}

// Image packs the samples into an image: an opaque *image.RGBA for three
// channels, an *image.Gray for one.
func (r *Result) Image() image.Image {
	rect := image.Rect(0, 0, r.Width, r.Height)

	if r.Channels == 1 {
		return &image.Gray{Pix: r.Pix, Stride: r.Width, Rect: rect}
	}

	dst := image.NewRGBA(rect)
	for i := 0; i < r.Width*r.Height; i++ {
		copy(dst.Pix[i*4:i*4+3], r.Pix[i*3:i*3+3])
		dst.Pix[i*4+3] = 0xff
	}
	return dst
}
