package energy

import (
	"github.com/chewxy/math32"

	"github.com/nvr-ai/go-energy/colors"
	"github.com/nvr-ai/go-energy/images"
)

// Normalize runs the second pass over a finished Field: every raw energy is
// divided by the maximum of its channel, raised to opts.Exponent and
// quantized to a byte.
//
// With LabToRGB set on a LAB component field, each pixel's energy vector is
// first mapped through the inverse LAB transform and the resulting 0-255
// values are divided by the LAB-space maxima.
//
// Arguments:
// - f: A field returned by Gradient.
// - opts: Exponent, LabToRGB and Parallel are used.
//
// Returns:
// - len(f.Values) bytes in the same order as f.Values.
func Normalize(f *Field, opts Options) []uint8 {
	out := make([]uint8, len(f.Values))
	n := f.Channels
	rowLen := f.Width * n
	labToRGB := opts.convertsLabToRGB() && n == 3

	run := images.Serial
	if opts.Parallel {
		run = images.Parallel
	}

	run(f.Height, func(partStart, partEnd int) {
		for i := partStart * rowLen; i < partEnd*rowLen; i += n {
			px := f.Values[i : i+n]

			if labToRGB {
				r, g, b := colors.Vector[colors.LAB]{px[0], px[1], px[2]}.RGBBytes()
				out[i] = Quantize(float32(r), f.Max[0], opts.Exponent)
				out[i+1] = Quantize(float32(g), f.Max[1], opts.Exponent)
				out[i+2] = Quantize(float32(b), f.Max[2], opts.Exponent)
				continue
			}

			for c, v := range px {
				out[i+c] = Quantize(v, f.Max[c], opts.Exponent)
			}
		}
	})

	return out
}

// Quantize maps a raw energy v with channel maximum m to a byte:
// floor((v/m)^exponent * 255), saturated to [0, 255].
//
// A zero maximum means the image has no variation at all, so every value is 0.
//
// @example
// b := Quantize(37500, 97500, 1) // Returns 98
func Quantize(v, m, exponent float32) uint8 {
	if m == 0 {
		return 0
	}

	scaled := math32.Pow(v/m, exponent) * 255
	if math32.IsNaN(scaled) {
		return 0
	}
	return uint8(images.Clamp(scaled, 0, 255))
}
