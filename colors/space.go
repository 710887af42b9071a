// Package colors converts 8-bit pixel samples into three component float32
// vectors in either device RGB or perceptual CIE-LAB space, and provides the
// vector algebra the gradient stage needs.
package colors

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/lucasb-eyer/go-colorful"
)

// labScale converts go-colorful's unit LAB range into CIE units
// (L in 0..100, a and b roughly -128..127).
const labScale = 100

// Space is the set of color spaces a Vector can live in.
//
// The marker types carry no data. Their methods describe how a raw pixel
// sample enters the space and how a vector in the space is turned back into
// displayable RGB bytes.
type Space interface {
	RGB | LAB

	// Components converts an 8-bit pixel sample into the three components of
	// the space. Alpha is ignored.
	Components(c color.NRGBA) [3]float32
	// ToRGB maps three components of the space back onto 0-255 RGB bytes.
	ToRGB(v [3]float32) (r, g, b uint8)
	// String returns the short name of the space.
	String() string
}

// RGB is device RGB space. Components are the raw channel values on the
// 0-255 scale.
type RGB struct{}

// Components returns the red, green and blue channels cast to float32.
func (RGB) Components(c color.NRGBA) [3]float32 {
	return [3]float32{float32(c.R), float32(c.G), float32(c.B)}
}

// ToRGB clamps each component into [0, 255] and truncates it.
func (RGB) ToRGB(v [3]float32) (r, g, b uint8) {
	return clampByte(v[0]), clampByte(v[1]), clampByte(v[2])
}

func (RGB) String() string { return "rgb" }

// LAB is CIE-LAB space relative to the D65 reference white.
type LAB struct{}

// Components applies the standard sRGB to CIE-LAB transform.
//
// Arguments:
// - c: The pixel sample. Alpha is ignored.
//
// Returns:
// - Lightness L in 0..100 followed by the a and b chrominance axes.
func (LAB) Components(c color.NRGBA) [3]float32 {
	col := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
	l, a, b := col.Lab()
	return [3]float32{
		float32(l * labScale),
		float32(a * labScale),
		float32(b * labScale),
	}
}

// ToRGB applies the inverse LAB to sRGB transform. Out-of-gamut results are
// clamped to the displayable range.
func (LAB) ToRGB(v [3]float32) (r, g, b uint8) {
	col := colorful.Lab(
		float64(v[0])/labScale,
		float64(v[1])/labScale,
		float64(v[2])/labScale,
	)
	return col.Clamped().RGB255()
}

func (LAB) String() string { return "lab" }

// clampByte saturates v into the 8-bit range. NaN maps to 0.
func clampByte(v float32) uint8 {
	if math32.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
