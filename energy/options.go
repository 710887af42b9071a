// Package energy computes gradient energy maps of raster images.
//
// The computation runs in two strictly ordered passes. Gradient visits every
// pixel, stores its raw energy and tracks the global maximum. Normalize then
// rescales each raw value by that maximum, applies the gamma exponent and
// quantizes to bytes.
package energy

// Mode selects the shape of the energy field.
type Mode int

const (
	// ModeCombined collapses the energy to one squared-difference scalar per
	// pixel, rendered as grayscale.
	ModeCombined Mode = iota
	// ModeComponent keeps an absolute-difference energy per color channel,
	// rendered as a color image.
	ModeComponent
)

// Channels returns the number of values per pixel the mode produces.
func (m Mode) Channels() int {
	if m == ModeComponent {
		return 3
	}
	return 1
}

func (m Mode) String() string {
	if m == ModeComponent {
		return "component"
	}
	return "combined"
}

// Space selects the color space the gradient is evaluated in.
type Space int

const (
	// SpaceLAB is perceptual CIE-LAB.
	SpaceLAB Space = iota
	// SpaceRGB is device RGB.
	SpaceRGB
)

func (s Space) String() string {
	if s == SpaceRGB {
		return "rgb"
	}
	return "lab"
}

// DefaultGamma is the gamma used when none is given. The stored exponent is
// its reciprocal.
const DefaultGamma = 3.0

// Options configures an energy computation.
type Options struct {
	// Mode is the energy shape.
	Mode Mode
	// Space is the color space used for differences.
	Space Space
	// Exponent is the power applied to normalized energies, the reciprocal of
	// the user-facing gamma.
	Exponent float32
	// LabToRGB re-expresses LAB component energies as RGB before
	// normalization. Only used with ModeComponent and SpaceLAB.
	//
	// The RGB values are divided by the LAB-space maximum, so the result is a
	// visual approximation rather than a true normalization.
	LabToRGB bool
	// Parallel partitions both passes by rows.
	Parallel bool
}

// DefaultOptions returns combined LAB energy with gamma 3.
func DefaultOptions() Options {
	return Options{
		Mode:     ModeCombined,
		Space:    SpaceLAB,
		Exponent: 1 / DefaultGamma,
		Parallel: true,
	}
}

// convertsLabToRGB reports whether the LAB to RGB visualization applies.
func (o Options) convertsLabToRGB() bool {
	return o.LabToRGB && o.Mode == ModeComponent && o.Space == SpaceLAB
}
