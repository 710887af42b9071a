// Package config parses the positional command line of the energy tool.
//
// Every argument after the input path is optional. Missing or unrecognized
// values fall back to their defaults instead of failing.
package config

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/nvr-ai/go-energy/energy"
)

// ErrMissingPath is returned when no input path is given.
var ErrMissingPath = errors.New("path not found")

// Function selects what to render from the energy map.
type Function int

const (
	// FunctionEnergy renders the energy map itself.
	FunctionEnergy Function = iota
	// FunctionEnergyAsAlpha shows the image with energy as its alpha channel.
	FunctionEnergyAsAlpha
	// FunctionFillAvgColor fills flat regions with their average color.
	FunctionFillAvgColor
)

func (f Function) String() string {
	switch f {
	case FunctionEnergyAsAlpha:
		return "alpha"
	case FunctionFillAvgColor:
		return "fillavg"
	default:
		return "energy"
	}
}

// Config holds one invocation's settings.
type Config struct {
	// Path is the input file or directory.
	Path string
	// Exponent is the reciprocal of the gamma argument.
	Exponent float32
	// Function is what to render.
	Function Function
	// Mode is the energy shape.
	Mode energy.Mode
	// Space is the color space of the gradient.
	Space energy.Space
	// ConvertLabToRGB enables the LAB to RGB visualization in component mode.
	ConvertLabToRGB bool
	// Parallel partitions the passes by rows.
	Parallel bool
	// Verbose prints per-stage timings.
	Verbose bool
}

// Parse reads the positional arguments, without the program name:
//
//	<path> [gamma] [function] [mode] [space] [lab-to-rgb]
//
// Arguments:
// - args: The positional arguments, typically flag.Args().
//
// Returns:
// - The configuration with defaults applied. Parallel and Verbose are left
//   for the caller to set from flags.
// - ErrMissingPath if args is empty.
func Parse(args []string) (*Config, error) {
	if len(args) == 0 {
		return nil, ErrMissingPath
	}

	return &Config{
		Path:            args[0],
		Exponent:        parseExponent(arg(args, 1)),
		Function:        parseFunction(arg(args, 2)),
		Mode:            parseMode(arg(args, 3)),
		Space:           parseSpace(arg(args, 4)),
		ConvertLabToRGB: parseConvertLabToRGB(arg(args, 5)),
	}, nil
}

// Options maps the configuration onto energy options.
func (c *Config) Options() energy.Options {
	return energy.Options{
		Mode:     c.Mode,
		Space:    c.Space,
		Exponent: c.Exponent,
		LabToRGB: c.ConvertLabToRGB,
		Parallel: c.Parallel,
	}
}

// arg returns args[i], or "" when it is absent.
func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

// parseExponent returns 1/gamma. Out-of-range gammas keep the infinity
// ParseFloat saturates them to.
func parseExponent(v string) float32 {
	gamma, err := strconv.ParseFloat(v, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		gamma = energy.DefaultGamma
	}
	return 1 / float32(gamma)
}

func parseFunction(v string) Function {
	switch v {
	case "alpha":
		return FunctionEnergyAsAlpha
	case "fillavg":
		return FunctionFillAvgColor
	default:
		return FunctionEnergy
	}
}

func parseMode(v string) energy.Mode {
	if v == "component" {
		return energy.ModeComponent
	}
	return energy.ModeCombined
}

func parseSpace(v string) energy.Space {
	if v == "rgb" {
		return energy.SpaceRGB
	}
	return energy.SpaceLAB
}

func parseConvertLabToRGB(v string) bool {
	return v == "yes"
}
