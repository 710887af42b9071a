// Package process runs the energy tool on an input path: it dispatches on the
// kind of path, decodes the image, computes its energy map and writes it as a
// sibling PNG file.
package process

import (
	"image"
	"image/png"
	"os"

	"github.com/pkg/errors"

	"github.com/nvr-ai/go-energy/config"
	"github.com/nvr-ai/go-energy/energy"
	"github.com/nvr-ai/go-energy/profiler"
	"github.com/nvr-ai/go-energy/util"
)

// OutputSuffix is appended to the input file stem to name the output.
const OutputSuffix = " energy.png"

var (
	// ErrInvalidPath is returned for paths that are neither a regular file
	// nor a directory.
	ErrInvalidPath = errors.New("path is not a directory or a file")
	// ErrNotImplemented is returned for directory input and for the alpha and
	// fillavg functions.
	ErrNotImplemented = errors.New("not implemented")
)

// Run processes cfg.Path.
//
// Arguments:
// - cfg: The parsed configuration.
// - prof: Optional stage profiler; nil disables timing.
//
// Returns:
// - The path of the written energy image.
// - An error if the path is unusable, the function is unsupported, or
//   decoding or encoding fails.
func Run(cfg *config.Config, prof *profiler.Profiler) (string, error) {
	info, err := os.Stat(cfg.Path)
	if err != nil {
		return "", errors.Wrapf(err, "stat %s", cfg.Path)
	}

	switch {
	case info.IsDir():
		return "", errors.Wrapf(ErrNotImplemented, "directory input %s", cfg.Path)
	case info.Mode().IsRegular():
		return singleImage(cfg, prof)
	default:
		return "", errors.Wrapf(ErrInvalidPath, "%s", cfg.Path)
	}
}

// OutputPath returns the sibling output path for an input file:
// ".../name.ext" becomes ".../name energy.png".
func OutputPath(path string) string {
	return util.SiblingPath(path, OutputSuffix)
}

func singleImage(cfg *config.Config, prof *profiler.Profiler) (string, error) {
	if cfg.Function != config.FunctionEnergy {
		return "", errors.Wrapf(ErrNotImplemented, "function %s", cfg.Function)
	}

	img, err := decode(cfg.Path, prof)
	if err != nil {
		return "", err
	}

	done := prof.StartOperation("energy")
	res, err := energy.Compute(img, cfg.Options())
	done()
	if err != nil {
		return "", errors.Wrapf(err, "computing energy of %s", cfg.Path)
	}

	out := OutputPath(cfg.Path)
	if err := encode(out, res.Image(), prof); err != nil {
		return "", err
	}
	return out, nil
}

// decode loads and decodes the image at path.
func decode(path string, prof *profiler.Profiler) (image.Image, error) {
	defer prof.StartOperation("decode")()

	file, err := util.LoadImageFile(path)
	if err != nil {
		return nil, err
	}

	img, err := file.Image.Decode()
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}
	return img, nil
}

// encode writes img to path as PNG.
func encode(path string, img image.Image, prof *profiler.Profiler) (err error) {
	defer prof.StartOperation("encode")()

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "closing %s", path)
		}
	}()

	if err := png.Encode(f, img); err != nil {
		return errors.Wrapf(err, "encoding %s", path)
	}
	return nil
}
