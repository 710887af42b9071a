package util

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/nvr-ai/go-energy/images"
)

// ImageFile represents an image file.
type ImageFile struct {
	// Path is the path to the image file.
	Path string
	// Image is the encoded image with its header already inspected.
	Image *images.Image
}

// LoadImageFile reads an image file and inspects its header.
//
// Arguments:
// - path: Path of the image file.
//
// Returns:
// - ImageFile: The file with format and dimensions filled in.
// - error: Error if reading fails or no codec recognizes the file.
func LoadImageFile(path string) (*ImageFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	img, err := images.NewImage(data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}

	return &ImageFile{
		Path:  path,
		Image: img,
	}, nil
}

// SiblingPath returns a file name next to path made of path's stem and the
// given suffix, e.g. SiblingPath("a/b.jpg", " energy.png") is "a/b energy.png".
func SiblingPath(path, suffix string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		stem = base
	}
	return filepath.Join(filepath.Dir(path), stem+suffix)
}
