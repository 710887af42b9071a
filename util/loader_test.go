package util

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-energy/images"
)

func TestLoadImageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewGray(image.Rect(0, 0, 4, 3))))
	require.NoError(t, f.Close())

	file, err := LoadImageFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, file.Path)
	assert.Equal(t, images.FormatPNG, file.Image.Format)
	assert.Equal(t, 4, file.Image.Width)
	assert.Equal(t, 3, file.Image.Height)
	assert.Greater(t, len(file.Image.Data), 0)
}

func TestLoadImageFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadImageFile(filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("not a png"), 0o600))
	_, err = LoadImageFile(bad)
	assert.Error(t, err)
}

func TestSiblingPath(t *testing.T) {
	tests := map[string]string{
		"photo.jpg":              "photo energy.png",
		"a/b/photo.jpeg":         filepath.Join("a", "b", "photo energy.png"),
		"archive.tar.gz":         "archive.tar energy.png",
		"noext":                  "noext energy.png",
		filepath.Join("d", ".x"): filepath.Join("d", ".x energy.png"),
	}
	for in, want := range tests {
		assert.Equal(t, want, SiblingPath(in, " energy.png"), "input %q", in)
	}
}
