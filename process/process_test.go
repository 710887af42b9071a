package process

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-energy/config"
	"github.com/nvr-ai/go-energy/profiler"
)

func writeTestImage(t *testing.T, dir, name string) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 6, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(40 * x), G: uint8(60 * y), B: 128, A: 255})
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	if filepath.Ext(name) == ".jpg" {
		require.NoError(t, jpeg.Encode(f, img, nil))
	} else {
		require.NoError(t, png.Encode(f, img))
	}
	return path
}

func readPNG(t *testing.T, path string) image.Image {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	return img
}

func mustParse(t *testing.T, args ...string) *config.Config {
	t.Helper()

	cfg, err := config.Parse(args)
	require.NoError(t, err)
	return cfg
}

func TestRunCombined(t *testing.T) {
	dir := t.TempDir()
	in := writeTestImage(t, dir, "frame.png")
	prof := profiler.New()

	out, err := Run(mustParse(t, in), prof)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "frame energy.png"), out)

	img := readPNG(t, out)
	assert.Equal(t, image.Rect(0, 0, 6, 4), img.Bounds(), "Output should keep the input dimensions")
	assert.Equal(t, color.GrayModel, img.ColorModel(), "Combined mode should write grayscale")

	var names []string
	for _, op := range prof.Operations() {
		names = append(names, op.Name())
	}
	assert.Equal(t, []string{"decode", "energy", "encode"}, names)
}

func TestRunComponent(t *testing.T) {
	dir := t.TempDir()
	in := writeTestImage(t, dir, "frame.jpg")

	out, err := Run(mustParse(t, in, "1", "energy", "component", "rgb"), nil)
	require.NoError(t, err)

	img := readPNG(t, out)
	assert.Equal(t, image.Rect(0, 0, 6, 4), img.Bounds())
	_, isRGBA := img.(*image.RGBA)
	assert.True(t, isRGBA, "Component mode should write 8-bit RGB")
}

func TestRunIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	in := writeTestImage(t, dir, "frame.png")
	cfg := mustParse(t, in, "2", "energy", "component", "lab", "yes")
	cfg.Parallel = true

	out, err := Run(cfg, nil)
	require.NoError(t, err)
	first, err := os.ReadFile(out)
	require.NoError(t, err)

	_, err = Run(cfg, nil)
	require.NoError(t, err)
	second, err := os.ReadFile(out)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunDirectoryIsNotImplemented(t *testing.T) {
	_, err := Run(mustParse(t, t.TempDir()), nil)
	assert.ErrorIs(t, err, ErrNotImplemented)
}

func TestRunUnsupportedFunctions(t *testing.T) {
	in := writeTestImage(t, t.TempDir(), "frame.png")

	for _, fn := range []string{"alpha", "fillavg"} {
		_, err := Run(mustParse(t, in, "3", fn), nil)
		assert.ErrorIs(t, err, ErrNotImplemented, fn)
	}
}

func TestRunInvalidPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no character device to stat on windows")
	}

	_, err := Run(mustParse(t, os.DevNull), nil)
	assert.ErrorIs(t, err, ErrInvalidPath, "A device is neither a regular file nor a directory")
}

func TestRunMissingPath(t *testing.T) {
	_, err := Run(mustParse(t, filepath.Join(t.TempDir(), "nope.png")), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunDecodeFailure(t *testing.T) {
	in := filepath.Join(t.TempDir(), "broken.png")
	require.NoError(t, os.WriteFile(in, []byte("definitely not an image"), 0o600))

	_, err := Run(mustParse(t, in), nil)
	require.Error(t, err)
	assert.Equal(t, image.ErrFormat, errors.Cause(err), "Codec errors should be preserved")

	_, statErr := os.Stat(OutputPath(in))
	assert.ErrorIs(t, statErr, os.ErrNotExist, "Nothing should be written on failure")
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("a", "b", "name energy.png"), OutputPath(filepath.Join("a", "b", "name.ext")))
}
