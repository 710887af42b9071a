package energy

import (
	"image"
	"sync"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-energy/colors"
	"github.com/nvr-ai/go-energy/images"
)

// ErrEmptyImage is returned for rasters with zero width or height.
var ErrEmptyImage = errors.New("image has no pixels")

// Field is the raw energy of every pixel, produced by Gradient.
type Field struct {
	// Width is the number of columns.
	Width int
	// Height is the number of rows.
	Height int
	// Channels is the number of energy values per pixel (3 or 1).
	Channels int
	// Values holds Width*Height*Channels non-negative energies in row-major
	// order.
	Values []float32
	// Max is the largest value of each channel. Only the first Channels
	// entries are meaningful.
	Max [3]float32
}

// At returns the energies of the pixel at (x, y).
func (f *Field) At(x, y int) []float32 {
	i := (x + y*f.Width) * f.Channels
	return f.Values[i : i+f.Channels]
}

// difference computes the per-axis difference of a neighbor pair. Only the
// first Mode.Channels() entries of the result are used.
type difference[S colors.Space] func(next, prev colors.Vector[S]) [3]float32

// componentDifference is the elementwise vector difference.
func componentDifference[S colors.Space](next, prev colors.Vector[S]) [3]float32 {
	return next.Sub(prev)
}

// combinedDifference is the squared length of the vector difference. In RGB
// space this is the sum of squared per-channel differences.
func combinedDifference[S colors.Space](next, prev colors.Vector[S]) [3]float32 {
	return [3]float32{next.Sub(prev).SquaredLen()}
}

// Gradient runs the first pass: it converts img into the configured color
// space, evaluates the horizontal and vertical differences of every pixel,
// stores |dx| + |dy| per channel and tracks the running maximum.
//
// Arguments:
// - img: The source raster. It is not modified.
// - opts: Mode and space select the difference rule.
//
// Returns:
// - The raw energy field with its finalized maximum.
// - ErrEmptyImage if img has no pixels.
func Gradient(img image.Image, opts Options) (*Field, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}

	switch opts.Space {
	case SpaceRGB:
		return gradient[colors.RGB](img, opts), nil
	default:
		return gradient[colors.LAB](img, opts), nil
	}
}

func gradient[S colors.Space](img image.Image, opts Options) *Field {
	src := images.NewField[S](img, opts.Parallel)

	diff := difference[S](combinedDifference[S])
	if opts.Mode == ModeComponent {
		diff = componentDifference[S]
	}

	n := opts.Mode.Channels()
	f := &Field{
		Width:    src.Width,
		Height:   src.Height,
		Channels: n,
		Values:   make([]float32, src.Width*src.Height*n),
		Max:      lowest(),
	}

	run := images.Serial
	if opts.Parallel {
		run = images.Parallel
	}

	var mu sync.Mutex
	run(src.Height, func(partStart, partEnd int) {
		// Partial maximum of this partition, merged once the rows are done.
		partMax := lowest()

		for y := partStart; y < partEnd; y++ {
			for x := 0; x < src.Width; x++ {
				dx := diff(src.PairX(x, y))
				dy := diff(src.PairY(x, y))

				base := src.Index(x, y) * n
				for c := 0; c < n; c++ {
					e := math32.Abs(dx[c]) + math32.Abs(dy[c])
					f.Values[base+c] = e
					if e > partMax[c] {
						partMax[c] = e
					}
				}
			}
		}

		mu.Lock()
		for c := 0; c < n; c++ {
			if partMax[c] > f.Max[c] {
				f.Max[c] = partMax[c]
			}
		}
		mu.Unlock()
	})

	return f
}

// lowest is the starting value of a running maximum.
func lowest() [3]float32 {
	return [3]float32{-math32.MaxFloat32, -math32.MaxFloat32, -math32.MaxFloat32}
}
