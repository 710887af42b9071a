package images

import (
	"image"

	"github.com/nvr-ai/go-energy/colors"
)

// Field is a row-major buffer of color vectors converted from a raster.
type Field[S colors.Space] struct {
	// Width is the number of columns.
	Width int
	// Height is the number of rows.
	Height int
	// Pix holds Width*Height vectors, index = x + y*Width.
	Pix []colors.Vector[S]
}

// NewField converts every pixel of img into space S exactly once.
//
// Arguments:
// - img: The source raster. It is only read.
// - parallel: Convert rows on multiple goroutines.
//
// Returns:
// - A field with the same dimensions as img.
func NewField[S colors.Space](img image.Image, parallel bool) *Field[S] {
	src := ToNRGBA(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()

	f := &Field[S]{
		Width:  w,
		Height: h,
		Pix:    make([]colors.Vector[S], w*h),
	}

	run := Serial
	if parallel {
		run = Parallel
	}

	run(h, func(partStart, partEnd int) {
		for y := partStart; y < partEnd; y++ {
			for x := 0; x < w; x++ {
				f.Pix[f.Index(x, y)] = colors.Convert[S](src.NRGBAAt(x, y))
			}
		}
	})

	return f
}

// Index returns the position of (x, y) in Pix.
func (f *Field[S]) Index(x, y int) int {
	return x + y*f.Width
}

// At returns the vector at (x, y).
func (f *Field[S]) At(x, y int) colors.Vector[S] {
	return f.Pix[f.Index(x, y)]
}

// PairX returns the horizontal neighbor pair for the finite difference at
// (x, y), ordered (next, previous).
func (f *Field[S]) PairX(x, y int) (colors.Vector[S], colors.Vector[S]) {
	next, prev := Neighbors(x, f.Width)
	return f.At(next, y), f.At(prev, y)
}

// PairY returns the vertical neighbor pair for the finite difference at
// (x, y), ordered (next, previous).
func (f *Field[S]) PairY(x, y int) (colors.Vector[S], colors.Vector[S]) {
	next, prev := Neighbors(y, f.Height)
	return f.At(x, next), f.At(x, prev)
}

// Neighbors returns the indices used for the finite difference at position i
// on an axis of length n.
//
// Interior positions use the central pair (i+1, i-1). The first position uses
// the forward pair (1, 0) and the last the backward pair (n-1, n-2). An axis
// of length 1 has no neighbors at all and yields (0, 0), a zero gradient.
//
// Arguments:
// - i: Position on the axis, 0 <= i < n.
// - n: Length of the axis.
//
// Returns:
// - The (next, previous) indices.
func Neighbors(i, n int) (next, prev int) {
	switch {
	case n <= 1:
		return 0, 0
	case i == 0:
		return 1, 0
	case i == n-1:
		return i, i - 1
	default:
		return i + 1, i - 1
	}
}
