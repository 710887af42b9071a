package images

import (
	"image"
	"image/color"
	"runtime"
	"sync"
)

// Clamp restricts a value to the specified range [min, max].
// This is used to prevent overflow in color calculations.
//
// Arguments:
// - value: The value to Clamp.
// - min: Minimum allowed value.
// - max: Maximum allowed value.
//
// Returns:
// - The clamped value within [min, max].
//
// @example
// clamped := Clamp(300.5, 0, 255) // Returns 255
// clamped := Clamp(-10.0, 0, 255) // Returns 0
func Clamp(value, min, max float32) float32 {
	// Check lower bound first (common case for underflow).
	if value < min {
		return min
	}
	// Check upper bound.
	if value > max {
		return max
	}
	// Value is within range.
	return value
}

// Parallel executes a function in Parallel across multiple goroutines.
// This improves performance on multi-core systems. Partitions are disjoint
// and Parallel returns only after every partition has finished, so it acts
// as a full barrier between passes.
//
// Arguments:
// - dataSize: The size of the data to process.
// - fn: Function to execute for each partition (receives start and end indices).
//
// Returns:
// - None.
//
// @example
//
//	Parallel(height, func(start, end int) {
//	    for y := start; y < end; y++ {
//	        // Process row y
//	    }
//	})
func Parallel(dataSize int, fn func(partStart, partEnd int)) {
	// Determine number of goroutines to use.
	numGoroutines := runtime.NumCPU()

	// For small data sizes, parallel processing overhead isn't worth it.
	if dataSize < numGoroutines*2 {
		fn(0, dataSize)
		return
	}

	// Calculate partition size for each goroutine.
	partSize := dataSize / numGoroutines

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		partStart := i * partSize
		partEnd := partStart + partSize

		// Last partition gets any remaining data.
		if i == numGoroutines-1 {
			partEnd = dataSize
		}

		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(partStart, partEnd)
	}

	wg.Wait()
}

// Serial runs fn over the whole range on the calling goroutine. It has the
// same shape as Parallel so callers can pick either.
func Serial(dataSize int, fn func(partStart, partEnd int)) {
	fn(0, dataSize)
}

// ToNRGBA returns a straight-alpha 8-bit RGBA copy of src with its origin
// moved to (0, 0). If src already is such an *image.NRGBA it is returned
// directly.
//
// Sources that store straight alpha (NRGBA, NRGBA64, paletted images with
// NRGBA palette entries) keep their RGB values untouched, whatever their
// alpha. Only premultiplied sources are un-premultiplied.
func ToNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}

	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.SetNRGBA(x, y, straightNRGBA(src.At(b.Min.X+x, b.Min.Y+y)))
		}
	}
	return dst
}

// straightNRGBA converts c to 8-bit straight alpha without routing
// straight-alpha colors through premultiplication.
func straightNRGBA(c color.Color) color.NRGBA {
	switch c := c.(type) {
	case color.NRGBA:
		return c
	case color.NRGBA64:
		return color.NRGBA{R: uint8(c.R >> 8), G: uint8(c.G >> 8), B: uint8(c.B >> 8), A: uint8(c.A >> 8)}
	default:
		return color.NRGBAModel.Convert(c).(color.NRGBA)
	}
}
