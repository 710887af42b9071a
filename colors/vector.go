package colors

import (
	"image/color"

	"github.com/chewxy/math32"
)

// Vector is a three component color vector in space S.
//
// The space parameter keeps RGB and LAB vectors from being mixed by
// accident while sharing one implementation of the arithmetic.
type Vector[S Space] [3]float32

// Convert turns a pixel sample into a vector of space S.
//
// Example:
//
// ```go
//
//	v := colors.Convert[colors.LAB](color.NRGBA{R: 255, G: 0, B: 0, A: 255})
//
// ```
func Convert[S Space](c color.NRGBA) Vector[S] {
	var s S
	return Vector[S](s.Components(c))
}

// Add returns the elementwise sum v + o.
func (v Vector[S]) Add(o Vector[S]) Vector[S] {
	return Vector[S]{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Sub returns the elementwise difference v - o.
func (v Vector[S]) Sub(o Vector[S]) Vector[S] {
	return Vector[S]{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// Mul returns the elementwise product v * o.
func (v Vector[S]) Mul(o Vector[S]) Vector[S] {
	return Vector[S]{v[0] * o[0], v[1] * o[1], v[2] * o[2]}
}

// Div returns the elementwise quotient v / o. Division by a zero component
// follows IEEE 754.
func (v Vector[S]) Div(o Vector[S]) Vector[S] {
	return Vector[S]{v[0] / o[0], v[1] / o[1], v[2] / o[2]}
}

// Scale multiplies every component by k.
func (v Vector[S]) Scale(k float32) Vector[S] {
	return Vector[S]{v[0] * k, v[1] * k, v[2] * k}
}

// DivScalar divides every component by k.
func (v Vector[S]) DivScalar(k float32) Vector[S] {
	return Vector[S]{v[0] / k, v[1] / k, v[2] / k}
}

// Abs returns the elementwise absolute value.
func (v Vector[S]) Abs() Vector[S] {
	return Vector[S]{math32.Abs(v[0]), math32.Abs(v[1]), math32.Abs(v[2])}
}

// SquaredLen returns the squared Euclidean length of v.
func (v Vector[S]) SquaredLen() float32 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// RGBBytes maps the vector back onto 0-255 RGB bytes through the inverse
// transform of its space.
func (v Vector[S]) RGBBytes() (r, g, b uint8) {
	var s S
	return s.ToRGB(v)
}
