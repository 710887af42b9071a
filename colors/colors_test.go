package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertRGBIsIdentity(t *testing.T) {
	v := Convert[RGB](color.NRGBA{R: 12, G: 200, B: 255, A: 7})
	assert.Equal(t, Vector[RGB]{12, 200, 255}, v, "RGB conversion should cast the channels and ignore alpha")
}

func TestConvertLAB(t *testing.T) {
	tests := []struct {
		name string
		in   color.NRGBA
		want Vector[LAB]
	}{
		{"black", color.NRGBA{A: 255}, Vector[LAB]{0, 0, 0}},
		{"white", color.NRGBA{R: 255, G: 255, B: 255, A: 255}, Vector[LAB]{100, 0, 0}},
		{"red", color.NRGBA{R: 255, A: 255}, Vector[LAB]{53.24, 80.09, 67.20}},
		{"blue", color.NRGBA{B: 255, A: 255}, Vector[LAB]{32.30, 79.19, -107.86}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Convert[LAB](tt.in)
			for i := range got {
				assert.InDelta(t, tt.want[i], got[i], 0.1, "component %d", i)
			}
		})
	}
}

func TestConvertLABIsDeterministic(t *testing.T) {
	c := color.NRGBA{R: 31, G: 77, B: 190, A: 255}
	assert.Equal(t, Convert[LAB](c), Convert[LAB](c))
}

func TestRGBBytesRoundTrip(t *testing.T) {
	in := color.NRGBA{R: 40, G: 120, B: 220, A: 255}

	r, g, b := Convert[LAB](in).RGBBytes()
	assert.InDelta(t, 40, int(r), 1)
	assert.InDelta(t, 120, int(g), 1)
	assert.InDelta(t, 220, int(b), 1)

	r, g, b = Convert[RGB](in).RGBBytes()
	assert.Equal(t, [3]uint8{40, 120, 220}, [3]uint8{r, g, b})
}

func TestRGBBytesSaturates(t *testing.T) {
	r, g, b := Vector[RGB]{-3, 300, 254.9}.RGBBytes()
	assert.Equal(t, [3]uint8{0, 255, 254}, [3]uint8{r, g, b})
}

func TestVectorArithmetic(t *testing.T) {
	a := Vector[RGB]{1, -2, 6}
	b := Vector[RGB]{4, 2, -3}

	assert.Equal(t, Vector[RGB]{5, 0, 3}, a.Add(b))
	assert.Equal(t, Vector[RGB]{-3, -4, 9}, a.Sub(b))
	assert.Equal(t, Vector[RGB]{4, -4, -18}, a.Mul(b))
	assert.Equal(t, Vector[RGB]{0.25, -1, -2}, a.Div(b))
	assert.Equal(t, Vector[RGB]{2, -4, 12}, a.Scale(2))
	assert.Equal(t, Vector[RGB]{0.5, -1, 3}, a.DivScalar(2))
	assert.Equal(t, Vector[RGB]{1, 2, 6}, a.Abs())
	assert.Equal(t, float32(41), a.SquaredLen())
}

func TestSpaceNames(t *testing.T) {
	assert.Equal(t, "rgb", RGB{}.String())
	assert.Equal(t, "lab", LAB{}.String())
}
