package gfx

import (
	"image/color"

	"github.com/gogpu/gputypes"
)

// ColorFrom converts c to a clear colour with components in [0, 1].
func ColorFrom(c color.Color) gputypes.Color {
	if c == nil {
		return gputypes.Color{}
	}
	r, g, b, a := c.RGBA()
	const inv = 1.0 / 65535.0
	return gputypes.Color{
		R: float64(r) * inv,
		G: float64(g) * inv,
		B: float64(b) * inv,
		A: float64(a) * inv,
	}
}

// ClearColorArgs returns c as the four clearColor arguments.
func ClearColorArgs(c gputypes.Color) (r, g, b, a float32) {
	return float32(c.R), float32(c.G), float32(c.B), float32(c.A)
}
