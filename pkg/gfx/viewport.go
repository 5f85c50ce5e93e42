package gfx

import "github.com/kjkrol/gokg/pkg/geometry"

// Viewport is the pixel rectangle a frame is drawn into.
type Viewport struct {
	Origin geometry.Vec[int]
	Size   geometry.Vec[int]
}

// FullViewport covers a whole surface of the given pixel size. Negative
// extents collapse to zero.
func FullViewport(size geometry.Vec[int]) Viewport {
	return Viewport{
		Origin: geometry.ZERO_INT_VEC,
		Size:   geometry.Vec[int]{X: max(size.X, 0), Y: max(size.Y, 0)},
	}
}

// Empty reports whether nothing would be visible through the viewport.
func (v Viewport) Empty() bool {
	return v.Size.X == 0 || v.Size.Y == 0
}

// Apply sets v on gl.
func (v Viewport) Apply(gl Context) {
	gl.Viewport(v.Origin.X, v.Origin.Y, v.Size.X, v.Size.Y)
}
