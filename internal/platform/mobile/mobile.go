//go:build (darwin || linux || windows) && !js

// Package mobile adapts golang.org/x/mobile GL contexts to gfx, so the
// bootstrap renderer can run on a native OpenGL ES surface.
//
// An ES 3 context stands in for WebGL 2 and an ES 2 context for WebGL 1,
// since the two API generations match one to one.
package mobile

import (
	"github.com/kjkrol/gokg/pkg/geometry"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/gl"

	"github.com/kjkrol/glboot/pkg/gfx"
)

// Surface is the app window as seen through a lifecycle draw context.
type Surface struct {
	glctx gl.Context
	sz    size.Event
}

var _ gfx.Surface = (*Surface)(nil)

func NewSurface(glctx gl.Context, sz size.Event) *Surface {
	return &Surface{glctx: glctx, sz: sz}
}

func (s *Surface) Context(level gfx.Level) (gfx.Context, bool) {
	if s.glctx == nil {
		return nil, false
	}
	switch level {
	case gfx.LevelWebGL2:
		if _, ok := s.glctx.(gl.Context3); !ok {
			return nil, false
		}
	case gfx.LevelWebGL1:
	default:
		return nil, false
	}
	return glContext{glctx: s.glctx}, true
}

// FitToDisplay reports the size of the last size event; the window system
// already keeps the pixel size in step with it.
func (s *Surface) FitToDisplay() geometry.Vec[int] {
	return geometry.Vec[int]{X: s.sz.WidthPx, Y: s.sz.HeightPx}
}

// Document holds a single surface under one id.
type Document struct {
	ID     string
	Target *Surface
}

func (d Document) Surface(id string) (gfx.Surface, bool) {
	if id != d.ID || d.Target == nil {
		return nil, false
	}
	return d.Target, true
}
