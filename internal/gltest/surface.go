package gltest

import (
	"github.com/kjkrol/gokg/pkg/geometry"

	"github.com/kjkrol/glboot/pkg/gfx"
)

// Surface hands out Contexts for the levels listed in Levels.
type Surface struct {
	Levels map[gfx.Level]*Context
	// Width and Height are the logical size FitToDisplay reports.
	Width, Height int

	Requested []gfx.Level
	Fits      int
}

var _ gfx.Surface = (*Surface)(nil)

// NewSurface returns a width x height surface supporting every level given.
func NewSurface(width, height int, levels ...gfx.Level) *Surface {
	s := &Surface{Levels: make(map[gfx.Level]*Context), Width: width, Height: height}
	for _, l := range levels {
		s.Levels[l] = NewContext()
	}
	return s
}

func (s *Surface) Context(level gfx.Level) (gfx.Context, bool) {
	s.Requested = append(s.Requested, level)
	ctx, ok := s.Levels[level]
	if !ok {
		return nil, false
	}
	return ctx, true
}

func (s *Surface) FitToDisplay() geometry.Vec[int] {
	s.Fits++
	return geometry.Vec[int]{X: s.Width, Y: s.Height}
}

// GL returns the fake behind level, or nil.
func (s *Surface) GL(level gfx.Level) *Context {
	return s.Levels[level]
}

// Document maps ids onto surfaces.
type Document map[string]gfx.Surface

func (d Document) Surface(id string) (gfx.Surface, bool) {
	s, ok := d[id]
	return s, ok
}

// Sink collects error messages.
type Sink struct {
	Messages []string
}

func (s *Sink) ShowError(message string) {
	s.Messages = append(s.Messages, message)
}
