//go:build (darwin || linux || windows) && !js

package mobile

import (
	"testing"

	"github.com/kjkrol/gokg/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/gl"

	"github.com/kjkrol/glboot/pkg/gfx"
)

// es2 implements only the calls the tests reach; anything else panics on
// the nil embedded interface.
type es2 struct {
	gl.Context
	attribs  map[string]int32
	viewport []int
}

func (f *es2) GetAttribLocation(p gl.Program, name string) gl.Attrib {
	v, ok := f.attribs[name]
	if !ok {
		v = -1
	}
	return gl.Attrib{Value: uint(v)}
}

func (f *es2) Viewport(x, y, width, height int) {
	f.viewport = []int{x, y, width, height}
}

type es3 struct {
	gl.Context3
}

func TestSurfaceLevels(t *testing.T) {
	sz := size.Event{WidthPx: 800, HeightPx: 600}

	low := NewSurface(&es2{}, sz)
	_, ok := low.Context(gfx.LevelWebGL2)
	assert.False(t, ok, "ES 2 context must not pass for WebGL 2")
	_, ok = low.Context(gfx.LevelWebGL1)
	assert.True(t, ok)

	high := NewSurface(es3{}, sz)
	_, ok = high.Context(gfx.LevelWebGL2)
	assert.True(t, ok)

	_, ok = NewSurface(nil, sz).Context(gfx.LevelWebGL1)
	assert.False(t, ok)

	assert.Equal(t, geometry.Vec[int]{X: 800, Y: 600}, high.FitToDisplay())
}

func TestAttribLocationMissing(t *testing.T) {
	fake := &es2{attribs: map[string]int32{"position": 0}}
	ctx, ok := NewSurface(fake, size.Event{}).Context(gfx.LevelWebGL1)
	require.True(t, ok)

	assert.Equal(t, 0, ctx.AttribLocation(1, "position"))
	assert.Equal(t, -1, ctx.AttribLocation(1, "vertexPosition"))

	ctx.Viewport(0, 0, 10, 20)
	assert.Equal(t, []int{0, 0, 10, 20}, fake.viewport)
}

func TestDocument(t *testing.T) {
	s := NewSurface(&es2{}, size.Event{})
	doc := Document{ID: "canvas", Target: s}

	got, ok := doc.Surface("canvas")
	require.True(t, ok)
	assert.Same(t, s, got)

	_, ok = doc.Surface("other")
	assert.False(t, ok)
	_, ok = Document{ID: "canvas"}.Surface("canvas")
	assert.False(t, ok)
}
