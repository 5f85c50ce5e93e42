package renderer

import (
	"fmt"

	"github.com/kjkrol/glboot/pkg/gfx"
)

// Bootstrap draws the static triangle. It keeps no GPU state between calls;
// every Render acquires and builds everything again.
type Bootstrap struct {
	conf Config
}

var _ gfx.Renderer = (*Bootstrap)(nil)

func New(conf Config) *Bootstrap {
	return &Bootstrap{conf: conf.withDefaults()}
}

// Render runs the bootstrap sequence once. On failure it stops before the
// draw call, shows the error in sink and returns it classified. A panic
// anywhere in the sequence is reported the same way as an
// UncaughtFaultError.
func (b *Bootstrap) Render(doc gfx.Document, sink gfx.ErrorSink) (res gfx.Result) {
	defer func() {
		if v := recover(); v != nil {
			res = b.fail(sink, &gfx.UncaughtFaultError{Value: v})
		}
	}()
	if err := b.draw(doc); err != nil {
		return b.fail(sink, err)
	}
	gfx.Logger().Info("frame drawn", "surface", b.conf.SurfaceID)
	return gfx.Succeeded()
}

func (b *Bootstrap) fail(sink gfx.ErrorSink, err error) gfx.Result {
	report(sink, err)
	return gfx.Failed(err)
}

// report hands err to sink. A panic inside the sink is logged and swallowed.
func report(sink gfx.ErrorSink, err error) {
	if sink == nil {
		return
	}
	defer func() {
		if v := recover(); v != nil {
			gfx.Logger().Error("error sink failed", "panic", v, "error", err)
		}
	}()
	sink.ShowError(err.Error())
}

func (b *Bootstrap) draw(doc gfx.Document) error {
	log := gfx.Logger()

	if doc == nil {
		return &gfx.SurfaceNotFoundError{ID: b.conf.SurfaceID}
	}
	surface, ok := doc.Surface(b.conf.SurfaceID)
	if !ok || surface == nil {
		return &gfx.SurfaceNotFoundError{ID: b.conf.SurfaceID}
	}

	gl, err := acquireContext(surface)
	if err != nil {
		return err
	}
	log.Debug("context acquired", "level", gfx.LevelWebGL2)

	// First clear: visible signal that the context works, before any
	// geometry or program exists. The second clear below matches the
	// final surface size.
	b.clear(gl)

	buffer := gl.CreateBuffer()
	gl.BindBuffer(gfx.ArrayBuffer, buffer)
	gl.BufferData(gfx.ArrayBuffer, triangleVertexData, gfx.StaticDraw)
	log.Debug("vertex buffer uploaded", "bytes", len(triangleVertexData))

	program, err := buildProgram(gl, b.conf.VertexSource, b.conf.FragmentSource)
	if err != nil {
		return err
	}

	slot := gl.AttribLocation(program, b.conf.PositionAttribute)
	if slot < 0 {
		return &gfx.AttributeNotFoundError{Name: b.conf.PositionAttribute}
	}

	pointer, err := gfx.VertexAttribPointer(triangleLayout, 0)
	if err != nil {
		return fmt.Errorf("triangle layout: %w", err)
	}
	mode, err := gfx.DrawMode(triangleTopology)
	if err != nil {
		return fmt.Errorf("triangle topology: %w", err)
	}

	view := gfx.FullViewport(surface.FitToDisplay())
	b.clear(gl)
	view.Apply(gl)
	log.Debug("viewport configured", "size", view.Size, "empty", view.Empty())

	gl.UseProgram(program)
	gl.EnableVertexAttribArray(slot)

	gl.BindBuffer(gfx.ArrayBuffer, buffer)
	gl.VertexAttribPointer(slot, pointer.Size, pointer.Type, pointer.Normalized, pointer.Stride, pointer.Offset)

	gl.DrawArrays(mode, 0, gfx.VertexCount(triangleLayout, len(triangleVertexData)))
	return nil
}

func (b *Bootstrap) clear(gl gfx.Context) {
	gl.ClearColor(gfx.ClearColorArgs(b.conf.ClearColor))
	gl.Clear(gfx.ColorBufferBit | gfx.DepthBufferBit)
}

// acquireContext asks for WebGL 2 only. The WebGL 1 probe exists to tell
// the user what their host supports.
func acquireContext(surface gfx.Surface) (gfx.Context, error) {
	if gl, ok := surface.Context(gfx.LevelWebGL2); ok && gl != nil {
		return gl, nil
	}
	_, fallback := surface.Context(gfx.LevelWebGL1)
	return nil, &gfx.ContextUnavailableError{
		Wanted:            gfx.LevelWebGL2,
		Fallback:          gfx.LevelWebGL1,
		FallbackSupported: fallback,
	}
}
