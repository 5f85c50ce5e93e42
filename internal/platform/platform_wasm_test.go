//go:build js && wasm

package platform

import (
	"syscall/js"
	"testing"

	"github.com/kjkrol/gokg/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjkrol/glboot/pkg/gfx"
)

func object(props map[string]any) js.Value {
	o := js.Global().Get("Object").New()
	for k, v := range props {
		o.Set(k, v)
	}
	return o
}

func method(t *testing.T, fn func(args []js.Value) any) js.Func {
	f := js.FuncOf(func(this js.Value, args []js.Value) any { return fn(args) })
	t.Cleanup(f.Release)
	return f
}

// useDocument installs a document exposing elements by id for the test.
func useDocument(t *testing.T, readyState string, elements map[string]js.Value) js.Value {
	doc := object(map[string]any{
		"readyState":     readyState,
		"getElementById": method(t, func(args []js.Value) any {
			if el, ok := elements[args[0].String()]; ok {
				return el
			}
			return js.Null()
		}),
	})
	prev := js.Global().Get("document")
	js.Global().Set("document", doc)
	t.Cleanup(func() { js.Global().Set("document", prev) })
	return doc
}

func newCanvas(t *testing.T, width, height int, contexts map[string]js.Value) js.Value {
	return object(map[string]any{
		"clientWidth":  width,
		"clientHeight": height,
		"getContext":   method(t, func(args []js.Value) any {
			if gl, ok := contexts[args[0].String()]; ok {
				return gl
			}
			return js.Null()
		}),
	})
}

type webglRecorder struct {
	calls    []string
	uploaded []byte
}

// newWebGL returns a WebGL-shaped object that records calls by name and
// answers null for shader info logs.
func newWebGL(t *testing.T, rec *webglRecorder) js.Value {
	recorded := func(name string, ret func(args []js.Value) any) js.Func {
		return method(t, func(args []js.Value) any {
			rec.calls = append(rec.calls, name)
			if ret == nil {
				return nil
			}
			return ret(args)
		})
	}
	newObject := func([]js.Value) any { return object(nil) }
	return object(map[string]any{
		"COMPILE_STATUS":    0x8B81,
		"LINK_STATUS":       0x8B82,
		"createBuffer":      recorded("createBuffer", newObject),
		"createShader":      recorded("createShader", newObject),
		"createProgram":     recorded("createProgram", newObject),
		"shaderSource":      recorded("shaderSource", nil),
		"getShaderInfoLog":  recorded("getShaderInfoLog", func([]js.Value) any { return js.Null() }),
		"getProgramInfoLog": recorded("getProgramInfoLog", func([]js.Value) any { return "link failed" }),
		"getAttribLocation": recorded("getAttribLocation", func([]js.Value) any { return -1 }),
		"bufferData":        recorded("bufferData", func(args []js.Value) any {
			rec.uploaded = make([]byte, args[1].Length())
			js.CopyBytesToGo(rec.uploaded, args[1])
			return nil
		}),
	})
}

func TestDocumentSurfaceLookup(t *testing.T) {
	useDocument(t, "complete", map[string]js.Value{
		"canvas": newCanvas(t, 10, 10, nil),
		"label":  object(nil),
	})
	doc := NewDocument(DefaultConfig())

	_, ok := doc.Surface("canvas")
	assert.True(t, ok)
	_, ok = doc.Surface("label")
	assert.False(t, ok, "elements without getContext are not surfaces")
	_, ok = doc.Surface("missing")
	assert.False(t, ok)
}

func TestSurfaceContextLevels(t *testing.T) {
	rec := &webglRecorder{}
	useDocument(t, "complete", map[string]js.Value{
		"canvas": newCanvas(t, 10, 10, map[string]js.Value{"webgl": newWebGL(t, rec)}),
	})
	surface, ok := NewDocument(DefaultConfig()).Surface("canvas")
	require.True(t, ok)

	_, ok = surface.Context(gfx.LevelWebGL2)
	assert.False(t, ok)
	_, ok = surface.Context(gfx.LevelWebGL1)
	assert.True(t, ok)
	_, ok = surface.Context(gfx.Level(0))
	assert.False(t, ok)
}

func TestSurfaceFitToDisplay(t *testing.T) {
	canvas := newCanvas(t, 300, 150, nil)
	useDocument(t, "complete", map[string]js.Value{"canvas": canvas})
	surface, ok := NewDocument(DefaultConfig()).Surface("canvas")
	require.True(t, ok)

	assert.Equal(t, geometry.Vec[int]{X: 300, Y: 150}, surface.FitToDisplay())
	assert.Equal(t, 300, canvas.Get("width").Int())
	assert.Equal(t, 150, canvas.Get("height").Int())
}

func TestWebGLContextHandles(t *testing.T) {
	rec := &webglRecorder{}
	gl := newContext(newWebGL(t, rec))

	buf := gl.CreateBuffer()
	gl.BufferData(gfx.ArrayBuffer, []byte{1, 2, 3}, gfx.StaticDraw)
	shader := gl.CreateShader(gfx.VertexShader)
	gl.ShaderSource(shader, "void main() {}")

	assert.NotEqual(t, uint32(buf), uint32(shader), "handles are unique across object kinds")
	assert.Equal(t, []byte{1, 2, 3}, rec.uploaded)
	assert.Equal(t, "", gl.ShaderInfoLog(shader), "null info log reads as empty")
	assert.Equal(t, "link failed", gl.ProgramInfoLog(gl.CreateProgram()))
	assert.Equal(t, -1, gl.AttribLocation(1, "position"))
	assert.Equal(t, []string{
		"createBuffer", "bufferData", "createShader", "shaderSource",
		"getShaderInfoLog", "createProgram", "getProgramInfoLog", "getAttribLocation",
	}, rec.calls)
}

func TestErrorSinkShowsElement(t *testing.T) {
	el := object(map[string]any{"style": object(map[string]any{"display": "none"})})
	useDocument(t, "complete", map[string]js.Value{"error-message": el})

	NewDocument(DefaultConfig()).ErrorSink().ShowError("Canvas element not found")

	assert.Equal(t, "Canvas element not found", el.Get("textContent").String())
	assert.Equal(t, "block", el.Get("style").Get("display").String())
}

func TestErrorSinkWithoutElement(t *testing.T) {
	useDocument(t, "complete", nil)
	assert.NotPanics(t, func() {
		NewDocument(DefaultConfig()).ErrorSink().ShowError("Canvas element not found")
	})
}

func TestWhenReadyImmediate(t *testing.T) {
	useDocument(t, "interactive", nil)
	ran := false
	WhenReady(func() { ran = true })
	assert.True(t, ran)
}

func TestWhenReadyWaitsForContentLoaded(t *testing.T) {
	doc := useDocument(t, "loading", nil)
	var listener js.Value
	removed := false
	doc.Set("addEventListener", method(t, func(args []js.Value) any {
		assert.Equal(t, "DOMContentLoaded", args[0].String())
		listener = args[1]
		return nil
	}))
	doc.Set("removeEventListener", method(t, func(args []js.Value) any {
		removed = true
		return nil
	}))

	ran := false
	WhenReady(func() { ran = true })
	require.False(t, ran)
	require.Equal(t, js.TypeFunction, listener.Type())

	listener.Invoke()
	assert.True(t, ran)
	assert.True(t, removed)
}
