//go:build js && wasm

package platform

import (
	"syscall/js"

	"github.com/kjkrol/gokg/pkg/geometry"

	"github.com/kjkrol/glboot/pkg/gfx"
)

var contextNames = map[gfx.Level]string{
	gfx.LevelWebGL2: "webgl2",
	gfx.LevelWebGL1: "webgl",
}

// Document resolves canvases and the error region of the page.
type Document struct {
	doc  js.Value
	conf Config
}

var _ gfx.Document = (*Document)(nil)

// NewDocument wraps the page's document object.
func NewDocument(conf Config) *Document {
	return &Document{doc: js.Global().Get("document"), conf: conf.withDefaults()}
}

func (d *Document) Surface(id string) (gfx.Surface, bool) {
	el := d.element(id)
	if !el.Truthy() || el.Get("getContext").Type() != js.TypeFunction {
		return nil, false
	}
	return &wasmSurface{canvas: el}, true
}

func (d *Document) element(id string) js.Value {
	if !d.doc.Truthy() {
		return js.Null()
	}
	return d.doc.Call("getElementById", id)
}

// ErrorSink returns the sink writing into the configured error element,
// duplicated to the gfx logger.
func (d *Document) ErrorSink() gfx.ErrorSink {
	el := d.element(d.conf.ErrorID)
	if !el.Truthy() {
		return LoggingSink(nil)
	}
	return LoggingSink(errorElement{el: el})
}

type wasmSurface struct {
	canvas js.Value
}

func (s *wasmSurface) Context(level gfx.Level) (gfx.Context, bool) {
	name, ok := contextNames[level]
	if !ok {
		return nil, false
	}
	gl := s.canvas.Call("getContext", name)
	if !gl.Truthy() {
		return nil, false
	}
	return newContext(gl), true
}

func (s *wasmSurface) FitToDisplay() geometry.Vec[int] {
	size := geometry.Vec[int]{
		X: s.canvas.Get("clientWidth").Int(),
		Y: s.canvas.Get("clientHeight").Int(),
	}
	s.canvas.Set("width", size.X)
	s.canvas.Set("height", size.Y)
	return size
}

type errorElement struct {
	el js.Value
}

func (e errorElement) ShowError(message string) {
	e.el.Set("textContent", message)
	e.el.Get("style").Set("display", "block")
}

// WhenReady runs fn once the document has been parsed.
func WhenReady(fn func()) {
	doc := js.Global().Get("document")
	if doc.Get("readyState").String() != "loading" {
		fn()
		return
	}
	var listener js.Func
	listener = js.FuncOf(func(this js.Value, args []js.Value) any {
		doc.Call("removeEventListener", "DOMContentLoaded", listener)
		listener.Release()
		fn()
		return nil
	})
	doc.Call("addEventListener", "DOMContentLoaded", listener)
}
