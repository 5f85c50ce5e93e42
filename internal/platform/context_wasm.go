//go:build js && wasm

package platform

import (
	"syscall/js"

	"github.com/kjkrol/glboot/pkg/gfx"
)

// webglContext drives a WebGL rendering context object. GL objects live
// in a handle table so gfx handles stay plain integers.
type webglContext struct {
	gl      js.Value
	consts  glConsts
	next    uint32
	objects map[uint32]js.Value
}

type glConsts struct {
	compileStatus int
	linkStatus    int
}

func newContext(gl js.Value) *webglContext {
	return &webglContext{
		gl: gl,
		consts: glConsts{
			compileStatus: gl.Get("COMPILE_STATUS").Int(),
			linkStatus:    gl.Get("LINK_STATUS").Int(),
		},
		objects: make(map[uint32]js.Value),
	}
}

func (c *webglContext) store(v js.Value) uint32 {
	c.next++
	c.objects[c.next] = v
	return c.next
}

func (c *webglContext) object(id uint32) js.Value {
	if v, ok := c.objects[id]; ok {
		return v
	}
	return js.Null()
}

func (c *webglContext) ClearColor(r, g, b, a float32) {
	c.gl.Call("clearColor", r, g, b, a)
}

func (c *webglContext) Clear(mask gfx.Enum) { c.gl.Call("clear", int(mask)) }

func (c *webglContext) Viewport(x, y, width, height int) {
	c.gl.Call("viewport", x, y, width, height)
}

func (c *webglContext) CreateBuffer() gfx.Buffer {
	return gfx.Buffer(c.store(c.gl.Call("createBuffer")))
}

func (c *webglContext) BindBuffer(target gfx.Enum, b gfx.Buffer) {
	c.gl.Call("bindBuffer", int(target), c.object(uint32(b)))
}

func (c *webglContext) BufferData(target gfx.Enum, data []byte, usage gfx.Enum) {
	c.gl.Call("bufferData", int(target), uint8Array(data), int(usage))
}

func (c *webglContext) CreateShader(stage gfx.Enum) gfx.Shader {
	return gfx.Shader(c.store(c.gl.Call("createShader", int(stage))))
}

func (c *webglContext) ShaderSource(s gfx.Shader, source string) {
	c.gl.Call("shaderSource", c.object(uint32(s)), source)
}

func (c *webglContext) CompileShader(s gfx.Shader) {
	c.gl.Call("compileShader", c.object(uint32(s)))
}

func (c *webglContext) ShaderCompiled(s gfx.Shader) bool {
	return c.gl.Call("getShaderParameter", c.object(uint32(s)), c.consts.compileStatus).Truthy()
}

func (c *webglContext) ShaderInfoLog(s gfx.Shader) string {
	return jsString(c.gl.Call("getShaderInfoLog", c.object(uint32(s))))
}

func (c *webglContext) CreateProgram() gfx.Program {
	return gfx.Program(c.store(c.gl.Call("createProgram")))
}

func (c *webglContext) AttachShader(p gfx.Program, s gfx.Shader) {
	c.gl.Call("attachShader", c.object(uint32(p)), c.object(uint32(s)))
}

func (c *webglContext) LinkProgram(p gfx.Program) {
	c.gl.Call("linkProgram", c.object(uint32(p)))
}

func (c *webglContext) ProgramLinked(p gfx.Program) bool {
	return c.gl.Call("getProgramParameter", c.object(uint32(p)), c.consts.linkStatus).Truthy()
}

func (c *webglContext) ProgramInfoLog(p gfx.Program) string {
	return jsString(c.gl.Call("getProgramInfoLog", c.object(uint32(p))))
}

func (c *webglContext) UseProgram(p gfx.Program) {
	c.gl.Call("useProgram", c.object(uint32(p)))
}

func (c *webglContext) AttribLocation(p gfx.Program, name string) int {
	return c.gl.Call("getAttribLocation", c.object(uint32(p)), name).Int()
}

func (c *webglContext) EnableVertexAttribArray(slot int) {
	c.gl.Call("enableVertexAttribArray", slot)
}

func (c *webglContext) VertexAttribPointer(slot, size int, typ gfx.Enum, normalized bool, stride, offset int) {
	c.gl.Call("vertexAttribPointer", slot, size, int(typ), normalized, stride, offset)
}

func (c *webglContext) DrawArrays(mode gfx.Enum, first, count int) {
	c.gl.Call("drawArrays", int(mode), first, count)
}

func uint8Array(data []byte) js.Value {
	arr := js.Global().Get("Uint8Array").New(len(data))
	if len(data) > 0 {
		js.CopyBytesToJS(arr, data)
	}
	return arr
}

// jsString treats a null info log as empty.
func jsString(v js.Value) string {
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}
