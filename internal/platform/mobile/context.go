//go:build (darwin || linux || windows) && !js

package mobile

import (
	"golang.org/x/mobile/gl"

	"github.com/kjkrol/glboot/pkg/gfx"
)

// glContext forwards to an x/mobile context. GL names are already integers,
// so handles convert directly.
type glContext struct {
	glctx gl.Context
}

func (c glContext) ClearColor(r, g, b, a float32) { c.glctx.ClearColor(r, g, b, a) }
func (c glContext) Clear(mask gfx.Enum)           { c.glctx.Clear(gl.Enum(mask)) }
func (c glContext) Viewport(x, y, width, height int) {
	c.glctx.Viewport(x, y, width, height)
}

func (c glContext) CreateBuffer() gfx.Buffer {
	return gfx.Buffer(c.glctx.CreateBuffer().Value)
}

func (c glContext) BindBuffer(target gfx.Enum, b gfx.Buffer) {
	c.glctx.BindBuffer(gl.Enum(target), gl.Buffer{Value: uint32(b)})
}

func (c glContext) BufferData(target gfx.Enum, data []byte, usage gfx.Enum) {
	c.glctx.BufferData(gl.Enum(target), data, gl.Enum(usage))
}

func (c glContext) CreateShader(stage gfx.Enum) gfx.Shader {
	return gfx.Shader(c.glctx.CreateShader(gl.Enum(stage)).Value)
}

func (c glContext) ShaderSource(s gfx.Shader, source string) {
	c.glctx.ShaderSource(shader(s), source)
}

func (c glContext) CompileShader(s gfx.Shader) { c.glctx.CompileShader(shader(s)) }

func (c glContext) ShaderCompiled(s gfx.Shader) bool {
	return c.glctx.GetShaderi(shader(s), gl.COMPILE_STATUS) != 0
}

func (c glContext) ShaderInfoLog(s gfx.Shader) string {
	return c.glctx.GetShaderInfoLog(shader(s))
}

func (c glContext) CreateProgram() gfx.Program {
	return gfx.Program(c.glctx.CreateProgram().Value)
}

func (c glContext) AttachShader(p gfx.Program, s gfx.Shader) {
	c.glctx.AttachShader(program(p), shader(s))
}

func (c glContext) LinkProgram(p gfx.Program) { c.glctx.LinkProgram(program(p)) }

func (c glContext) ProgramLinked(p gfx.Program) bool {
	return c.glctx.GetProgrami(program(p), gl.LINK_STATUS) != 0
}

func (c glContext) ProgramInfoLog(p gfx.Program) string {
	return c.glctx.GetProgramInfoLog(program(p))
}

func (c glContext) UseProgram(p gfx.Program) { c.glctx.UseProgram(program(p)) }

// AttribLocation undoes the unsigned conversion x/mobile applies to the
// GLint result, so a missing name reads as -1.
func (c glContext) AttribLocation(p gfx.Program, name string) int {
	a := c.glctx.GetAttribLocation(program(p), name)
	return int(int32(uint32(a.Value)))
}

func (c glContext) EnableVertexAttribArray(slot int) {
	c.glctx.EnableVertexAttribArray(gl.Attrib{Value: uint(slot)})
}

func (c glContext) VertexAttribPointer(slot, size int, typ gfx.Enum, normalized bool, stride, offset int) {
	c.glctx.VertexAttribPointer(gl.Attrib{Value: uint(slot)}, size, gl.Enum(typ), normalized, stride, offset)
}

func (c glContext) DrawArrays(mode gfx.Enum, first, count int) {
	c.glctx.DrawArrays(gl.Enum(mode), first, count)
}

func shader(s gfx.Shader) gl.Shader { return gl.Shader{Value: uint32(s)} }

func program(p gfx.Program) gl.Program { return gl.Program{Init: true, Value: uint32(p)} }
