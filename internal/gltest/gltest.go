// Package gltest provides a recording fake of the gfx call surface.
package gltest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kjkrol/glboot/pkg/gfx"
)

// Call is one recorded GL call.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

var inputPattern = regexp.MustCompile(`(?m)^\s*(?:layout\s*\([^)]*\)\s*)?in\s+\w+\s+(\w+)\s*;`)

type shaderState struct {
	stage    gfx.Enum
	source   string
	compiled bool
	log      string
}

type programState struct {
	shaders []gfx.Shader
	linked  bool
	log     string
	inputs  []string
}

// Context records every call. Compilation is simulated: a stage compiles
// when it declares "#version 300 es" and a main function, and vertex
// inputs declared with "in <type> <name>;" become attribute slots in
// declaration order.
type Context struct {
	Calls   []Call
	Buffers map[gfx.Buffer][]byte

	// LinkLog forces linking to fail with this log when non-empty.
	LinkLog string
	// PanicOn panics when the named call is made.
	PanicOn string

	next     uint32
	shaders  map[gfx.Shader]*shaderState
	programs map[gfx.Program]*programState
}

var _ gfx.Context = (*Context)(nil)

func NewContext() *Context {
	return &Context{
		Buffers:  make(map[gfx.Buffer][]byte),
		shaders:  make(map[gfx.Shader]*shaderState),
		programs: make(map[gfx.Program]*programState),
	}
}

func (c *Context) record(name string, args ...any) {
	if c.PanicOn == name {
		panic(fmt.Sprintf("%s: context lost", name))
	}
	c.Calls = append(c.Calls, Call{Name: name, Args: args})
}

func (c *Context) id() uint32 {
	c.next++
	return c.next
}

// Count returns how many times name was called.
func (c *Context) Count(name string) int {
	n := 0
	for _, call := range c.Calls {
		if call.Name == name {
			n++
		}
	}
	return n
}

// Find returns the recorded calls named name.
func (c *Context) Find(name string) []Call {
	var out []Call
	for _, call := range c.Calls {
		if call.Name == name {
			out = append(out, call)
		}
	}
	return out
}

// Names returns the call names in order.
func (c *Context) Names() []string {
	out := make([]string, len(c.Calls))
	for i, call := range c.Calls {
		out[i] = call.Name
	}
	return out
}

func (c *Context) ClearColor(r, g, b, a float32) { c.record("clearColor", r, g, b, a) }
func (c *Context) Clear(mask gfx.Enum)           { c.record("clear", mask) }
func (c *Context) Viewport(x, y, width, height int) {
	c.record("viewport", x, y, width, height)
}

func (c *Context) CreateBuffer() gfx.Buffer {
	b := gfx.Buffer(c.id())
	c.record("createBuffer", b)
	return b
}

func (c *Context) BindBuffer(target gfx.Enum, b gfx.Buffer) { c.record("bindBuffer", target, b) }

func (c *Context) BufferData(target gfx.Enum, data []byte, usage gfx.Enum) {
	c.record("bufferData", target, len(data), usage)
	var bound gfx.Buffer
	for i := len(c.Calls) - 1; i >= 0; i-- {
		if c.Calls[i].Name == "bindBuffer" {
			bound = c.Calls[i].Args[1].(gfx.Buffer)
			break
		}
	}
	c.Buffers[bound] = append([]byte(nil), data...)
}

func (c *Context) CreateShader(stage gfx.Enum) gfx.Shader {
	s := gfx.Shader(c.id())
	c.record("createShader", stage)
	c.shaders[s] = &shaderState{stage: stage}
	return s
}

func (c *Context) ShaderSource(s gfx.Shader, source string) {
	c.record("shaderSource", s)
	if st := c.shaders[s]; st != nil {
		st.source = source
	}
}

func (c *Context) CompileShader(s gfx.Shader) {
	c.record("compileShader", s)
	st := c.shaders[s]
	if st == nil {
		return
	}
	switch {
	case !strings.HasPrefix(st.source, "#version 300 es"):
		st.log = "ERROR: 0:1: '' : missing #version 300 es"
	case !strings.Contains(st.source, "void main()"):
		st.log = "ERROR: 0:1: 'main' : function not defined"
	default:
		st.compiled = true
		st.log = ""
	}
}

func (c *Context) ShaderCompiled(s gfx.Shader) bool {
	st := c.shaders[s]
	return st != nil && st.compiled
}

func (c *Context) ShaderInfoLog(s gfx.Shader) string {
	if st := c.shaders[s]; st != nil {
		return st.log
	}
	return ""
}

func (c *Context) CreateProgram() gfx.Program {
	p := gfx.Program(c.id())
	c.record("createProgram", p)
	c.programs[p] = &programState{}
	return p
}

func (c *Context) AttachShader(p gfx.Program, s gfx.Shader) {
	c.record("attachShader", p, s)
	if ps := c.programs[p]; ps != nil {
		ps.shaders = append(ps.shaders, s)
	}
}

func (c *Context) LinkProgram(p gfx.Program) {
	c.record("linkProgram", p)
	ps := c.programs[p]
	if ps == nil {
		return
	}
	if c.LinkLog != "" {
		ps.log = c.LinkLog
		return
	}
	var stages []gfx.Enum
	for _, s := range ps.shaders {
		st := c.shaders[s]
		if st == nil || !st.compiled {
			ps.log = "ERROR: attached shader not compiled"
			return
		}
		stages = append(stages, st.stage)
		if st.stage == gfx.VertexShader {
			for _, m := range inputPattern.FindAllStringSubmatch(st.source, -1) {
				ps.inputs = append(ps.inputs, m[1])
			}
		}
	}
	if len(stages) != 2 {
		ps.log = "ERROR: program needs a vertex and a fragment shader"
		return
	}
	ps.linked = true
}

func (c *Context) ProgramLinked(p gfx.Program) bool {
	ps := c.programs[p]
	return ps != nil && ps.linked
}

func (c *Context) ProgramInfoLog(p gfx.Program) string {
	if ps := c.programs[p]; ps != nil {
		return ps.log
	}
	return ""
}

func (c *Context) UseProgram(p gfx.Program) { c.record("useProgram", p) }

func (c *Context) AttribLocation(p gfx.Program, name string) int {
	c.record("getAttribLocation", p, name)
	ps := c.programs[p]
	if ps == nil || !ps.linked {
		return -1
	}
	for i, in := range ps.inputs {
		if in == name {
			return i
		}
	}
	return -1
}

func (c *Context) EnableVertexAttribArray(slot int) { c.record("enableVertexAttribArray", slot) }

func (c *Context) VertexAttribPointer(slot, size int, typ gfx.Enum, normalized bool, stride, offset int) {
	c.record("vertexAttribPointer", slot, size, typ, normalized, stride, offset)
}

func (c *Context) DrawArrays(mode gfx.Enum, first, count int) {
	c.record("drawArrays", mode, first, count)
}
