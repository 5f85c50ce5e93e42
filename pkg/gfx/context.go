package gfx

// Buffer, Shader and Program are opaque GPU object handles issued by a
// Context. The zero value is never a live object.
type (
	Buffer  uint32
	Shader  uint32
	Program uint32
)

// Context is the subset of the WebGL 2 / OpenGL ES 3 call surface the
// bootstrap renderer drives. Methods map one to one onto GL calls;
// ShaderCompiled and ProgramLinked read COMPILE_STATUS and LINK_STATUS.
//
// AttribLocation returns -1 when the name does not resolve.
type Context interface {
	ClearColor(r, g, b, a float32)
	Clear(mask Enum)
	Viewport(x, y, width, height int)

	CreateBuffer() Buffer
	BindBuffer(target Enum, b Buffer)
	BufferData(target Enum, data []byte, usage Enum)

	CreateShader(stage Enum) Shader
	ShaderSource(s Shader, source string)
	CompileShader(s Shader)
	ShaderCompiled(s Shader) bool
	ShaderInfoLog(s Shader) string

	CreateProgram() Program
	AttachShader(p Program, s Shader)
	LinkProgram(p Program)
	ProgramLinked(p Program) bool
	ProgramInfoLog(p Program) string
	UseProgram(p Program)

	AttribLocation(p Program, name string) int
	EnableVertexAttribArray(slot int)
	VertexAttribPointer(slot, size int, typ Enum, normalized bool, stride, offset int)

	DrawArrays(mode Enum, first, count int)
}

// Level is a context capability level. Higher levels are preferred.
type Level int

const (
	LevelWebGL1 Level = iota + 1
	LevelWebGL2
)

// String returns the API name shown to users.
func (l Level) String() string {
	switch l {
	case LevelWebGL1:
		return "WebGL 1"
	case LevelWebGL2:
		return "WebGL 2"
	default:
		return "unknown"
	}
}
