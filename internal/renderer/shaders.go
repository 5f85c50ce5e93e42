package renderer

import "github.com/kjkrol/glboot/pkg/gfx"

const vertexShaderSource = `#version 300 es
precision mediump float;

in vec2 position;

void main() {
  gl_Position = vec4(position, 0.0, 1.0);
}
`

const fragmentShaderSource = `#version 300 es
precision mediump float;

out vec4 fragColor;

void main() {
  fragColor = vec4(0.1, 0.9, 0.2, 1.0);
}
`

func compileShader(gl gfx.Context, stage gfx.Enum, source string) (gfx.Shader, error) {
	shader := gl.CreateShader(stage)
	gl.ShaderSource(shader, source)
	gl.CompileShader(shader)
	if !gl.ShaderCompiled(shader) {
		return 0, &gfx.ShaderCompileError{Stage: stage, Log: gl.ShaderInfoLog(shader)}
	}
	return shader, nil
}

func buildProgram(gl gfx.Context, vertexSource, fragmentSource string) (gfx.Program, error) {
	vertexShader, err := compileShader(gl, gfx.VertexShader, vertexSource)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(gl, gfx.FragmentShader, fragmentSource)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	if !gl.ProgramLinked(program) {
		return 0, &gfx.ProgramLinkError{Log: gl.ProgramInfoLog(program)}
	}
	return program, nil
}
