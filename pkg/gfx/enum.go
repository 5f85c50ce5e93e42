package gfx

// Enum is a GL enumerant. Values are the OpenGL ES numbers, which WebGL
// shares, so adapters pass them through unchanged.
type Enum uint32

const (
	DepthBufferBit Enum = 0x0100
	ColorBufferBit Enum = 0x4000

	Points        Enum = 0x0000
	Lines         Enum = 0x0001
	LineStrip     Enum = 0x0003
	Triangles     Enum = 0x0004
	TriangleStrip Enum = 0x0005

	Byte          Enum = 0x1400
	UnsignedByte  Enum = 0x1401
	Short         Enum = 0x1402
	UnsignedShort Enum = 0x1403
	Int           Enum = 0x1404
	UnsignedInt   Enum = 0x1405
	Float         Enum = 0x1406

	ArrayBuffer Enum = 0x8892
	StaticDraw  Enum = 0x88E4

	FragmentShader Enum = 0x8B30
	VertexShader   Enum = 0x8B31
	CompileStatus  Enum = 0x8B81
	LinkStatus     Enum = 0x8B82
)

// StageName returns "vertex" or "fragment" for a shader stage enum.
func StageName(stage Enum) string {
	switch stage {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	default:
		return "unknown"
	}
}
