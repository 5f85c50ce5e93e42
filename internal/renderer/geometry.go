package renderer

import (
	"encoding/binary"

	"github.com/gogpu/gputypes"
	"golang.org/x/mobile/exp/f32"
)

const (
	coordsPerVertex = 2
	vertexStride    = coordsPerVertex * 4
)

var triangleVertexData = f32.Bytes(binary.LittleEndian,
	0.0, 0.5, // top
	-0.5, -0.5, // bottom left
	0.5, -0.5, // bottom right
)

// triangleLayout feeds the position attribute from tightly packed vec2s.
var triangleLayout = gputypes.VertexBufferLayout{
	ArrayStride: vertexStride,
	StepMode:    gputypes.VertexStepModeVertex,
	Attributes: []gputypes.VertexAttribute{
		{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
	},
}

var triangleTopology = gputypes.PrimitiveTopologyTriangleList
