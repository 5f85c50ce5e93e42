package gfx

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// AttribPointer holds the arguments of one vertexAttribPointer call.
type AttribPointer struct {
	Size       int
	Type       Enum
	Normalized bool
	Stride     int
	Offset     int
}

// VertexAttribPointer derives the GL pointer description of attribute i of
// layout. Only per-vertex float formats are supported.
func VertexAttribPointer(layout gputypes.VertexBufferLayout, i int) (AttribPointer, error) {
	if i < 0 || i >= len(layout.Attributes) {
		return AttribPointer{}, fmt.Errorf("vertex layout has no attribute %d", i)
	}
	if layout.StepMode != gputypes.VertexStepModeVertex {
		return AttribPointer{}, fmt.Errorf("unsupported vertex step mode %v", layout.StepMode)
	}
	attr := layout.Attributes[i]
	size, err := formatComponents(attr.Format)
	if err != nil {
		return AttribPointer{}, err
	}
	return AttribPointer{
		Size:       size,
		Type:       Float,
		Normalized: false,
		Stride:     int(layout.ArrayStride),
		Offset:     int(attr.Offset),
	}, nil
}

func formatComponents(format gputypes.VertexFormat) (int, error) {
	switch format {
	case gputypes.VertexFormatFloat32:
		return 1, nil
	case gputypes.VertexFormatFloat32x2:
		return 2, nil
	case gputypes.VertexFormatFloat32x3:
		return 3, nil
	case gputypes.VertexFormatFloat32x4:
		return 4, nil
	default:
		return 0, fmt.Errorf("unsupported vertex format %v", format)
	}
}

// VertexCount returns how many whole vertices of layout fit in n bytes.
func VertexCount(layout gputypes.VertexBufferLayout, n int) int {
	if layout.ArrayStride == 0 {
		return 0
	}
	return n / int(layout.ArrayStride)
}

// DrawMode maps a primitive topology onto the drawArrays mode.
func DrawMode(topology gputypes.PrimitiveTopology) (Enum, error) {
	switch topology {
	case gputypes.PrimitiveTopologyTriangleList:
		return Triangles, nil
	case gputypes.PrimitiveTopologyTriangleStrip:
		return TriangleStrip, nil
	default:
		return 0, fmt.Errorf("unsupported primitive topology %v", topology)
	}
}
