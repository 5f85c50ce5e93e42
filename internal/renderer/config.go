package renderer

import (
	"image/color"

	"github.com/gogpu/gputypes"
	"github.com/kjkrol/glboot/pkg/gfx"
)

// Config describes the fixed inputs of the bootstrap renderer. Zero fields
// take the value from DefaultConfig.
//
// VertexSource and FragmentSource are not a host setting; they exist so
// tests can feed broken stages through the same sequence.
type Config struct {
	SurfaceID         string
	PositionAttribute string
	ClearColor        gputypes.Color
	VertexSource      string
	FragmentSource    string
}

// Background is the clear colour shown while loading and behind the triangle.
var Background = color.RGBA{R: 3, G: 190, B: 252, A: 255}

func DefaultConfig() Config {
	return Config{
		SurfaceID:         "canvas",
		PositionAttribute: "position",
		ClearColor:        gfx.ColorFrom(Background),
		VertexSource:      vertexShaderSource,
		FragmentSource:    fragmentShaderSource,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.SurfaceID == "" {
		c.SurfaceID = def.SurfaceID
	}
	if c.PositionAttribute == "" {
		c.PositionAttribute = def.PositionAttribute
	}
	if c.ClearColor == (gputypes.Color{}) {
		c.ClearColor = def.ClearColor
	}
	if c.VertexSource == "" {
		c.VertexSource = def.VertexSource
	}
	if c.FragmentSource == "" {
		c.FragmentSource = def.FragmentSource
	}
	return c
}
