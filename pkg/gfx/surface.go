package gfx

import "github.com/kjkrol/gokg/pkg/geometry"

// Document resolves display surfaces by their logical name.
type Document interface {
	Surface(id string) (Surface, bool)
}

// Surface is a drawable region that can hand out a GPU context.
type Surface interface {
	// Context returns a context of exactly the requested level, or false
	// when the host cannot provide one.
	Context(level Level) (Context, bool)
	// FitToDisplay sets the pixel size to the current logical size and
	// returns it. It is a snapshot, not a resize subscription.
	FitToDisplay() geometry.Vec[int]
}

// ErrorSink receives human-readable error text for the user.
type ErrorSink interface {
	ShowError(message string)
}

// ErrorSinkFunc adapts a function to ErrorSink.
type ErrorSinkFunc func(message string)

func (f ErrorSinkFunc) ShowError(message string) { f(message) }
