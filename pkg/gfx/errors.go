package gfx

import (
	"errors"
	"fmt"
)

// SurfaceNotFoundError reports a display surface missing from the document.
type SurfaceNotFoundError struct {
	ID string
}

func (e *SurfaceNotFoundError) Error() string  { return "Canvas element not found" }
func (e *SurfaceNotFoundError) Status() Status { return StatusSurfaceNotFound }

// ContextUnavailableError reports that the wanted level could not be
// obtained. Fallback is the lower level that was probed for the message;
// it is never activated.
type ContextUnavailableError struct {
	Wanted            Level
	Fallback          Level
	FallbackSupported bool
}

func (e *ContextUnavailableError) Error() string {
	support := "not supported"
	if e.FallbackSupported {
		support = "supported"
	}
	return fmt.Sprintf("%s is not supported. %s is %s", e.Wanted, e.Fallback, support)
}

func (e *ContextUnavailableError) Status() Status { return StatusContextUnavailable }

// ShaderCompileError carries the compiler log of a failed stage.
type ShaderCompileError struct {
	Stage Enum
	Log   string
}

func (e *ShaderCompileError) Error() string {
	switch e.Stage {
	case VertexShader:
		return "Vertex shader error: " + e.Log
	case FragmentShader:
		return "Fragment shader error: " + e.Log
	default:
		return "Shader error: " + e.Log
	}
}

func (e *ShaderCompileError) Status() Status { return StatusShaderCompile }

// ProgramLinkError carries the linker log.
type ProgramLinkError struct {
	Log string
}

func (e *ProgramLinkError) Error() string  { return "Shader program error: " + e.Log }
func (e *ProgramLinkError) Status() Status { return StatusProgramLink }

// AttributeNotFoundError names a vertex input that did not resolve after
// linking, usually misspelled or optimized out.
type AttributeNotFoundError struct {
	Name string
}

func (e *AttributeNotFoundError) Error() string {
	return fmt.Sprintf("Vertex attribute %q location not found", e.Name)
}

func (e *AttributeNotFoundError) Status() Status { return StatusAttributeNotFound }

// UncaughtFaultError wraps a panic recovered at the render boundary.
type UncaughtFaultError struct {
	Value any
}

func (e *UncaughtFaultError) Error() string {
	return fmt.Sprintf("Uncaught fault: %v", e.Value)
}

func (e *UncaughtFaultError) Status() Status { return StatusUncaughtFault }

// Unwrap exposes the panic value when it was an error.
func (e *UncaughtFaultError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

type statusError interface {
	error
	Status() Status
}

// StatusOf classifies err. Errors outside the taxonomy are faults.
func StatusOf(err error) Status {
	if err == nil {
		return StatusOK
	}
	var se statusError
	if errors.As(err, &se) {
		return se.Status()
	}
	return StatusUncaughtFault
}
