package gfx

// Status is the outcome of one render attempt.
type Status int

const (
	StatusOK Status = iota
	StatusSurfaceNotFound
	StatusContextUnavailable
	StatusShaderCompile
	StatusProgramLink
	StatusAttributeNotFound
	StatusUncaughtFault
)

var statusNames = [...]string{
	StatusOK:                 "ok",
	StatusSurfaceNotFound:    "surface not found",
	StatusContextUnavailable: "context unavailable",
	StatusShaderCompile:      "shader compile error",
	StatusProgramLink:        "program link error",
	StatusAttributeNotFound:  "attribute not found",
	StatusUncaughtFault:      "uncaught fault",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}
	return statusNames[s]
}

// Result is returned by Renderer.Render. Err is nil exactly when Status is
// StatusOK.
type Result struct {
	Status Status
	Err    error
}

// Succeeded returns a successful result.
func Succeeded() Result { return Result{Status: StatusOK} }

// Failed classifies err into a result.
func Failed(err error) Result { return Result{Status: StatusOf(err), Err: err} }

// OK reports whether the frame was drawn.
func (r Result) OK() bool { return r.Status == StatusOK }

// Message returns the user-facing text, empty on success.
func (r Result) Message() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}
