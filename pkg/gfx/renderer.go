package gfx

// Renderer draws one frame into a surface of doc, reporting any failure
// to sink exactly once.
type Renderer interface {
	Render(doc Document, sink ErrorSink) Result
}
