//go:build js && wasm

package main

import (
	"log/slog"
	"os"

	"github.com/kjkrol/glboot/internal/platform"
	"github.com/kjkrol/glboot/internal/renderer"
	"github.com/kjkrol/glboot/pkg/gfx"
)

func main() {
	// stdout ends up in the browser console
	gfx.SetLogger(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})))

	pconf := platform.DefaultConfig()
	conf := renderer.DefaultConfig()
	conf.SurfaceID = pconf.CanvasID

	done := make(chan gfx.Result, 1)
	platform.WhenReady(func() {
		doc := platform.NewDocument(pconf)
		done <- renderer.New(conf).Render(doc, doc.ErrorSink())
	})
	if res := <-done; !res.OK() {
		os.Exit(1)
	}
}
