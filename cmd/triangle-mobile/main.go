//go:build darwin || linux || windows

// Command triangle-mobile draws the triangle on a native OpenGL ES
// surface through golang.org/x/mobile. Build an APK with
//
//	gomobile build github.com/kjkrol/glboot/cmd/triangle-mobile
//
// or run it on the desktop with go run.
package main

import (
	"log/slog"
	"os"

	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/gl"

	"github.com/kjkrol/glboot/internal/platform"
	"github.com/kjkrol/glboot/internal/platform/mobile"
	"github.com/kjkrol/glboot/internal/renderer"
	"github.com/kjkrol/glboot/pkg/gfx"
)

func main() {
	gfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))

	conf := renderer.DefaultConfig()
	bootstrap := renderer.New(conf)
	sink := platform.LoggingSink(nil)

	app.Main(func(a app.App) {
		var glctx gl.Context
		var sz size.Event
		drawn := false
		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					glctx, _ = e.DrawContext.(gl.Context)
					drawn = false
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					glctx = nil
				}
			case size.Event:
				sz = e
			case paint.Event:
				// One frame per visible surface; later system paints
				// keep the published frame.
				if glctx == nil || drawn {
					continue
				}
				doc := mobile.Document{ID: conf.SurfaceID, Target: mobile.NewSurface(glctx, sz)}
				bootstrap.Render(doc, sink)
				drawn = true
				a.Publish()
			}
		}
	})
}
