package platform

import (
	"log/slog"

	"github.com/kjkrol/glboot/pkg/gfx"
)

type loggingSink struct {
	next   gfx.ErrorSink
	logger func() *slog.Logger
}

// LoggingSink shows each error in next and duplicates it to the gfx
// logger. A nil next only logs.
func LoggingSink(next gfx.ErrorSink) gfx.ErrorSink {
	return &loggingSink{next: next, logger: gfx.Logger}
}

func (s *loggingSink) ShowError(message string) {
	if s.next != nil {
		s.next.ShowError(message)
	}
	s.logger().Error(message)
}
