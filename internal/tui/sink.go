package tui

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/gyegi/calendar/internal/calendar"
	"github.com/gyegi/calendar/internal/config"
	"github.com/gyegi/calendar/internal/nav"
	"github.com/gyegi/calendar/internal/view"
)

// TextSink writes one complete frame per render. Rendering the same
// descriptor twice writes the same frame twice.
type TextSink struct {
	W      io.Writer
	Styles Styles
}

// NewTextSink creates a plain-text sink writing to w.
func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{W: w, Styles: PlainStyles()}
}

// Render implements nav.Sink.
func (s *TextSink) Render(d view.Descriptor, hint nav.Transition) {
	s.write(Formatter{Styles: s.Styles}.Format(d, hint))
}

// PresentEvent implements nav.EventPresenter.
func (s *TextSink) PresentEvent(ev calendar.EventRecord) {
	s.write(FormatEvent(ev))
}

func (s *TextSink) write(frame string) {
	if _, err := fmt.Fprint(s.W, frame); err != nil {
		slog.Warn(config.ErrWriteOutput,
			slog.String(config.LogKeyComponent, config.CompTUI),
			slog.Any(config.LogKeyError, err),
		)
	}
}
