// Package nav owns the navigation position and drives re-rendering.
//
// A Controller is not safe for concurrent use. User interfaces call it from
// their event loop only.
package nav

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gyegi/calendar/internal/calendar"
	"github.com/gyegi/calendar/internal/config"
	"github.com/gyegi/calendar/internal/view"
)

// ErrInvalidMonth is returned by JumpToMonth for months outside 1..12.
var ErrInvalidMonth = errors.New(config.ErrInvalidMonth)

// Transition is an animation hint for the sink. It never affects state.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionForward
	TransitionBackward
)

func (t Transition) String() string {
	switch t {
	case TransitionForward:
		return "forward"
	case TransitionBackward:
		return "backward"
	default:
		return "none"
	}
}

// Sink displays descriptors. Rendering the same descriptor twice must leave
// the same visible state.
type Sink interface {
	Render(d view.Descriptor, hint Transition)
}

// EventPresenter is implemented by sinks able to show an event's details.
type EventPresenter interface {
	PresentEvent(ev calendar.EventRecord)
}

// Options configure the initial navigation state.
type Options struct {
	// Year defaults to config.DefaultYear.
	Year int
	// InitialMode defaults to the year view.
	InitialMode view.Mode
	// Clock decides the real current month. Defaults to the system clock.
	Clock calendar.Clock
}

// Controller is the single owner of the navigation state.
type Controller struct {
	model *view.Model
	sink  Sink
	clock calendar.Clock
	state view.State
	log   *slog.Logger
}

// NewController creates a controller positioned at opts.Year and the real
// current month. Nothing is rendered until the first operation or Refresh.
func NewController(model *view.Model, sink Sink, opts Options) *Controller {
	clock := opts.Clock
	if clock == nil {
		clock = calendar.RealClock{}
	}
	year := opts.Year
	if year == 0 {
		year = config.DefaultYear
	}
	return &Controller{
		model: model,
		sink:  sink,
		clock: clock,
		state: view.State{
			Mode:  opts.InitialMode,
			Year:  year,
			Month: int(clock.Now().Month()),
		},
		log: slog.With(slog.String(config.LogKeyComponent, config.CompNav)),
	}
}

// State returns a copy of the current navigation state.
func (c *Controller) State() view.State {
	return c.state
}

// SwitchToYearView shows the year view. Year and month are unchanged.
func (c *Controller) SwitchToYearView() {
	c.state.Mode = view.ModeYear
	c.render(TransitionNone)
}

// SwitchToMonthView shows the month view of the real current month, not the
// last month viewed. The year is unchanged.
func (c *Controller) SwitchToMonthView() {
	c.state.Mode = view.ModeMonth
	c.state.Month = int(c.clock.Now().Month())
	c.render(TransitionNone)
}

// JumpToMonth shows the month view of month in the current year.
func (c *Controller) JumpToMonth(month int) error {
	if !calendar.ValidMonth(month) {
		return fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}
	c.state.Mode = view.ModeMonth
	c.state.Month = month
	c.render(TransitionNone)
	return nil
}

// StepMonth moves by offset months, carrying into the year, and returns the
// direction hint that was passed to the sink.
func (c *Controller) StepMonth(offset int) Transition {
	c.state.Year, c.state.Month = calendar.AddMonths(c.state.Year, c.state.Month, offset)

	hint := TransitionNone
	switch {
	case offset > 0:
		hint = TransitionForward
	case offset < 0:
		hint = TransitionBackward
	}
	c.render(hint)
	return hint
}

// Refresh re-renders the current state without changing it.
func (c *Controller) Refresh() {
	c.render(TransitionNone)
}

// OpenEvent hands the event on d to the sink when it can present events.
// It reports whether an event was found. A miss is not an error.
func (c *Controller) OpenEvent(d calendar.Date) bool {
	ev, ok := c.model.Store.EventByDate(d)
	if !ok {
		c.log.Debug(config.MsgEventMiss, slog.String(config.LogKeyDate, d.String()))
		return false
	}
	if p, isPresenter := c.sink.(EventPresenter); isPresenter {
		c.log.Debug(config.MsgOpenEvent, slog.String(config.LogKeyEventID, ev.ID))
		p.PresentEvent(ev)
	}
	return true
}

func (c *Controller) render(hint Transition) {
	c.log.Debug(config.MsgNavigate,
		slog.String(config.LogKeyMode, c.state.Mode.String()),
		slog.Int(config.LogKeyYear, c.state.Year),
		slog.Int(config.LogKeyMonth, c.state.Month),
		slog.String(config.LogKeyHint, hint.String()),
	)
	c.sink.Render(c.model.Build(c.state), hint)
}
