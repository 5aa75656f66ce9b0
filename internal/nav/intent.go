package nav

import (
	"fmt"

	"github.com/gyegi/calendar/internal/calendar"
	"github.com/gyegi/calendar/internal/config"
	"github.com/gyegi/calendar/internal/view"
)

// Intent is a user request recognised by a user interface.
type Intent interface {
	isIntent()
}

// SwitchView selects the year or month view.
type SwitchView struct{ Mode view.Mode }

// JumpToMonth opens a month of the current year.
type JumpToMonth struct{ Month int }

// StepMonth moves forward or backward by Offset months.
type StepMonth struct{ Offset int }

// OpenEvent shows the event on Date, if any.
type OpenEvent struct{ Date calendar.Date }

// Refresh re-renders the current state.
type Refresh struct{}

func (SwitchView) isIntent()  {}
func (JumpToMonth) isIntent() {}
func (StepMonth) isIntent()   {}
func (OpenEvent) isIntent()   {}
func (Refresh) isIntent()     {}

// Dispatch applies an intent. Only an invalid month or an unknown intent
// produce an error; an OpenEvent miss does not.
func (c *Controller) Dispatch(in Intent) error {
	switch in := in.(type) {
	case SwitchView:
		if in.Mode == view.ModeMonth {
			c.SwitchToMonthView()
		} else {
			c.SwitchToYearView()
		}
	case JumpToMonth:
		return c.JumpToMonth(in.Month)
	case StepMonth:
		c.StepMonth(in.Offset)
	case OpenEvent:
		c.OpenEvent(in.Date)
	case Refresh:
		c.Refresh()
	default:
		return fmt.Errorf("%s: %T", config.ErrUnknownIntent, in)
	}
	return nil
}
