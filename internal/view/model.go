// Package view turns the event store and a navigation position into
// immutable descriptors for the year and month views.
package view

import (
	"fmt"

	"github.com/gyegi/calendar/internal/calendar"
	"github.com/gyegi/calendar/internal/config"
)

// ThemeSource provides the free-text theme of a month, "" when none.
type ThemeSource interface {
	Theme(month int) string
}

// Model builds descriptors. Descriptors are rebuilt on every render.
type Model struct {
	Store  *calendar.EventStore
	Themes ThemeSource
	Clock  calendar.Clock
}

// NewModel creates a Model. A nil clock uses the system clock.
func NewModel(store *calendar.EventStore, themes ThemeSource, clock calendar.Clock) *Model {
	if clock == nil {
		clock = calendar.RealClock{}
	}
	return &Model{Store: store, Themes: themes, Clock: clock}
}

// Build returns the descriptor for the given state.
// It panics when s.Month is outside 1..12.
func (m *Model) Build(s State) Descriptor {
	if s.Mode == ModeMonth {
		return m.MonthView(s.Year, s.Month)
	}
	mustMonth(s.Month)
	return m.YearView(s.Year)
}

// YearView summarises the twelve months of year.
func (m *Model) YearView(year int) YearView {
	v := YearView{Year: year}
	for i := range v.Months {
		month := i + 1
		v.Months[i] = MonthSummary{
			Month:  month,
			Icon:   config.MonthIcons[i],
			Events: m.Store.EventsInMonth(year, month),
		}
	}
	return v
}

// MonthView lays out a month on the 42-cell grid.
// It panics when month is outside 1..12.
func (m *Model) MonthView(year, month int) MonthView {
	mustMonth(month)

	leading := calendar.FirstWeekday(year, month)
	dim := calendar.DaysInMonth(year, month)
	if leading+dim > calendar.GridCellCount {
		panic(fmt.Sprintf("%s: %04d-%02d", config.ErrGridOverflow, year, month))
	}

	today := calendar.DateOf(m.Clock.Now())
	days := make([]DayCell, dim)
	for i := range days {
		d := calendar.NewDate(year, month, i+1)
		cell := DayCell{Day: i + 1, Date: d, IsToday: d == today}
		if ev, ok := m.Store.EventByDate(d); ok {
			cell.Event = &ev
		}
		days[i] = cell
	}

	remaining := calendar.GridCellCount - leading - dim
	var trailing Trailing = EmptyCells{Count: remaining}
	if theme := m.theme(month); theme != "" && remaining > 0 {
		trailing = ThemeBlock{Text: theme, Span: remaining}
	}

	return MonthView{
		Year:     year,
		Month:    month,
		Icon:     config.MonthIcons[month-1],
		Leading:  leading,
		Days:     days,
		Trailing: trailing,
	}
}

func (m *Model) theme(month int) string {
	if m.Themes == nil {
		return ""
	}
	return m.Themes.Theme(month)
}

func mustMonth(month int) {
	if !calendar.ValidMonth(month) {
		panic(fmt.Sprintf("%s: %d", config.ErrMonthRange, month))
	}
}
