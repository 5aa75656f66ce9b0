package view

import "github.com/gyegi/calendar/internal/calendar"

// Mode selects which of the two calendar views is shown.
type Mode int

const (
	ModeYear Mode = iota
	ModeMonth
)

func (m Mode) String() string {
	if m == ModeMonth {
		return "month"
	}
	return "year"
}

// State is the navigation position. Month is always in 1..12, including while
// the year view is shown.
type State struct {
	Mode  Mode
	Year  int
	Month int
}

// Descriptor is an immutable description of what a sink must display.
// It is either a YearView or a MonthView.
type Descriptor interface {
	ViewMode() Mode
}

// MonthSummary is one card of the year view.
type MonthSummary struct {
	Month  int
	Icon   string
	Events []calendar.EventRecord
}

// YearView lists the twelve months of a year with their events.
type YearView struct {
	Year   int
	Months [12]MonthSummary
}

func (YearView) ViewMode() Mode { return ModeYear }

// DayCell is one day of a month grid.
type DayCell struct {
	Day     int
	Date    calendar.Date
	Event   *calendar.EventRecord
	IsToday bool
}

// Trailing is what fills the grid after the last day: a ThemeBlock or
// EmptyCells, never both.
type Trailing interface {
	CellCount() int
}

// ThemeBlock is a single merged cell carrying the monthly theme.
type ThemeBlock struct {
	Text string
	Span int
}

func (t ThemeBlock) CellCount() int { return t.Span }

// EmptyCells pads the grid when the month has no theme.
type EmptyCells struct {
	Count int
}

func (e EmptyCells) CellCount() int { return e.Count }

// MonthView is the 7-column grid of a single month.
type MonthView struct {
	Year     int
	Month    int
	Icon     string
	Leading  int
	Days     []DayCell
	Trailing Trailing
}

func (MonthView) ViewMode() Mode { return ModeMonth }

// CellKind tags a flattened grid cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellDay
	CellTheme
)

// Cell is one slot of the flattened 42-cell grid.
type Cell struct {
	Kind CellKind
	Day  *DayCell
	Text string
}

// Cells flattens the month into exactly calendar.GridCellCount cells.
// A theme block yields Span cells of kind CellTheme.
func (v MonthView) Cells() []Cell {
	cells := make([]Cell, 0, calendar.GridCellCount)
	for i := 0; i < v.Leading; i++ {
		cells = append(cells, Cell{Kind: CellEmpty})
	}
	for i := range v.Days {
		cells = append(cells, Cell{Kind: CellDay, Day: &v.Days[i]})
	}
	switch t := v.Trailing.(type) {
	case ThemeBlock:
		for i := 0; i < t.Span; i++ {
			cells = append(cells, Cell{Kind: CellTheme, Text: t.Text})
		}
	case EmptyCells:
		for i := 0; i < t.Count; i++ {
			cells = append(cells, Cell{Kind: CellEmpty})
		}
	}
	return cells
}
