// Package tui renders view descriptors as terminal text and drives the
// interactive browser behind `gyegictl browse`.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gyegi/calendar/internal/calendar"
	"github.com/gyegi/calendar/internal/config"
	"github.com/gyegi/calendar/internal/nav"
	"github.com/gyegi/calendar/internal/view"
)

// Styles decorate the parts of a frame.
type Styles struct {
	Title    lipgloss.Style
	Weekday  lipgloss.Style
	Today    lipgloss.Style
	Event    lipgloss.Style
	Selected lipgloss.Style
	Theme    lipgloss.Style
	Muted    lipgloss.Style
}

// PlainStyles leaves every string untouched. One-shot commands and tests use it.
func PlainStyles() Styles {
	s := lipgloss.NewStyle()
	return Styles{Title: s, Weekday: s, Today: s, Event: s, Selected: s, Theme: s, Muted: s}
}

// ColorStyles is the palette of the interactive browser.
func ColorStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Weekday:  lipgloss.NewStyle().Faint(true),
		Today:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		Event:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Selected: lipgloss.NewStyle().Reverse(true),
		Theme:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Muted:    lipgloss.NewStyle().Faint(true),
	}
}

// Formatter turns descriptors into frames.
type Formatter struct {
	Styles Styles
	// Selected highlights one day of a month view. Zero selects nothing.
	Selected calendar.Date
}

// Format renders d with plain styles.
func Format(d view.Descriptor, hint nav.Transition) string {
	return Formatter{Styles: PlainStyles()}.Format(d, hint)
}

// Format renders d. The hint only decorates the title.
func (f Formatter) Format(d view.Descriptor, hint nav.Transition) string {
	var b strings.Builder
	switch v := d.(type) {
	case view.YearView:
		f.year(&b, v, hint)
	case view.MonthView:
		f.month(&b, v, hint)
	}
	return b.String()
}

func hintPrefix(hint nav.Transition) string {
	switch hint {
	case nav.TransitionForward:
		return config.TUIHintForward
	case nav.TransitionBackward:
		return config.TUIHintBackward
	default:
		return ""
	}
}

func (f Formatter) year(b *strings.Builder, v view.YearView, hint nav.Transition) {
	b.WriteString(f.Styles.Title.Render(hintPrefix(hint) + fmt.Sprintf(config.TUIYearTitle, v.Year)))
	b.WriteString("\n")
	for _, m := range v.Months {
		b.WriteString("\n")
		b.WriteString(f.Styles.Title.Render(fmt.Sprintf("%s %s", m.Icon, fmt.Sprintf(config.FallbackMonthName, m.Month))))
		b.WriteString("\n")
		f.eventLines(b, m.Events)
	}
}

func (f Formatter) month(b *strings.Builder, v view.MonthView, hint nav.Transition) {
	b.WriteString(f.Styles.Title.Render(hintPrefix(hint) + fmt.Sprintf(config.TUIMonthTitle, v.Year, v.Month, v.Icon)))
	b.WriteString("\n\n")

	for _, w := range config.WeekdayLabels {
		// fmt pads by runes, so a double-width label still fills the cell.
		b.WriteString(f.Styles.Weekday.Render(fmt.Sprintf("%*s", config.TUICellWidth-1, w)))
	}
	b.WriteString("\n")

	cells := v.Cells()
	for row := 0; row < calendar.GridCellCount/config.DaysPerWeek; row++ {
		for col := 0; col < config.DaysPerWeek; col++ {
			b.WriteString(f.cell(cells[row*config.DaysPerWeek+col]))
		}
		b.WriteString("\n")
	}

	if t, ok := v.Trailing.(view.ThemeBlock); ok {
		b.WriteString("\n")
		b.WriteString(f.Styles.Theme.Render(fmt.Sprintf(config.TUIThemeLine, t.Text)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	var events []calendar.EventRecord
	for _, d := range v.Days {
		if d.Event != nil {
			events = append(events, *d.Event)
		}
	}
	f.eventLines(b, events)
}

func (f Formatter) cell(c view.Cell) string {
	switch c.Kind {
	case view.CellTheme:
		return f.Styles.Theme.Render(strings.Repeat(config.TUIThemeFill, config.TUICellWidth-1) + " ")
	case view.CellEmpty:
		return strings.Repeat(" ", config.TUICellWidth)
	}

	d := c.Day
	prefix, mark := " ", " "
	if d.IsToday {
		prefix = config.TUIMarkToday
	}
	if d.Event != nil {
		mark = config.TUIMarkEvent
	}
	text := fmt.Sprintf("%s%2d%s", prefix, d.Day, mark)

	switch {
	case !f.Selected.IsZero() && d.Date == f.Selected:
		return f.Styles.Selected.Render(text)
	case d.IsToday:
		return f.Styles.Today.Render(text)
	case d.Event != nil:
		return f.Styles.Event.Render(text)
	default:
		return text
	}
}

func (f Formatter) eventLines(b *strings.Builder, events []calendar.EventRecord) {
	if len(events) == 0 {
		b.WriteString("  ")
		b.WriteString(f.Styles.Muted.Render(config.FallbackNoEvents))
		b.WriteString("\n")
		return
	}
	for _, e := range events {
		b.WriteString("  ")
		b.WriteString(fmt.Sprintf(config.EventLineFormat, e.Date.Month, e.Date.Day, e.EventName))
		b.WriteString("\n")
	}
}

// FormatEvent renders the details of one event: description, notes and the
// resources of every audience band it targets.
func FormatEvent(ev calendar.EventRecord) string {
	var b strings.Builder
	b.WriteString(ev.DisplayDate)
	b.WriteString(" ")
	b.WriteString(ev.EventName)
	b.WriteString("\n")
	if ev.ShortDescription != "" {
		b.WriteString(ev.ShortDescription)
		b.WriteString("\n")
	}

	notes := ev.Notes
	if notes == "" {
		notes = config.FallbackNoNotes
	}
	b.WriteString(fmt.Sprintf("%s: %s\n", config.TUILabelNotes, notes))

	for _, band := range calendar.GradeBands {
		if !ev.HasBand(band) {
			continue
		}
		res, _ := ev.Resources(band)
		b.WriteString("\n[")
		b.WriteString(string(band))
		b.WriteString("]\n")
		for _, r := range []struct{ label, url string }{
			{config.TUILabelVideo, res.VideoURL},
			{config.TUILabelPPT, res.PPTURL},
			{config.TUILabelSheet, res.WorksheetPDFURL},
			{config.TUILabelQuiz, res.QuizURL},
		} {
			url := r.url
			if !calendar.Available(url) {
				url = config.FallbackNotReady
			}
			b.WriteString(fmt.Sprintf(config.TUIResourceLine, r.label, url))
			b.WriteString("\n")
		}
	}
	return b.String()
}
