package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gyegi/calendar/internal/calendar"
	"github.com/gyegi/calendar/internal/config"
	"github.com/gyegi/calendar/internal/nav"
	"github.com/gyegi/calendar/internal/view"
)

// monthKeys maps the number row to the twelve months.
var monthKeys = map[string]int{
	"1": 1, "2": 2, "3": 3, "4": 4, "5": 5, "6": 6,
	"7": 7, "8": 8, "9": 9, "0": 10, "-": 11, "=": 12,
}

// Screen is the sink of the interactive browser. It keeps the last
// descriptor and the event being shown.
type Screen struct {
	styles   Styles
	current  view.Descriptor
	hint     nav.Transition
	selected calendar.Date
	detail   string
}

// NewScreen creates an empty screen.
func NewScreen(styles Styles) *Screen {
	return &Screen{styles: styles}
}

// Render implements nav.Sink. Navigating away closes the details panel.
func (s *Screen) Render(d view.Descriptor, hint nav.Transition) {
	s.current = d
	s.hint = hint
	s.detail = ""
	if mv, ok := d.(view.MonthView); !ok || !s.selected.In(mv.Year, mv.Month) {
		s.selected = calendar.Date{}
	}
}

// PresentEvent implements nav.EventPresenter.
func (s *Screen) PresentEvent(ev calendar.EventRecord) {
	s.detail = FormatEvent(ev)
}

// View returns the current frame.
func (s *Screen) View() string {
	if s.current == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(Formatter{Styles: s.styles, Selected: s.selected}.Format(s.current, s.hint))
	if s.detail != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Render(s.detail))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(s.styles.Muted.Render(config.TUIHelp))
	b.WriteString("\n")
	return b.String()
}

// eventDates lists the event days of the current month view.
func (s *Screen) eventDates() []calendar.Date {
	mv, ok := s.current.(view.MonthView)
	if !ok {
		return nil
	}
	var dates []calendar.Date
	for _, d := range mv.Days {
		if d.Event != nil {
			dates = append(dates, d.Date)
		}
	}
	return dates
}

// selectNext moves the selection to the next event day, wrapping around.
func (s *Screen) selectNext() {
	dates := s.eventDates()
	if len(dates) == 0 {
		s.selected = calendar.Date{}
		return
	}
	for _, d := range dates {
		if s.selected.Before(d) {
			s.selected = d
			return
		}
	}
	s.selected = dates[0]
}

// Model is the bubbletea program of `gyegictl browse`.
type Model struct {
	ctrl     *nav.Controller
	screen   *Screen
	err      error
	quitting bool
}

// NewModel wraps a controller whose sink is screen and renders the
// initial state.
func NewModel(ctrl *nav.Controller, screen *Screen) Model {
	ctrl.Refresh()
	return Model{ctrl: ctrl, screen: screen}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	var in nav.Intent
	switch k := key.String(); k {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "y":
		in = nav.SwitchView{Mode: view.ModeYear}
	case "m":
		in = nav.SwitchView{Mode: view.ModeMonth}
	case "left", "h":
		in = nav.StepMonth{Offset: -1}
	case "right", "l":
		in = nav.StepMonth{Offset: 1}
	case "tab":
		m.screen.selectNext()
		return m, nil
	case "enter":
		if m.screen.selected.IsZero() {
			return m, nil
		}
		in = nav.OpenEvent{Date: m.screen.selected}
	case "esc":
		m.screen.detail = ""
		return m, nil
	default:
		month, isMonth := monthKeys[k]
		if !isMonth {
			return m, nil
		}
		in = nav.JumpToMonth{Month: month}
	}

	m.err = m.ctrl.Dispatch(in)
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return m.screen.View() + m.err.Error() + "\n"
	}
	return m.screen.View()
}

// Run starts the interactive browser on the terminal.
func Run(ctrl *nav.Controller, screen *Screen) error {
	if _, err := tea.NewProgram(NewModel(ctrl, screen)).Run(); err != nil {
		return err
	}
	return nil
}
