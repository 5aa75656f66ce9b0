package tui_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyegi/calendar/internal/calendar"
	"github.com/gyegi/calendar/internal/dataset"
	"github.com/gyegi/calendar/internal/nav"
	"github.com/gyegi/calendar/internal/tui"
	"github.com/gyegi/calendar/internal/view"
)

var march14 = calendar.FixedClock(time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local))

func embeddedModel(t *testing.T) *view.Model {
	t.Helper()
	ds, err := dataset.Embedded()
	require.NoError(t, err)
	return view.NewModel(ds.Store(), ds, march14)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m tea.Model, msgs ...tea.Msg) tea.Model {
	t.Helper()
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func newBrowser(t *testing.T) (tui.Model, *nav.Controller) {
	t.Helper()
	screen := tui.NewScreen(tui.PlainStyles())
	ctrl := nav.NewController(embeddedModel(t), screen, nav.Options{Clock: march14})
	return tui.NewModel(ctrl, screen), ctrl
}

// -----------------------------------------------------------------------------
// Format
// -----------------------------------------------------------------------------

func TestFormat_MonthView(t *testing.T) {
	out := tui.Format(embeddedModel(t).MonthView(2026, 3), nav.TransitionNone)

	assert.True(t, strings.HasPrefix(out, "2026년 3월 🌱\n"))
	assert.Contains(t, out, "  1*  2*  3   4   5   6   7 \n", "March 2026 starts on Sunday")
	assert.Contains(t, out, ">14*", "today carries an event")
	assert.Contains(t, out, "~~~ ", "trailing cells show the theme")
	assert.Contains(t, out, "이달의 주제: 새학기 적응")
	assert.Contains(t, out, "  3/1 삼일절\n")
	assert.Contains(t, out, "  3/14 ")

	lines := strings.Split(out, "\n")
	assert.Equal(t, 1+1+1+6+1+1+1+4+1, len(lines), "title, blank, weekdays, six rows, theme, events")
}

func TestFormat_MonthWithoutEvents(t *testing.T) {
	m := view.NewModel(calendar.NewEventStore(nil), nil, march14)

	out := tui.Format(m.MonthView(2026, 2), nav.TransitionNone)

	assert.Contains(t, out, "일정 없음")
	assert.NotContains(t, out, "이달의 주제")
	assert.NotContains(t, out, "~")
}

func TestFormat_YearView(t *testing.T) {
	out := tui.Format(embeddedModel(t).YearView(2026), nav.TransitionNone)

	assert.True(t, strings.HasPrefix(out, "2026년 계기교육\n"))
	assert.Contains(t, out, "1월")
	assert.Contains(t, out, "12월")
	assert.Contains(t, out, "  3/1 삼일절\n")
	assert.Contains(t, out, "일정 없음", "January has no dated events")
}

func TestFormat_Hints(t *testing.T) {
	mv := embeddedModel(t).MonthView(2026, 4)

	assert.True(t, strings.HasPrefix(tui.Format(mv, nav.TransitionForward), "▶ 2026년 4월"))
	assert.True(t, strings.HasPrefix(tui.Format(mv, nav.TransitionBackward), "◀ 2026년 4월"))
	assert.True(t, strings.HasPrefix(tui.Format(mv, nav.TransitionNone), "2026년 4월"))
}

func TestFormatEvent(t *testing.T) {
	ev := calendar.EventRecord{
		DisplayDate: "3월 1일",
		EventName:   "삼일절",
		GradeBands:  []calendar.GradeBand{calendar.GradeLower},
		Links: map[calendar.GradeBand]calendar.ResourceBundle{
			calendar.GradeCommon: {VideoURL: "https://example.org/v", PPTURL: "#"},
		},
	}

	out := tui.FormatEvent(ev)

	assert.Contains(t, out, "3월 1일 삼일절")
	assert.Contains(t, out, "특이사항: 특이사항 없음")
	assert.Contains(t, out, "[lower]")
	assert.NotContains(t, out, "[upper]")
	assert.Contains(t, out, "영상: https://example.org/v", "lower falls back to the common bundle")
	assert.Contains(t, out, "PPT: 준비 중인 자료입니다.")
}

// -----------------------------------------------------------------------------
// Sinks
// -----------------------------------------------------------------------------

func TestTextSink_SameDescriptorSameFrame(t *testing.T) {
	var buf bytes.Buffer
	sink := tui.NewTextSink(&buf)
	mv := embeddedModel(t).MonthView(2026, 3)

	sink.Render(mv, nav.TransitionNone)
	first := buf.String()
	sink.Render(mv, nav.TransitionNone)

	assert.Equal(t, first+first, buf.String())
}

func TestTextSink_DrivenByController(t *testing.T) {
	var buf bytes.Buffer
	ctrl := nav.NewController(embeddedModel(t), tui.NewTextSink(&buf), nav.Options{Clock: march14})

	require.NoError(t, ctrl.JumpToMonth(5))
	assert.True(t, ctrl.OpenEvent(calendar.NewDate(2026, 3, 1)))

	assert.Contains(t, buf.String(), "2026년 5월")
	assert.Contains(t, buf.String(), "삼일절")
}

func TestScreen_RenderIsIdempotent(t *testing.T) {
	screen := tui.NewScreen(tui.PlainStyles())
	mv := embeddedModel(t).MonthView(2026, 3)

	screen.Render(mv, nav.TransitionNone)
	first := screen.View()
	screen.Render(mv, nav.TransitionNone)

	assert.Equal(t, first, screen.View())
	assert.Empty(t, tui.NewScreen(tui.PlainStyles()).View())
}

// -----------------------------------------------------------------------------
// Browser
// -----------------------------------------------------------------------------

func TestModel_StartsOnYearView(t *testing.T) {
	m, ctrl := newBrowser(t)

	assert.Equal(t, view.ModeYear, ctrl.State().Mode)
	assert.True(t, strings.HasPrefix(m.View(), "2026년 계기교육"))
	assert.Nil(t, m.Init())
}

func TestModel_Keys(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.Msg
		want view.State
	}{
		{"month key", []tea.Msg{runes("3")}, view.State{Mode: view.ModeMonth, Year: 2026, Month: 3}},
		{"zero is October", []tea.Msg{runes("0")}, view.State{Mode: view.ModeMonth, Year: 2026, Month: 10}},
		{"minus is November", []tea.Msg{runes("-")}, view.State{Mode: view.ModeMonth, Year: 2026, Month: 11}},
		{"equals is December", []tea.Msg{runes("=")}, view.State{Mode: view.ModeMonth, Year: 2026, Month: 12}},
		{"step right", []tea.Msg{runes("="), tea.KeyMsg{Type: tea.KeyRight}}, view.State{Mode: view.ModeMonth, Year: 2027, Month: 1}},
		{"step left", []tea.Msg{runes("1"), runes("h")}, view.State{Mode: view.ModeMonth, Year: 2025, Month: 12}},
		{"month view resets", []tea.Msg{runes("7"), runes("m")}, view.State{Mode: view.ModeMonth, Year: 2026, Month: 3}},
		{"year view keeps month", []tea.Msg{runes("7"), runes("y")}, view.State{Mode: view.ModeYear, Year: 2026, Month: 7}},
		{"unknown key", []tea.Msg{runes("z"), tea.WindowSizeMsg{Width: 80}}, view.State{Mode: view.ModeYear, Year: 2026, Month: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newBrowser(t)
			press(t, m, tt.keys...)
			assert.Equal(t, tt.want, ctrl.State())
		})
	}
}

func TestModel_StepShowsHint(t *testing.T) {
	m, _ := newBrowser(t)

	after := press(t, m, runes("4"), tea.KeyMsg{Type: tea.KeyLeft})

	assert.True(t, strings.HasPrefix(after.View(), "◀ 2026년 3월"))
}

func TestModel_SelectAndOpenEvent(t *testing.T) {
	m, _ := newBrowser(t)

	after := press(t, m, runes("3"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotContains(t, after.View(), "특이사항:", "enter without a selection does nothing")

	after = press(t, after, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, after.View(), "특이사항:")
	assert.Contains(t, after.View(), "3월 1일")

	after = press(t, after, tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotContains(t, after.View(), "특이사항:")

	after = press(t, after, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyRight})
	assert.NotContains(t, after.View(), "특이사항:", "navigation closes the details")
}

func TestModel_Quit(t *testing.T) {
	for _, key := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		m, _ := newBrowser(t)

		after, cmd := m.Update(key)

		assert.NotNil(t, cmd)
		assert.Empty(t, after.View())
	}
}
