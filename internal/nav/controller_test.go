package nav_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gyegi/calendar/internal/calendar"
	"github.com/gyegi/calendar/internal/dataset"
	"github.com/gyegi/calendar/internal/nav"
	"github.com/gyegi/calendar/internal/view"
)

// -----------------------------------------------------------------------------
// Mocks
// -----------------------------------------------------------------------------

// MockSink records renders using `testify/mock`.
type MockSink struct {
	mock.Mock
}

func (m *MockSink) Render(d view.Descriptor, hint nav.Transition) {
	m.Called(d, hint)
}

// presenterSink also implements nav.EventPresenter.
type presenterSink struct {
	MockSink
	presented []calendar.EventRecord
}

func (p *presenterSink) PresentEvent(ev calendar.EventRecord) {
	p.presented = append(p.presented, ev)
}

func clockAt(month int) calendar.Clock {
	return calendar.FixedClock(time.Date(2025, time.Month(month), 10, 12, 0, 0, 0, time.UTC))
}

func newController(t *testing.T, sink nav.Sink, opts nav.Options) *nav.Controller {
	t.Helper()
	ds, err := dataset.Embedded()
	require.NoError(t, err)
	return nav.NewController(view.NewModel(ds.Store(), ds, opts.Clock), sink, opts)
}

// -----------------------------------------------------------------------------
// Test Cases
// -----------------------------------------------------------------------------

func TestNewController_InitialState(t *testing.T) {
	sink := new(MockSink)
	c := newController(t, sink, nav.Options{Clock: clockAt(7)})

	assert.Equal(t, view.State{Mode: view.ModeYear, Year: 2026, Month: 7}, c.State())
	sink.AssertNotCalled(t, "Render", mock.Anything, mock.Anything)

	c = newController(t, sink, nav.Options{Clock: clockAt(7), Year: 2030, InitialMode: view.ModeMonth})
	assert.Equal(t, view.State{Mode: view.ModeMonth, Year: 2030, Month: 7}, c.State())
}

func TestSwitchToMonthView_ResetsToRealMonth(t *testing.T) {
	sink := new(MockSink)
	sink.On("Render", mock.Anything, nav.TransitionNone).Return()
	c := newController(t, sink, nav.Options{Clock: clockAt(9)})

	require.NoError(t, c.JumpToMonth(3))
	assert.Equal(t, 3, c.State().Month)

	c.SwitchToMonthView()
	assert.Equal(t, view.State{Mode: view.ModeMonth, Year: 2026, Month: 9}, c.State())

	require.NoError(t, c.JumpToMonth(12))
	c.SwitchToMonthView()
	assert.Equal(t, 9, c.State().Month, "last viewed month is not restored")
}

func TestSwitchToYearView_KeepsMonth(t *testing.T) {
	sink := new(MockSink)
	sink.On("Render", mock.Anything, nav.TransitionNone).Return()
	c := newController(t, sink, nav.Options{Clock: clockAt(1)})

	require.NoError(t, c.JumpToMonth(5))
	c.SwitchToYearView()

	assert.Equal(t, view.State{Mode: view.ModeYear, Year: 2026, Month: 5}, c.State())
	sink.AssertCalled(t, "Render", mock.AnythingOfType("view.YearView"), nav.TransitionNone)
}

func TestJumpToMonth_RejectsInvalidMonth(t *testing.T) {
	sink := new(MockSink)
	c := newController(t, sink, nav.Options{Clock: clockAt(4)})
	before := c.State()

	for _, m := range []int{0, 13, -1} {
		err := c.JumpToMonth(m)
		assert.ErrorIs(t, err, nav.ErrInvalidMonth)
	}
	assert.Equal(t, before, c.State())
	sink.AssertNotCalled(t, "Render", mock.Anything, mock.Anything)
}

func TestJumpToMonth_RendersMonthView(t *testing.T) {
	sink := new(MockSink)
	sink.On("Render", mock.MatchedBy(func(d view.Descriptor) bool {
		mv, ok := d.(view.MonthView)
		return ok && mv.Year == 2026 && mv.Month == 3 && len(mv.Days) == 31
	}), nav.TransitionNone).Return().Once()
	c := newController(t, sink, nav.Options{Clock: clockAt(1)})

	require.NoError(t, c.JumpToMonth(3))
	sink.AssertExpectations(t)
}

func TestStepMonth_Hints(t *testing.T) {
	tests := []struct {
		name      string
		offset    int
		want      nav.Transition
		wantState view.State
	}{
		{"forward across the year", 1, nav.TransitionForward, view.State{Mode: view.ModeMonth, Year: 2027, Month: 1}},
		{"backward", -1, nav.TransitionBackward, view.State{Mode: view.ModeMonth, Year: 2026, Month: 11}},
		{"none", 0, nav.TransitionNone, view.State{Mode: view.ModeMonth, Year: 2026, Month: 12}},
		{"far backward", -24, nav.TransitionBackward, view.State{Mode: view.ModeMonth, Year: 2024, Month: 12}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := new(MockSink)
			sink.On("Render", mock.Anything, mock.Anything).Return()
			c := newController(t, sink, nav.Options{Clock: clockAt(12), InitialMode: view.ModeMonth})

			hint := c.StepMonth(tt.offset)

			assert.Equal(t, tt.want, hint)
			assert.Equal(t, tt.wantState, c.State())
			sink.AssertCalled(t, "Render", mock.AnythingOfType("view.MonthView"), tt.want)
		})
	}
}

func TestOpenEvent(t *testing.T) {
	sink := &presenterSink{}
	c := newController(t, sink, nav.Options{Clock: clockAt(3)})

	assert.True(t, c.OpenEvent(calendar.NewDate(2026, 3, 1)))
	require.Len(t, sink.presented, 1)
	assert.Equal(t, "삼일절", sink.presented[0].EventName)

	assert.False(t, c.OpenEvent(calendar.NewDate(2026, 3, 5)))
	assert.Len(t, sink.presented, 1)
	sink.AssertNotCalled(t, "Render", mock.Anything, mock.Anything)
}

func TestOpenEvent_PlainSinkIgnored(t *testing.T) {
	sink := new(MockSink)
	c := newController(t, sink, nav.Options{Clock: clockAt(3)})

	assert.True(t, c.OpenEvent(calendar.NewDate(2026, 3, 1)))
	sink.AssertNotCalled(t, "Render", mock.Anything, mock.Anything)
}

func TestDispatch(t *testing.T) {
	sink := &presenterSink{}
	sink.On("Render", mock.Anything, mock.Anything).Return()
	c := newController(t, sink, nav.Options{Clock: clockAt(6)})

	require.NoError(t, c.Dispatch(nav.JumpToMonth{Month: 2}))
	assert.Equal(t, view.State{Mode: view.ModeMonth, Year: 2026, Month: 2}, c.State())

	require.NoError(t, c.Dispatch(nav.StepMonth{Offset: -2}))
	assert.Equal(t, view.State{Mode: view.ModeMonth, Year: 2025, Month: 12}, c.State())

	require.NoError(t, c.Dispatch(nav.SwitchView{Mode: view.ModeYear}))
	assert.Equal(t, view.ModeYear, c.State().Mode)

	require.NoError(t, c.Dispatch(nav.SwitchView{Mode: view.ModeMonth}))
	assert.Equal(t, view.State{Mode: view.ModeMonth, Year: 2025, Month: 6}, c.State())

	require.NoError(t, c.Dispatch(nav.Refresh{}))
	require.NoError(t, c.Dispatch(nav.OpenEvent{Date: calendar.NewDate(2026, 6, 6)}))
	assert.Len(t, sink.presented, 1)

	assert.ErrorIs(t, c.Dispatch(nav.JumpToMonth{Month: 14}), nav.ErrInvalidMonth)
	assert.Error(t, c.Dispatch(nil))

	sink.AssertNumberOfCalls(t, "Render", 5)
}

func TestTransition_String(t *testing.T) {
	assert.Equal(t, "forward", nav.TransitionForward.String())
	assert.Equal(t, "backward", nav.TransitionBackward.String())
	assert.Equal(t, "none", nav.TransitionNone.String())
}
