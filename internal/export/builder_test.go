package export_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyegi/calendar/internal/calendar"
	"github.com/gyegi/calendar/internal/config"
	"github.com/gyegi/calendar/internal/dataset"
	"github.com/gyegi/calendar/internal/export"
)

var stamp = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func decode(t *testing.T, data []byte) *ical.Calendar {
	t.Helper()
	cal, err := ical.NewDecoder(bytes.NewReader(data)).Decode()
	require.NoError(t, err)
	return cal
}

func TestBuild_EmbeddedDataset(t *testing.T) {
	ds, err := dataset.Embedded()
	require.NoError(t, err)

	b := &export.Builder{Clock: calendar.FixedClock(stamp)}
	data, n, err := b.Build(context.Background(), ds.Records)
	require.NoError(t, err)
	assert.Equal(t, 28, n, "floating observances are not exported")

	cal := decode(t, data)
	events := cal.Events()
	require.Len(t, events, 28)

	var samil *ical.Event
	for i := range events {
		uid, _ := events[i].Props.Text(config.PropUID)
		if uid == "20260301-samiljeol@gyegi" {
			samil = &events[i]
		}
	}
	require.NotNil(t, samil)

	summary, err := samil.Props.Text(config.PropSummary)
	require.NoError(t, err)
	assert.Equal(t, "삼일절", summary)

	start, err := samil.DateTimeStart(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), start)

	end, err := samil.DateTimeEnd(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), end)

	cats, err := samil.Props.Get(config.PropCategories).TextList()
	require.NoError(t, err)
	assert.Equal(t, []string{"history"}, cats)
}

func TestBuild_Description(t *testing.T) {
	records := []calendar.EventRecord{{
		ID:               "x",
		Date:             calendar.NewDate(2026, 3, 2),
		EventName:        "입학식",
		ShortDescription: "첫 날",
		Notes:            "학교별 일정 상이",
		IsActive:         true,
	}}

	data, _, err := (&export.Builder{Clock: calendar.FixedClock(stamp)}).Build(context.Background(), records)
	require.NoError(t, err)

	ev := decode(t, data).Events()[0]
	desc, err := ev.Props.Text(config.PropDescription)
	require.NoError(t, err)
	assert.Equal(t, "첫 날\n\n학교별 일정 상이", desc)
	assert.Nil(t, ev.Props.Get(config.PropCategories))
}

func TestBuild_EmptyUsesStub(t *testing.T) {
	records := []calendar.EventRecord{
		{ID: "floating", EventName: "추석", IsActive: true},
		{ID: "inactive", Date: calendar.NewDate(2026, 1, 1), IsActive: false},
	}

	data, n, err := export.NewBuilder().Build(context.Background(), records)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, config.StubVCalendar, string(data))
	assert.Empty(t, decode(t, data).Events())
}

func TestBuild_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	records := []calendar.EventRecord{{ID: "x", Date: calendar.NewDate(2026, 3, 1), IsActive: true}}
	_, _, err := export.NewBuilder().Build(ctx, records)
	assert.ErrorIs(t, err, context.Canceled)
}
