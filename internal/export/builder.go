// Package export renders the dated events as an iCalendar feed that desktop
// and phone calendars can subscribe to.
package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/emersion/go-ical"

	"github.com/gyegi/calendar/internal/calendar"
	"github.com/gyegi/calendar/internal/config"
)

// Builder converts event records into iCalendar data.
type Builder struct {
	Clock calendar.Clock // Stamps DTSTAMP.
}

// NewBuilder creates a builder using the system clock.
func NewBuilder() *Builder {
	return &Builder{Clock: calendar.RealClock{}}
}

// Build renders every active dated record as an all-day VEVENT and returns
// the encoded calendar with the number of events written. Floating
// observances have no date and are left out.
func (b *Builder) Build(ctx context.Context, records []calendar.EventRecord) ([]byte, int, error) {
	start := time.Now()
	log := slog.With(slog.String(config.LogKeyComponent, config.CompExport))

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	clock := b.Clock
	if clock == nil {
		clock = calendar.RealClock{}
	}
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(clock.Now().UTC())

	stats := struct{ dated, undated int }{}
	for _, r := range records {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		if !r.IsActive {
			continue
		}
		if !r.Dated() {
			stats.undated++
			continue
		}
		stats.dated++

		ev := newEvent(r)
		ev.Props.Set(dtStampProp)
		cal.Children = append(cal.Children, ev.Component)
	}

	log.Info(config.MsgICSGenerated,
		slog.Int(config.LogKeyDated, stats.dated),
		slog.Int(config.LogKeyUndated, stats.undated),
		slog.Int64(config.LogKeyDuration, time.Since(start).Milliseconds()),
	)

	// An empty VCALENDAR without components is rejected by some clients.
	if len(cal.Children) == 0 {
		return []byte(config.StubVCalendar), 0, nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return buf.Bytes(), stats.dated, nil
}

func newEvent(r calendar.EventRecord) *ical.Event {
	event := ical.NewEvent()
	event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, r.ID, config.ICalDomain))
	event.Props.SetText(config.PropSummary, r.EventName)

	day := r.Date.Time(time.UTC)
	dtStartProp := ical.NewProp(config.PropDTStart)
	dtStartProp.SetDate(day)
	event.Props.Set(dtStartProp)

	// DTEND is exclusive for all-day events.
	dtEndProp := ical.NewProp(config.PropDTEnd)
	dtEndProp.SetDate(day.AddDate(0, 0, 1))
	event.Props.Set(dtEndProp)

	if desc := description(r); desc != "" {
		event.Props.SetText(config.PropDescription, desc)
	}
	if len(r.TopicTags) > 0 {
		cat := ical.NewProp(config.PropCategories)
		cat.SetTextList(r.TopicTags)
		event.Props.Set(cat)
	}
	return event
}

func description(r calendar.EventRecord) string {
	parts := make([]string, 0, 2)
	if r.ShortDescription != "" {
		parts = append(parts, r.ShortDescription)
	}
	if r.Notes != "" {
		parts = append(parts, r.Notes)
	}
	return strings.Join(parts, "\n\n")
}
