package calendar

import "sort"

// EventStore is a read-only, in-memory index over the events dataset.
// It is safe to share between any number of readers.
type EventStore struct {
	records []EventRecord
}

// NewEventStore copies records into a new store. The input order is kept
// because it decides which record wins when two active events share a date.
func NewEventStore(records []EventRecord) *EventStore {
	rs := make([]EventRecord, len(records))
	copy(rs, records)
	return &EventStore{records: rs}
}

// EventsInMonth returns the active dated events of the given month sorted by
// date. Records sharing a date keep their source order, so duplicates are
// all listed here even though EventByDate only returns the first one.
func (s *EventStore) EventsInMonth(year, month int) []EventRecord {
	var out []EventRecord
	for _, r := range s.records {
		if r.IsActive && r.Dated() && r.Date.In(year, month) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// EventByDate returns the first active record on d in source order.
func (s *EventStore) EventByDate(d Date) (EventRecord, bool) {
	if d.IsZero() {
		return EventRecord{}, false
	}
	for _, r := range s.records {
		if r.IsActive && r.Date == d {
			return r, true
		}
	}
	return EventRecord{}, false
}

// EventByID returns the active record with the given identifier.
func (s *EventStore) EventByID(id string) (EventRecord, bool) {
	for _, r := range s.records {
		if r.IsActive && r.ID == id {
			return r, true
		}
	}
	return EventRecord{}, false
}

// ActiveRecords returns every active record, dated or not, in source order.
func (s *EventStore) ActiveRecords() []EventRecord {
	out := make([]EventRecord, 0, len(s.records))
	for _, r := range s.records {
		if r.IsActive {
			out = append(out, r)
		}
	}
	return out
}

// UndatedRecords returns the active floating observances in source order.
func (s *EventStore) UndatedRecords() []EventRecord {
	var out []EventRecord
	for _, r := range s.records {
		if r.IsActive && !r.Dated() {
			out = append(out, r)
		}
	}
	return out
}

// Len returns the number of records held, active or not.
func (s *EventStore) Len() int {
	return len(s.records)
}
