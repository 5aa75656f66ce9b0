// Package dataset decodes the educational events dataset into calendar records.
//
// The application ships an embedded copy of the dataset. A remote copy with the
// same JSON layout can replace it at startup (see Load).
package dataset

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/gyegi/calendar/internal/calendar"
	"github.com/gyegi/calendar/internal/config"
)

//go:embed data/calendar.json
var embedded []byte

// Topic is a year-round education theme not tied to a date.
type Topic struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Dataset is the decoded content of a calendar JSON document.
type Dataset struct {
	DefaultYear int
	Themes      map[int]string
	Topics      []Topic
	Records     []calendar.EventRecord
}

// Theme returns the monthly theme text, or "" when the month has none.
func (d *Dataset) Theme(month int) string {
	return d.Themes[month]
}

// Store builds the read-only event index over the records.
func (d *Dataset) Store() *calendar.EventStore {
	return calendar.NewEventStore(d.Records)
}

type rawResources struct {
	VideoURL        string `json:"videoUrl"`
	PPTURL          string `json:"pptUrl"`
	WorksheetPDFURL string `json:"worksheetPdfUrl"`
	QuizURL         string `json:"quizUrl"`
}

type rawEvent struct {
	ID               string                  `json:"id"`
	Date             string                  `json:"date"`
	DisplayDate      string                  `json:"displayDate"`
	EventName        string                  `json:"eventName"`
	GradeBand        []string                `json:"gradeBand"`
	TopicTags        []string                `json:"topicTags"`
	ShortDescription string                  `json:"shortDescription"`
	Links            map[string]rawResources `json:"links"`
	IsActive         bool                    `json:"isActive"`
	Notes            string                  `json:"notes"`
}

type rawDataset struct {
	DefaultYear   int               `json:"defaultYear"`
	MonthlyThemes map[string]string `json:"monthlyThemes"`
	CommonTopics  []Topic           `json:"commonTopics"`
	Events        []rawEvent        `json:"events"`
}

// Decode reads a calendar JSON document.
// Records with a malformed date are skipped with a warning rather than failing
// the whole document, and so are unknown grade bands.
func Decode(r io.Reader) (*Dataset, error) {
	log := slog.With(slog.String(config.LogKeyComponent, config.CompDataset))

	var raw rawDataset
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrDatasetDecode, err)
	}

	ds := &Dataset{
		DefaultYear: raw.DefaultYear,
		Themes:      make(map[int]string, len(raw.MonthlyThemes)),
		Topics:      raw.CommonTopics,
		Records:     make([]calendar.EventRecord, 0, len(raw.Events)),
	}
	if ds.DefaultYear == 0 {
		ds.DefaultYear = config.DefaultYear
	}

	for k, text := range raw.MonthlyThemes {
		m, err := strconv.Atoi(k)
		if err != nil || !calendar.ValidMonth(m) {
			continue
		}
		ds.Themes[m] = text
	}

	seen := make(map[calendar.Date]string)
	for _, ev := range raw.Events {
		d, err := calendar.ParseDate(ev.Date)
		if err != nil {
			log.Warn(config.MsgSkippedRecord,
				slog.String(config.LogKeyEventID, ev.ID),
				slog.String(config.LogKeyDate, ev.Date),
			)
			continue
		}

		rec := calendar.EventRecord{
			ID:               ev.ID,
			Date:             d,
			DisplayDate:      ev.DisplayDate,
			EventName:        ev.EventName,
			ShortDescription: ev.ShortDescription,
			Notes:            ev.Notes,
			TopicTags:        ev.TopicTags,
			IsActive:         ev.IsActive,
			Links:            make(map[calendar.GradeBand]calendar.ResourceBundle, len(ev.Links)),
		}
		for _, g := range ev.GradeBand {
			band := calendar.GradeBand(g)
			if !band.Valid() {
				log.Warn(config.MsgSkippedBand,
					slog.String(config.LogKeyEventID, ev.ID),
					slog.String(config.LogKeyGrade, g),
				)
				continue
			}
			rec.GradeBands = append(rec.GradeBands, band)
		}
		for g, res := range ev.Links {
			band := calendar.GradeBand(g)
			if !band.Valid() {
				continue
			}
			rec.Links[band] = calendar.ResourceBundle{
				VideoURL:        res.VideoURL,
				PPTURL:          res.PPTURL,
				WorksheetPDFURL: res.WorksheetPDFURL,
				QuizURL:         res.QuizURL,
			}
		}

		if rec.IsActive && rec.Dated() {
			if first, dup := seen[d]; dup {
				log.Warn(config.MsgDuplicateDate,
					slog.String(config.LogKeyDate, d.String()),
					slog.String(config.LogKeyEventID, first),
				)
			} else {
				seen[d] = rec.ID
			}
		}
		ds.Records = append(ds.Records, rec)
	}

	log.Debug(config.MsgDatasetLoaded,
		slog.Int(config.LogKeyTotal, len(ds.Records)),
		slog.Int(config.LogKeyTopics, len(ds.Topics)),
	)
	return ds, nil
}

// Embedded decodes the dataset compiled into the binary.
func Embedded() (*Dataset, error) {
	return Decode(bytes.NewReader(embedded))
}

// Load fetches the dataset from url, falling back to the embedded copy when
// url is empty or the remote copy cannot be fetched or decoded.
// The returned error is only set when the embedded copy itself is unusable.
func Load(ctx context.Context, f Fetcher, url string) (*Dataset, error) {
	if url == "" || f == nil {
		return Embedded()
	}

	log := slog.With(slog.String(config.LogKeyComponent, config.CompDataset))

	rc, err := f.Fetch(ctx, url)
	if err != nil {
		log.Warn(config.MsgDatasetFallback, slog.Any(config.LogKeyError, err))
		return Embedded()
	}
	defer func() { _ = rc.Close() }()

	ds, err := Decode(rc)
	if err != nil {
		log.Warn(config.MsgDatasetFallback, slog.Any(config.LogKeyError, err))
		return Embedded()
	}
	return ds, nil
}
