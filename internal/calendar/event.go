package calendar

import "github.com/gyegi/calendar/internal/config"

// GradeBand groups learners by audience.
type GradeBand string

const (
	GradeCommon GradeBand = "common"
	GradeLower  GradeBand = "lower"
	GradeUpper  GradeBand = "upper"
)

// GradeBands lists every audience tag in display order.
var GradeBands = []GradeBand{GradeCommon, GradeLower, GradeUpper}

// Valid reports whether g is a known audience tag.
func (g GradeBand) Valid() bool {
	switch g {
	case GradeCommon, GradeLower, GradeUpper:
		return true
	}
	return false
}

// ResourceBundle holds the four optional teaching resources of an event.
type ResourceBundle struct {
	VideoURL        string
	PPTURL          string
	WorksheetPDFURL string
	QuizURL         string
}

// Available reports whether a resource URL points somewhere.
// Empty strings and the "#" placeholder mean the material is not ready yet.
func Available(url string) bool {
	return url != "" && url != config.PlaceholderLink
}

// EventRecord is one entry of the educational events dataset.
// Records are immutable once loaded.
type EventRecord struct {
	ID               string
	Date             Date // zero for floating observances
	DisplayDate      string
	EventName        string
	ShortDescription string
	Notes            string
	GradeBands       []GradeBand
	TopicTags        []string
	Links            map[GradeBand]ResourceBundle
	IsActive         bool
}

// Dated reports whether the record has a fixed calendar date.
func (e EventRecord) Dated() bool {
	return !e.Date.IsZero()
}

// Resources returns the bundle for band, falling back to the common bundle.
func (e EventRecord) Resources(band GradeBand) (ResourceBundle, bool) {
	if b, ok := e.Links[band]; ok {
		return b, true
	}
	b, ok := e.Links[GradeCommon]
	return b, ok
}

// HasBand reports whether the record targets the given audience.
func (e EventRecord) HasBand(band GradeBand) bool {
	for _, g := range e.GradeBands {
		if g == band {
			return true
		}
	}
	return false
}
