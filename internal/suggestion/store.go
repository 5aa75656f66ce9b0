// Package suggestion stores the free-text suggestions users send from the
// calendar. Entries are append-only.
package suggestion

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gyegi/calendar/internal/calendar"
	"github.com/gyegi/calendar/internal/config"
	"github.com/gyegi/calendar/internal/storage"
)

var (
	// ErrPersistence wraps every failure to read, decode, encode or write the
	// stored suggestions.
	ErrPersistence = errors.New(config.ErrPersistence)
	// ErrEmptyMessage rejects suggestions without text.
	ErrEmptyMessage = errors.New(config.ErrEmptyMessage)
)

// Entry is one stored suggestion. The JSON layout is shared with older
// browser-based copies of the calendar, hence the "email" key.
type Entry struct {
	ID        string    `json:"id"`
	Contact   string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Anonymous reports whether the sender left no contact.
func (e Entry) Anonymous() bool {
	return e.Contact == "" || e.Contact == config.AnonymousContact
}

// NewEntry validates user input and stamps it.
// An empty contact is stored as config.AnonymousContact.
func NewEntry(contact, message string, now time.Time) (Entry, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return Entry{}, ErrEmptyMessage
	}
	contact = strings.TrimSpace(contact)
	if contact == "" {
		contact = config.AnonymousContact
	}
	return Entry{
		ID:        uuid.NewString(),
		Contact:   contact,
		Message:   message,
		CreatedAt: now,
	}, nil
}

// Store keeps all entries as a single JSON array under one key.
type Store struct {
	blobs storage.BlobStore
	key   string
	clock calendar.Clock
	log   *slog.Logger
}

// NewStore creates a store persisting under config.SuggestionStorageKey.
func NewStore(blobs storage.BlobStore, clock calendar.Clock) *Store {
	if clock == nil {
		clock = calendar.RealClock{}
	}
	return &Store{
		blobs: blobs,
		key:   config.SuggestionStorageKey,
		clock: clock,
		log:   slog.With(slog.String(config.LogKeyComponent, config.CompSuggestion)),
	}
}

// Submit builds an entry from user input and appends it.
func (s *Store) Submit(contact, message string) (Entry, error) {
	e, err := NewEntry(contact, message, s.clock.Now())
	if err != nil {
		return Entry{}, err
	}
	return e, s.Append(e)
}

// Append adds e to the stored array. Unreadable stored data is never
// overwritten, the call fails instead.
func (s *Store) Append(e Entry) error {
	entries, err := s.load()
	if err != nil {
		return err
	}
	entries = append(entries, e)

	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPersistence, config.ErrEncodeSuggestions, err)
	}
	if err := s.blobs.Save(s.key, raw); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	s.log.Info(config.MsgSuggestionSaved,
		slog.String(config.LogKeyEventID, e.ID),
		slog.Int(config.LogKeyCount, len(entries)),
	)
	return nil
}

// ListAll returns every entry, newest first. On failure it returns an empty
// slice together with the error so callers can keep going.
func (s *Store) ListAll() ([]Entry, error) {
	entries, err := s.load()
	if err != nil {
		s.log.Warn(config.MsgSuggestionsReset, slog.Any(config.LogKeyError, err))
		return []Entry{}, err
	}
	if entries == nil {
		entries = []Entry{}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	s.log.Debug(config.MsgSuggestionsLoaded, slog.Int(config.LogKeyCount, len(entries)))
	return entries, nil
}

func (s *Store) load() ([]Entry, error) {
	raw, err := s.blobs.Load(s.key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrPersistence, config.ErrDecodeSuggestions, err)
	}
	return entries, nil
}
