// Package prefs implements storage.BlobStore on top of the fyne application
// preferences, the desktop equivalent of a browser's local storage.
package prefs

import "fyne.io/fyne/v2"

// Store keeps each blob as a string preference.
type Store struct {
	p fyne.Preferences
}

// New wraps the given preferences, usually fyne.CurrentApp().Preferences().
func New(p fyne.Preferences) *Store {
	return &Store{p: p}
}

// Load returns the stored value, or nil when the key was never saved.
func (s *Store) Load(key string) ([]byte, error) {
	v := s.p.String(key)
	if v == "" {
		return nil, nil
	}
	return []byte(v), nil
}

// Save replaces the stored value.
func (s *Store) Save(key string, value []byte) error {
	s.p.SetString(key, string(value))
	return nil
}
