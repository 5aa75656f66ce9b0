// Package admin implements the shared-password gate in front of the
// suggestions panel. It keeps casual visitors out and is not a security
// boundary.
package admin

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"

	"github.com/zalando/go-keyring"

	"github.com/gyegi/calendar/internal/config"
)

// ErrDenied is returned when a password does not match.
var ErrDenied = errors.New(config.ErrAdminDenied)

// Gate compares candidates against one configured password.
type Gate struct {
	password string
}

// NewGate creates a gate for password.
func NewGate(password string) *Gate {
	return &Gate{password: password}
}

// CheckPassword reports whether candidate matches the configured password.
func (g *Gate) CheckPassword(candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(g.password)) == 1
}

// ResolvePassword returns the password stored in the system keyring, or
// config.DefaultAdminPassword when none was stored or the keyring is
// unavailable.
func ResolvePassword() string {
	pw, err := keyring.Get(config.KeyringService, config.KeyringAdminUser)
	if err != nil || pw == "" {
		slog.Debug(config.MsgAdminPassFallback,
			slog.String(config.LogKeyComponent, config.CompAdmin),
			slog.Any(config.LogKeyError, err),
		)
		return config.DefaultAdminPassword
	}
	return pw
}

// StorePassword saves a new admin password in the system keyring.
func StorePassword(pw string) error {
	if err := keyring.Set(config.KeyringService, config.KeyringAdminUser, pw); err != nil {
		return fmt.Errorf("%s: %w", config.ErrKeyringSet, err)
	}
	return nil
}

// Session is the admin flag of one running application.
type Session struct {
	gate    *Gate
	granted bool
}

// NewSession creates a logged-out session guarded by gate.
func NewSession(gate *Gate) *Session {
	return &Session{gate: gate}
}

// Login grants the session when candidate is accepted.
func (s *Session) Login(candidate string) error {
	ok := s.gate.CheckPassword(candidate)
	slog.Info(config.MsgAdminLogin,
		slog.String(config.LogKeyComponent, config.CompAdmin),
		slog.Bool(config.LogKeyGranted, ok),
	)
	if !ok {
		return ErrDenied
	}
	s.granted = true
	return nil
}

// Active reports whether the session has been granted.
func (s *Session) Active() bool {
	return s.granted
}

// Logout drops the grant.
func (s *Session) Logout() {
	s.granted = false
}
