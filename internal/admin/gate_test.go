package admin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/gyegi/calendar/internal/admin"
	"github.com/gyegi/calendar/internal/config"
)

func TestCheckPassword(t *testing.T) {
	g := admin.NewGate("5050")

	tests := []struct {
		candidate string
		want      bool
	}{
		{"5050", true},
		{"505", false},
		{"50500", false},
		{"", false},
		{" 5050", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, g.CheckPassword(tt.candidate), "candidate %q", tt.candidate)
	}
}

func TestResolvePassword(t *testing.T) {
	keyring.MockInit()

	assert.Equal(t, config.DefaultAdminPassword, admin.ResolvePassword())

	require.NoError(t, admin.StorePassword("s3cret"))
	assert.Equal(t, "s3cret", admin.ResolvePassword())
}

func TestSession(t *testing.T) {
	s := admin.NewSession(admin.NewGate("5050"))
	assert.False(t, s.Active())

	assert.ErrorIs(t, s.Login("0000"), admin.ErrDenied)
	assert.False(t, s.Active())

	require.NoError(t, s.Login("5050"))
	assert.True(t, s.Active())

	s.Logout()
	assert.False(t, s.Active())
}
