package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyegi/calendar/internal/calendar"
	"github.com/gyegi/calendar/internal/config"
	"github.com/gyegi/calendar/internal/export"
)

func get(t *testing.T, srv *CalendarServer, method string, headers map[string]string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w.Result()
}

func TestHandler_ServingContent(t *testing.T) {
	srv := NewCalendarServer("0")
	expectedICS := []byte("BEGIN:VCALENDAR\r\nVERSION:2.0\r\nEND:VCALENDAR")
	srv.Update(expectedICS)

	resp := get(t, srv, http.MethodGet, nil)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, config.MimeTextCalendar, resp.Header.Get(config.HeaderContentType))
	assert.Equal(t, config.MimeNoSniff, resp.Header.Get(config.HeaderXContentType))
	assert.Contains(t, resp.Header.Get(config.HeaderCacheControl), "no-cache")
	assert.NotEmpty(t, resp.Header.Get(config.HeaderETag))
	assert.NotEmpty(t, resp.Header.Get(config.HeaderLastModified))

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, expectedICS, body)
}

func TestHandler_HeadHasNoBody(t *testing.T) {
	srv := NewCalendarServer("0")
	srv.Update([]byte("BEGIN:VCALENDAR"))

	resp := get(t, srv, http.MethodHead, nil)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Empty(t, body)
}

func TestHandler_Caching(t *testing.T) {
	srv := NewCalendarServer("0")
	srv.Update([]byte("DATA_VERSION_1"))

	first := get(t, srv, http.MethodGet, nil)
	etag := first.Header.Get(config.HeaderETag)
	lastMod := first.Header.Get(config.HeaderLastModified)
	require.NotEmpty(t, etag)

	tests := []struct {
		name    string
		headers map[string]string
		want    int
	}{
		{"matching etag", map[string]string{config.HeaderIfNoneMatch: etag}, http.StatusNotModified},
		{"stale etag wins over date", map[string]string{config.HeaderIfNoneMatch: `"old"`, config.HeaderIfModifiedSince: lastMod}, http.StatusOK},
		{"not modified since", map[string]string{config.HeaderIfModifiedSince: lastMod}, http.StatusNotModified},
		{"modified since", map[string]string{config.HeaderIfModifiedSince: "Mon, 02 Jan 2006 15:04:05 GMT"}, http.StatusOK},
		{"garbage date", map[string]string{config.HeaderIfModifiedSince: "yesterday"}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := get(t, srv, http.MethodGet, tt.headers)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	srv := NewCalendarServer("0")

	resp := get(t, srv, http.MethodPost, nil)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, config.AllowedMethods, resp.Header.Get(config.HeaderAllow))
}

func TestHandler_Initializing(t *testing.T) {
	srv := NewCalendarServer("0")

	resp := get(t, srv, http.MethodGet, nil)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, config.RetryAfterSeconds, resp.Header.Get(config.HeaderRetryAfter))
}

func TestPublish(t *testing.T) {
	srv := NewCalendarServer("0")
	b := &export.Builder{Clock: calendar.FixedClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))}
	records := []calendar.EventRecord{{ID: "a", EventName: "한글날", Date: calendar.NewDate(2026, 10, 9), IsActive: true}}

	require.NoError(t, srv.Publish(context.Background(), b, records))

	resp := get(t, srv, http.MethodGet, nil)
	defer func() { _ = resp.Body.Close() }()
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "UID:a@gyegi")
	assert.Contains(t, string(body), "DTSTART;VALUE=DATE:20261009")
}

// TestServer_RaceCondition runs writers and readers concurrently.
// Run this with `go test -race`.
func TestServer_RaceCondition(t *testing.T) {
	srv := NewCalendarServer("0")
	h := srv.Handler()
	var wg sync.WaitGroup
	end := time.Now().Add(300 * time.Millisecond)

	for w := 0; w < 5; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; time.Now().Before(end); i++ {
				srv.Update([]byte(fmt.Sprintf("VERSION:%d-%d", id, i)))
				time.Sleep(time.Microsecond)
			}
		}(w)
	}

	for r := 0; r < 20; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(end) {
				w := httptest.NewRecorder()
				h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
				if w.Code != http.StatusOK && w.Code != http.StatusServiceUnavailable {
					t.Errorf("Unexpected status code during race test: %d", w.Code)
				}
			}
		}()
	}

	wg.Wait()
}

// TestServer_Lifecycle binds a real listener and shuts it down.
func TestServer_Lifecycle(t *testing.T) {
	const port = "18097"

	srv := NewCalendarServer(port)
	ctx, cancel := context.WithCancel(context.Background())
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start(ctx)
	}()

	url := "http://127.0.0.1:" + port + "/"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return true
	}, 2*time.Second, 50*time.Millisecond, "Server failed to bind/listen in time")

	srv.Update([]byte("BEGIN:VCALENDAR\nEND:VCALENDAR"))

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-errChan:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Server shutdown timed out")
	}
}

func TestServer_StartRequiresPort(t *testing.T) {
	err := NewCalendarServer("").Start(context.Background())
	assert.ErrorIs(t, err, ErrPortRequired)
	assert.EqualError(t, err, config.ErrPortRequired)
}

func TestValidatePort(t *testing.T) {
	tests := []struct {
		port string
		want error
	}{
		{"18081", nil},
		{"1", nil},
		{"65535", nil},
		{"", ErrPortRequired},
		{"http", ErrPortNumber},
		{"0", ErrPortRange},
		{"65536", ErrPortRange},
		{"-5", ErrPortRange},
	}
	for _, tt := range tests {
		t.Run(tt.port, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidatePort(tt.port))
		})
	}
}
