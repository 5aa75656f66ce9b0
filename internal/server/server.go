// Package server publishes the events feed on the loopback interface so that
// local calendar applications can subscribe to it.
package server

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gyegi/calendar/internal/calendar"
	"github.com/gyegi/calendar/internal/config"
	"github.com/gyegi/calendar/internal/export"
)

// Port validation errors.
var (
	ErrPortRequired = errors.New(config.ErrPortRequired)
	ErrPortNumber   = errors.New(config.ErrPortNumber)
	ErrPortRange    = errors.New(config.ErrPortRange)
)

// ValidatePort checks that port is a decimal TCP port number.
func ValidatePort(port string) error {
	if port == "" {
		return ErrPortRequired
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return ErrPortNumber
	}
	if n < config.MinPort || n > config.MaxPort {
		return ErrPortRange
	}
	return nil
}

// feed is one immutable published version of the calendar.
type feed struct {
	data         []byte
	etag         string
	lastModified string // http.TimeFormat
}

// CalendarServer serves the latest published feed.
type CalendarServer struct {
	// current is swapped atomically on publish; readers never lock.
	current atomic.Pointer[feed]
	Port    string
	log     *slog.Logger
}

// NewCalendarServer creates a server for 127.0.0.1:port.
func NewCalendarServer(port string) *CalendarServer {
	return &CalendarServer{
		Port: port,
		log:  slog.With(slog.String(config.LogKeyComponent, config.CompServer)),
	}
}

// Handler returns the HTTP handler serving the feed, for use without Start.
func (s *CalendarServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(config.RouteRoot, s.serveFeed)
	return mux
}

// Start listens until ctx is cancelled, then shuts down gracefully.
func (s *CalendarServer) Start(ctx context.Context) error {
	if err := ValidatePort(s.Port); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         config.LocalhostBindAddr + config.AddrSeparator + s.Port,
		Handler:      s.Handler(),
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, config.ChannelBufferSize)
	go func() {
		s.log.Info(config.MsgServerListen, slog.String(config.LogKeyPort, s.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.log.Info(config.MsgServerStop)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil
	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

// Publish builds the feed from records and serves it from now on.
func (s *CalendarServer) Publish(ctx context.Context, b *export.Builder, records []calendar.EventRecord) error {
	data, _, err := b.Build(ctx, records)
	if err != nil {
		return err
	}
	s.Update(data)
	return nil
}

// Update replaces the served content.
func (s *CalendarServer) Update(data []byte) {
	hash := sha256.Sum256(data)
	f := &feed{
		data:         data,
		etag:         fmt.Sprintf(config.FormatETag, hex.EncodeToString(hash[:])),
		lastModified: time.Now().UTC().Format(http.TimeFormat),
	}
	s.current.Store(f)

	s.log.Debug(config.MsgCacheUpdated,
		slog.Int(config.LogKeySizeBytes, len(data)),
		slog.String(config.LogKeyETag, f.etag),
	)
}

func (s *CalendarServer) serveFeed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set(config.HeaderAllow, config.AllowedMethods)
		http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
		return
	}

	f := s.current.Load()
	if f == nil {
		w.Header().Set(config.HeaderRetryAfter, config.RetryAfterSeconds)
		http.Error(w, config.HTTPMsgInitializing, http.StatusServiceUnavailable)
		return
	}

	h := w.Header()
	h.Set(config.HeaderContentType, config.MimeTextCalendar)
	h.Set(config.HeaderXContentType, config.MimeNoSniff)
	h.Set(config.HeaderCacheControl, config.CacheControlPrivate)
	h.Set(config.HeaderETag, f.etag)
	h.Set(config.HeaderLastModified, f.lastModified)

	if notModified(r, f) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if r.Method == http.MethodGet {
		if _, err := io.Copy(w, bytes.NewReader(f.data)); err != nil {
			s.log.Error(config.ErrWriteResp, slog.Any(config.LogKeyError, err))
		}
	}
}

// notModified applies If-None-Match first, then If-Modified-Since.
func notModified(r *http.Request, f *feed) bool {
	if match := r.Header.Get(config.HeaderIfNoneMatch); match != "" {
		return match == f.etag
	}
	since := r.Header.Get(config.HeaderIfModifiedSince)
	if since == "" {
		return false
	}
	clientTime, err := time.Parse(http.TimeFormat, since)
	if err != nil {
		return false
	}
	serverTime, err := time.Parse(http.TimeFormat, f.lastModified)
	if err != nil {
		return false
	}
	return !serverTime.After(clientTime)
}
