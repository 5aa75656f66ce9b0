// Package logging configures the default slog logger of both binaries.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/gyegi/calendar/internal/config"
)

// Setup sends JSON logs to console and, when the user cache directory is
// usable, to fileName inside it. The returned closer is nil when no file
// was opened.
func Setup(debugMode bool, console io.Writer, fileName string) io.Closer {
	writers := []io.Writer{console}
	var logFile *os.File

	if logPath, err := FilePath(fileName); err == nil {
		// O_TRUNC resets logs on restart to prevent indefinite growth.
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), Options(debugMode))))

	if logFile == nil {
		return nil
	}
	return logFile
}

// Options returns the handler options for the chosen verbosity.
func Options(debugMode bool) *slog.HandlerOptions {
	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}
	return &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}
}

// FilePath returns fileName inside the application cache directory,
// creating the directory with restricted permissions.
func FilePath(fileName string) (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, fileName), nil
}

// StartupInfo logs environment details useful for debugging.
func StartupInfo(component string) {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, component,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}
