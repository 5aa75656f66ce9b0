package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"fyne.io/fyne/v2/app"

	"github.com/gyegi/calendar/internal/config"
	"github.com/gyegi/calendar/internal/dataset"
	"github.com/gyegi/calendar/internal/logging"
	"github.com/gyegi/calendar/internal/server"
	"github.com/gyegi/calendar/internal/ui"
	"github.com/gyegi/calendar/internal/view"
)

// main delegates to runMain so deferred calls run before os.Exit.
func main() {
	os.Exit(runMain())
}

// runMain parses flags, sets up logging and runs the desktop application.
func runMain() int {
	showVersion := flag.Bool(config.FlagVersion, false, config.FlagDescVersion)
	debugMode := flag.Bool(config.FlagDebug, false, config.FlagDescDebug)
	monthView := flag.Bool(config.FlagMonthView, false, config.FlagDescMonth)
	flag.Parse()

	if *showVersion {
		fmt.Printf(config.MsgVersionOutput, config.AppName, config.Version, runtime.GOOS, runtime.GOARCH)
		return config.ExitCodeSuccess
	}

	if logCloser := logging.Setup(*debugMode, os.Stdout, config.LogFileName); logCloser != nil {
		defer func() {
			_ = logCloser.Close()
		}()
	}

	// Cancels on SIGINT (Ctrl+C) or SIGTERM.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logging.StartupInfo(config.CompMain)

	mode := view.ModeYear
	if *monthView {
		mode = view.ModeMonth
	}

	if err := run(ctx, mode); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// run loads the dataset, wires dependencies and blocks in the UI loop.
func run(ctx context.Context, mode view.Mode) error {
	a := app.NewWithID(config.AppID)
	a.Preferences().SetString(config.PrefLastRun, config.Version)

	fetcher := dataset.NewHTTPFetcher()
	ds, err := dataset.Load(ctx, fetcher, a.Preferences().String(config.PrefDatasetURL))
	if err != nil {
		return err
	}

	port := a.Preferences().StringWithFallback(config.PrefServerPort, config.DefaultPort)
	srv := server.NewCalendarServer(port)

	gui := ui.NewGyegiApp(a, ctx, srv, ds, fetcher)
	gui.InitialMode = mode

	go func() {
		<-ctx.Done()
		slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompMain)
		a.Quit()
	}()

	gui.Run()
	return nil
}
