// Package cmd implements the gyegictl commands.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli"

	"github.com/gyegi/calendar/internal/calendar"
	"github.com/gyegi/calendar/internal/config"
	"github.com/gyegi/calendar/internal/dataset"
	"github.com/gyegi/calendar/internal/nav"
	"github.com/gyegi/calendar/internal/storage/boltdb"
	"github.com/gyegi/calendar/internal/suggestion"
	"github.com/gyegi/calendar/internal/view"
)

// clock is replaced in tests.
var clock calendar.Clock = calendar.RealClock{}

// App builds the gyegictl application.
func App() *cli.App {
	ctl := cli.NewApp()
	ctl.Name = config.CtlName
	ctl.Version = config.Version
	ctl.Usage = config.CtlUsage
	ctl.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  config.FlagPath,
			Usage: config.UsagePath,
			Value: DataPath(),
		},
		&cli.BoolFlag{
			Name:  config.FlagDebug,
			Usage: config.UsageDebug,
		},
		&cli.StringFlag{
			Name:  config.FlagDatasetURL,
			Usage: config.UsageDatasetURL,
		},
	}
	ctl.Commands = []cli.Command{
		YearCmd,
		MonthCmd,
		EventCmd,
		BrowseCmd,
		SuggestCmd,
		SuggestionsCmd,
		ExportContactsCmd,
		ExportICSCmd,
		ServeCmd,
		LessonPlanCmd,
		AdminPasswordCmd,
	}
	return ctl
}

// DataPath returns the default storage directory, ~/.local/share/gyegi.
func DataPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".local", "share", config.DataDirName)
}

func loadDataset(c *cli.Context) (*dataset.Dataset, error) {
	return dataset.Load(context.Background(), dataset.NewHTTPFetcher(), c.GlobalString(config.FlagDatasetURL))
}

func openSuggestions(c *cli.Context) (*suggestion.Store, error) {
	path := c.GlobalString(config.FlagPath)
	if err := os.MkdirAll(path, config.DirPermUserRWX); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}
	return suggestion.NewStore(boltdb.New(boltdb.Config{Path: path}), clock), nil
}

// controller wires a navigation controller for ds onto sink.
func controller(ds *dataset.Dataset, sink nav.Sink, year int, mode view.Mode) *nav.Controller {
	if year == 0 {
		year = ds.DefaultYear
	}
	model := view.NewModel(ds.Store(), ds, clock)
	return nav.NewController(model, sink, nav.Options{Year: year, InitialMode: mode, Clock: clock})
}

// output opens the --out file, or returns the application writer.
func output(c *cli.Context) (io.Writer, func() error, error) {
	name := c.String(config.FlagOut)
	if name == "" {
		return c.App.Writer, func() error { return nil }, nil
	}
	f, err := os.OpenFile(name, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", config.ErrWriteOutput, err)
	}
	return f, f.Close, nil
}

// findEvent resolves a YYYY-MM-DD date or a record ID.
func findEvent(store *calendar.EventStore, arg string) (calendar.EventRecord, error) {
	if d, err := calendar.ParseDate(arg); err == nil && !d.IsZero() {
		if ev, ok := store.EventByDate(d); ok {
			return ev, nil
		}
	} else if ev, ok := store.EventByID(arg); ok {
		return ev, nil
	}
	return calendar.EventRecord{}, fmt.Errorf("%s: %q", config.ErrEventNotFound, arg)
}
