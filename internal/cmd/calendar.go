package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/gyegi/calendar/internal/calendar"
	"github.com/gyegi/calendar/internal/config"
	"github.com/gyegi/calendar/internal/tui"
	"github.com/gyegi/calendar/internal/view"
)

var yearFlag = &cli.IntFlag{
	Name:  config.FlagYear,
	Usage: config.UsageYear,
}

var YearCmd = cli.Command{
	Name:   config.CmdYear,
	Usage:  config.CmdUsageYear,
	Flags:  []cli.Flag{yearFlag},
	Action: Year,
}

func Year(c *cli.Context) error {
	ds, err := loadDataset(c)
	if err != nil {
		return err
	}
	controller(ds, tui.NewTextSink(c.App.Writer), c.Int(config.FlagYear), view.ModeYear).SwitchToYearView()
	return nil
}

var MonthCmd = cli.Command{
	Name:  config.CmdMonth,
	Usage: config.CmdUsageMonth,
	Flags: []cli.Flag{
		yearFlag,
		&cli.IntFlag{
			Name:  config.FlagMonth,
			Usage: config.UsageMonth,
		},
	},
	Action: Month,
}

func Month(c *cli.Context) error {
	ds, err := loadDataset(c)
	if err != nil {
		return err
	}
	ctrl := controller(ds, tui.NewTextSink(c.App.Writer), c.Int(config.FlagYear), view.ModeMonth)
	if !c.IsSet(config.FlagMonth) {
		ctrl.SwitchToMonthView()
		return nil
	}
	return ctrl.JumpToMonth(c.Int(config.FlagMonth))
}

var EventCmd = cli.Command{
	Name:      config.CmdEvent,
	Usage:     config.CmdUsageEvent,
	ArgsUsage: config.ArgsDateOrID,
	Action:    Event,
}

func Event(c *cli.Context) error {
	ds, err := loadDataset(c)
	if err != nil {
		return err
	}
	arg := c.Args().First()
	sink := tui.NewTextSink(c.App.Writer)

	if d, err := calendar.ParseDate(arg); err == nil && !d.IsZero() {
		if !controller(ds, sink, d.Year, view.ModeYear).OpenEvent(d) {
			return fmt.Errorf("%s: %q", config.ErrEventNotFound, arg)
		}
		return nil
	}

	// Floating observances are only reachable by ID.
	ev, err := findEvent(ds.Store(), arg)
	if err != nil {
		return err
	}
	sink.PresentEvent(ev)
	return nil
}

var BrowseCmd = cli.Command{
	Name:  config.CmdBrowse,
	Usage: config.CmdUsageBrowse,
	Flags: []cli.Flag{
		yearFlag,
		&cli.BoolFlag{
			Name:  config.FlagMonthView,
			Usage: config.FlagDescMonth,
		},
	},
	Action: Browse,
}

func Browse(c *cli.Context) error {
	ds, err := loadDataset(c)
	if err != nil {
		return err
	}
	mode := view.ModeYear
	if c.Bool(config.FlagMonthView) {
		mode = view.ModeMonth
	}
	screen := tui.NewScreen(tui.ColorStyles())
	if err := tui.Run(controller(ds, screen, c.Int(config.FlagYear), mode), screen); err != nil {
		return fmt.Errorf("%s: %w", config.ErrTerminalUI, err)
	}
	return nil
}
