package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"

	"github.com/gyegi/calendar/internal/config"
	"github.com/gyegi/calendar/internal/export"
	"github.com/gyegi/calendar/internal/server"
)

var ExportICSCmd = cli.Command{
	Name:   config.CmdExportICS,
	Usage:  config.CmdUsageExportICS,
	Flags:  []cli.Flag{outFlag},
	Action: ExportICS,
}

func ExportICS(c *cli.Context) error {
	ds, err := loadDataset(c)
	if err != nil {
		return err
	}
	b := export.NewBuilder()
	b.Clock = clock
	data, n, err := b.Build(context.Background(), ds.Store().ActiveRecords())
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	w, closeFn, err := output(c)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	if cerr := closeFn(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrWriteOutput, err)
	}
	if c.String(config.FlagOut) == "" {
		return nil
	}
	_, err = fmt.Fprintf(c.App.Writer, config.OutEventsExported, n)
	return err
}

var ServeCmd = cli.Command{
	Name:  config.CmdServe,
	Usage: config.CmdUsageServe,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  config.FlagPort,
			Usage: config.UsagePort,
			Value: config.DefaultPort,
		},
	},
	Action: Serve,
}

func Serve(c *cli.Context) error {
	port := c.String(config.FlagPort)
	if err := server.ValidatePort(port); err != nil {
		return err
	}
	ds, err := loadDataset(c)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv := server.NewCalendarServer(port)
	b := export.NewBuilder()
	b.Clock = clock
	if err := srv.Publish(ctx, b, ds.Store().ActiveRecords()); err != nil {
		return fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	fmt.Fprintf(c.App.Writer, config.OutServing, config.SchemeHTTP, config.LocalhostBindAddr, port, config.RouteRoot)
	return srv.Start(ctx)
}
