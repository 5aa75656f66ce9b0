package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"

	"github.com/gyegi/calendar/internal/calendar"
	"github.com/gyegi/calendar/internal/config"
	"github.com/gyegi/calendar/internal/lessonplan"
)

var LessonPlanCmd = cli.Command{
	Name:      config.CmdLessonPlan,
	Usage:     config.CmdUsageLessonPlan,
	ArgsUsage: config.ArgsDateOrID,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  config.FlagGrade,
			Usage: config.UsageGrade,
			Value: string(calendar.GradeLower),
		},
		&cli.DurationFlag{
			Name:  config.FlagDelay,
			Usage: config.UsageDelay,
			Value: config.DefaultPlanDelay,
		},
		&cli.StringFlag{
			Name:  config.FlagOut,
			Usage: config.UsageOutDir,
		},
	},
	Action: LessonPlan,
}

func LessonPlan(c *cli.Context) error {
	grade := calendar.GradeBand(c.String(config.FlagGrade))
	if !grade.Valid() {
		return fmt.Errorf("%s: %q", config.ErrInvalidGrade, grade)
	}
	ds, err := loadDataset(c)
	if err != nil {
		return err
	}
	ev, err := findEvent(ds.Store(), c.Args().First())
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gen := &lessonplan.SimulatedGenerator{Delay: c.Duration(config.FlagDelay), Clock: clock}
	_, path, err := lessonplan.Export(ctx, gen, &lessonplan.FilePrinter{Dir: c.String(config.FlagOut)}, lessonplan.SummaryOf(ev, grade))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.App.Writer, config.OutFileWritten, path)
	return err
}
