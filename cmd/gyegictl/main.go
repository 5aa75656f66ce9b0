package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/gyegi/calendar/internal/cmd"
	"github.com/gyegi/calendar/internal/config"
	"github.com/gyegi/calendar/internal/logging"
)

func main() {
	var logCloser io.Closer

	ctl := cmd.App()
	ctl.Before = func(c *cli.Context) error {
		// Stdout carries command output. Logs reach stderr only with --debug.
		debug := c.GlobalBool(config.FlagDebug)
		console := io.Discard
		if debug {
			console = os.Stderr
		}
		logCloser = logging.Setup(debug, console, config.CtlLogFileName)
		logging.StartupInfo(config.CompCtl)
		return nil
	}
	ctl.After = func(*cli.Context) error {
		if logCloser != nil {
			return logCloser.Close()
		}
		return nil
	}

	if err := ctl.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(config.ExitCodeError)
	}
}
