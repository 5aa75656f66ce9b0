package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli"

	"github.com/gyegi/calendar/internal/admin"
	"github.com/gyegi/calendar/internal/config"
	"github.com/gyegi/calendar/internal/suggestion"
	"github.com/gyegi/calendar/internal/tui"
)

var passwordFlag = &cli.StringFlag{
	Name:  config.FlagPassword,
	Usage: config.UsagePassword,
}

var outFlag = &cli.StringFlag{
	Name:  config.FlagOut,
	Usage: config.UsageOut,
}

// requireAdmin checks --password, prompting for it when absent.
func requireAdmin(c *cli.Context) error {
	pw := c.String(config.FlagPassword)
	if pw == "" {
		var err error
		if pw, err = tui.AskPassword(config.TUIPasswordAsk); err != nil {
			return fmt.Errorf("%s: %w", config.ErrTerminalUI, err)
		}
	}
	return admin.NewSession(admin.NewGate(admin.ResolvePassword())).Login(pw)
}

var SuggestCmd = cli.Command{
	Name:      config.CmdSuggest,
	Usage:     config.CmdUsageSuggest,
	ArgsUsage: config.ArgsMessage,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  config.FlagContact,
			Usage: config.UsageContact,
		},
		&cli.StringFlag{
			Name:  config.FlagMessage,
			Usage: config.UsageMessage,
		},
	},
	Action: Suggest,
}

func Suggest(c *cli.Context) error {
	msg := c.String(config.FlagMessage)
	if msg == "" {
		msg = strings.Join(c.Args(), " ")
	}
	store, err := openSuggestions(c)
	if err != nil {
		return err
	}
	e, err := store.Submit(c.String(config.FlagContact), msg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.App.Writer, config.OutSuggestionSaved, e.ID)
	return err
}

var SuggestionsCmd = cli.Command{
	Name:   config.CmdSuggestions,
	Usage:  config.CmdUsageSuggestions,
	Flags:  []cli.Flag{passwordFlag},
	Action: Suggestions,
}

func Suggestions(c *cli.Context) error {
	if err := requireAdmin(c); err != nil {
		return err
	}
	store, err := openSuggestions(c)
	if err != nil {
		return err
	}
	entries, err := store.ListAll()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		_, err = fmt.Fprintln(c.App.Writer, config.FallbackNoSuggestions)
		return err
	}

	tw := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(tw, config.TUISuggestionRow,
			e.CreatedAt.Local().Format(config.DateTimeFormatDisplay),
			e.Contact,
			strings.ReplaceAll(e.Message, "\n", " "),
		)
	}
	return tw.Flush()
}

var ExportContactsCmd = cli.Command{
	Name:   config.CmdExportContacts,
	Usage:  config.CmdUsageExportContacts,
	Flags:  []cli.Flag{passwordFlag, outFlag},
	Action: ExportContacts,
}

func ExportContacts(c *cli.Context) error {
	if err := requireAdmin(c); err != nil {
		return err
	}
	store, err := openSuggestions(c)
	if err != nil {
		return err
	}
	entries, err := store.ListAll()
	if err != nil {
		return err
	}

	w, closeFn, err := output(c)
	if err != nil {
		return err
	}
	n, err := suggestion.ExportContacts(w, entries)
	if cerr := closeFn(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	if c.String(config.FlagOut) == "" {
		return nil
	}
	_, err = fmt.Fprintf(c.App.Writer, config.OutContactsExported, n)
	return err
}

var AdminPasswordCmd = cli.Command{
	Name:      config.CmdAdminPassword,
	Usage:     config.CmdUsageAdminPassword,
	ArgsUsage: config.ArgsNewPassword,
	Flags:     []cli.Flag{passwordFlag},
	Action:    AdminPassword,
}

func AdminPassword(c *cli.Context) error {
	if err := requireAdmin(c); err != nil {
		return err
	}
	next := c.Args().First()
	if next == "" {
		var err error
		if next, err = tui.AskPassword(config.TUINewPasswordAsk); err != nil {
			return fmt.Errorf("%s: %w", config.ErrTerminalUI, err)
		}
	}
	if next == "" {
		return fmt.Errorf("%s: %s", config.ErrKeyringSet, config.ErrPasswordEmpty)
	}
	if err := admin.StorePassword(next); err != nil {
		return err
	}
	_, err := fmt.Fprint(c.App.Writer, config.OutPasswordStored)
	return err
}
